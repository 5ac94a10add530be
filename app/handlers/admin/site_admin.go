package admin

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/lumiereglamour/store/app/helpers"
	"github.com/lumiereglamour/store/app/models"
	"github.com/lumiereglamour/store/app/repositories"
	"github.com/unrolled/render"
)

type SiteAdminHandler struct {
	siteRepo repositories.SiteRepositoryImpl
	render   *render.Render
	validate *validator.Validate
}

func NewSiteAdminHandler(siteRepo repositories.SiteRepositoryImpl, r *render.Render) *SiteAdminHandler {
	return &SiteAdminHandler{
		siteRepo: siteRepo,
		render:   r,
		validate: validator.New(),
	}
}

func (h *SiteAdminHandler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{"error": "Cuerpo de la petición inválido"})
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{"error": err.Error()})
		return false
	}
	return true
}

type anuncioPayload struct {
	Titulo      string `json:"titulo" validate:"required"`
	Descripcion string `json:"descripcion"`
	Imagen      string `json:"imagen"`
	URL         string `json:"url"`
	IsActive    *bool  `json:"is_active"`
	Order       int    `json:"order"`
}

func (h *SiteAdminHandler) CreateAnuncio(w http.ResponseWriter, r *http.Request) {
	var payload anuncioPayload
	if !h.decodeAndValidate(w, r, &payload) {
		return
	}

	anuncio := models.Anuncio{
		Titulo:      payload.Titulo,
		Descripcion: payload.Descripcion,
		Imagen:      payload.Imagen,
		URL:         payload.URL,
		IsActive:    true,
		Order:       payload.Order,
	}
	if payload.IsActive != nil {
		anuncio.IsActive = *payload.IsActive
	}

	if err := h.siteRepo.CreateAnuncio(r.Context(), &anuncio); err != nil {
		log.Printf("SiteAdminHandler.CreateAnuncio: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{"error": err.Error()})
		return
	}

	_ = h.render.JSON(w, http.StatusCreated, map[string]interface{}{"success": true, "anuncio": anuncio})
}

func (h *SiteAdminHandler) UpdateAnuncio(w http.ResponseWriter, r *http.Request) {
	id := helpers.ParseUintParam(mux.Vars(r)["id"])

	anuncio, err := h.siteRepo.GetAnuncioByID(r.Context(), id)
	if err != nil {
		log.Printf("SiteAdminHandler.UpdateAnuncio: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{"error": err.Error()})
		return
	}
	if anuncio == nil {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]interface{}{"error": "Anuncio no encontrado"})
		return
	}

	var payload anuncioPayload
	if !h.decodeAndValidate(w, r, &payload) {
		return
	}

	anuncio.Titulo = payload.Titulo
	anuncio.Descripcion = payload.Descripcion
	anuncio.Imagen = payload.Imagen
	anuncio.URL = payload.URL
	anuncio.Order = payload.Order
	if payload.IsActive != nil {
		anuncio.IsActive = *payload.IsActive
	}

	if err := h.siteRepo.UpdateAnuncio(r.Context(), anuncio); err != nil {
		log.Printf("SiteAdminHandler.UpdateAnuncio: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{"error": err.Error()})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"success": true, "anuncio": anuncio})
}

func (h *SiteAdminHandler) DeleteAnuncio(w http.ResponseWriter, r *http.Request) {
	id := helpers.ParseUintParam(mux.Vars(r)["id"])

	if err := h.siteRepo.DeleteAnuncio(r.Context(), id); err != nil {
		log.Printf("SiteAdminHandler.DeleteAnuncio: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{"error": err.Error()})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type menuItemPayload struct {
	Nombre string `json:"nombre" validate:"required"`
	URL    string `json:"url" validate:"required"`
	Order  int    `json:"order"`
}

func (h *SiteAdminHandler) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	var payload menuItemPayload
	if !h.decodeAndValidate(w, r, &payload) {
		return
	}

	item := models.MenuItem{Nombre: payload.Nombre, URL: payload.URL, Order: payload.Order}
	if err := h.siteRepo.CreateMenuItem(r.Context(), &item); err != nil {
		log.Printf("SiteAdminHandler.CreateMenuItem: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{"error": err.Error()})
		return
	}

	_ = h.render.JSON(w, http.StatusCreated, map[string]interface{}{"success": true, "menu_item": item})
}

func (h *SiteAdminHandler) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	id := helpers.ParseUintParam(mux.Vars(r)["id"])

	if err := h.siteRepo.DeleteMenuItem(r.Context(), id); err != nil {
		log.Printf("SiteAdminHandler.DeleteMenuItem: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{"error": err.Error()})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type settingPayload struct {
	Key   string `json:"key" validate:"required"`
	Value string `json:"value" validate:"required"`
}

func (h *SiteAdminHandler) SetSetting(w http.ResponseWriter, r *http.Request) {
	var payload settingPayload
	if !h.decodeAndValidate(w, r, &payload) {
		return
	}

	if err := h.siteRepo.SetSetting(r.Context(), payload.Key, payload.Value); err != nil {
		log.Printf("SiteAdminHandler.SetSetting: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{"error": err.Error()})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"success": true})
}
