package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/lumiereglamour/store/app/helpers"
	"github.com/lumiereglamour/store/app/repositories"
	"github.com/lumiereglamour/store/app/services"
	"github.com/lumiereglamour/store/app/utils/format"
	"github.com/lumiereglamour/store/app/utils/sessions"
	"github.com/unrolled/render"
)

type FavoritoHandler struct {
	favoritoRepo repositories.FavoritoRepositoryImpl
	productRepo  repositories.ProductRepositoryImpl
	catalogSvc   *services.CatalogService
	sessionStore sessions.Store
	baseData     *helpers.BaseDataProvider
	render       *render.Render
	validate     *validator.Validate
}

func NewFavoritoHandler(
	favoritoRepo repositories.FavoritoRepositoryImpl,
	productRepo repositories.ProductRepositoryImpl,
	catalogSvc *services.CatalogService,
	sessionStore sessions.Store,
	baseData *helpers.BaseDataProvider,
	r *render.Render,
) *FavoritoHandler {
	return &FavoritoHandler{
		favoritoRepo: favoritoRepo,
		productRepo:  productRepo,
		catalogSvc:   catalogSvc,
		sessionStore: sessionStore,
		baseData:     baseData,
		render:       r,
		validate:     validator.New(),
	}
}

type toggleFavoritoRequest struct {
	ProductoID uint `json:"producto_id" validate:"required"`
}

func (h *FavoritoHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		_ = h.render.JSON(w, http.StatusMethodNotAllowed, map[string]interface{}{"error": "Método no permitido"})
		return
	}

	var req toggleFavoritoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{"error": "Cuerpo de la petición inválido"})
		return
	}
	if err := h.validate.Struct(req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{"error": "Falta producto_id"})
		return
	}

	producto, err := h.productRepo.GetByID(r.Context(), req.ProductoID)
	if err != nil {
		log.Printf("FavoritoHandler.Toggle: failed to load producto %d: %v", req.ProductoID, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{"error": err.Error()})
		return
	}
	if producto == nil {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]interface{}{"error": "Producto no encontrado"})
		return
	}

	sessionKey, err := h.sessionStore.EnsureSessionKey(w, r)
	if err != nil {
		log.Printf("FavoritoHandler.Toggle: failed to provision session key: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{"error": err.Error()})
		return
	}

	isFavorito, err := h.favoritoRepo.Toggle(r.Context(), sessionKey, req.ProductoID)
	if err != nil {
		log.Printf("FavoritoHandler.Toggle: failed to toggle favorito: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{"error": err.Error()})
		return
	}

	mensaje := "Producto eliminado de favoritos"
	if isFavorito {
		mensaje = "Producto agregado a favoritos"
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"success":     true,
		"mensaje":     mensaje,
		"is_favorito": isFavorito,
	})
}

func (h *FavoritoHandler) VerFavoritos(w http.ResponseWriter, r *http.Request) {
	sessionKey := h.sessionStore.SessionKey(r)

	products, err := h.favoritoRepo.ProductsForSession(r.Context(), sessionKey)
	if err != nil {
		log.Printf("FavoritoHandler.VerFavoritos: %v", err)
		http.Error(w, "Error al cargar los favoritos", http.StatusInternalServerError)
		return
	}

	cards, err := h.catalogSvc.Decorate(r.Context(), sessionKey, products)
	if err != nil {
		log.Printf("FavoritoHandler.VerFavoritos: failed to decorate: %v", err)
		http.Error(w, "Error al cargar los favoritos", http.StatusInternalServerError)
		return
	}

	datas := h.baseData.GetBaseData(r, map[string]interface{}{
		"Title":     "Mis Favoritos",
		"Productos": cards,
	})

	_ = h.render.HTML(w, http.StatusOK, "favoritos", datas)
}

func (h *FavoritoHandler) APIFavoritos(w http.ResponseWriter, r *http.Request) {
	sessionKey := h.sessionStore.SessionKey(r)

	products, err := h.favoritoRepo.ProductsForSession(r.Context(), sessionKey)
	if err != nil {
		log.Printf("FavoritoHandler.APIFavoritos: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{"error": err.Error()})
		return
	}

	entries := make([]map[string]interface{}, len(products))
	for i := range products {
		p := products[i]
		entries[i] = map[string]interface{}{
			"id":     p.ID,
			"nombre": p.Nombre,
			"precio": format.FormatPrecio(p.PrecioFinal()),
			"url":    productoURL(p.ID),
		}
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"exito":     true,
		"productos": entries,
		"total":     len(entries),
	})
}
