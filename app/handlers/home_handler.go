package handlers

import (
	"log"
	"net/http"

	"github.com/lumiereglamour/store/app/helpers"
	"github.com/lumiereglamour/store/app/repositories"
	"github.com/lumiereglamour/store/app/services"
	"github.com/lumiereglamour/store/app/utils/sessions"
	"github.com/unrolled/render"
)

type HomeHandler struct {
	catalogSvc   *services.CatalogService
	categoryRepo repositories.CategoryRepositoryImpl
	siteRepo     repositories.SiteRepositoryImpl
	sessionStore sessions.Store
	baseData     *helpers.BaseDataProvider
	render       *render.Render
}

func NewHomeHandler(
	catalogSvc *services.CatalogService,
	categoryRepo repositories.CategoryRepositoryImpl,
	siteRepo repositories.SiteRepositoryImpl,
	sessionStore sessions.Store,
	baseData *helpers.BaseDataProvider,
	r *render.Render,
) *HomeHandler {
	return &HomeHandler{
		catalogSvc:   catalogSvc,
		categoryRepo: categoryRepo,
		siteRepo:     siteRepo,
		sessionStore: sessionStore,
		baseData:     baseData,
		render:       r,
	}
}

func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	// Favorite flags need a session identifier, so one is provisioned on the
	// first page view.
	sessionKey, err := h.sessionStore.EnsureSessionKey(w, r)
	if err != nil {
		log.Printf("HomeHandler.Home: failed to provision session key: %v", err)
	}

	opts := services.ListOptions{
		Query:          query.Get("q"),
		CategoriaID:    helpers.ParseUintParam(query.Get("categoria")),
		SubcategoriaID: helpers.ParseUintParam(query.Get("subcategoria")),
		SoloOfertas:    query.Get("ofertas") == "true",
		Page:           helpers.ParsePage(r),
	}

	result, err := h.catalogSvc.ListProducts(r.Context(), sessionKey, opts)
	if err != nil {
		log.Printf("HomeHandler.Home: failed to list productos: %v", err)
		http.Error(w, "Error al cargar los productos", http.StatusInternalServerError)
		return
	}

	categorias, err := h.categoryRepo.GetPrincipales(r.Context())
	if err != nil {
		log.Printf("HomeHandler.Home: failed to load categorias: %v", err)
		http.Error(w, "Error al cargar las categorías", http.StatusInternalServerError)
		return
	}

	anuncios, err := h.siteRepo.GetActiveAnuncios(r.Context())
	if err != nil {
		log.Printf("HomeHandler.Home: failed to load anuncios: %v", err)
	}

	datas := h.baseData.GetBaseData(r, map[string]interface{}{
		"Title":           "Lumière Glamour",
		"Productos":       result.Cards,
		"Categorias":      categorias,
		"Anuncios":        anuncios,
		"SeccionActual":   result.Label,
		"CategoriaActiva": result.ActiveCategoriaID,
		"CurrentPage":     result.Page,
		"TotalPages":      result.TotalPages,
		"SearchQuery":     opts.Query,
		"SoloOfertas":     opts.SoloOfertas,
	})

	_ = h.render.HTML(w, http.StatusOK, "home", datas)
}
