package handlers

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/lumiereglamour/store/app/helpers"
	"github.com/lumiereglamour/store/app/models"
	"github.com/lumiereglamour/store/app/repositories"
	"github.com/lumiereglamour/store/app/services"
	"github.com/lumiereglamour/store/app/utils/format"
	"github.com/lumiereglamour/store/app/utils/imageurl"
	"github.com/lumiereglamour/store/app/utils/sessions"
	"github.com/unrolled/render"
)

var badgeLabels = map[string]string{
	models.BadgeNuevo:     "Nuevos",
	models.BadgeTendencia: "Tendencia",
	models.BadgeOferta:    "Ofertas",
}

type ProductHandler struct {
	productRepo  repositories.ProductRepositoryImpl
	catalogSvc   *services.CatalogService
	sessionStore sessions.Store
	baseData     *helpers.BaseDataProvider
	render       *render.Render
}

func NewProductHandler(
	productRepo repositories.ProductRepositoryImpl,
	catalogSvc *services.CatalogService,
	sessionStore sessions.Store,
	baseData *helpers.BaseDataProvider,
	r *render.Render,
) *ProductHandler {
	return &ProductHandler{
		productRepo:  productRepo,
		catalogSvc:   catalogSvc,
		sessionStore: sessionStore,
		baseData:     baseData,
		render:       r,
	}
}

type variacionView struct {
	Variacion   models.Variacion
	PrecioFinal string
}

func (h *ProductHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id := helpers.ParseUintParam(mux.Vars(r)["id"])
	if id == 0 {
		http.NotFound(w, r)
		return
	}

	producto, err := h.productRepo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("ProductHandler.Detail: failed to load producto %d: %v", id, err)
		http.Error(w, "Error al cargar el producto", http.StatusInternalServerError)
		return
	}
	if producto == nil {
		http.NotFound(w, r)
		return
	}

	variaciones := make([]variacionView, len(producto.Variaciones))
	for i := range producto.Variaciones {
		v := producto.Variaciones[i]
		v.Producto = producto
		variaciones[i] = variacionView{
			Variacion:   v,
			PrecioFinal: format.FormatPrecio(v.PrecioFinal()),
		}
	}

	sessionKey := h.sessionStore.SessionKey(r)

	related, err := h.productRepo.RelatedByCategoria(r.Context(), producto.CategoriaID, producto.ID, 4)
	if err != nil {
		log.Printf("ProductHandler.Detail: failed to load related productos: %v", err)
	}
	relatedCards, err := h.catalogSvc.Decorate(r.Context(), sessionKey, related)
	if err != nil {
		log.Printf("ProductHandler.Detail: failed to decorate related productos: %v", err)
	}

	datas := h.baseData.GetBaseData(r, map[string]interface{}{
		"Title":        producto.Nombre,
		"Producto":     producto,
		"Precio":       format.FormatPrecio(producto.Precio),
		"Descuento":    format.FormatDescuento(producto.Descuento),
		"PrecioFinal":  format.FormatPrecio(producto.PrecioFinal()),
		"Imagen":       imageurl.Resolve(producto),
		"Variaciones":  variaciones,
		"Relacionados": relatedCards,
	})

	_ = h.render.HTML(w, http.StatusOK, "producto", datas)
}

func (h *ProductHandler) PorCategoria(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	if slug == "" {
		http.NotFound(w, r)
		return
	}

	sessionKey := h.sessionStore.SessionKey(r)

	result, categoria, err := h.catalogSvc.ListByCategoriaSlug(r.Context(), sessionKey, slug, helpers.ParsePage(r))
	if err != nil {
		log.Printf("ProductHandler.PorCategoria: failed to list categoria %q: %v", slug, err)
		http.Error(w, "Error al cargar la categoría", http.StatusInternalServerError)
		return
	}
	if categoria == nil {
		http.NotFound(w, r)
		return
	}

	datas := h.baseData.GetBaseData(r, map[string]interface{}{
		"Title":           categoria.Nombre,
		"Categoria":       categoria,
		"Productos":       result.Cards,
		"SeccionActual":   result.Label,
		"CategoriaActiva": result.ActiveCategoriaID,
		"CurrentPage":     result.Page,
		"TotalPages":      result.TotalPages,
	})

	_ = h.render.HTML(w, http.StatusOK, "categoria", datas)
}

func (h *ProductHandler) PorEtiqueta(w http.ResponseWriter, r *http.Request) {
	badge := mux.Vars(r)["badge"]
	label, ok := badgeLabels[badge]
	if !ok {
		http.NotFound(w, r)
		return
	}

	sessionKey := h.sessionStore.SessionKey(r)

	result, err := h.catalogSvc.ListProducts(r.Context(), sessionKey, services.ListOptions{
		Badge: badge,
		Label: label,
		Page:  helpers.ParsePage(r),
	})
	if err != nil {
		log.Printf("ProductHandler.PorEtiqueta: failed to list badge %q: %v", badge, err)
		http.Error(w, "Error al cargar los productos", http.StatusInternalServerError)
		return
	}

	datas := h.baseData.GetBaseData(r, map[string]interface{}{
		"Title":         label,
		"Productos":     result.Cards,
		"SeccionActual": label,
		"CurrentPage":   result.Page,
		"TotalPages":    result.TotalPages,
	})

	_ = h.render.HTML(w, http.StatusOK, "etiqueta", datas)
}
