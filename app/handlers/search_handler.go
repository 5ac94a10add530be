package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/lumiereglamour/store/app/repositories"
	"github.com/lumiereglamour/store/app/utils/format"
	"github.com/lumiereglamour/store/app/utils/imageurl"
	"github.com/unrolled/render"
)

const (
	minSearchLength  = 2
	searchResultsCap = 8
)

type SearchHandler struct {
	productRepo repositories.ProductRepositoryImpl
	render      *render.Render
}

func NewSearchHandler(productRepo repositories.ProductRepositoryImpl, r *render.Render) *SearchHandler {
	return &SearchHandler{productRepo: productRepo, render: r}
}

func productoURL(id uint) string {
	return fmt.Sprintf("/producto/%d/", id)
}

// APIBuscarProductos is the live-search endpoint behind the header search
// box. Queries under two characters never hit the database.
func (h *SearchHandler) APIBuscarProductos(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))

	if len([]rune(query)) < minSearchLength {
		_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
			"exito":     true,
			"productos": []interface{}{},
			"total":     0,
			"mensaje":   "Ingresa al menos 2 caracteres para buscar",
		})
		return
	}

	products, err := h.productRepo.SearchActive(r.Context(), query, searchResultsCap)
	if err != nil {
		log.Printf("SearchHandler.APIBuscarProductos: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{"error": err.Error()})
		return
	}

	entries := make([]map[string]interface{}, len(products))
	for i := range products {
		p := products[i]
		entries[i] = map[string]interface{}{
			"id":        p.ID,
			"nombre":    p.Nombre,
			"precio":    format.FormatPrecio(p.PrecioFinal()),
			"imagen":    imageurl.Resolve(&p),
			"url":       productoURL(p.ID),
			"categoria": p.Categoria.Nombre,
			"descuento": p.TieneDescuento(),
		}
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"exito":     true,
		"productos": entries,
		"total":     len(entries),
	})
}
