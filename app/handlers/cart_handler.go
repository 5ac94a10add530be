package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/lumiereglamour/store/app/helpers"
	"github.com/lumiereglamour/store/app/services"
	"github.com/lumiereglamour/store/app/utils/sessions"
	"github.com/unrolled/render"
)

type CartHandler struct {
	cartSvc      *services.CartService
	sessionStore sessions.Store
	baseData     *helpers.BaseDataProvider
	render       *render.Render
	validate     *validator.Validate
}

func NewCartHandler(
	cartSvc *services.CartService,
	sessionStore sessions.Store,
	baseData *helpers.BaseDataProvider,
	r *render.Render,
) *CartHandler {
	return &CartHandler{
		cartSvc:      cartSvc,
		sessionStore: sessionStore,
		baseData:     baseData,
		render:       r,
		validate:     validator.New(),
	}
}

type agregarAlCarritoRequest struct {
	ProductoID uint   `json:"producto_id" validate:"required"`
	Quantity   int    `json:"quantity" validate:"omitempty,min=1"`
	VariantID  uint   `json:"variant_id"`
	Color      string `json:"color"`
}

func (h *CartHandler) AgregarAlCarrito(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		_ = h.render.JSON(w, http.StatusMethodNotAllowed, map[string]interface{}{"error": "Método no permitido"})
		return
	}

	var req agregarAlCarritoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{"error": "Cuerpo de la petición inválido"})
		return
	}
	if err := h.validate.Struct(req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{"error": "Falta producto_id o cantidad inválida"})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	line, err := h.cartSvc.BuildLine(r.Context(), req.ProductoID, req.VariantID, req.Quantity, req.Color)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProductoNotFound):
			_ = h.render.JSON(w, http.StatusNotFound, map[string]interface{}{"error": "Producto no encontrado"})
		case errors.Is(err, services.ErrVariacionNotFound):
			_ = h.render.JSON(w, http.StatusNotFound, map[string]interface{}{"error": "Variación no encontrada"})
		default:
			log.Printf("CartHandler.AgregarAlCarrito: %v", err)
			_ = h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{"error": err.Error()})
		}
		return
	}

	items := services.MergeLine(h.sessionStore.Cart(r), line)

	// The merge mutates a plain slice; nothing persists until the session is
	// explicitly saved.
	if err := h.sessionStore.SaveCart(w, r, items); err != nil {
		log.Printf("CartHandler.AgregarAlCarrito: failed to save session cart: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{"error": err.Error()})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"mensaje":     "Producto agregado al carrito",
		"producto_id": req.ProductoID,
		"quantity":    services.LineQuantity(items, line.VariantID),
	})
}

func (h *CartHandler) EliminarDelCarrito(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		_ = h.render.JSON(w, http.StatusMethodNotAllowed, map[string]interface{}{"error": "Método no permitido"})
		return
	}

	var req struct {
		VariantID uint `json:"variant_id" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{"error": "Cuerpo de la petición inválido"})
		return
	}
	if err := h.validate.Struct(req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{"error": "Falta variant_id"})
		return
	}

	items := services.RemoveLine(h.sessionStore.Cart(r), req.VariantID)
	if err := h.sessionStore.SaveCart(w, r, items); err != nil {
		log.Printf("CartHandler.EliminarDelCarrito: failed to save session cart: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{"error": err.Error()})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"mensaje": "Producto eliminado del carrito"})
}

func (h *CartHandler) VerCarrito(w http.ResponseWriter, r *http.Request) {
	view, err := h.cartSvc.BuildView(r.Context(), h.sessionStore.Cart(r))
	if err != nil {
		log.Printf("CartHandler.VerCarrito: %v", err)
		http.Error(w, "Error al cargar el carrito", http.StatusInternalServerError)
		return
	}

	datas := h.baseData.GetBaseData(r, map[string]interface{}{
		"Title":   "Carrito de Compras",
		"Carrito": view,
	})

	_ = h.render.HTML(w, http.StatusOK, "carrito", datas)
}
