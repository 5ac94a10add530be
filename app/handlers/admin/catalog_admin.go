package admin

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/lumiereglamour/store/app/helpers"
	"github.com/lumiereglamour/store/app/middlewares"
	"github.com/lumiereglamour/store/app/models"
	"github.com/lumiereglamour/store/app/repositories"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

// CatalogAdminHandler is the thin CRUD layer behind the catalog: it is where
// slug disambiguation and the category cycle guard run.
type CatalogAdminHandler struct {
	productRepo    repositories.ProductRepositoryImpl
	categoryRepo   repositories.CategoryRepositoryImpl
	categoriaCache *middlewares.CategoriaCache
	render         *render.Render
	validate       *validator.Validate
}

func NewCatalogAdminHandler(
	productRepo repositories.ProductRepositoryImpl,
	categoryRepo repositories.CategoryRepositoryImpl,
	categoriaCache *middlewares.CategoriaCache,
	r *render.Render,
) *CatalogAdminHandler {
	return &CatalogAdminHandler{
		productRepo:    productRepo,
		categoryRepo:   categoryRepo,
		categoriaCache: categoriaCache,
		render:         r,
		validate:       validator.New(),
	}
}

type productoPayload struct {
	Nombre          string `json:"nombre" validate:"required"`
	Descripcion     string `json:"descripcion"`
	LongDescription string `json:"long_description"`
	Precio          string `json:"precio" validate:"required"`
	Descuento       string `json:"descuento"`
	Imagen          string `json:"imagen"`
	CategoriaID     uint   `json:"categoria_id" validate:"required"`
	IsActive        *bool  `json:"is_active"`
	Stock           int    `json:"stock"`
	Badge           string `json:"badge" validate:"omitempty,oneof=nuevo tendencia oferta"`
}

func (p *productoPayload) apply(producto *models.Producto) error {
	precio, err := decimal.NewFromString(p.Precio)
	if err != nil {
		return err
	}
	descuento := decimal.Zero
	if p.Descuento != "" {
		descuento, err = decimal.NewFromString(p.Descuento)
		if err != nil {
			return err
		}
		if descuento.IsNegative() || descuento.GreaterThanOrEqual(decimal.NewFromInt(1)) {
			return errors.New("descuento fuera de rango")
		}
	}

	producto.Nombre = p.Nombre
	producto.Descripcion = p.Descripcion
	producto.LongDescription = p.LongDescription
	producto.Precio = precio
	producto.Descuento = descuento
	producto.Imagen = p.Imagen
	producto.CategoriaID = p.CategoriaID
	producto.Stock = p.Stock
	producto.Badge = p.Badge
	producto.IsActive = true
	if p.IsActive != nil {
		producto.IsActive = *p.IsActive
	}
	return nil
}

func (h *CatalogAdminHandler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
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

func (h *CatalogAdminHandler) CreateProducto(w http.ResponseWriter, r *http.Request) {
	var payload productoPayload
	if !h.decodeAndValidate(w, r, &payload) {
		return
	}

	var producto models.Producto
	if err := payload.apply(&producto); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{"error": "Precio o descuento inválido"})
		return
	}

	if err := h.productRepo.Create(r.Context(), &producto); err != nil {
		log.Printf("CatalogAdminHandler.CreateProducto: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{"error": err.Error()})
		return
	}

	h.categoriaCache.Invalidate()
	_ = h.render.JSON(w, http.StatusCreated, map[string]interface{}{"success": true, "producto": producto})
}

func (h *CatalogAdminHandler) UpdateProducto(w http.ResponseWriter, r *http.Request) {
	id := helpers.ParseUintParam(mux.Vars(r)["id"])

	producto, err := h.productRepo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("CatalogAdminHandler.UpdateProducto: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{"error": err.Error()})
		return
	}
	if producto == nil {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]interface{}{"error": "Producto no encontrado"})
		return
	}

	var payload productoPayload
	if !h.decodeAndValidate(w, r, &payload) {
		return
	}
	if err := payload.apply(producto); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{"error": "Precio o descuento inválido"})
		return
	}

	if err := h.productRepo.Update(r.Context(), producto); err != nil {
		log.Printf("CatalogAdminHandler.UpdateProducto: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{"error": err.Error()})
		return
	}

	h.categoriaCache.Invalidate()
	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"success": true, "producto": producto})
}

func (h *CatalogAdminHandler) DeleteProducto(w http.ResponseWriter, r *http.Request) {
	id := helpers.ParseUintParam(mux.Vars(r)["id"])

	if err := h.productRepo.Delete(r.Context(), id); err != nil {
		log.Printf("CatalogAdminHandler.DeleteProducto: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{"error": err.Error()})
		return
	}

	h.categoriaCache.Invalidate()
	w.WriteHeader(http.StatusNoContent)
}

type categoriaPayload struct {
	Nombre         string `json:"nombre" validate:"required"`
	Descripcion    string `json:"descripcion"`
	ParentID       *uint  `json:"parent_id"`
	ImagenCircular string `json:"imagen_circular"`
}

func (h *CatalogAdminHandler) CreateCategoria(w http.ResponseWriter, r *http.Request) {
	var payload categoriaPayload
	if !h.decodeAndValidate(w, r, &payload) {
		return
	}

	categoria := models.Categoria{
		Nombre:         payload.Nombre,
		Descripcion:    payload.Descripcion,
		ParentID:       payload.ParentID,
		ImagenCircular: payload.ImagenCircular,
	}

	if err := h.categoryRepo.Create(r.Context(), &categoria); err != nil {
		if errors.Is(err, repositories.ErrCategoriaCycle) {
			_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{"error": "La categoría padre formaría un ciclo"})
			return
		}
		log.Printf("CatalogAdminHandler.CreateCategoria: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{"error": err.Error()})
		return
	}

	h.categoriaCache.Invalidate()
	_ = h.render.JSON(w, http.StatusCreated, map[string]interface{}{"success": true, "categoria": categoria})
}

func (h *CatalogAdminHandler) UpdateCategoria(w http.ResponseWriter, r *http.Request) {
	id := helpers.ParseUintParam(mux.Vars(r)["id"])

	categoria, err := h.categoryRepo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("CatalogAdminHandler.UpdateCategoria: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{"error": err.Error()})
		return
	}
	if categoria == nil {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]interface{}{"error": "Categoría no encontrada"})
		return
	}

	var payload categoriaPayload
	if !h.decodeAndValidate(w, r, &payload) {
		return
	}

	categoria.Nombre = payload.Nombre
	categoria.Descripcion = payload.Descripcion
	categoria.ParentID = payload.ParentID
	categoria.ImagenCircular = payload.ImagenCircular
	categoria.Parent = nil

	if err := h.categoryRepo.Update(r.Context(), categoria); err != nil {
		if errors.Is(err, repositories.ErrCategoriaCycle) {
			_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{"error": "La categoría padre formaría un ciclo"})
			return
		}
		log.Printf("CatalogAdminHandler.UpdateCategoria: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{"error": err.Error()})
		return
	}

	h.categoriaCache.Invalidate()
	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"success": true, "categoria": categoria})
}

func (h *CatalogAdminHandler) DeleteCategoria(w http.ResponseWriter, r *http.Request) {
	id := helpers.ParseUintParam(mux.Vars(r)["id"])

	if err := h.categoryRepo.Delete(r.Context(), id); err != nil {
		log.Printf("CatalogAdminHandler.DeleteCategoria: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{"error": err.Error()})
		return
	}

	h.categoriaCache.Invalidate()
	w.WriteHeader(http.StatusNoContent)
}
