package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lumiereglamour/store/app/helpers"
	"github.com/lumiereglamour/store/app/models"
	"github.com/lumiereglamour/store/app/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unrolled/render"
)

func cartFixture() (*CartHandler, *mockSessionStore) {
	override := decimal.RequireFromString("20000.00")

	productRepo := &mockProductRepo{
		products: []models.Producto{
			{
				ID:        1,
				Nombre:    "Labial Mate",
				Precio:    decimal.NewFromInt(10000),
				Descuento: decimal.RequireFromString("0.10"),
				IsActive:  true,
			},
			{ID: 2, Nombre: "Descontinuado", Precio: decimal.NewFromInt(5000), IsActive: false},
		},
		variaciones: []models.Variacion{
			{ID: 11, ProductoID: 1, Nombre: "tono", Valor: "Rojo", Color: "Rojo", PriceOverride: &override},
		},
	}

	store := &mockSessionStore{}
	h := NewCartHandler(
		services.NewCartService(productRepo),
		store,
		helpers.NewBaseDataProvider(&mockSiteRepo{}, ""),
		render.New(),
	)
	return h, store
}

func postJSON(t *testing.T, h http.HandlerFunc, target, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h(rec, req)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return rec, payload
}

func TestAgregarAlCarrito_WrongMethod(t *testing.T) {
	h, _ := cartFixture()

	req := httptest.NewRequest(http.MethodGet, "/agregar-al-carrito/", nil)
	rec := httptest.NewRecorder()
	h.AgregarAlCarrito(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestAgregarAlCarrito_BadBody(t *testing.T) {
	h, _ := cartFixture()

	rec, _ := postJSON(t, h.AgregarAlCarrito, "/agregar-al-carrito/", "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = postJSON(t, h.AgregarAlCarrito, "/agregar-al-carrito/", `{"quantity": 2}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAgregarAlCarrito_ProductoDesconocido(t *testing.T) {
	h, _ := cartFixture()

	rec, _ := postJSON(t, h.AgregarAlCarrito, "/agregar-al-carrito/", `{"producto_id": 99}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAgregarAlCarrito_ProductoInactivo(t *testing.T) {
	h, _ := cartFixture()

	rec, _ := postJSON(t, h.AgregarAlCarrito, "/agregar-al-carrito/", `{"producto_id": 2}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAgregarAlCarrito_MergeSameLine(t *testing.T) {
	h, store := cartFixture()

	rec, payload := postJSON(t, h.AgregarAlCarrito, "/agregar-al-carrito/", `{"producto_id": 1, "quantity": 2}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(2), payload["quantity"])

	rec, payload = postJSON(t, h.AgregarAlCarrito, "/agregar-al-carrito/", `{"producto_id": 1, "quantity": 2}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(4), payload["quantity"])

	require.Len(t, store.items, 1)
	assert.Equal(t, 4, store.items[0].Cantidad)
	assert.Equal(t, "9000", store.items[0].Precio)
}

func TestAgregarAlCarrito_VariantOverride(t *testing.T) {
	h, store := cartFixture()

	rec, _ := postJSON(t, h.AgregarAlCarrito, "/agregar-al-carrito/", `{"producto_id": 1, "variant_id": 11}`)
	require.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, store.items, 1)
	assert.Equal(t, uint(11), store.items[0].VariantID)
	assert.Equal(t, 1, store.items[0].Cantidad)
	assert.Equal(t, "18000", store.items[0].Precio)
	assert.Equal(t, "Rojo", store.items[0].Color)
}

func TestAgregarAlCarrito_VariantDesconocida(t *testing.T) {
	h, _ := cartFixture()

	rec, _ := postJSON(t, h.AgregarAlCarrito, "/agregar-al-carrito/", `{"producto_id": 1, "variant_id": 77}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEliminarDelCarrito(t *testing.T) {
	h, store := cartFixture()
	store.items = []models.CartItem{
		{ProductoID: 1, VariantID: 1, Cantidad: 2, Precio: "9000"},
		{ProductoID: 1, VariantID: 11, Cantidad: 1, Precio: "18000"},
	}

	rec, _ := postJSON(t, h.EliminarDelCarrito, "/eliminar-del-carrito/", `{"variant_id": 11}`)
	require.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, store.items, 1)
	assert.Equal(t, uint(1), store.items[0].VariantID)
}

func TestEliminarDelCarrito_MissingVariant(t *testing.T) {
	h, _ := cartFixture()

	rec, _ := postJSON(t, h.EliminarDelCarrito, "/eliminar-del-carrito/", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
