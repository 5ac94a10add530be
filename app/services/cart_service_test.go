package services

import (
	"context"
	"testing"

	"github.com/lumiereglamour/store/app/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCartService() *CartService {
	override := decimal.RequireFromString("20000.00")
	producto := models.Producto{
		ID: 5, Nombre: "Labial Rojo", IsActive: true,
		Precio:    decimal.RequireFromString("10000"),
		Descuento: decimal.RequireFromString("0.10"),
		Imagen:    "http://cdn.example.com/labial.jpg",
	}
	repo := &mockProductRepo{
		products: []models.Producto{producto},
		variaciones: []models.Variacion{
			{ID: 50, ProductoID: 5, Nombre: "tono", Valor: "rojo", Color: "Rojo", PriceOverride: &override, Producto: &producto},
		},
	}
	return NewCartService(repo)
}

func TestBuildLineWithoutVariant(t *testing.T) {
	svc := testCartService()

	line, err := svc.BuildLine(context.Background(), 5, 0, 2, "")
	require.NoError(t, err)

	assert.Equal(t, uint(5), line.ProductoID)
	assert.Equal(t, uint(5), line.VariantID, "variant id defaults to the product id")
	assert.Equal(t, 2, line.Cantidad)
	assert.Equal(t, "9000", line.Precio, "effective price with discount applied")
	assert.Equal(t, "https://cdn.example.com/labial.jpg", line.Imagen)
}

func TestBuildLineWithVariantOverride(t *testing.T) {
	svc := testCartService()

	line, err := svc.BuildLine(context.Background(), 5, 50, 1, "")
	require.NoError(t, err)

	assert.Equal(t, uint(50), line.VariantID)
	// Override 20000.00 with the product's 10% discount, rounded half-up.
	assert.Equal(t, "18000", line.Precio)
	assert.Equal(t, "Rojo", line.Color)
}

func TestBuildLineUnknownProducto(t *testing.T) {
	svc := testCartService()

	_, err := svc.BuildLine(context.Background(), 999, 0, 1, "")
	assert.ErrorIs(t, err, ErrProductoNotFound)
}

func TestBuildLineUnknownVariacion(t *testing.T) {
	svc := testCartService()

	_, err := svc.BuildLine(context.Background(), 5, 888, 1, "")
	assert.ErrorIs(t, err, ErrVariacionNotFound)
}

func TestMergeLineIncrementsExisting(t *testing.T) {
	items := []models.CartItem{{ProductoID: 5, VariantID: 5, Cantidad: 2, Precio: "9000"}}

	items = MergeLine(items, models.CartItem{ProductoID: 5, VariantID: 5, Cantidad: 2, Precio: "9000"})

	require.Len(t, items, 1, "re-adding the same variant merges into one line")
	assert.Equal(t, 4, items[0].Cantidad)
}

func TestMergeLineAppendsDifferentVariant(t *testing.T) {
	items := []models.CartItem{{ProductoID: 5, VariantID: 5, Cantidad: 1}}

	items = MergeLine(items, models.CartItem{ProductoID: 5, VariantID: 50, Cantidad: 1})

	assert.Len(t, items, 2)
}

func TestRemoveLine(t *testing.T) {
	items := []models.CartItem{
		{VariantID: 5, Cantidad: 1},
		{VariantID: 50, Cantidad: 2},
	}

	items = RemoveLine(items, 5)

	require.Len(t, items, 1)
	assert.Equal(t, uint(50), items[0].VariantID)
}

func TestBuildViewSkipsMissingProducts(t *testing.T) {
	svc := testCartService()

	view, err := svc.BuildView(context.Background(), []models.CartItem{
		{ProductoID: 5, VariantID: 5, Cantidad: 2, Precio: "9000"},
		{ProductoID: 777, VariantID: 777, Cantidad: 1, Precio: "1000"},
	})
	require.NoError(t, err)

	require.Len(t, view.Lines, 1)
	assert.Equal(t, "Labial Rojo", view.Lines[0].Nombre)
	assert.Equal(t, "$ 9.000", view.Lines[0].Precio)
	assert.Equal(t, "$ 18.000", view.Lines[0].Subtotal)
	assert.Equal(t, "$ 18.000", view.Total)
	assert.Equal(t, 2, view.TotalCantidad)
}
