package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPrecioFinalAppliesDiscount(t *testing.T) {
	p := &Producto{
		Nombre:    "Prod",
		Precio:    decimal.RequireFromString("10000"),
		Descuento: decimal.RequireFromString("0.10"),
	}

	assert.True(t, p.PrecioFinal().Equal(decimal.RequireFromString("9000")))
}

func TestPrecioFinalWithoutDiscountReturnsPrecio(t *testing.T) {
	p := &Producto{
		Precio:    decimal.RequireFromString("12500"),
		Descuento: decimal.Zero,
	}

	assert.True(t, p.PrecioFinal().Equal(decimal.RequireFromString("12500")))
}

func TestPrecioFinalRoundsHalfUp(t *testing.T) {
	// 13333 * 0.85 = 11333.05 -> 11333; 101 * 0.5 = 50.5 -> 51
	p := &Producto{
		Precio:    decimal.RequireFromString("101"),
		Descuento: decimal.RequireFromString("0.50"),
	}

	assert.Equal(t, "51", p.PrecioFinal().String())
}

func TestVariacionPrecioFinalUsesProductDiscount(t *testing.T) {
	producto := &Producto{
		Precio:    decimal.RequireFromString("10000"),
		Descuento: decimal.RequireFromString("0.10"),
	}
	override := decimal.RequireFromString("20000.00")
	v := &Variacion{
		Producto:      producto,
		Nombre:        "Tipo",
		Valor:         "Val",
		PriceOverride: &override,
	}

	assert.True(t, v.PrecioFinal().Equal(decimal.RequireFromString("18000")))
}

func TestVariacionPrecioFinalFallsBackToProductPrice(t *testing.T) {
	producto := &Producto{
		Precio:    decimal.RequireFromString("15000"),
		Descuento: decimal.Zero,
	}
	v := &Variacion{Producto: producto, Nombre: "Tono", Valor: "Rojo"}

	assert.True(t, v.PrecioFinal().Equal(decimal.RequireFromString("15000")))
}

func TestBadgeClass(t *testing.T) {
	cases := []struct {
		badge string
		want  string
	}{
		{BadgeOferta, "badge-oferta"},
		{BadgeNuevo, "badge-nuevo"},
		{BadgeTendencia, "badge-tendencia"},
		{"", ""},
	}

	for _, c := range cases {
		p := &Producto{Badge: c.badge}
		assert.Equal(t, c.want, p.BadgeClass())
	}
}

func TestRutaCompleta(t *testing.T) {
	padre := &Categoria{Nombre: "Maquillaje"}
	hija := &Categoria{Nombre: "Labios", Parent: padre}

	assert.Equal(t, "Maquillaje > Labios", hija.RutaCompleta())
	assert.Equal(t, "Maquillaje", padre.RutaCompleta())
}
