package models

import (
	"github.com/shopspring/decimal"
)

type Variacion struct {
	ID            uint   `gorm:"primaryKey"`
	ProductoID    uint   `gorm:"not null;index;uniqueIndex:idx_variacion_triple"`
	Producto      *Producto
	Nombre        string           `gorm:"size:100;not null;uniqueIndex:idx_variacion_triple"`
	Valor         string           `gorm:"size:100;not null;uniqueIndex:idx_variacion_triple"`
	Color         string           `gorm:"size:50"`
	ColorHex      string           `gorm:"size:7"`
	Tono          string           `gorm:"size:50"`
	Presentacion  string           `gorm:"size:50"`
	Imagen        string           `gorm:"size:500"`
	PriceOverride *decimal.Decimal `gorm:"type:decimal(10,2)"`
}

func (Variacion) TableName() string { return "variaciones" }

// PrecioFinal uses the override when present, else the parent product price,
// and applies the parent product's discount with the same half-up rounding.
// Producto must be loaded.
func (v *Variacion) PrecioFinal() decimal.Decimal {
	base := v.Producto.Precio
	if v.PriceOverride != nil {
		base = *v.PriceOverride
	}
	if v.Producto.Descuento.IsPositive() {
		final := base.Mul(decimal.NewFromInt(1).Sub(v.Producto.Descuento))
		return final.Round(0)
	}
	return base
}
