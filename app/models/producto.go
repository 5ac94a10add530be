package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	BadgeNuevo     = "nuevo"
	BadgeTendencia = "tendencia"
	BadgeOferta    = "oferta"
)

type Producto struct {
	ID              uint            `gorm:"primaryKey"`
	Nombre          string          `gorm:"size:255;not null"`
	Slug            string          `gorm:"size:255;not null;uniqueIndex"`
	Descripcion     string          `gorm:"type:text"`
	LongDescription string          `gorm:"type:text"`
	Precio          decimal.Decimal `gorm:"type:decimal(10,0);not null;default:0"`
	Descuento       decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0.00"`
	Imagen          string          `gorm:"size:500"`
	CategoriaID     uint            `gorm:"not null;index"`
	Categoria       Categoria       `gorm:"constraint:OnDelete:CASCADE"`
	IsActive        bool            `gorm:"not null;default:true"`
	Stock           int             `gorm:"not null;default:0"`
	Badge           string          `gorm:"size:10;default:''"`
	Images          []ProductImage  `gorm:"foreignKey:ProductoID;constraint:OnDelete:CASCADE"`
	Variaciones     []Variacion     `gorm:"foreignKey:ProductoID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (Producto) TableName() string { return "productos" }

// PrecioFinal applies the product discount and rounds half-up to a whole
// currency unit. Descuento is a fraction, e.g. 0.10 for 10% off.
func (p *Producto) PrecioFinal() decimal.Decimal {
	if p.Descuento.IsPositive() {
		final := p.Precio.Mul(decimal.NewFromInt(1).Sub(p.Descuento))
		return final.Round(0)
	}
	return p.Precio
}

func (p *Producto) TieneDescuento() bool {
	return p.Descuento.IsPositive()
}

func (p *Producto) BadgeClass() string {
	switch p.Badge {
	case BadgeOferta:
		return "badge-oferta"
	case BadgeNuevo:
		return "badge-nuevo"
	case BadgeTendencia:
		return "badge-tendencia"
	}
	return ""
}

type ProductImage struct {
	ID         uint   `gorm:"primaryKey"`
	ProductoID uint   `gorm:"not null;index"`
	Image      string `gorm:"size:500"`
	AltText    string `gorm:"size:255"`
	Order      int    `gorm:"not null;default:0"`
}

func (ProductImage) TableName() string { return "product_images" }
