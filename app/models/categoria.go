package models

import (
	"time"
)

type Categoria struct {
	ID             uint   `gorm:"primaryKey"`
	Nombre         string `gorm:"size:255;not null"`
	Slug           string `gorm:"size:255;not null;uniqueIndex"`
	Descripcion    string `gorm:"type:text"`
	ParentID       *uint  `gorm:"index"`
	Parent         *Categoria
	Subcategorias  []Categoria `gorm:"foreignKey:ParentID;constraint:OnDelete:SET NULL"`
	ImagenCircular string      `gorm:"size:500"`
	Productos      []Producto  `gorm:"foreignKey:CategoriaID"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Categoria) TableName() string { return "categorias" }

// RutaCompleta returns the breadcrumb path, e.g. "Maquillaje > Labios".
// Parent must be preloaded for nested levels.
func (c *Categoria) RutaCompleta() string {
	if c.Parent != nil {
		return c.Parent.RutaCompleta() + " > " + c.Nombre
	}
	return c.Nombre
}
