package models

import "time"

type Favorito struct {
	ID         uint   `gorm:"primaryKey"`
	SessionKey string `gorm:"size:40;not null;uniqueIndex:idx_favorito_session_producto"`
	ProductoID uint   `gorm:"not null;uniqueIndex:idx_favorito_session_producto"`
	Producto   *Producto
	CreatedAt  time.Time
}

func (Favorito) TableName() string { return "favoritos" }
