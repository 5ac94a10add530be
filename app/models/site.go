package models

import "time"

type MenuItem struct {
	ID     uint   `gorm:"primaryKey"`
	Nombre string `gorm:"size:100;not null"`
	URL    string `gorm:"size:255;not null"`
	Order  int    `gorm:"not null;default:0"`
}

func (MenuItem) TableName() string { return "menu_items" }

type SiteSetting struct {
	ID    uint   `gorm:"primaryKey"`
	Key   string `gorm:"size:100;not null;uniqueIndex"`
	Value string `gorm:"size:255;not null"`
}

func (SiteSetting) TableName() string { return "site_settings" }

type Anuncio struct {
	ID          uint   `gorm:"primaryKey"`
	Titulo      string `gorm:"size:200;not null"`
	Descripcion string `gorm:"type:text"`
	Imagen      string `gorm:"size:500"`
	URL         string `gorm:"size:200"`
	IsActive    bool   `gorm:"not null;default:true"`
	Order       int    `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Anuncio) TableName() string { return "anuncios" }
