package migrations

import (
	"github.com/lumiereglamour/store/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Categoria{},
		&models.Producto{},
		&models.ProductImage{},
		&models.Variacion{},
		&models.Favorito{},
		&models.MenuItem{},
		&models.SiteSetting{},
		&models.Anuncio{},
	)
}
