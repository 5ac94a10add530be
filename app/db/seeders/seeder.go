package seeders

import (
	"github.com/lumiereglamour/store/app/db/fakers"
	"github.com/lumiereglamour/store/app/models"
	"gorm.io/gorm"
)

type Seeder struct {
	Seeder interface{}
}

func siteSeeders() []Seeder {
	return []Seeder{
		{Seeder: &models.MenuItem{Nombre: "Inicio", URL: "/", Order: 0}},
		{Seeder: &models.MenuItem{Nombre: "Ofertas", URL: "/?ofertas=true", Order: 1}},
		{Seeder: &models.MenuItem{Nombre: "Favoritos", URL: "/favoritos/", Order: 2}},
		{Seeder: &models.SiteSetting{Key: "whatsapp_number", Value: "5491100000000"}},
		{Seeder: &models.Anuncio{Titulo: "Envío gratis en compras mayores a $ 50.000", IsActive: true, Order: 0}},
		{Seeder: &models.Anuncio{Titulo: "Nueva colección de temporada ya disponible", IsActive: true, Order: 1}},
	}
}

// DBSeed populates a development database: the category tree first, then
// products and variations per leaf, then menu items, settings and banners.
func DBSeed(db *gorm.DB) error {
	tree := map[string][]string{
		"Maquillaje": {"Labios", "Ojos", "Rostro"},
		"Cuidado de la Piel": {"Limpieza", "Hidratación"},
		"Accesorios": nil,
	}

	for nombre, hijos := range tree {
		parent := fakers.CategoriaFaker(nombre, nil)
		if err := db.Create(parent).Error; err != nil {
			return err
		}

		leaves := []*models.Categoria{parent}
		for _, hijo := range hijos {
			child := fakers.CategoriaFaker(hijo, &parent.ID)
			if err := db.Create(child).Error; err != nil {
				return err
			}
			leaves = append(leaves, child)
		}

		for _, categoria := range leaves {
			for i := 0; i < 4; i++ {
				producto := fakers.ProductoFaker(categoria)
				if err := db.Create(producto).Error; err != nil {
					return err
				}
				if i%2 == 0 {
					tonos := []struct{ valor, hex string }{
						{"Rojo Intenso", "#b3001b"},
						{"Nude Rosado", "#d9a7a0"},
					}
					for _, tono := range tonos {
						if err := db.Create(fakers.VariacionFaker(producto, tono.valor, tono.hex)).Error; err != nil {
							return err
						}
					}
				}
			}
		}
	}

	for _, seeder := range siteSeeders() {
		if err := db.Create(seeder.Seeder).Error; err != nil {
			return err
		}
	}
	return nil
}
