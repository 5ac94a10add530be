package fakers

import (
	"fmt"
	"math/rand"

	"github.com/go-faker/faker/v4"
	"github.com/gosimple/slug"
	"github.com/lumiereglamour/store/app/models"
	"github.com/shopspring/decimal"
)

var badges = []string{"", models.BadgeNuevo, models.BadgeTendencia, models.BadgeOferta}

func CategoriaFaker(nombre string, parentID *uint) *models.Categoria {
	return &models.Categoria{
		Nombre:      nombre,
		Slug:        slug.Make(nombre),
		Descripcion: faker.Sentence(),
		ParentID:    parentID,
	}
}

func ProductoFaker(categoria *models.Categoria) *models.Producto {
	nombre := faker.Word() + " " + faker.Word()

	descuento := decimal.Zero
	if rand.Intn(3) == 0 {
		descuento = decimal.NewFromInt(int64(rand.Intn(4)+1) * 5).Div(decimal.NewFromInt(100))
	}

	imagen := fmt.Sprintf("/static/img/productos/p%d.jpg", rand.Intn(8)+1)

	numImages := rand.Intn(3)
	images := make([]models.ProductImage, numImages)
	for i := 0; i < numImages; i++ {
		images[i] = models.ProductImage{
			Image:   fmt.Sprintf("/static/img/productos/g%d.jpg", rand.Intn(8)+1),
			AltText: nombre,
			Order:   i,
		}
	}

	return &models.Producto{
		Nombre:          nombre,
		Slug:            slug.Make(nombre + "-" + faker.Word()),
		Descripcion:     faker.Sentence(),
		LongDescription: faker.Paragraph(),
		Precio:          decimal.NewFromInt(int64(rand.Intn(90)+10) * 1000),
		Descuento:       descuento,
		Imagen:          imagen,
		CategoriaID:     categoria.ID,
		IsActive:        true,
		Stock:           rand.Intn(20) + 1,
		Badge:           badges[rand.Intn(len(badges))],
		Images:          images,
	}
}

func VariacionFaker(producto *models.Producto, valor, colorHex string) *models.Variacion {
	return &models.Variacion{
		ProductoID: producto.ID,
		Nombre:     "tono",
		Valor:      valor,
		Color:      valor,
		ColorHex:   colorHex,
	}
}
