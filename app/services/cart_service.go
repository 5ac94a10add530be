package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/lumiereglamour/store/app/models"
	"github.com/lumiereglamour/store/app/repositories"
	"github.com/lumiereglamour/store/app/utils/format"
	"github.com/lumiereglamour/store/app/utils/imageurl"
	"github.com/shopspring/decimal"
)

var (
	ErrProductoNotFound  = errors.New("producto not found")
	ErrVariacionNotFound = errors.New("variacion not found")
)

type CartService struct {
	productRepo repositories.ProductRepositoryImpl
}

func NewCartService(productRepo repositories.ProductRepositoryImpl) *CartService {
	return &CartService{productRepo: productRepo}
}

// BuildLine resolves product and optional variant and snapshots the unit
// price and image for the session cart. A variant id equal to the product id
// means "no real variant".
func (s *CartService) BuildLine(ctx context.Context, productoID, variantID uint, cantidad int, color string) (models.CartItem, error) {
	producto, err := s.productRepo.GetActiveByID(ctx, productoID)
	if err != nil {
		return models.CartItem{}, fmt.Errorf("failed to load producto %d: %w", productoID, err)
	}
	if producto == nil {
		return models.CartItem{}, ErrProductoNotFound
	}

	precio := producto.PrecioFinal()
	imagen := imageurl.Resolve(producto)

	if variantID == 0 {
		variantID = producto.ID
	}

	if variantID != producto.ID {
		variacion, err := s.productRepo.GetVariacion(ctx, producto.ID, variantID)
		if err != nil {
			return models.CartItem{}, fmt.Errorf("failed to load variacion %d: %w", variantID, err)
		}
		if variacion == nil {
			return models.CartItem{}, ErrVariacionNotFound
		}
		if variacion.Producto == nil {
			variacion.Producto = producto
		}
		precio = variacion.PrecioFinal()
		if variacion.Imagen != "" {
			imagen = imageurl.ForceHTTPS(variacion.Imagen)
		}
		if color == "" {
			color = variacion.Color
		}
	}

	if cantidad < 1 {
		cantidad = 1
	}

	return models.CartItem{
		ProductoID: producto.ID,
		VariantID:  variantID,
		Cantidad:   cantidad,
		Color:      color,
		Precio:     precio.String(),
		Imagen:     imagen,
	}, nil
}

// MergeLine folds a new line into the cart: a line with the same variant id
// has its quantity incremented in place, anything else is appended.
func MergeLine(items []models.CartItem, line models.CartItem) []models.CartItem {
	for i := range items {
		if items[i].VariantID == line.VariantID {
			items[i].Cantidad += line.Cantidad
			return items
		}
	}
	return append(items, line)
}

// LineQuantity returns the current quantity of the line identified by
// variantID, 0 when absent.
func LineQuantity(items []models.CartItem, variantID uint) int {
	for i := range items {
		if items[i].VariantID == variantID {
			return items[i].Cantidad
		}
	}
	return 0
}

// RemoveLine drops the line identified by variantID.
func RemoveLine(items []models.CartItem, variantID uint) []models.CartItem {
	out := items[:0]
	for _, item := range items {
		if item.VariantID != variantID {
			out = append(out, item)
		}
	}
	return out
}

type CartLineView struct {
	Item     models.CartItem
	Nombre   string
	Precio   string
	Subtotal string
}

type CartView struct {
	Lines         []CartLineView
	Total         string
	TotalCantidad int
}

// BuildView decorates the session cart for rendering. Lines referencing a
// product that no longer exists are skipped and logged, not cleaned up.
func (s *CartService) BuildView(ctx context.Context, items []models.CartItem) (*CartView, error) {
	view := &CartView{}
	total := decimal.Zero

	for _, item := range items {
		producto, err := s.productRepo.GetByID(ctx, item.ProductoID)
		if err != nil {
			return nil, fmt.Errorf("failed to load producto %d for cart: %w", item.ProductoID, err)
		}
		if producto == nil {
			log.Printf("CartService.BuildView: producto %d no longer exists, skipping cart line", item.ProductoID)
			continue
		}

		precio, err := decimal.NewFromString(item.Precio)
		if err != nil {
			log.Printf("CartService.BuildView: invalid price snapshot %q for producto %d, using current price", item.Precio, item.ProductoID)
			precio = producto.PrecioFinal()
		}

		subtotal := precio.Mul(decimal.NewFromInt(int64(item.Cantidad)))
		total = total.Add(subtotal)

		view.Lines = append(view.Lines, CartLineView{
			Item:     item,
			Nombre:   producto.Nombre,
			Precio:   format.FormatPrecio(precio),
			Subtotal: format.FormatPrecio(subtotal),
		})
		view.TotalCantidad += item.Cantidad
	}

	view.Total = format.FormatPrecio(total)
	return view, nil
}
