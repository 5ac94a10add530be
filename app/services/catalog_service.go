package services

import (
	"context"
	"fmt"
	"log"

	"github.com/lumiereglamour/store/app/models"
	"github.com/lumiereglamour/store/app/repositories"
	"github.com/lumiereglamour/store/app/utils/format"
	"github.com/lumiereglamour/store/app/utils/imageurl"
)

const DefaultPageSize = 12

const labelOfertas = "Ofertas Especiales"

// ProductCard is a listing entry decorated for rendering: formatted prices,
// resolved image and the favorite flag for the current session.
type ProductCard struct {
	Producto    models.Producto
	Precio      string
	Descuento   string
	PrecioFinal string
	Imagen      string
	EsFavorito  bool
}

type ListOptions struct {
	Query          string
	CategoriaID    uint
	SubcategoriaID uint
	CategoriaIDs   []uint
	SoloOfertas    bool
	Badge          string
	Label          string
	Page           int
	PageSize       int
}

type ListResult struct {
	Cards             []ProductCard
	Label             string
	Page              int
	TotalPages        int
	Total             int64
	ActiveCategoriaID uint
}

type CatalogService struct {
	productRepo  repositories.ProductRepositoryImpl
	categoryRepo repositories.CategoryRepositoryImpl
	favoritoRepo repositories.FavoritoRepositoryImpl
}

func NewCatalogService(
	productRepo repositories.ProductRepositoryImpl,
	categoryRepo repositories.CategoryRepositoryImpl,
	favoritoRepo repositories.FavoritoRepositoryImpl,
) *CatalogService {
	return &CatalogService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		favoritoRepo: favoritoRepo,
	}
}

// ListProducts composes the filter set of the listing pages: on-sale flag,
// free-text search, category, subcategory and badge, then paginates and
// decorates the current page. Unresolvable category ids are skipped, never
// surfaced as errors.
func (s *CatalogService) ListProducts(ctx context.Context, sessionKey string, opts ListOptions) (*ListResult, error) {
	filters := repositories.ProductFilters{
		Query:        opts.Query,
		SoloOfertas:  opts.SoloOfertas,
		Badge:        opts.Badge,
		CategoriaIDs: opts.CategoriaIDs,
	}

	label := opts.Label
	var activeCategoriaID uint

	if opts.SoloOfertas {
		label = labelOfertas
	}

	if opts.CategoriaID != 0 {
		categoria, err := s.categoryRepo.GetByID(ctx, opts.CategoriaID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve categoria %d: %w", opts.CategoriaID, err)
		}
		if categoria != nil {
			filters.CategoriaID = categoria.ID
			label = categoria.Nombre
			activeCategoriaID = categoria.ID
		}
	}

	if opts.SubcategoriaID != 0 {
		subcategoria, err := s.categoryRepo.GetByID(ctx, opts.SubcategoriaID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve subcategoria %d: %w", opts.SubcategoriaID, err)
		}
		if subcategoria != nil {
			filters.SubcategoriaID = subcategoria.ID
			if label != "" {
				label = fmt.Sprintf("%s (%s)", subcategoria.Nombre, label)
			} else {
				label = subcategoria.Nombre
			}
			if subcategoria.ParentID != nil {
				activeCategoriaID = *subcategoria.ParentID
			}
		}
	}

	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	page := opts.Page
	if page < 1 {
		page = 1
	}

	products, total, err := s.productRepo.FilterPaginated(ctx, filters, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list productos: %w", err)
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if totalPages < 1 {
		totalPages = 1
	}

	// Out-of-range pages fall back to the last valid page instead of erroring.
	if len(products) == 0 && page > totalPages {
		page = totalPages
		products, total, err = s.productRepo.FilterPaginated(ctx, filters, pageSize, (page-1)*pageSize)
		if err != nil {
			return nil, fmt.Errorf("failed to list productos: %w", err)
		}
	}

	cards, err := s.Decorate(ctx, sessionKey, products)
	if err != nil {
		return nil, err
	}

	return &ListResult{
		Cards:             cards,
		Label:             label,
		Page:              page,
		TotalPages:        totalPages,
		Total:             total,
		ActiveCategoriaID: activeCategoriaID,
	}, nil
}

// ListByCategoriaSlug lists the active products of a category and all of its
// descendants. Returns a nil result when the slug does not resolve.
func (s *CatalogService) ListByCategoriaSlug(ctx context.Context, sessionKey, slug string, page int) (*ListResult, *models.Categoria, error) {
	categoria, err := s.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve categoria %q: %w", slug, err)
	}
	if categoria == nil {
		return nil, nil, nil
	}

	ids, err := s.categoryRepo.DescendantIDs(ctx, categoria.ID)
	if err != nil {
		return nil, nil, err
	}

	result, err := s.ListProducts(ctx, sessionKey, ListOptions{
		CategoriaIDs: ids,
		Label:        categoria.Nombre,
		Page:         page,
	})
	if err != nil {
		return nil, nil, err
	}
	result.ActiveCategoriaID = categoria.ID
	return result, categoria, nil
}

// Decorate builds the rendering cards for a set of products, flagging the
// ones favorited by the session.
func (s *CatalogService) Decorate(ctx context.Context, sessionKey string, products []models.Producto) ([]ProductCard, error) {
	favoritos, err := s.favoritoRepo.FavoritoIDs(ctx, sessionKey)
	if err != nil {
		log.Printf("CatalogService.Decorate: failed to load favoritos for session %s: %v", sessionKey, err)
		favoritos = map[uint]bool{}
	}

	cards := make([]ProductCard, len(products))
	for i := range products {
		p := products[i]
		cards[i] = ProductCard{
			Producto:    p,
			Precio:      format.FormatPrecio(p.Precio),
			Descuento:   format.FormatDescuento(p.Descuento),
			PrecioFinal: format.FormatPrecio(p.PrecioFinal()),
			Imagen:      imageurl.Resolve(&p),
			EsFavorito:  favoritos[p.ID],
		}
	}
	return cards, nil
}
