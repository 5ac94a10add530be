package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/lumiereglamour/store/app/models"
	"gorm.io/gorm"
)

// ProductFilters is the composable filter set behind the listing pages and
// the live search. Zero values mean "filter not applied".
type ProductFilters struct {
	Query          string
	CategoriaID    uint
	SubcategoriaID uint
	CategoriaIDs   []uint
	SoloOfertas    bool
	Badge          string
}

type ProductRepositoryImpl interface {
	FilterPaginated(ctx context.Context, f ProductFilters, limit, offset int) ([]models.Producto, int64, error)
	SearchActive(ctx context.Context, query string, limit int) ([]models.Producto, error)
	GetByID(ctx context.Context, id uint) (*models.Producto, error)
	GetActiveByID(ctx context.Context, id uint) (*models.Producto, error)
	GetVariacion(ctx context.Context, productoID, variacionID uint) (*models.Variacion, error)
	RelatedByCategoria(ctx context.Context, categoriaID, excludeID uint, limit int) ([]models.Producto, error)
	GetAllActive(ctx context.Context) ([]models.Producto, error)
	Create(ctx context.Context, producto *models.Producto) error
	Update(ctx context.Context, producto *models.Producto) error
	Delete(ctx context.Context, id uint) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepositoryImpl {
	return &productRepository{db}
}

func galleryOrder(db *gorm.DB) *gorm.DB {
	return db.Order(`product_images."order" ASC`)
}

func (p *productRepository) applyFilters(db *gorm.DB, f ProductFilters) *gorm.DB {
	q := db.Model(&models.Producto{}).
		Joins("JOIN categorias ON categorias.id = productos.categoria_id").
		Where("productos.is_active = ?", true)

	if f.SoloOfertas {
		q = q.Where("productos.descuento > 0")
	}
	if f.Query != "" {
		like := "%" + strings.ToLower(f.Query) + "%"
		q = q.Where(
			"LOWER(productos.nombre) LIKE ? OR LOWER(productos.descripcion) LIKE ? OR LOWER(categorias.nombre) LIKE ?",
			like, like, like,
		)
	}
	if f.CategoriaID != 0 {
		q = q.Where("productos.categoria_id = ?", f.CategoriaID)
	}
	if f.SubcategoriaID != 0 {
		// Products in the subcategory itself or one nesting level below it.
		q = q.Where("(categorias.id = ? OR categorias.parent_id = ?)", f.SubcategoriaID, f.SubcategoriaID)
	}
	if len(f.CategoriaIDs) > 0 {
		q = q.Where("productos.categoria_id IN ?", f.CategoriaIDs)
	}
	if f.Badge != "" {
		q = q.Where("productos.badge = ?", f.Badge)
	}

	return q.Distinct("productos.*")
}

func (p *productRepository) FilterPaginated(ctx context.Context, f ProductFilters, limit, offset int) ([]models.Producto, int64, error) {
	var products []models.Producto
	var total int64

	if err := p.applyFilters(p.db.WithContext(ctx), f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := p.applyFilters(p.db.WithContext(ctx), f).
		Preload("Categoria").
		Preload("Images", galleryOrder).
		Order("productos.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&products).Error

	return products, total, err
}

func (p *productRepository) SearchActive(ctx context.Context, query string, limit int) ([]models.Producto, error) {
	var products []models.Producto
	err := p.applyFilters(p.db.WithContext(ctx), ProductFilters{Query: query}).
		Preload("Categoria").
		Preload("Images", galleryOrder).
		Order("productos.created_at DESC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (p *productRepository) GetByID(ctx context.Context, id uint) (*models.Producto, error) {
	var producto models.Producto
	err := p.db.WithContext(ctx).
		Preload("Categoria").
		Preload("Categoria.Parent").
		Preload("Images", galleryOrder).
		Preload("Variaciones").
		First(&producto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &producto, nil
}

func (p *productRepository) GetActiveByID(ctx context.Context, id uint) (*models.Producto, error) {
	var producto models.Producto
	err := p.db.WithContext(ctx).
		Preload("Categoria").
		Preload("Images", galleryOrder).
		Preload("Variaciones").
		First(&producto, "id = ? AND is_active = ?", id, true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &producto, nil
}

func (p *productRepository) GetVariacion(ctx context.Context, productoID, variacionID uint) (*models.Variacion, error) {
	var variacion models.Variacion
	err := p.db.WithContext(ctx).
		Preload("Producto").
		First(&variacion, "id = ? AND producto_id = ?", variacionID, productoID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &variacion, nil
}

func (p *productRepository) RelatedByCategoria(ctx context.Context, categoriaID, excludeID uint, limit int) ([]models.Producto, error) {
	var products []models.Producto
	err := p.db.WithContext(ctx).
		Preload("Categoria").
		Preload("Images", galleryOrder).
		Where("categoria_id = ? AND id <> ? AND is_active = ?", categoriaID, excludeID, true).
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (p *productRepository) GetAllActive(ctx context.Context) ([]models.Producto, error) {
	var products []models.Producto
	err := p.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&products).Error
	return products, err
}

func (p *productRepository) Create(ctx context.Context, producto *models.Producto) error {
	if producto.Slug == "" {
		producto.Slug = UniqueSlug(producto.Nombre, func(candidate string) bool {
			return p.slugTaken(ctx, candidate, producto.ID)
		})
	}
	return p.db.WithContext(ctx).Create(producto).Error
}

func (p *productRepository) Update(ctx context.Context, producto *models.Producto) error {
	if producto.Slug == "" {
		producto.Slug = UniqueSlug(producto.Nombre, func(candidate string) bool {
			return p.slugTaken(ctx, candidate, producto.ID)
		})
	}
	return p.db.WithContext(ctx).Save(producto).Error
}

func (p *productRepository) Delete(ctx context.Context, id uint) error {
	return p.db.WithContext(ctx).Delete(&models.Producto{}, "id = ?", id).Error
}

func (p *productRepository) slugTaken(ctx context.Context, candidate string, excludeID uint) bool {
	var count int64
	err := p.db.WithContext(ctx).
		Model(&models.Producto{}).
		Where("slug = ? AND id <> ?", candidate, excludeID).
		Count(&count).Error
	if err != nil {
		return false
	}
	return count > 0
}
