package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/lumiereglamour/store/app/models"
	"gorm.io/gorm"
)

var ErrCategoriaCycle = errors.New("categoria parent chain would form a cycle")

type CategoryRepositoryImpl interface {
	Create(ctx context.Context, categoria *models.Categoria) error
	Update(ctx context.Context, categoria *models.Categoria) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*models.Categoria, error)
	GetBySlug(ctx context.Context, slug string) (*models.Categoria, error)
	GetAll(ctx context.Context) ([]models.Categoria, error)
	GetPrincipales(ctx context.Context) ([]models.Categoria, error)
	GetChildren(ctx context.Context, parentID uint) ([]models.Categoria, error)
	DescendantIDs(ctx context.Context, rootID uint) ([]uint, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepositoryImpl {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, categoria *models.Categoria) error {
	if categoria.Slug == "" {
		categoria.Slug = UniqueSlug(categoria.Nombre, func(candidate string) bool {
			return r.slugTaken(ctx, candidate, categoria.ID)
		})
	}
	if err := r.checkParentCycle(ctx, categoria); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(categoria).Error
}

func (r *categoryRepository) Update(ctx context.Context, categoria *models.Categoria) error {
	if categoria.Slug == "" {
		categoria.Slug = UniqueSlug(categoria.Nombre, func(candidate string) bool {
			return r.slugTaken(ctx, candidate, categoria.ID)
		})
	}
	if err := r.checkParentCycle(ctx, categoria); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Save(categoria).Error
}

func (r *categoryRepository) checkParentCycle(ctx context.Context, categoria *models.Categoria) error {
	return checkParentCycle(categoria, func(id uint) (*models.Categoria, error) {
		return r.GetByID(ctx, id)
	})
}

// checkParentCycle walks the ancestors of the proposed parent; the category
// being saved must not appear in that chain.
func checkParentCycle(categoria *models.Categoria, lookup func(id uint) (*models.Categoria, error)) error {
	if categoria.ParentID == nil || categoria.ID == 0 {
		return nil
	}

	visited := map[uint]bool{categoria.ID: true}
	currentID := *categoria.ParentID

	for {
		if visited[currentID] {
			return ErrCategoriaCycle
		}
		visited[currentID] = true

		ancestor, err := lookup(currentID)
		if err != nil {
			return err
		}
		if ancestor == nil || ancestor.ParentID == nil {
			return nil
		}
		currentID = *ancestor.ParentID
	}
}

func (r *categoryRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Categoria{}, "id = ?", id).Error
}

func (r *categoryRepository) GetByID(ctx context.Context, id uint) (*models.Categoria, error) {
	var categoria models.Categoria
	err := r.db.WithContext(ctx).Preload("Parent").First(&categoria, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &categoria, nil
}

func (r *categoryRepository) GetBySlug(ctx context.Context, slug string) (*models.Categoria, error) {
	var categoria models.Categoria
	err := r.db.WithContext(ctx).
		Preload("Parent").
		Preload("Subcategorias").
		First(&categoria, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &categoria, nil
}

func (r *categoryRepository) GetAll(ctx context.Context) ([]models.Categoria, error) {
	var categorias []models.Categoria
	err := r.db.WithContext(ctx).Order("nombre ASC").Find(&categorias).Error
	if err != nil {
		return nil, err
	}
	return categorias, nil
}

func (r *categoryRepository) GetPrincipales(ctx context.Context) ([]models.Categoria, error) {
	var categorias []models.Categoria
	err := r.db.WithContext(ctx).
		Preload("Subcategorias").
		Where("parent_id IS NULL").
		Order("nombre ASC").
		Find(&categorias).Error
	if err != nil {
		return nil, err
	}
	return categorias, nil
}

func (r *categoryRepository) GetChildren(ctx context.Context, parentID uint) ([]models.Categoria, error) {
	var categorias []models.Categoria
	err := r.db.WithContext(ctx).Where("parent_id = ?", parentID).Find(&categorias).Error
	if err != nil {
		return nil, err
	}
	return categorias, nil
}

func (r *categoryRepository) DescendantIDs(ctx context.Context, rootID uint) ([]uint, error) {
	return collectDescendantIDs(rootID, func(id uint) ([]models.Categoria, error) {
		return r.GetChildren(ctx, id)
	})
}

// collectDescendantIDs collects the ids of the category and every descendant
// with an iterative breadth-first walk. The visited set makes the walk
// terminate even on a corrupted parent chain containing a cycle.
func collectDescendantIDs(rootID uint, children func(id uint) ([]models.Categoria, error)) ([]uint, error) {
	visited := map[uint]bool{rootID: true}
	ids := []uint{rootID}
	queue := []uint{rootID}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		hijos, err := children(current)
		if err != nil {
			return nil, fmt.Errorf("failed to load children of categoria %d: %w", current, err)
		}
		for _, child := range hijos {
			if visited[child.ID] {
				continue
			}
			visited[child.ID] = true
			ids = append(ids, child.ID)
			queue = append(queue, child.ID)
		}
	}

	return ids, nil
}

func (r *categoryRepository) slugTaken(ctx context.Context, candidate string, excludeID uint) bool {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Categoria{}).
		Where("slug = ? AND id <> ?", candidate, excludeID).
		Count(&count).Error
	if err != nil {
		return false
	}
	return count > 0
}
