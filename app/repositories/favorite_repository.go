package repositories

import (
	"context"
	"errors"

	"github.com/lumiereglamour/store/app/models"
	"gorm.io/gorm"
)

type FavoritoRepositoryImpl interface {
	// Toggle flips the (session, producto) favorite and returns the resulting
	// state: true when the product is now favorited.
	Toggle(ctx context.Context, sessionKey string, productoID uint) (bool, error)
	FavoritoIDs(ctx context.Context, sessionKey string) (map[uint]bool, error)
	ProductsForSession(ctx context.Context, sessionKey string) ([]models.Producto, error)
}

type favoritoRepository struct {
	db *gorm.DB
}

func NewFavoritoRepository(db *gorm.DB) FavoritoRepositoryImpl {
	return &favoritoRepository{db: db}
}

func (r *favoritoRepository) Toggle(ctx context.Context, sessionKey string, productoID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("session_key = ? AND producto_id = ?", sessionKey, productoID).
		Delete(&models.Favorito{})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return false, nil
	}

	fav := models.Favorito{SessionKey: sessionKey, ProductoID: productoID}
	if err := r.db.WithContext(ctx).Create(&fav).Error; err != nil {
		// A concurrent toggle from the same session can race us to the
		// insert; the unique constraint means the favorite exists now, which
		// is the state we were asked to produce.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return true, nil
		}
		return false, err
	}
	return true, nil
}

func (r *favoritoRepository) FavoritoIDs(ctx context.Context, sessionKey string) (map[uint]bool, error) {
	if sessionKey == "" {
		return map[uint]bool{}, nil
	}

	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.Favorito{}).
		Where("session_key = ?", sessionKey).
		Pluck("producto_id", &ids).Error
	if err != nil {
		return nil, err
	}

	set := make(map[uint]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

func (r *favoritoRepository) ProductsForSession(ctx context.Context, sessionKey string) ([]models.Producto, error) {
	var products []models.Producto
	err := r.db.WithContext(ctx).
		Joins("JOIN favoritos ON favoritos.producto_id = productos.id").
		Where("favoritos.session_key = ? AND productos.is_active = ?", sessionKey, true).
		Preload("Categoria").
		Preload("Images", galleryOrder).
		Order("favoritos.created_at DESC").
		Find(&products).Error
	return products, err
}
