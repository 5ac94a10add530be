package repositories

import (
	"context"
	"errors"

	"github.com/lumiereglamour/store/app/models"
	"gorm.io/gorm"
)

type SiteRepositoryImpl interface {
	GetMenuItems(ctx context.Context) ([]models.MenuItem, error)
	GetSetting(ctx context.Context, key, fallback string) string
	SetSetting(ctx context.Context, key, value string) error
	GetActiveAnuncios(ctx context.Context) ([]models.Anuncio, error)

	CreateMenuItem(ctx context.Context, item *models.MenuItem) error
	DeleteMenuItem(ctx context.Context, id uint) error
	CreateAnuncio(ctx context.Context, anuncio *models.Anuncio) error
	UpdateAnuncio(ctx context.Context, anuncio *models.Anuncio) error
	DeleteAnuncio(ctx context.Context, id uint) error
	GetAnuncioByID(ctx context.Context, id uint) (*models.Anuncio, error)
}

type siteRepository struct {
	db *gorm.DB
}

func NewSiteRepository(db *gorm.DB) SiteRepositoryImpl {
	return &siteRepository{db: db}
}

func (r *siteRepository) GetMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.db.WithContext(ctx).Order(`"order" ASC`).Find(&items).Error
	return items, err
}

// GetSetting reads a site setting, returning fallback when the key is absent
// or the lookup fails. Configuration reads never take a page down.
func (r *siteRepository) GetSetting(ctx context.Context, key, fallback string) string {
	var setting models.SiteSetting
	err := r.db.WithContext(ctx).First(&setting, "key = ?", key).Error
	if err != nil {
		return fallback
	}
	return setting.Value
}

func (r *siteRepository) SetSetting(ctx context.Context, key, value string) error {
	var setting models.SiteSetting
	err := r.db.WithContext(ctx).First(&setting, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return r.db.WithContext(ctx).Create(&models.SiteSetting{Key: key, Value: value}).Error
		}
		return err
	}
	setting.Value = value
	return r.db.WithContext(ctx).Save(&setting).Error
}

func (r *siteRepository) GetActiveAnuncios(ctx context.Context) ([]models.Anuncio, error) {
	var anuncios []models.Anuncio
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order(`"order" ASC, created_at DESC`).
		Find(&anuncios).Error
	return anuncios, err
}

func (r *siteRepository) CreateMenuItem(ctx context.Context, item *models.MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *siteRepository) DeleteMenuItem(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.MenuItem{}, "id = ?", id).Error
}

func (r *siteRepository) CreateAnuncio(ctx context.Context, anuncio *models.Anuncio) error {
	return r.db.WithContext(ctx).Create(anuncio).Error
}

func (r *siteRepository) UpdateAnuncio(ctx context.Context, anuncio *models.Anuncio) error {
	return r.db.WithContext(ctx).Save(anuncio).Error
}

func (r *siteRepository) DeleteAnuncio(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Anuncio{}, "id = ?", id).Error
}

func (r *siteRepository) GetAnuncioByID(ctx context.Context, id uint) (*models.Anuncio, error) {
	var anuncio models.Anuncio
	err := r.db.WithContext(ctx).First(&anuncio, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &anuncio, nil
}
