package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"modelhub/internal/models"
)

type ProviderConfigRepository interface {
	GetByUserAndProvider(ctx context.Context, userID, providerID uuid.UUID) (*models.UserProviderConfig, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.UserProviderConfig, error)
	Save(ctx context.Context, cfg *models.UserProviderConfig) error
	DeleteByProvider(ctx context.Context, providerID uuid.UUID) error
}

type providerConfigRepository struct {
	db *gorm.DB
}

func NewProviderConfigRepository(db *gorm.DB) ProviderConfigRepository {
	return &providerConfigRepository{db: db}
}

func (r *providerConfigRepository) GetByUserAndProvider(ctx context.Context, userID, providerID uuid.UUID) (*models.UserProviderConfig, error) {
	var cfg models.UserProviderConfig
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND provider_id = ?", userID, providerID).
		Take(&cfg).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &cfg, nil
}

func (r *providerConfigRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.UserProviderConfig, error) {
	var configs []models.UserProviderConfig
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&configs).Error; err != nil {
		return nil, err
	}
	return configs, nil
}

// Save persists a new or loaded config row. Read-modify-write pairs run
// inside a store transaction, so no upsert clause is needed here.
func (r *providerConfigRepository) Save(ctx context.Context, cfg *models.UserProviderConfig) error {
	return r.db.WithContext(ctx).Save(cfg).Error
}

func (r *providerConfigRepository) DeleteByProvider(ctx context.Context, providerID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("provider_id = ?", providerID).Delete(&models.UserProviderConfig{}).Error
}
