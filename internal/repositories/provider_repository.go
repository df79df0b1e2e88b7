package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"modelhub/internal/models"
)

type ProviderRepository interface {
	Create(ctx context.Context, p *models.Provider) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Provider, error)
	GetByName(ctx context.Context, name string) (*models.Provider, error)
	ListVisible(ctx context.Context, userID uuid.UUID) ([]models.Provider, error)
	Save(ctx context.Context, p *models.Provider) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type providerRepository struct {
	db *gorm.DB
}

func NewProviderRepository(db *gorm.DB) ProviderRepository {
	return &providerRepository{db: db}
}

func (r *providerRepository) Create(ctx context.Context, p *models.Provider) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *providerRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Provider, error) {
	var p models.Provider
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&p).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// GetByName matches ignoring case, across all owners.
func (r *providerRepository) GetByName(ctx context.Context, name string) (*models.Provider, error) {
	var p models.Provider
	key := strings.ToLower(strings.TrimSpace(name))
	if err := r.db.WithContext(ctx).Where("name_key = ?", key).Take(&p).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// ListVisible returns system providers plus the given user's private ones,
// ordered by position with creation order breaking ties. uuid.Nil restricts
// the result to system rows.
func (r *providerRepository) ListVisible(ctx context.Context, userID uuid.UUID) ([]models.Provider, error) {
	q := r.db.WithContext(ctx).Order("position, created_at, id")
	if userID == uuid.Nil {
		q = q.Where("owner_id IS NULL")
	} else {
		q = q.Where("owner_id IS NULL OR owner_id = ?", userID)
	}
	var providers []models.Provider
	if err := q.Find(&providers).Error; err != nil {
		return nil, err
	}
	return providers, nil
}

func (r *providerRepository) Save(ctx context.Context, p *models.Provider) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *providerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Provider{}).Error
}
