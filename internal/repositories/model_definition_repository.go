package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"modelhub/internal/models"
)

type ModelDefinitionRepository interface {
	Create(ctx context.Context, def *models.ModelDefinition) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.ModelDefinition, error)
	ListByProvider(ctx context.Context, providerID uuid.UUID) ([]models.ModelDefinition, error)
	ListVisibleByProvider(ctx context.Context, providerID, userID uuid.UUID) ([]models.ModelDefinition, error)
	Count(ctx context.Context) (int64, error)
	Save(ctx context.Context, def *models.ModelDefinition) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByProvider(ctx context.Context, providerID uuid.UUID) error
}

type modelDefinitionRepository struct {
	db *gorm.DB
}

func NewModelDefinitionRepository(db *gorm.DB) ModelDefinitionRepository {
	return &modelDefinitionRepository{db: db}
}

func (r *modelDefinitionRepository) Create(ctx context.Context, def *models.ModelDefinition) error {
	return r.db.WithContext(ctx).Create(def).Error
}

func (r *modelDefinitionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ModelDefinition, error) {
	var def models.ModelDefinition
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&def).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &def, nil
}

// ListByProvider returns every definition under a provider, all owners. Used
// by the cascade delete.
func (r *modelDefinitionRepository) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]models.ModelDefinition, error) {
	var defs []models.ModelDefinition
	err := r.db.WithContext(ctx).
		Where("provider_id = ?", providerID).
		Order("position, created_at, id").
		Find(&defs).Error
	if err != nil {
		return nil, err
	}
	return defs, nil
}

// ListVisibleByProvider returns system definitions plus the given user's
// private ones. uuid.Nil restricts the result to system rows.
func (r *modelDefinitionRepository) ListVisibleByProvider(ctx context.Context, providerID, userID uuid.UUID) ([]models.ModelDefinition, error) {
	q := r.db.WithContext(ctx).
		Where("provider_id = ?", providerID).
		Order("position, created_at, id")
	if userID == uuid.Nil {
		q = q.Where("owner_id IS NULL")
	} else {
		q = q.Where("owner_id IS NULL OR owner_id = ?", userID)
	}
	var defs []models.ModelDefinition
	if err := q.Find(&defs).Error; err != nil {
		return nil, err
	}
	return defs, nil
}

func (r *modelDefinitionRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.ModelDefinition{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *modelDefinitionRepository) Save(ctx context.Context, def *models.ModelDefinition) error {
	return r.db.WithContext(ctx).Save(def).Error
}

func (r *modelDefinitionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.ModelDefinition{}).Error
}

func (r *modelDefinitionRepository) DeleteByProvider(ctx context.Context, providerID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("provider_id = ?", providerID).Delete(&models.ModelDefinition{}).Error
}
