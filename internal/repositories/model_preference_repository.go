package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"modelhub/internal/models"
)

type ModelPreferenceRepository interface {
	GetByUserAndModel(ctx context.Context, userID, modelDefID uuid.UUID) (*models.UserModelPreference, error)
	ListByUserForModels(ctx context.Context, userID uuid.UUID, modelDefIDs []uuid.UUID) ([]models.UserModelPreference, error)
	Save(ctx context.Context, pref *models.UserModelPreference) error
	DeleteByModel(ctx context.Context, modelDefID uuid.UUID) error
	DeleteByModels(ctx context.Context, modelDefIDs []uuid.UUID) error
}

type modelPreferenceRepository struct {
	db *gorm.DB
}

func NewModelPreferenceRepository(db *gorm.DB) ModelPreferenceRepository {
	return &modelPreferenceRepository{db: db}
}

func (r *modelPreferenceRepository) GetByUserAndModel(ctx context.Context, userID, modelDefID uuid.UUID) (*models.UserModelPreference, error) {
	var pref models.UserModelPreference
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND model_def_id = ?", userID, modelDefID).
		Take(&pref).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &pref, nil
}

func (r *modelPreferenceRepository) ListByUserForModels(ctx context.Context, userID uuid.UUID, modelDefIDs []uuid.UUID) ([]models.UserModelPreference, error) {
	if len(modelDefIDs) == 0 {
		return nil, nil
	}
	var prefs []models.UserModelPreference
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND model_def_id IN ?", userID, modelDefIDs).
		Find(&prefs).Error
	if err != nil {
		return nil, err
	}
	return prefs, nil
}

func (r *modelPreferenceRepository) Save(ctx context.Context, pref *models.UserModelPreference) error {
	return r.db.WithContext(ctx).Save(pref).Error
}

func (r *modelPreferenceRepository) DeleteByModel(ctx context.Context, modelDefID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("model_def_id = ?", modelDefID).Delete(&models.UserModelPreference{}).Error
}

func (r *modelPreferenceRepository) DeleteByModels(ctx context.Context, modelDefIDs []uuid.UUID) error {
	if len(modelDefIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Where("model_def_id IN ?", modelDefIDs).Delete(&models.UserModelPreference{}).Error
}
