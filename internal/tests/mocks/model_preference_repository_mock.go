package mocks

import (
	"context"

	"github.com/google/uuid"

	"modelhub/internal/models"
)

type ModelPreferenceRepositoryMock struct {
	GetByUserAndModelFunc   func(ctx context.Context, userID, modelDefID uuid.UUID) (*models.UserModelPreference, error)
	ListByUserForModelsFunc func(ctx context.Context, userID uuid.UUID, modelDefIDs []uuid.UUID) ([]models.UserModelPreference, error)
	SaveFunc                func(ctx context.Context, pref *models.UserModelPreference) error
	DeleteByModelFunc       func(ctx context.Context, modelDefID uuid.UUID) error
	DeleteByModelsFunc      func(ctx context.Context, modelDefIDs []uuid.UUID) error
}

func (m *ModelPreferenceRepositoryMock) GetByUserAndModel(ctx context.Context, userID, modelDefID uuid.UUID) (*models.UserModelPreference, error) {
	if m.GetByUserAndModelFunc != nil {
		return m.GetByUserAndModelFunc(ctx, userID, modelDefID)
	}
	return nil, nil
}

func (m *ModelPreferenceRepositoryMock) ListByUserForModels(ctx context.Context, userID uuid.UUID, modelDefIDs []uuid.UUID) ([]models.UserModelPreference, error) {
	if m.ListByUserForModelsFunc != nil {
		return m.ListByUserForModelsFunc(ctx, userID, modelDefIDs)
	}
	return []models.UserModelPreference{}, nil
}

func (m *ModelPreferenceRepositoryMock) Save(ctx context.Context, pref *models.UserModelPreference) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, pref)
	}
	return nil
}

func (m *ModelPreferenceRepositoryMock) DeleteByModel(ctx context.Context, modelDefID uuid.UUID) error {
	if m.DeleteByModelFunc != nil {
		return m.DeleteByModelFunc(ctx, modelDefID)
	}
	return nil
}

func (m *ModelPreferenceRepositoryMock) DeleteByModels(ctx context.Context, modelDefIDs []uuid.UUID) error {
	if m.DeleteByModelsFunc != nil {
		return m.DeleteByModelsFunc(ctx, modelDefIDs)
	}
	return nil
}
