package mocks

import (
	"context"

	"github.com/google/uuid"

	"modelhub/internal/models"
)

type ModelDefinitionRepositoryMock struct {
	CreateFunc                func(ctx context.Context, def *models.ModelDefinition) error
	GetByIDFunc               func(ctx context.Context, id uuid.UUID) (*models.ModelDefinition, error)
	ListByProviderFunc        func(ctx context.Context, providerID uuid.UUID) ([]models.ModelDefinition, error)
	ListVisibleByProviderFunc func(ctx context.Context, providerID, userID uuid.UUID) ([]models.ModelDefinition, error)
	CountFunc                 func(ctx context.Context) (int64, error)
	SaveFunc                  func(ctx context.Context, def *models.ModelDefinition) error
	DeleteFunc                func(ctx context.Context, id uuid.UUID) error
	DeleteByProviderFunc      func(ctx context.Context, providerID uuid.UUID) error
}

func (m *ModelDefinitionRepositoryMock) Create(ctx context.Context, def *models.ModelDefinition) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, def)
	}
	return nil
}

func (m *ModelDefinitionRepositoryMock) GetByID(ctx context.Context, id uuid.UUID) (*models.ModelDefinition, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *ModelDefinitionRepositoryMock) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]models.ModelDefinition, error) {
	if m.ListByProviderFunc != nil {
		return m.ListByProviderFunc(ctx, providerID)
	}
	return []models.ModelDefinition{}, nil
}

func (m *ModelDefinitionRepositoryMock) ListVisibleByProvider(ctx context.Context, providerID, userID uuid.UUID) ([]models.ModelDefinition, error) {
	if m.ListVisibleByProviderFunc != nil {
		return m.ListVisibleByProviderFunc(ctx, providerID, userID)
	}
	return []models.ModelDefinition{}, nil
}

func (m *ModelDefinitionRepositoryMock) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *ModelDefinitionRepositoryMock) Save(ctx context.Context, def *models.ModelDefinition) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, def)
	}
	return nil
}

func (m *ModelDefinitionRepositoryMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *ModelDefinitionRepositoryMock) DeleteByProvider(ctx context.Context, providerID uuid.UUID) error {
	if m.DeleteByProviderFunc != nil {
		return m.DeleteByProviderFunc(ctx, providerID)
	}
	return nil
}
