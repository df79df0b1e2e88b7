package mocks

import (
	"context"

	"github.com/google/uuid"

	"modelhub/internal/models"
)

type ProviderRepositoryMock struct {
	CreateFunc      func(ctx context.Context, p *models.Provider) error
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*models.Provider, error)
	GetByNameFunc   func(ctx context.Context, name string) (*models.Provider, error)
	ListVisibleFunc func(ctx context.Context, userID uuid.UUID) ([]models.Provider, error)
	SaveFunc        func(ctx context.Context, p *models.Provider) error
	DeleteFunc      func(ctx context.Context, id uuid.UUID) error
}

func (m *ProviderRepositoryMock) Create(ctx context.Context, p *models.Provider) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return nil
}

func (m *ProviderRepositoryMock) GetByID(ctx context.Context, id uuid.UUID) (*models.Provider, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *ProviderRepositoryMock) GetByName(ctx context.Context, name string) (*models.Provider, error) {
	if m.GetByNameFunc != nil {
		return m.GetByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *ProviderRepositoryMock) ListVisible(ctx context.Context, userID uuid.UUID) ([]models.Provider, error) {
	if m.ListVisibleFunc != nil {
		return m.ListVisibleFunc(ctx, userID)
	}
	return []models.Provider{}, nil
}

func (m *ProviderRepositoryMock) Save(ctx context.Context, p *models.Provider) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

func (m *ProviderRepositoryMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}
