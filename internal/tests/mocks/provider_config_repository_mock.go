package mocks

import (
	"context"

	"github.com/google/uuid"

	"modelhub/internal/models"
)

type ProviderConfigRepositoryMock struct {
	GetByUserAndProviderFunc func(ctx context.Context, userID, providerID uuid.UUID) (*models.UserProviderConfig, error)
	ListByUserFunc           func(ctx context.Context, userID uuid.UUID) ([]models.UserProviderConfig, error)
	SaveFunc                 func(ctx context.Context, cfg *models.UserProviderConfig) error
	DeleteByProviderFunc     func(ctx context.Context, providerID uuid.UUID) error
}

func (m *ProviderConfigRepositoryMock) GetByUserAndProvider(ctx context.Context, userID, providerID uuid.UUID) (*models.UserProviderConfig, error) {
	if m.GetByUserAndProviderFunc != nil {
		return m.GetByUserAndProviderFunc(ctx, userID, providerID)
	}
	return nil, nil
}

func (m *ProviderConfigRepositoryMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.UserProviderConfig, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return []models.UserProviderConfig{}, nil
}

func (m *ProviderConfigRepositoryMock) Save(ctx context.Context, cfg *models.UserProviderConfig) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, cfg)
	}
	return nil
}

func (m *ProviderConfigRepositoryMock) DeleteByProvider(ctx context.Context, providerID uuid.UUID) error {
	if m.DeleteByProviderFunc != nil {
		return m.DeleteByProviderFunc(ctx, providerID)
	}
	return nil
}
