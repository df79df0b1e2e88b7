package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modelhub/internal/models"
	"modelhub/internal/repositories"
	"modelhub/internal/tests/mocks"
)

func TestResolveProvidersForCaller_DefaultsWithoutConfig(t *testing.T) {
	providerID := uuid.New()
	userID := uuid.New()

	providerRepo := &mocks.ProviderRepositoryMock{
		ListVisibleFunc: func(ctx context.Context, uid uuid.UUID) ([]models.Provider, error) {
			assert.Equal(t, userID, uid)
			return []models.Provider{{
				ID:             providerID,
				Name:           "openai",
				Label:          "OpenAI",
				DefaultBaseURL: "https://api.openai.com/v1",
				Position:       0,
			}}, nil
		},
	}
	defRepo := &mocks.ModelDefinitionRepositoryMock{
		ListVisibleByProviderFunc: func(ctx context.Context, pid, uid uuid.UUID) ([]models.ModelDefinition, error) {
			return []models.ModelDefinition{{
				ID:               uuid.New(),
				ProviderID:       pid,
				ModelName:        "gpt-4o",
				ModelType:        models.ModelTypeLLM,
				ContextWindow:    128000,
				DefaultMaxTokens: 4096,
				IsEnabled:        true,
			}}, nil
		},
	}

	catalog := NewCatalogService(&repositories.Store{
		Providers:       providerRepo,
		Definitions:     defRepo,
		ProviderConfigs: &mocks.ProviderConfigRepositoryMock{},
		Preferences:     &mocks.ModelPreferenceRepositoryMock{},
	})

	views, err := catalog.ResolveProvidersForCaller(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, views, 1)

	view := views[0]
	assert.Equal(t, "https://api.openai.com/v1", view.BaseURL)
	assert.False(t, view.HasCredential)
	assert.True(t, view.Enabled)
	assert.True(t, view.Builtin)

	require.Len(t, view.Models, 1)
	model := view.Models[0]
	assert.Equal(t, 128000, model.ContextWindow)
	assert.Equal(t, 4096, model.DefaultMaxTokens)
	assert.InDelta(t, 0.7, model.DefaultTemperature, 1e-9)
	assert.InDelta(t, 1.0, model.DefaultTopP, 1e-9)
	assert.True(t, model.Enabled)
	assert.False(t, model.Custom)
}

func TestResolveProvidersForCaller_ConfigOverlay(t *testing.T) {
	providerID := uuid.New()
	userID := uuid.New()

	store := &repositories.Store{
		Providers: &mocks.ProviderRepositoryMock{
			ListVisibleFunc: func(ctx context.Context, uid uuid.UUID) ([]models.Provider, error) {
				return []models.Provider{{
					ID:             providerID,
					Name:           "openai",
					DefaultBaseURL: "https://api.openai.com/v1",
				}}, nil
			},
		},
		Definitions: &mocks.ModelDefinitionRepositoryMock{},
		ProviderConfigs: &mocks.ProviderConfigRepositoryMock{
			ListByUserFunc: func(ctx context.Context, uid uuid.UUID) ([]models.UserProviderConfig, error) {
				return []models.UserProviderConfig{{
					UserID:          userID,
					ProviderID:      providerID,
					APIKey:          "sealed-ciphertext",
					BaseURLOverride: "https://proxy.internal/v1",
					IsEnabled:       false,
				}}, nil
			},
		},
		Preferences: &mocks.ModelPreferenceRepositoryMock{},
	}

	views, err := NewCatalogService(store).ResolveProvidersForCaller(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, views, 1)

	assert.Equal(t, "https://proxy.internal/v1", views[0].BaseURL)
	assert.True(t, views[0].HasCredential)
	assert.False(t, views[0].Enabled)
}

func TestResolveModelsForProvider_PreferenceOverrides(t *testing.T) {
	providerID := uuid.New()
	userID := uuid.New()
	modelID := uuid.New()

	store := &repositories.Store{
		Providers: &mocks.ProviderRepositoryMock{},
		Definitions: &mocks.ModelDefinitionRepositoryMock{
			ListVisibleByProviderFunc: func(ctx context.Context, pid, uid uuid.UUID) ([]models.ModelDefinition, error) {
				return []models.ModelDefinition{{
					ID:               modelID,
					ProviderID:       pid,
					ModelName:        "gpt-4o",
					ModelType:        models.ModelTypeLLM,
					ContextWindow:    128000,
					DefaultMaxTokens: 4096,
					DefaultParameters: models.ParamMap{
						models.OverrideTemperature: 0.7,
					},
					IsEnabled: true,
				}}, nil
			},
		},
		ProviderConfigs: &mocks.ProviderConfigRepositoryMock{},
		Preferences: &mocks.ModelPreferenceRepositoryMock{
			ListByUserForModelsFunc: func(ctx context.Context, uid uuid.UUID, ids []uuid.UUID) ([]models.UserModelPreference, error) {
				assert.Equal(t, []uuid.UUID{modelID}, ids)
				return []models.UserModelPreference{{
					UserID:     userID,
					ModelDefID: modelID,
					IsEnabled:  false,
					CustomParameters: models.ParamMap{
						// float64 values mimic a JSON round trip through the
						// text column.
						models.OverrideContextWindow: float64(32000),
						models.OverrideTemperature:   0.2,
						"not_a_real_knob":            "ignored",
					},
				}}, nil
			},
		},
	}

	views, err := NewCatalogService(store).ResolveModelsForProvider(context.Background(), providerID, userID)
	require.NoError(t, err)
	require.Len(t, views, 1)

	model := views[0]
	assert.False(t, model.Enabled)
	assert.Equal(t, 32000, model.ContextWindow)
	assert.Equal(t, 4096, model.DefaultMaxTokens, "untouched knob keeps the shared default")
	assert.InDelta(t, 0.2, model.DefaultTemperature, 1e-9)
	assert.InDelta(t, 1.0, model.DefaultTopP, 1e-9)
}

func TestResolveProvidersForCaller_AnonymousSkipsOverlayLookups(t *testing.T) {
	configCalls := 0
	prefCalls := 0

	store := &repositories.Store{
		Providers: &mocks.ProviderRepositoryMock{
			ListVisibleFunc: func(ctx context.Context, uid uuid.UUID) ([]models.Provider, error) {
				assert.Equal(t, uuid.Nil, uid)
				return []models.Provider{{ID: uuid.New(), Name: "ollama", DefaultBaseURL: "http://localhost:11434/v1"}}, nil
			},
		},
		Definitions: &mocks.ModelDefinitionRepositoryMock{
			ListVisibleByProviderFunc: func(ctx context.Context, pid, uid uuid.UUID) ([]models.ModelDefinition, error) {
				return []models.ModelDefinition{{ID: uuid.New(), ProviderID: pid, ModelName: "llama3.1", IsEnabled: true}}, nil
			},
		},
		ProviderConfigs: &mocks.ProviderConfigRepositoryMock{
			ListByUserFunc: func(ctx context.Context, uid uuid.UUID) ([]models.UserProviderConfig, error) {
				configCalls++
				return nil, nil
			},
		},
		Preferences: &mocks.ModelPreferenceRepositoryMock{
			ListByUserForModelsFunc: func(ctx context.Context, uid uuid.UUID, ids []uuid.UUID) ([]models.UserModelPreference, error) {
				prefCalls++
				return nil, nil
			},
		},
	}

	views, err := NewCatalogService(store).ResolveProvidersForCaller(context.Background(), uuid.Nil)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Zero(t, configCalls)
	assert.Zero(t, prefCalls)
	assert.False(t, views[0].HasCredential)
}
