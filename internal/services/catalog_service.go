package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"modelhub/internal/models"
	"modelhub/internal/repositories"
)

// CatalogService is the read side: it merges the shared catalog with the
// caller's override layers into one effective view. It never writes, never
// exposes another user's private rows, and never exposes stored ciphertext.
type CatalogService interface {
	ResolveProvidersForCaller(ctx context.Context, callerID uuid.UUID) ([]models.EffectiveProvider, error)
	ResolveModelsForProvider(ctx context.Context, providerID, callerID uuid.UUID) ([]models.EffectiveModel, error)
}

type catalogService struct {
	store *repositories.Store
}

func NewCatalogService(store *repositories.Store) CatalogService {
	return &catalogService{store: store}
}

// ResolveProvidersForCaller returns every provider visible to the caller
// with the caller's config and model preferences overlaid. uuid.Nil resolves
// the system-only view and is never an error.
func (s *catalogService) ResolveProvidersForCaller(ctx context.Context, callerID uuid.UUID) ([]models.EffectiveProvider, error) {
	providers, err := s.store.Providers.ListVisible(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("list providers: %w", err)
	}

	configs := map[uuid.UUID]*models.UserProviderConfig{}
	if callerID != uuid.Nil {
		rows, err := s.store.ProviderConfigs.ListByUser(ctx, callerID)
		if err != nil {
			return nil, fmt.Errorf("list user configs: %w", err)
		}
		for i := range rows {
			configs[rows[i].ProviderID] = &rows[i]
		}
	}

	result := make([]models.EffectiveProvider, 0, len(providers))
	for i := range providers {
		provider := &providers[i]
		effectiveModels, err := s.ResolveModelsForProvider(ctx, provider.ID, callerID)
		if err != nil {
			return nil, err
		}
		result = append(result, mergeProvider(provider, configs[provider.ID], effectiveModels))
	}
	return result, nil
}

// ResolveModelsForProvider returns the definitions visible to the caller
// under one provider, preferences overlaid.
func (s *catalogService) ResolveModelsForProvider(ctx context.Context, providerID, callerID uuid.UUID) ([]models.EffectiveModel, error) {
	defs, err := s.store.Definitions.ListVisibleByProvider(ctx, providerID, callerID)
	if err != nil {
		return nil, fmt.Errorf("list model definitions: %w", err)
	}

	prefs := map[uuid.UUID]*models.UserModelPreference{}
	if callerID != uuid.Nil && len(defs) > 0 {
		ids := make([]uuid.UUID, len(defs))
		for i := range defs {
			ids[i] = defs[i].ID
		}
		rows, err := s.store.Preferences.ListByUserForModels(ctx, callerID, ids)
		if err != nil {
			return nil, fmt.Errorf("list preferences: %w", err)
		}
		for i := range rows {
			prefs[rows[i].ModelDefID] = &rows[i]
		}
	}

	result := make([]models.EffectiveModel, 0, len(defs))
	for i := range defs {
		def := &defs[i]
		result = append(result, mergeModel(def, prefs[def.ID], callerID))
	}
	return result, nil
}

func mergeProvider(provider *models.Provider, cfg *models.UserProviderConfig, effectiveModels []models.EffectiveModel) models.EffectiveProvider {
	view := models.EffectiveProvider{
		ID:                  provider.ID,
		Name:                provider.Name,
		Label:               provider.Label,
		Description:         provider.Description,
		Icon:                provider.Icon,
		IconBackground:      provider.IconBackground,
		SupportedModelTypes: provider.SupportedModelTypes,
		HelpURL:             provider.HelpURL,
		Position:            provider.Position,
		Builtin:             provider.IsSystem(),
		BaseURL:             provider.DefaultBaseURL,
		Enabled:             true,
		Models:              effectiveModels,
	}
	if cfg != nil {
		if cfg.BaseURLOverride != "" {
			view.BaseURL = cfg.BaseURLOverride
		}
		view.HasCredential = cfg.HasCredential()
		view.Enabled = cfg.IsEnabled
	}
	return view
}

func mergeModel(def *models.ModelDefinition, pref *models.UserModelPreference, callerID uuid.UUID) models.EffectiveModel {
	view := models.EffectiveModel{
		ID:                 def.ID,
		ProviderID:         def.ProviderID,
		ModelName:          def.ModelName,
		Label:              def.Label,
		Description:        def.Description,
		ModelType:          def.ModelType,
		Features:           def.Features,
		ContextWindow:      def.ContextWindow,
		DefaultMaxTokens:   def.DefaultMaxTokens,
		DefaultTemperature: paramFloat(def.DefaultParameters, models.OverrideTemperature, 0.7),
		DefaultTopP:        paramFloat(def.DefaultParameters, models.OverrideTopP, 1.0),
		Position:           def.Position,
		Enabled:            def.IsEnabled,
		Builtin:            def.IsSystem(),
		Custom:             callerID != uuid.Nil && def.IsOwnedBy(callerID),
	}
	if pref == nil {
		return view
	}

	view.Enabled = pref.IsEnabled
	// Only the recognized override keys are honored; anything else a client
	// managed to stash in the bag is ignored here.
	if v, ok := paramInt(pref.CustomParameters, models.OverrideContextWindow); ok {
		view.ContextWindow = v
	}
	if v, ok := paramInt(pref.CustomParameters, models.OverrideDefaultMaxTokens); ok {
		view.DefaultMaxTokens = v
	}
	if v, ok := paramFloatOK(pref.CustomParameters, models.OverrideTemperature); ok {
		view.DefaultTemperature = v
	}
	if v, ok := paramFloatOK(pref.CustomParameters, models.OverrideTopP); ok {
		view.DefaultTopP = v
	}
	return view
}

// JSON round-trips turn numbers into float64; stored Go values may still be
// int. Coerce both.
func paramInt(params models.ParamMap, key string) (int, bool) {
	if params == nil {
		return 0, false
	}
	switch v := params[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

func paramFloatOK(params models.ParamMap, key string) (float64, bool) {
	if params == nil {
		return 0, false
	}
	switch v := params[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func paramFloat(params models.ParamMap, key string, fallback float64) float64 {
	if v, ok := paramFloatOK(params, key); ok {
		return v
	}
	return fallback
}
