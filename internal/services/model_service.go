package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"modelhub/internal/models"
	"modelhub/internal/repositories"
)

type ModelService interface {
	CreateModelDefinition(ctx context.Context, caller models.Caller, payload models.ModelDefinitionCreate) (*models.ModelDefinition, error)
	UpdateModelDefinition(ctx context.Context, caller models.Caller, modelDefID uuid.UUID, payload models.ModelDefinitionUpdate) (*models.ModelDefinition, error)
	DeleteModelDefinition(ctx context.Context, caller models.Caller, modelDefID uuid.UUID) error
	UpdateUserPreference(ctx context.Context, userID, modelDefID uuid.UUID, payload models.PreferenceUpdate) (*models.UserModelPreference, error)
}

type modelService struct {
	store    *repositories.Store
	resolver OwnershipResolver
}

func NewModelService(store *repositories.Store, resolver OwnershipResolver) ModelService {
	return &modelService{store: store, resolver: resolver}
}

// CreateModelDefinition registers a model under an existing provider. A
// non-operator may add models to a system provider or their own, but the
// definition is always private to them; only operators choose the owner.
func (s *modelService) CreateModelDefinition(ctx context.Context, caller models.Caller, payload models.ModelDefinitionCreate) (*models.ModelDefinition, error) {
	modelName := strings.TrimSpace(payload.ModelName)
	if modelName == "" {
		return nil, fmt.Errorf("model name is required")
	}
	if payload.ModelType != "" && !isAllowedModelType(payload.ModelType) {
		return nil, fmt.Errorf("model type must be one of %s", strings.Join(models.AllowedModelTypes, ", "))
	}

	provider, err := s.store.Providers.GetByID(ctx, payload.ProviderID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, fmt.Errorf("provider %s: %w", payload.ProviderID, ErrNotFound)
	}

	var ownership models.Ownable
	if caller.IsOperator {
		ownership = models.SystemOwned()
		if payload.Owner != nil {
			ownership = models.OwnedBy(*payload.Owner)
		}
	} else {
		if !s.resolver.CanCreatePrivate(caller) {
			return nil, fmt.Errorf("create model: %w", ErrNotAuthorized)
		}
		if !provider.IsSystem() && !provider.IsOwnedBy(caller.ID) {
			return nil, fmt.Errorf("create model under private provider: %w", ErrNotAuthorized)
		}
		ownership = models.OwnedBy(caller.ID)
	}

	params := models.ParamMap{}
	for key, value := range payload.DefaultParameters {
		params[key] = value
	}
	if payload.DefaultTemperature != 0 {
		params[models.OverrideTemperature] = payload.DefaultTemperature
	}
	if payload.DefaultTopP != 0 {
		params[models.OverrideTopP] = payload.DefaultTopP
	}

	def := &models.ModelDefinition{
		ProviderID:        payload.ProviderID,
		ModelName:         modelName,
		Label:             strings.TrimSpace(payload.Label),
		Description:       payload.Description,
		ModelType:         payload.ModelType,
		Features:          payload.Features,
		ContextWindow:     orDefault(payload.ContextWindow, 4096),
		DefaultMaxTokens:  orDefault(payload.DefaultMaxTokens, 4096),
		DefaultParameters: params,
		Pricing:           models.ParamMap(payload.Pricing),
		Position:          payload.Position,
		IsEnabled:         true,
		Ownable:           ownership,
	}

	if err := s.store.Definitions.Create(ctx, def); err != nil {
		return nil, fmt.Errorf("create model definition: %w", err)
	}
	return def, nil
}

// UpdateModelDefinition applies the payload to the shared row for operators
// and owners. Anyone else gets the override route: only the preference-
// eligible fields survive, the structural ones are dropped, and the shared
// row stays untouched.
func (s *modelService) UpdateModelDefinition(ctx context.Context, caller models.Caller, modelDefID uuid.UUID, payload models.ModelDefinitionUpdate) (*models.ModelDefinition, error) {
	if !caller.Authenticated() {
		return nil, fmt.Errorf("update model: %w", ErrNotAuthorized)
	}

	def, err := s.store.Definitions.GetByID(ctx, modelDefID)
	if err != nil {
		return nil, err
	}
	if def == nil {
		return nil, fmt.Errorf("model definition %s: %w", modelDefID, ErrNotFound)
	}

	if s.resolver.CanMutate(caller, def.Ownable).Allowed() {
		if payload.Label != nil {
			def.Label = *payload.Label
		}
		if payload.Description != nil {
			def.Description = *payload.Description
		}
		if payload.ModelType != nil {
			if !isAllowedModelType(*payload.ModelType) {
				return nil, fmt.Errorf("model type must be one of %s", strings.Join(models.AllowedModelTypes, ", "))
			}
			def.ModelType = *payload.ModelType
		}
		if payload.Features != nil {
			def.Features = payload.Features
		}
		if payload.ContextWindow != nil {
			def.ContextWindow = *payload.ContextWindow
		}
		if payload.DefaultMaxTokens != nil {
			def.DefaultMaxTokens = *payload.DefaultMaxTokens
		}
		if def.DefaultParameters == nil {
			def.DefaultParameters = models.ParamMap{}
		}
		if payload.DefaultTemperature != nil {
			def.DefaultParameters[models.OverrideTemperature] = *payload.DefaultTemperature
		}
		if payload.DefaultTopP != nil {
			def.DefaultParameters[models.OverrideTopP] = *payload.DefaultTopP
		}
		for key, value := range payload.DefaultParameters {
			def.DefaultParameters[key] = value
		}
		if payload.Pricing != nil {
			def.Pricing = models.ParamMap(payload.Pricing)
		}
		if payload.Position != nil {
			def.Position = *payload.Position
		}
		if payload.IsEnabled != nil {
			def.IsEnabled = *payload.IsEnabled
		}
		if err := s.store.Definitions.Save(ctx, def); err != nil {
			return nil, fmt.Errorf("save model definition: %w", err)
		}
		return def, nil
	}

	pref := models.PreferenceUpdate{
		IsEnabled:        payload.IsEnabled,
		ContextWindow:    payload.ContextWindow,
		DefaultMaxTokens: payload.DefaultMaxTokens,
		Temperature:      payload.DefaultTemperature,
		TopP:             payload.DefaultTopP,
	}
	if _, err := s.UpdateUserPreference(ctx, caller.ID, modelDefID, pref); err != nil {
		return nil, err
	}
	return def, nil
}

// DeleteModelDefinition removes a definition and its preference rows. Only
// operators and the definition's owner may delete; provider ownership does
// not matter here.
func (s *modelService) DeleteModelDefinition(ctx context.Context, caller models.Caller, modelDefID uuid.UUID) error {
	def, err := s.store.Definitions.GetByID(ctx, modelDefID)
	if err != nil {
		return err
	}
	if def == nil {
		return fmt.Errorf("model definition %s: %w", modelDefID, ErrNotFound)
	}
	if !s.resolver.CanMutate(caller, def.Ownable).Allowed() {
		return fmt.Errorf("delete model: %w", ErrNotAuthorized)
	}

	return s.store.Transaction(ctx, func(tx *repositories.Store) error {
		if err := tx.Preferences.DeleteByModel(ctx, modelDefID); err != nil {
			return fmt.Errorf("delete preferences: %w", err)
		}
		if err := tx.Definitions.Delete(ctx, modelDefID); err != nil {
			return fmt.Errorf("delete model definition: %w", err)
		}
		return nil
	})
}

// UpdateUserPreference lazily creates the caller's preference row and merges
// the allowed override keys into its parameter bag.
func (s *modelService) UpdateUserPreference(ctx context.Context, userID, modelDefID uuid.UUID, payload models.PreferenceUpdate) (*models.UserModelPreference, error) {
	def, err := s.store.Definitions.GetByID(ctx, modelDefID)
	if err != nil {
		return nil, err
	}
	if def == nil {
		return nil, fmt.Errorf("model definition %s: %w", modelDefID, ErrNotFound)
	}

	var pref *models.UserModelPreference
	err = s.store.Transaction(ctx, func(tx *repositories.Store) error {
		pref, err = tx.Preferences.GetByUserAndModel(ctx, userID, modelDefID)
		if err != nil {
			return err
		}
		if pref == nil {
			pref = &models.UserModelPreference{
				UserID:     userID,
				ModelDefID: modelDefID,
				IsEnabled:  def.IsEnabled,
			}
		}

		if payload.IsEnabled != nil {
			pref.IsEnabled = *payload.IsEnabled
		}
		if pref.CustomParameters == nil {
			pref.CustomParameters = models.ParamMap{}
		}
		if payload.ContextWindow != nil {
			pref.CustomParameters[models.OverrideContextWindow] = *payload.ContextWindow
		}
		if payload.DefaultMaxTokens != nil {
			pref.CustomParameters[models.OverrideDefaultMaxTokens] = *payload.DefaultMaxTokens
		}
		if payload.Temperature != nil {
			pref.CustomParameters[models.OverrideTemperature] = *payload.Temperature
		}
		if payload.TopP != nil {
			pref.CustomParameters[models.OverrideTopP] = *payload.TopP
		}

		if err := tx.Preferences.Save(ctx, pref); err != nil {
			return fmt.Errorf("save preference: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return pref, nil
}

func isAllowedModelType(modelType string) bool {
	for _, allowed := range models.AllowedModelTypes {
		if modelType == allowed {
			return true
		}
	}
	return false
}

func orDefault(value, fallback int) int {
	if value == 0 {
		return fallback
	}
	return value
}
