package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"modelhub/internal/encrypt"
	"modelhub/internal/models"
	"modelhub/internal/repositories"
)

type ProviderService interface {
	CreateProvider(ctx context.Context, caller models.Caller, payload models.ProviderCreate) (*models.Provider, error)
	UpdateProvider(ctx context.Context, caller models.Caller, providerID uuid.UUID, payload models.ProviderUpdate) (*models.Provider, error)
	DeleteProvider(ctx context.Context, caller models.Caller, providerID uuid.UUID) error
	UpdateUserConfig(ctx context.Context, userID, providerID uuid.UUID, payload models.UserConfigUpdate) (*models.UserProviderConfig, error)
	GetProviderByName(ctx context.Context, name string) (*models.Provider, error)
}

type providerService struct {
	store    *repositories.Store
	cipher   *encrypt.Cipher
	resolver OwnershipResolver
}

func NewProviderService(store *repositories.Store, cipher *encrypt.Cipher, resolver OwnershipResolver) ProviderService {
	return &providerService{store: store, cipher: cipher, resolver: resolver}
}

// CreateProvider registers a provider. Operators create shared rows, anyone
// else a private one. An inline credential becomes the creator's own config
// entry; it never lands on the provider row.
func (s *providerService) CreateProvider(ctx context.Context, caller models.Caller, payload models.ProviderCreate) (*models.Provider, error) {
	name := strings.TrimSpace(payload.Name)
	if name == "" {
		return nil, fmt.Errorf("provider name is required")
	}
	if !caller.IsOperator && !s.resolver.CanCreatePrivate(caller) {
		return nil, fmt.Errorf("create provider: %w", ErrNotAuthorized)
	}

	existing, err := s.store.Providers.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("provider %q: %w", name, ErrDuplicateName)
	}

	ownership := models.SystemOwned()
	if !caller.IsOperator {
		ownership = models.OwnedBy(caller.ID)
	}

	provider := &models.Provider{
		Name:                name,
		Label:               strings.TrimSpace(payload.Label),
		Description:         payload.Description,
		Icon:                payload.Icon,
		IconBackground:      payload.IconBackground,
		DefaultBaseURL:      strings.TrimSpace(payload.BaseURL),
		SupportedModelTypes: payload.SupportedModelTypes,
		HelpURL:             payload.HelpURL,
		Position:            payload.Position,
		Ownable:             ownership,
	}

	err = s.store.Transaction(ctx, func(tx *repositories.Store) error {
		if err := tx.Providers.Create(ctx, provider); err != nil {
			return fmt.Errorf("create provider: %w", err)
		}
		if payload.APIKey != "" && caller.Authenticated() {
			key := payload.APIKey
			if _, err := s.applyUserConfig(ctx, tx, caller.ID, provider.ID, models.UserConfigUpdate{APIKey: &key}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return provider, nil
}

// UpdateProvider applies structural fields to the shared row when the caller
// may mutate it, and always routes credential/endpoint-override/enabled
// fields into the caller's own config layer. A denied caller still succeeds:
// the entire payload lands in their override and the shared row is untouched.
func (s *providerService) UpdateProvider(ctx context.Context, caller models.Caller, providerID uuid.UUID, payload models.ProviderUpdate) (*models.Provider, error) {
	if !caller.Authenticated() {
		return nil, fmt.Errorf("update provider: %w", ErrNotAuthorized)
	}

	provider, err := s.store.Providers.GetByID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, fmt.Errorf("provider %s: %w", providerID, ErrNotFound)
	}

	decision := s.resolver.CanMutate(caller, provider.Ownable)
	configUpdate := models.UserConfigUpdate{
		APIKey:    payload.APIKey,
		IsEnabled: payload.IsEnabled,
	}

	if decision.Allowed() {
		if payload.Label != nil {
			provider.Label = *payload.Label
		}
		if payload.Description != nil {
			provider.Description = *payload.Description
		}
		if payload.Icon != nil {
			provider.Icon = *payload.Icon
		}
		if payload.IconBackground != nil {
			provider.IconBackground = *payload.IconBackground
		}
		if payload.BaseURL != nil {
			// Editing the provider means editing its default endpoint;
			// no override row is written for it in this branch.
			provider.DefaultBaseURL = strings.TrimSpace(*payload.BaseURL)
		}
		if payload.SupportedModelTypes != nil {
			provider.SupportedModelTypes = payload.SupportedModelTypes
		}
		if payload.HelpURL != nil {
			provider.HelpURL = *payload.HelpURL
		}
		if payload.Position != nil {
			provider.Position = *payload.Position
		}

		err = s.store.Transaction(ctx, func(tx *repositories.Store) error {
			if err := tx.Providers.Save(ctx, provider); err != nil {
				return fmt.Errorf("save provider: %w", err)
			}
			if configUpdate.APIKey != nil || configUpdate.IsEnabled != nil {
				if _, err := s.applyUserConfig(ctx, tx, caller.ID, providerID, configUpdate); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		return provider, nil
	}

	// Plain user on a shared (or foreign) provider: the whole payload is
	// config-shaped from their point of view, including the endpoint.
	configUpdate.BaseURL = payload.BaseURL
	if _, err := s.UpdateUserConfig(ctx, caller.ID, providerID, configUpdate); err != nil {
		return nil, err
	}
	return provider, nil
}

// DeleteProvider removes a provider and cascades over its model definitions,
// their preferences, and every user's config rows, in one transaction.
func (s *providerService) DeleteProvider(ctx context.Context, caller models.Caller, providerID uuid.UUID) error {
	provider, err := s.store.Providers.GetByID(ctx, providerID)
	if err != nil {
		return err
	}
	if provider == nil {
		return fmt.Errorf("provider %s: %w", providerID, ErrNotFound)
	}
	if !s.resolver.CanMutate(caller, provider.Ownable).Allowed() {
		return fmt.Errorf("delete provider: %w", ErrNotAuthorized)
	}

	return s.store.Transaction(ctx, func(tx *repositories.Store) error {
		defs, err := tx.Definitions.ListByProvider(ctx, providerID)
		if err != nil {
			return err
		}
		defIDs := make([]uuid.UUID, 0, len(defs))
		for _, def := range defs {
			defIDs = append(defIDs, def.ID)
		}
		if err := tx.Preferences.DeleteByModels(ctx, defIDs); err != nil {
			return fmt.Errorf("delete model preferences: %w", err)
		}
		if err := tx.Definitions.DeleteByProvider(ctx, providerID); err != nil {
			return fmt.Errorf("delete model definitions: %w", err)
		}
		if err := tx.ProviderConfigs.DeleteByProvider(ctx, providerID); err != nil {
			return fmt.Errorf("delete user configs: %w", err)
		}
		if err := tx.Providers.Delete(ctx, providerID); err != nil {
			return fmt.Errorf("delete provider: %w", err)
		}
		return nil
	})
}

// UpdateUserConfig upserts the caller's own override row for a provider.
// An empty credential clears the stored one; an empty endpoint reverts to
// the provider default.
func (s *providerService) UpdateUserConfig(ctx context.Context, userID, providerID uuid.UUID, payload models.UserConfigUpdate) (*models.UserProviderConfig, error) {
	provider, err := s.store.Providers.GetByID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, fmt.Errorf("provider %s: %w", providerID, ErrNotFound)
	}

	var cfg *models.UserProviderConfig
	err = s.store.Transaction(ctx, func(tx *repositories.Store) error {
		cfg, err = s.applyUserConfig(ctx, tx, userID, providerID, payload)
		return err
	})
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func (s *providerService) applyUserConfig(ctx context.Context, tx *repositories.Store, userID, providerID uuid.UUID, payload models.UserConfigUpdate) (*models.UserProviderConfig, error) {
	cfg, err := tx.ProviderConfigs.GetByUserAndProvider(ctx, userID, providerID)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = &models.UserProviderConfig{
			UserID:     userID,
			ProviderID: providerID,
			IsEnabled:  true,
		}
	}

	if payload.APIKey != nil {
		if *payload.APIKey == "" {
			cfg.APIKey = ""
			cfg.APIKeyFingerprint = ""
		} else {
			sealed, err := s.cipher.Encrypt(*payload.APIKey)
			if err != nil {
				return nil, fmt.Errorf("encrypt credential: %w", err)
			}
			cfg.APIKey = sealed
			cfg.APIKeyFingerprint = encrypt.Fingerprint(*payload.APIKey)
		}
	}
	if payload.BaseURL != nil {
		cfg.BaseURLOverride = strings.TrimSpace(*payload.BaseURL)
	}
	if payload.IsEnabled != nil {
		cfg.IsEnabled = *payload.IsEnabled
	}

	if err := tx.ProviderConfigs.Save(ctx, cfg); err != nil {
		return nil, fmt.Errorf("save user config: %w", err)
	}
	return cfg, nil
}

func (s *providerService) GetProviderByName(ctx context.Context, name string) (*models.Provider, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("provider name is required")
	}
	provider, err := s.store.Providers.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, fmt.Errorf("provider %q: %w", name, ErrNotFound)
	}
	return provider, nil
}
