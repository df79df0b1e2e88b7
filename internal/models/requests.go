package models

import "github.com/google/uuid"

// ProviderCreate carries the fields accepted when registering a provider.
// APIKey never lands on the provider row; it becomes the creator's
// UserProviderConfig entry.
type ProviderCreate struct {
	Name                string
	Label               string
	Description         string
	Icon                string
	IconBackground      string
	BaseURL             string
	APIKey              string
	SupportedModelTypes []string
	HelpURL             string
	Position            int
}

// ProviderUpdate carries a partial provider mutation. Nil fields are left
// untouched. Structural fields apply to the shared row only when the caller
// may mutate it; APIKey, BaseURL and IsEnabled always land in the caller's
// own config layer.
type ProviderUpdate struct {
	Label               *string
	Description         *string
	Icon                *string
	IconBackground      *string
	BaseURL             *string
	APIKey              *string
	SupportedModelTypes []string
	HelpURL             *string
	IsEnabled           *bool
	Position            *int
}

// Structural reports whether the update touches any shared-row field.
func (u ProviderUpdate) Structural() bool {
	return u.Label != nil || u.Description != nil || u.Icon != nil ||
		u.IconBackground != nil || u.BaseURL != nil ||
		u.SupportedModelTypes != nil || u.HelpURL != nil || u.Position != nil
}

// UserConfigUpdate is the override-layer slice of a provider mutation.
type UserConfigUpdate struct {
	APIKey    *string
	BaseURL   *string
	IsEnabled *bool
}

// PreferenceUpdate is the override-layer slice of a model-definition
// mutation: the only fields a non-owner can change about a shared model.
type PreferenceUpdate struct {
	IsEnabled        *bool
	ContextWindow    *int
	DefaultMaxTokens *int
	Temperature      *float64
	TopP             *float64
}

// ModelDefinitionCreate carries the fields accepted when registering a model
// under a provider. Owner is honored only for operators; everyone else gets
// a private definition regardless.
type ModelDefinitionCreate struct {
	ProviderID         uuid.UUID
	ModelName          string
	Label              string
	Description        string
	ModelType          string
	Features           []string
	ContextWindow      int
	DefaultMaxTokens   int
	DefaultTemperature float64
	DefaultTopP        float64
	DefaultParameters  map[string]any
	Pricing            map[string]any
	Position           int
	Owner              *uuid.UUID
}

// ModelDefinitionUpdate carries a partial definition mutation. When the
// caller cannot mutate the shared row, only the override-eligible fields
// (IsEnabled, ContextWindow, DefaultMaxTokens, DefaultTemperature,
// DefaultTopP) are routed into the caller's preference; the rest is dropped.
type ModelDefinitionUpdate struct {
	Label              *string
	Description        *string
	ModelType          *string
	Features           []string
	ContextWindow      *int
	DefaultMaxTokens   *int
	DefaultTemperature *float64
	DefaultTopP        *float64
	DefaultParameters  map[string]any
	Pricing            map[string]any
	Position           *int
	IsEnabled          *bool
}
