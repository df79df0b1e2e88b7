package models

import "github.com/google/uuid"

// EffectiveModel is a model definition merged with the caller's preference.
type EffectiveModel struct {
	ID                 uuid.UUID `json:"id"`
	ProviderID         uuid.UUID `json:"providerId"`
	ModelName          string    `json:"modelName"`
	Label              string    `json:"label"`
	Description        string    `json:"description,omitempty"`
	ModelType          string    `json:"modelType"`
	Features           []string  `json:"features"`
	ContextWindow      int       `json:"contextWindow"`
	DefaultMaxTokens   int       `json:"defaultMaxTokens"`
	DefaultTemperature float64   `json:"defaultTemperature"`
	DefaultTopP        float64   `json:"defaultTopP"`
	Position           int       `json:"position"`
	Enabled            bool      `json:"enabled"`
	Builtin            bool      `json:"builtin"`
	Custom             bool      `json:"custom"`
}

// EffectiveProvider is a provider merged with the caller's config, models
// included. Credentials surface only as a presence flag.
type EffectiveProvider struct {
	ID                  uuid.UUID        `json:"id"`
	Name                string           `json:"name"`
	Label               string           `json:"label"`
	Description         string           `json:"description,omitempty"`
	Icon                string           `json:"icon,omitempty"`
	IconBackground      string           `json:"iconBackground,omitempty"`
	SupportedModelTypes []string         `json:"supportedModelTypes"`
	HelpURL             string           `json:"helpUrl,omitempty"`
	Position            int              `json:"position"`
	Builtin             bool             `json:"builtin"`
	BaseURL             string           `json:"baseUrl,omitempty"`
	HasCredential       bool             `json:"hasCredential"`
	Enabled             bool             `json:"enabled"`
	Models              []EffectiveModel `json:"models"`
}
