package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Override keys accepted in a preference's parameter bag. Anything else in
// an update payload is dropped, not merged.
const (
	OverrideContextWindow    = "context_window"
	OverrideDefaultMaxTokens = "default_max_tokens"
	OverrideTemperature      = "temperature"
	OverrideTopP             = "top_p"
)

// UserModelPreference is one user's override layer for one model definition.
// Absence of a row means the definition's authoritative values apply
// unmodified. At most one row exists per (user, definition).
type UserModelPreference struct {
	ID         uuid.UUID `gorm:"type:text;primaryKey"`
	UserID     uuid.UUID `gorm:"type:text;not null;index;uniqueIndex:uq_user_model_pref"`
	ModelDefID uuid.UUID `gorm:"type:text;not null;uniqueIndex:uq_user_model_pref"`

	IsEnabled        bool     `gorm:"not null;default:true"`
	CustomParameters ParamMap `gorm:"type:text"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (p *UserModelPreference) BeforeSave(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
