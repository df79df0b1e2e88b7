package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserProviderConfig is one user's credential and override layer for one
// provider. APIKey holds AES-GCM ciphertext, never the plaintext key;
// APIKeyFingerprint is a one-way digest used only for change detection.
// At most one row exists per (user, provider).
type UserProviderConfig struct {
	ID         uuid.UUID `gorm:"type:text;primaryKey"`
	UserID     uuid.UUID `gorm:"type:text;not null;index;uniqueIndex:uq_user_provider_config"`
	ProviderID uuid.UUID `gorm:"type:text;not null;uniqueIndex:uq_user_provider_config"`

	APIKey            string `gorm:"size:1000"`
	APIKeyFingerprint string `gorm:"size:64"`
	BaseURLOverride   string `gorm:"size:500"`

	IsEnabled bool `gorm:"not null;default:true"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (c *UserProviderConfig) BeforeSave(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (c *UserProviderConfig) HasCredential() bool {
	return c != nil && c.APIKey != ""
}
