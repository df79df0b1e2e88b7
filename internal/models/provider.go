package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Provider is a registered AI-vendor integration point. Names are unique
// across the whole store ignoring case, regardless of owner; NameKey holds
// the lowercased form backing that constraint.
type Provider struct {
	ID          uuid.UUID `gorm:"type:text;primaryKey"`
	Name        string    `gorm:"size:50;not null"`
	NameKey     string    `gorm:"size:50;not null;uniqueIndex"`
	Label       string    `gorm:"size:100"`
	Description string
	Icon        string `gorm:"type:text"`
	IconBackground string `gorm:"size:20;default:#FFFFFF"`

	DefaultBaseURL      string     `gorm:"size:500"`
	SupportedModelTypes StringList `gorm:"type:text"`
	HelpURL             string     `gorm:"size:500"`

	Position int `gorm:"not null;default:0;index"`
	Ownable

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (p *Provider) BeforeSave(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.NameKey = strings.ToLower(strings.TrimSpace(p.Name))
	if p.Label == "" {
		p.Label = p.Name
	}
	if len(p.SupportedModelTypes) == 0 {
		p.SupportedModelTypes = StringList{"llm"}
	}
	return nil
}
