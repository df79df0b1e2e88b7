package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Model types accepted for a ModelDefinition.
const (
	ModelTypeLLM        = "llm"
	ModelTypeMultimodal = "multimodal"
	ModelTypeEmbedding  = "embedding"
	ModelTypeRerank     = "rerank"
	ModelTypeImage      = "image"
	ModelTypeAudio      = "audio"
	ModelTypeVideo      = "video"
	ModelTypeCode       = "code"
)

// AllowedModelTypes lists every accepted model type.
var AllowedModelTypes = []string{
	ModelTypeLLM, ModelTypeMultimodal, ModelTypeEmbedding, ModelTypeRerank,
	ModelTypeImage, ModelTypeAudio, ModelTypeVideo, ModelTypeCode,
}

// ModelDefinition is a specific model offered under a Provider. ModelName is
// unique within its provider independent of owner scope.
type ModelDefinition struct {
	ID         uuid.UUID `gorm:"type:text;primaryKey"`
	ProviderID uuid.UUID `gorm:"type:text;not null;index;uniqueIndex:uq_model_provider_name"`

	ModelName   string `gorm:"size:100;not null;uniqueIndex:uq_model_provider_name"`
	Label       string `gorm:"size:100"`
	Description string
	ModelType   string `gorm:"size:20;not null;default:llm"`

	Features         StringList `gorm:"type:text"`
	ContextWindow    int        `gorm:"not null;default:4096"`
	DefaultMaxTokens int        `gorm:"not null;default:4096"`

	DefaultParameters ParamMap `gorm:"type:text"`
	Pricing           ParamMap `gorm:"type:text"`

	Position  int  `gorm:"not null;default:0;index"`
	IsEnabled bool `gorm:"not null;default:true"`
	Ownable

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (m *ModelDefinition) BeforeSave(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Label == "" {
		m.Label = m.ModelName
	}
	if m.ModelType == "" {
		m.ModelType = ModelTypeLLM
	}
	m.Features = withDefaultFeatures(m.ModelType, m.Features)
	return nil
}

// withDefaultFeatures augments the feature tags implied by the model type.
func withDefaultFeatures(modelType string, features StringList) StringList {
	add := func(tags ...string) {
		for _, tag := range tags {
			if !contains(features, tag) {
				features = append(features, tag)
			}
		}
	}
	switch modelType {
	case ModelTypeLLM:
		add("structured_output", "tool_call")
	case ModelTypeEmbedding:
		add("embedding")
	case ModelTypeRerank:
		add("rerank")
	case ModelTypeImage:
		add("image_generate", "image_input")
	case ModelTypeCode:
		add("coding")
	}
	return features
}

func contains(list StringList, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
