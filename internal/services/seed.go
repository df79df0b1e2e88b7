package services

import (
	"context"
	"fmt"

	"modelhub/internal/models"
	"modelhub/internal/repositories"
)

type seedModel struct {
	modelName     string
	label         string
	modelType     string
	contextWindow int
	maxTokens     int
	features      []string
}

type seedProvider struct {
	name     string
	label    string
	baseURL  string
	helpURL  string
	position int
	models   []seedModel
}

var builtinCatalog = []seedProvider{
	{
		name:    "openai",
		label:   "OpenAI",
		baseURL: "https://api.openai.com/v1",
		helpURL: "https://platform.openai.com/api-keys",
		models: []seedModel{
			{modelName: "gpt-5", label: "GPT-5", modelType: models.ModelTypeMultimodal, contextWindow: 256000, maxTokens: 8192,
				features: []string{"reasoning", "thinking", "tool_call", "structured_output", "image_input", "streaming"}},
			{modelName: "gpt-4o", label: "GPT-4o", modelType: models.ModelTypeMultimodal, contextWindow: 128000, maxTokens: 4096,
				features: []string{"reasoning", "tool_call", "structured_output", "image_input", "streaming"}},
		},
	},
	{
		name:     "ollama",
		label:    "Ollama",
		baseURL:  "http://localhost:11434",
		position: 1,
		models: []seedModel{
			{modelName: "deepseek-v3.1:671b", label: "DeepSeek V3.1", contextWindow: 163840},
			{modelName: "gpt-oss:20b", label: "GPT-OSS 20B", contextWindow: 128000},
			{modelName: "qwen3-coder:480b", label: "Qwen3 Coder 480B", modelType: models.ModelTypeCode, contextWindow: 262144},
			{modelName: "llama3.1", label: "Llama 3.1 8B", contextWindow: 128000},
		},
	},
	{
		name:     "vllm",
		label:    "vLLM",
		baseURL:  "http://localhost:8000/v1",
		position: 2,
		models: []seedModel{
			{modelName: "meta-llama/Meta-Llama-3.1-70B", label: "Llama 3.1 70B", contextWindow: 128000},
			{modelName: "deepseek-ai/DeepSeek-V3", label: "DeepSeek V3", contextWindow: 64000},
			{modelName: "mistralai/Mixtral-8x7B-Instruct-v0.1", label: "Mixtral 8x7B Instruct", contextWindow: 32000},
		},
	},
}

// SeedDefaults installs the builtin system-owned catalog on an empty store.
// Idempotent: a store that already holds any model definition is left alone,
// and providers whose names are taken are skipped.
func SeedDefaults(ctx context.Context, store *repositories.Store) error {
	count, err := store.Definitions.Count(ctx)
	if err != nil {
		return fmt.Errorf("count model definitions: %w", err)
	}
	if count > 0 {
		return nil
	}

	return store.Transaction(ctx, func(tx *repositories.Store) error {
		for _, sp := range builtinCatalog {
			existing, err := tx.Providers.GetByName(ctx, sp.name)
			if err != nil {
				return err
			}
			if existing != nil {
				continue
			}

			provider := &models.Provider{
				Name:           sp.name,
				Label:          sp.label,
				DefaultBaseURL: sp.baseURL,
				HelpURL:        sp.helpURL,
				Position:       sp.position,
				Ownable:        models.SystemOwned(),
			}
			if err := tx.Providers.Create(ctx, provider); err != nil {
				return fmt.Errorf("seed provider %s: %w", sp.name, err)
			}

			for i, sm := range sp.models {
				def := &models.ModelDefinition{
					ProviderID:       provider.ID,
					ModelName:        sm.modelName,
					Label:            sm.label,
					ModelType:        sm.modelType,
					Features:         sm.features,
					ContextWindow:    sm.contextWindow,
					DefaultMaxTokens: orDefault(sm.maxTokens, 4096),
					Position:         i,
					IsEnabled:        true,
					Ownable:          models.SystemOwned(),
				}
				if err := tx.Definitions.Create(ctx, def); err != nil {
					return fmt.Errorf("seed model %s/%s: %w", sp.name, sm.modelName, err)
				}
			}
		}
		return nil
	})
}
