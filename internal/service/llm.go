package service

import (
	"context"
	"fmt"

	"github.com/pageza/recipe-chef/config"
	"github.com/pageza/recipe-chef/internal/model"
)

// Generator sends a prompt to a text-generation service.
//
// A response without usable text is not an error: the result is returned
// with an empty Text so the caller can warn instead of failing. Errors are
// always a *ServiceError or an *UnexpectedError.
type Generator interface {
	Generate(ctx context.Context, prompt model.Prompt, cfg model.GenerationConfig) (*model.GenerationResult, error)
}

// GeneratorFactory builds the Generator for a run.
type GeneratorFactory func(ctx context.Context, cfg *config.Config) (Generator, error)

// NewGenerator creates the backend selected by cfg.Provider.
func NewGenerator(ctx context.Context, cfg *config.Config) (Generator, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		gen, err := NewGeminiGenerator(ctx, cfg.APIKey, cfg.Model, cfg.BaseURL)
		if err != nil {
			return nil, err
		}
		return gen, nil
	case config.ProviderOpenAI:
		return NewOpenAIGenerator(cfg.APIKey, cfg.Model, cfg.BaseURL), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}
