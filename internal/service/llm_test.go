package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipe-chef/config"
)

func TestNewGenerator(t *testing.T) {
	base := config.Config{
		APIKey:         "test-api-key",
		Model:          config.DefaultModel,
		RequestTimeout: time.Minute,
		BaseURL:        "http://127.0.0.1:1",
	}

	t.Run("should create gemini generator", func(t *testing.T) {
		cfg := base
		cfg.Provider = config.ProviderGemini

		gen, err := NewGenerator(context.Background(), &cfg)
		require.NoError(t, err)
		assert.IsType(t, &GeminiGenerator{}, gen)
	})

	t.Run("should create openai generator", func(t *testing.T) {
		cfg := base
		cfg.Provider = config.ProviderOpenAI

		gen, err := NewGenerator(context.Background(), &cfg)
		require.NoError(t, err)
		assert.IsType(t, &OpenAIGenerator{}, gen)
	})

	t.Run("should reject unknown provider", func(t *testing.T) {
		cfg := base
		cfg.Provider = "bard"

		gen, err := NewGenerator(context.Background(), &cfg)
		assert.Error(t, err)
		assert.Nil(t, gen)
	})
}
