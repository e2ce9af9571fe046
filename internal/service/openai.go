package service

import (
	"context"
	"log"

	openai "github.com/sashabaranov/go-openai"

	"github.com/pageza/recipe-chef/internal/model"
)

const providerOpenAI = "openai"

// GeminiOpenAIBaseURL is Gemini's OpenAI-compatible endpoint, used when no
// base URL is configured since the credential is a Gemini key.
const GeminiOpenAIBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai"

// OpenAIGenerator implements Generator on any OpenAI-compatible
// chat completions API.
type OpenAIGenerator struct {
	client *openai.Client
	model  string
}

// NewOpenAIGenerator returns a Generator for the chat completions API at baseURL.
func NewOpenAIGenerator(apiKey, modelName, baseURL string) *OpenAIGenerator {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL == "" {
		baseURL = GeminiOpenAIBaseURL
	}
	cfg.BaseURL = baseURL

	return &OpenAIGenerator{
		client: openai.NewClientWithConfig(cfg),
		model:  modelName,
	}
}

// Generate sends the system and user instruction as separate messages.
// Safety thresholds have no equivalent in this API and are dropped.
func (g *OpenAIGenerator) Generate(ctx context.Context, prompt model.Prompt, cfg model.GenerationConfig) (*model.GenerationResult, error) {
	if n := len(cfg.SafetySettings); n > 0 {
		log.Printf("[OpenAIGenerator] %d safety settings ignored by the OpenAI-compatible API", n)
	}

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt.SystemInstruction},
			{Role: openai.ChatMessageRoleUser, Content: prompt.UserInstruction},
		},
		Temperature: cfg.Temperature,
		MaxTokens:   int(cfg.MaxOutputTokens),
	})
	if err != nil {
		return nil, ClassifyError(providerOpenAI, err)
	}

	result := &model.GenerationResult{Model: g.model, Raw: resp}
	if len(resp.Choices) == 0 {
		return result, nil
	}
	result.Text = resp.Choices[0].Message.Content
	result.FinishReason = string(resp.Choices[0].FinishReason)
	return result, nil
}
