package service

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/pageza/recipe-chef/internal/model"
)

const providerGemini = "gemini"

// GeminiGenerator implements Generator on the Gemini API.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator creates a Gemini client for modelName. baseURL
// overrides the public endpoint when set.
func NewGeminiGenerator(ctx context.Context, apiKey, modelName, baseURL string) (*GeminiGenerator, error) {
	cc := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cc.HTTPOptions.BaseURL = baseURL
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiGenerator{client: client, model: modelName}, nil
}

// Generate sends the combined instruction as a single content block.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt model.Prompt, cfg model.GenerationConfig) (*model.GenerationResult, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt.Combined()), geminiConfig(cfg))
	if err != nil {
		return nil, ClassifyError(providerGemini, err)
	}
	return geminiResult(g.model, resp), nil
}

func geminiConfig(cfg model.GenerationConfig) *genai.GenerateContentConfig {
	safety := make([]*genai.SafetySetting, 0, len(cfg.SafetySettings))
	for _, s := range cfg.SafetySettings {
		safety = append(safety, &genai.SafetySetting{
			Category:  genai.HarmCategory(s.Category),
			Threshold: genai.HarmBlockThreshold(s.Threshold),
		})
	}

	return &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(cfg.Temperature),
		MaxOutputTokens: cfg.MaxOutputTokens,
		SafetySettings:  safety,
	}
}

// geminiResult collects the text parts of the first candidate, skipping
// thought summaries.
func geminiResult(modelName string, resp *genai.GenerateContentResponse) *model.GenerationResult {
	result := &model.GenerationResult{Model: modelName, Raw: resp}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return result
	}

	cand := resp.Candidates[0]
	result.FinishReason = string(cand.FinishReason)
	if cand.Content == nil {
		return result
	}

	var sb strings.Builder
	for _, part := range cand.Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		sb.WriteString(part.Text)
	}
	result.Text = sb.String()
	return result
}
