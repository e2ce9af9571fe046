package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPromptCombined(t *testing.T) {
	p := Prompt{SystemInstruction: "system", UserInstruction: "user"}
	assert.Equal(t, "system\nuser", p.Combined())
}

func TestGenerationResult_HasText(t *testing.T) {
	var nilResult *GenerationResult
	assert.False(t, nilResult.HasText())
	assert.False(t, (&GenerationResult{}).HasText())
	assert.False(t, (&GenerationResult{Text: " \n\t"}).HasText())
	assert.True(t, (&GenerationResult{Text: "**Recipe Title:** Test"}).HasText())
}

func TestDefaultGenerationConfig(t *testing.T) {
	cfg := DefaultGenerationConfig()

	assert.Equal(t, float32(0.8), cfg.Temperature)
	assert.Equal(t, int32(5012), cfg.MaxOutputTokens)
	assert.Len(t, cfg.SafetySettings, 4)

	categories := make(map[HarmCategory]HarmBlockThreshold)
	for _, s := range cfg.SafetySettings {
		categories[s.Category] = s.Threshold
	}
	for _, c := range []HarmCategory{
		HarmCategoryHarassment,
		HarmCategoryHateSpeech,
		HarmCategorySexuallyExplicit,
		HarmCategoryDangerousContent,
	} {
		assert.Equal(t, BlockOnlyHigh, categories[c], "category %s", c)
	}
}
