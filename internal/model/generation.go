package model

// HarmCategory names a content-safety category understood by the service.
type HarmCategory string

const (
	HarmCategoryHarassment       HarmCategory = "HARM_CATEGORY_HARASSMENT"
	HarmCategoryHateSpeech       HarmCategory = "HARM_CATEGORY_HATE_SPEECH"
	HarmCategorySexuallyExplicit HarmCategory = "HARM_CATEGORY_SEXUALLY_EXPLICIT"
	HarmCategoryDangerousContent HarmCategory = "HARM_CATEGORY_DANGEROUS_CONTENT"
)

// HarmBlockThreshold is how aggressively a category is filtered.
type HarmBlockThreshold string

const (
	// BlockOnlyHigh suppresses only high-severity matches.
	BlockOnlyHigh HarmBlockThreshold = "BLOCK_ONLY_HIGH"
)

// SafetySetting pairs a category with its threshold.
type SafetySetting struct {
	Category  HarmCategory       `json:"category"`
	Threshold HarmBlockThreshold `json:"threshold"`
}

// GenerationConfig carries the sampling and safety options for a request.
type GenerationConfig struct {
	Temperature     float32         `json:"temperature"`
	MaxOutputTokens int32           `json:"max_output_tokens"`
	SafetySettings  []SafetySetting `json:"safety_settings"`
}

// DefaultGenerationConfig returns the fixed configuration used for every
// recipe request.
func DefaultGenerationConfig() GenerationConfig {
	return GenerationConfig{
		Temperature:     0.8, // Higher temperature for more creativity
		MaxOutputTokens: 5012,
		SafetySettings: []SafetySetting{
			{Category: HarmCategoryHarassment, Threshold: BlockOnlyHigh},
			{Category: HarmCategoryHateSpeech, Threshold: BlockOnlyHigh},
			{Category: HarmCategorySexuallyExplicit, Threshold: BlockOnlyHigh},
			{Category: HarmCategoryDangerousContent, Threshold: BlockOnlyHigh},
		},
	}
}
