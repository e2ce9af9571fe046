package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Preferences holds the answers collected for a single recipe request.
// Ingredients is required; the other fields may be empty.
type Preferences struct {
	Ingredients string `json:"ingredients"`
	Diet        string `json:"diet"`
	Cuisine     string `json:"cuisine"`
	Time        string `json:"time"`
}

// Prompt is the two-part instruction sent to the generation service.
type Prompt struct {
	SystemInstruction string
	UserInstruction   string
}

// Combined joins the system and user instruction into the single text
// body sent to services that take one content block.
func (p Prompt) Combined() string {
	return p.SystemInstruction + "\n" + p.UserInstruction
}

// GenerationResult is what a backend returned. Text may be empty when the
// service answered without a usable text part (blocked, truncated, etc.).
type GenerationResult struct {
	Text         string `json:"text"`
	Model        string `json:"model"`
	FinishReason string `json:"finish_reason,omitempty"`
	// Raw is the provider response, kept for diagnostics.
	Raw any `json:"-"`
}

// HasText reports whether the result carries a non-blank recipe.
func (r *GenerationResult) HasText() bool {
	return r != nil && strings.TrimSpace(r.Text) != ""
}

// RecipeDraft is a generated recipe kept in the draft archive.
type RecipeDraft struct {
	ID          uuid.UUID   `json:"id"`
	CreatedAt   time.Time   `json:"created_at"`
	Model       string      `json:"model"`
	Preferences Preferences `json:"preferences"`
	Text        string      `json:"text"`
}
