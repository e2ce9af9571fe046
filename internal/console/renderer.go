package console

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pageza/recipe-chef/internal/model"
	"github.com/pageza/recipe-chef/internal/service"
)

// Separator frames every section of output.
var Separator = strings.Repeat("=", 50)

const (
	SuccessHeading = "✅ RECIPE GENERATED SUCCESSFULLY"
	EmptyWarning   = "⚠️ No valid recipe text found in the response."
)

// Outcome is how a generation call ended.
type Outcome int

const (
	// OutcomeNone means the run stopped before a request was sent.
	OutcomeNone Outcome = iota
	OutcomeRecipe
	OutcomeEmpty
	OutcomeServiceError
	OutcomeUnexpectedError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeRecipe:
		return "recipe"
	case OutcomeEmpty:
		return "empty"
	case OutcomeServiceError:
		return "service-error"
	case OutcomeUnexpectedError:
		return "unexpected-error"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Classify decides the outcome of a Generate call.
func Classify(result *model.GenerationResult, err error) Outcome {
	if err != nil {
		var svcErr *service.ServiceError
		if errors.As(err, &svcErr) {
			return OutcomeServiceError
		}
		return OutcomeUnexpectedError
	}
	if !result.HasText() {
		return OutcomeEmpty
	}
	return OutcomeRecipe
}

// Renderer prints generation outcomes.
type Renderer struct {
	out io.Writer
}

// NewRenderer creates a Renderer writing to out.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Render prints result or err and returns the outcome it rendered.
func (r *Renderer) Render(result *model.GenerationResult, err error) Outcome {
	outcome := Classify(result, err)

	switch outcome {
	case OutcomeServiceError:
		var svcErr *service.ServiceError
		errors.As(err, &svcErr)
		fmt.Fprintf(r.out, "\n[API Error] Could not generate recipe: %s\n", svcErr.Error())
		fmt.Fprintf(r.out, "Full API Response: %s\n", svcErr.Detail())
	case OutcomeUnexpectedError:
		fmt.Fprintf(r.out, "\n[Runtime Error] An unexpected error occurred: %v\n", err)
		fmt.Fprintf(r.out, "Full Exception: %s\n", unexpectedDetail(err))
	default:
		fmt.Fprint(r.out, "\n\n")
		fmt.Fprintln(r.out, Separator)
		fmt.Fprintln(r.out, SuccessHeading)
		fmt.Fprintln(r.out, Separator)
		if outcome == OutcomeRecipe {
			fmt.Fprintln(r.out, strings.TrimSpace(result.Text))
		} else {
			fmt.Fprintln(r.out, EmptyWarning)
			fmt.Fprintf(r.out, "Full Response: %s\n", formatRaw(result))
		}
		fmt.Fprintln(r.out, Separator)
	}

	return outcome
}

// RenderDraft prints an archived recipe between separators.
func (r *Renderer) RenderDraft(draft *model.RecipeDraft) {
	fmt.Fprintln(r.out, Separator)
	fmt.Fprintf(r.out, "Draft %s (%s, %s)\n", draft.ID, draft.Model, draft.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintln(r.out, Separator)
	fmt.Fprintln(r.out, strings.TrimSpace(draft.Text))
	fmt.Fprintln(r.out, Separator)
}

func unexpectedDetail(err error) string {
	var unexpErr *service.UnexpectedError
	if errors.As(err, &unexpErr) {
		return unexpErr.Detail()
	}
	return fmt.Sprintf("%T: %v", err, err)
}

// formatRaw renders the provider response for the warning path.
func formatRaw(result *model.GenerationResult) string {
	if result == nil {
		return "<nil>"
	}
	raw := result.Raw
	if raw == nil {
		raw = result
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return fmt.Sprintf("%+v", raw)
	}
	return string(data)
}
