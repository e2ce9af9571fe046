package console

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/pageza/recipe-chef/internal/model"
	"github.com/pageza/recipe-chef/internal/service"
)

// GeneratingNotice is printed right before the service is called.
const GeneratingNotice = "\n--- Generating Recipe... This may take a moment. ---"

// App runs one recipe session end to end.
type App struct {
	collector *Collector
	renderer  *Renderer
	out       io.Writer

	generator service.Generator
	drafts    service.DraftStore
	timeout   time.Duration
	genConfig model.GenerationConfig
}

// NewApp wires an App. drafts may be nil to skip archiving; a zero timeout
// leaves the call bounded only by ctx.
func NewApp(in io.Reader, out io.Writer, generator service.Generator, drafts service.DraftStore, timeout time.Duration) *App {
	return &App{
		collector: NewCollector(in, out),
		renderer:  NewRenderer(out),
		out:       out,
		generator: generator,
		drafts:    drafts,
		timeout:   timeout,
		genConfig: model.DefaultGenerationConfig(),
	}
}

// Run collects preferences, generates a recipe and renders the outcome.
//
// A returned error is fatal (invalid input, unreadable stdin) and no request
// was sent. Service and unexpected failures are rendered and reported only
// through the Outcome.
func (a *App) Run(ctx context.Context) (Outcome, error) {
	prefs, err := a.collector.Collect()
	if err != nil {
		return OutcomeNone, err
	}

	prompt := service.BuildPrompt(prefs)

	fmt.Fprintln(a.out, GeneratingNotice)
	result, genErr := a.generate(ctx, prompt)

	outcome := a.renderer.Render(result, genErr)
	if outcome != OutcomeRecipe {
		log.Printf("Recipe generation ended with outcome %s", outcome)
		return outcome, nil
	}

	a.archive(ctx, prefs, result)
	return outcome, nil
}

// ShowDraft prints an archived recipe.
func (a *App) ShowDraft(ctx context.Context, id string) error {
	if a.drafts == nil {
		return fmt.Errorf("draft archive is not configured (set REDIS_URL or REDIS_HOST)")
	}
	draft, err := a.drafts.GetDraft(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load draft %s: %w", id, err)
	}
	a.renderer.RenderDraft(draft)
	return nil
}

func (a *App) generate(ctx context.Context, prompt model.Prompt) (*model.GenerationResult, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	start := time.Now()
	result, err := a.generator.Generate(ctx, prompt, a.genConfig)
	log.Printf("Generation call finished in %s", time.Since(start).Round(time.Millisecond))
	return result, err
}

// archive stores a successful recipe. Failures are logged only.
func (a *App) archive(ctx context.Context, prefs model.Preferences, result *model.GenerationResult) {
	if a.drafts == nil {
		return
	}

	draft := &model.RecipeDraft{
		Model:       result.Model,
		Preferences: prefs,
		Text:        result.Text,
	}
	if err := a.drafts.SaveDraft(ctx, draft); err != nil {
		log.Printf("Failed to archive recipe draft: %v", err)
		return
	}
	log.Printf("Recipe saved as draft %s", draft.ID)
}
