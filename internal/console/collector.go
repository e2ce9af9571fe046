// Package console runs the interactive recipe session: it asks for
// preferences, calls the generator and prints the outcome.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pageza/recipe-chef/internal/model"
	"github.com/pageza/recipe-chef/internal/service"
)

// Questions asked for each preference, in order.
const (
	IngredientsQuestion = "🍽️ What main ingredients do you have? (e.g., chicken, broccoli, pasta): "
	DietQuestion        = "🍎 Any dietary needs? (e.g., vegetarian, gluten-free, low-carb): "
	CuisineQuestion     = "🌎 What cuisine or style? (e.g., Italian, Thai, comfort food): "
	TimeQuestion        = "⏱️ Max cooking time? (e.g., 30 minutes, 1 hour): "

	Title = "✨ Gemini Recipe Chef ✨"

	// MissingIngredientsMessage is shown when the required answer is blank.
	MissingIngredientsMessage = "A main ingredient is required to generate a recipe."
)

// Collector reads the four preference answers, one line each.
type Collector struct {
	in  *bufio.Reader
	out io.Writer
}

// NewCollector creates a Collector reading from in and prompting on out.
func NewCollector(in io.Reader, out io.Writer) *Collector {
	return &Collector{in: bufio.NewReader(in), out: out}
}

// Collect prints the banner, asks all four questions and validates the
// answers. Blank ingredients yield a *service.ValidationError after every
// question has been asked.
func (c *Collector) Collect() (model.Preferences, error) {
	fmt.Fprintln(c.out, Separator)
	fmt.Fprintln(c.out, Title)
	fmt.Fprintln(c.out, Separator)

	var prefs model.Preferences
	fields := []struct {
		question string
		dst      *string
	}{
		{IngredientsQuestion, &prefs.Ingredients},
		{DietQuestion, &prefs.Diet},
		{CuisineQuestion, &prefs.Cuisine},
		{TimeQuestion, &prefs.Time},
	}

	for _, f := range fields {
		answer, err := c.ask(f.question)
		if err != nil {
			return model.Preferences{}, err
		}
		*f.dst = answer
	}

	if prefs.Ingredients == "" {
		return model.Preferences{}, &service.ValidationError{
			Field:   "ingredients",
			Message: MissingIngredientsMessage,
		}
	}
	return prefs, nil
}

// ask prints question and returns the trimmed answer. End of input counts
// as an empty answer.
func (c *Collector) ask(question string) (string, error) {
	fmt.Fprint(c.out, question)

	line, err := c.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}
