// Package suggest is the core, filtering dictionary candidates against a pattern and scoring the next letter to guess.
package suggest

import "context"

// ISolver defines the interface for next-letter engines
type ISolver interface {
	// Suggest returns the outcome for the current pattern and guessed letters
	Suggest(ctx context.Context, pattern Pattern, guessed Letters) (Outcome, error)

	// Filter returns the candidates consistent with pattern and guessed, in dictionary order
	Filter(ctx context.Context, pattern Pattern, guessed Letters) ([]string, error)

	// Stats returns statistics about the solver and its dictionary
	Stats() map[string]int
}
