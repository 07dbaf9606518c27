// File: services/intelligence/interface.go
package ai

import (
	"context"

	"innkeeper/models"
)

// LanguageModel is the external text-generation capability the agent leans
// on. Every method is expected to fail fast: callers fall back to canned
// behavior on error rather than surfacing it to the guest.
type LanguageModel interface {
	// Complete generates a free-form answer for the given prompt.
	Complete(ctx context.Context, prompt string) (string, error)
	// ClassifyIntent maps a message to one of the fixed intent values.
	ClassifyIntent(ctx context.Context, text string) (models.Intent, error)
	// ExtractJSON asks the model to emit a flat JSON object constrained to
	// the given keys and returns it parsed.
	ExtractJSON(ctx context.Context, text string, keys []string) (map[string]string, error)
}

// StateStore persists per-user conversation state between turns.
type StateStore interface {
	Get(ctx context.Context, userID string) (*models.ConversationState, error)
	Save(ctx context.Context, state *models.ConversationState) error
	Clear(ctx context.Context, userID string) error
}
