// Package sentiment scores the aggregate per-day sentiment of one
// account's posts through an external text-completion provider.
package sentiment

import "context"

// CompletionClient sends one prompt to a text-completion provider and
// returns its raw text output. Implementations are configured for
// deterministic output (temperature 0).
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Name() string
}
