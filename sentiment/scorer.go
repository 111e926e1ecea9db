package sentiment

import (
	"context"
	"time"

	"crypto-pulse/models"
	"crypto-pulse/normalizer"
)

// Scorer runs the full scoring pipeline for one account: normalize, build
// the prompt, call the completion provider once, parse the response.
type Scorer struct {
	client CompletionClient
}

func NewScorer(client CompletionClient) *Scorer {
	return &Scorer{client: client}
}

// Score returns the per-date sentiment mapping for handle over posts.
// When the account has no rows inside the window the provider is not
// called and an empty mapping is returned. Provider errors propagate
// untouched; a non-JSON response yields *ParseError. No caching, no retry.
func (s *Scorer) Score(ctx context.Context, handle string, posts []models.Post) (models.AccountSentiment, error) {
	rows := normalizer.FilterAuthor(normalizer.Normalize(posts, time.Now()), handle)
	if len(rows) == 0 {
		return models.AccountSentiment{}, nil
	}

	text, err := s.client.Complete(ctx, BuildPrompt(handle, rows))
	if err != nil {
		return nil, err
	}
	return ParseScores(text)
}
