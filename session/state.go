// Package session holds the mutable state of one dashboard session and
// the operations driven by user interactions.
package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"crypto-pulse/logger"
	"crypto-pulse/metrics"
	"crypto-pulse/models"
	"crypto-pulse/normalizer"
	"crypto-pulse/sentiment"
	"crypto-pulse/timeline"
)

// CompletionFactory builds a completion client from the session's API key.
// The key is passed explicitly at construction time so it never leaks into
// process-wide configuration.
type CompletionFactory func(apiKey string) sentiment.CompletionClient

// State is one interactive session: accumulated posts, tracked accounts
// and their per-date sentiment mappings. Created empty at session start,
// discarded when the process ends; nothing is persisted. The mutex
// serializes interaction handlers, matching the one-interaction-at-a-time
// model of the UI.
type State struct {
	mu sync.Mutex

	provider      timeline.Provider
	newCompletion CompletionFactory

	apiKey    string
	posts     []models.Post
	accounts  models.TrackedAccounts
	order     []string // handles in the order they were added
	sentiment map[string]models.AccountSentiment
}

func New(provider timeline.Provider, newCompletion CompletionFactory) *State {
	return &State{
		provider:      provider,
		newCompletion: newCompletion,
		accounts:      models.TrackedAccounts{},
		sentiment:     map[string]models.AccountSentiment{},
	}
}

// SetAPIKey stores the completion-provider credential for this session.
// Memory only, never written to disk.
func (s *State) SetAPIKey(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apiKey = key
}

// AddAccount tracks a new handle: fetches its recent posts, merges them
// into the session and recomputes the handle's sentiment mapping.
// A leading "@" is stripped. Already-tracked handles and handles with no
// recent posts are silent no-ops. A scoring failure keeps the fetched
// posts but leaves any previously stored sentiment untouched.
func (s *State) AddAccount(ctx context.Context, handle string) error {
	handle = strings.TrimPrefix(handle, "@")

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, tracked := s.accounts[handle]; tracked {
		return nil
	}

	posts, err := s.provider.FetchTimeline(ctx, handle)
	if err != nil {
		return err
	}
	if len(posts) == 0 {
		logger.InfoWithFields("no recent posts for handle", logger.Fields{"handle": handle})
		return nil
	}

	s.accounts[handle] = posts[0].Author.DisplayName
	s.order = append(s.order, handle)
	s.posts = append(s.posts, posts...)
	metrics.AccountsTracked.Set(float64(len(s.order)))

	scorer := sentiment.NewScorer(s.newCompletion(s.apiKey))
	scores, err := scorer.Score(ctx, handle, s.posts)
	if err != nil {
		return err
	}
	s.sentiment[handle] = scores

	logger.InfoWithFields("account scored", logger.Fields{
		"handle": handle,
		"posts":  len(posts),
		"dates":  len(scores),
	})
	return nil
}

// Account is one tracked handle with its display name, in add order.
type Account struct {
	Handle      string
	DisplayName string
}

func (s *State) Accounts() []Account {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Account, 0, len(s.order))
	for _, h := range s.order {
		out = append(out, Account{Handle: h, DisplayName: s.accounts[h]})
	}
	return out
}

// Rows returns the normalized 7-day view of all accumulated posts.
func (s *State) Rows() []normalizer.Row {
	s.mu.Lock()
	defer s.mu.Unlock()
	return normalizer.Normalize(s.posts, time.Now())
}

// SentimentTable derives the 7-day chart table from the stored sentiment
// mappings. Recomputed from scratch on every call.
func (s *State) SentimentTable() Table {
	s.mu.Lock()
	defer s.mu.Unlock()
	return deriveTable(time.Now(), s.order, s.sentiment)
}
