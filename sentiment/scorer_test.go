package sentiment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"crypto-pulse/models"
)

type fakeCompletion struct {
	response string
	err      error
	calls    int
	prompts  []string
}

func (f *fakeCompletion) Complete(_ context.Context, prompt string) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	return f.response, f.err
}

func (f *fakeCompletion) Name() string { return "fake" }

func recentPost(id, text, author string, views int64) models.Post {
	return models.Post{
		ID:        id,
		Text:      text,
		Author:    models.Author{Username: author, DisplayName: author},
		CreatedAt: time.Now(),
		Views:     views,
	}
}

func TestScoreReturnsMapping(t *testing.T) {
	fake := &fakeCompletion{response: `{"2024-01-01": 70, "2024-01-02": 30}`}
	scorer := NewScorer(fake)

	scores, err := scorer.Score(context.Background(), "alice", []models.Post{
		recentPost("1", "btc is pumping", "alice", 10),
	})

	assert.NoError(t, err)
	assert.Equal(t, models.AccountSentiment{"2024-01-01": 70, "2024-01-02": 30}, scores)
	assert.Equal(t, 1, fake.calls)
	assert.Contains(t, fake.prompts[0], "@alice")
	assert.Contains(t, fake.prompts[0], "10 - btc is pumping")
}

func TestScoreNoRowsSkipsProvider(t *testing.T) {
	fake := &fakeCompletion{response: `{}`}
	scorer := NewScorer(fake)

	scores, err := scorer.Score(context.Background(), "alice", []models.Post{
		recentPost("1", "bob's post", "bob", 5),
		recentPost("2", "https://only.a.link", "alice", 5),
	})

	assert.NoError(t, err)
	assert.Empty(t, scores)
	assert.Equal(t, 0, fake.calls)
}

func TestScoreNonJSONResponse(t *testing.T) {
	fake := &fakeCompletion{response: "not json at all"}
	scorer := NewScorer(fake)

	scores, err := scorer.Score(context.Background(), "alice", []models.Post{
		recentPost("1", "gm", "alice", 1),
	})

	assert.Nil(t, scores)
	var pe *ParseError
	assert.True(t, errors.As(err, &pe))
}

func TestScoreProviderError(t *testing.T) {
	boom := errors.New("upstream down")
	fake := &fakeCompletion{err: boom}
	scorer := NewScorer(fake)

	_, err := scorer.Score(context.Background(), "alice", []models.Post{
		recentPost("1", "gm", "alice", 1),
	})

	assert.ErrorIs(t, err, boom)
}
