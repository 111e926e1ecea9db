package sentiment

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"crypto-pulse/normalizer"
)

func row(id, text, date string, views int64) normalizer.Row {
	created, _ := time.Parse("2006-01-02", date)
	return normalizer.Row{
		ID:        id,
		Text:      text,
		Author:    "alice",
		Date:      date,
		Views:     views,
		CreatedAt: created,
	}
}

func TestBuildPromptEmptyRows(t *testing.T) {
	assert.Equal(t, "", BuildPrompt("alice", nil))
}

func TestBuildPromptGroupsByDate(t *testing.T) {
	rows := []normalizer.Row{
		row("1", "btc looking strong", "2024-03-14", 120),
		row("2", "dip incoming", "2024-03-15", 300),
		row("3", "hold steady", "2024-03-14", 45),
	}

	prompt := BuildPrompt("alice", rows)

	assert.Contains(t, prompt, "from @alice for specific dates")
	assert.Contains(t, prompt, "2024-03-14:")
	assert.Contains(t, prompt, "2024-03-15:")
	assert.Contains(t, prompt, "120 - btc looking strong")
	assert.Contains(t, prompt, "45 - hold steady")
	assert.Contains(t, prompt, "300 - dip incoming")
	// one header per distinct date
	assert.Equal(t, 1, strings.Count(prompt, "2024-03-14:"))
	assert.Equal(t, 1, strings.Count(prompt, "2024-03-15:"))
}

func TestFormatRowsByDateIncludesAllUpToLimit(t *testing.T) {
	var rows []normalizer.Row
	for i := 0; i < MaxPromptPosts; i++ {
		rows = append(rows, row(fmt.Sprintf("%d", i), fmt.Sprintf("post %d", i), "2024-03-14", int64(i)))
	}

	block := formatRowsByDate(rows)

	assert.Equal(t, MaxPromptPosts, strings.Count(block, "\n"))
	for i := 0; i < MaxPromptPosts; i++ {
		assert.Contains(t, block, fmt.Sprintf("post %d", i))
	}
}

func TestFormatRowsByDateSamplesAboveLimit(t *testing.T) {
	var rows []normalizer.Row
	for i := 0; i < MaxPromptPosts*3; i++ {
		rows = append(rows, row(fmt.Sprintf("%d", i), fmt.Sprintf("post %d", i), "2024-03-14", int64(i)))
	}

	block := formatRowsByDate(rows)

	// one header line plus exactly MaxPromptPosts post lines
	lines := strings.Split(block, "\n")
	assert.Len(t, lines, MaxPromptPosts+1)
}

func TestSamplePreservesOrderAndSize(t *testing.T) {
	var rows []normalizer.Row
	for i := 0; i < 250; i++ {
		rows = append(rows, row(fmt.Sprintf("%d", i), "x", "2024-03-14", int64(i)))
	}

	picked := sample(rows, 100)

	assert.Len(t, picked, 100)
	seen := map[string]bool{}
	last := int64(-1)
	for _, r := range picked {
		assert.False(t, seen[r.ID])
		seen[r.ID] = true
		assert.Greater(t, r.Views, last)
		last = r.Views
	}
}
