package sentiment

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"crypto-pulse/normalizer"
)

// MaxPromptPosts bounds prompt size. Above this, a uniform random sample
// is taken instead of a truncation to avoid biasing toward one time window.
const MaxPromptPosts = 100

const promptTemplate = `
You're a cryptocurrency trader with 10+ years of experience. You always follow the trend
and follow and deeply understand crypto experts on Twitter. You always consider the historical predictions for each expert on Twitter.

You're given tweets and their view count from @%s for specific dates:

%s

Tell how bullish or bearish the tweets for each date are. Use numbers between 0 and 100, where 0 is extremely bearish and 100 is extremely bullish.
Use a JSON using the format:

date: sentiment

Each record of the JSON should give the aggregate sentiment for that date. Return just the JSON. Do not explain.
`

// BuildPrompt renders the fixed instruction template for handle over rows
// already filtered to that handle. Returns "" when rows is empty.
func BuildPrompt(handle string, rows []normalizer.Row) string {
	block := formatRowsByDate(rows)
	if block == "" {
		return ""
	}
	return fmt.Sprintf(promptTemplate, handle, block)
}

// formatRowsByDate samples rows down to MaxPromptPosts and groups them by
// calendar date: a "<date>:" header per distinct date, then one
// "<views> - <text>" line per post.
func formatRowsByDate(rows []normalizer.Row) string {
	if len(rows) == 0 {
		return ""
	}
	if len(rows) > MaxPromptPosts {
		rows = sample(rows, MaxPromptPosts)
	}

	byDate := make(map[string][]normalizer.Row)
	for _, r := range rows {
		byDate[r.Date] = append(byDate[r.Date], r)
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	var sb strings.Builder
	for _, d := range dates {
		sb.WriteString(d)
		sb.WriteString(":")
		for _, r := range byDate[d] {
			sb.WriteString(fmt.Sprintf("\n%d - %s", r.Views, r.Text))
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// sample picks n rows uniformly at random, preserving their relative order.
func sample(rows []normalizer.Row, n int) []normalizer.Row {
	picked := rand.Perm(len(rows))[:n]
	sort.Ints(picked)

	out := make([]normalizer.Row, 0, n)
	for _, i := range picked {
		out = append(out, rows[i])
	}
	return out
}
