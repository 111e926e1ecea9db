// Package normalizer converts raw timeline posts into a uniform tabular
// shape: one row per post, cleaned text, restricted to the trailing 7-day
// window, newest first.
package normalizer

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"crypto-pulse/models"
)

// WindowDays is the trailing window length; only posts from the last 7
// calendar days are displayed or scored.
const WindowDays = 7

// Row is a read-only projection of a post with cleaned text.
type Row struct {
	ID        string
	Text      string
	Author    string
	Date      string // calendar date, "2006-01-02"
	Views     int64
	CreatedAt time.Time
}

var (
	urlRe        = regexp.MustCompile(`http\S+`)
	wwwRe        = regexp.MustCompile(`www\.\S+`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// CleanText strips URL-like tokens and collapses whitespace runs into a
// single space.
func CleanText(text string) string {
	text = urlRe.ReplaceAllString(text, "")
	text = wwwRe.ReplaceAllString(text, "")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Normalize builds rows from posts: cleans text, drops rows that end up
// empty, keeps only posts whose calendar date is strictly after
// now - WindowDays, and sorts by CreatedAt descending. An empty or
// fully-filtered input yields an empty slice, not an error.
func Normalize(posts []models.Post, now time.Time) []Row {
	cutoff := now.AddDate(0, 0, -WindowDays)
	cutoffDate := time.Date(cutoff.Year(), cutoff.Month(), cutoff.Day(), 0, 0, 0, 0, cutoff.Location())

	rows := make([]Row, 0, len(posts))
	for _, p := range posts {
		text := CleanText(p.Text)
		if text == "" {
			continue
		}
		created := p.CreatedAt
		postDate := time.Date(created.Year(), created.Month(), created.Day(), 0, 0, 0, 0, cutoff.Location())
		if !postDate.After(cutoffDate) {
			continue
		}
		rows = append(rows, Row{
			ID:        p.ID,
			Text:      text,
			Author:    p.Author.Username,
			Date:      created.Format("2006-01-02"),
			Views:     p.Views,
			CreatedAt: created,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].CreatedAt.After(rows[j].CreatedAt)
	})
	return rows
}

// FilterAuthor returns only the rows whose author matches handle.
func FilterAuthor(rows []Row, handle string) []Row {
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		if r.Author == handle {
			out = append(out, r)
		}
	}
	return out
}
