package dto

import (
	"time"

	"crypto-pulse/normalizer"
	"crypto-pulse/session"
)

// PostRowDTO is one normalized post row for the posts table.
type PostRowDTO struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	Date      string    `json:"date"`
	Views     int64     `json:"views"`
	CreatedAt time.Time `json:"created_at"`
}

func NewPostRowDTO(r normalizer.Row) PostRowDTO {
	return PostRowDTO{
		ID:        r.ID,
		Text:      r.Text,
		Author:    r.Author,
		Date:      r.Date,
		Views:     r.Views,
		CreatedAt: r.CreatedAt,
	}
}

func NewPostRowDTOs(rows []normalizer.Row) []PostRowDTO {
	out := make([]PostRowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, NewPostRowDTO(r))
	}
	return out
}

// AccountDTO is one tracked account with its public profile link.
type AccountDTO struct {
	Handle      string `json:"handle"`
	DisplayName string `json:"display_name"`
	Link        string `json:"link"`
}

func NewAccountDTO(a session.Account) AccountDTO {
	return AccountDTO{
		Handle:      a.Handle,
		DisplayName: a.DisplayName,
		Link:        "https://twitter.com/@" + a.Handle,
	}
}

func NewAccountDTOs(accounts []session.Account) []AccountDTO {
	out := make([]AccountDTO, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, NewAccountDTO(a))
	}
	return out
}

// SentimentTableDTO is the chart payload: 7 dates oldest-first and one
// value series per column. Null cells mean no score for that date.
type SentimentTableDTO struct {
	Dates   []string              `json:"dates"`
	Columns []string              `json:"columns"`
	Values  map[string][]*float64 `json:"values"`
}

func NewSentimentTableDTO(t session.Table) SentimentTableDTO {
	return SentimentTableDTO{
		Dates:   t.Dates,
		Columns: t.Columns,
		Values:  t.Values,
	}
}
