package session

import (
	"time"

	"crypto-pulse/models"
	"crypto-pulse/normalizer"
)

// OverallColumn is the derived cross-account daily average.
const OverallColumn = "Overall"

// Table is the 7-day date-indexed sentiment table: one row per calendar
// date (oldest first), one column per tracked account plus OverallColumn.
// Nil cells mean no score for that account and date.
type Table struct {
	Dates   []string
	Columns []string
	Values  map[string][]*float64
}

// Empty reports whether the table carries no account columns yet; the UI
// renders neither chart nor numeric table in that case.
func (t Table) Empty() bool {
	return len(t.Columns) == 0
}

// deriveTable builds the table for the 7 calendar dates ending at now
// (inclusive), oldest first. Overall is the arithmetic mean of the present
// per-account cells for the date, nil when all are absent.
func deriveTable(now time.Time, order []string, byAccount map[string]models.AccountSentiment) Table {
	dates := make([]string, 0, normalizer.WindowDays)
	for i := normalizer.WindowDays - 1; i >= 0; i-- {
		dates = append(dates, now.AddDate(0, 0, -i).Format("2006-01-02"))
	}

	t := Table{Dates: dates, Values: map[string][]*float64{}}
	if len(order) == 0 {
		return t
	}

	for _, handle := range order {
		scores := byAccount[handle]
		col := make([]*float64, len(dates))
		for i, d := range dates {
			if v, ok := scores[d]; ok {
				f := float64(v)
				col[i] = &f
			}
		}
		t.Columns = append(t.Columns, handle)
		t.Values[handle] = col
	}

	overall := make([]*float64, len(dates))
	for i := range dates {
		var sum float64
		var n int
		for _, handle := range order {
			if v := t.Values[handle][i]; v != nil {
				sum += *v
				n++
			}
		}
		if n > 0 {
			mean := sum / float64(n)
			overall[i] = &mean
		}
	}
	t.Columns = append(t.Columns, OverallColumn)
	t.Values[OverallColumn] = overall

	return t
}
