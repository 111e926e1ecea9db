package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"crypto-pulse/models"
)

var tableNow = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

func TestDeriveTableAlwaysSevenRows(t *testing.T) {
	empty := deriveTable(tableNow, nil, nil)
	assert.Len(t, empty.Dates, 7)
	assert.True(t, empty.Empty())

	tracked := deriveTable(tableNow, []string{"alice"}, map[string]models.AccountSentiment{})
	assert.Len(t, tracked.Dates, 7)
	assert.False(t, tracked.Empty())
}

func TestDeriveTableDateRange(t *testing.T) {
	tbl := deriveTable(tableNow, nil, nil)
	assert.Equal(t, "2024-03-09", tbl.Dates[0])
	assert.Equal(t, "2024-03-15", tbl.Dates[6])
}

func TestDeriveTableCellsAndOverall(t *testing.T) {
	byAccount := map[string]models.AccountSentiment{
		"alice": {"2024-03-15": 80, "2024-03-14": 60},
		"bob":   {"2024-03-15": 40},
	}

	tbl := deriveTable(tableNow, []string{"alice", "bob"}, byAccount)

	assert.Equal(t, []string{"alice", "bob", "Overall"}, tbl.Columns)

	// 2024-03-15 is the last row
	assert.Equal(t, 80.0, *tbl.Values["alice"][6])
	assert.Equal(t, 40.0, *tbl.Values["bob"][6])
	assert.Equal(t, 60.0, *tbl.Values["Overall"][6])

	// 2024-03-14: only alice scored, mean equals her score
	assert.Equal(t, 60.0, *tbl.Values["alice"][5])
	assert.Nil(t, tbl.Values["bob"][5])
	assert.Equal(t, 60.0, *tbl.Values["Overall"][5])

	// 2024-03-09: nobody scored, overall absent
	assert.Nil(t, tbl.Values["alice"][0])
	assert.Nil(t, tbl.Values["bob"][0])
	assert.Nil(t, tbl.Values["Overall"][0])
}

func TestDeriveTableIgnoresDatesOutsideWindow(t *testing.T) {
	byAccount := map[string]models.AccountSentiment{
		"alice": {"2024-03-01": 99},
	}

	tbl := deriveTable(tableNow, []string{"alice"}, byAccount)

	for i := range tbl.Dates {
		assert.Nil(t, tbl.Values["alice"][i])
	}
}
