package rental

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikerental/domain/core"
)

func TestDayRowsExactMatch(t *testing.T) {
	rows := mustEnrich(t, []Record{
		rec("01/01/2018", 0, 10),
		rec("01/01/2018", 1, 5),
		rec("01/02/2018", 0, 3),
		rec("01/01/2017", 0, 99),
	})

	matched, err := DayRows(rows, 1, 1, 2018)
	require.NoError(t, err)
	require.Len(t, matched, 2)
	for _, row := range matched {
		assert.Equal(t, 1, row.Day)
		assert.Equal(t, 1, row.Month)
		assert.Equal(t, 2018, row.Year)
	}
}

func TestDayRowsEmptyForClosedDay(t *testing.T) {
	rows := referenceRows(t)

	matched, err := DayRows(rows, 25, 12, 2018)
	require.NoError(t, err)
	assert.Empty(t, matched)
	assert.NotNil(t, matched)
}

func TestDayRowsRejectsImpossibleTargets(t *testing.T) {
	rows := referenceRows(t)

	cases := []struct {
		name             string
		day, month, year int
	}{
		{"month 13", 1, 13, 2018},
		{"month 0", 1, 0, 2018},
		{"day 0", 0, 1, 2018},
		{"day 32", 32, 1, 2018},
		{"year 0", 1, 1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DayRows(rows, tc.day, tc.month, tc.year)
			assert.True(t, core.IsInvalidCalendarTarget(err))
		})
	}
}

func TestMonthRowsJoinsHistoricalWeekdayAverage(t *testing.T) {
	// Two Mondays in different months: 01/01/2018 and 05/02/2018
	rows := mustEnrich(t, []Record{
		rec("01/01/2018", 0, 10),
		rec("05/02/2018", 0, 20),
		// A Tuesday in January
		rec("02/01/2018", 0, 4),
	})

	selected, err := MonthRows(rows, 1, 2018)
	require.NoError(t, err)
	require.Len(t, selected, 2)

	byWeekday := make(map[string]MonthRow)
	for _, row := range selected {
		byWeekday[row.Weekday] = row
	}

	// Monday baseline averages over both months, not just January
	assert.InDelta(t, 15.0, byWeekday["Monday"].AvgRentals, 1e-9)
	assert.InDelta(t, 4.0, byWeekday["Tuesday"].AvgRentals, 1e-9)
}

func TestMonthRowsCountMatchesSelection(t *testing.T) {
	rows := mustEnrich(t, []Record{
		rec("01/01/2018", 0, 1),
		rec("01/01/2018", 1, 2),
		rec("02/01/2018", 0, 3),
		rec("01/02/2018", 0, 4),
	})

	selected, err := MonthRows(rows, 1, 2018)
	require.NoError(t, err)
	assert.Len(t, selected, 3)
}

func TestMonthRowsRejectsImpossibleTargets(t *testing.T) {
	_, err := MonthRows(referenceRows(t), 13, 2018)
	assert.True(t, core.IsInvalidCalendarTarget(err))

	_, err = MonthRows(referenceRows(t), 6, -4)
	assert.True(t, core.IsInvalidCalendarTarget(err))
}
