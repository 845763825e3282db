package rental

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEnrich(t *testing.T, records []Record) []EnrichedObservation {
	t.Helper()
	enriched, err := Enrich(records)
	require.NoError(t, err)
	return enriched
}

func rec(dateText string, hour, count int) Record {
	return Record{DateText: dateText, Observation: Observation{Hour: hour, RentedCount: count}}
}

// Fixture from the reference scenario: two hours on Jan 1st plus one hour on
// Feb 1st of 2018.
func referenceRows(t *testing.T) []EnrichedObservation {
	return mustEnrich(t, []Record{
		rec("01/01/2018", 0, 10),
		rec("01/01/2018", 1, 5),
		rec("01/02/2018", 0, 3),
	})
}

func TestDailyTotals(t *testing.T) {
	totals := DailyTotals(referenceRows(t))

	require.Len(t, totals, 2)
	assert.Equal(t, time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC), totals[0].Date)
	assert.Equal(t, 15, totals[0].Total)
	assert.Equal(t, time.Date(2018, 2, 1, 0, 0, 0, 0, time.UTC), totals[1].Date)
	assert.Equal(t, 3, totals[1].Total)
}

func TestDailyTotalsExcludesZeroSumDays(t *testing.T) {
	rows := mustEnrich(t, []Record{
		rec("01/01/2018", 0, 10),
		// Service-closed day: every hour reads zero
		rec("02/01/2018", 0, 0),
		rec("02/01/2018", 1, 0),
	})

	totals := DailyTotals(rows)
	require.Len(t, totals, 1)
	assert.Equal(t, 1, totals[0].Date.Day())
}

func TestDailyTotalsEmptyInput(t *testing.T) {
	assert.Empty(t, DailyTotals(nil))
}

func TestMonthlyTotalsMergedAcrossYears(t *testing.T) {
	rows := mustEnrich(t, []Record{
		rec("15/01/2017", 0, 7),
		rec("15/01/2018", 0, 10),
		rec("01/02/2018", 0, 3),
	})

	totals := MonthlyTotals(rows, MonthlyOptions{MergeAcrossYears: true})
	require.Len(t, totals, 2)
	assert.Equal(t, MonthlyTotal{Month: 1, Label: "Jan", Total: 17}, totals[0])
	assert.Equal(t, MonthlyTotal{Month: 2, Label: "Feb", Total: 3}, totals[1])
}

func TestMonthlyTotalsPerYear(t *testing.T) {
	rows := mustEnrich(t, []Record{
		rec("15/01/2017", 0, 7),
		rec("15/01/2018", 0, 10),
	})

	totals := MonthlyTotals(rows, MonthlyOptions{})
	require.Len(t, totals, 2)
	assert.Equal(t, MonthlyTotal{Month: 1, Year: 2017, Label: "Jan 2017", Total: 7}, totals[0])
	assert.Equal(t, MonthlyTotal{Month: 1, Year: 2018, Label: "Jan 2018", Total: 10}, totals[1])
}

func TestWeeklyTotals(t *testing.T) {
	totals := WeeklyTotals(referenceRows(t))

	require.Len(t, totals, 2)
	assert.Equal(t, WeeklyTotal{YearWeek: "2018-W01", Total: 15}, totals[0])
	assert.Equal(t, WeeklyTotal{YearWeek: "2018-W05", Total: 3}, totals[1])
}

func TestWeeklyTotalsSortedChronologically(t *testing.T) {
	rows := mustEnrich(t, []Record{
		rec("01/12/2017", 0, 1),
		rec("05/01/2018", 0, 1),
		rec("15/06/2018", 0, 1),
	})

	totals := WeeklyTotals(rows)
	labels := make([]string, len(totals))
	for i, wt := range totals {
		labels[i] = wt.YearWeek
	}
	assert.True(t, sort.StringsAreSorted(labels))
}

func TestHourlyMeans(t *testing.T) {
	means := HourlyMeans(referenceRows(t))

	require.Len(t, means, 2)
	assert.Equal(t, HourlyMean{Hour: 0, Mean: 6.5}, means[0])
	assert.Equal(t, HourlyMean{Hour: 1, Mean: 5}, means[1])
}

// The grand total must be conserved across every grouping.
func TestAggregationConservation(t *testing.T) {
	rows := mustEnrich(t, []Record{
		rec("01/01/2018", 0, 10),
		rec("01/01/2018", 1, 5),
		rec("02/01/2018", 0, 0), // zero-sum day, still counted in monthly/weekly
		rec("01/02/2018", 0, 3),
		rec("31/12/2018", 23, 9),
	})

	grand := 0
	for _, row := range rows {
		grand += row.RentedCount
	}

	dailySum := 0
	for _, d := range DailyTotals(rows) {
		dailySum += d.Total
	}
	monthlySum := 0
	for _, m := range MonthlyTotals(rows, MonthlyOptions{MergeAcrossYears: true}) {
		monthlySum += m.Total
	}
	weeklySum := 0
	for _, w := range WeeklyTotals(rows) {
		weeklySum += w.Total
	}

	// Zero-excluded days contribute zero, so daily totals still conserve
	assert.Equal(t, grand, dailySum)
	assert.Equal(t, grand, monthlySum)
	assert.Equal(t, grand, weeklySum)
}
