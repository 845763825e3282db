package rental

import (
	"fmt"
	"sort"
	"time"

	"github.com/montanaflynn/stats"
)

// DailyTotals sums rental counts per calendar day, keyed by the observation
// datetime truncated to the day. Days whose sum is exactly zero are excluded
// after summation: the source data marks service-closed days with all-zero
// counts, and those would otherwise read as real zero-demand days.
func DailyTotals(rows []EnrichedObservation) []DailyTotal {
	sums := make(map[time.Time]int)
	for _, row := range rows {
		day := truncateToDay(row.Datetime)
		sums[day] += row.RentedCount
	}

	totals := make([]DailyTotal, 0, len(sums))
	for day, total := range sums {
		if total == 0 {
			continue
		}
		totals = append(totals, DailyTotal{Date: day, Total: total})
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].Date.Before(totals[j].Date) })
	return totals
}

// MonthlyTotals sums rental counts per month. With MergeAcrossYears set,
// month numbers alone are the grouping key and same-numbered months from
// different years are summed together; otherwise each (year, month) pair is
// its own bucket.
func MonthlyTotals(rows []EnrichedObservation, opts MonthlyOptions) []MonthlyTotal {
	type monthKey struct {
		year  int
		month int
	}

	sums := make(map[monthKey]int)
	for _, row := range rows {
		key := monthKey{year: row.Year, month: row.Month}
		if opts.MergeAcrossYears {
			key.year = 0
		}
		sums[key] += row.RentedCount
	}

	totals := make([]MonthlyTotal, 0, len(sums))
	for key, total := range sums {
		label := MonthLabel(key.month)
		if key.year != 0 {
			label = fmt.Sprintf("%s %d", label, key.year)
		}
		totals = append(totals, MonthlyTotal{
			Month: key.month,
			Year:  key.year,
			Label: label,
			Total: total,
		})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Year != totals[j].Year {
			return totals[i].Year < totals[j].Year
		}
		return totals[i].Month < totals[j].Month
	})
	return totals
}

// WeeklyTotals sums rental counts per ISO year-week. The labels sort
// lexicographically in chronological order, so the result is display-ready.
func WeeklyTotals(rows []EnrichedObservation) []WeeklyTotal {
	sums := make(map[string]int)
	for _, row := range rows {
		sums[row.YearWeek] += row.RentedCount
	}

	totals := make([]WeeklyTotal, 0, len(sums))
	for week, total := range sums {
		totals = append(totals, WeeklyTotal{YearWeek: week, Total: total})
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].YearWeek < totals[j].YearWeek })
	return totals
}

// HourlyMeans computes the mean rental count per hour-of-day across the whole
// dataset. Hours with no observations are absent from the result.
func HourlyMeans(rows []EnrichedObservation) []HourlyMean {
	counts := make(map[int][]float64)
	for _, row := range rows {
		counts[row.Hour] = append(counts[row.Hour], float64(row.RentedCount))
	}

	means := make([]HourlyMean, 0, len(counts))
	for hour, values := range counts {
		mean, err := stats.Mean(values)
		if err != nil {
			continue
		}
		means = append(means, HourlyMean{Hour: hour, Mean: mean})
	}
	sort.Slice(means, func(i, j int) bool { return means[i].Hour < means[j].Hour })
	return means
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
