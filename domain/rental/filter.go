package rental

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"bikerental/domain/core"
)

// DayRows returns the observations matching one exact (day, month, year)
// target. A day with no matching rows yields an empty slice, not an error;
// the service has closed days with no recorded observations.
func DayRows(rows []EnrichedObservation, day, month, year int) ([]EnrichedObservation, error) {
	if err := validateDayTarget(day, month, year); err != nil {
		return nil, err
	}

	matched := make([]EnrichedObservation, 0, 24)
	for _, row := range rows {
		if row.Day == day && row.Month == month && row.Year == year {
			matched = append(matched, row)
		}
	}
	return matched, nil
}

// MonthRows returns every observation for the target month and year, each
// joined with the mean rental count for its weekday computed over the whole
// dataset history. Callers can compare a month's demand against the
// historical weekday baseline.
func MonthRows(rows []EnrichedObservation, month, year int) ([]MonthRow, error) {
	if err := validateMonthTarget(month, year); err != nil {
		return nil, err
	}

	weekdayMeans := weekdayAverages(rows)

	selected := make([]MonthRow, 0)
	for _, row := range rows {
		if row.Month != month || row.Year != year {
			continue
		}
		weekday := row.Datetime.Weekday().String()
		selected = append(selected, MonthRow{
			EnrichedObservation: row,
			Weekday:             weekday,
			AvgRentals:          weekdayMeans[weekday],
		})
	}
	return selected, nil
}

// weekdayAverages computes the mean rental count per weekday name over all
// rows. Weekday names are unique keys, so the join in MonthRows cannot tie.
func weekdayAverages(rows []EnrichedObservation) map[string]float64 {
	grouped := make(map[string][]float64, 7)
	for _, row := range rows {
		weekday := row.Datetime.Weekday().String()
		grouped[weekday] = append(grouped[weekday], float64(row.RentedCount))
	}

	averages := make(map[string]float64, len(grouped))
	for weekday, values := range grouped {
		mean, err := stats.Mean(values)
		if err != nil {
			continue
		}
		averages[weekday] = mean
	}
	return averages
}

func validateDayTarget(day, month, year int) error {
	if day < 1 || day > 31 {
		return core.NewInvalidCalendarTargetError(fmt.Sprintf("day %d out of range", day))
	}
	return validateMonthTarget(month, year)
}

func validateMonthTarget(month, year int) error {
	if month < 1 || month > 12 {
		return core.NewInvalidCalendarTargetError(fmt.Sprintf("month %d out of range", month))
	}
	if year < 1 {
		return core.NewInvalidCalendarTargetError(fmt.Sprintf("year %d out of range", year))
	}
	return nil
}
