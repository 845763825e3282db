package rental

import (
	"time"
)

// Observation represents one raw hourly record from the rental dataset.
// Each (Date, Hour) pair is unique within a loaded dataset; at most 24
// observations exist per calendar day.
type Observation struct {
	// Date is the calendar date with no time-of-day component.
	Date time.Time `json:"date" db:"date"`
	// Hour is the hour-of-day in [0, 23].
	Hour int `json:"hour" db:"hour"`
	// RentedCount is the non-negative rented-unit count for that hour.
	RentedCount int `json:"rented_bike_count" db:"rented_bike_count"`

	// Covariates carried through unchanged; never aggregated by this layer.
	Temperature    float64 `json:"temp" db:"temp"`
	Humidity       float64 `json:"humidity" db:"humidity"`
	WindSpeed      float64 `json:"wind_speed" db:"wind_speed"`
	Visibility     float64 `json:"visibility" db:"visibility"`
	SolarRadiation float64 `json:"solar_rad" db:"solar_rad"`
	Rainfall       float64 `json:"rainfall" db:"rainfall"`
	Snowfall       float64 `json:"snowfall" db:"snowfall"`
	Season         string  `json:"seasons" db:"seasons"`
	Holiday        string  `json:"holiday" db:"holiday"`
}

// EnrichedObservation is an Observation plus calendar fields derived once at
// load time. Instances are read-only after enrichment.
type EnrichedObservation struct {
	Observation

	// Datetime is Date + Hour, exact to the hour.
	Datetime time.Time `json:"datetime"`
	Day      int       `json:"day"`
	Month    int       `json:"month"`
	Year     int       `json:"year"`
	// YearWeek is the ISO-8601 year-week label, e.g. "2018-W03".
	YearWeek string `json:"year_week"`
}

// DailyTotal is one calendar day's summed rental count.
type DailyTotal struct {
	Date  time.Time `json:"date"`
	Total int       `json:"total"`
}

// MonthlyTotal is one month's summed rental count. Year is zero when totals
// were merged across years (see MonthlyOptions).
type MonthlyTotal struct {
	Month int    `json:"month"`
	Year  int    `json:"year,omitempty"`
	Label string `json:"label"`
	Total int    `json:"total"`
}

// MonthlyOptions controls monthly aggregation behavior.
type MonthlyOptions struct {
	// MergeAcrossYears groups by month number alone, so that e.g. the
	// Januaries of every year in the dataset are summed together. The
	// original dashboard always did this; the option makes the choice
	// visible to callers.
	MergeAcrossYears bool
}

// WeeklyTotal is one ISO week's summed rental count.
type WeeklyTotal struct {
	// YearWeek sorts lexicographically in chronological order.
	YearWeek string `json:"year_week"`
	Total    int    `json:"total"`
}

// HourlyMean is the mean rental count for one hour-of-day across all days.
type HourlyMean struct {
	Hour int     `json:"hour"`
	Mean float64 `json:"mean"`
}

// MonthRow is one selected-month observation joined with the historical mean
// rental count for its weekday.
type MonthRow struct {
	EnrichedObservation

	Weekday string `json:"day_of_week"`
	// AvgRentals is the mean RentedCount for this weekday over the whole
	// dataset history, not just the selected month.
	AvgRentals float64 `json:"avg_rentals"`
}

// SeasonTotal is one season's summed rental count.
type SeasonTotal struct {
	Season string `json:"season"`
	Total  int    `json:"total"`
}

// ClimateMonthly is one calendar month's mean temperature and humidity.
type ClimateMonthly struct {
	// YearMonth is a "YYYY-MM" label.
	YearMonth   string  `json:"year_month"`
	AvgTemp     float64 `json:"avg_temperature"`
	AvgHumidity float64 `json:"avg_humidity"`
}

// MonthLabel converts a month number (1-12) to its three-letter abbreviation.
func MonthLabel(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return time.Month(month).String()[:3]
}
