// Package snapshot owns the enriched observation collection. A snapshot is
// built once from a record source and is immutable afterwards, so every view
// below it can run concurrently without coordination.
package snapshot

import (
	"context"
	"sort"
	"time"

	"github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"bikerental/domain/core"
	"bikerental/domain/rental"
	"bikerental/ports"
)

// Snapshot is an immutable enriched dataset plus its identity.
type Snapshot struct {
	id       core.SnapshotID
	source   string
	loadedAt time.Time
	rows     []rental.EnrichedObservation
}

// Build loads the record source and enriches the result exactly once.
func Build(ctx context.Context, source ports.RecordSource) (*Snapshot, error) {
	records, err := source.Load(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := rental.Enrich(records)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		id:       core.SnapshotID(core.NewID()),
		source:   source.Name(),
		loadedAt: time.Now(),
		rows:     rows,
	}, nil
}

// ID returns the snapshot identity.
func (s *Snapshot) ID() core.SnapshotID { return s.id }

// Source returns the record source name the snapshot was built from.
func (s *Snapshot) Source() string { return s.source }

// LoadedAt returns when the snapshot was built.
func (s *Snapshot) LoadedAt() time.Time { return s.loadedAt }

// Rows returns the enriched collection. Callers must treat it as read-only.
func (s *Snapshot) Rows() []rental.EnrichedObservation { return s.rows }

// Daily returns per-day rental totals.
func (s *Snapshot) Daily() []rental.DailyTotal {
	return rental.DailyTotals(s.rows)
}

// Monthly returns per-month rental totals.
func (s *Snapshot) Monthly(opts rental.MonthlyOptions) []rental.MonthlyTotal {
	return rental.MonthlyTotals(s.rows, opts)
}

// Weekly returns per-ISO-week rental totals.
func (s *Snapshot) Weekly() []rental.WeeklyTotal {
	return rental.WeeklyTotals(s.rows)
}

// Hourly returns mean rentals per hour-of-day.
func (s *Snapshot) Hourly() []rental.HourlyMean {
	return rental.HourlyMeans(s.rows)
}

// Day returns the single-day slice for an exact calendar target.
func (s *Snapshot) Day(day, month, year int) ([]rental.EnrichedObservation, error) {
	return rental.DayRows(s.rows, day, month, year)
}

// Month returns the month view joined with historical weekday averages.
func (s *Snapshot) Month(month, year int) ([]rental.MonthRow, error) {
	return rental.MonthRows(s.rows, month, year)
}

// Summary is the dashboard's key-metrics block.
type Summary struct {
	SnapshotID   core.SnapshotID `json:"snapshot_id"`
	Source       string          `json:"source"`
	LoadedAt     time.Time       `json:"loaded_at"`
	RowCount     int             `json:"row_count"`
	TotalRentals int             `json:"total_rentals"`
	MeanMonthly  float64         `json:"mean_monthly_rentals"`
	PeakHour     int             `json:"peak_hour"`
	QuietestHour int             `json:"quietest_hour"`
}

// Summarize computes the key metrics shown at the top of the dashboard.
func (s *Snapshot) Summarize() Summary {
	summary := Summary{
		SnapshotID: s.id,
		Source:     s.source,
		LoadedAt:   s.loadedAt,
		RowCount:   len(s.rows),
	}

	hourSums := make(map[int]int)
	for _, row := range s.rows {
		summary.TotalRentals += row.RentedCount
		hourSums[row.Hour] += row.RentedCount
	}

	monthly := rental.MonthlyTotals(s.rows, rental.MonthlyOptions{MergeAcrossYears: true})
	totals := make([]float64, len(monthly))
	for i, m := range monthly {
		totals[i] = float64(m.Total)
	}
	if mean, err := stats.Mean(totals); err == nil {
		summary.MeanMonthly = mean
	}

	// Peak and quietest hour by total rentals across the whole dataset
	first := true
	for hour, sum := range hourSums {
		if first {
			summary.PeakHour, summary.QuietestHour = hour, hour
			first = false
			continue
		}
		if sum > hourSums[summary.PeakHour] {
			summary.PeakHour = hour
		}
		if sum < hourSums[summary.QuietestHour] {
			summary.QuietestHour = hour
		}
	}
	return summary
}

// seasonOrder fixes the display order of the seasonal breakdown.
var seasonOrder = map[string]int{"Spring": 0, "Summer": 1, "Autumn": 2, "Winter": 3}

// SeasonTotals sums rentals per season label.
func (s *Snapshot) SeasonTotals() []rental.SeasonTotal {
	sums := make(map[string]int)
	for _, row := range s.rows {
		if row.Season == "" {
			continue
		}
		sums[row.Season] += row.RentedCount
	}

	totals := make([]rental.SeasonTotal, 0, len(sums))
	for season, total := range sums {
		totals = append(totals, rental.SeasonTotal{Season: season, Total: total})
	}
	sort.Slice(totals, func(i, j int) bool {
		oi, iok := seasonOrder[totals[i].Season]
		oj, jok := seasonOrder[totals[j].Season]
		if iok && jok {
			return oi < oj
		}
		if iok != jok {
			return iok
		}
		return totals[i].Season < totals[j].Season
	})
	return totals
}

// ClimateMonthly computes the mean temperature and humidity per calendar
// month, keyed by "YYYY-MM".
func (s *Snapshot) ClimateMonthly() []rental.ClimateMonthly {
	type climate struct {
		temps      []float64
		humidities []float64
	}

	grouped := make(map[string]*climate)
	for _, row := range s.rows {
		key := row.Date.Format("2006-01")
		c, ok := grouped[key]
		if !ok {
			c = &climate{}
			grouped[key] = c
		}
		c.temps = append(c.temps, row.Temperature)
		c.humidities = append(c.humidities, row.Humidity)
	}

	months := make([]rental.ClimateMonthly, 0, len(grouped))
	for key, c := range grouped {
		months = append(months, rental.ClimateMonthly{
			YearMonth:   key,
			AvgTemp:     stat.Mean(c.temps, nil),
			AvgHumidity: stat.Mean(c.humidities, nil),
		})
	}
	sort.Slice(months, func(i, j int) bool { return months[i].YearMonth < months[j].YearMonth })
	return months
}

// Overview bundles the four aggregate views for one round trip.
type Overview struct {
	Daily   []rental.DailyTotal   `json:"daily"`
	Monthly []rental.MonthlyTotal `json:"monthly"`
	Weekly  []rental.WeeklyTotal  `json:"weekly"`
	Hourly  []rental.HourlyMean   `json:"hourly"`
}

// ComputeOverview runs all four aggregations concurrently against the
// immutable snapshot. The views share no mutable state, so no coordination
// beyond the errgroup join is needed.
func (s *Snapshot) ComputeOverview(ctx context.Context, opts rental.MonthlyOptions) (*Overview, error) {
	var overview Overview

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		overview.Daily = s.Daily()
		return nil
	})
	g.Go(func() error {
		overview.Monthly = s.Monthly(opts)
		return nil
	})
	g.Go(func() error {
		overview.Weekly = s.Weekly()
		return nil
	})
	g.Go(func() error {
		overview.Hourly = s.Hourly()
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &overview, nil
}
