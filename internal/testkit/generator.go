package testkit

import (
	"context"
	"math"
	"math/rand"
	"time"

	"bikerental/domain/rental"
)

// GeneratorConfig configures the synthetic rental data generator
type GeneratorConfig struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	// ClosedDayInterval inserts an all-zero service-closed day every N days;
	// zero disables closed days.
	ClosedDayInterval int     `json:"closed_day_interval"`
	BaseDemand        float64 `json:"base_demand"`
	Seed              int64   `json:"seed"`
}

// DefaultGeneratorConfig returns sensible defaults for one year of data
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		StartDate:         time.Date(2017, 12, 1, 0, 0, 0, 0, time.UTC),
		EndDate:           time.Date(2018, 11, 30, 0, 0, 0, 0, time.UTC),
		ClosedDayInterval: 45,
		BaseDemand:        700,
		Seed:              42,
	}
}

// Generator produces deterministic synthetic hourly rental observations with
// commute-hour peaks, seasonal demand factors, and occasional closed days.
// It doubles as a record source for tests and the demo mode.
type Generator struct {
	config GeneratorConfig
	rng    *rand.Rand
}

// NewGenerator creates a new synthetic data generator
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// Name identifies the source for logs and error messages.
func (g *Generator) Name() string {
	return "testkit:generator"
}

// Load generates the full record set. It never fails; the generator exists
// so tests and demo deployments have a dependable dataset.
func (g *Generator) Load(ctx context.Context) ([]rental.Record, error) {
	var records []rental.Record

	dayIndex := 0
	for date := g.config.StartDate; !date.After(g.config.EndDate); date = date.AddDate(0, 0, 1) {
		dayIndex++
		closed := g.config.ClosedDayInterval > 0 && dayIndex%g.config.ClosedDayInterval == 0
		records = append(records, g.generateDay(date, closed)...)
	}
	return records, nil
}

// generateDay produces 24 hourly observations for one date.
func (g *Generator) generateDay(date time.Time, closed bool) []rental.Record {
	records := make([]rental.Record, 0, 24)
	season, seasonFactor := seasonOf(date.Month())
	weekendFactor := 1.0
	if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
		weekendFactor = 0.75
	}

	for hour := 0; hour < 24; hour++ {
		count := 0
		if !closed {
			demand := g.config.BaseDemand * seasonFactor * weekendFactor * hourFactor(hour)
			demand += g.rng.NormFloat64() * demand * 0.1
			count = int(math.Max(0, math.Round(demand)))
		}

		temp := seasonTemp(season) + 8*math.Sin(float64(hour-4)/24*2*math.Pi) + g.rng.NormFloat64()*2
		records = append(records, rental.Record{
			Observation: rental.Observation{
				Date:        date,
				Hour:        hour,
				RentedCount: count,
				Temperature: temp,
				Humidity:    55 + g.rng.NormFloat64()*10,
				WindSpeed:   1.5 + g.rng.Float64()*2,
				Visibility:  2000 - g.rng.Float64()*300,
				Season:      season,
				Holiday:     "No Holiday",
			},
		})
	}
	return records
}

// hourFactor shapes daily demand around the morning and evening commutes.
func hourFactor(hour int) float64 {
	switch {
	case hour >= 7 && hour <= 9:
		return 1.6
	case hour >= 17 && hour <= 19:
		return 1.9
	case hour >= 10 && hour <= 16:
		return 1.0
	case hour >= 20 && hour <= 22:
		return 0.8
	default:
		return 0.3
	}
}

func seasonOf(month time.Month) (string, float64) {
	switch month {
	case time.March, time.April, time.May:
		return "Spring", 1.1
	case time.June, time.July, time.August:
		return "Summer", 1.3
	case time.September, time.October, time.November:
		return "Autumn", 1.0
	default:
		return "Winter", 0.5
	}
}

func seasonTemp(season string) float64 {
	switch season {
	case "Spring":
		return 12
	case "Summer":
		return 26
	case "Autumn":
		return 14
	default:
		return -3
	}
}
