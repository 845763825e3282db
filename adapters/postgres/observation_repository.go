package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"bikerental/domain/core"
	"bikerental/domain/rental"
	"bikerental/ports"
)

// observationRepository loads raw observations from the bike_rentals table.
type observationRepository struct {
	db    *sqlx.DB
	table string
}

// NewObservationRepository creates a Postgres-backed record source.
func NewObservationRepository(db *sqlx.DB) ports.RecordSource {
	return &observationRepository{db: db, table: "bike_rentals"}
}

// Name identifies the source for logs and error messages.
func (r *observationRepository) Name() string {
	return "postgres:" + r.table
}

// Load fetches every observation ordered by date and hour. Dates arrive as
// real timestamps from the database, so DateText stays empty and the
// enricher uses the parsed date directly.
func (r *observationRepository) Load(ctx context.Context) ([]rental.Record, error) {
	query := fmt.Sprintf(`SELECT
		date, rented_bike_count, hour,
		COALESCE(temp, 0) AS temp,
		COALESCE(humidity, 0) AS humidity,
		COALESCE(wind_speed, 0) AS wind_speed,
		COALESCE(visibility, 0) AS visibility,
		COALESCE(solar_rad, 0) AS solar_rad,
		COALESCE(rainfall, 0) AS rainfall,
		COALESCE(snowfall, 0) AS snowfall,
		COALESCE(seasons, '') AS seasons,
		COALESCE(holiday, '') AS holiday
	FROM %s ORDER BY date, hour`, r.table)

	var observations []rental.Observation
	if err := r.db.SelectContext(ctx, &observations, query); err != nil {
		return nil, core.NewSourceUnavailableError(r.Name(), err)
	}
	if len(observations) == 0 {
		return nil, core.NewEmptyDatasetError(r.Name())
	}

	records := make([]rental.Record, len(observations))
	for i, obs := range observations {
		records[i] = rental.Record{Observation: obs}
	}
	return records, nil
}
