package ports

import (
	"context"

	"bikerental/domain/rental"
)

// RecordSource produces the raw observation table. Implementations perform
// the only blocking I/O in the system; everything downstream of a successful
// Load is pure computation.
//
// Load fails with core.ErrSourceUnavailable when the backing data cannot be
// read and core.ErrEmptyDataset when it yields zero rows. No retries happen
// at this layer; the caller decides whether to abort or show an empty state.
type RecordSource interface {
	Load(ctx context.Context) ([]rental.Record, error)

	// Name identifies the source for logs and error messages.
	Name() string
}

// RecordSink persists raw observations, used by the ingestion tool to write
// the CSV the dashboard loads.
type RecordSink interface {
	Save(ctx context.Context, records []rental.Record) error
}
