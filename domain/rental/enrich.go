package rental

import (
	"fmt"
	"time"

	"bikerental/domain/core"
)

// Record is one row as produced by a record source. DateText holds the
// date as it appeared in the backing data; sources that already store real
// dates (e.g. Postgres) leave it empty and set Observation.Date directly.
type Record struct {
	Observation

	DateText string
}

// dayFirstLayouts are the accepted textual date formats, day before month.
var dayFirstLayouts = []string{
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2-1-2006",
}

// ParseDayFirstDate parses a textual date using the day-first calendar
// convention shared by the raw dataset.
func ParseDayFirstDate(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range dayFirstLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// Enrich parses record dates and derives the calendar fields for every row.
// The transform is pure; callers may compute it once per loaded dataset and
// share the result across concurrent readers.
//
// Any unparsable date fails the whole batch with ErrMalformedTimestamp so
// that no rows are silently dropped.
func Enrich(records []Record) ([]EnrichedObservation, error) {
	enriched := make([]EnrichedObservation, 0, len(records))
	for i, rec := range records {
		obs := rec.Observation
		if rec.DateText != "" {
			date, err := ParseDayFirstDate(rec.DateText)
			if err != nil {
				return nil, core.NewMalformedTimestampError(i, rec.DateText, err)
			}
			obs.Date = date
		} else if obs.Date.IsZero() {
			return nil, core.NewMalformedTimestampError(i, "", fmt.Errorf("record has neither date text nor date"))
		}

		enriched = append(enriched, EnrichedObservation{
			Observation: obs,
			Datetime:    obs.Date.Add(time.Duration(obs.Hour) * time.Hour),
			Day:         obs.Date.Day(),
			Month:       int(obs.Date.Month()),
			Year:        obs.Date.Year(),
			YearWeek:    ISOWeekLabel(obs.Date),
		})
	}
	return enriched, nil
}

// ISOWeekLabel formats a date as its ISO-8601 year-week label, "YYYY-Www".
// The ISO year owns the week containing the date's Thursday, so labels stay
// contiguous across calendar year boundaries.
func ISOWeekLabel(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}
