package excel

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikerental/domain/core"
	"bikerental/domain/rental"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rentals.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDataReaderLoadsCSV(t *testing.T) {
	path := writeTempCSV(t, `date,rented_bike_count,hour,temp,humidity,wind_speed,visibility,solar_rad,rainfall,snowfall,seasons,holiday
01/12/2017,254,0,-5.2,37,2.2,2000,0,0,0,Winter,No Holiday
01/12/2017,204,1,-5.5,38,0.8,2000,0,0,0,Winter,No Holiday
`)

	records, err := NewDataReader(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "01/12/2017", first.DateText)
	assert.Equal(t, 254, first.RentedCount)
	assert.Equal(t, 0, first.Hour)
	assert.Equal(t, -5.2, first.Temperature)
	assert.Equal(t, "Winter", first.Season)
	assert.Equal(t, "No Holiday", first.Holiday)
}

func TestDataReaderMissingFile(t *testing.T) {
	_, err := NewDataReader("/nonexistent/rentals.csv").Load(context.Background())
	assert.True(t, core.IsSourceUnavailable(err))
}

func TestDataReaderHeaderOnlyIsEmptyDataset(t *testing.T) {
	path := writeTempCSV(t, "date,rented_bike_count,hour\n")
	_, err := NewDataReader(path).Load(context.Background())
	assert.True(t, core.IsEmptyDataset(err))
}

func TestDataReaderMissingRequiredColumn(t *testing.T) {
	path := writeTempCSV(t, "date,hour\n01/12/2017,0\n")
	_, err := NewDataReader(path).Load(context.Background())
	require.Error(t, err)
	assert.True(t, core.IsSourceUnavailable(err))
	assert.Contains(t, err.Error(), "rented_bike_count")
}

func TestDataReaderRejectsBadRows(t *testing.T) {
	cases := []struct {
		name string
		row  string
	}{
		{"non-numeric count", "01/12/2017,abc,0"},
		{"negative count", "01/12/2017,-4,0"},
		{"hour out of range", "01/12/2017,10,24"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeTempCSV(t, "date,rented_bike_count,hour\n"+tc.row+"\n")
			_, err := NewDataReader(path).Load(context.Background())
			assert.True(t, core.IsSourceUnavailable(err))
		})
	}
}

func TestCSVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "rentals.csv")
	records := []rental.Record{
		{
			Observation: rental.Observation{
				Date:        time.Date(2017, 12, 1, 0, 0, 0, 0, time.UTC),
				Hour:        7,
				RentedCount: 650,
				Temperature: -1.5,
				Humidity:    40,
				Season:      "Winter",
				Holiday:     "No Holiday",
			},
		},
	}

	require.NoError(t, NewCSVWriter(path).Save(context.Background(), records))

	loaded, err := NewDataReader(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "01/12/2017", loaded[0].DateText)
	assert.Equal(t, 650, loaded[0].RentedCount)
	assert.Equal(t, 7, loaded[0].Hour)
	assert.Equal(t, -1.5, loaded[0].Temperature)
}
