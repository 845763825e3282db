package testkit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratorIsDeterministic(t *testing.T) {
	config := DefaultGeneratorConfig()

	first, err := NewGenerator(config).Load(context.Background())
	require.NoError(t, err)
	second, err := NewGenerator(config).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGeneratorCoversEveryHour(t *testing.T) {
	config := DefaultGeneratorConfig()
	config.StartDate = time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)
	config.EndDate = time.Date(2018, 1, 3, 0, 0, 0, 0, time.UTC)
	config.ClosedDayInterval = 0

	records, err := NewGenerator(config).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 3*24)

	for i, rec := range records {
		assert.Equal(t, i%24, rec.Hour)
		assert.GreaterOrEqual(t, rec.RentedCount, 0)
		assert.NotZero(t, rec.Date)
	}
}

func TestGeneratorClosedDaysAreAllZero(t *testing.T) {
	config := DefaultGeneratorConfig()
	config.StartDate = time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)
	config.EndDate = time.Date(2018, 1, 4, 0, 0, 0, 0, time.UTC)
	config.ClosedDayInterval = 2 // days 2 and 4 closed

	records, err := NewGenerator(config).Load(context.Background())
	require.NoError(t, err)

	for _, rec := range records {
		if rec.Date.Day() == 2 || rec.Date.Day() == 4 {
			assert.Zero(t, rec.RentedCount)
		}
	}
}
