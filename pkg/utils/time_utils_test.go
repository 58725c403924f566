package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTripDate(t *testing.T) {
	d, err := ParseTripDate("2025-12-20")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseTripDate("20/12/2025")
	require.Error(t, err)
}

func TestTripDayDate(t *testing.T) {
	start, err := ParseTripDate("2025-12-30")
	require.NoError(t, err)

	assert.Equal(t, "2025-12-30", TripDayDate(start, 0))
	assert.Equal(t, "2026-01-02", TripDayDate(start, 3))
	assert.Empty(t, TripDayDate(time.Time{}, 1))
}
