package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaigntimeline/internal/calendar"
)

func TestParseZoomLevel(t *testing.T) {
	z, err := ParseZoomLevel("Year")
	require.NoError(t, err)
	assert.Equal(t, Year, z)

	z, err = ParseZoomLevel(" month ")
	require.NoError(t, err)
	assert.Equal(t, Month, z)

	_, err = ParseZoomLevel("quarter")
	assert.ErrorIs(t, err, ErrUnknownZoom)

	assert.Equal(t, "year", Year.String())
	assert.Equal(t, "month", Month.String())
	assert.Equal(t, "ZoomLevel(9)", ZoomLevel(9).String())
}

func TestNavigate(t *testing.T) {
	tests := []struct {
		name string
		ref  time.Time
		zoom ZoomLevel
		step int
		want time.Time
	}{
		{"next month from the 31st", calendar.Date(2024, 1, 31), Month, 1, calendar.Date(2024, 2, 1)},
		{"december wraps", calendar.Date(2024, 12, 5), Month, 1, calendar.Date(2025, 1, 1)},
		{"january wraps back", calendar.Date(2024, 1, 5), Month, -1, calendar.Date(2023, 12, 1)},
		{"previous year", calendar.Date(2024, 7, 9), Year, -1, calendar.Date(2023, 1, 1)},
		{"stay", calendar.Date(2024, 7, 9), Year, 0, calendar.Date(2024, 1, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Navigate(tt.ref, tt.zoom, tt.step)
			assert.True(t, tt.want.Equal(got), "got %v", got)
		})
	}
	assert.True(t, Navigate(time.Time{}, Year, 1).IsZero())
}

func TestScrollOffset(t *testing.T) {
	ref := calendar.Date(2024, time.March, 14)
	assert.Equal(t, 2400.0, ScrollOffset(ref, Month, 1200))
	assert.Equal(t, 0.0, ScrollOffset(ref, Year, 1200))
	assert.Equal(t, 0.0, ScrollOffset(time.Time{}, Month, 1200))
}
