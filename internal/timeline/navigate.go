package timeline

import (
	"time"

	"campaigntimeline/internal/calendar"
)

// Navigate moves the reference date by step views: whole years in Year zoom,
// whole months in Month zoom. The result is the 1st of the resulting month
// (Jan 1 in Year zoom), so repeated navigation never drifts on short months.
func Navigate(ref time.Time, zoom ZoomLevel, step int) time.Time {
	if ref.IsZero() {
		return time.Time{}
	}
	switch zoom {
	case Month:
		return calendar.Date(ref.Year(), ref.Month()+time.Month(step), 1)
	default:
		return calendar.Date(ref.Year()+step, time.January, 1)
	}
}

// ScrollOffset is the horizontal offset, in the renderer's units, at which a
// Month zoom view of ref starts. Year zoom views are never scrolled.
func ScrollOffset(ref time.Time, zoom ZoomLevel, monthWidth float64) float64 {
	if zoom != Month || ref.IsZero() {
		return 0
	}
	return float64(ref.Month()-1) * monthWidth
}
