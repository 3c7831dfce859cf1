// Package timeline lays out date-ranged campaigns on a zoomable calendar axis.
//
// It has two halves. GenerateMarkers produces the axis ticks (months, ISO
// weeks, days) for a reference date and zoom level. LayoutCampaigns maps
// each campaign to a horizontal position and packs the visible ones into
// rows so that no two campaigns in a row overlap in time.
//
// Everything here is a pure function of its inputs: there is no I/O, no
// logging and no retained state, so callers may memoize results keyed on
// (campaigns, reference date, zoom level).
package timeline

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownZoom is returned by ParseZoomLevel for unrecognised names.
var ErrUnknownZoom = errors.New("unknown zoom level")

// ZoomLevel is the temporal resolution of the timeline.
type ZoomLevel int

const (
	// Year shows a whole year at month granularity.
	Year ZoomLevel = iota
	// Month shows a year at day granularity, one month per screen.
	Month
)

func (z ZoomLevel) String() string {
	switch z {
	case Year:
		return "year"
	case Month:
		return "month"
	default:
		return fmt.Sprintf("ZoomLevel(%d)", int(z))
	}
}

// ParseZoomLevel accepts "year" or "month", case-insensitively.
func ParseZoomLevel(s string) (ZoomLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "year", "y":
		return Year, nil
	case "month", "m":
		return Month, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownZoom, s)
}
