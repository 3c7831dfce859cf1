package timeline

import (
	"maps"
	"time"

	"campaigntimeline/internal/calendar"
)

// Campaign is a date-ranged item to lay out. Start and End are inclusive
// calendar days. Fields carries presentation data the layout never reads.
type Campaign struct {
	ID     int
	Start  time.Time
	End    time.Time
	Fields map[string]string
}

// span returns the normalised range of c. An inverted range collapses to
// its start day; ok is false when either date is missing.
func (c Campaign) span() (start, end time.Time, ok bool) {
	if c.Start.IsZero() || c.End.IsZero() {
		return time.Time{}, time.Time{}, false
	}
	start, end = calendar.Normalize(c.Start), calendar.Normalize(c.End)
	if end.Before(start) {
		end = start
	}
	return start, end, true
}

func (c Campaign) clone() Campaign {
	c.Fields = maps.Clone(c.Fields)
	return c
}

// Position is the horizontal placement of a campaign on the axis, expressed
// as fractions of the reference year. In Month zoom the axis is the same
// year drawn at a larger scale, so the renderer multiplies by its own
// month-zoom axis width.
type Position struct {
	LeftFraction  float64
	WidthFraction float64
	IsVisible     bool
}

// PositionOf maps c onto the axis of the view anchored at ref.
//
// The left edge is clamped to the start of the year; the width is the
// campaign's day span and is never negative. In Year zoom a campaign is
// visible when it intersects the reference year; in Month zoom when it
// starts in the reference year. Campaigns with missing dates are never
// visible.
func PositionOf(c Campaign, ref time.Time, zoom ZoomLevel) Position {
	start, end, ok := c.span()
	if !ok || ref.IsZero() {
		return Position{}
	}

	year := ref.Year()
	yearStart, yearEnd := calendar.YearBounds(year)
	days := float64(calendar.DaysInYear(year))

	pos := Position{
		LeftFraction:  float64(max(0, calendar.DaysBetween(yearStart, start))) / days,
		WidthFraction: float64(calendar.DaysBetween(start, end)) / days,
	}
	switch zoom {
	case Year:
		pos.IsVisible = !start.After(yearEnd) && !end.Before(yearStart)
	case Month:
		pos.IsVisible = start.Year() == year
	}
	return pos
}
