package timeline

import (
	"strconv"
	"time"

	"campaigntimeline/internal/calendar"
)

// Marker is one tick on the time axis.
type Marker struct {
	// Label is the display text: the English short month name for month
	// markers, the day number in month zoom, empty for week ticks.
	Label string
	// Month identifies the month the marker belongs to, so presentation
	// code can localise month names without parsing Label.
	Month           time.Month
	Date            time.Time
	IsMonthBoundary bool
	IsWeekStart     bool
	// WeekNumber is the ISO-8601 week number, set only when IsWeekStart.
	WeekNumber int
}

// GenerateMarkers returns the axis markers of the view anchored at ref,
// ascending by date. A zero reference date yields no markers.
//
// In Year zoom each month contributes a month marker dated the 1st followed
// by one week marker per Monday of that month. In Month zoom every day of
// ref's month gets a marker labelled with its day number.
func GenerateMarkers(ref time.Time, zoom ZoomLevel) []Marker {
	if ref.IsZero() {
		return nil
	}
	switch zoom {
	case Year:
		return yearMarkers(ref.Year())
	case Month:
		return dayMarkers(ref.Year(), ref.Month())
	}
	return nil
}

// GenerateAxisMarkers returns every marker the axis of the view spans. The
// month-zoom axis covers the whole year at day resolution so that it can be
// scrolled across months; the year-zoom axis is GenerateMarkers itself.
func GenerateAxisMarkers(ref time.Time, zoom ZoomLevel) []Marker {
	if ref.IsZero() || zoom != Month {
		return GenerateMarkers(ref, zoom)
	}
	year := ref.Year()
	markers := make([]Marker, 0, calendar.DaysInYear(year))
	for m := time.January; m <= time.December; m++ {
		markers = append(markers, dayMarkers(year, m)...)
	}
	return markers
}

func yearMarkers(year int) []Marker {
	markers := make([]Marker, 0, 12+53)
	for m := time.January; m <= time.December; m++ {
		markers = append(markers, Marker{
			Label:           m.String()[:3],
			Month:           m,
			Date:            calendar.Date(year, m, 1),
			IsMonthBoundary: true,
		})

		last := calendar.DaysInMonth(year, m)
		for day := calendar.FirstMonday(year, m); day <= last; day += 7 {
			date := calendar.Date(year, m, day)
			markers = append(markers, Marker{
				Month:       m,
				Date:        date,
				IsWeekStart: true,
				WeekNumber:  calendar.ISOWeek(date),
			})
		}
	}
	return markers
}

func dayMarkers(year int, month time.Month) []Marker {
	days := calendar.DaysInMonth(year, month)
	markers := make([]Marker, 0, days)
	for day := 1; day <= days; day++ {
		date := calendar.Date(year, month, day)
		marker := Marker{
			Label: strconv.Itoa(day),
			Month: month,
			Date:  date,
		}
		if date.Weekday() == time.Monday {
			marker.IsWeekStart = true
			marker.WeekNumber = calendar.ISOWeek(date)
		}
		markers = append(markers, marker)
	}
	return markers
}
