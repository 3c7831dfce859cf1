package campaign

import (
	"fmt"
	"math/rand/v2"
	"time"

	"campaigntimeline/internal/calendar"
)

type city struct {
	name, state string
}

var cities = []city{
	{"München", "Bayern"},
	{"Stuttgart", "Baden-Württemberg"},
	{"Frankfurt", "Hessen"},
	{"Hamburg", "Hamburg"},
	{"Berlin", "Berlin"},
	{"Köln", "Nordrhein-Westfalen"},
	{"Dresden", "Sachsen"},
	{"Hannover", "Niedersachsen"},
}

// GenerateOptions controls Generate.
type GenerateOptions struct {
	Year  int
	Count int
	Seed  uint64
	// Now decides each campaign's status; zero means time.Now.
	Now time.Time
}

// Generate returns up to opts.Count sample campaigns of four to eight weeks,
// all inside opts.Year. Start dates advance by roughly a year divided by
// Count (±20%), so long campaigns overlap their successors. The same options
// always yield the same records.
func Generate(opts GenerateOptions) []Record {
	if opts.Count <= 0 {
		return nil
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	now = calendar.Normalize(now)

	rng := rand.New(rand.NewPCG(opts.Seed, uint64(opts.Year)))
	yearStart, yearEnd := calendar.YearBounds(opts.Year)
	avgGap := float64(calendar.DaysInYear(opts.Year)) / float64(opts.Count)

	records := make([]Record, 0, min(opts.Count, calendar.DaysInYear(opts.Year)))
	current := yearStart
	for len(records) < opts.Count && current.Before(yearEnd) {
		duration := 28 + rng.IntN(56-28+1)
		end := calendar.AddDays(current, duration)
		if end.Year() > opts.Year {
			break
		}

		c := cities[rng.IntN(len(cities))]
		teamMax := 15
		team := 10 + rng.IntN(teamMax-10+1)
		vehicles := 2 + rng.IntN(2)

		records = append(records, Record{
			ID:            len(records) + 1,
			Name:          fmt.Sprintf("%s Kampagne Q%d/%02d", c.state, (int(current.Month())-1)/3+1, opts.Year%100),
			StartDate:     current.Format("2006-01-02"),
			EndDate:       end.Format("2006-01-02"),
			Status:        statusAt(current, end, now),
			Location:      c.name,
			Team:          Quota{Confirmed: team, Required: teamMax},
			Accommodation: Quota{Confirmed: 12 - rng.IntN(3), Required: 12},
			Vehicles:      Quota{Confirmed: vehicles - rng.IntN(2), Required: vehicles},
			Equipment:     Quota{Confirmed: team * 4, Required: team * 4},
		})

		gap := int(avgGap * (0.8 + rng.Float64()*0.4))
		current = calendar.AddDays(current, max(1, gap))
	}
	return records
}

func statusAt(start, end, now time.Time) string {
	switch {
	case now.Before(calendar.AddDays(start, -14)):
		return StatusPlanned
	case now.Before(start):
		return StatusPreparation
	case now.After(end):
		return StatusCompleted
	default:
		return StatusActive
	}
}
