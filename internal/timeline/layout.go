package timeline

import (
	"sort"
	"time"

	"campaigntimeline/internal/calendar"
)

// PositionedCampaign is a campaign with its axis position and row.
type PositionedCampaign struct {
	Campaign
	Position
	// RowIndex is the 0-based lane, or -1 for campaigns that are not visible.
	RowIndex int
}

// Layout is the result of LayoutCampaigns.
type Layout struct {
	// Rows holds the visible campaigns grouped by lane, in placement order.
	Rows [][]PositionedCampaign
	// Flat holds the visible campaigns in placement order (start date, then id).
	Flat []PositionedCampaign
	// Hidden holds campaigns outside the window or with missing dates, in
	// input order.
	Hidden []PositionedCampaign
}

// RowCount returns the number of lanes used.
func (l Layout) RowCount() int {
	return len(l.Rows)
}

// Options tune LayoutCampaigns.
type Options struct {
	// BufferDays widens the same-row overlap test on both sides, leaving at
	// least BufferDays empty days between neighbours in a row.
	BufferDays int
}

// DefaultBufferDays is the gap kept between campaigns sharing a row.
const DefaultBufferDays = 0

// Option configures Options.
type Option func(*Options)

// WithBufferDays sets Options.BufferDays. Negative values are treated as 0.
func WithBufferDays(days int) Option {
	return func(o *Options) {
		o.BufferDays = max(0, days)
	}
}

// Overlaps reports whether a and b conflict when sharing a row: their
// inclusive day ranges, each widened by bufferDays, intersect. Campaigns
// with missing dates never overlap anything.
func Overlaps(a, b Campaign, bufferDays int) bool {
	aStart, aEnd, okA := a.span()
	bStart, bEnd, okB := b.span()
	if !okA || !okB {
		return false
	}
	bufferDays = max(0, bufferDays)
	return !aStart.After(calendar.AddDays(bEnd, bufferDays)) &&
		!bStart.After(calendar.AddDays(aEnd, bufferDays))
}

// LayoutCampaigns positions every campaign for the view anchored at ref and
// packs the visible ones into rows.
//
// Visible campaigns are ordered by start date, ties broken by ascending id,
// and each is placed in the lowest row whose campaigns it does not overlap;
// a new row is opened when none fits. This first-fit sweep uses exactly as
// many rows as the largest number of campaigns overlapping on a single day.
// The same input always yields the same layout.
func LayoutCampaigns(campaigns []Campaign, ref time.Time, zoom ZoomLevel, opts ...Option) Layout {
	o := Options{BufferDays: DefaultBufferDays}
	for _, opt := range opts {
		opt(&o)
	}

	var layout Layout
	var visible []PositionedCampaign
	for _, c := range campaigns {
		pc := PositionedCampaign{
			Campaign: c.clone(),
			Position: PositionOf(c, ref, zoom),
			RowIndex: -1,
		}
		if pc.IsVisible {
			visible = append(visible, pc)
		} else {
			layout.Hidden = append(layout.Hidden, pc)
		}
	}

	sort.SliceStable(visible, func(i, j int) bool {
		si, sj := calendar.Normalize(visible[i].Start), calendar.Normalize(visible[j].Start)
		if !si.Equal(sj) {
			return si.Before(sj)
		}
		return visible[i].ID < visible[j].ID
	})

	// rowEnds[r] is the latest end day in row r. Candidates arrive in start
	// order, so a campaign fits row r iff it starts after rowEnds[r]+buffer.
	var rowEnds []time.Time
	for _, pc := range visible {
		start, end, _ := pc.span()
		row := -1
		for r, rowEnd := range rowEnds {
			if calendar.DaysBetween(rowEnd, start) > o.BufferDays {
				row = r
				break
			}
		}
		if row < 0 {
			row = len(rowEnds)
			rowEnds = append(rowEnds, end)
			layout.Rows = append(layout.Rows, nil)
		} else if end.After(rowEnds[row]) {
			rowEnds[row] = end
		}

		pc.RowIndex = row
		layout.Rows[row] = append(layout.Rows[row], pc)
		layout.Flat = append(layout.Flat, pc)
	}
	return layout
}

// MaxDepth returns the largest number of campaigns that pairwise overlap
// (under the same bufferDays widening as Overlaps) on a single day. It is
// the minimum number of rows any valid packing of campaigns needs.
func MaxDepth(campaigns []Campaign, bufferDays int) int {
	bufferDays = max(0, bufferDays)

	type edge struct {
		day   int64
		delta int
	}
	edges := make([]edge, 0, 2*len(campaigns))
	for _, c := range campaigns {
		start, end, ok := c.span()
		if !ok {
			continue
		}
		// Half-open day interval [start, end+buffer+1).
		edges = append(edges,
			edge{day: start.Unix(), delta: 1},
			edge{day: calendar.AddDays(end, bufferDays+1).Unix(), delta: -1},
		)
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].day != edges[j].day {
			return edges[i].day < edges[j].day
		}
		return edges[i].delta < edges[j].delta
	})

	depth, best := 0, 0
	for _, e := range edges {
		depth += e.delta
		best = max(best, depth)
	}
	return best
}
