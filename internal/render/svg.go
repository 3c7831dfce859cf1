// Package render draws a timeline layout as an SVG document.
package render

import (
	"fmt"
	"strings"
	"time"

	"campaigntimeline/internal/calendar"
	"campaigntimeline/internal/campaign"
	"campaigntimeline/internal/config"
	"campaigntimeline/internal/timeline"
)

// Input is everything SVG draws.
type Input struct {
	Layout  timeline.Layout
	Markers []timeline.Marker
	Ref     time.Time
	Zoom    timeline.ZoomLevel
}

// AxisWidth returns the pixel width of the time axis for zoom.
func AxisWidth(zoom timeline.ZoomLevel, cfg config.Config) int {
	if zoom == timeline.Month {
		return cfg.Timeline.MonthWidth * 12
	}
	return cfg.Timeline.YearWidth
}

// SVG renders the layout: a header with the title and axis labels, one grid
// line per marker and one bar per visible campaign in its row. Markers and
// bars are placed by day offset within the reference year, so both share the
// same scale. An empty reference date yields an empty string.
func SVG(in Input, cfg config.Config) string {
	if in.Ref.IsZero() {
		return ""
	}
	loc := NewLocale(cfg.Timeline.Locale)

	axisWidth := AxisWidth(in.Zoom, cfg)
	rows := max(1, in.Layout.RowCount())
	width := cfg.Layout.MarginLeft + axisWidth + cfg.Layout.MarginRight
	bodyTop := cfg.Layout.MarginTop + cfg.Layout.HeaderHeight
	height := bodyTop + rows*cfg.Timeline.RowHeight + cfg.Layout.MarginBottom

	var svg strings.Builder
	fmt.Fprintf(&svg, `<?xml version="1.0" encoding="UTF-8"?>
<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg" data-zoom="%s" data-scroll-x="%g">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, in.Zoom, timeline.ScrollOffset(in.Ref, in.Zoom, float64(cfg.Timeline.MonthWidth)),
		cfg.Colors.Background)

	drawHeader(&svg, in, cfg, loc, axisWidth)
	drawGrid(&svg, in, cfg, axisWidth, bodyTop, height-cfg.Layout.MarginBottom)
	for _, pc := range in.Layout.Flat {
		drawCampaign(&svg, pc, cfg, axisWidth, bodyTop)
	}

	svg.WriteString("</svg>\n")
	return svg.String()
}

// markerX maps a marker date onto the axis.
func markerX(date, ref time.Time, axisWidth int, cfg config.Config) float64 {
	year := ref.Year()
	yearStart, _ := calendar.YearBounds(year)
	frac := float64(calendar.DaysBetween(yearStart, date)) / float64(calendar.DaysInYear(year))
	return float64(cfg.Layout.MarginLeft) + frac*float64(axisWidth)
}

func drawHeader(svg *strings.Builder, in Input, cfg config.Config, loc Locale, axisWidth int) {
	fontSize := cfg.Font.Size
	centerX := cfg.Layout.MarginLeft + axisWidth/2
	titleY := cfg.Layout.MarginTop + fontSize + 8

	fmt.Fprintf(svg, `<text x="%d" y="%d" text-anchor="middle" font-family="%s" font-size="%d" font-weight="bold" fill="%s">%s</text>`+"\n",
		centerX, titleY, cfg.Font.Family, fontSize+8, cfg.Colors.Text, escapeXML(loc.Title(in.Ref, in.Zoom)))

	labelY := cfg.Layout.MarginTop + cfg.Layout.HeaderHeight - 8
	weekY := labelY - fontSize - 4
	for _, m := range in.Markers {
		x := markerX(m.Date, in.Ref, axisWidth, cfg)
		label := m.Label
		if m.IsMonthBoundary {
			label = loc.ShortMonthName(m.Month)
		}
		if label != "" {
			fmt.Fprintf(svg, `<text x="%.1f" y="%d" font-family="%s" font-size="%d" fill="%s">%s</text>`+"\n",
				x+2, labelY, cfg.Font.Family, fontSize, cfg.Colors.Muted, escapeXML(label))
		}
		if m.IsWeekStart && cfg.Timeline.ShowWeeks {
			fmt.Fprintf(svg, `<text x="%.1f" y="%d" font-family="%s" font-size="%d" fill="%s">%s</text>`+"\n",
				x+2, weekY, cfg.Font.Family, fontSize-2, cfg.Colors.Muted, loc.WeekLabel(m.WeekNumber))
		}
	}
}

func drawGrid(svg *strings.Builder, in Input, cfg config.Config, axisWidth, top, bottom int) {
	for _, m := range in.Markers {
		x := markerX(m.Date, in.Ref, axisWidth, cfg)
		strokeWidth := 1
		if m.IsMonthBoundary || (in.Zoom == timeline.Month && m.Date.Day() == 1) {
			strokeWidth = 2
		}
		fmt.Fprintf(svg, `<line x1="%.1f" y1="%d" x2="%.1f" y2="%d" stroke="%s" stroke-width="%d"/>`+"\n",
			x, top, x, bottom, cfg.Colors.Grid, strokeWidth)
	}
}

func drawCampaign(svg *strings.Builder, pc timeline.PositionedCampaign, cfg config.Config, axisWidth, top int) {
	const minBarWidth = 4.0
	const padding = 6

	x := float64(cfg.Layout.MarginLeft) + pc.LeftFraction*float64(axisWidth)
	w := max(minBarWidth, pc.WidthFraction*float64(axisWidth))
	y := top + pc.RowIndex*cfg.Timeline.RowHeight
	style := cfg.StatusStyle(pc.Fields[campaign.FieldStatus])

	fmt.Fprintf(svg, `<g data-campaign-id="%d" data-row="%d">`+"\n", pc.ID, pc.RowIndex)
	fmt.Fprintf(svg, `<rect x="%.1f" y="%d" width="%.1f" height="%d" rx="6" fill="%s" stroke="%s" stroke-width="1"/>`+"\n",
		x, y, w, cfg.Timeline.BarHeight, style.Fill, style.Stroke)

	textWidth := int(w) - 2*padding
	fontSize := cfg.Font.Size
	name := pc.Fields[campaign.FieldName]
	if name == "" {
		name = fmt.Sprintf("#%d", pc.ID)
	}
	if line := truncate(name, fontSize, textWidth); line != "" {
		fmt.Fprintf(svg, `<text x="%.1f" y="%d" font-family="%s" font-size="%d" font-weight="bold" fill="%s">%s</text>`+"\n",
			x+padding, y+padding+fontSize, cfg.Font.Family, fontSize, style.Text, escapeXML(line))
	}

	details := pc.Start.Format("02.01.") + " – " + pc.End.Format("02.01.")
	if loc := pc.Fields[campaign.FieldLocation]; loc != "" {
		details = loc + " · " + details
	}
	if line := truncate(details, fontSize-2, textWidth); line != "" {
		fmt.Fprintf(svg, `<text x="%.1f" y="%d" font-family="%s" font-size="%d" fill="%s">%s</text>`+"\n",
			x+padding, y+padding+2*fontSize+4, cfg.Font.Family, fontSize-2, cfg.Colors.Muted, escapeXML(line))
	}
	svg.WriteString("</g>\n")
}
