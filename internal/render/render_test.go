package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"campaigntimeline/internal/calendar"
	"campaigntimeline/internal/campaign"
	"campaigntimeline/internal/config"
	"campaigntimeline/internal/timeline"
)

func sampleCampaigns() []timeline.Campaign {
	return []timeline.Campaign{
		{ID: 1, Start: calendar.Date(2024, 1, 10), End: calendar.Date(2024, 2, 15),
			Fields: map[string]string{campaign.FieldName: "Bayern <Q1>", campaign.FieldStatus: campaign.StatusActive, campaign.FieldLocation: "München"}},
		{ID: 2, Start: calendar.Date(2024, 2, 1), End: calendar.Date(2024, 2, 20),
			Fields: map[string]string{campaign.FieldName: "Hessen", campaign.FieldStatus: campaign.StatusPlanned}},
		{ID: 3, Start: calendar.Date(2024, 2, 18), End: calendar.Date(2024, 3, 1)},
	}
}

func render(t *testing.T, zoom timeline.ZoomLevel, cfg config.Config) string {
	t.Helper()
	ref := calendar.Date(2024, time.March, 1)
	out := SVG(Input{
		Layout:  timeline.LayoutCampaigns(sampleCampaigns(), ref, zoom),
		Markers: timeline.GenerateAxisMarkers(ref, zoom),
		Ref:     ref,
		Zoom:    zoom,
	}, cfg)
	require.NotEmpty(t, out)
	return out
}

func TestSVGYear(t *testing.T) {
	cfg := config.DefaultConfig()
	out := render(t, timeline.Year, cfg)

	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.True(t, strings.HasSuffix(out, "</svg>\n"))
	assert.Contains(t, out, `width="2432"`)
	assert.Contains(t, out, `data-zoom="year"`)
	assert.Contains(t, out, `data-scroll-x="0"`)
	assert.Contains(t, out, ">2024</text>")

	assert.Equal(t, 3, strings.Count(out, "<g data-campaign-id="))
	assert.Contains(t, out, `data-campaign-id="2" data-row="1"`)
	assert.Contains(t, out, `data-campaign-id="3" data-row="0"`)
	assert.Contains(t, out, "Bayern &lt;Q1&gt;")
	assert.NotContains(t, out, "<Q1>")
	assert.Contains(t, out, ">#3</text>")
	assert.Contains(t, out, cfg.Colors.Status[campaign.StatusActive].Fill)

	assert.Contains(t, out, ">Mar</text>")
	assert.Contains(t, out, ">W1</text>")
}

func TestSVGMonthGerman(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Timeline.Locale = "de-DE"
	out := render(t, timeline.Month, cfg)

	assert.Contains(t, out, `width="14432"`)
	assert.Contains(t, out, `data-scroll-x="2400"`)
	assert.Contains(t, out, ">März 2024</text>")
	assert.Contains(t, out, ">KW10</text>")
	assert.Contains(t, out, ">31</text>")
}

func TestSVGHidesWeeks(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Timeline.ShowWeeks = false
	out := render(t, timeline.Year, cfg)
	assert.NotContains(t, out, ">W1</text>")
}

func TestSVGEmpty(t *testing.T) {
	cfg := config.DefaultConfig()
	assert.Empty(t, SVG(Input{}, cfg))

	ref := calendar.Date(2024, 1, 1)
	out := SVG(Input{Ref: ref, Zoom: timeline.Year, Markers: timeline.GenerateMarkers(ref, timeline.Year)}, cfg)
	assert.NotContains(t, out, "data-campaign-id")
	// One empty row still gets drawn.
	assert.Contains(t, out, `height="190"`)
}

func TestNewLocale(t *testing.T) {
	tests := []struct {
		in   string
		want language.Tag
	}{
		{"en", language.English},
		{"de", language.German},
		{"de-AT", language.German},
		{"fr", language.English},
		{"!!", language.English},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NewLocale(tt.in).Tag(), tt.in)
	}

	de := NewLocale("de")
	assert.Equal(t, "Oktober", de.MonthName(time.October))
	assert.Equal(t, "Mär", de.ShortMonthName(time.March))
	assert.Equal(t, "KW53", de.WeekLabel(53))

	ref := calendar.Date(2024, time.January, 20)
	assert.Equal(t, "Januar 2024", de.Title(ref, timeline.Month))
	assert.Equal(t, "January 2024", NewLocale("en").Title(ref, timeline.Month))
	assert.Equal(t, "2024", de.Title(ref, timeline.Year))
	assert.Empty(t, de.Title(time.Time{}, timeline.Month))

	var zero Locale
	assert.Equal(t, "January", zero.MonthName(time.January))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10, 100))
	got := truncate("a considerably longer campaign name", 10, 60)
	assert.True(t, strings.HasSuffix(got, "…"))
	assert.LessOrEqual(t, estimateTextWidth(got, 10), 60)
	assert.Empty(t, truncate("anything", 10, 0))
}

func TestEscapeXML(t *testing.T) {
	assert.Equal(t, "&lt;a href=&quot;x&quot;&gt;Tom &amp; Jerry&apos;s&lt;/a&gt;", escapeXML(`<a href="x">Tom & Jerry's</a>`))
}
