package render

import (
	"strconv"
	"time"

	"golang.org/x/text/language"

	"campaigntimeline/internal/timeline"
)

// Month names per supported language, January first.
var (
	monthNames = map[language.Tag][12]string{
		language.English: {"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December"},
		language.German: {"Januar", "Februar", "März", "April", "Mai", "Juni",
			"Juli", "August", "September", "Oktober", "November", "Dezember"},
	}
	shortMonthNames = map[language.Tag][12]string{
		language.English: {"Jan", "Feb", "Mar", "Apr", "May", "Jun",
			"Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		language.German: {"Jan", "Feb", "Mär", "Apr", "Mai", "Jun",
			"Jul", "Aug", "Sep", "Okt", "Nov", "Dez"},
	}
	weekPrefix = map[language.Tag]string{
		language.English: "W",
		language.German:  "KW",
	}
)

var (
	supported = []language.Tag{language.English, language.German}
	matcher   = language.NewMatcher(supported)
)

// Locale picks month and week labels for a BCP 47 locale string.
type Locale struct {
	tag language.Tag
}

// NewLocale returns the closest supported locale to s. Unknown or
// unparseable locales fall back to English.
func NewLocale(s string) Locale {
	tag, err := language.Parse(s)
	if err != nil {
		return Locale{tag: language.English}
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Locale{tag: language.English}
	}
	return Locale{tag: supported[idx]}
}

// Tag returns the matched language.
func (l Locale) Tag() language.Tag {
	if l.tag == (language.Tag{}) {
		return language.English
	}
	return l.tag
}

// MonthName returns the full name of m.
func (l Locale) MonthName(m time.Month) string {
	return monthNames[l.Tag()][m-1]
}

// ShortMonthName returns the abbreviated name of m.
func (l Locale) ShortMonthName(m time.Month) string {
	return shortMonthNames[l.Tag()][m-1]
}

// WeekLabel formats an ISO week number, e.g. "KW14" in German.
func (l Locale) WeekLabel(week int) string {
	return weekPrefix[l.Tag()] + strconv.Itoa(week)
}

// Title is the heading of a view: the year in Year zoom, the month name and
// year in Month zoom. A zero reference date has no title.
func (l Locale) Title(ref time.Time, zoom timeline.ZoomLevel) string {
	if ref.IsZero() {
		return ""
	}
	if zoom == timeline.Month {
		return l.MonthName(ref.Month()) + " " + ref.Format("2006")
	}
	return ref.Format("2006")
}
