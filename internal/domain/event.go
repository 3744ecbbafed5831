package domain

import (
	"net/url"
	"strings"
)

// Event describes the celebration the invitation is for.
// All fields are plain strings populated from configuration; Start and End
// are calendar-provider instants in YYYYMMDDTHHMMSS form, deliberately kept
// as opaque literals rather than time.Time — the provider's format carries
// no zone and reinterpreting it would shift the event.
type Event struct {
	Title     string `json:"title"`
	Details   string `json:"details"`
	Location  string `json:"location"`
	DressCode string `json:"dress_code"`
	MapURL    string `json:"map_url"`
	Start     string `json:"start"`
	End       string `json:"end"`
}

// CalendarURL builds the Google Calendar "quick add" link for the event.
// Pure function: no state, no side effects beyond the returned string.
func (e Event) CalendarURL() string {
	var b strings.Builder
	b.WriteString("https://www.google.com/calendar/render?action=TEMPLATE")
	b.WriteString("&text=")
	b.WriteString(calendarEscape(e.Title))
	b.WriteString("&dates=")
	b.WriteString(e.Start)
	b.WriteString("/")
	b.WriteString(e.End)
	b.WriteString("&details=")
	b.WriteString(calendarEscape(e.Details))
	b.WriteString("&location=")
	b.WriteString(calendarEscape(e.Location))
	return b.String()
}

// calendarEscape percent-encodes a query component the way browsers'
// encodeURIComponent does: spaces become %20, not "+".
func calendarEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
