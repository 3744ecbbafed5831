package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mvdcruz/invitation-rsvp/internal/domain"
)

func TestEvent_CalendarURL(t *testing.T) {
	event := domain.Event{
		Title:    "Avelina's 60th Birthday Celebration",
		Details:  "Join us as we celebrate Avelina's Diamond Jubilee!",
		Location: "The Emerald Events Place, Antipolo, Rizal",
		Start:    "20260208T150000",
		End:      "20260208T200000",
	}

	got := event.CalendarURL()

	assert.Contains(t, got, "https://www.google.com/calendar/render?action=TEMPLATE")
	assert.Contains(t, got, "text=Avelina%27s%2060th%20Birthday%20Celebration")
	assert.Contains(t, got, "dates=20260208T150000/20260208T200000")
	assert.Contains(t, got, "location=The%20Emerald%20Events%20Place%2C%20Antipolo%2C%20Rizal")
	assert.NotContains(t, got, "+", "spaces must be %20-encoded, not form-encoded")
}

func TestEvent_CalendarURL_EscapesAmpersand(t *testing.T) {
	event := domain.Event{
		Title: "Dinner & Dancing",
		Start: "20260208T150000",
		End:   "20260208T200000",
	}

	got := event.CalendarURL()

	assert.Contains(t, got, "text=Dinner%20%26%20Dancing")
}
