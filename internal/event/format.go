package event

import (
	"time"

	"github.com/contextclip/clipcal/internal/attendees"
)

// DefaultTimeZone is the civil-time zone label attached to event times.
const DefaultTimeZone = "Asia/Seoul"

const reminderMinutes = 15

// Payload is the calendar service's wire shape for an event create call.
type Payload struct {
	Summary     string               `json:"summary"`
	Description string               `json:"description"`
	Start       PayloadTime          `json:"start"`
	End         PayloadTime          `json:"end"`
	Location    string               `json:"location"`
	Attendees   []attendees.Attendee `json:"attendees"`
	Reminders   Reminders            `json:"reminders"`
}

// PayloadTime pairs an instant with the zone label the calendar should show
// it in. The label accompanies the instant; it is not a conversion.
type PayloadTime struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone"`
}

// Reminders overrides the calendar's default reminder set.
type Reminders struct {
	UseDefault bool               `json:"useDefault"`
	Overrides  []ReminderOverride `json:"overrides"`
}

// ReminderOverride is a single reminder entry.
type ReminderOverride struct {
	Method  string `json:"method"`
	Minutes int64  `json:"minutes"`
}

// FormatPayload converts a reconciled event into the calendar wire shape.
// Upstream has already guaranteed a non-empty title and EndDate >= StartDate.
// The free-text Reminder advisory is not translated into the override; the
// override is fixed at a 15 minute popup.
func FormatPayload(ev *Extracted, timeZone string) *Payload {
	if timeZone == "" {
		timeZone = DefaultTimeZone
	}

	return &Payload{
		Summary:     ev.Title,
		Description: FormatDescription(ev.Description),
		Start: PayloadTime{
			DateTime: ev.StartDate.Format(time.RFC3339),
			TimeZone: timeZone,
		},
		End: PayloadTime{
			DateTime: ev.EndDate.Format(time.RFC3339),
			TimeZone: timeZone,
		},
		Location:  ev.Location,
		Attendees: attendees.FilterToPayload(ev.Attendees),
		Reminders: Reminders{
			UseDefault: false,
			Overrides: []ReminderOverride{
				{Method: "popup", Minutes: reminderMinutes},
			},
		},
	}
}
