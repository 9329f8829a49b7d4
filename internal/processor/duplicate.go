package processor

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/contextclip/clipcal/internal/event"
)

// duplicateWindow widens the lookup range around the candidate event.
const duplicateWindow = 30 * time.Minute

// checkDuplicate reports whether the calendar already holds an event with
// the same title near the candidate's time slot. Lookup failure counts as
// no duplicate; the publish proceeds.
func (p *Publisher) checkDuplicate(calendarID string, payload *event.Payload) bool {
	start, err := time.Parse(time.RFC3339, payload.Start.DateTime)
	if err != nil {
		return false
	}
	end, err := time.Parse(time.RFC3339, payload.End.DateTime)
	if err != nil {
		return false
	}

	existing, err := p.calendar.ListEventsInRange(calendarID, start.Add(-duplicateWindow), end.Add(duplicateWindow))
	if err != nil {
		log.Warn().Err(err).Msg("duplicate check failed, assuming no duplicate")
		return false
	}

	for _, ev := range existing {
		if ev.Summary != "" && strings.EqualFold(ev.Summary, payload.Summary) {
			return true
		}
	}
	return false
}
