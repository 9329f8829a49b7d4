package gcal

import (
	"fmt"
	"time"

	"google.golang.org/api/calendar/v3"

	"github.com/contextclip/clipcal/internal/event"
)

// EventSummary is the slice of a calendar event the duplicate check needs.
type EventSummary struct {
	ID      string
	Summary string
	Start   time.Time
	End     time.Time
}

// CreatedEvent describes an event that was just inserted.
type CreatedEvent struct {
	ID       string
	Summary  string
	Start    string
	End      string
	HTMLLink string
}

// CreateEvent inserts a formatted event payload into the given calendar.
func (c *Client) CreateEvent(calendarID string, payload *event.Payload) (*CreatedEvent, error) {
	if c.service == nil {
		return nil, fmt.Errorf("calendar service not initialized")
	}

	if calendarID == "" {
		calendarID = "primary"
	}

	item := &calendar.Event{
		Summary:     payload.Summary,
		Description: payload.Description,
		Location:    payload.Location,
		Start: &calendar.EventDateTime{
			DateTime: payload.Start.DateTime,
			TimeZone: payload.Start.TimeZone,
		},
		End: &calendar.EventDateTime{
			DateTime: payload.End.DateTime,
			TimeZone: payload.End.TimeZone,
		},
		Reminders: &calendar.EventReminders{
			UseDefault:      payload.Reminders.UseDefault,
			ForceSendFields: []string{"UseDefault"},
		},
	}

	for _, override := range payload.Reminders.Overrides {
		item.Reminders.Overrides = append(item.Reminders.Overrides, &calendar.EventReminder{
			Method:  override.Method,
			Minutes: override.Minutes,
		})
	}

	if len(payload.Attendees) > 0 {
		attendees := make([]*calendar.EventAttendee, len(payload.Attendees))
		for i, a := range payload.Attendees {
			attendees[i] = &calendar.EventAttendee{Email: a.Email}
		}
		item.Attendees = attendees
	}

	created, err := c.service.Events.Insert(calendarID, item).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	result := &CreatedEvent{
		ID:       created.Id,
		Summary:  created.Summary,
		HTMLLink: created.HtmlLink,
	}
	if created.Start != nil {
		result.Start = created.Start.DateTime
	}
	if created.End != nil {
		result.End = created.End.DateTime
	}

	return result, nil
}

// ListEventsInRange returns events in a time window from Google Calendar.
func (c *Client) ListEventsInRange(calendarID string, timeMin, timeMax time.Time) ([]EventSummary, error) {
	if c.service == nil {
		return nil, fmt.Errorf("calendar service not initialized")
	}
	if timeMax.Before(timeMin) {
		return nil, fmt.Errorf("invalid range: time_max is before time_min")
	}
	if calendarID == "" {
		calendarID = "primary"
	}

	var result []EventSummary
	pageToken := ""

	for {
		call := c.service.Events.List(calendarID).
			TimeMin(timeMin.Format(time.RFC3339)).
			TimeMax(timeMax.Format(time.RFC3339)).
			SingleEvents(true).
			ShowDeleted(false).
			OrderBy("startTime")
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		events, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list events in range: %w", err)
		}

		for _, item := range events.Items {
			if item == nil || item.Status == "cancelled" {
				continue
			}

			start, end, parseErr := parseEventTimes(item)
			if parseErr != nil {
				// Skip malformed events rather than failing the whole request.
				continue
			}

			result = append(result, EventSummary{
				ID:      item.Id,
				Summary: item.Summary,
				Start:   start,
				End:     end,
			})
		}

		if events.NextPageToken == "" {
			break
		}
		pageToken = events.NextPageToken
	}

	return result, nil
}

func parseEventTimes(item *calendar.Event) (time.Time, time.Time, error) {
	if item.Start == nil || item.End == nil {
		return time.Time{}, time.Time{}, fmt.Errorf("event is missing start or end")
	}

	// All-day events use Date instead of DateTime.
	if item.Start.Date != "" {
		start, err := time.ParseInLocation("2006-01-02", item.Start.Date, time.Local)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("failed to parse all-day start date: %w", err)
		}
		end, err := time.ParseInLocation("2006-01-02", item.End.Date, time.Local)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("failed to parse all-day end date: %w", err)
		}
		return start, end, nil
	}

	if item.Start.DateTime == "" || item.End.DateTime == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("event datetime is missing")
	}

	start, err := time.Parse(time.RFC3339, item.Start.DateTime)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("failed to parse start datetime: %w", err)
	}
	end, err := time.Parse(time.RFC3339, item.End.DateTime)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("failed to parse end datetime: %w", err)
	}

	return start, end, nil
}
