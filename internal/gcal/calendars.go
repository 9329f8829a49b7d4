package gcal

import (
	"fmt"
)

// CalendarInfo represents a Google Calendar
type CalendarInfo struct {
	ID         string `json:"id"`
	Summary    string `json:"summary"`
	Primary    bool   `json:"primary"`
	AccessRole string `json:"access_role"`
}

// PrimaryCalendarID resolves the user's primary calendar to its concrete ID
func (c *Client) PrimaryCalendarID() (string, error) {
	if c.service == nil {
		return "", fmt.Errorf("not authenticated")
	}

	cal, err := c.service.Calendars.Get("primary").Do()
	if err != nil {
		return "", fmt.Errorf("failed to get primary calendar: %w", err)
	}

	return cal.Id, nil
}

// ListCalendars returns all calendars the user has access to
func (c *Client) ListCalendars() ([]CalendarInfo, error) {
	if c.service == nil {
		return nil, fmt.Errorf("not authenticated")
	}

	list, err := c.service.CalendarList.List().Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendars: %w", err)
	}

	var calendars []CalendarInfo
	for _, item := range list.Items {
		calendars = append(calendars, CalendarInfo{
			ID:         item.Id,
			Summary:    item.Summary,
			Primary:    item.Primary,
			AccessRole: item.AccessRole,
		})
	}

	return calendars, nil
}
