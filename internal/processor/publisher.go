package processor

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/api/googleapi"

	"github.com/contextclip/clipcal/internal/event"
	"github.com/contextclip/clipcal/internal/gcal"
)

// CalendarAPI is the slice of the Google Calendar client the publisher uses.
type CalendarAPI interface {
	IsAuthenticated() bool
	PrimaryCalendarID() (string, error)
	ListEventsInRange(calendarID string, timeMin, timeMax time.Time) ([]gcal.EventSummary, error)
	CreateEvent(calendarID string, payload *event.Payload) (*gcal.CreatedEvent, error)
}

// HistoryRecorder persists publish outcomes. Persistence failures never fail
// the publish itself.
type HistoryRecorder interface {
	RecordPublish(result *event.PublishResult, sourceText string) error
}

// Notifier delivers publish notifications out of band.
type Notifier interface {
	NotifyEventPublished(result *event.PublishResult)
}

// Publisher drives the full pipeline: reconcile the source text into an
// event, format it, check for duplicates, and write it to the calendar.
type Publisher struct {
	reconciler *Reconciler
	calendar   CalendarAPI
	history    HistoryRecorder
	notify     Notifier
	timeZone   string
}

// NewPublisher creates a publisher. history and notify may be nil.
func NewPublisher(llm LLMClient, calendar CalendarAPI, history HistoryRecorder, notify Notifier, timeZone string) *Publisher {
	return &Publisher{
		reconciler: NewReconciler(llm, timeZone),
		calendar:   calendar,
		history:    history,
		notify:     notify,
		timeZone:   timeZone,
	}
}

// Publish turns sourceText into a calendar event. A duplicate nearby does
// not block the write; the result carries the IsDuplicate flag instead.
func (p *Publisher) Publish(ctx context.Context, sourceText string) (*event.PublishResult, error) {
	if strings.TrimSpace(sourceText) == "" {
		return nil, ErrExtractionFailed
	}

	ev, err := p.reconciler.Reconcile(ctx, sourceText)
	if err != nil {
		return nil, err
	}

	if !p.calendar.IsAuthenticated() {
		return nil, &CalendarWriteError{StatusCode: http.StatusUnauthorized, Message: "google calendar is not connected"}
	}

	calendarID, err := p.calendar.PrimaryCalendarID()
	if err != nil {
		return nil, asWriteError(err)
	}

	payload := event.FormatPayload(ev, p.timeZone)
	isDuplicate := p.checkDuplicate(calendarID, payload)

	created, err := p.calendar.CreateEvent(calendarID, payload)
	if err != nil {
		return nil, asWriteError(err)
	}

	result := &event.PublishResult{
		EventID:     created.ID,
		Summary:     created.Summary,
		StartTime:   created.Start,
		EndTime:     created.End,
		HTMLLink:    created.HTMLLink,
		IsDuplicate: isDuplicate,
		Location:    payload.Location,
		Description: payload.Description,
	}

	if p.history != nil {
		if err := p.history.RecordPublish(result, sourceText); err != nil {
			log.Warn().Err(err).Msg("failed to record publish history")
		}
	}
	if p.notify != nil {
		p.notify.NotifyEventPublished(result)
	}

	log.Info().
		Str("event_id", result.EventID).
		Str("summary", result.Summary).
		Bool("is_duplicate", result.IsDuplicate).
		Msg("event published to calendar")

	return result, nil
}

// asWriteError converts a calendar failure into a CalendarWriteError,
// surfacing the upstream HTTP status when the Google API reported one.
func asWriteError(err error) error {
	var gErr *googleapi.Error
	if errors.As(err, &gErr) {
		return &CalendarWriteError{StatusCode: gErr.Code, Message: gErr.Message}
	}
	return &CalendarWriteError{Message: err.Error()}
}
