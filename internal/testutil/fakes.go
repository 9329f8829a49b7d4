package testutil

import (
	"context"
	"time"

	"github.com/contextclip/clipcal/internal/event"
	"github.com/contextclip/clipcal/internal/gcal"
)

// FakeLLM is a canned-response LLM client for pipeline tests.
type FakeLLM struct {
	BasicReply    string
	BasicErr      error
	DetailedReply string
	DetailedErr   error

	BasicCalls    int
	DetailedCalls int
	LastText      string
}

func (f *FakeLLM) ExtractEvent(_ context.Context, text string) (string, error) {
	f.BasicCalls++
	f.LastText = text
	if f.BasicErr != nil {
		return "", f.BasicErr
	}
	return f.BasicReply, nil
}

func (f *FakeLLM) AnalyzeEvent(_ context.Context, text string) (string, error) {
	f.DetailedCalls++
	if f.DetailedErr != nil {
		return "", f.DetailedErr
	}
	return f.DetailedReply, nil
}

// FakeCalendar is an in-memory stand-in for the Google Calendar client.
type FakeCalendar struct {
	Authenticated bool
	CalendarID    string
	PrimaryErr    error

	Existing []gcal.EventSummary
	ListErr  error

	Created   *gcal.CreatedEvent
	CreateErr error

	ListCalls       int
	CreatedPayloads []*event.Payload
}

func (f *FakeCalendar) IsAuthenticated() bool {
	return f.Authenticated
}

func (f *FakeCalendar) PrimaryCalendarID() (string, error) {
	if f.PrimaryErr != nil {
		return "", f.PrimaryErr
	}
	if f.CalendarID == "" {
		return "primary", nil
	}
	return f.CalendarID, nil
}

func (f *FakeCalendar) ListEventsInRange(_ string, _, _ time.Time) ([]gcal.EventSummary, error) {
	f.ListCalls++
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	return f.Existing, nil
}

func (f *FakeCalendar) CreateEvent(_ string, payload *event.Payload) (*gcal.CreatedEvent, error) {
	f.CreatedPayloads = append(f.CreatedPayloads, payload)
	if f.CreateErr != nil {
		return nil, f.CreateErr
	}
	if f.Created != nil {
		return f.Created, nil
	}
	return &gcal.CreatedEvent{
		ID:       "evt-1",
		Summary:  payload.Summary,
		Start:    payload.Start.DateTime,
		End:      payload.End.DateTime,
		HTMLLink: "https://calendar.google.com/calendar/event?eid=evt-1",
	}, nil
}

// FakeHistory records publish results in memory.
type FakeHistory struct {
	Records []RecordedPublish
	Err     error
}

// RecordedPublish pairs a publish result with its source text.
type RecordedPublish struct {
	Result     *event.PublishResult
	SourceText string
}

func (f *FakeHistory) RecordPublish(result *event.PublishResult, sourceText string) error {
	if f.Err != nil {
		return f.Err
	}
	f.Records = append(f.Records, RecordedPublish{Result: result, SourceText: sourceText})
	return nil
}
