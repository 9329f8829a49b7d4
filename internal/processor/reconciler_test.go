package processor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contextclip/clipcal/internal/testutil"
)

const basicReply = `{
	"title": "팀 미팅",
	"description": "주간 팀 미팅입니다",
	"startDate": "2025-03-15T15:00:00",
	"endDate": "2025-03-15T16:00:00",
	"location": "회의실 A",
	"attendees": ["a@b.com", "홍길동"],
	"reminder": "15분 전"
}`

const detailedReply = `{
	"eventType": "meeting",
	"priority": "important",
	"confidence": 0.9,
	"participants": {"names": ["홍길동"], "emails": ["c@d.org"]},
	"location": {"type": "physical", "address": "", "room": "3층 대회의실", "platform": ""}
}`

func TestReconcile_CleanResponses(t *testing.T) {
	llm := &testutil.FakeLLM{BasicReply: basicReply, DetailedReply: detailedReply}
	r := NewReconciler(llm, "Asia/Seoul")

	ev, err := r.Reconcile(context.Background(), "내일 오후 3시 팀 미팅")

	require.NoError(t, err)
	assert.Equal(t, "팀 미팅", ev.Title)
	assert.Equal(t, "주간 팀 미팅입니다", ev.Description)

	seoul, _ := time.LoadLocation("Asia/Seoul")
	assert.Equal(t, time.Date(2025, 3, 15, 15, 0, 0, 0, seoul), ev.StartDate.In(seoul))
	assert.Equal(t, time.Date(2025, 3, 15, 16, 0, 0, 0, seoul), ev.EndDate.In(seoul))

	// Detailed analysis merged in
	assert.Equal(t, "meeting", ev.EventType)
	assert.Equal(t, "important", ev.Priority)
	assert.Equal(t, 0.9, ev.Confidence)
	assert.Equal(t, []any{"a@b.com", "c@d.org"}, ev.Attendees)
	assert.Equal(t, "3층 대회의실", ev.Location)
}

func TestReconcile_FencedResponse(t *testing.T) {
	llm := &testutil.FakeLLM{
		BasicReply:    "```json\n" + basicReply + "\n```",
		DetailedReply: detailedReply,
	}
	r := NewReconciler(llm, "Asia/Seoul")

	ev, err := r.Reconcile(context.Background(), "내일 오후 3시 팀 미팅")

	require.NoError(t, err)
	assert.Equal(t, "팀 미팅", ev.Title)
}

func TestReconcile_SentinelTitle(t *testing.T) {
	llm := &testutil.FakeLLM{
		BasicReply: `{"title": "새로운 일정", "description": "", "startDate": "", "endDate": ""}`,
	}
	r := NewReconciler(llm, "Asia/Seoul")

	_, err := r.Reconcile(context.Background(), "아무 내용 없는 텍스트")
	assert.ErrorIs(t, err, ErrExtractionFailed)
}

func TestReconcile_EmptyTitle(t *testing.T) {
	llm := &testutil.FakeLLM{
		BasicReply: `{"title": "", "startDate": "2025-03-15T15:00:00"}`,
	}
	r := NewReconciler(llm, "Asia/Seoul")

	_, err := r.Reconcile(context.Background(), "some text")
	assert.ErrorIs(t, err, ErrExtractionFailed)
}

func TestReconcile_SynthesizedFromHeuristics(t *testing.T) {
	llm := &testutil.FakeLLM{
		BasicReply:    "죄송하지만 그 요청은 처리할 수 없습니다.",
		DetailedReply: detailedReply,
	}
	r := NewReconciler(llm, "Asia/Seoul")
	r.now = func() time.Time {
		return time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	}

	sourceText := "팀미팅 내일 오후 3시"
	ev, err := r.Reconcile(context.Background(), sourceText)

	require.NoError(t, err)
	assert.Equal(t, "팀미팅", ev.Title)
	assert.Equal(t, sourceText, ev.Description)
	assert.Equal(t, time.Hour, ev.EndDate.Sub(ev.StartDate))
}

func TestReconcile_UnrecoverableText(t *testing.T) {
	llm := &testutil.FakeLLM{BasicReply: "no json here at all"}
	r := NewReconciler(llm, "Asia/Seoul")

	_, err := r.Reconcile(context.Background(), "???!!!")
	assert.ErrorIs(t, err, ErrExtractionFailed)
}

func TestReconcile_TransportError(t *testing.T) {
	llm := &testutil.FakeLLM{BasicErr: errors.New("connection refused")}
	r := NewReconciler(llm, "Asia/Seoul")

	_, err := r.Reconcile(context.Background(), "내일 오후 3시 팀 미팅")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrExtractionFailed)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestReconcile_DetailedPassTransportErrorDegrades(t *testing.T) {
	llm := &testutil.FakeLLM{
		BasicReply:  basicReply,
		DetailedErr: errors.New("quota exceeded"),
	}
	r := NewReconciler(llm, "Asia/Seoul")

	ev, err := r.Reconcile(context.Background(), "내일 오후 3시 팀 미팅")

	require.NoError(t, err)
	assert.Equal(t, "팀 미팅", ev.Title)
	// No enrichment at all: classification stays zero, raw attendees survive
	assert.Empty(t, ev.EventType)
	assert.Empty(t, ev.Priority)
	assert.Zero(t, ev.Confidence)
	assert.Equal(t, []any{"a@b.com", "홍길동"}, ev.Attendees)
	assert.Equal(t, "회의실 A", ev.Location)
}

func TestReconcile_DetailedPassUnparseableUsesDefaults(t *testing.T) {
	llm := &testutil.FakeLLM{
		BasicReply:    basicReply,
		DetailedReply: "not a json response",
	}
	r := NewReconciler(llm, "Asia/Seoul")

	ev, err := r.Reconcile(context.Background(), "내일 오후 3시 팀 미팅")

	require.NoError(t, err)
	assert.Equal(t, "meeting", ev.EventType)
	assert.Equal(t, "normal", ev.Priority)
	assert.Equal(t, 0.5, ev.Confidence)
	// Merge still runs: invalid attendee entries are dropped
	assert.Equal(t, []any{"a@b.com"}, ev.Attendees)
	assert.Equal(t, "회의실 A", ev.Location)
}

func TestReconcile_MissingEndDateGetsHour(t *testing.T) {
	llm := &testutil.FakeLLM{
		BasicReply:    `{"title": "점심 약속", "startDate": "2025-03-15T12:00:00"}`,
		DetailedReply: detailedReply,
	}
	r := NewReconciler(llm, "Asia/Seoul")

	ev, err := r.Reconcile(context.Background(), "토요일 점심 약속")

	require.NoError(t, err)
	assert.Equal(t, time.Hour, ev.EndDate.Sub(ev.StartDate))
}

func TestParseAnalysis_ZeroConfidenceDefaults(t *testing.T) {
	analysis := parseAnalysis(`{"eventType": "deadline", "priority": "urgent", "confidence": 0}`)

	assert.Equal(t, "deadline", analysis.EventType)
	assert.Equal(t, "urgent", analysis.Priority)
	assert.Equal(t, 0.5, analysis.Confidence)
}

func TestParseAnalysis_MissingFieldsDefault(t *testing.T) {
	analysis := parseAnalysis(`{"participants": {"emails": ["x@y.com"]}}`)

	assert.Equal(t, "meeting", analysis.EventType)
	assert.Equal(t, "normal", analysis.Priority)
	assert.Equal(t, 0.5, analysis.Confidence)
	assert.Equal(t, []any{"x@y.com"}, analysis.Participants.Emails)
}
