package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/contextclip/clipcal/internal/attendees"
	"github.com/contextclip/clipcal/internal/event"
	"github.com/contextclip/clipcal/internal/extractor"
	"github.com/contextclip/clipcal/internal/heuristics"
	"github.com/contextclip/clipcal/internal/timeutil"
)

// sentinelTitle is the placeholder the model echoes back from the prompt's
// example when it found nothing worth extracting.
const sentinelTitle = "새로운 일정"

const (
	defaultEventType  = "meeting"
	defaultPriority   = "normal"
	defaultConfidence = 0.5
)

// LLMClient produces raw model responses for the two extraction passes.
type LLMClient interface {
	ExtractEvent(ctx context.Context, text string) (string, error)
	AnalyzeEvent(ctx context.Context, text string) (string, error)
}

// Reconciler turns source text into a validated event candidate: a basic
// extraction pass that must succeed, and a detailed analysis pass that
// enriches the result when it can.
type Reconciler struct {
	llm      LLMClient
	timeZone string
	now      func() time.Time
}

// NewReconciler creates a reconciler. timeZone is an IANA name; empty falls
// back to Asia/Seoul.
func NewReconciler(llm LLMClient, timeZone string) *Reconciler {
	return &Reconciler{
		llm:      llm,
		timeZone: timeZone,
		now:      time.Now,
	}
}

// Reconcile runs both extraction passes over sourceText and returns the
// merged event candidate. A failure in the detailed pass degrades silently
// to the basic extraction.
func (r *Reconciler) Reconcile(ctx context.Context, sourceText string) (*event.Extracted, error) {
	raw, err := r.llm.ExtractEvent(ctx, sourceText)
	if err != nil {
		return nil, fmt.Errorf("event extraction failed: %w", err)
	}

	ev, err := r.parseBasic(raw, sourceText)
	if err != nil {
		return nil, err
	}

	if ev.Title == "" || ev.Title == sentinelTitle || strings.EqualFold(ev.Title, "new event") {
		return nil, ErrExtractionFailed
	}

	r.enrich(ctx, sourceText, ev)
	return ev, nil
}

// parseBasic recovers the basic extraction object from the raw response. The
// cascade goes: strict parse, repair strategies, cleaned re-parse, and
// finally a synthesized event built from title heuristics over the source
// text itself.
func (r *Reconciler) parseBasic(raw, sourceText string) (*event.Extracted, error) {
	var direct map[string]any
	if err := json.Unmarshal([]byte(raw), &direct); err == nil {
		return r.fromFields(direct), nil
	}

	if obj, ok := extractor.ExtractObject(raw); ok {
		return r.fromFields(obj), nil
	}

	if cleaned := extractor.CleanResponse(raw); cleaned != raw {
		var parsed map[string]any
		if err := json.Unmarshal([]byte(cleaned), &parsed); err == nil {
			return r.fromFields(parsed), nil
		}
	}

	title, ok := heuristics.ExtractTitle(sourceText)
	if !ok {
		return nil, ErrExtractionFailed
	}

	log.Warn().Str("title", title).Msg("model response unparseable, synthesized event from source text")
	now := r.now().In(timeutil.ResolveLocation(r.timeZone))
	return &event.Extracted{
		Title:       title,
		Description: sourceText,
		StartDate:   now,
		EndDate:     now.Add(time.Hour),
	}, nil
}

// fromFields converts the parsed response object into an event candidate,
// normalizing times as it goes.
func (r *Reconciler) fromFields(fields map[string]any) *event.Extracted {
	ev := &event.Extracted{
		Title:       stringField(fields, "title"),
		Description: stringField(fields, "description"),
		Location:    stringField(fields, "location"),
		Reminder:    stringField(fields, "reminder"),
	}

	if raw, ok := fields["attendees"].([]any); ok {
		ev.Attendees = raw
	}

	now := r.now().In(timeutil.ResolveLocation(r.timeZone))

	start, err := timeutil.ParseDateTime(stringField(fields, "startDate"), r.timeZone)
	if err != nil {
		start = now
	}
	ev.StartDate = start

	end, err := timeutil.ParseDateTime(stringField(fields, "endDate"), r.timeZone)
	if err != nil {
		end = time.Time{}
	}
	ev.EndDate = timeutil.EnsureEnd(start, end)

	return ev
}

// enrich runs the detailed analysis pass and merges its results into ev.
// A transport failure leaves the basic extraction untouched; an unparseable
// response merges with defaults.
func (r *Reconciler) enrich(ctx context.Context, sourceText string, ev *event.Extracted) {
	raw, err := r.llm.AnalyzeEvent(ctx, sourceText)
	if err != nil {
		log.Warn().Err(err).Msg("detailed analysis failed, using basic extraction only")
		return
	}

	analysis := parseAnalysis(raw)

	ev.EventType = analysis.EventType
	ev.Priority = analysis.Priority
	ev.Confidence = analysis.Confidence

	merged := attendees.Merge(ev.Attendees, analysis.Participants.Emails)
	ev.Attendees = make([]any, len(merged))
	for i, email := range merged {
		ev.Attendees[i] = email
	}

	if loc := analysis.Location.Resolve(); loc != "" {
		ev.Location = loc
	}
}

// analysisWire is the detailed analysis response shape.
type analysisWire struct {
	EventType    string  `json:"eventType"`
	Priority     string  `json:"priority"`
	Confidence   float64 `json:"confidence"`
	Participants struct {
		Names  []string `json:"names"`
		Emails []any    `json:"emails"`
	} `json:"participants"`
	Location struct {
		Type     string `json:"type"`
		Address  string `json:"address"`
		Room     string `json:"room"`
		Platform string `json:"platform"`
	} `json:"location"`
}

// parseAnalysis decodes the detailed analysis response, falling back to the
// defaults when the response cannot be recovered. Missing fields also take
// the defaults.
func parseAnalysis(raw string) *event.DetailedAnalysis {
	var wire analysisWire
	if err := json.Unmarshal([]byte(raw), &wire); err != nil {
		obj, ok := extractor.ExtractObject(raw)
		if !ok {
			log.Warn().Msg("detailed analysis response unparseable, using defaults")
			return &event.DetailedAnalysis{
				EventType:  defaultEventType,
				Priority:   defaultPriority,
				Confidence: defaultConfidence,
			}
		}
		remarshaled, err := json.Marshal(obj)
		if err != nil || json.Unmarshal(remarshaled, &wire) != nil {
			return &event.DetailedAnalysis{
				EventType:  defaultEventType,
				Priority:   defaultPriority,
				Confidence: defaultConfidence,
			}
		}
	}

	analysis := &event.DetailedAnalysis{
		EventType:  wire.EventType,
		Priority:   wire.Priority,
		Confidence: wire.Confidence,
		Participants: event.Participants{
			Names:  wire.Participants.Names,
			Emails: wire.Participants.Emails,
		},
		Location: event.AnalyzedLocation{
			Type:     wire.Location.Type,
			Address:  wire.Location.Address,
			Room:     wire.Location.Room,
			Platform: wire.Location.Platform,
		},
	}
	if analysis.EventType == "" {
		analysis.EventType = defaultEventType
	}
	if analysis.Priority == "" {
		analysis.Priority = defaultPriority
	}
	if analysis.Confidence == 0 {
		analysis.Confidence = defaultConfidence
	}
	return analysis
}

func stringField(fields map[string]any, key string) string {
	if s, ok := fields[key].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}
