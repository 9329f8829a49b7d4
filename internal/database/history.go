package database

import (
	"fmt"
	"time"

	"github.com/contextclip/clipcal/internal/event"
)

// PublishRecord is a persisted publish outcome
type PublishRecord struct {
	ID          int64     `json:"id"`
	EventID     string    `json:"event_id"`
	Summary     string    `json:"summary"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	HTMLLink    string    `json:"html_link"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	IsDuplicate bool      `json:"is_duplicate"`
	SourceText  string    `json:"source_text"`
	CreatedAt   time.Time `json:"created_at"`
}

// RecordPublish stores a publish outcome
func (d *DB) RecordPublish(result *event.PublishResult, sourceText string) error {
	_, err := d.Exec(`
		INSERT INTO publish_history (event_id, summary, start_time, end_time, html_link, location, description, is_duplicate, source_text)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, result.EventID, result.Summary, result.StartTime, result.EndTime,
		result.HTMLLink, result.Location, result.Description, result.IsDuplicate, sourceText)
	if err != nil {
		return fmt.Errorf("failed to record publish: %w", err)
	}
	return nil
}

// ListHistory returns the most recent publish records, newest first
func (d *DB) ListHistory(limit int) ([]PublishRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := d.Query(`
		SELECT id, event_id, summary, start_time, end_time, html_link, location, description, is_duplicate, source_text, created_at
		FROM publish_history
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list publish history: %w", err)
	}
	defer rows.Close()

	var records []PublishRecord
	for rows.Next() {
		var r PublishRecord
		if err := rows.Scan(
			&r.ID, &r.EventID, &r.Summary, &r.StartTime, &r.EndTime,
			&r.HTMLLink, &r.Location, &r.Description, &r.IsDuplicate, &r.SourceText, &r.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan publish record: %w", err)
		}
		records = append(records, r)
	}

	return records, rows.Err()
}
