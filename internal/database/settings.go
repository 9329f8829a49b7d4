package database

import (
	"fmt"
	"time"
)

// Settings represents app settings - single row table
type Settings struct {
	GeminiModel string    `json:"gemini_model"`
	Temperature float64   `json:"temperature"`
	TimeZone    string    `json:"timezone"`
	NotifyEmail string    `json:"notify_email"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GetSettings retrieves the app settings
func (d *DB) GetSettings() (*Settings, error) {
	var settings Settings
	err := d.QueryRow(`
		SELECT gemini_model, temperature, timezone, notify_email, updated_at
		FROM settings WHERE id = 1
	`).Scan(
		&settings.GeminiModel,
		&settings.Temperature,
		&settings.TimeZone,
		&settings.NotifyEmail,
		&settings.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	return &settings, nil
}

// UpdateSettings persists the app settings
func (d *DB) UpdateSettings(settings *Settings) error {
	_, err := d.Exec(`
		UPDATE settings
		SET gemini_model = ?, temperature = ?, timezone = ?, notify_email = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = 1
	`, settings.GeminiModel, settings.Temperature, settings.TimeZone, settings.NotifyEmail)
	if err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}
	return nil
}
