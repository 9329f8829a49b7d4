package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSettings_Defaults(t *testing.T) {
	db := NewTestDB(t)

	settings, err := db.GetSettings()
	require.NoError(t, err)

	assert.Equal(t, "gemini-2.0-flash", settings.GeminiModel)
	assert.Equal(t, 0.3, settings.Temperature)
	assert.Equal(t, "Asia/Seoul", settings.TimeZone)
	assert.Empty(t, settings.NotifyEmail)
}

func TestUpdateSettings(t *testing.T) {
	db := NewTestDB(t)

	require.NoError(t, db.UpdateSettings(&Settings{
		GeminiModel: "gemini-1.5-pro",
		Temperature: 0.7,
		TimeZone:    "America/New_York",
		NotifyEmail: "user@example.com",
	}))

	settings, err := db.GetSettings()
	require.NoError(t, err)
	assert.Equal(t, "gemini-1.5-pro", settings.GeminiModel)
	assert.Equal(t, 0.7, settings.Temperature)
	assert.Equal(t, "America/New_York", settings.TimeZone)
	assert.Equal(t, "user@example.com", settings.NotifyEmail)
}
