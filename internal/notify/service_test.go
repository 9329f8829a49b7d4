package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contextclip/clipcal/internal/database"
	"github.com/contextclip/clipcal/internal/event"
)

type fakeNotifier struct {
	configured bool
	sendErr    error
	sent       []string
}

func (f *fakeNotifier) Send(_ context.Context, _ *event.PublishResult, recipient string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, recipient)
	return nil
}

func (f *fakeNotifier) Name() string       { return "fake" }
func (f *fakeNotifier) IsConfigured() bool { return f.configured }

func publishedResult() *event.PublishResult {
	return &event.PublishResult{
		EventID:   "evt-1",
		Summary:   "팀 미팅",
		StartTime: "2025-03-15T15:00:00+09:00",
		EndTime:   "2025-03-15T16:00:00+09:00",
	}
}

func TestDeliver_SendsToConfiguredRecipient(t *testing.T) {
	db := database.NewTestDB(t)
	settings, err := db.GetSettings()
	require.NoError(t, err)
	settings.NotifyEmail = "user@example.com"
	require.NoError(t, db.UpdateSettings(settings))

	notifier := &fakeNotifier{configured: true}
	s := NewService(db, notifier)

	s.deliver(publishedResult())

	assert.Equal(t, []string{"user@example.com"}, notifier.sent)
}

func TestDeliver_NoRecipientConfigured(t *testing.T) {
	db := database.NewTestDB(t)

	notifier := &fakeNotifier{configured: true}
	s := NewService(db, notifier)

	s.deliver(publishedResult())

	assert.Empty(t, notifier.sent)
}

func TestDeliver_NotifierNotConfigured(t *testing.T) {
	db := database.NewTestDB(t)
	settings, err := db.GetSettings()
	require.NoError(t, err)
	settings.NotifyEmail = "user@example.com"
	require.NoError(t, db.UpdateSettings(settings))

	notifier := &fakeNotifier{configured: false}
	s := NewService(db, notifier)

	s.deliver(publishedResult())

	assert.Empty(t, notifier.sent)
}

func TestDeliver_SendFailureIsSwallowed(t *testing.T) {
	db := database.NewTestDB(t)
	settings, err := db.GetSettings()
	require.NoError(t, err)
	settings.NotifyEmail = "user@example.com"
	require.NoError(t, db.UpdateSettings(settings))

	notifier := &fakeNotifier{configured: true, sendErr: errors.New("smtp down")}
	s := NewService(db, notifier)

	// Must not panic or propagate
	s.deliver(publishedResult())
	assert.Empty(t, notifier.sent)
}

func TestIsEmailAvailable(t *testing.T) {
	db := database.NewTestDB(t)

	assert.False(t, NewService(db, nil).IsEmailAvailable())
	assert.False(t, NewService(db, &fakeNotifier{configured: false}).IsEmailAvailable())
	assert.True(t, NewService(db, &fakeNotifier{configured: true}).IsEmailAvailable())
}

func TestNewResendNotifier_EmptyKeyReturnsNil(t *testing.T) {
	assert.Nil(t, NewResendNotifier("", "from@example.com", "http://localhost:8080"))
	assert.NotNil(t, NewResendNotifier("re_123", "from@example.com", "http://localhost:8080"))
}
