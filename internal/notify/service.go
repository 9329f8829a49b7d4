package notify

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/contextclip/clipcal/internal/database"
	"github.com/contextclip/clipcal/internal/event"
)

const sendTimeout = 15 * time.Second

// Service delivers publish notifications according to stored settings.
// Delivery is out of band; a publish never waits on it.
type Service struct {
	db            *database.DB
	emailNotifier Notifier
}

// NewService creates a notification service
func NewService(db *database.DB, emailNotifier Notifier) *Service {
	return &Service{
		db:            db,
		emailNotifier: emailNotifier,
	}
}

// NotifyEventPublished sends notifications for a published event in the
// background. Errors are logged, never returned.
func (s *Service) NotifyEventPublished(result *event.PublishResult) {
	go s.deliver(result)
}

func (s *Service) deliver(result *event.PublishResult) {
	settings, err := s.db.GetSettings()
	if err != nil {
		log.Warn().Err(err).Msg("notification skipped: failed to load settings")
		return
	}

	if settings.NotifyEmail == "" {
		return
	}
	if s.emailNotifier == nil || !s.emailNotifier.IsConfigured() {
		log.Debug().Msg("notification email set but no notifier configured")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	if err := s.emailNotifier.Send(ctx, result, settings.NotifyEmail); err != nil {
		log.Warn().Err(err).Str("notifier", s.emailNotifier.Name()).Msg("publish notification failed")
		return
	}
	log.Info().Str("recipient", settings.NotifyEmail).Str("event_id", result.EventID).Msg("publish notification sent")
}

// IsEmailAvailable returns true if email notifications can be used
func (s *Service) IsEmailAvailable() bool {
	return s.emailNotifier != nil && s.emailNotifier.IsConfigured()
}
