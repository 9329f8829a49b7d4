package notify

import (
	"context"

	"github.com/contextclip/clipcal/internal/event"
)

// Notifier delivers a publish notification to a specific recipient
type Notifier interface {
	// Send delivers a notification for a published event to the recipient
	Send(ctx context.Context, result *event.PublishResult, recipient string) error
	// Name returns the notifier type name (for logging)
	Name() string
	// IsConfigured returns true if the notifier has server-side config
	IsConfigured() bool
}
