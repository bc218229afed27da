package notify

import (
	"context"

	errs "github.com/amirhossein-jamali/chess-escrow/internal/domain/error"
	coreport "github.com/amirhossein-jamali/chess-escrow/internal/domain/port/core"
)

// Notifier publishes domain events after a unit commits and reports partial commit gaps.
// Publish failures are logged and never returned.
type Notifier struct {
	publisher coreport.EventPublisher
	logger    coreport.Logger
}

// NewNotifier creates a notifier; a nil publisher disables events
func NewNotifier(publisher coreport.EventPublisher, logger coreport.Logger) *Notifier {
	return &Notifier{publisher: publisher, logger: logger}
}

// Publish sends an event on subject
func (n *Notifier) Publish(ctx context.Context, subject string, payload map[string]any) {
	if n.publisher == nil {
		return
	}
	if err := n.publisher.Publish(ctx, subject, payload); err != nil {
		n.logger.Warn("Failed to publish event", map[string]any{
			"subject": subject,
			"error":   err.Error(),
		})
	}
}

// Gap logs a partial commit gap with everything needed to reconcile it by hand
// and announces it on the ledger gap subject
func (n *Notifier) Gap(ctx context.Context, gap *errs.PartialCommitGapError) {
	fields := gap.LogFields()
	n.logger.Error("Partial commit gap: local and external state diverged", fields)
	n.Publish(ctx, coreport.EventLedgerGap, fields)
}
