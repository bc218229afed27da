package core

import "context"

// Event subjects published after a ledger unit commits
const (
	EventChallengeCreated   = "challenge.created"
	EventChallengeAccepted  = "challenge.accepted"
	EventChallengeCompleted = "challenge.completed"
	EventInvoiceSettled     = "invoice.settled"
	EventWithdrawalSettled  = "withdrawal.settled"
	EventLedgerGap          = "ledger.gap"
)

// EventPublisher delivers domain events to interested consumers.
// Publishing is best effort: callers log failures and never roll back on them.
type EventPublisher interface {
	Publish(ctx context.Context, subject string, payload map[string]any) error
	Close() error
}
