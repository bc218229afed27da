package events

import (
	"context"

	coreport "github.com/amirhossein-jamali/chess-escrow/internal/domain/port/core"
)

// NoopPublisher discards every event. It is used when publishing is disabled.
type NoopPublisher struct{}

var _ coreport.EventPublisher = NoopPublisher{}

// NewNoopPublisher creates a publisher that drops events
func NewNoopPublisher() NoopPublisher {
	return NoopPublisher{}
}

// Publish does nothing
func (NoopPublisher) Publish(context.Context, string, map[string]any) error { return nil }

// Close does nothing
func (NoopPublisher) Close() error { return nil }
