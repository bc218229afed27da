package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go"

	coreport "github.com/amirhossein-jamali/chess-escrow/internal/domain/port/core"
)

// Connection defaults
const (
	DefaultReconnectWait = 2 * time.Second
	DefaultMaxReconnects = 10
	clientName           = "chess-escrow"
)

// Envelope is the JSON body of every published event
type Envelope struct {
	Subject    string         `json:"subject"`
	OccurredAt time.Time      `json:"occurredAt"`
	RequestID  string         `json:"requestId,omitempty"`
	Payload    map[string]any `json:"payload"`
}

// NATSPublisher publishes domain events to core NATS subjects
type NATSPublisher struct {
	nc           *nats.Conn
	prefix       string
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

var _ coreport.EventPublisher = (*NATSPublisher)(nil)

// NewNATSPublisher connects to url. Subjects are published as prefix.subject.
func NewNATSPublisher(url, prefix string, logger coreport.Logger, timeProvider coreport.TimeProvider) (*NATSPublisher, error) {
	opts := []nats.Option{
		nats.Name(clientName),
		nats.MaxReconnects(DefaultMaxReconnects),
		nats.ReconnectWait(DefaultReconnectWait),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Error("NATS disconnected with error", map[string]any{"error": err.Error()})
				return
			}
			logger.Warn("NATS disconnected", nil)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", map[string]any{"url": nc.ConnectedUrl()})
		}),
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	logger.Info("Connected to NATS", map[string]any{"url": url, "prefix": prefix})
	return &NATSPublisher{
		nc:           nc,
		prefix:       strings.Trim(prefix, "."),
		logger:       logger,
		timeProvider: timeProvider,
	}, nil
}

// Publish sends one event. Delivery is fire-and-forget.
func (p *NATSPublisher) Publish(ctx context.Context, subject string, payload map[string]any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := Encode(subject, payload, p.timeProvider.Now(), coreport.RequestIDFrom(ctx))
	if err != nil {
		return err
	}

	fullSubject := QualifiedSubject(p.prefix, subject)
	if err := p.nc.Publish(fullSubject, data); err != nil {
		return fmt.Errorf("failed to publish %s: %w", fullSubject, err)
	}

	p.logger.Debug("Event published", map[string]any{"subject": fullSubject})
	return nil
}

// Close flushes pending messages and closes the connection
func (p *NATSPublisher) Close() error {
	if p.nc == nil || p.nc.IsClosed() {
		return nil
	}
	if err := p.nc.Drain(); err != nil {
		p.nc.Close()
		return fmt.Errorf("failed to drain NATS connection: %w", err)
	}
	return nil
}

// QualifiedSubject joins prefix and subject with a dot
func QualifiedSubject(prefix, subject string) string {
	prefix = strings.Trim(prefix, ".")
	if prefix == "" {
		return subject
	}
	return prefix + "." + subject
}

// Encode builds the JSON envelope for an event
func Encode(subject string, payload map[string]any, occurredAt time.Time, requestID string) ([]byte, error) {
	if payload == nil {
		payload = map[string]any{}
	}
	data, err := json.Marshal(Envelope{
		Subject:    subject,
		OccurredAt: occurredAt.UTC(),
		RequestID:  requestID,
		Payload:    payload,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode event %s: %w", subject, err)
	}
	return data, nil
}
