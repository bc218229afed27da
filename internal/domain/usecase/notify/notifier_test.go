package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	errs "github.com/amirhossein-jamali/chess-escrow/internal/domain/error"
	coreport "github.com/amirhossein-jamali/chess-escrow/internal/domain/port/core"
	mockcore "github.com/amirhossein-jamali/chess-escrow/mocks/port/core"
)

func TestNotifier_Publish(t *testing.T) {
	ctx := context.Background()

	t.Run("Forwards to publisher", func(t *testing.T) {
		publisher := mockcore.NewMockEventPublisher(t)
		logger := mockcore.NewMockLogger(t)
		payload := map[string]any{"challenge_id": int64(1)}
		publisher.EXPECT().Publish(ctx, coreport.EventChallengeCreated, payload).Return(nil)

		NewNotifier(publisher, logger).Publish(ctx, coreport.EventChallengeCreated, payload)
	})

	t.Run("Publish failure is only logged", func(t *testing.T) {
		publisher := mockcore.NewMockEventPublisher(t)
		logger := mockcore.NewMockLogger(t)
		publisher.EXPECT().Publish(ctx, mock.Anything, mock.Anything).Return(errors.New("nats down"))
		logger.EXPECT().Warn("Failed to publish event", mock.Anything).Return()

		NewNotifier(publisher, logger).Publish(ctx, coreport.EventInvoiceSettled, nil)
	})

	t.Run("Nil publisher is a no-op", func(t *testing.T) {
		logger := mockcore.NewMockLogger(t)
		assert.NotPanics(t, func() {
			NewNotifier(nil, logger).Publish(ctx, coreport.EventInvoiceSettled, nil)
		})
	})
}

func TestNotifier_Gap(t *testing.T) {
	ctx := context.Background()
	publisher := mockcore.NewMockEventPublisher(t)
	logger := mockcore.NewMockLogger(t)

	gap := errs.NewPartialCommitGapError("withdrawal", "alice", 500, "payment_hash:ff", errors.New("timeout"))

	logger.EXPECT().Error(mock.Anything, mock.MatchedBy(func(fields map[string]any) bool {
		return fields["username"] == "alice" && fields["amount"] == int64(500) &&
			fields["external_reference"] == "payment_hash:ff"
	})).Return()
	publisher.EXPECT().Publish(ctx, coreport.EventLedgerGap, mock.Anything).Return(nil)

	NewNotifier(publisher, logger).Gap(ctx, gap)
}
