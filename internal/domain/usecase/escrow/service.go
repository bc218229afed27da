package escrow

import (
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/port/core"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/port/external"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/usecase/notify"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/usecase/sequencer"
)

// DefaultListLimit caps challenge listings
const DefaultListLimit = 100

// Config holds escrow settings
type Config struct {
	ListLimit int
}

// Service is the escrow coordinator. It owns the challenge lifecycle up to ACCEPTED;
// settlement belongs to the reconciliation worker.
type Service struct {
	uow          persistence.UnitOfWork
	games        external.GameProvider
	reconciler   usecase.ReconciliationUseCase
	sequencer    *sequencer.Sequencer
	notifier     *notify.Notifier
	validator    *ChallengeValidator
	idempotency  *IdempotencyHandler
	timeProvider core.TimeProvider
	logger       core.Logger
	listLimit    int
}

// NewService creates a new escrow service
func NewService(
	uow persistence.UnitOfWork,
	games external.GameProvider,
	reconciler usecase.ReconciliationUseCase,
	seq *sequencer.Sequencer,
	notifier *notify.Notifier,
	timeProvider core.TimeProvider,
	logger core.Logger,
	cfg Config,
) *Service {
	if cfg.ListLimit <= 0 {
		cfg.ListLimit = DefaultListLimit
	}
	return &Service{
		uow:          uow,
		games:        games,
		reconciler:   reconciler,
		sequencer:    seq,
		notifier:     notifier,
		validator:    NewChallengeValidator(),
		idempotency:  NewIdempotencyHandler(),
		timeProvider: timeProvider,
		logger:       logger,
		listLimit:    cfg.ListLimit,
	}
}

var _ usecase.EscrowUseCase = (*Service)(nil)
