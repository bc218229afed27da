package bootstrap

import (
	"context"
	"errors"
	"fmt"

	coreport "github.com/amirhossein-jamali/chess-escrow/internal/domain/port/core"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/usecase/escrow"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/usecase/notify"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/usecase/reconciliation"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/usecase/sequencer"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/usecase/withdrawal"
	"github.com/amirhossein-jamali/chess-escrow/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/chess-escrow/internal/infrastructure/adapter/events"
	"github.com/amirhossein-jamali/chess-escrow/internal/infrastructure/adapter/lichess"
	"github.com/amirhossein-jamali/chess-escrow/internal/infrastructure/adapter/lnd"
	"github.com/amirhossein-jamali/chess-escrow/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/chess-escrow/internal/infrastructure/adapter/memory"
	"github.com/amirhossein-jamali/chess-escrow/internal/infrastructure/adapter/secret"
	timeadapter "github.com/amirhossein-jamali/chess-escrow/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/chess-escrow/internal/infrastructure/config"
)

// App holds the wired services shared by the API server and the reconcile command
type App struct {
	Config       *config.Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider

	Accounts       *lichess.AccountClient
	Escrow         *escrow.Service
	Ledger         *ledger.Service
	Withdrawals    *withdrawal.Service
	Reconciliation *reconciliation.Worker

	closers []func() error
}

// NewLogger builds the application logger from configuration
func NewLogger(cfg config.LoggerConfig) coreport.Logger {
	return logger.NewZapLogger(logger.Options{
		Level:      cfg.Level,
		Format:     cfg.Format,
		Output:     cfg.Output,
		CallerInfo: cfg.CallerInfo,
	})
}

// New connects the store, the external adapters and the event publisher, and
// wires the coordinators on top of them
func New(ctx context.Context, cfg *config.Config, log coreport.Logger) (*App, error) {
	app := &App{
		Config:       cfg,
		Logger:       log,
		TimeProvider: timeadapter.NewRealTimeProvider(),
	}

	uow, err := app.openStore(ctx)
	if err != nil {
		return nil, err
	}

	publisher, err := app.openPublisher()
	if err != nil {
		_ = app.Close()
		return nil, err
	}

	payments := lnd.NewClient(lnd.Config{
		BaseURL:            cfg.Lightning.BaseURL,
		Macaroon:           cfg.Lightning.Macaroon,
		InsecureSkipVerify: cfg.Lightning.InsecureSkipVerify,
		RequestTimeout:     cfg.Lightning.RequestTimeout,
		InvoiceExpiry:      cfg.Lightning.InvoiceExpiry,
		SendTimeout:        cfg.Lightning.SendTimeout,
		MaxParts:           cfg.Lightning.MaxParts,
		FeeLimitMsat:       cfg.Lightning.FeeLimitMsat,
		MaxRetries:         cfg.Lightning.MaxRetries,
	}, log)

	lichessConfig := lichess.Config{
		BaseURL:        cfg.Lichess.BaseURL,
		RequestTimeout: cfg.Lichess.RequestTimeout,
		MaxRetries:     cfg.Lichess.MaxRetries,
		Rated:          cfg.Lichess.Rated,
		AuthCacheSize:  cfg.Lichess.AuthCacheSize,
		AuthCacheTTL:   cfg.Lichess.AuthCacheTTL,
	}
	games := lichess.NewGameClient(lichessConfig, log)
	app.Accounts = lichess.NewAccountClient(lichessConfig, log)

	notifier := notify.NewNotifier(publisher, log)
	seq := sequencer.NewSequencer(log, cfg.Escrow.QueueCapacity)
	app.closers = append(app.closers, func() error {
		seq.Shutdown()
		return nil
	})

	app.Reconciliation = reconciliation.NewWorker(uow, payments, games, notifier, app.TimeProvider, log,
		reconciliation.Config{
			AdminUsername:   cfg.Escrow.AdminUsername,
			WithdrawalGrace: cfg.Reconciliation.WithdrawalGrace,
		})
	app.Ledger = ledger.NewService(uow, payments, secret.NewRandomGenerator(), app.Reconciliation, seq,
		app.TimeProvider, log, ledger.Config{
			MemoTemplate: cfg.Escrow.InvoiceMemo,
			ListLimit:    cfg.Escrow.ListLimit,
		})
	app.Escrow = escrow.NewService(uow, games, app.Reconciliation, seq, notifier, app.TimeProvider, log,
		escrow.Config{ListLimit: cfg.Escrow.ListLimit})
	app.Withdrawals = withdrawal.NewService(uow, payments, seq, notifier, app.TimeProvider, log)

	return app, nil
}

func (a *App) openStore(ctx context.Context) (persistence.UnitOfWork, error) {
	if a.Config.Database.Driver == "memory" {
		a.Logger.Warn("Using the in-memory store; balances are lost on restart", nil)
		return memory.NewStore(a.Logger, a.TimeProvider), nil
	}

	manager := database.NewManager(database.FromAppConfig(a.Config.Database, a.Config.Logger.Level), a.Logger, a.TimeProvider)
	if _, err := manager.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	a.closers = append(a.closers, manager.Close)
	return manager.CreateUnitOfWork(), nil
}

func (a *App) openPublisher() (coreport.EventPublisher, error) {
	if !a.Config.Events.Enabled {
		return events.NewNoopPublisher(), nil
	}

	publisher, err := events.NewNATSPublisher(a.Config.Events.NatsURL, a.Config.Events.SubjectPrefix, a.Logger, a.TimeProvider)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, publisher.Close)
	return publisher, nil
}

// Close releases connections in reverse order of opening
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	_ = a.Logger.Flush()
	return errors.Join(errs...)
}
