package repository

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domainErr "github.com/amirhossein-jamali/chess-escrow/internal/domain/error"
)

// EntityType represents the type of entity for errors mapping
type EntityType string

const (
	// EntityTypeChallenge represents the challenge entity
	EntityTypeChallenge EntityType = "challenge"
	// EntityTypeTransaction represents the transaction entity
	EntityTypeTransaction EntityType = "transaction"
	// EntityTypeBalance represents the balance entity
	EntityTypeBalance EntityType = "balance"
)

// PostgreSQL error codes the mapper distinguishes
const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeLockNotAvailable     = "55P03"
	codeUniqueViolation      = "23505"
	codeCheckViolation       = "23514"
	codeForeignKeyViolation  = "23503"
	codeNotNullViolation     = "23502"
	codeQueryCanceled        = "57014"
	codeNumericOutOfRange    = "22003"
)

// ErrorMapper maps database errors to domain errors
type ErrorMapper struct{}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{}
}

// MapError maps a database error to a domain error. Domain errors pass through
// unchanged. The original error stays in the chain for logging.
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}
	if isDomainError(err) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeSerializationFailure, codeDeadlockDetected, codeLockNotAvailable:
			return fmt.Errorf("%w: %s: %s", domainErr.ErrUserLocked, operation, pgErr.Message)
		case codeUniqueViolation:
			return fmt.Errorf("%w: %s", domainErr.ErrDuplicateTransaction, pgErr.ConstraintName)
		case codeCheckViolation, codeForeignKeyViolation, codeNotNullViolation:
			return fmt.Errorf("%w: %s", domainErr.ErrConstraintViolation, pgErr.ConstraintName)
		case codeNumericOutOfRange:
			return fmt.Errorf("%w: %s", domainErr.ErrAmountOverflow, operation)
		case codeQueryCanceled:
			return fmt.Errorf("%w: %s operation timed out", domainErr.ErrDatabaseConnection, operation)
		}
		if len(pgErr.Code) >= 2 && pgErr.Code[:2] == "08" {
			return fmt.Errorf("%w: %s", domainErr.ErrDatabaseConnection, pgErr.Message)
		}
		return fmt.Errorf("%w: %s: %v", domainErr.ErrInternalServer, operation, err)
	}

	var netErr net.Error
	var connErr *pgconn.ConnectError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %s operation timed out", domainErr.ErrDatabaseConnection, operation)
	case errors.Is(err, context.Canceled):
		return err
	case errors.As(err, &connErr), errors.As(err, &netErr), pgconn.SafeToRetry(err):
		return fmt.Errorf("%w: %s: %v", domainErr.ErrDatabaseConnection, operation, err)
	}

	return fmt.Errorf("%w: %s: %v", domainErr.ErrInternalServer, operation, err)
}

// MapEntityNotFoundError maps database errors to specific entity not found errors
func (m *ErrorMapper) MapEntityNotFoundError(err error, entityType EntityType) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		switch entityType {
		case EntityTypeChallenge:
			return domainErr.ErrChallengeNotFound
		case EntityTypeTransaction:
			return domainErr.ErrTransactionNotFound
		default:
			return domainErr.ErrNotFound
		}
	}

	return m.MapError(err, string(entityType))
}

// IsRetryable reports whether a unit of work failing with err may be run again
func IsRetryable(err error) bool {
	if errors.Is(err, domainErr.ErrUserLocked) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeSerializationFailure, codeDeadlockDetected, codeLockNotAvailable:
			return true
		}
	}
	return false
}

func isDomainError(err error) bool {
	for _, target := range []error{
		domainErr.ErrValidation,
		domainErr.ErrInsufficientFunds,
		domainErr.ErrNotFound,
		domainErr.ErrInvalidState,
		domainErr.ErrStateConflict,
		domainErr.ErrDuplicateTransaction,
		domainErr.ErrConstraintViolation,
		domainErr.ErrUserLocked,
		domainErr.ErrAmountOverflow,
		domainErr.ErrDatabaseConnection,
		domainErr.ErrInternalServer,
		domainErr.ErrUnauthorized,
		domainErr.ErrExternalService,
		domainErr.ErrPartialCommitGap,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
