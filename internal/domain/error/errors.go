package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInsufficientFunds    = 4001
	CodeValidation           = 4002
	CodeInvalidUsername      = 4003
	CodeDuplicateTransaction = 4004
	CodeConstraintViolation  = 4005
	CodeAmountOverflow       = 4006
	CodeUnauthenticated      = 4010
	CodeUnauthorized         = 4030
	CodeNotFound             = 4040
	CodeChallengeNotFound    = 4041
	CodeTransactionNotFound  = 4042
	CodeInvalidState         = 4090
	CodeStateConflict        = 4091
	CodeUserLocked           = 4230

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeExternalService    = 5020
	CodePartialCommitGap   = 5021
	CodeDatabaseConnection = 5030
)

// Base error types
var (
	// ErrInsufficientFunds is returned when a balance cannot cover a stake or payment
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrValidation is returned for malformed input, rejected before any state change
	ErrValidation = errors.New("validation failed")

	// ErrInvalidAmount is returned when an amount is not a positive integer
	ErrInvalidAmount = fmt.Errorf("%w: amount must be a positive integer", ErrValidation)

	// ErrInvalidUsername is returned when a username is empty or malformed
	ErrInvalidUsername = fmt.Errorf("%w: invalid username", ErrValidation)

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = fmt.Errorf("%w: invalid request", ErrValidation)

	// ErrAmountOverflow is returned when an amount would overflow int64 arithmetic
	ErrAmountOverflow = errors.New("amount is too large and would cause overflow")

	// ErrNegativeBalance is returned when an operation would leave a balance below zero
	ErrNegativeBalance = errors.New("balance cannot be negative")

	// ErrUnauthenticated is returned when no valid credential was presented
	ErrUnauthenticated = errors.New("authentication required")

	// ErrUnauthorized is returned when the principal may not act on a resource
	ErrUnauthorized = errors.New("not authorized for this operation")

	// ErrInvalidState is returned when a challenge is not in the status an operation requires
	ErrInvalidState = errors.New("invalid state for operation")

	// ErrStateConflict is returned by guarded updates when the stored state moved on
	ErrStateConflict = errors.New("stored state does not match expected state")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrChallengeNotFound is returned when the requested challenge doesn't exist
	ErrChallengeNotFound = fmt.Errorf("%w: challenge", ErrNotFound)

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = fmt.Errorf("%w: transaction", ErrNotFound)

	// ErrDuplicateTransaction is returned when a transaction reference is reused
	ErrDuplicateTransaction = errors.New("transaction with this reference already exists")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrUserLocked is returned when concurrent units kept conflicting on a user's rows
	ErrUserLocked = errors.New("user is locked by another operation")

	// ErrExternalService is returned when the payment gateway or game service fails
	ErrExternalService = errors.New("external service error")

	// ErrPartialCommitGap marks a committed local mutation whose external pair failed
	ErrPartialCommitGap = errors.New("local and external state diverged")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrPartialCommitGap):
		return CodePartialCommitGap
	case errors.Is(err, ErrInsufficientFunds):
		return CodeInsufficientFunds
	case errors.Is(err, ErrInvalidUsername):
		return CodeInvalidUsername
	case errors.Is(err, ErrValidation):
		return CodeValidation
	case errors.Is(err, ErrDuplicateTransaction):
		return CodeDuplicateTransaction
	case errors.Is(err, ErrAmountOverflow):
		return CodeAmountOverflow
	case errors.Is(err, ErrUnauthenticated):
		return CodeUnauthenticated
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrChallengeNotFound):
		return CodeChallengeNotFound
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrInvalidState):
		return CodeInvalidState
	case errors.Is(err, ErrStateConflict):
		return CodeStateConflict
	case errors.Is(err, ErrUserLocked):
		return CodeUserLocked
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrExternalService):
		return CodeExternalService
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	default:
		return CodeInternalServer
	}
}

// ValidationError describes which input field was rejected
type ValidationError struct {
	Field  string
	Reason string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// Is checks if the target error is an ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// LogFields returns a map of fields for structured logging
func (e *ValidationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "validation",
		"field":      e.Field,
		"reason":     e.Reason,
		"error_code": CodeValidation,
	}
}

// NewValidationError creates a new field-level validation error
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// InsufficientFundsError provides detailed error information for insufficient funds
type InsufficientFundsError struct {
	Username  string
	Required  int64
	Available int64
}

// Error implements the error interface
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds for user %s: required %d, available %d",
		e.Username, e.Required, e.Available)
}

// Is checks if the target error is an ErrInsufficientFunds
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientFundsError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_funds",
		"username":   e.Username,
		"required":   e.Required,
		"available":  e.Available,
		"error_code": CodeInsufficientFunds,
	}
}

// NewInsufficientFundsError creates a new detailed insufficient funds error
func NewInsufficientFundsError(username string, required, available int64) error {
	return &InsufficientFundsError{
		Username:  username,
		Required:  required,
		Available: available,
	}
}

// InvalidStateError reports a challenge found in a status the operation does not accept
type InvalidStateError struct {
	ChallengeID int64
	Expected    string
	Actual      string
}

// Error implements the error interface
func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("challenge %d is %s, expected %s", e.ChallengeID, e.Actual, e.Expected)
}

// Is checks if the target error is an ErrInvalidState
func (e *InvalidStateError) Is(target error) bool {
	return target == ErrInvalidState
}

// LogFields returns a map of fields for structured logging
func (e *InvalidStateError) LogFields() map[string]any {
	return map[string]any{
		"error_type":   "invalid_state",
		"challenge_id": e.ChallengeID,
		"expected":     e.Expected,
		"actual":       e.Actual,
		"error_code":   CodeInvalidState,
	}
}

// NewInvalidStateError creates a new invalid state error
func NewInvalidStateError(challengeID int64, expected, actual string) error {
	return &InvalidStateError{
		ChallengeID: challengeID,
		Expected:    expected,
		Actual:      actual,
	}
}

// StateConflictError is returned by a conditional update whose guard did not match
type StateConflictError struct {
	Entity   string
	ID       int64
	Expected string
}

// Error implements the error interface
func (e *StateConflictError) Error() string {
	return fmt.Sprintf("%s %d is no longer %s", e.Entity, e.ID, e.Expected)
}

// Is checks if the target error is an ErrStateConflict
func (e *StateConflictError) Is(target error) bool {
	return target == ErrStateConflict
}

// LogFields returns a map of fields for structured logging
func (e *StateConflictError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "state_conflict",
		"entity":     e.Entity,
		"id":         e.ID,
		"expected":   e.Expected,
		"error_code": CodeStateConflict,
	}
}

// NewStateConflictError creates a new guarded-update conflict error
func NewStateConflictError(entity string, id int64, expected string) error {
	return &StateConflictError{Entity: entity, ID: id, Expected: expected}
}

// ExternalServiceError wraps a failure of the payment gateway or the game service
type ExternalServiceError struct {
	Service   string
	Operation string
	Err       error
}

// Error implements the error interface
func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("%s %s failed: %v", e.Service, e.Operation, e.Err)
}

// Is checks if the target error is an ErrExternalService
func (e *ExternalServiceError) Is(target error) bool {
	return target == ErrExternalService
}

// Unwrap returns the underlying error
func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *ExternalServiceError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "external_service",
		"service":    e.Service,
		"operation":  e.Operation,
		"error":      errorString(e.Err),
		"error_code": CodeExternalService,
	}
}

// NewExternalServiceError creates an error describing a failed external call
func NewExternalServiceError(service, operation string, err error) error {
	return &ExternalServiceError{Service: service, Operation: operation, Err: err}
}

// PartialCommitGapError records a local commit whose paired external effect failed or
// whose local follow-up failed after the external effect succeeded
type PartialCommitGapError struct {
	Operation         string
	Username          string
	Amount            int64
	ExternalReference string
	ChallengeID       int64
	TransactionID     int64
	Err               error
}

// Error implements the error interface
func (e *PartialCommitGapError) Error() string {
	return fmt.Sprintf("partial commit during %s for user %s (amount: %d, reference: %s): %v",
		e.Operation, e.Username, e.Amount, e.ExternalReference, e.Err)
}

// Is checks if the target error is an ErrPartialCommitGap
func (e *PartialCommitGapError) Is(target error) bool {
	return target == ErrPartialCommitGap
}

// Unwrap returns the underlying error
func (e *PartialCommitGapError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *PartialCommitGapError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type":         "partial_commit_gap",
		"operation":          e.Operation,
		"username":           e.Username,
		"amount":             e.Amount,
		"external_reference": e.ExternalReference,
		"error":              errorString(e.Err),
		"error_code":         CodePartialCommitGap,
	}
	if e.ChallengeID != 0 {
		fields["challenge_id"] = e.ChallengeID
	}
	if e.TransactionID != 0 {
		fields["transaction_id"] = e.TransactionID
	}
	return fields
}

// NewPartialCommitGapError creates a new partial commit gap error
func NewPartialCommitGapError(operation, username string, amount int64, reference string, err error) *PartialCommitGapError {
	return &PartialCommitGapError{
		Operation:         operation,
		Username:          username,
		Amount:            amount,
		ExternalReference: reference,
		Err:               err,
	}
}

// LogFieldsOf returns the structured fields of err if it carries any,
// falling back to the error string
func LogFieldsOf(err error) map[string]any {
	var lf interface{ LogFields() map[string]any }
	if errors.As(err, &lf) {
		return lf.LogFields()
	}
	return map[string]any{"error": errorString(err)}
}

func errorString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// IsInsufficientFundsError checks if the error is related to insufficient funds
func IsInsufficientFundsError(err error) bool {
	return errors.Is(err, ErrInsufficientFunds)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsStateConflictError checks if a guarded update lost its race
func IsStateConflictError(err error) bool {
	return errors.Is(err, ErrStateConflict)
}

// IsValidationError checks if the error was raised by input validation
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}
