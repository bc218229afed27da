package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/chess-escrow/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/chess-escrow/internal/domain/error"
	coreport "github.com/amirhossein-jamali/chess-escrow/internal/domain/port/core"
	"github.com/amirhossein-jamali/chess-escrow/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/chess-escrow/internal/infrastructure/adapter/api/middleware"
)

// StatusFor maps a domain error onto an HTTP status code
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domainerr.ErrPartialCommitGap):
		return http.StatusBadGateway
	case errors.Is(err, domainerr.ErrValidation),
		errors.Is(err, domainerr.ErrInsufficientFunds),
		errors.Is(err, domainerr.ErrAmountOverflow):
		return http.StatusBadRequest
	case errors.Is(err, domainerr.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, domainerr.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, domainerr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainerr.ErrInvalidState),
		errors.Is(err, domainerr.ErrStateConflict),
		errors.Is(err, domainerr.ErrDuplicateTransaction),
		errors.Is(err, domainerr.ErrUserLocked):
		return http.StatusConflict
	case errors.Is(err, domainerr.ErrExternalService):
		return http.StatusBadGateway
	case errors.Is(err, domainerr.ErrDatabaseConnection):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// messageFor returns the client-facing text for an error. Server errors are not
// described beyond their class.
func messageFor(err error, status int) string {
	switch {
	case errors.Is(err, domainerr.ErrPartialCommitGap):
		return "Funds were committed but the external step failed; retry the request"
	case errors.Is(err, domainerr.ErrExternalService):
		return "External service unavailable"
	case status >= http.StatusInternalServerError:
		return "Internal server error"
	default:
		return err.Error()
	}
}

// respondError writes the error response and logs it with the error's own fields
func respondError(c *gin.Context, logger coreport.Logger, operation string, err error) {
	status := StatusFor(err)

	fields := make(map[string]any)
	for k, v := range domainerr.LogFieldsOf(err) {
		fields[k] = v
	}
	fields["operation"] = operation
	fields["status"] = status
	fields["request_id"] = middleware.RequestIDFrom(c)
	if principal, ok := middleware.PrincipalFrom(c); ok {
		fields["username"] = principal.Username
	}

	switch {
	case errors.Is(err, domainerr.ErrPartialCommitGap):
		logger.Error("Request left local and external state diverged", fields)
	case status >= http.StatusInternalServerError:
		logger.Error("Request failed", fields)
	default:
		logger.Debug("Request rejected", fields)
	}

	_ = c.Error(err)
	c.JSON(status, dto.ErrorResponse{
		Code:      domainerr.ErrorCode(err),
		Message:   messageFor(err, status),
		RequestID: middleware.RequestIDFrom(c),
	})
}

// badRequest rejects a body or path parameter that could not be parsed
func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:      domainerr.CodeValidation,
		Message:   message,
		RequestID: middleware.RequestIDFrom(c),
	})
}

// principal returns the authenticated caller, answering 401 when Auth did not run
func principal(c *gin.Context) (p entity.Principal, ok bool) {
	p, ok = middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:      domainerr.CodeUnauthenticated,
			Message:   "Authentication required",
			RequestID: middleware.RequestIDFrom(c),
		})
	}
	return p, ok
}
