package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/chess-escrow/internal/domain/port/core"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/chess-escrow/internal/infrastructure/adapter/api/dto"
)

// UserHandler handles profile and balance requests
type UserHandler struct {
	ledger usecase.LedgerUseCase
	logger coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(ledger usecase.LedgerUseCase, logger coreport.Logger) *UserHandler {
	return &UserHandler{
		ledger: ledger,
		logger: logger,
	}
}

// GetBalance handles GET /api/balance. Reading the balance reconciles the
// caller's open invoices and finished games first.
func (h *UserHandler) GetBalance(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	balance, err := h.ledger.GetBalance(c.Request.Context(), p)
	if err != nil {
		respondError(c, h.logger, "get_balance", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBalanceResponse(balance))
}

// GetProfile handles GET /api/profile
func (h *UserHandler) GetProfile(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, dto.ProfileResponse{Username: p.Username})
}
