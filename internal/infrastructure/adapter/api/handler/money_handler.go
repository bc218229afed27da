package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/chess-escrow/internal/domain/port/core"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/chess-escrow/internal/infrastructure/adapter/api/dto"
)

// MoneyHandler handles invoices, withdrawals and the transaction history
type MoneyHandler struct {
	ledger      usecase.LedgerUseCase
	withdrawals usecase.WithdrawalUseCase
	logger      coreport.Logger
}

// NewMoneyHandler creates a new money handler instance
func NewMoneyHandler(
	ledger usecase.LedgerUseCase,
	withdrawals usecase.WithdrawalUseCase,
	logger coreport.Logger,
) *MoneyHandler {
	return &MoneyHandler{
		ledger:      ledger,
		withdrawals: withdrawals,
		logger:      logger,
	}
}

// CreateInvoice handles POST /api/invoice
func (h *MoneyHandler) CreateInvoice(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req dto.InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	record, err := h.ledger.CreateInvoice(c.Request.Context(), p, req.Sats)
	if err != nil {
		respondError(c, h.logger, "create_invoice", err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewTransactionResponse(record))
}

// SendPayment handles POST /api/send-payment
func (h *MoneyHandler) SendPayment(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req dto.SendPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	record, err := h.withdrawals.SendPayment(c.Request.Context(), p, req.PaymentRequest)
	if err != nil {
		respondError(c, h.logger, "send_payment", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionResponse(record))
}

// ListTransactions handles GET /api/transactions
func (h *MoneyHandler) ListTransactions(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	records, err := h.ledger.ListTransactions(c.Request.Context(), p)
	if err != nil {
		respondError(c, h.logger, "list_transactions", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionListResponse(records))
}

// GetTransaction handles GET /api/transactions/:id
func (h *MoneyHandler) GetTransaction(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, "Invalid transaction id")
		return
	}

	record, err := h.ledger.GetTransaction(c.Request.Context(), p, id)
	if err != nil {
		respondError(c, h.logger, "get_transaction", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionResponse(record))
}
