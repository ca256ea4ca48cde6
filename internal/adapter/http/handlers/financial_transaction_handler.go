package handlers

import (
	"errors"
	"net/http"

	request "escritorio_juridico/internal/adapter/http/dto/request"
	response "escritorio_juridico/internal/adapter/http/dto/response"
	"escritorio_juridico/internal/usecase"
	"escritorio_juridico/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

var errInvalidTransactionPayload = pkg.NewDomainErrorSimple("INVALID_TRANSACTION_INPUT", "Invalid transaction payload", http.StatusBadRequest)

// FinancialTransactionHandler handles fees, court costs and expenses of a case.
type FinancialTransactionHandler struct {
	usecase usecase.IFinancialTransactionUseCase
}

func NewFinancialTransactionHandler(uc usecase.IFinancialTransactionUseCase) *FinancialTransactionHandler {
	return &FinancialTransactionHandler{usecase: uc}
}

// RegisterTransaction godoc
// @Summary  Register a fee, cost or expense on a case
// @Tags     transactions
// @Accept   json
// @Produce  json
// @Param    id      path string                             true "Case ID"
// @Param    payload body request.RegisterTransactionRequest true "Transaction"
// @Success  201 {object} response.FinancialTransactionResponse
// @Router   /cases/{id}/transactions [post]
func (h *FinancialTransactionHandler) RegisterTransaction(c *gin.Context) {
	var payload request.RegisterTransactionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidTransactionPayload)
		return
	}

	created, err := h.usecase.Register(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, mapTransactionError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromFinancialTransaction(created))
}

// ListTransactions godoc
// @Summary  List transactions of a case
// @Tags     transactions
// @Produce  json
// @Param    id path string true "Case ID"
// @Success  200 {array} response.FinancialTransactionResponse
// @Router   /cases/{id}/transactions [get]
func (h *FinancialTransactionHandler) ListTransactions(c *gin.Context) {
	txs, err := h.usecase.ListByCaseID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapTransactionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromFinancialTransactions(txs))
}

// SettleTransaction godoc
// @Summary  Settle a pending transaction through the payment gateway
// @Tags     transactions
// @Accept   json
// @Produce  json
// @Param    id      path string true  "Transaction ID"
// @Param    payload body object false "Mercado Pago payment request, bare or as {\"mp_payload\": {...}}"
// @Success  200 {object} response.FinancialTransactionResponse
// @Router   /transactions/{id}/settle [post]
func (h *FinancialTransactionHandler) SettleTransaction(c *gin.Context) {
	transactionID := c.Param("id")
	logger := log.WithFields(log.Fields{"component": "transaction.handler", "transaction_id": transactionID})

	raw, err := c.GetRawData()
	if err != nil {
		writeError(c, errInvalidTransactionPayload)
		return
	}
	mpPayload, err := request.ParseSettlePayload(raw)
	if err != nil {
		logger.WithError(err).Info("invalid settle payload")
		writeError(c, errInvalidTransactionPayload)
		return
	}

	settled, err := h.usecase.Settle(c.Request.Context(), transactionID, mpPayload)
	if err != nil {
		writeError(c, mapTransactionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromFinancialTransaction(settled))
}

func mapTransactionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCaseID), errors.Is(err, usecase.ErrInvalidTransactionID),
		errors.Is(err, usecase.ErrInvalidProviderPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTransactionKind):
		return pkg.NewDomainErrorSimple("INVALID_TRANSACTION_KIND", "Kind must be honorario, custas or despesa", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTransactionAmount):
		return pkg.NewDomainErrorSimple("INVALID_TRANSACTION_AMOUNT", "Amount must be positive", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured), errors.Is(err, usecase.ErrPaymentGatewayUnavailable):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider unavailable", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrCaseNotFound):
		return pkg.NewDomainErrorSimple("CASE_NOT_FOUND", "Case not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTransactionNotFound):
		return pkg.NewDomainErrorSimple("TRANSACTION_NOT_FOUND", "Transaction not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTransactionAlreadySettled):
		return pkg.NewDomainErrorSimple("TRANSACTION_ALREADY_SETTLED", "Transaction already settled", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
