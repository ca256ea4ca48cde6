package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"escritorio_juridico/internal/domain/entities"
	"escritorio_juridico/internal/usecase/interfaces"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=financial_transaction_usecase.go -destination=../adapter/http/handlers/mocks/financial_transaction_usecase.go -package=mocks

var (
	ErrTransactionNotFound         = errors.New("financial transaction not found")
	ErrInvalidTransactionID        = errors.New("invalid transaction id")
	ErrInvalidTransactionKind      = errors.New("invalid transaction kind")
	ErrInvalidTransactionAmount    = errors.New("invalid transaction amount")
	ErrInvalidProviderPayload      = errors.New("invalid payment provider payload")
	ErrTransactionAlreadySettled   = errors.New("financial transaction already settled")
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest    = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized  = errors.New("payment gateway unauthorized")

	ErrPaymentGatewayUnavailable = interfaces.ErrPaymentGatewayUnavailable
)

type RegisterTransactionInput struct {
	Kind        entities.TransactionKind
	Description string
	Amount      float64
}

// IFinancialTransactionUseCase covers fees and costs attached to a case.
//
// Settlement is delegated to the payment gateway, which runs in mock mode
// unless a Mercado Pago token is configured.
type IFinancialTransactionUseCase interface {
	Register(ctx context.Context, caseID string, in RegisterTransactionInput) (entities.FinancialTransaction, error)
	ListByCaseID(ctx context.Context, caseID string) ([]entities.FinancialTransaction, error)
	Settle(ctx context.Context, transactionID string, providerPayload json.RawMessage) (entities.FinancialTransaction, error)
}

type FinancialTransactionUseCase struct {
	repo     interfaces.IFinancialTransactionRepository
	caseRepo interfaces.ICaseRepository
	gateway  interfaces.IPaymentGateway
}

var _ IFinancialTransactionUseCase = (*FinancialTransactionUseCase)(nil)

func NewFinancialTransactionUseCase(repo interfaces.IFinancialTransactionRepository, caseRepo interfaces.ICaseRepository, gateway interfaces.IPaymentGateway) *FinancialTransactionUseCase {
	return &FinancialTransactionUseCase{repo: repo, caseRepo: caseRepo, gateway: gateway}
}

func (u *FinancialTransactionUseCase) Register(ctx context.Context, caseID string, in RegisterTransactionInput) (entities.FinancialTransaction, error) {
	caseID = strings.TrimSpace(caseID)
	if caseID == "" {
		return entities.FinancialTransaction{}, ErrInvalidCaseID
	}
	if !in.Kind.Valid() {
		return entities.FinancialTransaction{}, ErrInvalidTransactionKind
	}
	if in.Amount <= 0 {
		return entities.FinancialTransaction{}, ErrInvalidTransactionAmount
	}

	c, err := u.caseRepo.GetByID(ctx, caseID)
	if err != nil {
		return entities.FinancialTransaction{}, err
	}
	if c.ID == "" {
		return entities.FinancialTransaction{}, ErrCaseNotFound
	}

	t := entities.FinancialTransaction{
		ID:          uuid.NewString(),
		CaseID:      c.ID,
		Kind:        in.Kind,
		Description: strings.TrimSpace(in.Description),
		Amount:      in.Amount,
		Status:      entities.TransactionStatusPendente,
		Date:        time.Now().UTC(),
	}
	if t.Description == "" {
		t.Description = fmt.Sprintf("%s - %s", in.Kind, c.Titulo)
	}

	created, err := u.repo.Create(ctx, t)
	if err != nil {
		return entities.FinancialTransaction{}, err
	}
	log.WithFields(log.Fields{
		"component":      "transaction.usecase",
		"case_id":        created.CaseID,
		"transaction_id": created.ID,
		"kind":           created.Kind,
	}).Info("transaction registered")
	return created, nil
}

func (u *FinancialTransactionUseCase) ListByCaseID(ctx context.Context, caseID string) ([]entities.FinancialTransaction, error) {
	caseID = strings.TrimSpace(caseID)
	if caseID == "" {
		return nil, ErrInvalidCaseID
	}
	return u.repo.ListByCaseID(ctx, caseID)
}

// Settle charges a pending transaction through the payment gateway and stores
// the provider response. The amount always comes from the stored transaction.
func (u *FinancialTransactionUseCase) Settle(ctx context.Context, transactionID string, providerPayload json.RawMessage) (entities.FinancialTransaction, error) {
	transactionID = strings.TrimSpace(transactionID)
	if transactionID == "" {
		return entities.FinancialTransaction{}, ErrInvalidTransactionID
	}
	if len(providerPayload) == 0 {
		providerPayload = json.RawMessage("{}")
	}
	if !json.Valid(providerPayload) {
		return entities.FinancialTransaction{}, ErrInvalidProviderPayload
	}
	if u.gateway == nil {
		return entities.FinancialTransaction{}, ErrPaymentGatewayNotConfigured
	}

	logger := log.WithFields(log.Fields{"component": "transaction.usecase", "transaction_id": transactionID})

	t, err := u.repo.GetByID(ctx, transactionID)
	if err != nil {
		return entities.FinancialTransaction{}, err
	}
	if t.ID == "" {
		return entities.FinancialTransaction{}, ErrTransactionNotFound
	}
	if t.Status == entities.TransactionStatusAprovado {
		return entities.FinancialTransaction{}, ErrTransactionAlreadySettled
	}

	var reqMap map[string]any
	if err := json.Unmarshal(providerPayload, &reqMap); err != nil {
		return entities.FinancialTransaction{}, ErrInvalidProviderPayload
	}
	if reqMap == nil {
		reqMap = map[string]any{}
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = t.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = t.Description
	}
	reqMap["transaction_amount"] = t.Amount
	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return entities.FinancialTransaction{}, err
	}

	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		logger.WithError(err).Error("payment gateway failed")
		switch {
		case isGatewayUnauthorized(err):
			return entities.FinancialTransaction{}, ErrPaymentGatewayUnauthorized
		case isGatewayBadRequest(err):
			return entities.FinancialTransaction{}, ErrPaymentGatewayBadRequest
		}
		return entities.FinancialTransaction{}, err
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		logger.WithError(err).Warn("provider response unmarshal failed")
	}

	t.Status = transactionStatusFromProvider(providerStatus)
	t.ProviderPaymentID = providerID
	t.ProviderPayloadRaw = providerResp
	t.ProviderPayload = parsed
	t.Date = time.Now().UTC()

	settled, err := u.repo.Settle(ctx, t)
	if err != nil {
		logger.WithError(err).Error("transaction settle persist failed")
		return entities.FinancialTransaction{}, err
	}
	logger.WithFields(log.Fields{"provider_payment_id": providerID, "status": settled.Status}).Info("transaction settled")
	return settled, nil
}

func transactionStatusFromProvider(providerStatus string) entities.TransactionStatus {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "approved", "authorized":
		return entities.TransactionStatusAprovado
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.TransactionStatusNegado
	default:
		return entities.TransactionStatusPendente
	}
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
