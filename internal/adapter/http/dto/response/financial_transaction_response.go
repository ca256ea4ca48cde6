package response

import (
	"time"

	"escritorio_juridico/internal/domain/entities"
)

type FinancialTransactionResponse struct {
	ID          string    `json:"id"`
	CaseID      string    `json:"case_id"`
	Kind        string    `json:"kind"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Status      string    `json:"status"`
	Date        time.Time `json:"date"`

	ProviderPaymentID  string                 `json:"provider_payment_id,omitempty"`
	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromFinancialTransaction(t entities.FinancialTransaction) FinancialTransactionResponse {
	return FinancialTransactionResponse{
		ID:                 t.ID,
		CaseID:             t.CaseID,
		Kind:               string(t.Kind),
		Description:        t.Description,
		Amount:             t.Amount,
		Status:             string(t.Status),
		Date:               t.Date,
		ProviderPaymentID:  t.ProviderPaymentID,
		ProviderPayloadRaw: string(t.ProviderPayloadRaw),
		ProviderPayload:    t.ProviderPayload,
	}
}

func FromFinancialTransactions(ts []entities.FinancialTransaction) []FinancialTransactionResponse {
	out := make([]FinancialTransactionResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, FromFinancialTransaction(t))
	}
	return out
}
