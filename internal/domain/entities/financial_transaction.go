package entities

import (
	"encoding/json"
	"time"
)

// TransactionStatus represents the settlement state of a financial transaction.
type TransactionStatus string

const (
	TransactionStatusPendente TransactionStatus = "pendente"
	TransactionStatusAprovado TransactionStatus = "aprovado"
	TransactionStatusNegado   TransactionStatus = "negado"
)

type TransactionKind string

const (
	TransactionKindHonorario TransactionKind = "honorario"
	TransactionKindCustas    TransactionKind = "custas"
	TransactionKindDespesa   TransactionKind = "despesa"
)

func (k TransactionKind) Valid() bool {
	switch k {
	case TransactionKindHonorario, TransactionKindCustas, TransactionKindDespesa:
		return true
	}
	return false
}

// FinancialTransaction is a fee, court cost or expense attached to a case.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (case_id-index): case_id
//
// Provider payload:
//   - ProviderPayloadRaw keeps the gateway response body for audit.
//   - ProviderPayload is the parsed form, useful for querying/debugging.
type FinancialTransaction struct {
	ID          string            `json:"id"`
	CaseID      string            `json:"case_id"`
	Kind        TransactionKind   `json:"kind"`
	Description string            `json:"description"`
	Amount      float64           `json:"amount"`
	Status      TransactionStatus `json:"status"`
	Date        time.Time         `json:"date"`

	ProviderPaymentID  string                 `json:"provider_payment_id,omitempty"`
	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
