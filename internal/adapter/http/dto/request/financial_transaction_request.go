package request

import (
	"encoding/json"
	"errors"
	"strings"

	"escritorio_juridico/internal/domain/entities"
	"escritorio_juridico/internal/usecase"
)

var (
	ErrInvalidSettlePayload = errors.New("request body is not valid json")
	ErrEmptyMPPayload       = errors.New("mp_payload cannot be empty")
)

type RegisterTransactionRequest struct {
	Kind        string  `json:"kind" binding:"required"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount" binding:"required"`
}

func (r RegisterTransactionRequest) ToInput() usecase.RegisterTransactionInput {
	return usecase.RegisterTransactionInput{
		Kind:        entities.TransactionKind(strings.ToLower(strings.TrimSpace(r.Kind))),
		Description: r.Description,
		Amount:      r.Amount,
	}
}

// ParseSettlePayload accepts either a bare Mercado Pago payment request or one
// wrapped as {"mp_payload": {...}}. An empty body yields {}.
func ParseSettlePayload(raw []byte) (json.RawMessage, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, ErrInvalidSettlePayload
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			v := strings.TrimSpace(string(wrapped))
			if v == "" || v == "null" {
				return nil, ErrEmptyMPPayload
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}
