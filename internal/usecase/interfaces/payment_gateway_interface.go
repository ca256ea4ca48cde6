package interfaces

import (
	"context"
	"encoding/json"
	"errors"
)

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/payment_gateway_interface.go -package=mock_interfaces

// ErrPaymentGatewayUnavailable is returned while the gateway circuit is open.
var ErrPaymentGatewayUnavailable = errors.New("payment gateway unavailable")

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// Settling a financial transaction sends the provider request through it and
// keeps the provider response for traceability.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
