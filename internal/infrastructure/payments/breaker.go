package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"escritorio_juridico/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker/v2"
)

type BreakerConfig struct {
	MinRequests     uint32
	FailureRatio    float64
	OpenTimeout     time.Duration
	HalfOpenMaxCall uint32
}

func (c BreakerConfig) normalize() BreakerConfig {
	if c.MinRequests == 0 {
		c.MinRequests = 5
	}
	if c.FailureRatio <= 0 || c.FailureRatio > 1 {
		c.FailureRatio = 0.5
	}
	if c.OpenTimeout <= 0 {
		c.OpenTimeout = 30 * time.Second
	}
	if c.HalfOpenMaxCall == 0 {
		c.HalfOpenMaxCall = 1
	}
	return c
}

type paymentResult struct {
	id       string
	status   string
	response json.RawMessage
}

// BreakingGateway stops calling the provider after repeated failures.
// Payments are not retried: a create call is not idempotent.
type BreakingGateway struct {
	next    interfaces.IPaymentGateway
	breaker *gobreaker.CircuitBreaker[paymentResult]
}

var _ interfaces.IPaymentGateway = (*BreakingGateway)(nil)

func NewBreakingGateway(next interfaces.IPaymentGateway, cfg BreakerConfig) *BreakingGateway {
	cfg = cfg.normalize()
	settings := gobreaker.Settings{
		Name:        "mercadopago.create_payment",
		MaxRequests: cfg.HalfOpenMaxCall,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= cfg.FailureRatio
		},
		IsSuccessful: func(err error) bool {
			return err == nil || isClientError(err)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.WithFields(log.Fields{
				"component": "payment.gateway",
				"breaker":   name,
				"from":      from.String(),
				"to":        to.String(),
			}).Warn("circuit breaker state change")
		},
	}
	return &BreakingGateway{
		next:    next,
		breaker: gobreaker.NewCircuitBreaker[paymentResult](settings),
	}
}

func (g *BreakingGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	res, err := g.breaker.Execute(func() (paymentResult, error) {
		id, status, resp, err := g.next.CreatePayment(ctx, requestPayload)
		return paymentResult{id: id, status: status, response: resp}, err
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return "", "", nil, fmt.Errorf("%w: %v", interfaces.ErrPaymentGatewayUnavailable, err)
	}
	if err != nil {
		return "", "", nil, err
	}
	return res.id, res.status, res.response, nil
}

// isClientError reports provider rejections of the request itself; they say
// nothing about provider health.
func isClientError(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, s := range []string{`"status":400`, `"status":401`, `"status":403`, `"status":404`, `"error":"bad_request"`, `"error":"unauthorized"`} {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}
