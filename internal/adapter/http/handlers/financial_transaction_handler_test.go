package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"escritorio_juridico/internal/adapter/http/handlers/mocks"
	"escritorio_juridico/internal/domain/entities"
	"escritorio_juridico/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func TestFinancialTransactionHandler_RegisterTransaction(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFinancialTransactionUseCase(ctrl)
		h := NewFinancialTransactionHandler(uc)

		r := gin.New()
		r.POST("/v1/cases/:id/transactions", h.RegisterTransaction)

		req := httptest.NewRequest(http.MethodPost, "/v1/cases/case-1/transactions", bytes.NewBufferString(`{"kind":"custas"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("case not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFinancialTransactionUseCase(ctrl)
		h := NewFinancialTransactionHandler(uc)

		r := gin.New()
		r.POST("/v1/cases/:id/transactions", h.RegisterTransaction)

		uc.EXPECT().Register(gomock.Any(), "case-1", usecase.RegisterTransactionInput{Kind: entities.TransactionKindCustas, Amount: 80}).
			Return(entities.FinancialTransaction{}, usecase.ErrCaseNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/cases/case-1/transactions", bytes.NewBufferString(`{"kind":"custas","amount":80}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFinancialTransactionUseCase(ctrl)
		h := NewFinancialTransactionHandler(uc)

		r := gin.New()
		r.POST("/v1/cases/:id/transactions", h.RegisterTransaction)

		uc.EXPECT().Register(gomock.Any(), "case-1", gomock.Any()).
			Return(entities.FinancialTransaction{ID: "tx-1", CaseID: "case-1", Kind: entities.TransactionKindHonorario, Amount: 500, Status: entities.TransactionStatusPendente}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/cases/case-1/transactions", bytes.NewBufferString(`{"kind":"honorario","amount":500}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "tx-1" || body["status"] != "pendente" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestFinancialTransactionHandler_ListTransactions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIFinancialTransactionUseCase(ctrl)
	h := NewFinancialTransactionHandler(uc)

	r := gin.New()
	r.GET("/v1/cases/:id/transactions", h.ListTransactions)

	uc.EXPECT().ListByCaseID(gomock.Any(), "case-1").Return([]entities.FinancialTransaction{{ID: "tx-1"}, {ID: "tx-2"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/cases/case-1/transactions", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body) != 2 {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestFinancialTransactionHandler_SettleTransaction(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFinancialTransactionUseCase(ctrl)
		h := NewFinancialTransactionHandler(uc)

		r := gin.New()
		r.POST("/v1/transactions/:id/settle", h.SettleTransaction)

		req := httptest.NewRequest(http.MethodPost, "/v1/transactions/tx-1/settle", bytes.NewBufferString("{"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("body read error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFinancialTransactionUseCase(ctrl)
		h := NewFinancialTransactionHandler(uc)

		r := gin.New()
		r.POST("/v1/transactions/:id/settle", h.SettleTransaction)

		req := httptest.NewRequest(http.MethodPost, "/v1/transactions/tx-1/settle", nil)
		req.Body = failingReadCloser{}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("already settled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFinancialTransactionUseCase(ctrl)
		h := NewFinancialTransactionHandler(uc)

		r := gin.New()
		r.POST("/v1/transactions/:id/settle", h.SettleTransaction)

		uc.EXPECT().Settle(gomock.Any(), "tx-1", gomock.Any()).Return(entities.FinancialTransaction{}, usecase.ErrTransactionAlreadySettled)

		req := httptest.NewRequest(http.MethodPost, "/v1/transactions/tx-1/settle", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success unwraps mp_payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFinancialTransactionUseCase(ctrl)
		h := NewFinancialTransactionHandler(uc)

		r := gin.New()
		r.POST("/v1/transactions/:id/settle", h.SettleTransaction)

		now := time.Now().UTC()
		uc.EXPECT().Settle(gomock.Any(), "tx-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, payload json.RawMessage) (entities.FinancialTransaction, error) {
				if string(payload) != `{"payment_method_id":"pix"}` {
					t.Fatalf("unexpected payload %s", payload)
				}
				return entities.FinancialTransaction{ID: "tx-1", Status: entities.TransactionStatusAprovado, Date: now}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/transactions/tx-1/settle", bytes.NewBufferString(`{"mp_payload":{"payment_method_id":"pix"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "aprovado" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestMapTransactionError(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{usecase.ErrInvalidTransactionKind, http.StatusBadRequest},
		{usecase.ErrInvalidTransactionAmount, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayBadRequest, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayUnauthorized, http.StatusBadGateway},
		{usecase.ErrPaymentGatewayNotConfigured, http.StatusServiceUnavailable},
		{usecase.ErrPaymentGatewayUnavailable, http.StatusServiceUnavailable},
		{usecase.ErrTransactionNotFound, http.StatusNotFound},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := mapTransactionError(tc.err).HTTPStatus; got != tc.want {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.want, got)
		}
	}
}
