package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"escritorio_juridico/internal/config"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/gin-gonic/gin"
)

// emptyDynamo answers every call with an empty result.
type emptyDynamo struct{}

func (emptyDynamo) PutItem(context.Context, *dynamodb.PutItemInput, ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	return &dynamodb.PutItemOutput{}, nil
}

func (emptyDynamo) GetItem(context.Context, *dynamodb.GetItemInput, ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return &dynamodb.GetItemOutput{}, nil
}

func (emptyDynamo) UpdateItem(context.Context, *dynamodb.UpdateItemInput, ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	return &dynamodb.UpdateItemOutput{}, nil
}

func (emptyDynamo) DeleteItem(context.Context, *dynamodb.DeleteItemInput, ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	return &dynamodb.DeleteItemOutput{}, nil
}

func (emptyDynamo) Query(context.Context, *dynamodb.QueryInput, ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	return &dynamodb.QueryOutput{}, nil
}

func (emptyDynamo) Scan(context.Context, *dynamodb.ScanInput, ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	return &dynamodb.ScanOutput{}, nil
}

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(&config.Config{PaymentGatewayMock: true, MetricsEnabled: true}, emptyDynamo{})

	cases := []struct {
		method string
		path   string
		header string
		body   string
		want   int
	}{
		{http.MethodGet, "/v1/ping", "", "", http.StatusOK},
		{http.MethodGet, "/v1/cases", "", "", http.StatusOK},
		{http.MethodGet, "/v1/cases/unknown", "", "", http.StatusNotFound},
		{http.MethodPost, "/v1/cases/unknown/transitions", "staff-1", `{"status":"Protocolado","numero_processo":"1"}`, http.StatusNotFound},
		{http.MethodGet, "/v1/dashboard/phases", "", "", http.StatusOK},
		{http.MethodPost, "/v1/transactions/unknown/settle", "", "", http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			if tc.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}
			if tc.header != "" {
				req.Header.Set("X-Staff-ID", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d: %s", tc.want, w.Code, w.Body.String())
			}
		})
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "escritorio_http_requests_total") {
		t.Fatalf("metrics not exposed: %d", w.Code)
	}
}
