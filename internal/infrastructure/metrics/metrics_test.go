package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"escritorio_juridico/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_RecordTransition(t *testing.T) {
	m := New("test")
	m.RecordTransition(entities.CaseStatusSentenca, entities.CaseStatusEmRecurso, "applied")
	m.RecordTransition(entities.CaseStatusSentenca, entities.CaseStatusEmRecurso, "applied")
	m.RecordTransition(entities.CaseStatusPendente, entities.CaseStatusArquivado, "")

	if got := testutil.ToFloat64(m.transitionsTotal.WithLabelValues("Sentença", "Em Recurso", "applied")); got != 2 {
		t.Fatalf("expected 2 applied transitions, got %v", got)
	}
	if got := testutil.ToFloat64(m.transitionsTotal.WithLabelValues("Pendente", "Arquivado", "unknown")); got != 1 {
		t.Fatalf("expected empty outcome as unknown, got %v", got)
	}
}

func TestMetrics_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New("test")

	r := gin.New()
	r.Use(m.Middleware("test"))
	r.GET("/v1/cases/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/metrics", gin.WrapH(m.Handler()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/cases/abc", nil))

	if got := testutil.ToFloat64(m.requestTotal.WithLabelValues("test", http.MethodGet, "/v1/cases/:id", "404")); got != 1 {
		t.Fatalf("expected request counted under route template, got %v", got)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "escritorio_http_requests_total") {
		t.Fatalf("unexpected metrics output: %d", w.Code)
	}
}
