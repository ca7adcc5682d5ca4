package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"ledgerly/internal/domain"
	"ledgerly/internal/metrics"
)

func TestObserveImport(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	m.ObserveImport(metrics.OutcomeCompleted, domain.ImportCounts{Items: 3, Ledgers: 2, Parties: 1, Vouchers: 4}, time.Second)
	m.ObserveImport(metrics.OutcomeFailed, domain.ImportCounts{Items: 1}, time.Second)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ImportsTotal.WithLabelValues(metrics.OutcomeCompleted)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ImportsTotal.WithLabelValues(metrics.OutcomeFailed)))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.RecordsParsed.WithLabelValues("item")))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.RecordsParsed.WithLabelValues("voucher")))
}

func TestHandler_ExposesImportMetrics(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	m.ObserveImport(metrics.OutcomeCompleted, domain.ImportCounts{}, time.Millisecond)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ledger_imports_total")
}
