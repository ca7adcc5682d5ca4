package router_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"ledgerly/internal/config"
	"ledgerly/internal/domain"
	"ledgerly/internal/handler"
	"ledgerly/internal/metrics"
	"ledgerly/internal/router"
	"ledgerly/internal/service"
	"ledgerly/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type okPinger struct{}

func (okPinger) PingContext(context.Context) error { return nil }

func newEngine(authSvc *mocks.MockAuthService, importSvc *mocks.MockImportService, masterSvc *mocks.MockMasterService) *gin.Engine {
	m := metrics.New(prometheus.NewRegistry())
	return router.Setup(zap.NewNop(), []string{"http://localhost:3000"}, authSvc, m, router.Handlers{
		Import: handler.NewImportHandler(importSvc, config.ImportConfig{MaxFileSizeMB: 1}),
		Master: handler.NewMasterHandler(masterSvc),
		Health: handler.NewHealthHandler(okPinger{}),
	})
}

func TestRouter_PublicEndpoints(t *testing.T) {
	r := newEngine(new(mocks.MockAuthService), new(mocks.MockImportService), new(mocks.MockMasterService))

	for _, path := range []string{"/healthz", "/readyz", "/metrics"} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, path, http.NoBody)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/metrics", http.NoBody)
	r.ServeHTTP(w, req)
	assert.Contains(t, w.Body.String(), "ledger_import_duration_seconds")
}

func TestRouter_ImportRequiresAuth(t *testing.T) {
	importSvc := new(mocks.MockImportService)
	r := newEngine(new(mocks.MockAuthService), importSvc, new(mocks.MockMasterService))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/imports/tally/parse", strings.NewReader(`{"xml_content":"x"}`))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	importSvc.AssertNotCalled(t, "Parse", mock.Anything)
}

func TestRouter_ParseWithToken(t *testing.T) {
	authSvc := new(mocks.MockAuthService)
	importSvc := new(mocks.MockImportService)
	r := newEngine(authSvc, importSvc, new(mocks.MockMasterService))

	authSvc.On("ValidateToken", "tok").Return(&service.Claims{UserID: uuid.New()}, nil)
	importSvc.On("Parse", "x").Return(&domain.ParsedDocument{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/imports/tally/parse", strings.NewReader(`{"xml_content":"x"}`))
	req.Header.Set("Authorization", "Bearer tok")
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	importSvc.AssertExpectations(t)
}

func TestRouter_MastersWithToken(t *testing.T) {
	authSvc := new(mocks.MockAuthService)
	masterSvc := new(mocks.MockMasterService)
	r := newEngine(authSvc, new(mocks.MockImportService), masterSvc)
	userID := uuid.New()

	authSvc.On("ValidateToken", "tok").Return(&service.Claims{UserID: userID}, nil)
	masterSvc.On("ListVendors", mock.Anything, userID, 0, 20).Return([]domain.Party{}, 0, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/vendors", http.NoBody)
	req.Header.Set("Authorization", "Bearer tok")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	masterSvc.AssertExpectations(t)
}
