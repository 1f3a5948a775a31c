package server_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/feral-file/wallet-ledger/internal/api/middleware"
	"github.com/feral-file/wallet-ledger/internal/api/server"
	"github.com/feral-file/wallet-ledger/internal/logger"
	"github.com/feral-file/wallet-ledger/internal/mocks"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := logger.Initialize(logger.Config{Debug: true}); err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	os.Exit(m.Run())
}

func TestRouter(t *testing.T) {
	ctrl := gomock.NewController(t)
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)).AnyTimes()

	srv := server.New(server.Config{
		MetricsEnabled: true,
		MetricsPath:    "/metrics",
	}, mocks.NewMockStore(ctrl), mocks.NewMockLedgerClient(ctrl), mocks.NewMockTokenIssuer(ctrl), clock)
	router := srv.Router()

	t.Run("health", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
		assert.Contains(t, w.Body.String(), `"status":"ok"`)
	})

	t.Run("protected routes need a session", func(t *testing.T) {
		for _, path := range []string{"/api/auth/me", "/api/transactions", "/api/transactions/stats/summary", "/api/transactions/abc"} {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusUnauthorized, w.Code, path)
		}
	})

	t.Run("metrics", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "wallet_ledger_http")
	})
}
