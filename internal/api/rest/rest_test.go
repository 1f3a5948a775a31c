package rest_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/feral-file/wallet-ledger/internal/api/rest"
	"github.com/feral-file/wallet-ledger/internal/auth"
	"github.com/feral-file/wallet-ledger/internal/mocks"
	"github.com/feral-file/wallet-ledger/internal/store/schema"
)

func TestSetupRoutes(t *testing.T) {
	ok := func(c *gin.Context) { c.Status(http.StatusNoContent) }

	routes := []struct {
		method string
		path   string
		authed bool
		expect func(h *mocks.MockAPIHandler) *gomock.Call
	}{
		{http.MethodGet, "/health", false, func(h *mocks.MockAPIHandler) *gomock.Call { return h.EXPECT().HealthCheck(gomock.Any()) }},
		{http.MethodPost, "/api/auth/verify", false, func(h *mocks.MockAPIHandler) *gomock.Call { return h.EXPECT().VerifyWallet(gomock.Any()) }},
		{http.MethodGet, "/api/auth/me", true, func(h *mocks.MockAPIHandler) *gomock.Call { return h.EXPECT().GetMe(gomock.Any()) }},
		{http.MethodGet, "/api/auth/user/abc", false, func(h *mocks.MockAPIHandler) *gomock.Call {
			return h.EXPECT().GetUserByWalletAddress(gomock.Any())
		}},
		{http.MethodPost, "/api/transactions/verify", true, func(h *mocks.MockAPIHandler) *gomock.Call {
			return h.EXPECT().VerifyTransaction(gomock.Any())
		}},
		{http.MethodGet, "/api/transactions", true, func(h *mocks.MockAPIHandler) *gomock.Call { return h.EXPECT().ListTransactions(gomock.Any()) }},
		{http.MethodGet, "/api/transactions/stats/summary", true, func(h *mocks.MockAPIHandler) *gomock.Call {
			return h.EXPECT().GetTransactionStats(gomock.Any())
		}},
		{http.MethodGet, "/api/transactions/abc", true, func(h *mocks.MockAPIHandler) *gomock.Call { return h.EXPECT().GetTransaction(gomock.Any()) }},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			h := mocks.NewMockAPIHandler(ctrl)
			tokens := mocks.NewMockTokenIssuer(ctrl)
			users := mocks.NewMockStore(ctrl)

			rt.expect(h).Do(ok).Times(1)
			if rt.authed {
				tokens.EXPECT().Validate(sessionToken).Return(&auth.Claims{UserID: 1}, nil)
				users.EXPECT().GetUserByID(gomock.Any(), uint64(1)).Return(&schema.User{ID: 1}, nil)
			}

			router := gin.New()
			rest.SetupRoutes(router, h, tokens, users)

			req := httptest.NewRequest(rt.method, rt.path, nil)
			if rt.authed {
				req.Header.Set("Authorization", "Bearer "+sessionToken)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusNoContent, w.Code)
		})
	}
}
