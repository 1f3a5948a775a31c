package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/feral-file/wallet-ledger/internal/api/middleware"
	"github.com/feral-file/wallet-ledger/internal/auth"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, tokens auth.TokenIssuer, users middleware.UserResolver) {
	// Health check endpoint (no auth, no prefix)
	router.GET("/health", handler.HealthCheck)

	requireSession := middleware.Auth(tokens, users)

	api := router.Group("/api")
	{
		// Wallet authentication
		api.POST("/auth/verify", handler.VerifyWallet)
		api.GET("/auth/me", requireSession, handler.GetMe)
		api.GET("/auth/user/:walletAddress", handler.GetUserByWalletAddress)

		// Transactions (session required)
		txns := api.Group("/transactions", requireSession)
		txns.POST("/verify", handler.VerifyTransaction)
		txns.GET("", handler.ListTransactions)
		txns.GET("/stats/summary", handler.GetTransactionStats)
		txns.GET("/:txHash", handler.GetTransaction)
	}
}
