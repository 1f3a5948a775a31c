package rest

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/wallet-ledger/internal/adapter"
	"github.com/feral-file/wallet-ledger/internal/api/middleware"
	"github.com/feral-file/wallet-ledger/internal/api/shared/dto"
	"github.com/feral-file/wallet-ledger/internal/api/shared/executor"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// VerifyWallet authenticates a wallet by signature and issues a session token
	// POST /api/auth/verify
	VerifyWallet(c *gin.Context)

	// GetMe returns the session's user (requires authentication)
	// GET /api/auth/me
	GetMe(c *gin.Context)

	// GetUserByWalletAddress returns a user's public profile
	// GET /api/auth/user/:walletAddress
	GetUserByWalletAddress(c *gin.Context)

	// VerifyTransaction looks a transaction up on the ledger and records it (requires authentication)
	// POST /api/transactions/verify
	VerifyTransaction(c *gin.Context)

	// ListTransactions returns a page of the session user's transactions (requires authentication)
	// GET /api/transactions?page=<page>&limit=<limit>&status=<status>&type=<type>
	ListTransactions(c *gin.Context)

	// GetTransaction returns one of the session user's transactions (requires authentication)
	// GET /api/transactions/:txHash
	GetTransaction(c *gin.Context)

	// GetTransactionStats summarizes the session user's transactions (requires authentication)
	// GET /api/transactions/stats/summary
	GetTransactionStats(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
	clock    adapter.Clock
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor, clock adapter.Clock) Handler {
	return &handler{
		executor: exec,
		clock:    clock,
	}
}

func (h *handler) VerifyWallet(c *gin.Context) {
	var req dto.VerifyWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Missing required fields: walletAddress, message, signature", err.Error())
		return
	}

	result, err := h.executor.Authenticate(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	status, message := http.StatusOK, "Welcome back!"
	if result.IsNewUser {
		status, message = http.StatusCreated, "User created successfully!"
	}

	c.JSON(status, dto.AuthResponse{
		Success: true,
		Message: message,
		Token:   result.Token,
		User:    *result.User,
	})
}

func (h *handler) GetMe(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		respondNotFound(c, "User not found")
		return
	}

	c.JSON(http.StatusOK, dto.UserEnvelope{
		Success: true,
		User:    dto.MapUserToDTO(user),
	})
}

func (h *handler) GetUserByWalletAddress(c *gin.Context) {
	walletAddress := strings.TrimSpace(c.Param("walletAddress"))
	if walletAddress == "" {
		respondBadRequest(c, "Wallet address is required")
		return
	}

	user, err := h.executor.GetUserByWalletAddress(c.Request.Context(), walletAddress)
	if err != nil {
		respondError(c, err, zap.String("wallet_address", walletAddress))
		return
	}

	if user == nil {
		respondNotFound(c, "User not found")
		return
	}

	c.JSON(http.StatusOK, dto.UserEnvelope{Success: true, User: user})
}

func (h *handler) VerifyTransaction(c *gin.Context) {
	var req dto.VerifyTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Missing transaction hash", err.Error())
		return
	}

	result, err := h.executor.IngestTransaction(c.Request.Context(), middleware.CurrentUser(c), req)
	if err != nil {
		respondError(c, err, zap.String("tx_hash", req.TxHash))
		return
	}

	switch result.Outcome {
	case executor.IngestAlreadyRecorded:
		c.JSON(http.StatusOK, dto.TransactionEnvelope{
			Success:     true,
			Message:     "Transaction already recorded",
			Transaction: result.Transaction,
		})
	case executor.IngestFailedOnChain:
		c.JSON(http.StatusBadRequest, dto.TransactionEnvelope{
			Success:     false,
			Message:     "Transaction failed on blockchain",
			Transaction: result.Transaction,
		})
	default:
		c.JSON(http.StatusCreated, dto.TransactionEnvelope{
			Success:     true,
			Message:     "Transaction verified and stored successfully",
			Transaction: result.Transaction,
		})
	}
}

func (h *handler) ListTransactions(c *gin.Context) {
	queryParams, err := ParseListTransactionsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	user := middleware.CurrentUser(c)
	data, err := h.executor.ListTransactions(c.Request.Context(), user.ID, queryParams.ToExecutorParams())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TransactionListResponse{Success: true, Data: *data})
}

func (h *handler) GetTransaction(c *gin.Context) {
	txHash := c.Param("txHash")

	user := middleware.CurrentUser(c)
	txn, err := h.executor.GetTransaction(c.Request.Context(), user.ID, txHash)
	if err != nil {
		respondError(c, err, zap.String("tx_hash", txHash))
		return
	}

	if txn == nil {
		respondNotFound(c, "Transaction not found")
		return
	}

	c.JSON(http.StatusOK, dto.TransactionEnvelope{Success: true, Transaction: txn})
}

func (h *handler) GetTransactionStats(c *gin.Context) {
	user := middleware.CurrentUser(c)
	stats, err := h.executor.GetTransactionStats(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TransactionStatsResponse{Success: true, Stats: *stats})
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Success:   true,
		Status:    "ok",
		Timestamp: h.clock.Now(),
	})
}
