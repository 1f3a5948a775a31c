package dto

import (
	"time"

	"github.com/feral-file/wallet-ledger/internal/domain"
)

// UserResponse is the public view of a user
type UserResponse struct {
	WalletAddress string    `json:"walletAddress"`
	CreatedAt     time.Time `json:"createdAt"`
	LastLoginAt   time.Time `json:"lastLoginAt"`
	IsActive      *bool     `json:"isActive,omitempty"`
	IsNewUser     *bool     `json:"isNewUser,omitempty"`
}

// AuthResponse is returned after a successful wallet signature verification
type AuthResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

// UserEnvelope wraps a single user
type UserEnvelope struct {
	Success bool          `json:"success"`
	User    *UserResponse `json:"user"`
}

// TransactionResponse is the public view of a recorded transaction
type TransactionResponse struct {
	ID            uint64                     `json:"id"`
	WalletAddress string                     `json:"walletAddress"`
	TxHash        string                     `json:"txHash"`
	Type          domain.TransactionKind     `json:"type"`
	TokenMint     *string                    `json:"tokenMint,omitempty"`
	TokenSymbol   *string                    `json:"tokenSymbol,omitempty"`
	Amount        string                     `json:"amount"`
	Sender        string                     `json:"sender"`
	Recipient     string                     `json:"recipient"`
	Status        domain.TransactionStatus   `json:"status"`
	BlockTime     *time.Time                 `json:"blockTime,omitempty"`
	Slot          *uint64                    `json:"slot,omitempty"`
	Fee           *uint64                    `json:"fee,omitempty"`
	Metadata      domain.TransactionMetadata `json:"metadata"`
	CreatedAt     time.Time                  `json:"createdAt"`
	UpdatedAt     time.Time                  `json:"updatedAt"`
}

// TransactionEnvelope wraps a single transaction
type TransactionEnvelope struct {
	Success     bool                 `json:"success"`
	Message     string               `json:"message,omitempty"`
	Transaction *TransactionResponse `json:"transaction"`
}

// Pagination describes a page of a listing
type Pagination struct {
	Total      uint64 `json:"total"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	TotalPages uint64 `json:"totalPages"`
}

// TransactionListData is a page of transactions
type TransactionListData struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   Pagination            `json:"pagination"`
}

// TransactionListResponse wraps a page of transactions
type TransactionListResponse struct {
	Success bool                `json:"success"`
	Data    TransactionListData `json:"data"`
}

// TransactionStats summarizes a user's transactions
type TransactionStats struct {
	TotalTransactions uint64 `json:"totalTransactions"`
	Confirmed         uint64 `json:"confirmed"`
	Pending           uint64 `json:"pending"`
	Failed            uint64 `json:"failed"`
	// TotalVolume is the sum of confirmed SOL amounts
	TotalVolume string `json:"totalVolume"`
}

// TransactionStatsResponse wraps TransactionStats
type TransactionStatsResponse struct {
	Success bool             `json:"success"`
	Stats   TransactionStats `json:"stats"`
}

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Success   bool      `json:"success"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
