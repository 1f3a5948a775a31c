package store

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/feral-file/wallet-ledger/internal/domain"
	"github.com/feral-file/wallet-ledger/internal/store/schema"
)

// CreateUserInput represents the data needed to register a wallet identity
type CreateUserInput struct {
	WalletAddress     string
	LastSignature     string
	LastSignedMessage string
	LoginAt           time.Time
}

// UpdateUserLoginInput records a successful authentication of an existing user
type UpdateUserLoginInput struct {
	UserID            uint64
	LastSignature     string
	LastSignedMessage string
	LoginAt           time.Time
}

// CreateTransactionInput represents a classified ledger transaction to persist
type CreateTransactionInput struct {
	UserID        uint64
	WalletAddress string
	TxHash        string
	Type          domain.TransactionKind
	TokenMint     *string
	TokenSymbol   *string
	Amount        decimal.Decimal
	Sender        string
	Recipient     string
	Status        domain.TransactionStatus
	BlockTime     *time.Time
	Slot          *uint64
	Fee           *uint64
	Metadata      domain.TransactionMetadata
}

// TransactionQueryFilter selects a page of a user's transactions, newest first
type TransactionQueryFilter struct {
	UserID uint64
	Status *domain.TransactionStatus
	Type   *domain.TransactionKind
	Limit  int
	Offset uint64
}

// TransactionStats aggregates a user's transactions
type TransactionStats struct {
	Total     uint64
	Confirmed uint64
	Pending   uint64
	Failed    uint64
	// Volume is the sum of confirmed SOL amounts
	Volume decimal.Decimal
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// GetUserByID retrieves a user by id, nil if absent
	GetUserByID(ctx context.Context, id uint64) (*schema.User, error)
	// GetUserByWalletAddress retrieves a user by canonical wallet address, nil if absent
	GetUserByWalletAddress(ctx context.Context, walletAddress string) (*schema.User, error)
	// CreateUser inserts a user; returns domain.ErrUserAlreadyExists when the address is taken
	CreateUser(ctx context.Context, input CreateUserInput) (*schema.User, error)
	// UpdateUserLogin overwrites the last proof of possession and login time
	UpdateUserLogin(ctx context.Context, input UpdateUserLoginInput) (*schema.User, error)

	// GetTransactionByHash retrieves a transaction by hash regardless of owner, nil if absent
	GetTransactionByHash(ctx context.Context, txHash string) (*schema.Transaction, error)
	// GetUserTransactionByHash retrieves a transaction by hash owned by userID, nil if absent
	GetUserTransactionByHash(ctx context.Context, userID uint64, txHash string) (*schema.Transaction, error)
	// CreateTransaction inserts a transaction; returns domain.ErrTransactionAlreadyExists when the hash is recorded
	CreateTransaction(ctx context.Context, input CreateTransactionInput) (*schema.Transaction, error)
	// ListTransactions returns a page of transactions and the total count matching the filter
	ListTransactions(ctx context.Context, filter TransactionQueryFilter) ([]*schema.Transaction, uint64, error)
	// GetTransactionStats aggregates counts by status and the confirmed SOL volume of a user
	GetTransactionStats(ctx context.Context, userID uint64) (*TransactionStats, error)
}
