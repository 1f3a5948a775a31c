package executor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/wallet-ledger/internal/adapter"
	"github.com/feral-file/wallet-ledger/internal/api/shared/dto"
	apierrors "github.com/feral-file/wallet-ledger/internal/api/shared/errors"
	"github.com/feral-file/wallet-ledger/internal/auth"
	"github.com/feral-file/wallet-ledger/internal/domain"
	"github.com/feral-file/wallet-ledger/internal/logger"
	"github.com/feral-file/wallet-ledger/internal/metrics"
	"github.com/feral-file/wallet-ledger/internal/providers/solana"
	"github.com/feral-file/wallet-ledger/internal/store"
	"github.com/feral-file/wallet-ledger/internal/store/schema"
)

// AuthResult is the outcome of a successful wallet authentication
type AuthResult struct {
	Token     string
	User      *dto.UserResponse
	IsNewUser bool
}

// IngestOutcome distinguishes the successful results of an ingestion
type IngestOutcome int

const (
	// IngestCreated means a confirmed transaction was recorded
	IngestCreated IngestOutcome = iota
	// IngestAlreadyRecorded means the hash was recorded earlier and the stored record is returned
	IngestAlreadyRecorded
	// IngestFailedOnChain means the transaction carried a ledger error; it is recorded as failed
	IngestFailedOnChain
)

// IngestResult is the recorded transaction and how it came to be
type IngestResult struct {
	Outcome     IngestOutcome
	Transaction *dto.TransactionResponse
}

// ListTransactionsParams selects a page of the caller's transactions
type ListTransactionsParams struct {
	Page   int
	Limit  int
	Status *string
	Type   *string
}

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/mock_api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// Authenticate verifies a wallet signature, registers or updates the user and issues a session token
	Authenticate(ctx context.Context, req dto.VerifyWalletRequest) (*AuthResult, error)

	// GetUserByWalletAddress retrieves a user by wallet address, nil if absent
	GetUserByWalletAddress(ctx context.Context, walletAddress string) (*dto.UserResponse, error)

	// IngestTransaction fetches a transaction from the ledger and records it once
	IngestTransaction(ctx context.Context, caller *schema.User, req dto.VerifyTransactionRequest) (*IngestResult, error)

	// ListTransactions retrieves a page of the caller's transactions, newest first
	ListTransactions(ctx context.Context, userID uint64, params ListTransactionsParams) (*dto.TransactionListData, error)

	// GetTransaction retrieves one of the caller's transactions by hash, nil if absent
	GetTransaction(ctx context.Context, userID uint64, txHash string) (*dto.TransactionResponse, error)

	// GetTransactionStats summarizes the caller's transactions
	GetTransactionStats(ctx context.Context, userID uint64) (*dto.TransactionStats, error)
}

type executor struct {
	store  store.Store
	ledger solana.LedgerClient
	tokens auth.TokenIssuer
	clock  adapter.Clock
}

func NewExecutor(store store.Store, ledger solana.LedgerClient, tokens auth.TokenIssuer, clock adapter.Clock) Executor {
	return &executor{store: store, ledger: ledger, tokens: tokens, clock: clock}
}

func (e *executor) Authenticate(ctx context.Context, req dto.VerifyWalletRequest) (*AuthResult, error) {
	if strings.TrimSpace(req.WalletAddress) == "" || req.Message == "" || strings.TrimSpace(req.Signature) == "" {
		metrics.RecordAuth(metrics.AuthBadRequest)
		return nil, apierrors.NewBadRequestError("Missing required fields: walletAddress, message, signature")
	}

	// The signature is checked against the address as submitted; base58 is case sensitive
	if !auth.VerifySignature(req.Message, req.Signature, strings.TrimSpace(req.WalletAddress)) {
		metrics.RecordAuth(metrics.AuthInvalidSignature)
		logger.InfoCtx(ctx, "Rejected wallet signature", zap.String("wallet_address", req.WalletAddress))
		return nil, apierrors.NewUnauthorizedError("Invalid signature")
	}

	address := domain.NormalizeAddress(req.WalletAddress)
	now := e.clock.Now()

	user, isNew, err := e.upsertUser(ctx, address, req, now)
	if err != nil {
		metrics.RecordAuth(metrics.AuthError)
		return nil, err
	}

	token, err := e.tokens.Issue(user.ID, user.WalletAddress)
	if err != nil {
		metrics.RecordAuth(metrics.AuthError)
		return nil, apierrors.NewInternalError(fmt.Sprintf("Failed to issue token: %v", err))
	}

	if isNew {
		metrics.RecordAuth(metrics.AuthCreated)
	} else {
		metrics.RecordAuth(metrics.AuthReturning)
	}

	userDTO := dto.MapUserToDTO(user)
	userDTO.IsActive = nil
	userDTO.IsNewUser = &isNew

	return &AuthResult{Token: token, User: userDTO, IsNewUser: isNew}, nil
}

// upsertUser registers address on first login and otherwise overwrites the stored proof.
// A concurrent first login for the same address falls back to an update.
func (e *executor) upsertUser(ctx context.Context, address string, req dto.VerifyWalletRequest, now time.Time) (*schema.User, bool, error) {
	existing, err := e.store.GetUserByWalletAddress(ctx, address)
	if err != nil {
		return nil, false, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get user: %v", err))
	}

	if existing == nil {
		created, err := e.store.CreateUser(ctx, store.CreateUserInput{
			WalletAddress:     address,
			LastSignature:     req.Signature,
			LastSignedMessage: req.Message,
			LoginAt:           now,
		})
		if err == nil {
			logger.InfoCtx(ctx, "Registered new wallet", zap.String("wallet_address", address), zap.Uint64("user_id", created.ID))
			return created, true, nil
		}
		if !errors.Is(err, domain.ErrUserAlreadyExists) {
			return nil, false, apierrors.NewDatabaseError(fmt.Sprintf("Failed to create user: %v", err))
		}

		existing, err = e.store.GetUserByWalletAddress(ctx, address)
		if err != nil {
			return nil, false, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get user: %v", err))
		}
		if existing == nil {
			return nil, false, apierrors.NewDatabaseError("User vanished after duplicate insert")
		}
	}

	updated, err := e.store.UpdateUserLogin(ctx, store.UpdateUserLoginInput{
		UserID:            existing.ID,
		LastSignature:     req.Signature,
		LastSignedMessage: req.Message,
		LoginAt:           now,
	})
	if err != nil {
		return nil, false, apierrors.NewDatabaseError(fmt.Sprintf("Failed to update user: %v", err))
	}
	return updated, false, nil
}

func (e *executor) GetUserByWalletAddress(ctx context.Context, walletAddress string) (*dto.UserResponse, error) {
	user, err := e.store.GetUserByWalletAddress(ctx, domain.NormalizeAddress(walletAddress))
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get user: %v", err))
	}
	return dto.MapUserToDTO(user), nil
}
