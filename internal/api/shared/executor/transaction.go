package executor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/feral-file/wallet-ledger/internal/api/shared/dto"
	apierrors "github.com/feral-file/wallet-ledger/internal/api/shared/errors"
	"github.com/feral-file/wallet-ledger/internal/domain"
	"github.com/feral-file/wallet-ledger/internal/logger"
	"github.com/feral-file/wallet-ledger/internal/metrics"
	"github.com/feral-file/wallet-ledger/internal/store"
	"github.com/feral-file/wallet-ledger/internal/store/schema"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

const msgNotOnLedger = "Transaction not found on blockchain"

func (e *executor) IngestTransaction(ctx context.Context, caller *schema.User, req dto.VerifyTransactionRequest) (*IngestResult, error) {
	txHash := strings.TrimSpace(req.TxHash)
	if txHash == "" {
		return nil, apierrors.NewBadRequestError("Missing transaction hash")
	}

	existing, err := e.store.GetTransactionByHash(ctx, txHash)
	if err != nil {
		metrics.RecordIngestion(metrics.IngestError)
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get transaction: %v", err))
	}
	if existing != nil {
		metrics.RecordIngestion(metrics.IngestAlreadyRecorded)
		return &IngestResult{Outcome: IngestAlreadyRecorded, Transaction: dto.MapTransactionToDTO(existing)}, nil
	}

	started := e.clock.Now()
	ledgerTx, err := e.ledger.GetTransaction(ctx, txHash)
	if err != nil {
		if errors.Is(err, domain.ErrLedgerTransactionNotFound) {
			metrics.ObserveLedgerLookup("not_found", e.clock.Since(started))
			metrics.RecordIngestion(metrics.IngestNotFound)
			return nil, apierrors.NewNotFoundError(msgNotOnLedger)
		}
		metrics.ObserveLedgerLookup("error", e.clock.Since(started))
		metrics.RecordIngestion(metrics.IngestLedgerError)
		return nil, apierrors.NewBadRequestError(msgNotOnLedger, err.Error())
	}
	metrics.ObserveLedgerLookup("ok", e.clock.Since(started))

	input, err := classify(caller, txHash, req, ledgerTx)
	if err != nil {
		metrics.RecordIngestion(metrics.IngestError)
		return nil, apierrors.NewInternalError(err.Error())
	}

	outcome := IngestCreated
	if input.Status == domain.TransactionStatusFailed {
		outcome = IngestFailedOnChain
	}

	created, err := e.store.CreateTransaction(ctx, input)
	if err != nil {
		if !errors.Is(err, domain.ErrTransactionAlreadyExists) {
			metrics.RecordIngestion(metrics.IngestError)
			return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to store transaction: %v", err))
		}

		// Lost a race with a concurrent ingestion of the same hash
		winner, err := e.store.GetTransactionByHash(ctx, txHash)
		if err != nil {
			metrics.RecordIngestion(metrics.IngestError)
			return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get transaction: %v", err))
		}
		if winner == nil {
			metrics.RecordIngestion(metrics.IngestError)
			return nil, apierrors.NewDatabaseError("Transaction vanished after duplicate insert")
		}
		logger.InfoCtx(ctx, "Concurrent ingestion resolved to existing record", zap.String("tx_hash", txHash))
		metrics.RecordIngestion(metrics.IngestAlreadyRecorded)
		return &IngestResult{Outcome: IngestAlreadyRecorded, Transaction: dto.MapTransactionToDTO(winner)}, nil
	}

	if outcome == IngestFailedOnChain {
		metrics.RecordIngestion(metrics.IngestFailedOnChain)
		logger.InfoCtx(ctx, "Recorded transaction failed on chain", zap.String("tx_hash", txHash), zap.Uint64("user_id", caller.ID))
	} else {
		metrics.RecordIngestion(metrics.IngestCreated)
		logger.InfoCtx(ctx, "Recorded confirmed transaction",
			zap.String("tx_hash", txHash),
			zap.Uint64("user_id", caller.ID),
			zap.String("type", string(input.Type)),
			zap.String("amount", input.Amount.String()))
	}

	return &IngestResult{Outcome: outcome, Transaction: dto.MapTransactionToDTO(created)}, nil
}

// classify turns a ledger transaction into the record to store. Amount ambiguity
// degrades to zero; it never fails the ingestion.
func classify(caller *schema.User, txHash string, req dto.VerifyTransactionRequest, tx *domain.LedgerTransaction) (store.CreateTransactionInput, error) {
	input := store.CreateTransactionInput{
		UserID:        caller.ID,
		WalletAddress: caller.WalletAddress,
		TxHash:        txHash,
		Type:          domain.TransactionKindNative,
		Amount:        decimal.Zero,
		Sender:        caller.WalletAddress,
		Recipient:     domain.UnknownRecipient,
	}

	var mint string
	if req.TokenMint != nil {
		mint = strings.TrimSpace(*req.TokenMint)
	}
	if mint != "" {
		input.Type = domain.TransactionKindToken
		input.TokenMint = &mint
	}
	if req.Recipient != nil && strings.TrimSpace(*req.Recipient) != "" {
		input.Recipient = strings.TrimSpace(*req.Recipient)
	}

	fee := tx.Fee
	slot := tx.Slot
	input.Fee = &fee
	input.Slot = &slot
	input.BlockTime = tx.BlockTime

	if tx.Failed() {
		meta, err := domain.NewErrorMetadata(tx.Err)
		if err != nil {
			return store.CreateTransactionInput{}, err
		}
		input.Status = domain.TransactionStatusFailed
		input.Metadata = meta
		return input, nil
	}

	if input.Type == domain.TransactionKindToken {
		input.Amount, input.TokenSymbol = domain.TokenTransferAmount(tx, mint)
	} else {
		input.Amount = domain.NativeTransferAmount(tx, caller.WalletAddress)
	}

	input.Status = domain.TransactionStatusConfirmed
	input.Metadata = domain.NewLogMetadata(tx.LogMessages)

	return input, nil
}

func (e *executor) ListTransactions(ctx context.Context, userID uint64, params ListTransactionsParams) (*dto.TransactionListData, error) {
	page := params.Page
	if page <= 0 {
		page = DefaultPage
	}
	limit := params.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	filter := store.TransactionQueryFilter{
		UserID: userID,
		Limit:  limit,
		Offset: uint64(page-1) * uint64(limit), //nolint:gosec,G115
	}

	if params.Status != nil && *params.Status != "" {
		status := domain.TransactionStatus(strings.ToLower(*params.Status))
		if !status.Valid() {
			return nil, apierrors.NewValidationError(fmt.Sprintf("invalid status %q", *params.Status))
		}
		filter.Status = &status
	}
	if params.Type != nil && *params.Type != "" {
		kind := domain.TransactionKind(strings.ToUpper(*params.Type))
		if !kind.Valid() {
			return nil, apierrors.NewValidationError(fmt.Sprintf("invalid type %q", *params.Type))
		}
		filter.Type = &kind
	}

	txns, total, err := e.store.ListTransactions(ctx, filter)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list transactions: %v", err))
	}

	return &dto.TransactionListData{
		Transactions: dto.MapTransactionsToDTO(txns),
		Pagination: dto.Pagination{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: (total + uint64(limit) - 1) / uint64(limit), //nolint:gosec,G115
		},
	}, nil
}

func (e *executor) GetTransaction(ctx context.Context, userID uint64, txHash string) (*dto.TransactionResponse, error) {
	txn, err := e.store.GetUserTransactionByHash(ctx, userID, strings.TrimSpace(txHash))
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get transaction: %v", err))
	}
	return dto.MapTransactionToDTO(txn), nil
}

func (e *executor) GetTransactionStats(ctx context.Context, userID uint64) (*dto.TransactionStats, error) {
	stats, err := e.store.GetTransactionStats(ctx, userID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get transaction stats: %v", err))
	}
	return &dto.TransactionStats{
		TotalTransactions: stats.Total,
		Confirmed:         stats.Confirmed,
		Pending:           stats.Pending,
		Failed:            stats.Failed,
		TotalVolume:       stats.Volume.String(),
	}, nil
}
