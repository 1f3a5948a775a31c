package solana

import (
	"context"
	"errors"
	"fmt"
	"time"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"

	"github.com/feral-file/wallet-ledger/internal/adapter"
	"github.com/feral-file/wallet-ledger/internal/domain"
	"github.com/feral-file/wallet-ledger/internal/logger"
)

// LedgerClient reads transactions from a Solana RPC node
//
//go:generate mockgen -source=client.go -destination=../../mocks/ledger_client.go -package=mocks -mock_names=LedgerClient=MockLedgerClient
type LedgerClient interface {
	// GetTransaction fetches a transaction by its base58 signature.
	// It returns domain.ErrLedgerTransactionNotFound when the node has no such transaction
	// and domain.ErrLedgerUnavailable when the lookup itself fails.
	GetTransaction(ctx context.Context, txHash string) (*domain.LedgerTransaction, error)
}

// Config holds the read options applied to every lookup
type Config struct {
	Commitment                     string
	MaxSupportedTransactionVersion uint64
}

type ledgerClient struct {
	rpc  adapter.SolanaRPC
	opts rpc.GetTransactionOpts
}

// NewLedgerClient creates a ledger client reading through rpcClient
func NewLedgerClient(rpcClient adapter.SolanaRPC, cfg Config) LedgerClient {
	commitment := rpc.CommitmentType(cfg.Commitment)
	if commitment == "" {
		commitment = rpc.CommitmentConfirmed
	}
	maxVersion := cfg.MaxSupportedTransactionVersion

	return &ledgerClient{
		rpc: rpcClient,
		opts: rpc.GetTransactionOpts{
			Encoding:                       solanago.EncodingBase64,
			Commitment:                     commitment,
			MaxSupportedTransactionVersion: &maxVersion,
		},
	}
}

func (c *ledgerClient) GetTransaction(ctx context.Context, txHash string) (*domain.LedgerTransaction, error) {
	sig, err := solanago.SignatureFromBase58(txHash)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid transaction hash: %v", domain.ErrLedgerUnavailable, err)
	}

	opts := c.opts
	result, err := c.rpc.GetTransaction(ctx, sig, &opts)
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return nil, domain.ErrLedgerTransactionNotFound
		}
		logger.WarnCtx(ctx, "Ledger RPC lookup failed", zap.String("tx_hash", txHash), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", domain.ErrLedgerUnavailable, err)
	}
	if result == nil {
		return nil, domain.ErrLedgerTransactionNotFound
	}

	return toLedgerTransaction(txHash, result)
}

// toLedgerTransaction flattens an RPC result. Account keys are the message's static keys
// followed by any addresses loaded from lookup tables, matching the balance arrays' order.
func toLedgerTransaction(txHash string, result *rpc.GetTransactionResult) (*domain.LedgerTransaction, error) {
	tx := &domain.LedgerTransaction{
		Signature: txHash,
		Slot:      result.Slot,
	}

	if result.BlockTime != nil {
		bt := time.Unix(int64(*result.BlockTime), 0).UTC()
		tx.BlockTime = &bt
	}

	if result.Transaction != nil {
		decoded, err := result.Transaction.GetTransaction()
		if err != nil {
			return nil, fmt.Errorf("%w: failed to decode transaction: %v", domain.ErrLedgerUnavailable, err)
		}
		if decoded != nil {
			for _, key := range decoded.Message.AccountKeys {
				tx.AccountKeys = append(tx.AccountKeys, key.String())
			}
		}
	}

	meta := result.Meta
	if meta == nil {
		return tx, nil
	}

	for _, key := range meta.LoadedAddresses.Writable {
		tx.AccountKeys = append(tx.AccountKeys, key.String())
	}
	for _, key := range meta.LoadedAddresses.ReadOnly {
		tx.AccountKeys = append(tx.AccountKeys, key.String())
	}

	tx.Err = meta.Err
	tx.Fee = meta.Fee
	tx.PreBalances = meta.PreBalances
	tx.PostBalances = meta.PostBalances
	tx.PreTokenBalances = toTokenBalances(meta.PreTokenBalances)
	tx.PostTokenBalances = toTokenBalances(meta.PostTokenBalances)
	tx.LogMessages = meta.LogMessages

	return tx, nil
}

func toTokenBalances(balances []rpc.TokenBalance) []domain.TokenBalance {
	if len(balances) == 0 {
		return nil
	}

	out := make([]domain.TokenBalance, 0, len(balances))
	for _, b := range balances {
		tb := domain.TokenBalance{
			AccountIndex: b.AccountIndex,
			Mint:         b.Mint.String(),
		}
		if b.UiTokenAmount != nil {
			tb.Amount = b.UiTokenAmount.Amount
			tb.Decimals = b.UiTokenAmount.Decimals
			tb.UIAmount = b.UiTokenAmount.UiAmount
			tb.UIAmountString = b.UiTokenAmount.UiAmountString
		}
		out = append(out, tb)
	}
	return out
}
