package domain

import (
	"strings"
	"time"
)

// TransactionKind classifies a recorded transfer
type TransactionKind string

const (
	TransactionKindNative TransactionKind = "SOL"
	TransactionKindToken  TransactionKind = "SPL_TOKEN"
)

// Valid reports whether k is a known kind
func (k TransactionKind) Valid() bool {
	return k == TransactionKindNative || k == TransactionKindToken
}

// TransactionStatus is the recorded outcome of a transaction.
// Ingestion only writes confirmed or failed; pending is reserved for a submit-then-confirm flow.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusConfirmed TransactionStatus = "confirmed"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// Valid reports whether s is a known status
func (s TransactionStatus) Valid() bool {
	switch s {
	case TransactionStatusPending, TransactionStatusConfirmed, TransactionStatusFailed:
		return true
	}
	return false
}

// NormalizeAddress returns the canonical (lowercase) form of a wallet address
func NormalizeAddress(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

// TokenBalance is a token account balance reported by the ledger before or after a transaction
type TokenBalance struct {
	AccountIndex   uint16
	Mint           string
	Amount         string // raw integer amount in base units
	Decimals       uint8
	UIAmount       *float64
	UIAmountString string
}

// LedgerTransaction is the normalized view of a transaction fetched from the ledger RPC
type LedgerTransaction struct {
	Signature         string
	Slot              uint64
	BlockTime         *time.Time
	AccountKeys       []string
	Fee               uint64
	Err               any // on-chain execution error, nil on success
	PreBalances       []uint64
	PostBalances      []uint64
	PreTokenBalances  []TokenBalance
	PostTokenBalances []TokenBalance
	LogMessages       []string
}

// Failed reports whether the ledger recorded an execution error for the transaction
func (t *LedgerTransaction) Failed() bool {
	return t.Err != nil
}
