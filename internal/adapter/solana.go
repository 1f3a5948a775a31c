package adapter

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// SolanaRPC is the subset of the Solana JSON-RPC client used by the ledger provider
//
//go:generate mockgen -source=solana.go -destination=../mocks/solana.go -package=mocks -mock_names=SolanaRPC=MockSolanaRPC
type SolanaRPC interface {
	GetTransaction(ctx context.Context, txSig solana.Signature, opts *rpc.GetTransactionOpts) (*rpc.GetTransactionResult, error)
}

// NewSolanaRPC returns a JSON-RPC client for endpoint
func NewSolanaRPC(endpoint string) SolanaRPC {
	return rpc.New(endpoint)
}
