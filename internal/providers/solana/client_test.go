package solana_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/wallet-ledger/internal/domain"
	"github.com/feral-file/wallet-ledger/internal/logger"
	"github.com/feral-file/wallet-ledger/internal/mocks"
	"github.com/feral-file/wallet-ledger/internal/providers/solana"
)

var testTxHash = func() string {
	sig, err := solanago.NewWallet().PrivateKey.Sign([]byte("ledger client test"))
	if err != nil {
		panic(err)
	}
	return sig.String()
}()

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: true}); err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	m.Run()
}

// encodedTransfer returns a base64 wire transaction moving lamports from -> to
func encodedTransfer(t *testing.T, from, to solanago.PublicKey) string {
	t.Helper()
	tx, err := solanago.NewTransaction(
		[]solanago.Instruction{system.NewTransferInstruction(500_000_000, from, to).Build()},
		solanago.Hash{},
		solanago.TransactionPayer(from),
	)
	require.NoError(t, err)

	raw, err := tx.MarshalBinary()
	require.NoError(t, err)
	return base64.StdEncoding.EncodeToString(raw)
}

func rpcResult(t *testing.T, payload string) *rpc.GetTransactionResult {
	t.Helper()
	var result rpc.GetTransactionResult
	require.NoError(t, json.Unmarshal([]byte(payload), &result))
	return &result
}

func TestLedgerClient_GetTransaction(t *testing.T) {
	from := solanago.NewWallet().PublicKey()
	to := solanago.NewWallet().PublicKey()
	mint := solanago.MustPublicKeyFromBase58("EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v")

	t.Run("confirmed transfer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rpcClient := mocks.NewMockSolanaRPC(ctrl)

		payload := fmt.Sprintf(`{
			"slot": 245001,
			"blockTime": 1700000000,
			"transaction": [%q, "base64"],
			"meta": {
				"err": null,
				"fee": 5000,
				"preBalances": [1000000000, 0, 1],
				"postBalances": [499995000, 500000000, 1],
				"preTokenBalances": [],
				"postTokenBalances": [{
					"accountIndex": 1,
					"mint": %q,
					"uiTokenAmount": {"amount": "1500000", "decimals": 6, "uiAmount": 1.5, "uiAmountString": "1.5"}
				}],
				"logMessages": ["Program 11111111111111111111111111111111 invoke [1]", "Program 11111111111111111111111111111111 success"],
				"loadedAddresses": {"readonly": [], "writable": []}
			}
		}`, encodedTransfer(t, from, to), mint.String())

		rpcClient.EXPECT().
			GetTransaction(gomock.Any(), solanago.MustSignatureFromBase58(testTxHash), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ solanago.Signature, opts *rpc.GetTransactionOpts) (*rpc.GetTransactionResult, error) {
				assert.Equal(t, rpc.CommitmentConfirmed, opts.Commitment)
				assert.Equal(t, solanago.EncodingBase64, opts.Encoding)
				require.NotNil(t, opts.MaxSupportedTransactionVersion)
				return rpcResult(t, payload), nil
			})

		client := solana.NewLedgerClient(rpcClient, solana.Config{})
		tx, err := client.GetTransaction(context.Background(), testTxHash)
		require.NoError(t, err)

		assert.Equal(t, testTxHash, tx.Signature)
		assert.Equal(t, uint64(245001), tx.Slot)
		require.NotNil(t, tx.BlockTime)
		assert.Equal(t, int64(1700000000), tx.BlockTime.Unix())
		assert.False(t, tx.Failed())
		assert.Equal(t, uint64(5000), tx.Fee)
		require.GreaterOrEqual(t, len(tx.AccountKeys), 2)
		assert.Equal(t, from.String(), tx.AccountKeys[0])
		assert.Equal(t, to.String(), tx.AccountKeys[1])
		assert.Equal(t, []uint64{1000000000, 0, 1}, tx.PreBalances)
		require.Len(t, tx.PostTokenBalances, 1)
		assert.Equal(t, mint.String(), tx.PostTokenBalances[0].Mint)
		assert.Equal(t, "1500000", tx.PostTokenBalances[0].Amount)
		assert.Equal(t, uint8(6), tx.PostTokenBalances[0].Decimals)
		assert.Len(t, tx.LogMessages, 2)

		assert.Equal(t, "0.5", domain.NativeTransferAmount(tx, from.String()).String())
	})

	t.Run("failed on chain", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rpcClient := mocks.NewMockSolanaRPC(ctrl)

		payload := `{"slot": 7, "meta": {"err": {"InstructionError": [0, {"Custom": 1}]}, "fee": 5000, "preBalances": [], "postBalances": []}}`
		rpcClient.EXPECT().GetTransaction(gomock.Any(), gomock.Any(), gomock.Any()).Return(rpcResult(t, payload), nil)

		tx, err := solana.NewLedgerClient(rpcClient, solana.Config{Commitment: "finalized"}).GetTransaction(context.Background(), testTxHash)
		require.NoError(t, err)
		assert.True(t, tx.Failed())
		assert.Nil(t, tx.BlockTime)
		assert.Equal(t, uint64(5000), tx.Fee)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rpcClient := mocks.NewMockSolanaRPC(ctrl)
		rpcClient.EXPECT().GetTransaction(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, rpc.ErrNotFound)

		_, err := solana.NewLedgerClient(rpcClient, solana.Config{}).GetTransaction(context.Background(), testTxHash)
		assert.ErrorIs(t, err, domain.ErrLedgerTransactionNotFound)
	})

	t.Run("rpc failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rpcClient := mocks.NewMockSolanaRPC(ctrl)
		rpcClient.EXPECT().GetTransaction(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))

		_, err := solana.NewLedgerClient(rpcClient, solana.Config{}).GetTransaction(context.Background(), testTxHash)
		assert.ErrorIs(t, err, domain.ErrLedgerUnavailable)
	})

	t.Run("malformed hash never reaches the node", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rpcClient := mocks.NewMockSolanaRPC(ctrl)

		_, err := solana.NewLedgerClient(rpcClient, solana.Config{}).GetTransaction(context.Background(), "0xdeadbeef")
		assert.ErrorIs(t, err, domain.ErrLedgerUnavailable)
	})
}
