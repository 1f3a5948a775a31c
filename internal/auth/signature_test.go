package auth

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifySignature(t *testing.T) {
	key, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)
	other, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)

	message := "Sign in to wallet ledger: nonce 42"
	sig, err := key.Sign([]byte(message))
	require.NoError(t, err)

	address := key.PublicKey().String()

	t.Run("valid signature", func(t *testing.T) {
		assert.True(t, VerifySignature(message, sig.String(), address))
	})

	t.Run("mutated signature bit", func(t *testing.T) {
		for _, bit := range []int{0, 7, 200, 511} {
			mutated := sig
			mutated[bit/8] ^= 1 << (bit % 8)
			assert.False(t, VerifySignature(message, mutated.String(), address), "bit %d", bit)
		}
	})

	t.Run("mutated message bit", func(t *testing.T) {
		msg := []byte(message)
		msg[3] ^= 0x01
		assert.False(t, VerifySignature(string(msg), sig.String(), address))
	})

	t.Run("mutated key bit", func(t *testing.T) {
		pub := key.PublicKey()
		pub[0] ^= 0x01
		assert.False(t, VerifySignature(message, sig.String(), pub.String()))
	})

	t.Run("different signer", func(t *testing.T) {
		assert.False(t, VerifySignature(message, sig.String(), other.PublicKey().String()))
	})

	t.Run("malformed input never panics", func(t *testing.T) {
		assert.False(t, VerifySignature(message, "not-base58-0OIl", address))
		assert.False(t, VerifySignature(message, sig.String(), "0x1234"))
		assert.False(t, VerifySignature(message, "", ""))
		assert.False(t, VerifySignature(message, "3yZe7d", address))
	})
}
