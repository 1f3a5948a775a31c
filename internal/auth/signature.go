package auth

import (
	"github.com/gagliardetto/solana-go"
)

// VerifySignature reports whether signature (base58) is a valid Ed25519 signature
// of message by the key encoded in address (base58). Malformed input is reported as
// an invalid signature.
func VerifySignature(message, signature, address string) bool {
	pubkey, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return false
	}

	sig, err := solana.SignatureFromBase58(signature)
	if err != nil {
		return false
	}

	return sig.Verify(pubkey, []byte(message))
}
