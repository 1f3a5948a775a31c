package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/wallet-ledger/internal/adapter"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer, err := NewTokenIssuer("test-secret", 0, adapter.NewClock())
	require.NoError(t, err)

	token, err := issuer.Issue(42, "wallet-address")
	require.NoError(t, err)

	claims, err := issuer.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.Equal(t, "wallet-address", claims.WalletAddress)
	require.NotNil(t, claims.ExpiresAt)
	require.NotNil(t, claims.IssuedAt)
	assert.Equal(t, DefaultTokenTTL, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

// fixedClock pins Now to a settable instant
type fixedClock struct {
	adapter.Clock
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

func TestTokenIssuer_Expiry(t *testing.T) {
	issuedAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := &fixedClock{Clock: adapter.NewClock(), now: issuedAt}

	issuer, err := NewTokenIssuer("test-secret", time.Hour, clock)
	require.NoError(t, err)

	token, err := issuer.Issue(1, "addr")
	require.NoError(t, err)

	clock.now = issuedAt.Add(59 * time.Minute)
	claims, err := issuer.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), claims.UserID)

	clock.now = issuedAt.Add(2 * time.Hour)
	claims, err = issuer.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestTokenIssuer_DefaultTTL(t *testing.T) {
	issuedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := &fixedClock{Clock: adapter.NewClock(), now: issuedAt}

	issuer, err := NewTokenIssuer("test-secret", 0, clock)
	require.NoError(t, err)
	token, err := issuer.Issue(9, "addr")
	require.NoError(t, err)

	clock.now = issuedAt.Add(DefaultTokenTTL - time.Minute)
	_, err = issuer.Validate(token)
	require.NoError(t, err)

	clock.now = issuedAt.Add(DefaultTokenTTL + time.Minute)
	_, err = issuer.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_Rejects(t *testing.T) {
	issuer, err := NewTokenIssuer("test-secret", time.Hour, adapter.NewClock())
	require.NoError(t, err)
	rotated, err := NewTokenIssuer("rotated-secret", time.Hour, adapter.NewClock())
	require.NoError(t, err)

	token, err := issuer.Issue(7, "addr")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not.a.token"},
		{name: "tampered payload", token: parts[0] + "." + parts[1] + "x." + parts[2]},
		{name: "unsigned", token: parts[0] + "." + parts[1] + "."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := issuer.Validate(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}

	t.Run("secret rotation invalidates tokens", func(t *testing.T) {
		_, err := rotated.Validate(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing secret", func(t *testing.T) {
		_, err := NewTokenIssuer("", time.Hour, adapter.NewClock())
		assert.Error(t, err)
	})
}
