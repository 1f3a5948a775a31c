package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/feral-file/wallet-ledger/internal/adapter"
)

// DefaultTokenTTL is the validity window of a session token
const DefaultTokenTTL = 7 * 24 * time.Hour

// ErrInvalidToken is returned for any token that fails validation
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims are the session claims carried by a token
type Claims struct {
	UserID        uint64 `json:"userId"`
	WalletAddress string `json:"walletAddress"`
	jwt.RegisteredClaims
}

// TokenIssuer mints and validates HS256 session tokens
//
//go:generate mockgen -source=token.go -destination=../mocks/token_issuer.go -package=mocks -mock_names=TokenIssuer=MockTokenIssuer
type TokenIssuer interface {
	// Issue returns a signed token for the identity
	Issue(userID uint64, walletAddress string) (string, error)
	// Validate returns the claims of a well-formed, correctly signed, unexpired token
	// and ErrInvalidToken otherwise
	Validate(token string) (*Claims, error)
}

type tokenIssuer struct {
	secret []byte
	ttl    time.Duration
	clock  adapter.Clock
}

// NewTokenIssuer returns a TokenIssuer signing with secret. A non-positive ttl uses DefaultTokenTTL.
func NewTokenIssuer(secret string, ttl time.Duration, clock adapter.Clock) (TokenIssuer, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &tokenIssuer{
		secret: []byte(secret),
		ttl:    ttl,
		clock:  clock,
	}, nil
}

func (i *tokenIssuer) Issue(userID uint64, walletAddress string) (string, error) {
	now := i.clock.Now()
	claims := Claims{
		UserID:        userID,
		WalletAddress: walletAddress,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (i *tokenIssuer) Validate(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.clock.Now),
	)
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
