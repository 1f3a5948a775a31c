package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/wallet-ledger/internal/api/shared/errors"
	"github.com/feral-file/wallet-ledger/internal/auth"
	"github.com/feral-file/wallet-ledger/internal/logger"
	"github.com/feral-file/wallet-ledger/internal/store/schema"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	CURRENT_USER_KEY contextKey = "current_user"
	JWT_CLAIMS_KEY   contextKey = "jwt_claims"
)

const bearerPrefix = "Bearer "

// UserResolver looks up the user a token was issued to
type UserResolver interface {
	GetUserByID(ctx context.Context, id uint64) (*schema.User, error)
}

// AuthResult holds the result of authentication
type AuthResult struct {
	Success bool
	Claims  *auth.Claims
	User    *schema.User
	// Message is the client facing reason for a failure
	Message string
	Error   error
}

// Authenticate validates the Authorization header and resolves the session's user
func Authenticate(ctx context.Context, authHeader string, tokens auth.TokenIssuer, users UserResolver) AuthResult {
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return AuthResult{Message: "No token provided", Error: errors.New("missing bearer token")}
	}

	token := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
	if token == "" {
		return AuthResult{Message: "No token provided", Error: errors.New("empty bearer token")}
	}

	claims, err := tokens.Validate(token)
	if err != nil {
		return AuthResult{Message: "Invalid or expired token", Error: err}
	}

	user, err := users.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return AuthResult{Message: "Authentication failed", Error: fmt.Errorf("failed to resolve user: %w", err)}
	}
	if user == nil {
		return AuthResult{Message: "User not found", Error: fmt.Errorf("no user with id %d", claims.UserID)}
	}

	return AuthResult{Success: true, Claims: claims, User: user}
}

// Auth returns a gin middleware that requires a valid session token and
// attaches the session's user to the request
func Auth(tokens auth.TokenIssuer, users UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := authenticateRecovered(c, tokens, users)
		if !result.Success {
			logger.WarnCtx(c.Request.Context(), "Authentication failed",
				zap.Error(result.Error),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierrors.NewUnauthorizedError(result.Message))
			return
		}

		c.Set(string(JWT_CLAIMS_KEY), result.Claims)
		c.Set(string(CURRENT_USER_KEY), result.User)
		logger.DebugCtx(c.Request.Context(), "Session authentication successful",
			zap.String("path", c.Request.URL.Path),
			zap.Uint64("user_id", result.User.ID),
		)

		c.Next()
	}
}

// authenticateRecovered turns a panic inside token validation or user lookup into a
// failed authentication. Handlers run after it and are not covered.
func authenticateRecovered(c *gin.Context, tokens auth.TokenIssuer, users UserResolver) (result AuthResult) {
	defer func() {
		if r := recover(); r != nil {
			result = AuthResult{
				Message: "Authentication failed",
				Error:   fmt.Errorf("panic during authentication: %v", r),
			}
		}
	}()

	return Authenticate(c.Request.Context(), c.GetHeader("Authorization"), tokens, users)
}

// CurrentUser returns the user attached by Auth, nil outside an authenticated route
func CurrentUser(c *gin.Context) *schema.User {
	v, ok := c.Get(string(CURRENT_USER_KEY))
	if !ok {
		return nil
	}
	user, _ := v.(*schema.User)
	return user
}
