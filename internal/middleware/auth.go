package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hackflow/hackflow-api/internal/models"
	"github.com/hackflow/hackflow-api/pkg/jwt"
	"github.com/hackflow/hackflow-api/pkg/logger"
	"go.uber.org/zap"
)

const (
	// SessionCookieName is the cookie Clerk stores the session token in
	SessionCookieName = "__session"

	// SessionContextKey is the key used to store the session in context
	SessionContextKey = "clerk_session"
)

var (
	ErrSessionNotFound = errors.New("session not found in context")
	ErrInvalidSession  = errors.New("invalid session type")
)

// SessionVerifier validates a raw session token
type SessionVerifier interface {
	Verify(token string) (*jwt.SessionClaims, error)
}

// ClerkSessionMiddleware rejects requests without a valid Clerk session and
// stores the session in context
func ClerkSessionMiddleware(verifier SessionVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c)
		if token == "" {
			_ = c.Error(fmt.Errorf("missing session token")) //nolint:errcheck
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		session, err := verify(verifier, token)
		if err != nil {
			_ = c.Error(fmt.Errorf("invalid session token: %w", err)) //nolint:errcheck
			logger.Warn("Rejected session token",
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
				zap.Error(err),
			)

			if errors.Is(err, jwt.ErrExpiredToken) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired"})
			} else {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			}
			c.Abort()
			return
		}

		c.Set(SessionContextKey, session)
		c.Next()
	}
}

// OptionalSessionMiddleware stores the session when a valid token is present
// and lets anonymous requests through. verifier may be nil.
func OptionalSessionMiddleware(verifier SessionVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if verifier != nil {
			if token := sessionToken(c); token != "" {
				if session, err := verify(verifier, token); err == nil {
					c.Set(SessionContextKey, session)
				}
			}
		}
		c.Next()
	}
}

// GetSession extracts the session from context
func GetSession(c *gin.Context) (*models.Session, error) {
	val, exists := c.Get(SessionContextKey)
	if !exists {
		return nil, ErrSessionNotFound
	}

	session, ok := val.(*models.Session)
	if !ok {
		return nil, ErrInvalidSession
	}

	return session, nil
}

// sessionToken reads the token from the Clerk cookie or a bearer header
func sessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie
	}

	header := c.GetHeader("Authorization")
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}

func verify(verifier SessionVerifier, token string) (*models.Session, error) {
	claims, err := verifier.Verify(token)
	if err != nil {
		return nil, err
	}

	session := &models.Session{
		UserID:    claims.UserID(),
		SessionID: claims.SessionID,
	}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Unix()
	}
	if claims.IssuedAt != nil {
		session.IssuedAt = claims.IssuedAt.Unix()
	}
	return session, nil
}
