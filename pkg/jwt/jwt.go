package jwt

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrInvalidClaim = errors.New("invalid token claims")
)

// SessionClaims are the claims carried by a Clerk session token
type SessionClaims struct {
	SessionID      string `json:"sid"`
	AuthorizedPart string `json:"azp,omitempty"`
	jwt.RegisteredClaims
}

// UserID returns the Clerk user the session belongs to
func (c *SessionClaims) UserID() string {
	return c.Subject
}

// SessionVerifier validates Clerk session tokens offline against the
// instance's PEM public key.
type SessionVerifier struct {
	publicKey *rsa.PublicKey
	issuer    string
}

// NewSessionVerifier parses the PEM public key. Clerk dashboards often hand
// out the key with literal "\n" sequences, so those are normalised first.
func NewSessionVerifier(publicKeyPEM, issuer string) (*SessionVerifier, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(publicKeyPEM), `\n`, "\n")
	if normalized == "" {
		return nil, fmt.Errorf("clerk public key is empty")
	}

	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(normalized))
	if err != nil {
		return nil, fmt.Errorf("failed to parse clerk public key: %w", err)
	}

	return &SessionVerifier{publicKey: key, issuer: issuer}, nil
}

// Verify validates the token signature, expiry and (optionally) issuer
func (v *SessionVerifier) Verify(tokenString string) (*SessionClaims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()})}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return v.publicKey, nil
	}, opts...)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		if errors.Is(err, jwt.ErrTokenInvalidIssuer) {
			return nil, ErrInvalidClaim
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Subject == "" {
		return nil, ErrInvalidClaim
	}

	return claims, nil
}
