// Package session holds the identity-provider session as an explicit
// object passed to collaborators, replacing any global auth state.
// Tokens are issued and refreshed by the identity provider; this layer
// only stores the current access token and exposes its claims.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNoSession      = errors.New("no active session")
	ErrSessionExpired = errors.New("session expired")
)

// Session is what the API client needs from the auth layer.
type Session interface {
	// Token returns the current bearer token. ErrNoSession when signed
	// out, ErrSessionExpired when the token's exp has passed.
	Token(ctx context.Context) (string, error)
	// Claims returns the identity baked into the current token.
	Claims() (Claims, bool)
	// OnChange registers a callback invoked after sign-in and sign-out.
	OnChange(fn func())
	// SignOut drops the session and notifies listeners.
	SignOut() error
}

// Claims is the subset of the identity provider's JWT the client uses.
type Claims struct {
	UserID    string
	Email     string
	ExpiresAt time.Time
}

func (c Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}

type rawClaims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// parseClaims decodes the token without verifying the signature.
// Verification belongs to the backend; the client only needs the
// identity and expiry for display and for skipping doomed requests.
func parseClaims(token string) (Claims, error) {
	raw := &rawClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(token, raw)
	if err != nil {
		return Claims{}, err
	}
	claims := Claims{
		UserID: raw.Subject,
		Email:  raw.Email,
	}
	if raw.ExpiresAt != nil {
		claims.ExpiresAt = raw.ExpiresAt.Time
	}
	return claims, nil
}
