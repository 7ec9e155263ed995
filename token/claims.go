package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/jrsteele09/go-hr-console/internal/errors"
	"github.com/jrsteele09/go-hr-console/session"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

// ExpiryLeeway absorbs small clock skew between client and backend when
// deciding locally whether a token has expired.
const ExpiryLeeway = 5 * time.Second

// Claims is the payload the backend puts into both access and refresh tokens.
type Claims struct {
	// User is the profile embedded at issue time.
	User *session.User `json:"user,omitempty"`
	// Refresh is true for refresh tokens, false for access tokens.
	Refresh bool `json:"refresh,omitempty"`
	jwt.RegisteredClaims
}

// Inspect decodes a token payload without verifying the signature. The client
// never holds the signing secret - verification is the backend's job; the
// claims are only used for local decisions (expiry display, role hints).
func Inspect(raw string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(raw, claims); err != nil {
		return nil, apperrors.Wrapf(apperrors.ErrTokenMalformed, "parse token: %v", err)
	}
	return claims, nil
}

// Expired reports whether the token's exp claim is in the past. Tokens
// without an exp claim are treated as unexpired.
func (c *Claims) Expired() bool {
	if c.ExpiresAt == nil {
		return false
	}
	return NowTimeFunc().After(c.ExpiresAt.Time.Add(ExpiryLeeway))
}

// Username returns the username from the embedded profile, if any.
func (c *Claims) Username() string {
	if c.User == nil {
		return ""
	}
	return c.User.Username
}
