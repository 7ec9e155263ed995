package token_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	apperrors "github.com/jrsteele09/go-hr-console/internal/errors"
	"github.com/jrsteele09/go-hr-console/session"
	"github.com/jrsteele09/go-hr-console/token"
)

func signedToken(t *testing.T, user *session.User, expiresAt time.Time) string {
	t.Helper()
	claims := &token.Claims{
		User: user,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "jti-1",
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return raw
}

func TestInspectExtractsEmbeddedProfile(t *testing.T) {
	raw := signedToken(t, &session.User{ID: "u-1", Username: "hr_admin", Role: session.RoleAdmin}, time.Now().Add(time.Hour))

	claims, err := token.Inspect(raw)
	require.NoError(t, err)
	require.Equal(t, "hr_admin", claims.Username())
	require.True(t, claims.User.IsAdmin())
	require.False(t, claims.Expired())
}

func TestInspectRejectsMalformedToken(t *testing.T) {
	_, err := token.Inspect("not-a-jwt")
	require.ErrorIs(t, err, apperrors.ErrTokenMalformed)
}

func TestExpiredUsesLeeway(t *testing.T) {
	t.Cleanup(func() { token.NowTimeFunc = time.Now })

	now := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	token.NowTimeFunc = func() time.Time { return now }

	// Expired just inside the leeway window still counts as valid.
	claims, err := token.Inspect(signedToken(t, nil, now.Add(-3*time.Second)))
	require.NoError(t, err)
	require.False(t, claims.Expired())

	claims, err = token.Inspect(signedToken(t, nil, now.Add(-time.Minute)))
	require.NoError(t, err)
	require.True(t, claims.Expired())
}

func TestClaimsWithoutExpiryNeverExpire(t *testing.T) {
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &token.Claims{}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	claims, err := token.Inspect(raw)
	require.NoError(t, err)
	require.False(t, claims.Expired())
}
