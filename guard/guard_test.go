package guard_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/go-hr-console/guard"
	"github.com/jrsteele09/go-hr-console/session"
	"github.com/jrsteele09/go-hr-console/session/storefakes"
	"github.com/jrsteele09/go-hr-console/token"
)

func jwtExpiring(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	claims := &token.Claims{RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(expiresAt)}}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return raw
}

func TestRequireAuthenticated(t *testing.T) {
	store := storefakes.NewFakeStore()
	g := guard.RequireAuthenticated(store)

	// No token: redirected to the login screen.
	decision := g.Check()
	require.False(t, decision.Allowed)
	require.Equal(t, guard.RouteLogin, decision.RedirectTo)

	// Opaque token: presence is enough, the backend judges validity.
	require.NoError(t, store.Save("opaque-token", "", nil))
	require.True(t, g.Check().Allowed)

	// Locally expired JWT counts as anonymous.
	require.NoError(t, store.SetAccessToken(jwtExpiring(t, time.Now().Add(-time.Hour))))
	decision = g.Check()
	require.False(t, decision.Allowed)
	require.Equal(t, guard.RouteLogin, decision.RedirectTo)

	// Live JWT renders the screen.
	require.NoError(t, store.SetAccessToken(jwtExpiring(t, time.Now().Add(time.Hour))))
	require.True(t, g.Check().Allowed)
}

func TestRequireAnonymous(t *testing.T) {
	store := storefakes.NewFakeStore()
	g := guard.RequireAnonymous(store)

	require.True(t, g.Check().Allowed)

	require.NoError(t, store.Save("tok", "", nil))
	decision := g.Check()
	require.False(t, decision.Allowed)
	require.Equal(t, guard.RouteDashboard, decision.RedirectTo)
}

func TestRequireRoleImpliesAuthenticated(t *testing.T) {
	store := storefakes.NewFakeStore()
	g := guard.RequireRole(store, session.RoleAdmin)

	// Anonymous session goes to login regardless of any stale cached profile.
	require.NoError(t, store.Save("", "", &session.User{Username: "ghost", Role: session.RoleAdmin}))
	decision := g.Check()
	require.False(t, decision.Allowed)
	require.Equal(t, guard.RouteLogin, decision.RedirectTo)
}

func TestRequireRole(t *testing.T) {
	store := storefakes.NewFakeStore()
	g := guard.RequireRole(store, session.RoleAdmin)

	// Token but no cached profile: off to the dashboard.
	require.NoError(t, store.Save("tok", "", nil))
	decision := g.Check()
	require.False(t, decision.Allowed)
	require.Equal(t, guard.RouteDashboard, decision.RedirectTo)

	// Wrong role: off to the dashboard.
	require.NoError(t, store.Save("tok", "", &session.User{Username: "bob", Role: session.RoleUser}))
	require.Equal(t, guard.RouteDashboard, g.Check().RedirectTo)

	// Matching role renders the screen.
	require.NoError(t, store.Save("tok", "", &session.User{Username: "hr_admin", Role: session.RoleAdmin}))
	require.True(t, g.Check().Allowed)
}
