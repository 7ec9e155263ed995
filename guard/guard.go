package guard

import (
	"github.com/jrsteele09/go-hr-console/session"
	"github.com/jrsteele09/go-hr-console/token"
)

// Console route constants guards redirect to.
const (
	RouteLogin     = "/login"
	RouteDashboard = "/dashboard"
)

// Decision is the outcome of a navigation-time check: either the target may
// render, or the user is sent to RedirectTo instead.
type Decision struct {
	Allowed    bool
	RedirectTo string
}

func allow() Decision {
	return Decision{Allowed: true}
}

func redirect(to string) Decision {
	return Decision{RedirectTo: to}
}

// Guard decides, synchronously and from the session store alone, whether a
// navigation target may render.
type Guard interface {
	Check() Decision
}

type authenticatedGuard struct {
	store session.Store
}

// RequireAuthenticated keeps anonymous users away from protected screens.
// A stored JWT that has already expired locally counts as anonymous; a token
// that does not parse as a JWT is treated as opaque and left for the backend
// to judge.
func RequireAuthenticated(store session.Store) Guard {
	return authenticatedGuard{store: store}
}

func (g authenticatedGuard) Check() Decision {
	if !authenticated(g.store) {
		return redirect(RouteLogin)
	}
	return allow()
}

type anonymousGuard struct {
	store session.Store
}

// RequireAnonymous keeps logged-in users off the login screen.
func RequireAnonymous(store session.Store) Guard {
	return anonymousGuard{store: store}
}

func (g anonymousGuard) Check() Decision {
	if g.store.AccessToken() != "" {
		return redirect(RouteDashboard)
	}
	return allow()
}

type roleGuard struct {
	store session.Store
	role  session.Role
}

// RequireRole gates a screen by account role. It implies RequireAuthenticated:
// an anonymous session goes to the login screen before the role is even
// consulted, so a stale cached profile alone never opens an admin screen.
func RequireRole(store session.Store, role session.Role) Guard {
	return roleGuard{store: store, role: role}
}

func (g roleGuard) Check() Decision {
	if !authenticated(g.store) {
		return redirect(RouteLogin)
	}
	user := g.store.User()
	if user == nil || user.Role != g.role {
		return redirect(RouteDashboard)
	}
	return allow()
}

func authenticated(store session.Store) bool {
	accessToken := store.AccessToken()
	if accessToken == "" {
		return false
	}
	if claims, err := token.Inspect(accessToken); err == nil && claims.Expired() {
		return false
	}
	return true
}
