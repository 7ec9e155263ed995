package session

// Role represents an account role as reported by the backend.
type Role string

const (
	RoleAdmin Role = "admin" // Full access, including the account manager screens
	RoleUser  Role = "user"  // Regular HR operator
)

// User is the profile cached alongside the token pair. It mirrors the `user`
// object the backend returns from /auth/login.
type User struct {
	ID       string `json:"uid,omitempty"`      // Unique identifier for the account
	Username string `json:"username,omitempty"` // Unique username
	Role     Role   `json:"role,omitempty"`     // Account role ("admin" or "user")
}

// IsAdmin returns true if the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// Session is the full client-side credential state.
//
// Created on successful login, the access token is swapped in place on a
// successful silent refresh, and everything is cleared on logout or when a
// refresh attempt is exhausted.
type Session struct {
	AccessToken  string `json:"access_token,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
	User         *User  `json:"user,omitempty"`
}

// Anonymous reports whether the session should be treated as logged out.
// A missing access token means anonymous regardless of whether a refresh
// token or cached user profile is still around.
func (s Session) Anonymous() bool {
	return s.AccessToken == ""
}
