package session

// Store holds the token pair and cached user profile between requests.
//
// Reads always reflect the latest write - the transport reads the access token
// fresh on every outgoing request, so a refresh mid-session is picked up by
// the next call without reconfiguring anything.
type Store interface {
	// Save overwrites the whole session in one shot (login).
	Save(accessToken, refreshToken string, user *User) error

	// SetAccessToken swaps only the access token (silent refresh). The
	// refresh token and user profile are left untouched.
	SetAccessToken(accessToken string) error

	AccessToken() string
	RefreshToken() string
	User() *User

	// Clear removes all session fields. Clearing an empty store is a no-op.
	Clear() error
}
