package auth

import (
	"context"
	"time"

	"github.com/jrsteele09/go-hr-console/httpapi"
)

// Account is a backend login account as listed by the admin account manager.
type Account struct {
	UID       string    `json:"uid"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Verified  bool      `json:"is_verified"`
	CreatedAt time.Time `json:"created_at"`
}

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// Signup creates a new login account. Admin-only on the backend.
func (s *Service) Signup(ctx context.Context, username, email, password string) error {
	return s.client.Post(ctx, httpapi.RouteAuthSignup, signupRequest{
		Username: username,
		Email:    email,
		Password: password,
	}, nil)
}

// ChangePassword rotates the current account's password.
func (s *Service) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	return s.client.Post(ctx, httpapi.RouteAuthChangePassword, changePasswordRequest{
		OldPassword: oldPassword,
		NewPassword: newPassword,
	}, nil)
}

// ListAccounts returns every login account.
func (s *Service) ListAccounts(ctx context.Context) ([]Account, error) {
	var accounts []Account
	if err := s.client.Get(ctx, httpapi.RouteAuthUsers, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// VerifyAccount marks an account as verified.
func (s *Service) VerifyAccount(ctx context.Context, uid string) error {
	return s.client.Patch(ctx, httpapi.RouteAuthUsers+uid+"/verify", nil, nil)
}

// DeleteAccount removes a login account.
func (s *Service) DeleteAccount(ctx context.Context, uid string) error {
	return s.client.Delete(ctx, httpapi.RouteAuthUsers+uid, nil)
}
