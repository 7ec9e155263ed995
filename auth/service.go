package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/jrsteele09/go-hr-console/httpapi"
	apperrors "github.com/jrsteele09/go-hr-console/internal/errors"
	"github.com/jrsteele09/go-hr-console/session"
)

// Service owns the authentication flows: login, logout, signup, password
// changes, and the admin account manager. It is the only writer of the
// session store in the happy path - the transport's refresh coordinator is
// the other one.
type Service struct {
	client *httpapi.Client
	store  session.Store
}

// NewService initializes the auth service over the shared request pipeline.
func NewService(client *httpapi.Client, store session.Store) (*Service, error) {
	if client == nil {
		return nil, errors.New("[NewService] client is required")
	}
	if store == nil {
		return nil, errors.New("[NewService] session store is required")
	}
	return &Service{client: client, store: store}, nil
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message      string        `json:"message"`
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	User         *session.User `json:"user"`
}

// Login exchanges credentials for a token pair and persists the whole
// session. A 401 from the login endpoint means bad credentials, not an
// expired session.
func (s *Service) Login(ctx context.Context, username, password string) (*session.User, error) {
	var resp loginResponse
	err := s.client.Post(ctx, httpapi.RouteAuthLogin, loginRequest{Username: username, Password: password}, &resp)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrUnauthenticated) || apperrors.Is(err, apperrors.ErrSessionExpired) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		return nil, fmt.Errorf("login response missing token pair")
	}

	if err := s.store.Save(resp.AccessToken, resp.RefreshToken, resp.User); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	log.Info().Str("username", username).Msg("logged in")
	return resp.User, nil
}

// Logout tells the backend the session is over and clears the local store
// regardless of whether that call succeeded.
func (s *Service) Logout(ctx context.Context) error {
	defer func() {
		if err := s.store.Clear(); err != nil {
			log.Error().Err(err).Msg("failed to clear session store")
		}
	}()

	if err := s.client.Post(ctx, httpapi.RouteAuthLogout, nil, nil); err != nil {
		log.Debug().Err(err).Msg("logout call failed, clearing local session anyway")
	}
	return nil
}

// Refresh forces a silent token refresh outside the 401 recovery path.
func (s *Service) Refresh(ctx context.Context) error {
	_, err := s.client.Refresh(ctx)
	return err
}

// CurrentUser returns the cached profile, or nil when anonymous.
func (s *Service) CurrentUser() *session.User {
	if s.store.AccessToken() == "" {
		return nil
	}
	return s.store.User()
}
