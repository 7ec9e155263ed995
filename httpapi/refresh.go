package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	apperrors "github.com/jrsteele09/go-hr-console/internal/errors"
)

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type refreshResponse struct {
	AccessToken string `json:"access_token"`
}

// refreshAccessToken trades the stored refresh token for a new access token.
//
// Concurrent 401s collapse onto a single in-flight refresh: the first caller
// performs the exchange, everyone else waits for the same result and replays
// with the token it produced. When the refresh token is missing or the
// exchange fails, the session is terminal - the store is cleared and the
// expiry hook fires exactly once for the whole cycle.
func (c *Client) refreshAccessToken(ctx context.Context) (string, error) {
	v, err, _ := c.refreshGroup.Do("refresh", func() (any, error) {
		accessToken, err := c.exchangeRefreshToken(ctx)
		if err != nil {
			c.expireSession(err)
			return nil, err
		}
		return accessToken, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", apperrors.ErrSessionExpired, err)
	}
	return v.(string), nil
}

// Refresh forces a token refresh outside the 401 recovery path.
func (c *Client) Refresh(ctx context.Context) (string, error) {
	return c.refreshAccessToken(ctx)
}

// exchangeRefreshToken calls the refresh endpoint with the refresh token as a
// JSON body field and persists the access token it returns. The refresh token
// itself is left unchanged - the backend does not rotate it. A 401 from this
// endpoint is a plain failure, never another refresh trigger.
func (c *Client) exchangeRefreshToken(ctx context.Context) (string, error) {
	refreshToken := c.store.RefreshToken()
	if refreshToken == "" {
		return "", apperrors.ErrNoRefreshToken
	}

	payload, err := marshalBody(refreshRequest{RefreshToken: refreshToken})
	if err != nil {
		return "", err
	}

	resp, data, err := c.roundTrip(ctx, http.MethodPost, RouteAuthRefreshToken, payload, "")
	if err != nil {
		return "", err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return "", newAPIError(resp, data)
	}

	var rr refreshResponse
	if err := json.Unmarshal(data, &rr); err != nil {
		return "", fmt.Errorf("decode refresh response: %w", err)
	}
	if rr.AccessToken == "" {
		return "", fmt.Errorf("refresh response carried no access token")
	}

	if err := c.store.SetAccessToken(rr.AccessToken); err != nil {
		return "", fmt.Errorf("persist refreshed access token: %w", err)
	}
	log.Debug().Msg("access token refreshed")
	return rr.AccessToken, nil
}

// expireSession ends the session after a failed refresh: all credentials are
// dropped and the navigation hook runs. Runs inside the single-flight group,
// so concurrent 401s trigger it once.
func (c *Client) expireSession(cause error) {
	log.Warn().Err(cause).Msg("refresh exhausted, ending session")
	if err := c.store.Clear(); err != nil {
		log.Error().Err(err).Msg("failed to clear session store")
	}
	if c.onSessionExpired != nil {
		c.onSessionExpired()
	}
}
