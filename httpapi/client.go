package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"github.com/jrsteele09/go-hr-console/session"
)

const defaultRequestTimeout = 15 * time.Second

// Client is the single request pipeline every feature service speaks through.
// It resolves relative paths against the base URL, runs the middleware chain
// on each outgoing request, and recovers a 401 once per call via a silent
// refresh before the caller sees any error.
type Client struct {
	baseURL          string
	httpClient       *http.Client
	store            session.Store
	middleware       []Middleware
	timeout          time.Duration
	onSessionExpired func()

	refreshGroup singleflight.Group
}

// ClientOption defines a function type to modify the Client instance.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying transport (primarily for testing).
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = h }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.timeout = d }
}

// WithOnSessionExpired sets the hook fired when a refresh attempt is
// exhausted - the console's equivalent of a hard redirect to the login
// screen. It runs exactly once per failed refresh cycle, after the store
// has been cleared.
func WithOnSessionExpired(fn func()) ClientOption {
	return func(c *Client) { c.onSessionExpired = fn }
}

// WithMiddleware appends extra stages after the default chain.
func WithMiddleware(mw ...Middleware) ClientOption {
	return func(c *Client) { c.middleware = append(c.middleware, mw...) }
}

// NewClient creates the shared pipeline. The default middleware chain is
// JSON headers, a request ID, and bearer injection reading the store fresh
// on every call.
func NewClient(baseURL string, store session.Store, options ...ClientOption) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("[NewClient] base URL is required")
	}
	if store == nil {
		return nil, errors.New("[NewClient] session store is required")
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		store:      store,
		timeout:    defaultRequestTimeout,
	}
	c.middleware = []Middleware{JSONHeaders(), RequestID(), BearerAuth(store)}

	for _, opt := range options {
		opt(c)
	}
	return c, nil
}

// Store exposes the session store the client was built around.
func (c *Client) Store() session.Store {
	return c.store
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}

// do runs one logical call: round trip, at most one silent refresh-and-replay
// on a 401, then decode. The replay result is never intercepted again, so a
// request that keeps returning 401 after a successful refresh surfaces that
// 401 to the caller instead of looping.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	payload, err := marshalBody(body)
	if err != nil {
		return err
	}

	resp, data, err := c.roundTrip(ctx, method, path, payload, "")
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized && path != RouteAuthRefreshToken {
		newToken, refreshErr := c.refreshAccessToken(ctx)
		if refreshErr != nil {
			return refreshErr
		}
		log.Debug().Str("method", method).Str("path", path).Msg("replaying request with refreshed token")
		resp, data, err = c.roundTrip(ctx, method, path, payload, newToken)
		if err != nil {
			return err
		}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return newAPIError(resp, data)
	}
	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode %s %s response: %w", method, path, err)
		}
	}
	return nil
}

// roundTrip performs a single HTTP exchange. overrideToken, when non-empty,
// is stamped onto the request after the middleware chain so a replay carries
// the token the refresh produced even if the store changes again underneath.
func (c *Client) roundTrip(ctx context.Context, method, path string, payload []byte, overrideToken string) (*http.Response, []byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, nil, fmt.Errorf("build %s %s request: %w", method, path, err)
	}

	req = ChainMiddleware(req, c.middleware...)
	if overrideToken != "" {
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", "Bearer "+overrideToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s %s response: %w", method, path, err)
	}

	log.Debug().Str("method", method).Str("path", path).Int("status", resp.StatusCode).Msg("request completed")
	return resp, data, nil
}

func marshalBody(body any) ([]byte, error) {
	if body == nil {
		return nil, nil
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request body: %w", err)
	}
	return payload, nil
}
