package httpapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/go-hr-console/httpapi"
	apperrors "github.com/jrsteele09/go-hr-console/internal/errors"
	"github.com/jrsteele09/go-hr-console/session"
	"github.com/jrsteele09/go-hr-console/session/storefakes"
)

const (
	oldAccessToken  = "old-access-token"
	newAccessToken  = "new-access-token"
	refreshTokenVal = "refresh-token-1"
)

// testBackend is a fake HR backend that serves the refresh endpoint and a
// protected resource which rejects anything but wantToken.
type testBackend struct {
	server       *httptest.Server
	refreshCalls atomic.Int32
	refreshDelay time.Duration
	refreshFails bool

	lock       sync.Mutex
	authSeen   []string // Authorization headers observed on /employee/
	wantBearer string
}

func newTestBackend(t *testing.T) *testBackend {
	t.Helper()
	b := &testBackend{wantBearer: "Bearer " + newAccessToken}

	mux := http.NewServeMux()
	mux.HandleFunc(httpapi.RouteAuthRefreshToken, func(w http.ResponseWriter, r *http.Request) {
		b.refreshCalls.Add(1)
		if b.refreshDelay > 0 {
			time.Sleep(b.refreshDelay)
		}
		if b.refreshFails {
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(map[string]string{"detail": "refresh token revoked"})
			return
		}
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, refreshTokenVal, body["refresh_token"])
		json.NewEncoder(w).Encode(map[string]string{"access_token": newAccessToken})
	})
	mux.HandleFunc(httpapi.RouteEmployees, func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		b.lock.Lock()
		b.authSeen = append(b.authSeen, auth)
		b.lock.Unlock()
		if auth != b.wantBearer {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"detail": "Token has expired"})
			return
		}
		json.NewEncoder(w).Encode([]map[string]any{{"EmployeeName": "Alice"}})
	})

	b.server = httptest.NewServer(mux)
	t.Cleanup(b.server.Close)
	return b
}

func (b *testBackend) seenAuth() []string {
	b.lock.Lock()
	defer b.lock.Unlock()
	return append([]string(nil), b.authSeen...)
}

func newTestClient(t *testing.T, backend *testBackend, store session.Store, options ...httpapi.ClientOption) *httpapi.Client {
	t.Helper()
	client, err := httpapi.NewClient(backend.server.URL, store, options...)
	require.NoError(t, err)
	return client
}

func TestNewClientValidation(t *testing.T) {
	_, err := httpapi.NewClient("", storefakes.NewFakeStore())
	require.Error(t, err)

	_, err = httpapi.NewClient("http://localhost:8000", nil)
	require.Error(t, err)
}

func TestRequestWithoutTokenIsUnauthenticated(t *testing.T) {
	backend := newTestBackend(t)
	backend.wantBearer = "" // accept only anonymous requests

	store := storefakes.NewFakeStore()
	client := newTestClient(t, backend, store)

	var out []map[string]any
	require.NoError(t, client.Get(context.Background(), httpapi.RouteEmployees, &out))
	require.Equal(t, []string{""}, backend.seenAuth())
}

func TestFirstUnauthorizedTriggersOneRefreshAndReplay(t *testing.T) {
	backend := newTestBackend(t)
	store := storefakes.NewFakeStore()
	require.NoError(t, store.Save(oldAccessToken, refreshTokenVal, &session.User{Username: "hr_admin", Role: session.RoleAdmin}))

	client := newTestClient(t, backend, store)

	var out []map[string]any
	require.NoError(t, client.Get(context.Background(), httpapi.RouteEmployees, &out))
	require.Len(t, out, 1)
	require.Equal(t, "Alice", out[0]["EmployeeName"])

	// One rejected attempt with the stale token, one replay with the new one.
	require.Equal(t, []string{"Bearer " + oldAccessToken, "Bearer " + newAccessToken}, backend.seenAuth())
	require.EqualValues(t, 1, backend.refreshCalls.Load())

	// Store now holds the new access token and the unchanged refresh token.
	require.Equal(t, newAccessToken, store.AccessToken())
	require.Equal(t, refreshTokenVal, store.RefreshToken())

	// A later unrelated call uses the refreshed token directly.
	require.NoError(t, client.Get(context.Background(), httpapi.RouteEmployees, &out))
	seen := backend.seenAuth()
	require.Equal(t, "Bearer "+newAccessToken, seen[len(seen)-1])
	require.EqualValues(t, 1, backend.refreshCalls.Load())
}

func TestSecondUnauthorizedAfterReplayPropagates(t *testing.T) {
	backend := newTestBackend(t)
	backend.wantBearer = "Bearer something-else-entirely" // replay keeps failing

	store := storefakes.NewFakeStore()
	require.NoError(t, store.Save(oldAccessToken, refreshTokenVal, nil))

	client := newTestClient(t, backend, store)

	err := client.Get(context.Background(), httpapi.RouteEmployees, nil)
	require.Error(t, err)
	require.ErrorIs(t, err, apperrors.ErrUnauthenticated)

	var apiErr *httpapi.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)

	// Exactly one refresh: the replayed request's 401 is never intercepted again.
	require.EqualValues(t, 1, backend.refreshCalls.Load())
	require.Len(t, backend.seenAuth(), 2)
}

func TestRefreshFailureEndsSession(t *testing.T) {
	backend := newTestBackend(t)
	backend.refreshFails = true

	store := storefakes.NewFakeStore()
	require.NoError(t, store.Save(oldAccessToken, refreshTokenVal, &session.User{Username: "hr_admin"}))

	var expiredCalls atomic.Int32
	client := newTestClient(t, backend, store, httpapi.WithOnSessionExpired(func() {
		expiredCalls.Add(1)
	}))

	err := client.Get(context.Background(), httpapi.RouteEmployees, nil)
	require.ErrorIs(t, err, apperrors.ErrSessionExpired)

	require.Empty(t, store.AccessToken())
	require.Empty(t, store.RefreshToken())
	require.Nil(t, store.User())
	require.EqualValues(t, 1, expiredCalls.Load())
	require.EqualValues(t, 1, backend.refreshCalls.Load())
}

func TestMissingRefreshTokenEndsSessionWithoutRefreshCall(t *testing.T) {
	backend := newTestBackend(t)

	store := storefakes.NewFakeStore()
	require.NoError(t, store.Save(oldAccessToken, "", nil))

	var expiredCalls atomic.Int32
	client := newTestClient(t, backend, store, httpapi.WithOnSessionExpired(func() {
		expiredCalls.Add(1)
	}))

	err := client.Get(context.Background(), httpapi.RouteEmployees, nil)
	require.ErrorIs(t, err, apperrors.ErrSessionExpired)
	require.ErrorIs(t, err, apperrors.ErrNoRefreshToken)

	require.EqualValues(t, 0, backend.refreshCalls.Load())
	require.EqualValues(t, 1, expiredCalls.Load())
	require.Empty(t, store.AccessToken())
}

func TestConcurrentUnauthorizedShareOneRefresh(t *testing.T) {
	backend := newTestBackend(t)
	backend.refreshDelay = 100 * time.Millisecond

	store := storefakes.NewFakeStore()
	require.NoError(t, store.Save(oldAccessToken, refreshTokenVal, nil))

	client := newTestClient(t, backend, store)

	const callers = 5
	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = client.Get(context.Background(), httpapi.RouteEmployees, nil)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "caller %d", i)
	}
	require.EqualValues(t, 1, backend.refreshCalls.Load(), "concurrent 401s must share a single refresh")
}

func TestValidationErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Salary must be positive"})
	}))
	t.Cleanup(server.Close)

	store := storefakes.NewFakeStore()
	require.NoError(t, store.Save(oldAccessToken, refreshTokenVal, nil))
	client, err := httpapi.NewClient(server.URL, store)
	require.NoError(t, err)

	err = client.Post(context.Background(), "/payroll/", map[string]any{"base_salary": -1}, nil)
	var apiErr *httpapi.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	require.Equal(t, "Salary must be positive", apiErr.Detail)
	require.EqualValues(t, 1, calls.Load())

	// The store is untouched by a validation failure.
	require.Equal(t, oldAccessToken, store.AccessToken())
}
