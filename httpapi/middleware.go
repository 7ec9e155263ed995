package httpapi

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/jrsteele09/go-hr-console/session"
)

// Middleware transforms an outgoing request description. Each stage receives
// a request and returns a new one - stages never mutate a request another
// stage already saw, so the composition order is the whole story.
type Middleware func(*http.Request) *http.Request

// ChainMiddleware applies the middleware stages to a request in order.
func ChainMiddleware(req *http.Request, mw ...Middleware) *http.Request {
	for _, m := range mw {
		req = m(req)
	}
	return req
}

// JSONHeaders sets the default content negotiation headers.
func JSONHeaders() Middleware {
	return func(req *http.Request) *http.Request {
		r := req.Clone(req.Context())
		r.Header.Set("Content-Type", "application/json")
		r.Header.Set("Accept", "application/json")
		return r
	}
}

// RequestID tags every outgoing request with a fresh X-Request-ID.
func RequestID() Middleware {
	return func(req *http.Request) *http.Request {
		r := req.Clone(req.Context())
		r.Header.Set("X-Request-ID", uuid.NewString())
		return r
	}
}

// BearerAuth attaches the current access token as a bearer credential. The
// token is read from the store on every call, not captured at construction
// time, so a token swapped in by a refresh is used by the very next request.
// When no token is stored the request goes out unauthenticated.
func BearerAuth(store session.Store) Middleware {
	return func(req *http.Request) *http.Request {
		accessToken := store.AccessToken()
		if accessToken == "" {
			return req
		}
		r := req.Clone(req.Context())
		r.Header.Set("Authorization", "Bearer "+accessToken)
		return r
	}
}
