package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	apperrors "github.com/jrsteele09/go-hr-console/internal/errors"
)

// APIError is a non-2xx response from the backend, carrying the status and
// whatever error body the server produced.
type APIError struct {
	StatusCode int    // HTTP status code
	Status     string // HTTP status line, e.g. "401 Unauthorized"
	Detail     string // Human-readable error extracted from the body, if any
	Body       []byte // Raw response body
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api error %s: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("api error %s", e.Status)
}

// Is maps status codes onto the shared sentinel errors so callers can use
// errors.Is without inspecting status codes themselves.
func (e *APIError) Is(target error) bool {
	switch target {
	case apperrors.ErrUnauthenticated:
		return e.StatusCode == http.StatusUnauthorized
	case apperrors.ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}

// errorBody covers the two error shapes the backend produces: FastAPI-style
// {"detail": "..."} and the occasional {"message": "..."}.
type errorBody struct {
	Detail  json.RawMessage `json:"detail,omitempty"`
	Message string          `json:"message,omitempty"`
}

func newAPIError(resp *http.Response, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Body:       body,
	}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		switch {
		case eb.Message != "":
			apiErr.Detail = eb.Message
		case len(eb.Detail) > 0:
			// Detail is usually a string but validation errors return a
			// structured list; keep those as raw JSON text.
			var s string
			if err := json.Unmarshal(eb.Detail, &s); err == nil {
				apiErr.Detail = s
			} else {
				apiErr.Detail = string(eb.Detail)
			}
		}
	}
	return apiErr
}
