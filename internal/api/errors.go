package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"reportboard/client/internal/models"
)

var (
	// ErrNetwork marks failures where no HTTP response was obtained.
	ErrNetwork = errors.New("network error")
	// ErrUnexpectedResponse marks a success status whose body could not be decoded.
	ErrUnexpectedResponse = errors.New("unexpected response body")
	// ErrEmptyReportID is returned before any request when a report has no id.
	ErrEmptyReportID = errors.New("report id is empty")
)

// Error is a non-success HTTP response. Message is the server's {error} or
// {message} field and may be empty.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned status %d", e.Status)
	}
	return fmt.Sprintf("server returned status %d: %s", e.Status, e.Message)
}

func newError(status int, body []byte) *Error {
	var eb models.ErrorBody
	// Bodies that are not JSON (proxy pages, Flask HTML 404s) leave Message empty.
	_ = json.Unmarshal(body, &eb)
	return &Error{Status: status, Message: eb.Text()}
}

// ServerMessage returns the server-provided text carried by err, or "".
func ServerMessage(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}

func hasStatus(err error, status int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// IsUnauthorized reports a 401, which the backend returns when a session is required.
func IsUnauthorized(err error) bool { return hasStatus(err, http.StatusUnauthorized) }

// IsRateLimited reports a 429 from the per-IP limiter.
func IsRateLimited(err error) bool { return hasStatus(err, http.StatusTooManyRequests) }

// IsNotFound reports a 404, e.g. liking a report that no longer exists.
func IsNotFound(err error) bool { return hasStatus(err, http.StatusNotFound) }
