package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// ErrSessionExpired is returned once the refresh token is gone or rejected;
// by the time a caller sees it the session is already cleared and the
// session-expired callback has fired.
var ErrSessionExpired = errors.New("session expired")

var errInvalidIP = errors.New("echo response is not an IP address")

// Error is a non-2xx server response. Message is the server-supplied text
// when the body carried one.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server rejected request (%d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("server returned status %d", e.Status)
}

// DecodeError means the server answered 2xx with a body that does not match
// the endpoint's declared shape.
type DecodeError struct {
	Method string
	URL    string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

type errorBody struct {
	Message string `json:"message"`
}

func newError(resp *resty.Response) error {
	var body errorBody
	_ = json.Unmarshal(resp.Body(), &body)
	return &Error{Status: resp.StatusCode(), Message: body.Message}
}

// IsPermissionDenied reports a 403. Permission denials never touch the
// session; callers show a localized message and move on.
func IsPermissionDenied(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusForbidden
}

// ServerMessage extracts the server-supplied message, if any, for verbatim
// display.
func ServerMessage(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}
