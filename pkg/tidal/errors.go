package tidal

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Predefined errors for common cases.
var (
	// ErrUnauthorized is returned for any 401 response. The session or
	// application token is invalid or expired; the caller must log in
	// again.
	ErrUnauthorized = errors.New("tidal: request unauthorized")

	// ErrMissingEtag is returned when a conditional-mutation read did
	// not carry an etag header.
	ErrMissingEtag = errors.New("tidal: etag header missing from response")
)

// APIError is a structured error body returned by the API for 403 and
// 404 responses.
type APIError struct {
	Status  int
	Message string
}

// Error returns the error message.
func (e *APIError) Error() string {
	return fmt.Sprintf("tidal: api error %d: %s", e.Status, e.Message)
}

// StatusError is returned for any non-2xx status that carries no
// structured error body.
type StatusError struct {
	Code int
}

// Error returns the error message.
func (e *StatusError) Error() string {
	return fmt.Sprintf("tidal: unexpected status code %d", e.Code)
}

// ParseError is returned when a response body does not match the
// expected JSON shape. It wraps the underlying decoder error.
type ParseError struct {
	Err error
}

// Error returns the error message.
func (e *ParseError) Error() string {
	return fmt.Sprintf("tidal: json parse error: %v", e.Err)
}

// Unwrap returns the underlying decoder error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// RequestError is returned when the HTTP exchange itself could not be
// completed: DNS, TLS, connection, or transport-level timeout failures.
type RequestError struct {
	Err error
}

// Error returns the error message.
func (e *RequestError) Error() string {
	return fmt.Sprintf("tidal: request error: %v", e.Err)
}

// Unwrap returns the underlying transport error.
func (e *RequestError) Unwrap() error {
	return e.Err
}

// classifyResponse turns a non-2xx response into a typed error.
//
// 401 is always ErrUnauthorized, body ignored. For 403 and 404 the API
// sometimes returns a structured {status, message} body; when it parses
// the result is an *APIError, otherwise the status code alone is
// reported. Every other status maps to *StatusError.
func classifyResponse(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden, http.StatusNotFound:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return &StatusError{Code: resp.StatusCode}
		}
		if apiErr := parseAPIError(body); apiErr != nil {
			return apiErr
		}
		return &StatusError{Code: resp.StatusCode}
	default:
		return &StatusError{Code: resp.StatusCode}
	}
}

// parseAPIError parses a structured error body. The message field
// arrives as either "message" or "userMessage" depending on endpoint;
// both are accepted. Returns nil when the body does not match.
func parseAPIError(body []byte) *APIError {
	var raw struct {
		Status      int    `json:"status"`
		Message     string `json:"message"`
		UserMessage string `json:"userMessage"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil
	}

	message := raw.Message
	if message == "" {
		message = raw.UserMessage
	}
	if raw.Status == 0 || message == "" {
		return nil
	}

	return &APIError{Status: raw.Status, Message: message}
}
