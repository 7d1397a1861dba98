package backend

import (
	"errors"
	"fmt"
)

// ErrorKind classifies client failures by the point in the request cycle
// where they occurred.
type ErrorKind string

const (
	// ErrorKindInvalidURL means the request URL could not be built
	ErrorKindInvalidURL ErrorKind = "invalid_url"

	// ErrorKindNetwork means the request failed at the transport level
	ErrorKindNetwork ErrorKind = "network"

	// ErrorKindServer means the backend answered with a failure status
	ErrorKindServer ErrorKind = "server"

	// ErrorKindNoData means the backend answered with an empty body
	ErrorKindNoData ErrorKind = "no_data"

	// ErrorKindDecode means the response body could not be decoded
	ErrorKindDecode ErrorKind = "decode"

	// ErrorKindInlineAPI means a 2xx response body itself carried an error
	ErrorKindInlineAPI ErrorKind = "api"
)

// APIError is the error type surfaced by all client operations
type APIError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// Error returns the user-facing error message
func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying transport or decode error, if any
func (e *APIError) Unwrap() error {
	return e.Err
}

func newAPIError(kind ErrorKind, message string, err error) *APIError {
	return &APIError{Kind: kind, Message: message, Err: err}
}

// KindOf returns the ErrorKind of err, or "" if err is not an APIError
func KindOf(err error) ErrorKind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return ""
}
