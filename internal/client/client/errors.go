package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable     = errors.New("server unavailable")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrNonJSONResponse = errors.New("unexpected response format")
	ErrFormat          = errors.New("malformed response")
)

// NetworkError reports that the request never produced an HTTP response.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string        { return fmt.Sprintf("network error: %v", e.Err) }
func (e *NetworkError) Unwrap() error        { return e.Err }
func (e *NetworkError) Is(target error) bool { return target == ErrUnavailable }

// NonJSONResponseError is returned when a JSON body was expected but the
// content type says otherwise. Body holds the raw text so the real server
// message is not lost.
type NonJSONResponseError struct {
	Status      int
	ContentType string
	Body        string
}

func (e *NonJSONResponseError) Error() string {
	if e.Body != "" {
		return e.Body
	}
	return ErrNonJSONResponse.Error()
}

func (e *NonJSONResponseError) Is(target error) bool { return target == ErrNonJSONResponse }

// ServerError is a non-success HTTP status. Message comes from the body.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server error: %d %s", e.Status, http.StatusText(e.Status))
}

func (e *ServerError) Is(target error) bool {
	if target == ErrUnauthorized {
		return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
	}
	if target == ErrUnavailable {
		return e.Status == http.StatusBadGateway || e.Status == http.StatusServiceUnavailable || e.Status == http.StatusGatewayTimeout
	}
	return false
}

// FormatError means the body parsed but did not match the expected schema,
// or did not parse at all.
type FormatError struct {
	Err error
}

func (e *FormatError) Error() string        { return fmt.Sprintf("malformed response: %v", e.Err) }
func (e *FormatError) Unwrap() error        { return e.Err }
func (e *FormatError) Is(target error) bool { return target == ErrFormat }
