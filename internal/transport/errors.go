package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrorType is the category of a failed quote call. It doubles as the
// outcome label on backend metrics.
type ErrorType string

const (
	ErrorTypeNetwork   ErrorType = "network"    // connection refused, DNS, reset
	ErrorTypeRateLimit ErrorType = "rate_limit" // HTTP 429
	ErrorTypeServer    ErrorType = "server"     // HTTP 5xx
	ErrorTypeClient    ErrorType = "client"     // HTTP 4xx other than 429
	ErrorTypeDecode    ErrorType = "decode"     // body is not a quote envelope
	ErrorTypeTimeout   ErrorType = "timeout"    // deadline exceeded
	ErrorTypeUnknown   ErrorType = "unknown"
)

// failureKind is what every error of one ErrorType has in common
type failureKind struct {
	retryable bool
	message   string
}

var failureKinds = map[ErrorType]failureKind{
	ErrorTypeNetwork:   {retryable: true, message: "network request failed"},
	ErrorTypeRateLimit: {retryable: true, message: "rate limit exceeded"},
	ErrorTypeServer:    {retryable: true, message: "server returned an error"},
	ErrorTypeClient:    {retryable: false},
	ErrorTypeDecode:    {retryable: false, message: "failed to decode response"},
	ErrorTypeTimeout:   {retryable: true, message: "request timed out"},
	ErrorTypeUnknown:   {retryable: false},
}

// TransportError reports that a backend could not complete a call
// or could not parse the provider envelope.
type TransportError struct {
	Type       ErrorType
	Retryable  bool
	StatusCode int
	Message    string
	Cause      error
}

// newError fills Retryable and, when message is empty, Message from the
// kind registered for typ.
func newError(typ ErrorType, statusCode int, message string, cause error) *TransportError {
	kind := failureKinds[typ]
	if message == "" {
		message = kind.message
	}
	return &TransportError{
		Type:       typ,
		Retryable:  kind.retryable,
		StatusCode: statusCode,
		Message:    message,
		Cause:      cause,
	}
}

func (e *TransportError) Error() string {
	msg := e.Message
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s error (status %d): %s", e.Type, e.StatusCode, msg)
	}
	return fmt.Sprintf("%s error: %s", e.Type, msg)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

func NewNetworkError(cause error) *TransportError {
	return newError(ErrorTypeNetwork, 0, "", cause)
}

func NewRateLimitError(statusCode int) *TransportError {
	return newError(ErrorTypeRateLimit, statusCode, "", nil)
}

func NewServerError(statusCode int) *TransportError {
	return newError(ErrorTypeServer, statusCode, "", nil)
}

func NewClientError(statusCode int, message string) *TransportError {
	return newError(ErrorTypeClient, statusCode, message, nil)
}

// NewDecodeError wraps a failure to read the quote envelope from a body
func NewDecodeError(cause error) *TransportError {
	return newError(ErrorTypeDecode, 0, "", cause)
}

func NewTimeoutError(cause error) *TransportError {
	return newError(ErrorTypeTimeout, 0, "", cause)
}

// ClassifyHTTPError maps a non-success status code to a TransportError
func ClassifyHTTPError(statusCode int) *TransportError {
	switch {
	case statusCode == http.StatusTooManyRequests:
		return NewRateLimitError(statusCode)
	case statusCode >= 500:
		return NewServerError(statusCode)
	case statusCode >= 400:
		return NewClientError(statusCode, fmt.Sprintf("client error: HTTP %d", statusCode))
	default:
		return newError(ErrorTypeUnknown, statusCode, fmt.Sprintf("unexpected status code: %d", statusCode), nil)
	}
}

// FromRequestError classifies an error returned while sending a request.
// An error that is already a *TransportError is returned as is.
func FromRequestError(err error) *TransportError {
	var terr *TransportError
	if errors.As(err, &terr) {
		return terr
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return NewTimeoutError(err)
	case isJSONError(err):
		return NewDecodeError(err)
	default:
		return NewNetworkError(err)
	}
}

func isJSONError(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &syntaxErr) || errors.As(err, &typeErr)
}
