// Package errors classifies the ways a call to the Tamil words API can fail.
//
// Every gateway error is one of HTTPError, NetworkError or DecodeError.
// Local input problems are ValidationError and settings problems are
// ConfigurationError. Callers test the category with the Is helpers rather
// than inspecting the concrete type.
package errors

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
)

// Sentinel categories matched through errors.Is.
var (
	ErrNotFound      = errors.New("not found")
	ErrUnauthorized  = errors.New("not authorized")
	ErrInvalidInput  = errors.New("invalid input")
	ErrServer        = errors.New("api server failure")
	ErrNetwork       = errors.New("api unreachable")
	ErrTimeout       = errors.New("api request timed out")
	ErrDecode        = errors.New("unreadable api response")
	ErrConfiguration = errors.New("bad configuration")
)

// HTTPError is a response whose status was outside 2xx. Message holds the
// "detail" the API sent back, when it sent one.
type HTTPError struct {
	StatusCode int
	Method     string
	URL        string
	Message    string
}

// NewHTTPError builds an HTTPError.
func NewHTTPError(statusCode int, method, url, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Method: method, URL: url, Message: message}
}

func (e *HTTPError) Error() string {
	head := fmt.Sprintf("HTTP %d %s %s", e.StatusCode, e.Method, e.URL)
	if e.Message == "" {
		return head
	}
	return head + ": " + e.Message
}

// Is maps the status code onto a category. 409 and the other 4xx codes not
// listed here match no category.
func (e *HTTPError) Is(target error) bool {
	var category error
	switch code := e.StatusCode; {
	case code == http.StatusNotFound:
		category = ErrNotFound
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		category = ErrUnauthorized
	case code == http.StatusBadRequest || code == http.StatusUnprocessableEntity:
		category = ErrInvalidInput
	case code >= http.StatusInternalServerError:
		category = ErrServer
	default:
		return false
	}
	return target == category
}

// IsHTTPStatus reports whether err carries an HTTPError with exactly code.
func IsHTTPStatus(err error, code int) bool {
	var httpErr *HTTPError
	return errors.As(err, &httpErr) && httpErr.StatusCode == code
}

// NetworkError is a request that got no response at all.
type NetworkError struct {
	Method string
	URL    string
	Err    error
}

// NewNetworkError wraps a transport failure.
func NewNetworkError(method, url string, err error) *NetworkError {
	return &NetworkError{Method: method, URL: url, Err: err}
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// Is matches ErrNetwork always and ErrTimeout when the cause was a deadline.
func (e *NetworkError) Is(target error) bool {
	switch target {
	case ErrNetwork:
		return true
	case ErrTimeout:
		return timedOut(e.Err)
	}
	return false
}

func timedOut(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// DecodeError is a 2xx response whose body did not fit the expected shape.
type DecodeError struct {
	Method string
	URL    string
	Err    error
}

// NewDecodeError wraps a body decoding failure.
func NewDecodeError(method, url string, err error) *DecodeError {
	return &DecodeError{Method: method, URL: url, Err: err}
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error        { return e.Err }
func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// ConfigurationError reports a setting that cannot be used.
type ConfigurationError struct {
	Field   string
	Value   string
	Message string
	Err     error
}

// NewConfigurationError builds a ConfigurationError. err may be nil.
func NewConfigurationError(field, value, message string, err error) *ConfigurationError {
	return &ConfigurationError{Field: field, Value: value, Message: message, Err: err}
}

func (e *ConfigurationError) Error() string {
	if e.Field == "" {
		return "configuration: " + e.Message
	}
	return fmt.Sprintf("configuration %s: %s", e.Field, e.Message)
}

func (e *ConfigurationError) Unwrap() error        { return e.Err }
func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

// ValidationError rejects user input before any request is sent.
type ValidationError struct {
	Field   string
	Value   string
	Rule    string
	Message string
}

// NewValidationError builds a ValidationError.
func NewValidationError(field, value, rule, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Rule: rule, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "invalid input: " + e.Message
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// MultiError collects failures from calls that ran side by side.
type MultiError struct {
	Errors []error
}

func (e *MultiError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

func (e *MultiError) Unwrap() []error { return e.Errors }

// Join drops nil errors. It returns nil for none, the error itself for one,
// and a *MultiError otherwise.
func Join(errs ...error) error {
	var kept []error
	for _, err := range errs {
		if err != nil {
			kept = append(kept, err)
		}
	}
	switch len(kept) {
	case 0:
		return nil
	case 1:
		return kept[0]
	}
	return &MultiError{Errors: kept}
}

func IsNotFound(err error) bool      { return errors.Is(err, ErrNotFound) }
func IsUnauthorized(err error) bool  { return errors.Is(err, ErrUnauthorized) }
func IsValidation(err error) bool    { return errors.Is(err, ErrInvalidInput) }
func IsServer(err error) bool        { return errors.Is(err, ErrServer) }
func IsNetwork(err error) bool       { return errors.Is(err, ErrNetwork) }
func IsTimeout(err error) bool       { return errors.Is(err, ErrTimeout) }
func IsDecode(err error) bool        { return errors.Is(err, ErrDecode) }
func IsConfiguration(err error) bool { return errors.Is(err, ErrConfiguration) }
