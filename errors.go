package restkit

import (
	"errors"
	"fmt"
)

// ErrorCode classifies delivery pipeline errors.
type ErrorCode int

const (
	// ErrCodeEndpoint indicates a request-assembly failure (invalid
	// parameter, invalid header, invalid URL, or body-encode failure).
	ErrCodeEndpoint ErrorCode = iota
	// ErrCodeTransport indicates a transport-level send failure.
	ErrCodeTransport
	// ErrCodeOffline indicates the network is unreachable (connection
	// refused, network/host unreachable, DNS failure).
	ErrCodeOffline
	// ErrCodeAPI indicates a non-2xx response whose body decoded as a
	// structured error response.
	ErrCodeAPI
	// ErrCodeErrorParse indicates a non-2xx response whose body could not
	// be decoded as a structured error response.
	ErrCodeErrorParse
	// ErrCodeUnexpectedStatus indicates a non-2xx response without a body.
	ErrCodeUnexpectedStatus
	// ErrCodeResponseParse indicates a success response body that could not
	// be decoded into the expected type.
	ErrCodeResponseParse
	// ErrCodeNotAuthenticated indicates no credentials were available to
	// attach to the request.
	ErrCodeNotAuthenticated
	// ErrCodeNoRefreshToken indicates a refresh was requested without a
	// stored refresh token.
	ErrCodeNoRefreshToken
	// ErrCodeRefreshFailed indicates the upstream credential refresh failed.
	ErrCodeRefreshFailed
	// ErrCodeMaxRetries indicates the reauthentication retry budget was
	// exhausted without a successful delivery.
	ErrCodeMaxRetries
	// ErrCodeRefreshUnsupported indicates the authentication method does
	// not support credential refresh.
	ErrCodeRefreshUnsupported
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeEndpoint:
		return "endpoint"
	case ErrCodeTransport:
		return "transport"
	case ErrCodeOffline:
		return "offline"
	case ErrCodeAPI:
		return "api_error"
	case ErrCodeErrorParse:
		return "error_parse"
	case ErrCodeUnexpectedStatus:
		return "unexpected_status"
	case ErrCodeResponseParse:
		return "response_parse"
	case ErrCodeNotAuthenticated:
		return "not_authenticated"
	case ErrCodeNoRefreshToken:
		return "no_refresh_token"
	case ErrCodeRefreshFailed:
		return "refresh_failed"
	case ErrCodeMaxRetries:
		return "max_retries"
	case ErrCodeRefreshUnsupported:
		return "refresh_unsupported"
	default:
		return "unknown"
	}
}

// Error is a structured pipeline error with classification.
type Error struct {
	// Code classifies the error.
	Code ErrorCode
	// StatusCode is the HTTP status code (0 when no status was observed).
	StatusCode int
	// Message describes the error.
	Message string
	// Body is the raw response body, when one was received.
	Body []byte
	// Decoded is the structured error-response value (ErrCodeAPI only).
	Decoded any
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("restkit: %s (HTTP %d): %s", e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("restkit: %s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewEndpointError wraps an assembly failure.
func NewEndpointError(err error) *Error {
	return &Error{
		Code:    ErrCodeEndpoint,
		Message: err.Error(),
		Err:     err,
	}
}

// NewInvalidParameterError creates an assembly error for a bound parameter
// whose value has no parameter-string representation.
func NewInvalidParameterError(name string, value any) *Error {
	return &Error{
		Code:    ErrCodeEndpoint,
		Message: fmt.Sprintf("parameter %q: type %T is not representable as a parameter string", name, value),
	}
}

// NewInvalidHeaderError creates an assembly error for a bound header whose
// value has no string representation.
func NewInvalidHeaderError(name string, value any) *Error {
	return &Error{
		Code:    ErrCodeEndpoint,
		Message: fmt.Sprintf("header %q: type %T is not representable as a header value", name, value),
	}
}

// NewInvalidURLError creates an assembly error for a base address and path
// that do not compose into a valid URL.
func NewInvalidURLError(raw string, err error) *Error {
	return &Error{
		Code:    ErrCodeEndpoint,
		Message: fmt.Sprintf("invalid url %q: %v", raw, err),
		Err:     err,
	}
}

// NewEncodeError creates an assembly error for a body that failed to encode.
func NewEncodeError(err error) *Error {
	return &Error{
		Code:    ErrCodeEndpoint,
		Message: fmt.Sprintf("encode body: %v", err),
		Err:     err,
	}
}

// NewTransportError creates a transport failure error.
func NewTransportError(err error) *Error {
	return &Error{
		Code:    ErrCodeTransport,
		Message: err.Error(),
		Err:     err,
	}
}

// NewProtocolViolationError creates a transport failure for a send that
// returned neither an error nor status metadata.
func NewProtocolViolationError() *Error {
	return &Error{
		Code:    ErrCodeTransport,
		Message: "transport returned no status metadata and no error",
	}
}

// NewOfflineError creates an offline error from a connectivity-class
// transport failure.
func NewOfflineError(err error) *Error {
	return &Error{
		Code:    ErrCodeOffline,
		Message: err.Error(),
		Err:     err,
	}
}

// NewAPIError creates a structured error-response error.
func NewAPIError(statusCode int, decoded any, body []byte) *Error {
	return &Error{
		Code:       ErrCodeAPI,
		StatusCode: statusCode,
		Message:    fmt.Sprintf("HTTP %d", statusCode),
		Body:       body,
		Decoded:    decoded,
	}
}

// NewErrorParseError creates an error for a non-2xx body that failed to
// decode as a structured error response.
func NewErrorParseError(statusCode int, body []byte, cause error) *Error {
	return &Error{
		Code:       ErrCodeErrorParse,
		StatusCode: statusCode,
		Message:    fmt.Sprintf("HTTP %d: decode error response: %v", statusCode, cause),
		Body:       body,
		Err:        cause,
	}
}

// NewUnexpectedStatusError creates an error for a non-2xx response without
// a body.
func NewUnexpectedStatusError(statusCode int) *Error {
	return &Error{
		Code:       ErrCodeUnexpectedStatus,
		StatusCode: statusCode,
		Message:    fmt.Sprintf("HTTP %d", statusCode),
	}
}

// NewResponseParseError creates an error for a success body that failed to
// decode into the expected type.
func NewResponseParseError(err error) *Error {
	return &Error{
		Code:    ErrCodeResponseParse,
		Message: fmt.Sprintf("decode response: %v", err),
		Err:     err,
	}
}

// NewNotAuthenticatedError creates an error for a request that could not be
// authenticated.
func NewNotAuthenticatedError() *Error {
	return &Error{
		Code:    ErrCodeNotAuthenticated,
		Message: "no access credentials available",
	}
}

// NewNoRefreshTokenError creates an error for a refresh attempted without a
// stored refresh token.
func NewNoRefreshTokenError() *Error {
	return &Error{
		Code:    ErrCodeNoRefreshToken,
		Message: "no refresh token available",
	}
}

// NewRefreshFailedError wraps an upstream refresh failure.
func NewRefreshFailedError(cause error) *Error {
	return &Error{
		Code:    ErrCodeRefreshFailed,
		Message: fmt.Sprintf("credential refresh failed: %v", cause),
		Err:     cause,
	}
}

// NewMaxRetriesError creates an error for an exhausted attempt budget.
func NewMaxRetriesError(attempts int) *Error {
	return &Error{
		Code:    ErrCodeMaxRetries,
		Message: fmt.Sprintf("gave up after %d attempts", attempts),
	}
}

// NewRefreshUnsupportedError creates an error for an authentication method
// that cannot refresh credentials.
func NewRefreshUnsupportedError() *Error {
	return &Error{
		Code:    ErrCodeRefreshUnsupported,
		Message: "authentication method does not support refresh",
	}
}

// CodeOf extracts the error code from err, if it is a pipeline error.
func CodeOf(err error) (ErrorCode, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Code, true
	}
	return 0, false
}

// StatusOf extracts the HTTP status code recorded in err, or 0.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return 0
}

// IsEndpointError checks if an error is an assembly error.
func IsEndpointError(err error) bool {
	c, ok := CodeOf(err)
	return ok && c == ErrCodeEndpoint
}

// IsOffline checks if an error is an offline error.
func IsOffline(err error) bool {
	c, ok := CodeOf(err)
	return ok && c == ErrCodeOffline
}

// IsAPIError checks if an error is a structured error-response error.
func IsAPIError(err error) bool {
	c, ok := CodeOf(err)
	return ok && c == ErrCodeAPI
}

// IsUnexpectedStatus checks if an error is an unexpected-status error.
func IsUnexpectedStatus(err error) bool {
	c, ok := CodeOf(err)
	return ok && c == ErrCodeUnexpectedStatus
}

// IsNotAuthenticated checks if an error is a not-authenticated error.
func IsNotAuthenticated(err error) bool {
	c, ok := CodeOf(err)
	return ok && c == ErrCodeNotAuthenticated
}

// IsRefreshFailed checks if an error is a refresh failure.
func IsRefreshFailed(err error) bool {
	c, ok := CodeOf(err)
	return ok && c == ErrCodeRefreshFailed
}

// IsMaxRetries checks if an error reports an exhausted attempt budget.
func IsMaxRetries(err error) bool {
	c, ok := CodeOf(err)
	return ok && c == ErrCodeMaxRetries
}
