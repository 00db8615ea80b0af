package postscript

import (
	"errors"
	"fmt"
)

// APIError represents an error response from the Postscript API. The remote
// service answered with a non-2xx status; Code and Message are best-effort
// extractions from the response body.
type APIError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"httpStatus,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.HTTPStatus > 0 {
		return fmt.Sprintf("Postscript API error: %s (code: %s, status: %d)", e.Message, e.Code, e.HTTPStatus)
	}

	return fmt.Sprintf("Postscript API error: %s (code: %s)", e.Message, e.Code)
}

// OperationError represents a failure with no interpretable HTTP response:
// DNS failure, timeout, connection reset, or an unparseable 2xx body. It
// wraps the underlying fault without reinterpretation.
type OperationError struct {
	Err error
}

// Error implements the error interface.
func (e *OperationError) Error() string {
	return fmt.Sprintf("operation failed: %v", e.Err)
}

// Unwrap returns the underlying fault.
func (e *OperationError) Unwrap() error {
	return e.Err
}

// NewOperationError wraps a transport-level fault.
func NewOperationError(err error) *OperationError {
	return &OperationError{Err: err}
}

// InvalidArgumentError represents malformed input caught before any network
// call.
type InvalidArgumentError struct {
	Message string
}

// Error implements the error interface.
func (e *InvalidArgumentError) Error() string {
	return e.Message
}

// NewInvalidArgumentError creates an InvalidArgumentError with a formatted
// message.
func NewInvalidArgumentError(format string, args ...interface{}) *InvalidArgumentError {
	return &InvalidArgumentError{Message: fmt.Sprintf(format, args...)}
}

// MessageTooLongError indicates a message body over the per-type length
// limit. It is a pre-network validation failure like InvalidArgumentError.
type MessageTooLongError struct {
	Limit  int
	Length int
}

// Error implements the error interface.
func (e *MessageTooLongError) Error() string {
	return fmt.Sprintf("message exceeds maximum length of %d characters, current length: %d", e.Limit, e.Length)
}

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrAPIKeyRequired      = errors.New("API key is required")
	ErrKeyNotFound         = errors.New("key not found")
	ErrUnknownOperation    = errors.New("unknown operation")
	ErrUnknownResource     = errors.New("unknown resource")
	ErrMissingParameter    = errors.New("missing required parameter")
	ErrUnknownStoreType    = errors.New("unknown static data store type")
	ErrNATSConfigRequired  = errors.New("NATS configuration required for NATS store")
	ErrSinkRequired        = errors.New("event sink is required")
	ErrUnknownWebhookTopic = errors.New("unknown webhook topic")
)

// IsAPIError reports whether err is an API error from the remote service.
func IsAPIError(err error) bool {
	apiErr := &APIError{}

	return errors.As(err, &apiErr)
}

// IsOperationError reports whether err is a transport-level failure.
func IsOperationError(err error) bool {
	opErr := &OperationError{}

	return errors.As(err, &opErr)
}

// IsInvalidArgument reports whether err was caught by input validation
// before any network I/O, including message-length failures.
func IsInvalidArgument(err error) bool {
	invErr := &InvalidArgumentError{}
	if errors.As(err, &invErr) {
		return true
	}

	tooLong := &MessageTooLongError{}

	return errors.As(err, &tooLong)
}

// IsNotFound reports whether err is an API error with a 404 status.
func IsNotFound(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatus == 404
	}

	return false
}

// IsRateLimited reports whether err is an API error with a 429 status.
func IsRateLimited(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatus == 429
	}

	return false
}
