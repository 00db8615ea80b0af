package postscript

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError_Error(t *testing.T) {
	err := &APIError{
		Code:       "rate_limited",
		Message:    "slow down",
		HTTPStatus: 429,
	}

	assert.Equal(t, "Postscript API error: slow down (code: rate_limited, status: 429)", err.Error())
}

func TestAPIError_ErrorWithoutStatus(t *testing.T) {
	err := &APIError{Code: "invalid", Message: "bad request"}

	assert.Equal(t, "Postscript API error: bad request (code: invalid)", err.Error())
}

func TestOperationError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewOperationError(cause)

	assert.Equal(t, "operation failed: connection reset", err.Error())
	assert.Equal(t, cause, errors.Unwrap(err))
	require.ErrorIs(t, err, cause)
}

func TestMessageTooLongError_Error(t *testing.T) {
	err := &MessageTooLongError{Limit: 160, Length: 200}

	assert.Contains(t, err.Error(), "160")
	assert.Contains(t, err.Error(), "200")
}

func TestErrorClassifiers(t *testing.T) {
	apiErr := &APIError{Code: "not_found", Message: "missing", HTTPStatus: 404}
	rateErr := &APIError{Code: "rate_limited", Message: "slow down", HTTPStatus: 429}
	opErr := NewOperationError(errors.New("timeout"))
	argErr := NewInvalidArgumentError("bad phone")
	lenErr := &MessageTooLongError{Limit: 160, Length: 300}

	assert.True(t, IsAPIError(apiErr))
	assert.False(t, IsAPIError(opErr))

	assert.True(t, IsOperationError(opErr))
	assert.False(t, IsOperationError(apiErr))

	assert.True(t, IsInvalidArgument(argErr))
	assert.True(t, IsInvalidArgument(lenErr))
	assert.False(t, IsInvalidArgument(apiErr))

	assert.True(t, IsNotFound(apiErr))
	assert.False(t, IsNotFound(rateErr))

	assert.True(t, IsRateLimited(rateErr))
	assert.False(t, IsRateLimited(apiErr))
}

func TestErrorClassifiersThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("getting subscriber: %w", &APIError{
		Code:       "not_found",
		Message:    "no such subscriber",
		HTTPStatus: 404,
	})

	assert.True(t, IsAPIError(wrapped))
	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsOperationError(wrapped))
}
