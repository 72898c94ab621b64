package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	cause := stderrors.New("boom")

	tests := []struct {
		name          string
		err           *StandardError
		expectedCode  ErrorCode
		retryable     bool
		expectedRetry int
	}{
		{name: "invalid request", err: NewInvalidRequestError("userId missing"), expectedCode: ErrCodeInvalidRequest},
		{name: "parse", err: NewParseError(cause), expectedCode: ErrCodeParseError},
		{name: "calculation", err: NewCalculationFailedError(cause), expectedCode: ErrCodeCalculationFailed},
		{name: "text generation failed", err: NewTextGenerationFailedError(cause), expectedCode: ErrCodeTextGenerationFailed},
		{name: "text generation timeout", err: NewTextGenerationTimeoutError(cause), expectedCode: ErrCodeTextGenerationTimeout},
		{name: "schema invalid", err: NewAnalysisSchemaInvalidError("summary is required"), expectedCode: ErrCodeAnalysisSchemaInvalid},
		{name: "send failed", err: NewNotificationSendFailedError("email", cause), expectedCode: ErrCodeNotificationSendFailed, retryable: true, expectedRetry: 3},
		{name: "email validation", err: NewEmailValidationFailedError("email is required"), expectedCode: ErrCodeEmailValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedCode, tt.err.Code)
			assert.Equal(t, tt.retryable, tt.err.Retryable)
			assert.Equal(t, tt.expectedRetry, GetRetryCount(tt.err.Code))
			assert.Equal(t, tt.retryable, IsRetryableErrorCode(tt.err.Code))
			assert.True(t, IsKnownErrorCode(tt.err.Code))
			assert.False(t, tt.err.Timestamp.IsZero())
			assert.Contains(t, tt.err.Error(), string(tt.expectedCode))
		})
	}
}

func TestUserFacingMessages(t *testing.T) {
	assert.Equal(t, "Missing userId or userInput in the request body", NewInvalidRequestError("x").Message)
	assert.Equal(t, "Bad Request", NewEmailValidationFailedError("x").Message)
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("connection reset")
	err := fmt.Errorf("send: %w", NewNotificationSendFailedError("email", cause))

	assert.True(t, stderrors.Is(err, cause))

	var stdErr *StandardError
	require.True(t, stderrors.As(err, &stdErr))
	assert.Equal(t, ErrCodeNotificationSendFailed, stdErr.Code)
}

func TestNormalize(t *testing.T) {
	known := NewParseError(stderrors.New("bad json"))
	assert.Same(t, known, Normalize(fmt.Errorf("wrapped: %w", known)))

	unknown := Normalize(stderrors.New("surprise"))
	assert.Equal(t, ErrCodeInternal, unknown.Code)
	assert.Equal(t, "surprise", unknown.Details)
	assert.False(t, IsKnownErrorCode(unknown.Code))
}

func TestConvertToBPMNError(t *testing.T) {
	assert.Nil(t, ConvertToBPMNError(nil))

	stdErr := NewNotificationSendFailedError("email", stderrors.New("throttled"))
	bpmnErr := ConvertToBPMNError(stdErr)

	assert.Equal(t, string(ErrCodeNotificationSendFailed), bpmnErr.Code)
	assert.Equal(t, 3, bpmnErr.Retries)
	assert.True(t, bpmnErr.Retryable)

	vars := bpmnErr.ToErrorVariables()
	assert.Equal(t, string(ErrCodeNotificationSendFailed), vars["errorCode"])
	assert.Equal(t, true, vars["retryable"])
	assert.Contains(t, vars, "timestamp")
}

func TestGetErrorCategory(t *testing.T) {
	tests := []struct {
		code     ErrorCode
		expected string
	}{
		{ErrCodeTextGenerationTimeout, "AI"},
		{ErrCodeAnalysisSchemaInvalid, "AI"},
		{ErrCodeNotificationSendFailed, "NOTIFICATION"},
		{ErrCodeEmailValidationFailed, "NOTIFICATION"},
		{ErrCodeCalculationFailed, "CALCULATION"},
		{ErrCodeInvalidRequest, "VALIDATION"},
		{ErrCodeParseError, "VALIDATION"},
		{ErrCodeInternal, "OTHER"},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.expected, GetErrorCategory(tt.code))
		})
	}
}
