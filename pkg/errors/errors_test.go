package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shoreleave/shoreleave/pkg/errors"
)

func TestNotFoundError(t *testing.T) {
	err := errors.NewNotFoundError("entry", "abc-123")
	assert.EqualError(t, err, "entry with ID abc-123 not found")
	assert.True(t, errors.IsNotFound(err))
}

func TestValidationError(t *testing.T) {
	err := errors.NewValidationError("name", "", "must not be empty")
	assert.EqualError(t, err, "validation failed for field name: must not be empty")
	assert.True(t, errors.IsValidationError(err))
}

func TestOracleError(t *testing.T) {
	parseErr := errors.NewOracleError("Snorkel Tour", "maybe number two?", nil)
	assert.Contains(t, parseErr.Error(), "unusable output")
	assert.True(t, errors.IsOracleError(parseErr))

	wrapped := stderrors.New("connection reset")
	callErr := errors.NewOracleError("Snorkel Tour", "", wrapped)
	assert.ErrorIs(t, callErr, wrapped)
}

func TestStoreError(t *testing.T) {
	cause := stderrors.New("503 service unavailable")
	err := errors.NewStoreError("update", "page-9", cause)
	assert.EqualError(t, err, "store update failed for page page-9: 503 service unavailable")
	assert.ErrorIs(t, err, cause)
	assert.True(t, errors.IsStoreError(err))

	// store errors are not oracle errors
	assert.False(t, errors.IsOracleError(err))
}

func TestConfigErrorUnwrap(t *testing.T) {
	cause := stderrors.New("missing env")
	err := errors.NewConfigError("notion", "NOTION_API_KEY not set", cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "notion")
}
