package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrappedErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		msg    string
	}{
		{"not found", NotFoundError("idea"), ErrNotFound, "idea not found"},
		{"invalid input", InvalidInputError("teamId", "is required"), ErrInvalidInput, "teamId: is required: invalid input"},
		{"not configured", NotConfiguredError("perplexity"), ErrNotConfigured, "perplexity: not configured"},
		{"internal", InternalError("boom"), ErrInternal, "boom: internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, Is(tt.err, tt.target))
			assert.Equal(t, tt.msg, tt.err.Error())
		})
	}
}

func TestIs_DoesNotCrossMatch(t *testing.T) {
	assert.False(t, Is(NotFoundError("idea"), ErrInvalidInput))
	assert.False(t, Is(errors.New("plain"), ErrInternal))
}
