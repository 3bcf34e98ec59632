package circuitbreaker

import (
	"errors"
	"fmt"
	"testing"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
)

func TestExecute_ReturnsTypedResult(t *testing.T) {
	cb := NewCircuitBreaker(DefaultConfig("test"))

	got, err := Execute(cb, func() ([]string, error) {
		return []string{"go", "rust"}, nil
	})

	assert.NoError(t, err)
	assert.Equal(t, []string{"go", "rust"}, got)
}

func TestExecute_TripsAfterFailures(t *testing.T) {
	cb := NewCircuitBreaker(DefaultConfig("github"))
	failing := func() (int, error) { return 0, errors.New("upstream down") }

	for i := 0; i < 3; i++ {
		_, err := Execute(cb, failing)
		assert.Error(t, err)
		assert.False(t, IsOpen(err))
	}

	assert.Equal(t, gobreaker.StateOpen, cb.State())

	_, err := Execute(cb, func() (int, error) { return 1, nil })
	assert.True(t, IsOpen(err))
	assert.Contains(t, err.Error(), "circuit breaker 'github' is open")
}

func TestExecute_IsSuccessfulIgnoresClientErrors(t *testing.T) {
	notFound := errors.New("404")
	cfg := DefaultConfig("github")
	cfg.IsSuccessful = func(err error) bool { return err == nil || errors.Is(err, notFound) }
	cb := NewCircuitBreaker(cfg)

	for i := 0; i < 5; i++ {
		_, err := Execute(cb, func() (int, error) { return 0, notFound })
		assert.ErrorIs(t, err, notFound)
	}

	assert.Equal(t, gobreaker.StateClosed, cb.State())
}

func TestIgnoreErrors_DoesNotTrip(t *testing.T) {
	errMissing := errors.New("missing")
	cfg := DefaultConfig("github")
	cfg.IsSuccessful = IgnoreErrors(errMissing)
	cb := NewCircuitBreaker(cfg)

	for i := 0; i < 5; i++ {
		_, err := Execute(cb, func() (int, error) { return 0, fmt.Errorf("user %d: %w", i, errMissing) })
		assert.ErrorIs(t, err, errMissing)
		assert.False(t, IsOpen(err))
	}
	assert.Equal(t, gobreaker.StateClosed, cb.State())

	assert.True(t, IgnoreErrors(errMissing)(nil))
	assert.False(t, IgnoreErrors(errMissing)(errors.New("boom")))
}
