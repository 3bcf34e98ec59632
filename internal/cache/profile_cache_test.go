package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/hackflow/hackflow-api/pkg/circuitbreaker"
	apperrors "github.com/hackflow/hackflow-api/pkg/errors"
	"github.com/hackflow/hackflow-api/pkg/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingFetcher struct {
	calls   int
	err     error
	missing map[string]bool
}

func (f *countingFetcher) FetchProfile(_ context.Context, username string) (*github.Profile, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if f.missing[username] {
		return nil, apperrors.NotFoundError("github user " + username)
	}
	return &github.Profile{Login: username, Languages: map[string]int{"Go": 3}}, nil
}

func TestProfileCache_HitAfterMiss(t *testing.T) {
	fetcher := &countingFetcher{}
	pc := NewProfileCache(fetcher, 60)

	first, err := pc.Get(context.Background(), "Octocat")
	require.NoError(t, err)
	second, err := pc.Get(context.Background(), "octocat")
	require.NoError(t, err)

	assert.Equal(t, 1, fetcher.calls)
	assert.Same(t, first, second)
	assert.Equal(t, 1, pc.Len())
}

func TestProfileCache_Invalidate(t *testing.T) {
	fetcher := &countingFetcher{}
	pc := NewProfileCache(fetcher, 60)

	_, _ = pc.Get(context.Background(), "octocat")
	pc.Invalidate("OCTOCAT")
	_, _ = pc.Get(context.Background(), "octocat")

	assert.Equal(t, 2, fetcher.calls)
}

func TestProfileCache_ErrorsAreNotCached(t *testing.T) {
	fetcher := &countingFetcher{err: errors.New("rate limited")}
	pc := NewProfileCache(fetcher, 60)

	_, err := pc.Get(context.Background(), "octocat")
	require.Error(t, err)
	assert.Equal(t, 0, pc.Len())
}

func TestProfileCache_BreakerOpensOnRepeatedFailures(t *testing.T) {
	fetcher := &countingFetcher{err: errors.New("github down")}
	pc := NewProfileCache(fetcher, 60)

	for i := 0; i < 3; i++ {
		_, _ = pc.Get(context.Background(), "user")
	}
	_, err := pc.Get(context.Background(), "user")

	assert.True(t, circuitbreaker.IsOpen(err))
	assert.Equal(t, 3, fetcher.calls)
}

func TestProfileCache_UnknownUsersKeepBreakerClosed(t *testing.T) {
	fetcher := &countingFetcher{missing: map[string]bool{"x1": true, "x2": true, "x3": true}}
	pc := NewProfileCache(fetcher, 60)

	for _, name := range []string{"x1", "x2", "x3"} {
		_, err := pc.Get(context.Background(), name)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.False(t, circuitbreaker.IsOpen(err))
	}

	p, err := pc.Get(context.Background(), "octocat")
	require.NoError(t, err)
	assert.Equal(t, "octocat", p.Login)
	assert.Equal(t, 4, fetcher.calls)
}
