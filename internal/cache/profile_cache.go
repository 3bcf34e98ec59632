package cache

import (
	"context"
	"strings"
	"time"

	"github.com/hackflow/hackflow-api/pkg/circuitbreaker"
	apperrors "github.com/hackflow/hackflow-api/pkg/errors"
	"github.com/hackflow/hackflow-api/pkg/github"
	"github.com/hackflow/hackflow-api/pkg/logger"
	"github.com/hackflow/hackflow-api/pkg/metrics"
	gocache "github.com/patrickmn/go-cache"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

const (
	profileKeyPrefix   = "github:profile:"
	profileCacheName   = "github_profiles"
	profileCleanupTick = 10 * time.Minute
)

// ProfileFetcher loads a GitHub profile from the API
type ProfileFetcher interface {
	FetchProfile(ctx context.Context, username string) (*github.Profile, error)
}

// ProfileCache keeps GitHub profiles in memory so repeated matching
// requests do not burn API quota. Upstream calls go through a circuit
// breaker.
type ProfileCache struct {
	cache   *gocache.Cache
	fetcher ProfileFetcher
	breaker *gobreaker.CircuitBreaker
	ttl     time.Duration
}

// NewProfileCache creates a cache whose entries live for ttlSeconds
func NewProfileCache(fetcher ProfileFetcher, ttlSeconds int) *ProfileCache {
	ttl := time.Duration(ttlSeconds) * time.Second
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}

	// unknown usernames are user input, not an outage
	breakerCfg := circuitbreaker.DefaultConfig("github")
	breakerCfg.IsSuccessful = circuitbreaker.IgnoreErrors(apperrors.ErrNotFound)

	return &ProfileCache{
		cache:   gocache.New(ttl, profileCleanupTick),
		fetcher: fetcher,
		breaker: circuitbreaker.NewCircuitBreaker(breakerCfg),
		ttl:     ttl,
	}
}

// Get returns the cached profile or fetches it on a miss
func (pc *ProfileCache) Get(ctx context.Context, username string) (*github.Profile, error) {
	key := profileKeyPrefix + strings.ToLower(username)

	if data, found := pc.cache.Get(key); found {
		if profile, ok := data.(*github.Profile); ok {
			metrics.CacheHits.WithLabelValues(profileCacheName).Inc()
			return profile, nil
		}
		logger.Error("Invalid profile cache data type", zap.String("username", username))
		pc.cache.Delete(key)
	}

	metrics.CacheMisses.WithLabelValues(profileCacheName).Inc()

	profile, err := circuitbreaker.Execute(pc.breaker, func() (*github.Profile, error) {
		return pc.fetcher.FetchProfile(ctx, username)
	})
	if err != nil {
		return nil, err
	}

	pc.cache.Set(key, profile, pc.ttl)
	return profile, nil
}

// Invalidate forgets a single user
func (pc *ProfileCache) Invalidate(username string) {
	pc.cache.Delete(profileKeyPrefix + strings.ToLower(username))
}

// Len returns the number of cached profiles
func (pc *ProfileCache) Len() int {
	return pc.cache.ItemCount()
}
