package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hafizirfan96/spu-backend/internal/config"
	"github.com/Hafizirfan96/spu-backend/internal/utils"
)

type fakeRateLimitRepo struct {
	denyKeys map[string]bool
	keys     []string
	limits   map[string]int
}

func (r *fakeRateLimitRepo) IncrementAndCheck(_ context.Context, key string, limit int, _ time.Duration) (bool, error) {
	r.keys = append(r.keys, key)
	if r.limits == nil {
		r.limits = map[string]int{}
	}
	r.limits[key] = limit
	return !r.denyKeys[key], nil
}

func (r *fakeRateLimitRepo) CleanupExpired(_ context.Context) error { return nil }

func testRateLimitConfig() *config.Config {
	return &config.Config{
		EmailLimitPerIPPerHour:    50,
		EmailLimitPerEmailPerHour: 5,
		GlobalEmailLimitPerHour:   2000,
		RateLimitWindow:           time.Hour,
	}
}

func TestCheckEmailRateLimitsChecksAllTiers(t *testing.T) {
	repo := &fakeRateLimitRepo{}
	svc := NewRateLimiterService(repo, testRateLimitConfig())

	err := svc.CheckEmailRateLimits(context.Background(), "10.0.0.1", "a@x.com")
	require.NoError(t, err)

	// Global first, then IP, then destination.
	require.Equal(t, []string{"email:global", "email:ip:10.0.0.1", "email:address:a@x.com"}, repo.keys)
	assert.Equal(t, 2000, repo.limits["email:global"])
	assert.Equal(t, 50, repo.limits["email:ip:10.0.0.1"])
	assert.Equal(t, 5, repo.limits["email:address:a@x.com"])
}

func TestCheckEmailRateLimitsPerEmailBreach(t *testing.T) {
	repo := &fakeRateLimitRepo{denyKeys: map[string]bool{"email:address:a@x.com": true}}
	svc := NewRateLimiterService(repo, testRateLimitConfig())

	err := svc.CheckEmailRateLimits(context.Background(), "10.0.0.1", "a@x.com")
	require.ErrorIs(t, err, utils.ErrRateLimitExceeded)
}

func TestCheckEmailRateLimitsGlobalBreachShortCircuits(t *testing.T) {
	repo := &fakeRateLimitRepo{denyKeys: map[string]bool{"email:global": true}}
	svc := NewRateLimiterService(repo, testRateLimitConfig())

	err := svc.CheckEmailRateLimits(context.Background(), "10.0.0.1", "a@x.com")
	require.ErrorIs(t, err, utils.ErrRateLimitExceeded)
	assert.Equal(t, []string{"email:global"}, repo.keys)
}
