package rates

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"betcontrol/internal/domain"
	"betcontrol/internal/usecase/mocks"
)

type countingProvider struct {
	calls int
	rate  decimal.Decimal
	err   error
}

func (p *countingProvider) BRLToUSD(ctx context.Context) (decimal.Decimal, error) {
	p.calls++
	return p.rate, p.err
}

func TestCachedProvider_CachesQuote(t *testing.T) {
	next := &countingProvider{rate: decimal.RequireFromString("0.2")}
	provider := NewCachedProvider(next, mocks.NewMockCache(), time.Minute)

	for i := 0; i < 3; i++ {
		rate, err := provider.BRLToUSD(context.Background())
		require.NoError(t, err)
		assert.True(t, rate.Equal(decimal.RequireFromString("0.2")))
	}

	assert.Equal(t, 1, next.calls, "expected a single upstream fetch")
}

func TestCachedProvider_FetchFailurePropagates(t *testing.T) {
	next := &countingProvider{err: domain.ErrCotacaoIndisponivel}
	provider := NewCachedProvider(next, mocks.NewMockCache(), time.Minute)

	_, err := provider.BRLToUSD(context.Background())
	assert.ErrorIs(t, err, domain.ErrCotacaoIndisponivel)
}

func TestCachedProvider_CacheFailureFallsThrough(t *testing.T) {
	cache := mocks.NewMockCache()
	cache.GetFunc = func(ctx context.Context, key string) (string, error) {
		return "", errors.New("redis down")
	}
	cache.SetFunc = func(ctx context.Context, key, value string, ttl time.Duration) error {
		return errors.New("redis down")
	}

	next := &countingProvider{rate: decimal.RequireFromString("0.19")}
	provider := NewCachedProvider(next, cache, time.Minute)

	rate, err := provider.BRLToUSD(context.Background())
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("0.19")))
}

func TestCachedProvider_IgnoresCorruptCacheEntry(t *testing.T) {
	cache := mocks.NewMockCache()
	require.NoError(t, cache.Set(context.Background(), cacheKey, "garbage", time.Minute))

	next := &countingProvider{rate: decimal.RequireFromString("0.21")}
	provider := NewCachedProvider(next, cache, time.Minute)

	rate, err := provider.BRLToUSD(context.Background())
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("0.21")))
	assert.Equal(t, 1, next.calls)
}
