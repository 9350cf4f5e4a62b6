package rates

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"betcontrol/internal/usecase"
)

const cacheKey = "rates:brl-usd"

// CachedProvider fronts a RateProvider with a short-TTL cache. Cache failures
// are logged and fall through to a live fetch; they never fail the request on
// their own.
type CachedProvider struct {
	next  usecase.RateProvider
	cache usecase.Cache
	ttl   time.Duration
}

// NewCachedProvider creates a new CachedProvider.
func NewCachedProvider(next usecase.RateProvider, cache usecase.Cache, ttl time.Duration) *CachedProvider {
	return &CachedProvider{
		next:  next,
		cache: cache,
		ttl:   ttl,
	}
}

// BRLToUSD returns the cached rate when fresh, otherwise fetches and caches.
func (p *CachedProvider) BRLToUSD(ctx context.Context) (decimal.Decimal, error) {
	if cached, err := p.cache.Get(ctx, cacheKey); err == nil {
		if rate, err := decimal.NewFromString(cached); err == nil && rate.IsPositive() {
			return rate, nil
		}
	}

	rate, err := p.next.BRLToUSD(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	if err := p.cache.Set(ctx, cacheKey, rate.String(), p.ttl); err != nil {
		log.Warn().Err(err).Msg("failed to cache exchange rate")
	}

	return rate, nil
}
