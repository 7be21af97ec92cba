package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/trip-collab/gw-trip-wallet/internal/logger"
)

// FxRateCacheRepository caches FX rates in Redis. Rates are stored as
// decimal strings to keep full precision.
type FxRateCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewFxRateCacheRepository creates a cache repository with the given TTL.
func NewFxRateCacheRepository(client *redis.Client, expiration time.Duration) *FxRateCacheRepository {
	return &FxRateCacheRepository{client: client, exp: expiration}
}

// GetRate fetches a cached rate for the currency pair.
func (r *FxRateCacheRepository) GetRate(ctx context.Context, fromCurrency, toCurrency string) (decimal.Decimal, error) {
	key := fxRateKey(fromCurrency, toCurrency)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return decimal.Zero, fmt.Errorf("fx rate not cached for %s->%s", fromCurrency, toCurrency)
		}
		logger.Log.Errorw("failed to read fx rate cache", "key", key, "error", err)
		return decimal.Zero, err
	}

	rate, err := decimal.NewFromString(val)
	if err != nil {
		logger.Log.Errorw("invalid cached fx rate", "key", key, "value", val, "error", err)
		return decimal.Zero, err
	}
	return rate, nil
}

// SetRate caches a rate for the currency pair with the repository TTL.
func (r *FxRateCacheRepository) SetRate(ctx context.Context, fromCurrency, toCurrency string, rate decimal.Decimal) error {
	key := fxRateKey(fromCurrency, toCurrency)

	err := r.client.Set(ctx, key, rate.String(), r.exp).Err()
	if err != nil {
		logger.Log.Errorw("failed to cache fx rate", "key", key, "rate", rate, "error", err)
	}
	return err
}

func fxRateKey(fromCurrency, toCurrency string) string {
	return fmt.Sprintf("fx_rate:%s:%s", fromCurrency, toCurrency)
}
