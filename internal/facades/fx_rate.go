package facades

import (
	"context"

	"github.com/shopspring/decimal"

	pb "github.com/sbilibin2017/proto-exchange/exchange"

	"github.com/trip-collab/gw-trip-wallet/internal/logger"
)

// FxSourceGateway is stamped into fxSource when a rate was resolved by
// the exchange gateway rather than supplied by the caller.
const FxSourceGateway = "exchange-gateway"

// RateCache caches FX rates for a currency pair.
type RateCache interface {
	GetRate(ctx context.Context, fromCurrency, toCurrency string) (decimal.Decimal, error)
	SetRate(ctx context.Context, fromCurrency, toCurrency string, rate decimal.Decimal) error
}

// FxRateFacade resolves FX rates from the exchange gRPC service with a
// cache in front. It is optional: services treat a nil facade as "no
// resolver configured".
type FxRateFacade struct {
	client pb.ExchangeServiceClient
	cache  RateCache
}

// NewFxRateFacade creates the facade. cache may be nil.
func NewFxRateFacade(client pb.ExchangeServiceClient, cache RateCache) *FxRateFacade {
	return &FxRateFacade{client: client, cache: cache}
}

// RateFor returns the rate converting fromCurrency into toCurrency.
func (f *FxRateFacade) RateFor(ctx context.Context, fromCurrency, toCurrency string) (decimal.Decimal, error) {
	if f.cache != nil {
		if rate, err := f.cache.GetRate(ctx, fromCurrency, toCurrency); err == nil {
			return rate, nil
		}
	}

	resp, err := f.client.GetExchangeRateForCurrency(ctx, &pb.CurrencyRequest{
		FromCurrency: fromCurrency,
		ToCurrency:   toCurrency,
	})
	if err != nil {
		logger.Log.Errorw("failed to fetch fx rate via gRPC", "from", fromCurrency, "to", toCurrency, "error", err)
		return decimal.Zero, err
	}

	rate := decimal.NewFromFloat32(resp.Rate)

	if f.cache != nil {
		if err := f.cache.SetRate(ctx, fromCurrency, toCurrency, rate); err != nil {
			logger.Log.Errorw("failed to cache fx rate", "from", fromCurrency, "to", toCurrency, "rate", rate, "error", err)
		}
	}

	return rate, nil
}
