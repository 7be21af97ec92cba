package money

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/trip-collab/gw-trip-wallet/internal/apperrors"
)

// Monetary scales. Amounts become authoritative at 2 decimals; wallet
// balances are stored at 6 to keep exchange residue exact.
const (
	AmountScale  = 2
	BalanceScale = 6
)

// Cent is the smallest representable amount step.
var Cent = decimal.New(1, -AmountScale)

// NormalizeCurrency canonicalizes a currency code: trimmed, upper-cased,
// exactly three ASCII letters.
func NormalizeCurrency(code, field string) (string, error) {
	v := strings.ToUpper(strings.TrimSpace(code))
	if v == "" {
		return "", apperrors.Invalidf("%s is required", field)
	}
	if len(v) != 3 {
		return "", apperrors.Invalidf("%s must be 3 letters", field)
	}
	for _, c := range v {
		if c < 'A' || c > 'Z' {
			return "", apperrors.Invalidf("%s must be 3 letters", field)
		}
	}
	return v, nil
}

// NormalizeCurrencyOptional canonicalizes a currency code, treating a
// blank value as absent.
func NormalizeCurrencyOptional(code, field string) (string, error) {
	if strings.TrimSpace(code) == "" {
		return "", nil
	}
	return NormalizeCurrency(code, field)
}

// Round2 rounds to 2 decimals, half away from zero. Amounts here are
// non-negative, so this matches half-up.
func Round2(v decimal.Decimal) decimal.Decimal {
	return v.Round(AmountScale)
}

// RequirePositive normalizes v to 2 decimals and fails unless the result
// is strictly positive.
func RequirePositive(v decimal.Decimal, field string) (decimal.Decimal, error) {
	n := Round2(v)
	if n.Sign() <= 0 {
		return decimal.Zero, apperrors.Invalidf("%s must be > 0", field)
	}
	return n, nil
}

// RequirePositiveRate fails unless v is strictly positive. Rates keep
// their full supplied precision.
func RequirePositiveRate(v decimal.Decimal, field string) (decimal.Decimal, error) {
	if v.Sign() <= 0 {
		return decimal.Zero, apperrors.Invalidf("%s must be > 0", field)
	}
	return v, nil
}
