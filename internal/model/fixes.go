package model

import (
	"github.com/shopspring/decimal"
)

// Fix-ups correct anomalies the upstream application is known to store. They
// are pure and idempotent; constructors apply each one exactly once, after
// extraction and before validation.

// unknownRateIfZero treats a stored exchange rate of zero as "no rate".
func unknownRateIfZero(rate decimal.NullDecimal) decimal.NullDecimal {
	if rate.Valid && rate.Decimal.IsZero() {
		return decimal.NullDecimal{}
	}
	return rate
}

// alignSign negates value when it carries the opposite sign of reference.
// Some currency pairs are stored with the original amount's sign flipped.
func alignSign(reference, value decimal.Decimal) decimal.Decimal {
	if reference.Mul(value).IsNegative() {
		return value.Neg()
	}
	return value
}

// clampFee drops the negative rounding artifacts sometimes stored as fees.
func clampFee(fee decimal.Decimal) decimal.Decimal {
	return decimal.Max(fee, decimal.Zero)
}

// unsignedAmount strips the sign from a transfer leg amount the upstream
// application stores with either sign.
func unsignedAmount(amount decimal.Decimal) decimal.Decimal {
	return amount.Abs()
}

// foldExchangeFee adds the original fee to the share count of the side whose
// symbol the fee was charged in. Stored share counts exclude the fee.
func foldExchangeFee(feeCurrency *string, fromSymbol, toSymbol string, originalFee, fromShares, toShares decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	if feeCurrency == nil {
		return fromShares, toShares
	}
	switch *feeCurrency {
	case fromSymbol:
		return fromShares.Add(originalFee), toShares
	case toSymbol:
		return fromShares, toShares.Add(originalFee)
	}
	return fromShares, toShares
}
