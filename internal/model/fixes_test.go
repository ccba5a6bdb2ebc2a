package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// -- unknownRateIfZero tests --

func TestUnknownRateIfZero(t *testing.T) {
	tests := []struct {
		name string
		rate decimal.NullDecimal
		want decimal.NullDecimal
	}{
		{"zero becomes absent", decimal.NewNullDecimal(decimal.Zero), decimal.NullDecimal{}},
		{"absent stays absent", decimal.NullDecimal{}, decimal.NullDecimal{}},
		{"nonzero kept", decimal.NewNullDecimal(dec("1.25")), decimal.NewNullDecimal(dec("1.25"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			once := unknownRateIfZero(tt.rate)
			twice := unknownRateIfZero(once)

			assert.Equal(t, tt.want.Valid, once.Valid)
			assert.True(t, tt.want.Decimal.Equal(once.Decimal))
			assert.Equal(t, once, twice)
		})
	}
}

// -- alignSign tests --

func TestAlignSign(t *testing.T) {
	tests := []struct {
		name      string
		reference string
		value     string
		want      string
	}{
		{"flipped negative", "-100", "90", "-90"},
		{"flipped positive", "100", "-90", "90"},
		{"already aligned", "-100", "-90", "-90"},
		{"zero reference", "0", "-90", "-90"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			once := alignSign(dec(tt.reference), dec(tt.value))

			assert.True(t, dec(tt.want).Equal(once), "got %s", once)
			assert.True(t, once.Equal(alignSign(dec(tt.reference), once)))
		})
	}
}

// -- clampFee tests --

func TestClampFee(t *testing.T) {
	assert.True(t, clampFee(dec("-0.0001")).IsZero())
	assert.True(t, clampFee(dec("1.50")).Equal(dec("1.5")))
	assert.True(t, clampFee(clampFee(dec("-3"))).IsZero())
}

// -- unsignedAmount tests --

func TestUnsignedAmount(t *testing.T) {
	for _, s := range []string{"-12.34", "12.34", "0"} {
		once := unsignedAmount(dec(s))
		assert.True(t, once.Equal(unsignedAmount(once)), s)
		assert.False(t, once.IsNegative(), s)
		assert.True(t, once.Equal(dec(s).Abs()), s)
	}
}

// -- foldExchangeFee tests --

func TestFoldExchangeFee(t *testing.T) {
	btc, eth, doge := "BTC", "ETH", "DOGE"
	tests := []struct {
		name     string
		currency *string
		wantFrom string
		wantTo   string
	}{
		{"fee in source symbol", &btc, "-0.9995", "15"},
		{"fee in destination symbol", &eth, "-1", "15.0005"},
		{"fee in other symbol", &doge, "-1", "15"},
		{"no fee currency", nil, "-1", "15"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to := foldExchangeFee(tt.currency, btc, eth, dec("0.0005"), dec("-1"), dec("15"))

			assert.True(t, dec(tt.wantFrom).Equal(from), "from %s", from)
			assert.True(t, dec(tt.wantTo).Equal(to), "to %s", to)
		})
	}
}

// -- ApproxEqual tests --

func TestApproxEqual(t *testing.T) {
	assert.True(t, ApproxEqual(dec("100.00"), dec("99.999"), DefaultTolerance))
	assert.False(t, ApproxEqual(dec("100.00"), dec("99.99"), DefaultTolerance))
	assert.True(t, ApproxEqual(dec("100.00"), dec("99.99"), WithdrawTolerance))
	assert.True(t, ApproxEqual(dec("-5"), dec("-5"), decimal.Zero))
}
