package model

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/moneywiz-decoder/internal/decodeerr"
	"github.com/carson-networks/moneywiz-decoder/internal/rowdata"
	"github.com/carson-networks/moneywiz-decoder/internal/testutil"
)

var tol = DefaultTolerances()

func requireViolation(t *testing.T, err error, invariant string) {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, decodeerr.ErrInvariantViolation)

	var de *decodeerr.DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, invariant, de.Invariant)
	assert.NotEmpty(t, de.Fields)
}

// -- Base transaction tests --

func TestTransactionBase_Fields(t *testing.T) {
	occurred := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	row := testutil.With(testutil.DepositRow(5, "100.00", "100.00", nil), rowdata.Row{
		"ZRECONCILED": int64(1),
		"ZDESC2":      "Salary",
		"ZNOTES1":     "march",
	})

	dep, err := NewDeposit(row, tol)

	require.NoError(t, err)
	assert.Equal(t, ID(5), dep.ID)
	assert.Equal(t, testutil.GID(5), dep.GID)
	assert.True(t, dep.Reconciled)
	assert.Equal(t, "Salary", dep.Description)
	assert.True(t, occurred.Equal(dep.OccurredAt))
	require.NotNil(t, dep.Notes)
	assert.Equal(t, "march", *dep.Notes)
	assert.Equal(t, KindDeposit, dep.Kind())
	assert.True(t, dep.Common().Amount.Equal(dec("100")))
}

func TestTransactionBase_EmptyGID(t *testing.T) {
	row := testutil.With(testutil.DepositRow(5, "1", "1", nil), rowdata.Row{rowdata.ColumnGID: ""})

	_, err := NewDeposit(row, tol)

	assert.ErrorIs(t, err, decodeerr.ErrMissingField)
}

func TestTransactionBase_ZeroID(t *testing.T) {
	_, err := NewDeposit(testutil.DepositRow(0, "1", "1", nil), tol)

	require.ErrorIs(t, err, decodeerr.ErrMissingField)
	var de *decodeerr.DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, rowdata.ColumnPK, de.Column)
}

func TestMissingAmount_AllVariants(t *testing.T) {
	constructors := []struct {
		kind   Kind
		row    rowdata.Row
		decode func(rowdata.Row) error
	}{
		{KindDeposit, testutil.DepositRow(1, "1", "1", nil), func(r rowdata.Row) error {
			_, err := NewDeposit(r, tol)
			return err
		}},
		{KindWithdraw, testutil.WithdrawRow(1, "-1", "-1", nil), func(r rowdata.Row) error {
			_, err := NewWithdraw(r, tol)
			return err
		}},
		{KindRefund, testutil.RefundRow(1, "1", "1", nil), func(r rowdata.Row) error {
			_, err := NewRefund(r, tol)
			return err
		}},
		{KindInvestmentBuy, testutil.BuyRow(1, "-1", "0", "1", "1"), func(r rowdata.Row) error {
			_, err := NewInvestmentBuy(r, tol)
			return err
		}},
		{KindInvestmentSell, testutil.SellRow(1, "1", "0", "1", "1"), func(r rowdata.Row) error {
			_, err := NewInvestmentSell(r, tol)
			return err
		}},
		{KindInvestmentExchange, testutil.ExchangeRow(1, "-1", "1", "0", "0", "BTC"), func(r rowdata.Row) error {
			_, err := NewInvestmentExchange(r, tol)
			return err
		}},
		{KindReconcile, testutil.ReconcileRow(1, "1", nil), func(r rowdata.Row) error {
			_, err := NewReconcile(r, tol)
			return err
		}},
		{KindTransferDeposit, testutil.TransferDepositRow(1, "1", "1", "-1", "1"), func(r rowdata.Row) error {
			_, err := NewTransferDeposit(r, tol)
			return err
		}},
		{KindTransferWithdraw, testutil.TransferWithdrawRow(1, "-1", "-1", "1", "1"), func(r rowdata.Row) error {
			_, err := NewTransferWithdraw(r, tol)
			return err
		}},
		{KindTransferBudget, testutil.TransferBudgetRow(1), RejectTransferBudget},
	}
	require.Len(t, constructors, len(TransactionKinds()))

	for _, c := range constructors {
		t.Run(string(c.kind), func(t *testing.T) {
			err := c.decode(testutil.Without(c.row, "ZAMOUNT1"))

			require.Error(t, err)
			assert.ErrorIs(t, err, decodeerr.ErrMissingField)

			var de *decodeerr.DecodeError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, "ZAMOUNT1", de.Column)
		})
	}
}

// -- Deposit tests --

func TestNewDeposit_RateWithinTolerance(t *testing.T) {
	dep, err := NewDeposit(testutil.DepositRow(1, "100.00", "90.00", "1.1111"), tol)

	require.NoError(t, err)
	assert.True(t, dep.Amount.Equal(dec("100")))
	require.True(t, dep.OriginalExchangeRate.Valid)
	assert.True(t, dep.OriginalExchangeRate.Decimal.Equal(dec("1.1111")))
	assert.Equal(t, ID(1), dep.AccountID())
}

func TestNewDeposit_RateOutsideTolerance(t *testing.T) {
	_, err := NewDeposit(testutil.DepositRow(1, "100.00", "90.00", "1.111"), tol)

	requireViolation(t, err, "amount_matches_converted_original_amount")
}

func TestNewDeposit_ZeroRateIsUnknown(t *testing.T) {
	dep, err := NewDeposit(testutil.DepositRow(1, "100.00", "10.00", "0"), tol)

	require.NoError(t, err)
	assert.False(t, dep.OriginalExchangeRate.Valid)
	assert.Nil(t, dep.AsMap()["original_exchange_rate"])
}

func TestNewDeposit_SignMismatch(t *testing.T) {
	_, err := NewDeposit(testutil.DepositRow(1, "-100.00", "100.00", nil), tol)

	requireViolation(t, err, "amount_original_amount_same_sign")
}

func TestNewDeposit_ZeroAmount(t *testing.T) {
	_, err := NewDeposit(testutil.DepositRow(1, "0", "0", nil), tol)

	requireViolation(t, err, "amount_original_amount_same_sign")
}

func TestNewDeposit_FloatColumns(t *testing.T) {
	dep, err := NewDeposit(testutil.DepositRow(1, 12.5, 12.5, 1.0), tol)

	require.NoError(t, err)
	assert.True(t, dep.Amount.Equal(dec("12.5")))
}

// -- Withdraw tests --

func TestNewWithdraw_FixesFlippedSign(t *testing.T) {
	w, err := NewWithdraw(testutil.WithdrawRow(1, "-100.00", "90.00", "1.1111"), tol)

	require.NoError(t, err)
	assert.True(t, w.OriginalAmount.Equal(dec("-90")))
}

func TestNewWithdraw_UsesWiderTolerance(t *testing.T) {
	w, err := NewWithdraw(testutil.WithdrawRow(1, "-100.00", "-90.00", "1.111"), tol)

	require.NoError(t, err)
	assert.Equal(t, KindWithdraw, w.Kind())

	_, err = NewWithdraw(testutil.WithdrawRow(1, "-100.00", "-90.00", "1.11"), tol)
	requireViolation(t, err, "amount_matches_converted_original_amount")
}

func TestNewWithdraw_CustomTolerance(t *testing.T) {
	strict := Tolerances{Default: DefaultTolerance, Withdraw: DefaultTolerance}

	_, err := NewWithdraw(testutil.WithdrawRow(1, "-100.00", "-90.00", "1.111"), strict)

	requireViolation(t, err, "amount_matches_converted_original_amount")
}

// -- Refund tests --

func TestNewRefund(t *testing.T) {
	r, err := NewRefund(testutil.RefundRow(1, "25.00", "25.00", "1"), tol)

	require.NoError(t, err)
	assert.Equal(t, "RefundTransaction", r.EntityName())
}

func TestNewRefund_NonPositive(t *testing.T) {
	_, err := NewRefund(testutil.RefundRow(1, "-25.00", "-25.00", nil), tol)
	requireViolation(t, err, "amount_positive")

	_, err = NewRefund(testutil.RefundRow(1, "25.00", "0", nil), tol)
	requireViolation(t, err, "original_amount_positive")
}

// -- InvestmentBuy tests --

func TestNewInvestmentBuy(t *testing.T) {
	b, err := NewInvestmentBuy(testutil.BuyRow(1, "-501.00", "1.00", "10", "50.00"), tol)

	require.NoError(t, err)
	assert.True(t, b.NumberOfShares.Equal(dec("10")))
	assert.Equal(t, "ACME", b.Symbol)
	assert.Equal(t, ID(10), b.InvestmentHolding)

	cost := b.NumberOfShares.Mul(b.PricePerShare).Add(b.Fee).Neg()
	assert.True(t, ApproxEqual(cost, b.Amount, DefaultTolerance))
}

func TestNewInvestmentBuy_CostMismatch(t *testing.T) {
	_, err := NewInvestmentBuy(testutil.BuyRow(1, "-500.00", "1.00", "10", "50.00"), tol)

	requireViolation(t, err, "amount_matches_cost")
}

func TestNewInvestmentBuy_NegativeFeeClamped(t *testing.T) {
	b, err := NewInvestmentBuy(testutil.BuyRow(1, "-500.00", "-0.0004", "10", "50.00"), tol)

	require.NoError(t, err)
	assert.True(t, b.Fee.IsZero())
}

func TestNewInvestmentBuy_Violations(t *testing.T) {
	tests := []struct {
		name      string
		row       rowdata.Row
		invariant string
	}{
		{"positive amount", testutil.BuyRow(1, "501.00", "1.00", "10", "50.00"), "amount_not_positive"},
		{"zero shares", testutil.BuyRow(1, "-1.00", "1.00", "0", "50.00"), "shares_positive"},
		{"negative price", testutil.BuyRow(1, "-1.00", "1.00", "10", "-0.5"), "price_not_negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewInvestmentBuy(tt.row, tol)
			requireViolation(t, err, tt.invariant)
		})
	}
}

// -- InvestmentSell tests --

func TestNewInvestmentSell(t *testing.T) {
	s, err := NewInvestmentSell(testutil.SellRow(1, "499.00", "1.00", "10", "50.00"), tol)

	require.NoError(t, err)
	proceeds := s.NumberOfShares.Mul(s.PricePerShare).Sub(s.Fee)
	assert.True(t, ApproxEqual(proceeds, s.Amount, DefaultTolerance))
}

func TestNewInvestmentSell_LossAfterFees(t *testing.T) {
	s, err := NewInvestmentSell(testutil.SellRow(1, "-0.50", "1.00", "1", "0.50"), tol)

	require.NoError(t, err)
	assert.True(t, s.Amount.IsNegative())
}

func TestNewInvestmentSell_ProceedsMismatch(t *testing.T) {
	_, err := NewInvestmentSell(testutil.SellRow(1, "500.00", "1.00", "10", "50.00"), tol)

	requireViolation(t, err, "amount_matches_proceeds")
}

// -- InvestmentExchange tests --

func TestNewInvestmentExchange_FoldsFee(t *testing.T) {
	e, err := NewInvestmentExchange(testutil.ExchangeRow(1, "-1", "15", "2.00", "0.0005", "BTC"), tol)

	require.NoError(t, err)
	assert.True(t, e.FromNumberOfShares.Equal(dec("-0.9995")))
	assert.True(t, e.ToNumberOfShares.Equal(dec("15")))
	assert.Equal(t, ID(1), e.AccountID())
}

func TestNewInvestmentExchange_Violations(t *testing.T) {
	tests := []struct {
		name      string
		row       rowdata.Row
		invariant string
	}{
		{"positive source shares", testutil.ExchangeRow(1, "1", "15", "0", "0", "BTC"), "from_shares_not_positive"},
		{"negative destination shares", testutil.ExchangeRow(1, "-1", "-15", "0", "0", "ETH"), "to_shares_not_negative"},
		{"fee currency unrelated", testutil.ExchangeRow(1, "-1", "15", "0", "0", "DOGE"), "fee_currency_matches_symbol"},
		{"fee currency missing", testutil.ExchangeRow(1, "-1", "15", "0", "0", nil), "fee_currency_matches_symbol"},
		{"fee without original fee", testutil.ExchangeRow(1, "-1", "15", "2.00", "0", "ETH"), "fee_has_original_fee"},
		{"empty source symbol", testutil.With(testutil.ExchangeRow(1, "-1", "15", "0", "0", "BTC"), rowdata.Row{"ZFROMSYMBOL": ""}), "from_symbol_present"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewInvestmentExchange(tt.row, tol)
			requireViolation(t, err, tt.invariant)
		})
	}
}

// -- Reconcile tests --

func TestNewReconcile(t *testing.T) {
	r, err := NewReconcile(testutil.ReconcileRow(1, nil, "4.5"), tol)

	require.NoError(t, err)
	assert.False(t, r.ReconcileAmount.Valid)
	assert.True(t, r.ReconcileNumberOfShares.Decimal.Equal(dec("4.5")))

	_, err = NewReconcile(testutil.ReconcileRow(1, nil, nil), tol)
	requireViolation(t, err, "reconcile_balance_present")
}

// -- TransferDeposit tests --

func TestNewTransferDeposit(t *testing.T) {
	td, err := NewTransferDeposit(testutil.TransferDepositRow(1, "90.00", "-90.00", "-100.00", "0.9"), tol)

	require.NoError(t, err)
	assert.True(t, td.OriginalAmount.Equal(dec("90")))
	assert.False(t, td.HasHolding())

	converted := td.SenderAmount.Neg().Mul(td.OriginalExchangeRate)
	assert.True(t, ApproxEqual(td.OriginalAmount, converted, DefaultTolerance))
}

func TestNewTransferDeposit_Violations(t *testing.T) {
	tests := []struct {
		name      string
		row       rowdata.Row
		invariant string
	}{
		{"non-positive amount", testutil.TransferDepositRow(1, "-90", "90", "-100", "0.9"), "amount_positive"},
		{"positive sender amount", testutil.TransferDepositRow(1, "90", "90", "100", "0.9"), "sender_amount_not_positive"},
		{"cash leg mismatch", testutil.TransferDepositRow(1, "91", "90", "-100", "0.9"), "amount_matches_original_amount"},
		{"rate mismatch", testutil.TransferDepositRow(1, "90", "90", "-100", "0.8"), "original_amount_matches_converted_sender_amount"},
		{
			"incomplete holding leg",
			testutil.With(testutil.TransferDepositRow(1, "90", "90", "-100", "0.9"), rowdata.Row{"ZINVESTMENTHOLDING": int64(3)}),
			"holding_leg_complete",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTransferDeposit(tt.row, tol)
			requireViolation(t, err, tt.invariant)
		})
	}
}

func TestNewTransferDeposit_ForexLeg(t *testing.T) {
	row := testutil.With(testutil.TransferDepositRow(1, "95", "90", "-100", "0.9"), rowdata.Row{
		"ZINVESTMENTHOLDING": int64(3),
		"ZNUMBEROFSHARES1":   "90",
		"ZPRICEPERSHARE1":    "1.0555",
		"ZSYMBOL1":           "EUR",
	})

	td, err := NewTransferDeposit(row, tol)

	require.NoError(t, err)
	assert.True(t, td.HasHolding())
	assert.Equal(t, "EUR", td.AsMap()["symbol"])
}

// -- TransferWithdraw tests --

func TestNewTransferWithdraw(t *testing.T) {
	tw, err := NewTransferWithdraw(testutil.TransferWithdrawRow(1, "-100.00", "-100.00", "-90.00", "0.9"), tol)

	require.NoError(t, err)
	assert.True(t, tw.RecipientAmount.Equal(dec("90")))

	converted := tw.RecipientAmount.Neg().Div(tw.OriginalExchangeRate)
	assert.True(t, ApproxEqual(tw.OriginalAmount, converted, DefaultTolerance))
}

func TestNewTransferWithdraw_Violations(t *testing.T) {
	tests := []struct {
		name      string
		row       rowdata.Row
		invariant string
	}{
		{"non-negative amount", testutil.TransferWithdrawRow(1, "100", "-100", "90", "0.9"), "amount_negative"},
		{"non-negative original amount", testutil.TransferWithdrawRow(1, "-100", "100", "90", "0.9"), "original_amount_negative"},
		{"cash leg not exact", testutil.TransferWithdrawRow(1, "-100.0001", "-100", "90", "0.9"), "amount_equals_original_amount"},
		{"zero rate", testutil.TransferWithdrawRow(1, "-100", "-100", "90", "0"), "exchange_rate_nonzero"},
		{"rate mismatch", testutil.TransferWithdrawRow(1, "-100", "-100", "90", "0.8"), "original_amount_matches_converted_recipient_amount"},
		{
			"holding without fee",
			testutil.With(testutil.TransferWithdrawRow(1, "-100", "-100", "90", "0.9"), rowdata.Row{
				"ZINVESTMENTHOLDING": int64(3),
				"ZNUMBEROFSHARES1":   "100",
				"ZPRICEPERSHARE1":    "1",
				"ZSYMBOL1":           "USD",
			}),
			"holding_leg_complete",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTransferWithdraw(tt.row, tol)
			requireViolation(t, err, tt.invariant)
		})
	}
}

// -- TransferBudget tests --

func TestRejectTransferBudget(t *testing.T) {
	err := RejectTransferBudget(testutil.TransferBudgetRow(1))

	assert.ErrorIs(t, err, decodeerr.ErrNotImplemented)
	assert.NotErrorIs(t, err, decodeerr.ErrMissingField)
}

// -- AsMap tests --

func TestAsMap_Snapshot(t *testing.T) {
	b, err := NewInvestmentBuy(testutil.BuyRow(7, "-501.00", "1.00", "10", "50.00"), tol)
	require.NoError(t, err)

	m := b.AsMap()

	assert.Equal(t, ID(7), m["id"])
	assert.Equal(t, "InvestmentBuyTransaction", m["kind"])
	assert.Equal(t, "ACME", m["symbol"])
	assert.True(t, m["amount"].(decimal.Decimal).Equal(dec("-501")))
	assert.Nil(t, m["notes"])
}

func TestTransaction_ClosedSet(t *testing.T) {
	var txs []Transaction
	dep, err := NewDeposit(testutil.DepositRow(1, "1", "1", nil), tol)
	require.NoError(t, err)
	rec, err := NewReconcile(testutil.ReconcileRow(2, "1", nil), tol)
	require.NoError(t, err)
	txs = append(txs, dep, rec)

	for _, tx := range txs {
		switch tx.(type) {
		case Deposit, Reconcile:
		default:
			t.Fatalf("unexpected variant %T", tx)
		}
		_, scoped := tx.(AccountScoped)
		assert.True(t, scoped)
	}
}
