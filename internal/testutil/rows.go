// Package testutil holds row builders and a migrated SQLite fixture shared by
// package tests.
package testutil

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/moneywiz-decoder/internal/rowdata"
)

// Entity numbers used by the fixture Z_PRIMARYKEY table.
const (
	EntGroup              int64 = 22
	EntInvestmentHolding  int64 = 24
	EntDeposit            int64 = 37
	EntInvestmentExchange int64 = 38
	EntInvestmentBuy      int64 = 40
	EntInvestmentSell     int64 = 41
	EntReconcile          int64 = 42
	EntRefund             int64 = 43
	EntTransferBudget     int64 = 44
	EntTransferDeposit    int64 = 45
	EntTransferWithdraw   int64 = 46
	EntWithdraw           int64 = 47
)

var referenceDate = time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)

// Seconds converts t to the store's representation: seconds since
// 2001-01-01T00:00:00Z.
func Seconds(t time.Time) float64 {
	return t.Sub(referenceDate).Seconds()
}

// Decimal parses s and panics on malformed input.
func Decimal(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// GID is the gid RecordRow assigns to id.
func GID(id int64) string {
	return fmt.Sprintf("GID-%04d", id)
}

// RecordRow returns the columns every entity carries.
func RecordRow(id, ent int64) rowdata.Row {
	return rowdata.Row{
		rowdata.ColumnPK:        id,
		rowdata.ColumnEnt:       ent,
		rowdata.ColumnGID:       GID(id),
		rowdata.ColumnCreatedAt: Seconds(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
	}
}

// TransactionRow returns a record row with the common transaction columns.
func TransactionRow(id, ent int64, amount any, occurredAt time.Time) rowdata.Row {
	return With(RecordRow(id, ent), rowdata.Row{
		"ZRECONCILED": int64(0),
		"ZAMOUNT1":    amount,
		"ZDESC2":      "",
		"ZDATE1":      Seconds(occurredAt),
		"ZNOTES1":     nil,
		"ZACCOUNT2":   int64(1),
	})
}

// With returns a copy of row with extra applied on top.
func With(row rowdata.Row, extra rowdata.Row) rowdata.Row {
	out := make(rowdata.Row, len(row)+len(extra))
	for k, v := range row {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

// Without returns a copy of row without the given columns.
func Without(row rowdata.Row, columns ...string) rowdata.Row {
	out := With(row, nil)
	for _, c := range columns {
		delete(out, c)
	}
	return out
}

var day = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

// DepositRow is a valid DepositTransaction unless the arguments break it.
func DepositRow(id int64, amount, originalAmount, rate any) rowdata.Row {
	return With(TransactionRow(id, EntDeposit, amount, day), rowdata.Row{
		"ZPAYEE2":               nil,
		"ZORIGINALCURRENCY":     "USD",
		"ZORIGINALAMOUNT":       originalAmount,
		"ZORIGINALEXCHANGERATE": rate,
	})
}

// WithdrawRow is a WithdrawTransaction row.
func WithdrawRow(id int64, amount, originalAmount, rate any) rowdata.Row {
	row := DepositRow(id, amount, originalAmount, rate)
	row[rowdata.ColumnEnt] = EntWithdraw
	return row
}

// RefundRow is a RefundTransaction row.
func RefundRow(id int64, amount, originalAmount, rate any) rowdata.Row {
	row := DepositRow(id, amount, originalAmount, rate)
	row[rowdata.ColumnEnt] = EntRefund
	return row
}

// BuyRow is an InvestmentBuyTransaction row on holding 10.
func BuyRow(id int64, amount, fee, shares, price any) rowdata.Row {
	return With(TransactionRow(id, EntInvestmentBuy, amount, day), rowdata.Row{
		"ZFEE2":              fee,
		"ZINVESTMENTHOLDING": int64(10),
		"ZNUMBEROFSHARES1":   shares,
		"ZPRICEPERSHARE1":    price,
		"ZSYMBOL1":           "ACME",
	})
}

// SellRow is an InvestmentSellTransaction row on holding 10.
func SellRow(id int64, amount, fee, shares, price any) rowdata.Row {
	row := BuyRow(id, amount, fee, shares, price)
	row[rowdata.ColumnEnt] = EntInvestmentSell
	return row
}

// ExchangeRow is an InvestmentExchangeTransaction row from BTC to ETH.
func ExchangeRow(id int64, fromShares, toShares, fee, originalFee, feeCurrency any) rowdata.Row {
	return With(TransactionRow(id, EntInvestmentExchange, "0", day), rowdata.Row{
		"ZFROMINVESTMENTHOLDING": int64(11),
		"ZFROMSYMBOL":            "BTC",
		"ZTOINVESTMENTHOLDING":   int64(12),
		"ZTOSYMBOL":              "ETH",
		"ZFROMNUMBEROFSHARES":    fromShares,
		"ZTONUMBEROFSHARES":      toShares,
		"ZFEE2":                  fee,
		"ZORIGINALFEE":           originalFee,
		"ZORIGINALFEECURRENCY":   feeCurrency,
	})
}

// ReconcileRow is a ReconcileTransaction row.
func ReconcileRow(id int64, amount, shares any) rowdata.Row {
	return With(TransactionRow(id, EntReconcile, "0", day), rowdata.Row{
		"ZRECONCILEAMOUNT":         amount,
		"ZRECONCILENUMBEROFSHARES": shares,
	})
}

// TransferDepositRow is a cash TransferDepositTransaction row from account 2.
func TransferDepositRow(id int64, amount, originalAmount, senderAmount, rate any) rowdata.Row {
	return With(TransactionRow(id, EntTransferDeposit, amount, day), rowdata.Row{
		"ZINVESTMENTHOLDING":      nil,
		"ZNUMBEROFSHARES1":        nil,
		"ZPRICEPERSHARE1":         nil,
		"ZSYMBOL1":                nil,
		"ZSENDERACCOUNT":          int64(2),
		"ZSENDERTRANSACTION":      id + 1,
		"ZORIGINALAMOUNT":         originalAmount,
		"ZORIGINALCURRENCY":       "EUR",
		"ZORIGINALSENDERAMOUNT":   senderAmount,
		"ZORIGINALSENDERCURRENCY": "USD",
		"ZORIGINALEXCHANGERATE":   rate,
	})
}

// TransferWithdrawRow is a cash TransferWithdrawTransaction row to account 2.
func TransferWithdrawRow(id int64, amount, originalAmount, recipientAmount, rate any) rowdata.Row {
	return With(TransactionRow(id, EntTransferWithdraw, amount, day), rowdata.Row{
		"ZFEE2":                      nil,
		"ZINVESTMENTHOLDING":         nil,
		"ZNUMBEROFSHARES1":           nil,
		"ZPRICEPERSHARE1":            nil,
		"ZSYMBOL1":                   nil,
		"ZRECIPIENTACCOUNT1":         int64(2),
		"ZRECIPIENTTRANSACTION":      id + 1,
		"ZORIGINALAMOUNT":            originalAmount,
		"ZORIGINALCURRENCY":          "USD",
		"ZORIGINALRECIPIENTAMOUNT":   recipientAmount,
		"ZORIGINALRECIPIENTCURRENCY": "EUR",
		"ZORIGINALFEE":               nil,
		"ZORIGINALFEECURRENCY":       nil,
		"ZORIGINALEXCHANGERATE":      rate,
	})
}

// TransferBudgetRow is a TransferBudgetTransaction row.
func TransferBudgetRow(id int64) rowdata.Row {
	return TransactionRow(id, EntTransferBudget, "10", day)
}

// HoldingRow is an InvestmentHolding row in account 1.
func HoldingRow(id int64, objectType any) rowdata.Row {
	return With(RecordRow(id, EntInvestmentHolding), rowdata.Row{
		"ZINVESTMENTACCOUNT":              int64(1),
		"ZOPENNINGNUMBEROFSHARES":         nil,
		"ZNUMBEROFSHARES":                 "12.5",
		"ZSYMBOL":                         "ACME",
		"ZHOLDINGTYPE":                    nil,
		"ZDESC":                           "Acme Corp",
		"ZISPRICEPERSHAREAVAILABLEONLINE": int64(1),
		"ZINVESTMENTOBJECTTYPE":           objectType,
		"ZCOSTBASISOFMISSINGOBSHARES":     "250.00",
	})
}

// GroupRow is a Group row owned by user 1.
func GroupRow(id int64, name string, groupID int64) rowdata.Row {
	return With(RecordRow(id, EntGroup), rowdata.Row{
		"ZNAME4":         name,
		"ZGROUPID3":      groupID,
		"ZDISPLAYORDER4": groupID,
		"ZUSER5":         int64(1),
	})
}
