package testutil

import (
	"database/sql"

	"github.com/carson-networks/moneywiz-decoder/internal/rowdata"
)

// Sample row ids written by Seed.
const (
	SampleDeposit          int64 = 101
	SampleWithdraw         int64 = 102
	SampleRefund           int64 = 103
	SampleBuy              int64 = 104
	SampleSell             int64 = 105
	SampleExchange         int64 = 106
	SampleReconcile        int64 = 107
	SampleTransferWithdraw int64 = 108
	SampleTransferDeposit  int64 = 109
	SampleTransferBudget   int64 = 110
	SampleBrokenBuy        int64 = 111
	SampleHolding          int64 = 201
	SampleBadHolding       int64 = 202
	SampleGroup            int64 = 301
)

// SampleRows is one row of every supported entity plus a budget transfer, a
// buy whose amount does not match its cost and a holding with an unknown
// object type.
func SampleRows() []rowdata.Row {
	return []rowdata.Row{
		With(DepositRow(SampleDeposit, "100.00", "90.00", "1.1111"), rowdata.Row{"ZDESC2": "Salary"}),
		WithdrawRow(SampleWithdraw, "-40.00", "40.00", "1"),
		RefundRow(SampleRefund, "15.00", "15.00", nil),
		BuyRow(SampleBuy, "-501.00", "1.00", "10", "50.00"),
		SellRow(SampleSell, "499.00", "1.00", "10", "50.00"),
		ExchangeRow(SampleExchange, "-1", "15", "0", "0", "BTC"),
		ReconcileRow(SampleReconcile, "1200.00", nil),
		TransferWithdrawRow(SampleTransferWithdraw, "-100.00", "-100.00", "90.00", "0.9"),
		TransferDepositRow(SampleTransferDeposit, "90.00", "90.00", "-100.00", "0.9"),
		TransferBudgetRow(SampleTransferBudget),
		BuyRow(SampleBrokenBuy, "-500.00", "1.00", "10", "50.00"),
		HoldingRow(SampleHolding, int64(0)),
		HoldingRow(SampleBadHolding, int64(7)),
		GroupRow(SampleGroup, "Banks", 1),
	}
}

// Seed writes SampleRows and the link tables that reference them.
func Seed(db *sql.DB) error {
	for _, row := range SampleRows() {
		if err := Insert(db, "ZSYNCOBJECT", row); err != nil {
			return err
		}
	}

	links := []struct {
		table string
		row   rowdata.Row
	}{
		{"ZCATEGORYASSIGMENT", rowdata.Row{"Z_PK": 1, "ZCATEGORY": 900, "ZTRANSACTION": SampleWithdraw, "ZAMOUNT": "-25.00"}},
		{"ZCATEGORYASSIGMENT", rowdata.Row{"Z_PK": 2, "ZCATEGORY": 901, "ZTRANSACTION": SampleWithdraw, "ZAMOUNT": "-15.00"}},
		{"ZCATEGORYASSIGMENT", rowdata.Row{"Z_PK": 3, "ZCATEGORY": 902, "ZTRANSACTION": nil, "ZAMOUNT": "0"}},
		{"ZWITHDRAWREFUNDTRANSACTIONLINK", rowdata.Row{"Z_PK": 1, "ZREFUNDTRANSACTION": SampleRefund, "ZWITHDRAWTRANSACTION": SampleWithdraw}},
		{"Z_36TAGS", rowdata.Row{"Z_36TRANSACTIONS": SampleDeposit, "Z_35TAGS": 501}},
		{"Z_36TAGS", rowdata.Row{"Z_36TRANSACTIONS": SampleDeposit, "Z_35TAGS": 500}},
		{"ZUSER", rowdata.Row{"Z_PK": 1, "ZSYNCLOGIN": "owner@example.com"}},
	}
	for _, link := range links {
		if err := Insert(db, link.table, link.row); err != nil {
			return err
		}
	}
	return nil
}
