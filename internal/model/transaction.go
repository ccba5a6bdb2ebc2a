package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/moneywiz-decoder/internal/decodeerr"
	"github.com/carson-networks/moneywiz-decoder/internal/rowdata"
)

// Kind is the discriminator of a transaction variant. Its value is the Core
// Data entity name the row is stored under.
type Kind string

const (
	KindDeposit            Kind = "DepositTransaction"
	KindWithdraw           Kind = "WithdrawTransaction"
	KindRefund             Kind = "RefundTransaction"
	KindInvestmentBuy      Kind = "InvestmentBuyTransaction"
	KindInvestmentSell     Kind = "InvestmentSellTransaction"
	KindInvestmentExchange Kind = "InvestmentExchangeTransaction"
	KindReconcile          Kind = "ReconcileTransaction"
	KindTransferDeposit    Kind = "TransferDepositTransaction"
	KindTransferWithdraw   Kind = "TransferWithdrawTransaction"
	KindTransferBudget     Kind = "TransferBudgetTransaction"
)

// TransactionKinds lists every transaction discriminator, including the ones
// that are recognised but not decoded.
func TransactionKinds() []Kind {
	return []Kind{
		KindDeposit,
		KindWithdraw,
		KindRefund,
		KindInvestmentBuy,
		KindInvestmentSell,
		KindInvestmentExchange,
		KindReconcile,
		KindTransferDeposit,
		KindTransferWithdraw,
		KindTransferBudget,
	}
}

// Transaction is the closed set of decoded transaction variants. Use a type
// switch over the concrete types for exhaustive handling.
type Transaction interface {
	Entity
	Kind() Kind
	Common() TransactionBase
	transaction()
}

// Transaction columns shared by every variant.
const (
	colReconciled  = "ZRECONCILED"
	colAmount      = "ZAMOUNT1"
	colDescription = "ZDESC2"
	colDate        = "ZDATE1"
	colNotes       = "ZNOTES1"
	colAccount     = "ZACCOUNT2"
)

// TransactionBase holds the attributes every transaction carries.
type TransactionBase struct {
	Record
	Reconciled  bool
	Amount      decimal.Decimal
	Description string
	OccurredAt  time.Time
	Notes       *string
}

func newTransactionBase(row rowdata.Row) (TransactionBase, error) {
	record, err := newRecord(row)
	if err != nil {
		return TransactionBase{}, err
	}
	amount, err := row.Decimal(colAmount)
	if err != nil {
		return TransactionBase{}, err
	}
	description, err := row.String(colDescription)
	if err != nil {
		return TransactionBase{}, err
	}
	occurredAt, err := row.Datetime(colDate)
	if err != nil {
		return TransactionBase{}, err
	}
	notes, err := row.NullableString(colNotes)
	if err != nil {
		return TransactionBase{}, err
	}

	return TransactionBase{
		Record:      record,
		Reconciled:  row.Flag(colReconciled),
		Amount:      amount,
		Description: description,
		OccurredAt:  occurredAt,
		Notes:       notes,
	}, nil
}

// Common returns the attributes shared by all variants.
func (t TransactionBase) Common() TransactionBase {
	return t
}

func (TransactionBase) transaction() {}

func (t TransactionBase) baseMap(kind Kind) map[string]any {
	m := t.recordMap()
	m["kind"] = string(kind)
	m["reconciled"] = t.Reconciled
	m["amount"] = t.Amount
	m["description"] = t.Description
	m["occurred_at"] = t.OccurredAt
	m["notes"] = stringValue(t.Notes)
	return m
}

// RejectTransferBudget extracts the common fields of a budget transfer row and
// reports it as not implemented. Budget transfers have no decoded form; a row
// that is missing common fields still reports MissingField.
func RejectTransferBudget(row rowdata.Row) error {
	if _, err := newTransactionBase(row); err != nil {
		return err
	}
	return decodeerr.NotImplemented(string(KindTransferBudget))
}
