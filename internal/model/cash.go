package model

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/moneywiz-decoder/internal/rowdata"
)

const (
	colPayee                = "ZPAYEE2"
	colOriginalCurrency     = "ZORIGINALCURRENCY"
	colOriginalAmount       = "ZORIGINALAMOUNT"
	colOriginalExchangeRate = "ZORIGINALEXCHANGERATE"
)

// CashFields are the account, payee and foreign-currency attributes shared by
// deposits, withdrawals and refunds. OriginalAmount is expressed in
// OriginalCurrency; OriginalExchangeRate converts it into the account's
// currency and is absent when unknown.
type CashFields struct {
	Account              ID
	Payee                *ID
	OriginalCurrency     string
	OriginalAmount       decimal.Decimal
	OriginalExchangeRate decimal.NullDecimal
}

func parseCashFields(row rowdata.Row) (CashFields, error) {
	account, err := row.ID(colAccount)
	if err != nil {
		return CashFields{}, err
	}
	payee, err := row.NullableID(colPayee)
	if err != nil {
		return CashFields{}, err
	}
	currency, err := row.String(colOriginalCurrency)
	if err != nil {
		return CashFields{}, err
	}
	originalAmount, err := row.Decimal(colOriginalAmount)
	if err != nil {
		return CashFields{}, err
	}
	rate, err := row.NullableDecimal(colOriginalExchangeRate)
	if err != nil {
		return CashFields{}, err
	}

	return CashFields{
		Account:              account,
		Payee:                payee,
		OriginalCurrency:     currency,
		OriginalAmount:       originalAmount,
		OriginalExchangeRate: rate,
	}, nil
}

// AccountID returns the account the transaction is booked on.
func (c CashFields) AccountID() ID {
	return c.Account
}

// convertsTo reports whether the original amount converted at the stored
// rate lands on amount. A missing rate passes.
func (c CashFields) convertsTo(amount, tolerance decimal.Decimal) bool {
	if !c.OriginalExchangeRate.Valid {
		return true
	}
	return ApproxEqual(amount, c.OriginalAmount.Mul(c.OriginalExchangeRate.Decimal), tolerance)
}

func (c CashFields) addTo(m map[string]any) map[string]any {
	m["account"] = c.Account
	m["payee"] = idValue(c.Payee)
	m["original_currency"] = c.OriginalCurrency
	m["original_amount"] = c.OriginalAmount
	m["original_exchange_rate"] = nullDecimalValue(c.OriginalExchangeRate)
	return m
}

// Deposit is income booked on an account; a negative amount is an expense.
type Deposit struct {
	TransactionBase
	CashFields
}

// NewDeposit decodes a DepositTransaction row.
func NewDeposit(row rowdata.Row, tol Tolerances) (Deposit, error) {
	base, err := newTransactionBase(row)
	if err != nil {
		return Deposit{}, err
	}
	cash, err := parseCashFields(row)
	if err != nil {
		return Deposit{}, err
	}
	d := Deposit{TransactionBase: base, CashFields: cash}

	d.OriginalExchangeRate = unknownRateIfZero(d.OriginalExchangeRate)

	if err := d.validate(tol); err != nil {
		return Deposit{}, err
	}
	return d, nil
}

func (d Deposit) validate(tol Tolerances) error {
	if !sameSign(d.Amount, d.OriginalAmount) {
		return violation(d, "amount_original_amount_same_sign")
	}
	if !d.convertsTo(d.Amount, tol.Default) {
		return violation(d, "amount_matches_converted_original_amount")
	}
	return nil
}

func (Deposit) Kind() Kind { return KindDeposit }
func (d Deposit) EntityName() string { return string(d.Kind()) }
func (d Deposit) AsMap() map[string]any { return d.addTo(d.baseMap(d.Kind())) }

// Withdraw is an expense booked on an account; a positive amount is income.
type Withdraw struct {
	TransactionBase
	CashFields
}

// NewWithdraw decodes a WithdrawTransaction row. The original amount's sign
// is forced to agree with the amount before validation.
func NewWithdraw(row rowdata.Row, tol Tolerances) (Withdraw, error) {
	base, err := newTransactionBase(row)
	if err != nil {
		return Withdraw{}, err
	}
	cash, err := parseCashFields(row)
	if err != nil {
		return Withdraw{}, err
	}
	w := Withdraw{TransactionBase: base, CashFields: cash}

	w.OriginalAmount = alignSign(w.Amount, w.OriginalAmount)
	w.OriginalExchangeRate = unknownRateIfZero(w.OriginalExchangeRate)

	if err := w.validate(tol); err != nil {
		return Withdraw{}, err
	}
	return w, nil
}

func (w Withdraw) validate(tol Tolerances) error {
	if !sameSign(w.Amount, w.OriginalAmount) {
		return violation(w, "amount_original_amount_same_sign")
	}
	if !w.convertsTo(w.Amount, tol.Withdraw) {
		return violation(w, "amount_matches_converted_original_amount")
	}
	return nil
}

func (Withdraw) Kind() Kind { return KindWithdraw }
func (w Withdraw) EntityName() string { return string(w.Kind()) }
func (w Withdraw) AsMap() map[string]any { return w.addTo(w.baseMap(w.Kind())) }

// Refund returns money previously withdrawn; both amounts are positive.
type Refund struct {
	TransactionBase
	CashFields
}

// NewRefund decodes a RefundTransaction row.
func NewRefund(row rowdata.Row, tol Tolerances) (Refund, error) {
	base, err := newTransactionBase(row)
	if err != nil {
		return Refund{}, err
	}
	cash, err := parseCashFields(row)
	if err != nil {
		return Refund{}, err
	}
	r := Refund{TransactionBase: base, CashFields: cash}

	r.OriginalExchangeRate = unknownRateIfZero(r.OriginalExchangeRate)

	if err := r.validate(tol); err != nil {
		return Refund{}, err
	}
	return r, nil
}

func (r Refund) validate(tol Tolerances) error {
	if !r.Amount.IsPositive() {
		return violation(r, "amount_positive")
	}
	if !r.OriginalAmount.IsPositive() {
		return violation(r, "original_amount_positive")
	}
	if !r.convertsTo(r.Amount, tol.Default) {
		return violation(r, "amount_matches_converted_original_amount")
	}
	return nil
}

func (Refund) Kind() Kind { return KindRefund }
func (r Refund) EntityName() string { return string(r.Kind()) }
func (r Refund) AsMap() map[string]any { return r.addTo(r.baseMap(r.Kind())) }
