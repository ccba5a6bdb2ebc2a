package model

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/moneywiz-decoder/internal/rowdata"
)

const (
	colSenderAccount             = "ZSENDERACCOUNT"
	colSenderTransaction         = "ZSENDERTRANSACTION"
	colOriginalSenderAmount      = "ZORIGINALSENDERAMOUNT"
	colOriginalSenderCurrency    = "ZORIGINALSENDERCURRENCY"
	colRecipientAccount          = "ZRECIPIENTACCOUNT1"
	colRecipientTransaction      = "ZRECIPIENTTRANSACTION"
	colOriginalRecipientAmount   = "ZORIGINALRECIPIENTAMOUNT"
	colOriginalRecipientCurrency = "ZORIGINALRECIPIENTCURRENCY"
)

// HoldingLeg is the forex side of a transfer into or out of a Forex account.
// All fields are absent for plain cash transfers.
type HoldingLeg struct {
	InvestmentHolding *ID
	NumberOfShares    decimal.NullDecimal
	PricePerShare     decimal.NullDecimal
	Symbol            *string
}

func parseHoldingLeg(row rowdata.Row) (HoldingLeg, error) {
	holding, err := row.NullableID(colInvestmentHolding)
	if err != nil {
		return HoldingLeg{}, err
	}
	shares, err := row.NullableDecimal(colNumberOfShares)
	if err != nil {
		return HoldingLeg{}, err
	}
	price, err := row.NullableDecimal(colPricePerShare)
	if err != nil {
		return HoldingLeg{}, err
	}
	symbol, err := row.NullableString(colSymbol)
	if err != nil {
		return HoldingLeg{}, err
	}

	return HoldingLeg{
		InvestmentHolding: holding,
		NumberOfShares:    shares,
		PricePerShare:     price,
		Symbol:            symbol,
	}, nil
}

// HasHolding reports whether the transfer moves money through a holding.
func (h HoldingLeg) HasHolding() bool {
	return h.InvestmentHolding != nil
}

// complete reports whether shares, price and symbol are all present.
func (h HoldingLeg) complete() bool {
	return h.NumberOfShares.Valid && h.PricePerShare.Valid && h.Symbol != nil
}

func (h HoldingLeg) addTo(m map[string]any) map[string]any {
	m["investment_holding"] = idValue(h.InvestmentHolding)
	m["number_of_shares"] = nullDecimalValue(h.NumberOfShares)
	m["price_per_share"] = nullDecimalValue(h.PricePerShare)
	m["symbol"] = stringValue(h.Symbol)
	return m
}

// TransferDeposit is the receiving leg of a transfer between two accounts.
// OriginalAmount is what arrived, in OriginalCurrency; SenderAmount is what
// left the sender, in SenderCurrency, and is never positive.
type TransferDeposit struct {
	TransactionBase
	HoldingLeg
	Account              ID
	SenderAccount        ID
	SenderTransaction    ID
	OriginalAmount       decimal.Decimal
	OriginalCurrency     string
	SenderAmount         decimal.Decimal
	SenderCurrency       string
	OriginalExchangeRate decimal.Decimal
}

// NewTransferDeposit decodes a TransferDepositTransaction row.
func NewTransferDeposit(row rowdata.Row, tol Tolerances) (TransferDeposit, error) {
	base, err := newTransactionBase(row)
	if err != nil {
		return TransferDeposit{}, err
	}
	leg, err := parseHoldingLeg(row)
	if err != nil {
		return TransferDeposit{}, err
	}
	t := TransferDeposit{TransactionBase: base, HoldingLeg: leg}
	if t.Account, err = row.ID(colAccount); err != nil {
		return TransferDeposit{}, err
	}
	if t.SenderAccount, err = row.ID(colSenderAccount); err != nil {
		return TransferDeposit{}, err
	}
	if t.SenderTransaction, err = row.ID(colSenderTransaction); err != nil {
		return TransferDeposit{}, err
	}
	if t.OriginalAmount, err = row.Decimal(colOriginalAmount); err != nil {
		return TransferDeposit{}, err
	}
	if t.OriginalCurrency, err = row.String(colOriginalCurrency); err != nil {
		return TransferDeposit{}, err
	}
	if t.SenderAmount, err = row.Decimal(colOriginalSenderAmount); err != nil {
		return TransferDeposit{}, err
	}
	if t.SenderCurrency, err = row.String(colOriginalSenderCurrency); err != nil {
		return TransferDeposit{}, err
	}
	if t.OriginalExchangeRate, err = row.Decimal(colOriginalExchangeRate); err != nil {
		return TransferDeposit{}, err
	}

	t.OriginalAmount = unsignedAmount(t.OriginalAmount)

	if err := t.validate(tol); err != nil {
		return TransferDeposit{}, err
	}
	return t, nil
}

func (t TransferDeposit) validate(tol Tolerances) error {
	switch {
	case !t.Amount.IsPositive():
		return violation(t, "amount_positive")
	case !t.OriginalAmount.IsPositive():
		return violation(t, "original_amount_positive")
	case t.SenderAmount.IsPositive():
		return violation(t, "sender_amount_not_positive")
	}

	if t.HasHolding() {
		if !t.complete() {
			return violation(t, "holding_leg_complete")
		}
	} else if !ApproxEqual(t.Amount, t.OriginalAmount, tol.Default) {
		return violation(t, "amount_matches_original_amount")
	}

	converted := t.SenderAmount.Neg().Mul(t.OriginalExchangeRate)
	if !ApproxEqual(t.OriginalAmount, converted, tol.Default) {
		return violation(t, "original_amount_matches_converted_sender_amount")
	}
	return nil
}

// AccountID returns the receiving account.
func (t TransferDeposit) AccountID() ID {
	return t.Account
}

func (TransferDeposit) Kind() Kind { return KindTransferDeposit }
func (t TransferDeposit) EntityName() string { return string(t.Kind()) }

func (t TransferDeposit) AsMap() map[string]any {
	m := t.HoldingLeg.addTo(t.baseMap(t.Kind()))
	m["account"] = t.Account
	m["sender_account"] = t.SenderAccount
	m["sender_transaction"] = t.SenderTransaction
	m["original_amount"] = t.OriginalAmount
	m["original_currency"] = t.OriginalCurrency
	m["sender_amount"] = t.SenderAmount
	m["sender_currency"] = t.SenderCurrency
	m["original_exchange_rate"] = t.OriginalExchangeRate
	return m
}

// TransferWithdraw is the sending leg of a transfer between two accounts.
// OriginalAmount is what left, in OriginalCurrency, and is always negative;
// RecipientAmount is what arrived at the recipient, in RecipientCurrency.
// Fee and the original fee only appear on transfers into a Forex account.
type TransferWithdraw struct {
	TransactionBase
	HoldingLeg
	Account              ID
	Fee                  decimal.NullDecimal
	RecipientAccount     ID
	RecipientTransaction ID
	OriginalAmount       decimal.Decimal
	OriginalCurrency     string
	RecipientAmount      decimal.Decimal
	RecipientCurrency    string
	OriginalFee          decimal.NullDecimal
	OriginalFeeCurrency  *string
	OriginalExchangeRate decimal.Decimal
}

// NewTransferWithdraw decodes a TransferWithdrawTransaction row.
func NewTransferWithdraw(row rowdata.Row, tol Tolerances) (TransferWithdraw, error) {
	base, err := newTransactionBase(row)
	if err != nil {
		return TransferWithdraw{}, err
	}
	leg, err := parseHoldingLeg(row)
	if err != nil {
		return TransferWithdraw{}, err
	}
	t := TransferWithdraw{TransactionBase: base, HoldingLeg: leg}
	if t.Account, err = row.ID(colAccount); err != nil {
		return TransferWithdraw{}, err
	}
	if t.Fee, err = row.NullableDecimal(colFee); err != nil {
		return TransferWithdraw{}, err
	}
	if t.RecipientAccount, err = row.ID(colRecipientAccount); err != nil {
		return TransferWithdraw{}, err
	}
	if t.RecipientTransaction, err = row.ID(colRecipientTransaction); err != nil {
		return TransferWithdraw{}, err
	}
	if t.OriginalAmount, err = row.Decimal(colOriginalAmount); err != nil {
		return TransferWithdraw{}, err
	}
	if t.OriginalCurrency, err = row.String(colOriginalCurrency); err != nil {
		return TransferWithdraw{}, err
	}
	if t.RecipientAmount, err = row.Decimal(colOriginalRecipientAmount); err != nil {
		return TransferWithdraw{}, err
	}
	if t.RecipientCurrency, err = row.String(colOriginalRecipientCurrency); err != nil {
		return TransferWithdraw{}, err
	}
	if t.OriginalFee, err = row.NullableDecimal(colOriginalFee); err != nil {
		return TransferWithdraw{}, err
	}
	if t.OriginalFeeCurrency, err = row.NullableString(colOriginalFeeCurrency); err != nil {
		return TransferWithdraw{}, err
	}
	if t.OriginalExchangeRate, err = row.Decimal(colOriginalExchangeRate); err != nil {
		return TransferWithdraw{}, err
	}

	t.RecipientAmount = unsignedAmount(t.RecipientAmount)

	if err := t.validate(tol); err != nil {
		return TransferWithdraw{}, err
	}
	return t, nil
}

func (t TransferWithdraw) validate(tol Tolerances) error {
	switch {
	case !t.Amount.IsNegative():
		return violation(t, "amount_negative")
	case !t.OriginalAmount.IsNegative():
		return violation(t, "original_amount_negative")
	case !t.RecipientAmount.IsPositive():
		return violation(t, "recipient_amount_positive")
	}

	if t.HasHolding() {
		if !t.complete() || !t.Fee.Valid || t.OriginalFeeCurrency == nil {
			return violation(t, "holding_leg_complete")
		}
	} else if !t.Amount.Equal(t.OriginalAmount) {
		return violation(t, "amount_equals_original_amount")
	}

	if t.OriginalExchangeRate.IsZero() {
		return violation(t, "exchange_rate_nonzero")
	}
	converted := t.RecipientAmount.Neg().Div(t.OriginalExchangeRate)
	if !ApproxEqual(t.OriginalAmount, converted, tol.Default) {
		return violation(t, "original_amount_matches_converted_recipient_amount")
	}
	return nil
}

// AccountID returns the sending account.
func (t TransferWithdraw) AccountID() ID {
	return t.Account
}

func (TransferWithdraw) Kind() Kind { return KindTransferWithdraw }
func (t TransferWithdraw) EntityName() string { return string(t.Kind()) }

func (t TransferWithdraw) AsMap() map[string]any {
	m := t.HoldingLeg.addTo(t.baseMap(t.Kind()))
	m["account"] = t.Account
	m["fee"] = nullDecimalValue(t.Fee)
	m["recipient_account"] = t.RecipientAccount
	m["recipient_transaction"] = t.RecipientTransaction
	m["original_amount"] = t.OriginalAmount
	m["original_currency"] = t.OriginalCurrency
	m["recipient_amount"] = t.RecipientAmount
	m["recipient_currency"] = t.RecipientCurrency
	m["original_fee"] = nullDecimalValue(t.OriginalFee)
	m["original_fee_currency"] = stringValue(t.OriginalFeeCurrency)
	m["original_exchange_rate"] = t.OriginalExchangeRate
	return m
}
