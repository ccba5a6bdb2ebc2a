package model

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/moneywiz-decoder/internal/rowdata"
)

const (
	colFee               = "ZFEE2"
	colInvestmentHolding = "ZINVESTMENTHOLDING"
	colNumberOfShares    = "ZNUMBEROFSHARES1"
	colPricePerShare     = "ZPRICEPERSHARE1"
	colSymbol            = "ZSYMBOL1"

	colFromHolding         = "ZFROMINVESTMENTHOLDING"
	colFromSymbol          = "ZFROMSYMBOL"
	colToHolding           = "ZTOINVESTMENTHOLDING"
	colToSymbol            = "ZTOSYMBOL"
	colFromNumberOfShares  = "ZFROMNUMBEROFSHARES"
	colToNumberOfShares    = "ZTONUMBEROFSHARES"
	colOriginalFee         = "ZORIGINALFEE"
	colOriginalFeeCurrency = "ZORIGINALFEECURRENCY"
)

// TradeFields are the attributes of a buy or sell of one holding.
type TradeFields struct {
	Account           ID
	Fee               decimal.Decimal
	InvestmentHolding ID
	NumberOfShares    decimal.Decimal
	PricePerShare     decimal.Decimal
	Symbol            string
}

func parseTradeFields(row rowdata.Row) (TradeFields, error) {
	account, err := row.ID(colAccount)
	if err != nil {
		return TradeFields{}, err
	}
	fee, err := row.Decimal(colFee)
	if err != nil {
		return TradeFields{}, err
	}
	holding, err := row.ID(colInvestmentHolding)
	if err != nil {
		return TradeFields{}, err
	}
	shares, err := row.Decimal(colNumberOfShares)
	if err != nil {
		return TradeFields{}, err
	}
	price, err := row.Decimal(colPricePerShare)
	if err != nil {
		return TradeFields{}, err
	}
	symbol, err := row.String(colSymbol)
	if err != nil {
		return TradeFields{}, err
	}

	return TradeFields{
		Account:           account,
		Fee:               fee,
		InvestmentHolding: holding,
		NumberOfShares:    shares,
		PricePerShare:     price,
		Symbol:            symbol,
	}, nil
}

// AccountID returns the investment account the trade is booked on.
func (f TradeFields) AccountID() ID {
	return f.Account
}

// gross is shares × price.
func (f TradeFields) gross() decimal.Decimal {
	return f.NumberOfShares.Mul(f.PricePerShare)
}

// checkShape returns the name of the first violated fee/share/price
// invariant common to buys and sells, or "".
func (f TradeFields) checkShape(tolerance decimal.Decimal) string {
	switch {
	case f.Fee.IsNegative():
		return "fee_not_negative"
	case !feeIsZeroOrMaterial(f.Fee, tolerance):
		return "fee_zero_or_material"
	case !f.NumberOfShares.IsPositive():
		return "shares_positive"
	case f.PricePerShare.IsNegative():
		return "price_not_negative"
	}
	return ""
}

// feeIsZeroOrMaterial rejects a fee that is neither approximately zero nor
// larger than the tolerance.
func feeIsZeroOrMaterial(fee, tolerance decimal.Decimal) bool {
	return ApproxEqual(fee.Abs(), decimal.Zero, tolerance) || fee.GreaterThan(tolerance)
}

func (f TradeFields) addTo(m map[string]any) map[string]any {
	m["account"] = f.Account
	m["fee"] = f.Fee
	m["investment_holding"] = f.InvestmentHolding
	m["number_of_shares"] = f.NumberOfShares
	m["price_per_share"] = f.PricePerShare
	m["symbol"] = f.Symbol
	return m
}

// InvestmentBuy buys shares of a holding. The amount is the cash leaving the
// account: -(shares × price + fee).
type InvestmentBuy struct {
	TransactionBase
	TradeFields
}

// NewInvestmentBuy decodes an InvestmentBuyTransaction row.
func NewInvestmentBuy(row rowdata.Row, tol Tolerances) (InvestmentBuy, error) {
	base, err := newTransactionBase(row)
	if err != nil {
		return InvestmentBuy{}, err
	}
	trade, err := parseTradeFields(row)
	if err != nil {
		return InvestmentBuy{}, err
	}
	b := InvestmentBuy{TransactionBase: base, TradeFields: trade}

	b.Fee = clampFee(b.Fee)

	if err := b.validate(tol); err != nil {
		return InvestmentBuy{}, err
	}
	return b, nil
}

func (b InvestmentBuy) validate(tol Tolerances) error {
	if b.Amount.IsPositive() {
		return violation(b, "amount_not_positive")
	}
	if invariant := b.checkShape(tol.Default); invariant != "" {
		return violation(b, invariant)
	}
	cost := b.gross().Add(b.Fee).Neg()
	if !ApproxEqual(cost, b.Amount, tol.Default) {
		return violation(b, "amount_matches_cost")
	}
	return nil
}

func (InvestmentBuy) Kind() Kind { return KindInvestmentBuy }
func (b InvestmentBuy) EntityName() string { return string(b.Kind()) }
func (b InvestmentBuy) AsMap() map[string]any { return b.addTo(b.baseMap(b.Kind())) }

// InvestmentSell sells shares of a holding. The amount is the proceeds:
// shares × price - fee, negative when the fee exceeds the sale.
type InvestmentSell struct {
	TransactionBase
	TradeFields
}

// NewInvestmentSell decodes an InvestmentSellTransaction row.
func NewInvestmentSell(row rowdata.Row, tol Tolerances) (InvestmentSell, error) {
	base, err := newTransactionBase(row)
	if err != nil {
		return InvestmentSell{}, err
	}
	trade, err := parseTradeFields(row)
	if err != nil {
		return InvestmentSell{}, err
	}
	s := InvestmentSell{TransactionBase: base, TradeFields: trade}

	s.Fee = clampFee(s.Fee)

	if err := s.validate(tol); err != nil {
		return InvestmentSell{}, err
	}
	return s, nil
}

func (s InvestmentSell) validate(tol Tolerances) error {
	if invariant := s.checkShape(tol.Default); invariant != "" {
		return violation(s, invariant)
	}
	proceeds := s.gross().Sub(s.Fee)
	if !ApproxEqual(proceeds, s.Amount, tol.Default) {
		return violation(s, "amount_matches_proceeds")
	}
	return nil
}

func (InvestmentSell) Kind() Kind { return KindInvestmentSell }
func (s InvestmentSell) EntityName() string { return string(s.Kind()) }
func (s InvestmentSell) AsMap() map[string]any { return s.addTo(s.baseMap(s.Kind())) }

// InvestmentExchange swaps shares of one holding for shares of another within
// an account. FromNumberOfShares is negative, ToNumberOfShares positive; after
// decoding both include the fee charged in their symbol.
type InvestmentExchange struct {
	TransactionBase
	Account               ID
	FromInvestmentHolding ID
	FromSymbol            string
	ToInvestmentHolding   ID
	ToSymbol              string
	FromNumberOfShares    decimal.Decimal
	ToNumberOfShares      decimal.Decimal
	Fee                   decimal.Decimal
	OriginalFee           decimal.Decimal
	OriginalFeeCurrency   *string
}

// NewInvestmentExchange decodes an InvestmentExchangeTransaction row.
func NewInvestmentExchange(row rowdata.Row, tol Tolerances) (InvestmentExchange, error) {
	base, err := newTransactionBase(row)
	if err != nil {
		return InvestmentExchange{}, err
	}
	e := InvestmentExchange{TransactionBase: base}
	if e.Account, err = row.ID(colAccount); err != nil {
		return InvestmentExchange{}, err
	}
	if e.FromInvestmentHolding, err = row.ID(colFromHolding); err != nil {
		return InvestmentExchange{}, err
	}
	if e.FromSymbol, err = row.String(colFromSymbol); err != nil {
		return InvestmentExchange{}, err
	}
	if e.ToInvestmentHolding, err = row.ID(colToHolding); err != nil {
		return InvestmentExchange{}, err
	}
	if e.ToSymbol, err = row.String(colToSymbol); err != nil {
		return InvestmentExchange{}, err
	}
	if e.FromNumberOfShares, err = row.Decimal(colFromNumberOfShares); err != nil {
		return InvestmentExchange{}, err
	}
	if e.ToNumberOfShares, err = row.Decimal(colToNumberOfShares); err != nil {
		return InvestmentExchange{}, err
	}
	if e.Fee, err = row.Decimal(colFee); err != nil {
		return InvestmentExchange{}, err
	}
	if e.OriginalFee, err = row.Decimal(colOriginalFee); err != nil {
		return InvestmentExchange{}, err
	}
	if e.OriginalFeeCurrency, err = row.NullableString(colOriginalFeeCurrency); err != nil {
		return InvestmentExchange{}, err
	}

	e.FromNumberOfShares, e.ToNumberOfShares = foldExchangeFee(
		e.OriginalFeeCurrency, e.FromSymbol, e.ToSymbol,
		e.OriginalFee, e.FromNumberOfShares, e.ToNumberOfShares,
	)

	if err := e.validate(tol); err != nil {
		return InvestmentExchange{}, err
	}
	return e, nil
}

func (e InvestmentExchange) validate(_ Tolerances) error {
	switch {
	case e.FromSymbol == "":
		return violation(e, "from_symbol_present")
	case e.ToSymbol == "":
		return violation(e, "to_symbol_present")
	case e.FromNumberOfShares.IsPositive():
		return violation(e, "from_shares_not_positive")
	case e.ToNumberOfShares.IsNegative():
		return violation(e, "to_shares_not_negative")
	case e.OriginalFeeCurrency == nil ||
		(*e.OriginalFeeCurrency != e.FromSymbol && *e.OriginalFeeCurrency != e.ToSymbol):
		return violation(e, "fee_currency_matches_symbol")
	case !e.Fee.IsZero() && e.OriginalFee.IsZero():
		return violation(e, "fee_has_original_fee")
	}
	return nil
}

// AccountID returns the account holding both sides of the exchange.
func (e InvestmentExchange) AccountID() ID {
	return e.Account
}

func (InvestmentExchange) Kind() Kind { return KindInvestmentExchange }
func (e InvestmentExchange) EntityName() string { return string(e.Kind()) }

func (e InvestmentExchange) AsMap() map[string]any {
	m := e.baseMap(e.Kind())
	m["account"] = e.Account
	m["from_investment_holding"] = e.FromInvestmentHolding
	m["from_symbol"] = e.FromSymbol
	m["to_investment_holding"] = e.ToInvestmentHolding
	m["to_symbol"] = e.ToSymbol
	m["from_number_of_shares"] = e.FromNumberOfShares
	m["to_number_of_shares"] = e.ToNumberOfShares
	m["fee"] = e.Fee
	m["original_fee"] = e.OriginalFee
	m["original_fee_currency"] = stringValue(e.OriginalFeeCurrency)
	return m
}

const (
	colReconcileAmount         = "ZRECONCILEAMOUNT"
	colReconcileNumberOfShares = "ZRECONCILENUMBEROFSHARES"
)

// Reconcile records a new balance for an account, in money or in shares.
type Reconcile struct {
	TransactionBase
	Account                 ID
	ReconcileAmount         decimal.NullDecimal
	ReconcileNumberOfShares decimal.NullDecimal
}

// NewReconcile decodes a ReconcileTransaction row.
func NewReconcile(row rowdata.Row, tol Tolerances) (Reconcile, error) {
	base, err := newTransactionBase(row)
	if err != nil {
		return Reconcile{}, err
	}
	r := Reconcile{TransactionBase: base}
	if r.Account, err = row.ID(colAccount); err != nil {
		return Reconcile{}, err
	}
	if r.ReconcileAmount, err = row.NullableDecimal(colReconcileAmount); err != nil {
		return Reconcile{}, err
	}
	if r.ReconcileNumberOfShares, err = row.NullableDecimal(colReconcileNumberOfShares); err != nil {
		return Reconcile{}, err
	}

	if err := r.validate(tol); err != nil {
		return Reconcile{}, err
	}
	return r, nil
}

func (r Reconcile) validate(_ Tolerances) error {
	if !r.ReconcileAmount.Valid && !r.ReconcileNumberOfShares.Valid {
		return violation(r, "reconcile_balance_present")
	}
	return nil
}

// AccountID returns the reconciled account.
func (r Reconcile) AccountID() ID {
	return r.Account
}

func (Reconcile) Kind() Kind { return KindReconcile }
func (r Reconcile) EntityName() string { return string(r.Kind()) }

func (r Reconcile) AsMap() map[string]any {
	m := r.baseMap(r.Kind())
	m["account"] = r.Account
	m["reconcile_amount"] = nullDecimalValue(r.ReconcileAmount)
	m["reconcile_number_of_shares"] = nullDecimalValue(r.ReconcileNumberOfShares)
	return m
}
