package model

import (
	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/moneywiz-decoder/internal/decodeerr"
	"github.com/carson-networks/moneywiz-decoder/internal/rowdata"
)

// InvestmentObjectType is what a holding holds.
type InvestmentObjectType string

const (
	ObjectTypeInvestment  InvestmentObjectType = "Investment"
	ObjectTypeForexCrypto InvestmentObjectType = "Forex/Crypto"
)

const (
	colInvestmentAccount          = "ZINVESTMENTACCOUNT"
	colOpeningNumberOfShares      = "ZOPENNINGNUMBEROFSHARES"
	colHoldingNumberOfShares      = "ZNUMBEROFSHARES"
	colHoldingSymbol              = "ZSYMBOL"
	colHoldingType                = "ZHOLDINGTYPE"
	colHoldingDescription         = "ZDESC"
	colPriceAvailableOnline       = "ZISPRICEPERSHAREAVAILABLEONLINE"
	colInvestmentObjectType       = "ZINVESTMENTOBJECTTYPE"
	colCostBasisOfMissingOBShares = "ZCOSTBASISOFMISSINGOBSHARES"
)

// decodeObjectType maps the stored 0/1 code. Only integers and whole floats
// are read; anything else, including null, text and bools, is an
// InvalidEnumeration.
func decodeObjectType(v any) (InvestmentObjectType, error) {
	var code int64
	switch typed := v.(type) {
	case int64:
		code = typed
	case int:
		code = int64(typed)
	case float64:
		if typed != 0 && typed != 1 {
			return "", decodeerr.InvalidEnumeration(colInvestmentObjectType, v)
		}
		code = int64(typed)
	default:
		return "", decodeerr.InvalidEnumeration(colInvestmentObjectType, v)
	}

	switch code {
	case 0:
		return ObjectTypeInvestment, nil
	case 1:
		return ObjectTypeForexCrypto, nil
	}
	return "", decodeerr.InvalidEnumeration(colInvestmentObjectType, v)
}

// InvestmentHolding is a position in one symbol inside an investment account.
type InvestmentHolding struct {
	Record
	Account                      ID
	OpeningNumberOfShares        decimal.NullDecimal
	NumberOfShares               decimal.Decimal
	Symbol                       string
	HoldingType                  *string
	Description                  string
	PricePerShareAvailableOnline bool
	ObjectType                   InvestmentObjectType

	costBasisOfMissingOBShares decimal.Decimal
}

// NewInvestmentHolding decodes an InvestmentHolding row. The object type is
// checked before any other holding column is read.
func NewInvestmentHolding(row rowdata.Row) (InvestmentHolding, error) {
	record, err := newRecord(row)
	if err != nil {
		return InvestmentHolding{}, err
	}
	objectType, err := decodeObjectType(row.Value(colInvestmentObjectType))
	if err != nil {
		return InvestmentHolding{}, err
	}

	h := InvestmentHolding{Record: record, ObjectType: objectType}
	if h.Account, err = row.ID(colInvestmentAccount); err != nil {
		return InvestmentHolding{}, err
	}
	if h.OpeningNumberOfShares, err = row.NullableDecimal(colOpeningNumberOfShares); err != nil {
		return InvestmentHolding{}, err
	}
	if h.NumberOfShares, err = row.Decimal(colHoldingNumberOfShares); err != nil {
		return InvestmentHolding{}, err
	}
	if h.Symbol, err = row.String(colHoldingSymbol); err != nil {
		return InvestmentHolding{}, err
	}
	if h.HoldingType, err = row.NullableString(colHoldingType); err != nil {
		return InvestmentHolding{}, err
	}
	if h.Description, err = row.String(colHoldingDescription); err != nil {
		return InvestmentHolding{}, err
	}
	h.PricePerShareAvailableOnline = row.Flag(colPriceAvailableOnline)
	if h.costBasisOfMissingOBShares, err = row.Decimal(colCostBasisOfMissingOBShares); err != nil {
		return InvestmentHolding{}, err
	}

	return h, nil
}

// CostBasisOfMissingOBShares is the cost of shares not backed by any
// transaction. It is internal bookkeeping and never serialized.
func (h InvestmentHolding) CostBasisOfMissingOBShares() decimal.Decimal {
	return h.costBasisOfMissingOBShares
}

// Filtered is Record.Filtered without the cost-basis column.
func (h InvestmentHolding) Filtered() map[string]any {
	m := h.Record.Filtered()
	delete(m, colCostBasisOfMissingOBShares)
	return m
}

// AccountID returns the investment account holding the position.
func (h InvestmentHolding) AccountID() ID {
	return h.Account
}

func (InvestmentHolding) EntityName() string { return EntityInvestmentHolding }

func (h InvestmentHolding) AsMap() map[string]any {
	m := h.recordMap()
	m["account"] = h.Account
	m["opening_number_of_shares"] = nullDecimalValue(h.OpeningNumberOfShares)
	m["number_of_shares"] = h.NumberOfShares
	m["symbol"] = h.Symbol
	m["holding_type"] = stringValue(h.HoldingType)
	m["description"] = h.Description
	m["price_per_share_available_online"] = h.PricePerShareAvailableOnline
	m["investment_object_type"] = string(h.ObjectType)
	return m
}

func (h InvestmentHolding) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.AsMap())
}
