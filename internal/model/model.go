// Package model contains the typed records decoded from MoneyWiz store rows.
//
// Every constructor runs three phases in a fixed order: fields are extracted
// through rowdata, the variant's fix-ups are applied, then its invariants are
// validated. A constructor either returns a complete record or an error from
// decodeerr; it never returns a partially populated value.
package model

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/moneywiz-decoder/internal/decodeerr"
	"github.com/carson-networks/moneywiz-decoder/internal/rowdata"
)

// ID identifies a record (Z_PK) or references another record.
type ID = rowdata.ID

// Entity is implemented by every decoded record.
type Entity interface {
	RecordID() ID
	RecordGID() string
	EntityName() string
	// AsMap projects the record's public attributes into a map keyed by
	// snake_case attribute names.
	AsMap() map[string]any
}

// AccountScoped is implemented by records that belong to one account.
type AccountScoped interface {
	AccountID() ID
}

const (
	EntityInvestmentHolding = "InvestmentHolding"
	EntityGroup             = "Group"
)

// Tolerances are the absolute tolerances used by the tolerant comparisons.
// Withdraw applies to the withdraw exchange-rate check, which accumulates
// more rounding upstream; Default applies everywhere else.
type Tolerances struct {
	Default  decimal.Decimal
	Withdraw decimal.Decimal
}

var (
	DefaultTolerance  = decimal.New(1, -3)
	WithdrawTolerance = decimal.New(1, -2)
)

// DefaultTolerances returns 0.001 / 0.01.
func DefaultTolerances() Tolerances {
	return Tolerances{
		Default:  DefaultTolerance,
		Withdraw: WithdrawTolerance,
	}
}

// ApproxEqual reports whether |a - b| <= tolerance.
func ApproxEqual(a, b, tolerance decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(tolerance)
}

// sameSign reports whether a and b are both strictly positive or both
// strictly negative.
func sameSign(a, b decimal.Decimal) bool {
	return a.Mul(b).IsPositive()
}

func violation(e Entity, invariant string) error {
	return decodeerr.InvariantViolation(e.EntityName(), invariant, e.AsMap())
}

func nullDecimalValue(d decimal.NullDecimal) any {
	if !d.Valid {
		return nil
	}
	return d.Decimal
}

func idValue(id *ID) any {
	if id == nil {
		return nil
	}
	return *id
}

func stringValue(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func int64Value(i *int64) any {
	if i == nil {
		return nil
	}
	return *i
}
