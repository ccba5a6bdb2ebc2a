// Package rowdata implements typed access to untyped store rows.
//
// A Row maps column names to the raw values returned by the SQLite driver
// (int64, float64, string, []byte, time.Time or nil). Every accessor states
// whether a missing value is fatal (Decimal, ID, String, Datetime) or
// legitimately optional (the Nullable* variants).
package rowdata

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"

	"github.com/carson-networks/moneywiz-decoder/internal/decodeerr"
)

// ID is a Core Data primary key (Z_PK).
type ID int64

// Row is one persisted record: column name to raw stored value.
type Row map[string]any

// Column names shared by every entity.
const (
	ColumnPK        = "Z_PK"
	ColumnEnt       = "Z_ENT"
	ColumnGID       = "ZGID"
	ColumnCreatedAt = "ZOBJECTCREATIONDATE"
)

// coreDataEpoch is the reference date Core Data stores timestamps against.
var coreDataEpoch = time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)

var errNull = errors.New("value is null")

// Value returns the raw stored value, nil when the column is absent.
func (r Row) Value(column string) any {
	return r[column]
}

// Decimal reads an exact decimal. Absent, null and unparseable values are
// MissingField.
func (r Row) Decimal(column string) (decimal.Decimal, error) {
	v := r[column]
	if v == nil {
		return decimal.Zero, decodeerr.MissingField(column, errNull)
	}
	d, err := toDecimal(v)
	if err != nil {
		return decimal.Zero, decodeerr.MissingField(column, err)
	}
	return d, nil
}

// NullableDecimal reads an optional exact decimal. SQL NULL yields an invalid
// NullDecimal, which is distinct from zero.
func (r Row) NullableDecimal(column string) (decimal.NullDecimal, error) {
	v := r[column]
	if v == nil {
		return decimal.NullDecimal{}, nil
	}
	d, err := toDecimal(v)
	if err != nil {
		return decimal.NullDecimal{}, decodeerr.MissingField(column, err)
	}
	return decimal.NewNullDecimal(d), nil
}

// Datetime converts a stored Core Data timestamp (seconds since 2001-01-01
// UTC) into a calendar time.
func (r Row) Datetime(column string) (time.Time, error) {
	v := r[column]
	if v == nil {
		return time.Time{}, decodeerr.MissingField(column, errNull)
	}
	if t, ok := v.(time.Time); ok {
		return t.UTC(), nil
	}
	d, err := toDecimal(v)
	if err != nil {
		return time.Time{}, decodeerr.MissingField(column, err)
	}
	nanos := d.Shift(9).Round(0).IntPart()
	return coreDataEpoch.Add(time.Duration(nanos)), nil
}

// ID reads a required foreign or primary key.
func (r Row) ID(column string) (ID, error) {
	v := r[column]
	if v == nil {
		return 0, decodeerr.MissingField(column, errNull)
	}
	i, err := toInt64(v)
	if err != nil {
		return 0, decodeerr.MissingField(column, err)
	}
	return ID(i), nil
}

// NullableID reads an optional key.
func (r Row) NullableID(column string) (*ID, error) {
	if r[column] == nil {
		return nil, nil
	}
	id, err := r.ID(column)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// Int reads a required integer column.
func (r Row) Int(column string) (int64, error) {
	id, err := r.ID(column)
	return int64(id), err
}

// NullableInt reads an optional integer column.
func (r Row) NullableInt(column string) (*int64, error) {
	if r[column] == nil {
		return nil, nil
	}
	i, err := r.Int(column)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// String reads a required text column. An empty string is present.
func (r Row) String(column string) (string, error) {
	v := r[column]
	if v == nil {
		return "", decodeerr.MissingField(column, errNull)
	}
	s, err := toString(v)
	if err != nil {
		return "", decodeerr.MissingField(column, err)
	}
	return s, nil
}

// NullableString reads an optional text column.
func (r Row) NullableString(column string) (*string, error) {
	if r[column] == nil {
		return nil, nil
	}
	s, err := r.String(column)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Flag reports whether the column holds 1. Null and absent are false.
func (r Row) Flag(column string) bool {
	v := r[column]
	if v == nil {
		return false
	}
	i, err := toInt64(v)
	return err == nil && i == 1
}

// Filtered returns a copy of the row without nulls, binary blobs and Z9_
// bookkeeping columns.
func (r Row) Filtered() map[string]any {
	out := make(map[string]any, len(r))
	for k, v := range r {
		if v == nil || strings.HasPrefix(k, "Z9_") {
			continue
		}
		if _, isBlob := v.([]byte); isBlob {
			continue
		}
		out[k] = v
	}
	return out
}

func toDecimal(v any) (decimal.Decimal, error) {
	switch typed := v.(type) {
	case decimal.Decimal:
		return typed, nil
	case []byte:
		return decimal.NewFromString(strings.TrimSpace(string(typed)))
	case bool:
		return decimal.Zero, fmt.Errorf("unable to read %v as a number", typed)
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromString(strings.TrimSpace(s))
}

// toInt64 reads integers and whole floats. Fractional floats and bools are
// rejected rather than truncated.
func toInt64(v any) (int64, error) {
	switch typed := v.(type) {
	case bool:
		return 0, fmt.Errorf("unable to read %v as an integer", typed)
	case float64:
		if typed != math.Trunc(typed) {
			return 0, fmt.Errorf("unable to read %v as an integer", typed)
		}
		return int64(typed), nil
	case float32:
		if float64(typed) != math.Trunc(float64(typed)) {
			return 0, fmt.Errorf("unable to read %v as an integer", typed)
		}
		return int64(typed), nil
	case []byte:
		return cast.ToInt64E(strings.TrimSpace(string(typed)))
	}
	return cast.ToInt64E(v)
}

func toString(v any) (string, error) {
	if b, ok := v.([]byte); ok {
		return string(b), nil
	}
	return cast.ToStringE(v)
}
