// Package decodeerr holds the structured errors produced while decoding store
// rows. Every failure is local to one row; callers collect them per row and
// match on the sentinel codes with errors.Is.
package decodeerr

import (
	"errors"
	"fmt"
	"strings"
)

// Code identifies the class of a decode failure.
type Code string

const (
	CodeMissingField       Code = "MISSING_FIELD"
	CodeUnknownVariant     Code = "UNKNOWN_VARIANT"
	CodeInvalidEnumeration Code = "INVALID_ENUMERATION"
	CodeInvariantViolation Code = "INVARIANT_VIOLATION"
	CodeNotImplemented     Code = "NOT_IMPLEMENTED"
)

// DecodeError describes why a single row could not be turned into a record.
type DecodeError struct {
	Code    Code
	Message string

	// Entity is the entity or variant name the row was decoded as.
	Entity string
	// RowID is the Z_PK of the row, zero when it could not be read.
	RowID int64

	Column    string
	Invariant string
	Value     any
	// Fields is a snapshot of the decoded record at the time an invariant failed.
	Fields map[string]any

	Internal error
}

// Sentinels for errors.Is.
var (
	ErrMissingField       = &DecodeError{Code: CodeMissingField, Message: "required field missing"}
	ErrUnknownVariant     = &DecodeError{Code: CodeUnknownVariant, Message: "unknown variant"}
	ErrInvalidEnumeration = &DecodeError{Code: CodeInvalidEnumeration, Message: "value outside enumeration"}
	ErrInvariantViolation = &DecodeError{Code: CodeInvariantViolation, Message: "invariant violated"}
	ErrNotImplemented     = &DecodeError{Code: CodeNotImplemented, Message: "decoding not implemented"}
)

func (e *DecodeError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.Entity != "" {
		fmt.Fprintf(&b, " entity=%s", e.Entity)
	}
	if e.RowID != 0 {
		fmt.Fprintf(&b, " id=%d", e.RowID)
	}
	if e.Column != "" {
		fmt.Fprintf(&b, " column=%s", e.Column)
	}
	if e.Invariant != "" {
		fmt.Fprintf(&b, " invariant=%s", e.Invariant)
	}
	if e.Value != nil {
		fmt.Fprintf(&b, " value=%v", e.Value)
	}
	if e.Internal != nil {
		fmt.Fprintf(&b, ": %v", e.Internal)
	}
	return b.String()
}

func (e *DecodeError) Unwrap() error { return e.Internal }

// Is reports whether target is a DecodeError with the same code.
func (e *DecodeError) Is(target error) bool {
	t, ok := target.(*DecodeError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// MissingField reports a required column that is absent, null or unreadable.
func MissingField(column string, internal error) *DecodeError {
	return &DecodeError{
		Code:     CodeMissingField,
		Message:  ErrMissingField.Message,
		Column:   column,
		Internal: internal,
	}
}

// UnknownVariant reports a discriminator that maps to no constructor.
func UnknownVariant(name string) *DecodeError {
	return &DecodeError{
		Code:    CodeUnknownVariant,
		Message: ErrUnknownVariant.Message,
		Entity:  name,
	}
}

// InvalidEnumeration reports a stored value outside a closed set.
func InvalidEnumeration(column string, value any) *DecodeError {
	return &DecodeError{
		Code:    CodeInvalidEnumeration,
		Message: ErrInvalidEnumeration.Message,
		Column:  column,
		Value:   value,
	}
}

// InvariantViolation reports a failed validation check together with the
// field values of the offending record.
func InvariantViolation(entity, invariant string, fields map[string]any) *DecodeError {
	return &DecodeError{
		Code:      CodeInvariantViolation,
		Message:   ErrInvariantViolation.Message,
		Entity:    entity,
		Invariant: invariant,
		Fields:    fields,
	}
}

// NotImplemented reports an entity that is recognised but not decoded.
func NotImplemented(entity string) *DecodeError {
	return &DecodeError{
		Code:    CodeNotImplemented,
		Message: ErrNotImplemented.Message,
		Entity:  entity,
	}
}

// Annotate returns a copy of err with the entity name and row id filled in
// when they are not already set. Errors that are not DecodeErrors are
// returned unchanged.
func Annotate(err error, entity string, rowID int64) error {
	var de *DecodeError
	if !errors.As(err, &de) {
		return err
	}
	annotated := *de
	if annotated.Entity == "" {
		annotated.Entity = entity
	}
	if annotated.RowID == 0 {
		annotated.RowID = rowID
	}
	return &annotated
}

// CodeOf returns the code of the first DecodeError in err's chain.
func CodeOf(err error) (Code, bool) {
	var de *DecodeError
	if errors.As(err, &de) {
		return de.Code, true
	}
	return "", false
}
