package decodeerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIs_MatchesOnCode(t *testing.T) {
	err := MissingField("ZAMOUNT1", nil)

	assert.ErrorIs(t, err, ErrMissingField)
	assert.NotErrorIs(t, err, ErrInvariantViolation)
}

func TestIs_ThroughWrapping(t *testing.T) {
	err := fmt.Errorf("decode row: %w", InvalidEnumeration("ZINVESTMENTOBJECTTYPE", int64(7)))

	assert.ErrorIs(t, err, ErrInvalidEnumeration)
	code, ok := CodeOf(err)
	assert.True(t, ok)
	assert.Equal(t, CodeInvalidEnumeration, code)
}

func TestCodeOf_PlainError(t *testing.T) {
	_, ok := CodeOf(errors.New("boom"))
	assert.False(t, ok)
}

func TestAnnotate_FillsEntityAndRow(t *testing.T) {
	original := MissingField("ZAMOUNT1", nil)

	err := Annotate(original, "DepositTransaction", 42)

	var de *DecodeError
	assert.True(t, errors.As(err, &de))
	assert.Equal(t, "DepositTransaction", de.Entity)
	assert.Equal(t, int64(42), de.RowID)
	assert.Equal(t, "ZAMOUNT1", de.Column)
	assert.Empty(t, original.Entity, "original is not mutated")
}

func TestAnnotate_KeepsExistingEntity(t *testing.T) {
	err := Annotate(InvariantViolation("WithdrawTransaction", "same_sign", nil), "Other", 7)

	var de *DecodeError
	assert.True(t, errors.As(err, &de))
	assert.Equal(t, "WithdrawTransaction", de.Entity)
	assert.Equal(t, int64(7), de.RowID)
}

func TestAnnotate_PassesThroughForeignErrors(t *testing.T) {
	plain := errors.New("disk on fire")
	assert.Same(t, plain, Annotate(plain, "DepositTransaction", 1))
}

func TestError_Message(t *testing.T) {
	err := InvariantViolation("InvestmentBuyTransaction", "amount_matches_cost", nil)
	err.RowID = 12

	assert.Equal(t,
		"invariant violated entity=InvestmentBuyTransaction id=12 invariant=amount_matches_cost",
		err.Error())
}
