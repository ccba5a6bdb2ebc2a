package actions

import (
	"context"

	"github.com/carson-networks/moneywiz-decoder/internal/decoder"
	"github.com/carson-networks/moneywiz-decoder/internal/model"
	"github.com/carson-networks/moneywiz-decoder/internal/rowdata"
)

// DecodeRow decodes one row as the entity named by Typename.
type DecodeRow struct {
	Typename string
	Row      rowdata.Row

	IAction
}

func (a *DecodeRow) Perform(ctx context.Context, dec *decoder.Decoder) (model.Entity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return dec.Decode(a.Typename, a.Row)
}
