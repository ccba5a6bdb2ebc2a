package actions

import (
	"context"

	"github.com/carson-networks/moneywiz-decoder/internal/decoder"
	"github.com/carson-networks/moneywiz-decoder/internal/model"
)

type IAction interface {
	Perform(ctx context.Context, dec *decoder.Decoder) (model.Entity, error)
}
