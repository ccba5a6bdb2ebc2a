package operator

import (
	"context"

	"github.com/carson-networks/moneywiz-decoder/internal/decoder"
	"github.com/carson-networks/moneywiz-decoder/internal/model"
	"github.com/carson-networks/moneywiz-decoder/internal/operator/actions"
)

// Operator is the worker that processes items from the queue.
type Operator struct {
	decoder *decoder.Decoder
	queue   chan ActionItem
}

func NewOperator(dec *decoder.Decoder, queue chan ActionItem) *Operator {
	return &Operator{
		decoder: dec,
		queue:   queue,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	entity, err := item.action.Perform(item.ctx, o.decoder)
	if err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	item.response <- ActionItemResponse{entity: entity}
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	entity model.Entity
	err    error
}
