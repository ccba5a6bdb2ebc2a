package operator

import (
	"context"
	"sync"

	"github.com/carson-networks/moneywiz-decoder/internal/decoder"
	"github.com/carson-networks/moneywiz-decoder/internal/model"
	"github.com/carson-networks/moneywiz-decoder/internal/operator/actions"
)

const defaultQueueSize = 1000

// OperatorDelegator manages the queue, starts/stops Operators (workers), and enqueues items.
type OperatorDelegator struct {
	decoder    *decoder.Decoder
	queue      chan ActionItem
	numWorkers int
	wg         sync.WaitGroup
	stopOnce   sync.Once
}

func NewOperatorDelegator(dec *decoder.Decoder, numWorkers, queueSize int) *OperatorDelegator {
	if numWorkers < 1 {
		numWorkers = 1
	}
	if queueSize < 1 {
		queueSize = defaultQueueSize
	}
	return &OperatorDelegator{
		decoder:    dec,
		queue:      make(chan ActionItem, queueSize),
		numWorkers: numWorkers,
	}
}

func (d *OperatorDelegator) Start() {
	for i := 0; i < d.numWorkers; i++ {
		d.wg.Add(1)
		op := NewOperator(d.decoder, d.queue)
		go func() {
			defer d.wg.Done()
			op.Run()
		}()
	}
}

// Stop closes the queue and waits for in-flight items. Process and
// ProcessAll must not be called after Stop.
func (d *OperatorDelegator) Stop() {
	d.stopOnce.Do(func() {
		close(d.queue)
		d.wg.Wait()
	})
}

func (d *OperatorDelegator) Process(ctx context.Context, action actions.IAction) (model.Entity, error) {
	respCh := d.enqueue(ctx, action)
	if respCh == nil {
		return nil, ctx.Err()
	}

	select {
	case resp := <-respCh:
		return resp.entity, resp.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// ActionResult is the outcome of one action in a ProcessAll batch.
type ActionResult struct {
	Action actions.IAction
	Entity model.Entity
	Err    error
}

// ProcessAll runs every action on the workers and returns the results in the
// order the actions were given. A failing action does not stop the batch.
// Items still pending when ctx is done report ctx.Err().
func (d *OperatorDelegator) ProcessAll(ctx context.Context, batch []actions.IAction) []ActionResult {
	results := make([]ActionResult, len(batch))
	pending := make([]chan ActionItemResponse, len(batch))
	for i, action := range batch {
		results[i].Action = action
		pending[i] = make(chan ActionItemResponse, 1)
	}

	go func() {
		for i, action := range batch {
			item := ActionItem{ctx: ctx, action: action, response: pending[i]}
			select {
			case d.queue <- item:
			case <-ctx.Done():
				return
			}
		}
	}()

	for i, respCh := range pending {
		select {
		case resp := <-respCh:
			results[i].Entity, results[i].Err = resp.entity, resp.err
		case <-ctx.Done():
			for j := i; j < len(results); j++ {
				select {
				case resp := <-pending[j]:
					results[j].Entity, results[j].Err = resp.entity, resp.err
				default:
					results[j].Err = ctx.Err()
				}
			}
			return results
		}
	}
	return results
}

func (d *OperatorDelegator) enqueue(ctx context.Context, action actions.IAction) chan ActionItemResponse {
	respCh := make(chan ActionItemResponse, 1)
	item := ActionItem{
		ctx:      ctx,
		action:   action,
		response: respCh,
	}

	select {
	case d.queue <- item:
		return respCh
	case <-ctx.Done():
		return nil
	}
}
