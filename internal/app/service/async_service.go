package service

import (
	"context"

	"shift-tracker/pkg/workerpool"
)

// AsyncService funnels work through the pool. Built on a single-worker pool
// it serializes user actions, so each one finishes, storage write included,
// before the next starts.
type AsyncService struct {
	Pool *workerpool.WorkerPool
}

func NewAsyncService(pool *workerpool.WorkerPool) *AsyncService {
	return &AsyncService{Pool: pool}
}

// SubmitAsync runs fn on the pool and waits for its result.
func (a *AsyncService) SubmitAsync(ctx context.Context, fn func() (any, error)) (any, error) {
	resCh := make(chan workerpool.Result, 1)
	if err := a.Pool.Submit(ctx, workerpool.Task{Fn: fn, ResultC: resCh}); err != nil {
		return nil, err
	}
	select {
	case res := <-resCh:
		return res.Value, res.Err
	case <-a.Pool.Done():
		select {
		case res := <-resCh:
			return res.Value, res.Err
		default:
			return nil, workerpool.ErrClosed
		}
	}
}

// Run is SubmitAsync for work that only reports an error.
func (a *AsyncService) Run(ctx context.Context, fn func() error) error {
	_, err := a.SubmitAsync(ctx, func() (any, error) { return nil, fn() })
	return err
}
