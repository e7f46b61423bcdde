package workerpool

import (
	"context"
	"errors"
	"sync"
)

var ErrClosed = errors.New("worker pool closed")

// Task is a unit of work. Fn must be safe to run on any worker; with a single
// worker, tasks run one at a time in submission order.
type Task struct {
	Fn      func() (any, error)
	ResultC chan Result
}

type Result struct {
	Value any
	Err   error
}

type WorkerPool struct {
	tasks  chan Task
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewWorkerPool starts workerCount workers fed from a queue of queueSize.
func NewWorkerPool(workerCount int, queueSize int) *WorkerPool {
	ctx, cancel := context.WithCancel(context.Background())
	wp := &WorkerPool{
		tasks:  make(chan Task, queueSize),
		ctx:    ctx,
		cancel: cancel,
	}
	wp.wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()
	for {
		select {
		case <-wp.ctx.Done():
			return
		case task := <-wp.tasks:
			res, err := task.Fn()
			if task.ResultC != nil {
				task.ResultC <- Result{Value: res, Err: err}
			}
		}
	}
}

// Submit queues task. It blocks while the queue is full and gives up when ctx
// ends or the pool is closed.
func (wp *WorkerPool) Submit(ctx context.Context, task Task) error {
	select {
	case <-wp.ctx.Done():
		return ErrClosed
	default:
	}
	select {
	case <-wp.ctx.Done():
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	case wp.tasks <- task:
		return nil
	}
}

// Done is closed once Close has been called.
func (wp *WorkerPool) Done() <-chan struct{} {
	return wp.ctx.Done()
}

// Close stops the workers and waits for the running tasks to return. Queued
// tasks that have not started are dropped.
func (wp *WorkerPool) Close() {
	wp.cancel()
	wp.wg.Wait()
}
