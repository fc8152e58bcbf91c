package worker

import (
	"context"
	"errors"
	"sync"

	"github.com/Neworly/one-year-one-code/internal/logger"
)

// ErrPoolStopped is returned by Enqueue once Stop has been called
var ErrPoolStopped = errors.New(ErrMsgPoolStopped)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// JobFunc adapts a function to the Job interface
type JobFunc func(ctx context.Context) error

// Process calls f(ctx)
func (f JobFunc) Process(ctx context.Context) error {
	return f(ctx)
}

// Pool runs jobs on a fixed number of goroutines
type Pool struct {
	workers  int
	jobQueue chan Job
	wg       sync.WaitGroup
	quit     chan struct{}
	stopOnce sync.Once
	ctx      context.Context
}

// NewPool creates a new worker pool. workers below one are raised to one.
func NewPool(workers int, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}
	return &Pool{
		workers:  workers,
		jobQueue: make(chan Job, queueSize),
		quit:     make(chan struct{}),
	}
}

// Start starts the workers. Jobs are processed with ctx.
func (p *Pool) Start(ctx context.Context) {
	p.ctx = ctx
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
	logger.FromContext(ctx).Debug(LogMsgPoolStarted, "workers", p.workers, "queue_size", cap(p.jobQueue))
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			if err := job.Process(p.ctx); err != nil {
				logger.FromContext(p.ctx).Error(LogMsgWorkerJobFailed, "worker", id, "error", err)
			}
		case <-p.quit:
			return
		}
	}
}

// Enqueue blocks until the job is queued, ctx is done, or the pool is stopped
func (p *Pool) Enqueue(ctx context.Context, job Job) error {
	select {
	case <-p.quit:
		return ErrPoolStopped
	default:
	}

	select {
	case p.jobQueue <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-p.quit:
		return ErrPoolStopped
	}
}

// Stop stops the workers and waits for in-flight jobs to finish.
// Jobs still waiting in the queue are dropped. Safe to call more than once.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		close(p.quit)
	})
	p.wg.Wait()
}
