// Package worker runs fire-and-forget jobs on a small bounded pool, so the
// HTTP handlers never wait on (or leak) detached goroutines and shutdown can
// drain what is still queued.
package worker

import (
	"context"
	"log/slog"
	"sync"
)

// Dispatcher accepts background jobs. Enqueue reports false when the queue is
// full; callers decide whether a dropped job matters.
type Dispatcher interface {
	Enqueue(job func(ctx context.Context)) bool
}

// Pool is a fixed-size worker pool with a bounded job queue.
type Pool struct {
	jobs    chan func(ctx context.Context)
	wg      sync.WaitGroup
	stopped sync.Once
}

var _ Dispatcher = (*Pool)(nil)

// NewPool starts `workers` goroutines draining a queue of `queueSize` jobs.
func NewPool(workers, queueSize int) *Pool {
	p := &Pool{jobs: make(chan func(ctx context.Context), queueSize)}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.run()
	}
	return p
}

func (p *Pool) run() {
	defer p.wg.Done()
	for job := range p.jobs {
		func() {
			defer func() {
				if rec := recover(); rec != nil {
					slog.Error("background job panicked", "panic", rec)
				}
			}()
			job(context.Background())
		}()
	}
}

// Enqueue schedules a job without blocking. It returns false once the queue
// is full or the pool has been shut down.
func (p *Pool) Enqueue(job func(ctx context.Context)) bool {
	defer func() {
		// Enqueue racing Shutdown can hit a closed channel; treat it as full.
		_ = recover()
	}()
	select {
	case p.jobs <- job:
		return true
	default:
		return false
	}
}

// Shutdown stops accepting jobs and waits for the queue to drain. If ctx
// expires first, the remaining jobs are abandoned and logged.
func (p *Pool) Shutdown(ctx context.Context) error {
	p.stopped.Do(func() { close(p.jobs) })

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		slog.Warn("worker shutdown abandoned queued jobs", "remaining", len(p.jobs))
		return ctx.Err()
	}
}
