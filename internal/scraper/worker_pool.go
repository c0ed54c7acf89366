package scraper

import (
	"context"
	"sync"
	"time"
)

type Task func(ctx context.Context) error

type Result struct {
	Err error
}

// WorkerPool runs submitted tasks on a fixed number of goroutines with an
// optional global rate limit. Usage order: SetRateLimit, Run, Submit all
// tasks, Close, then drain the results channel.
type WorkerPool struct {
	workers int
	tasks   chan Task
	gap     time.Duration
}

func NewWorkerPool(workers, buffer int) *WorkerPool {
	if workers <= 0 {
		workers = 1
	}
	if buffer < 0 {
		buffer = 0
	}
	return &WorkerPool{
		workers: workers,
		tasks:   make(chan Task, buffer),
	}
}

// SetRateLimit caps task starts across all workers. Must be called before
// Run; rps <= 0 removes the limit.
func (p *WorkerPool) SetRateLimit(rps int) {
	if p == nil {
		return
	}
	if rps <= 0 {
		p.gap = 0
		return
	}
	p.gap = time.Second / time.Duration(rps)
}

// Submit blocks when the task buffer is full.
func (p *WorkerPool) Submit(t Task) {
	if p == nil || t == nil {
		return
	}
	p.tasks <- t
}

// Close signals that no more tasks are coming. The results channel from
// Run closes once the queued tasks finish.
func (p *WorkerPool) Close() {
	if p == nil {
		return
	}
	close(p.tasks)
}

func (p *WorkerPool) Run(ctx context.Context) <-chan Result {
	// Sized so workers never block on the results channel even if the
	// caller only drains after Close.
	out := make(chan Result, cap(p.tasks)+p.workers)

	var ticker *time.Ticker
	var throttle <-chan time.Time
	if p.gap > 0 {
		ticker = time.NewTicker(p.gap)
		throttle = ticker.C
	}

	var wg sync.WaitGroup
	wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case t, ok := <-p.tasks:
					if !ok {
						return
					}
					if throttle != nil {
						select {
						case <-ctx.Done():
							return
						case <-throttle:
						}
					}
					select {
					case out <- Result{Err: t(ctx)}:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		if ticker != nil {
			ticker.Stop()
		}
		close(out)
	}()

	return out
}
