package execution

import (
	"context"
	"sort"
	"sync"
	"time"

	"runcfg/internal/domain"
)

// ItemRunner runs a single test item
type ItemRunner interface {
	Run(ctx context.Context, item domain.TestItem, workerID int) domain.TestResult
}

// WorkerPool manages a pool of workers for parallel test execution
type WorkerPool struct {
	runner    ItemRunner
	scheduler Scheduler
	workers   int
	failFast  bool
	progress  Progress
}

// NewWorkerPool creates a new WorkerPool
func NewWorkerPool(runner ItemRunner, scheduler Scheduler, workers int, failFast bool) *WorkerPool {
	if workers <= 0 {
		workers = 1
	}
	return &WorkerPool{
		runner:    runner,
		scheduler: scheduler,
		workers:   workers,
		failFast:  failFast,
	}
}

// SetProgress sets the progress reporter for the worker pool
func (wp *WorkerPool) SetProgress(progress Progress) {
	wp.progress = progress
}

// Workers returns the number of workers used
func (wp *WorkerPool) Workers() int {
	return wp.workers
}

// Execute runs items in parallel. With fail-fast the remaining items are
// skipped after the first failure; skipped items have no result.
// Results are returned in the order of items, along with ctx's error if it
// was cancelled.
func (wp *WorkerPool) Execute(ctx context.Context, items []domain.TestItem) ([]domain.TestResult, time.Duration, error) {
	if len(items) == 0 {
		return nil, 0, nil
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	position := make(map[string]int, len(items))
	for i, item := range items {
		position[item.ID] = i
	}

	var mu sync.Mutex
	var results []domain.TestResult
	var passed, failed int
	startTime := time.Now()

	var wg sync.WaitGroup
	for i, batch := range wp.scheduler.Schedule(items, wp.workers) {
		wg.Add(1)
		go func(workerID int, batch []domain.TestItem) {
			defer wg.Done()
			for _, item := range batch {
				if runCtx.Err() != nil {
					return
				}
				result := wp.runner.Run(runCtx, item, workerID)

				mu.Lock()
				// A run interrupted by fail-fast is not a result of its own
				if runCtx.Err() != nil && !result.Success {
					mu.Unlock()
					return
				}
				results = append(results, result)
				if result.Success {
					passed++
				} else {
					failed++
					if wp.failFast {
						cancel()
					}
				}
				if wp.progress != nil {
					wp.progress.Update(passed, failed)
				}
				mu.Unlock()
			}
		}(i+1, batch)
	}
	wg.Wait()

	if wp.progress != nil {
		wp.progress.Finish()
	}

	sort.SliceStable(results, func(a, b int) bool {
		return position[results[a].Item.ID] < position[results[b].Item.ID]
	})
	return results, time.Since(startTime), ctx.Err()
}

var _ Executor = (*WorkerPool)(nil)
