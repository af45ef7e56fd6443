// Copyright 2026 The go-arrayops Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool for
// batch slice operations. A Pool is created once and reused across many
// batches, so repeated batch calls pay no goroutine spawn or channel
// allocation overhead.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	// Reuse the pool across many batches
//	pool.ForEachIndex(len(slices), func(i int) {
//	    dpsort.Sort(slices[i])
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool reused across many parallel
// operations. Workers are spawned once at creation and live until Close.
type Pool struct {
	numWorkers int
	tasks      chan task
	closeOnce  sync.Once
	closed     atomic.Bool
}

// task is one unit of submitted work plus the barrier that joins it.
type task struct {
	run     func()
	barrier *sync.WaitGroup
}

// New creates a worker pool with the given number of workers, spawned
// immediately. If numWorkers <= 0, GOMAXPROCS is used.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		tasks:      make(chan task, numWorkers),
	}

	for i := 0; i < numWorkers; i++ {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	for t := range p.tasks {
		t.run()
		t.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts the pool down. Work already submitted completes; calling
// Close more than once is safe. Entry points on a closed pool degrade
// to sequential execution instead of panicking. Close must not be
// called concurrently with an entry point that is still submitting.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.tasks)
	})
}

// ParallelFor executes fn over [0, n) split into one contiguous chunk
// per worker. Blocks until all chunks complete.
//
// fn receives (start, end) and must process exactly [start, end).
// Chunking suits uniform per-index cost; use ForEachIndex when cost
// varies by index.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	if p.closed.Load() {
		fn(0, n)
		return
	}

	workers := min(p.numWorkers, n)
	if workers == 1 {
		fn(0, n)
		return
	}

	// Round up so the chunks cover every index.
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		start := i * chunk
		end := min(start+chunk, n)
		if start >= n {
			wg.Done()
			continue
		}

		p.tasks <- task{
			run:     func() { fn(start, end) },
			barrier: &wg,
		}
	}

	wg.Wait()
}

// ForEachIndex executes fn once for every index in [0, n), handing
// indices to workers one at a time through an atomic counter. The
// stealing balances load when per-index cost varies, which is the
// common case when each index is an independent slice to sort.
// Blocks until every index is processed.
func (p *Pool) ForEachIndex(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	if p.closed.Load() {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	workers := min(p.numWorkers, n)
	if workers == 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		p.tasks <- task{
			run: func() {
				for {
					i := int(next.Add(1)) - 1
					if i >= n {
						return
					}
					fn(i)
				}
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}
