// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool runs range-splitting jobs on a fixed set of goroutines.
// The algo package uses it to spread a Transform or a Count over several
// cores: every worker receives a contiguous [start, end) slice of the range
// and runs the ordinary single-threaded algorithm on it.
//
// Usage:
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//
//	lanes := hwy.NumLanes[float32, hwy.Best]()
//	pool.ParallelForGrain(len(data), lanes, func(start, end int) {
//	    algo.Transform(data[start:end], out[start:end], f, fb)
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a set of persistent workers. A Pool may be shared by concurrent
// callers; each call blocks until its own work is done. Close may race with
// calls: a call that loses runs on the calling goroutine.
type Pool struct {
	numWorkers int
	workC      chan job

	// mu orders job submission against Close; submitters hold it for
	// reading while they send.
	mu     sync.RWMutex
	closed bool
}

type job struct {
	fn   func()
	done *sync.WaitGroup
}

// New starts numWorkers workers, or GOMAXPROCS workers if numWorkers <= 0.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan job, numWorkers*2),
	}
	for range numWorkers {
		go p.loop()
	}
	return p
}

func (p *Pool) loop() {
	for j := range p.workC {
		j.fn()
		j.done.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close stops the workers after pending jobs finish. It is safe to call more
// than once; a closed pool runs later calls on the calling goroutine.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.closed = true
		close(p.workC)
	}
}

// submit queues jobs unless the pool is closed, in which case it queues
// nothing and returns false.
func (p *Pool) submit(jobs []job) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return false
	}
	for _, j := range jobs {
		p.workC <- j
	}
	return true
}

// ParallelFor calls fn on contiguous sub-ranges covering [0, n) and waits.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	p.ParallelForGrain(n, 1, fn)
}

// ParallelForGrain is ParallelFor with every interior boundary a multiple of
// grain. Splitting a slice on multiples of the lane count keeps each chunk's
// alignment offset equal to the whole slice's.
func (p *Pool) ParallelForGrain(n, grain int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if grain <= 0 {
		grain = 1
	}
	units := (n + grain - 1) / grain
	workers := min(p.numWorkers, units)
	if workers <= 1 {
		fn(0, n)
		return
	}

	per := (units + workers - 1) / workers * grain
	var wg sync.WaitGroup
	jobs := make([]job, 0, workers)
	for start := 0; start < n; start += per {
		end := min(start+per, n)
		jobs = append(jobs, job{fn: func() { fn(start, end) }, done: &wg})
	}
	wg.Add(len(jobs))
	if !p.submit(jobs) {
		fn(0, n)
		return
	}
	wg.Wait()
}

// ParallelForBatched hands out [start, end) batches of batchSize indices
// through an atomic counter, so faster workers take more batches. Use it when
// the cost per index varies.
func (p *Pool) ParallelForBatched(n, batchSize int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	batches := (n + batchSize - 1) / batchSize
	workers := min(p.numWorkers, batches)
	if workers <= 1 {
		fn(0, n)
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	drain := func() {
		for {
			start := int(next.Add(1)-1) * batchSize
			if start >= n {
				return
			}
			fn(start, min(start+batchSize, n))
		}
	}
	jobs := make([]job, workers)
	for i := range jobs {
		jobs[i] = job{fn: drain, done: &wg}
	}
	wg.Add(workers)
	if !p.submit(jobs) {
		fn(0, n)
		return
	}
	wg.Wait()
}
