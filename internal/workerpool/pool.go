// Package workerpool runs index-range jobs on a fixed set of long-lived
// goroutines so per-frame work does not pay for goroutine startup.
package workerpool

import (
	"runtime"
	"sync"
)

// Pool is a fixed set of worker goroutines fed from a shared queue. It is
// meant for one producer at a time: Wait covers every job submitted so far.
type Pool struct {
	numWorkers int
	jobs       chan func()
	wg         sync.WaitGroup
	quit       chan struct{}
	stopOnce   sync.Once
}

// New creates a pool. numWorkers <= 0 uses runtime.NumCPU().
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &Pool{
		numWorkers: numWorkers,
		jobs:       make(chan func(), numWorkers*2),
		quit:       make(chan struct{}),
	}
}

// Start launches the workers.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		go p.worker()
	}
}

func (p *Pool) worker() {
	for {
		select {
		case job := <-p.jobs:
			job()
			p.wg.Done()
		case <-p.quit:
			return
		}
	}
}

// Submit queues a job. It blocks while the queue is full.
func (p *Pool) Submit(job func()) {
	p.wg.Add(1)
	p.jobs <- job
}

// Wait blocks until every submitted job has finished.
func (p *Pool) Wait() {
	p.wg.Wait()
}

// Stop shuts the workers down. Queued jobs that have not started are
// abandoned. Safe to call more than once.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() { close(p.quit) })
}

// Workers returns the number of workers.
func (p *Pool) Workers() int {
	return p.numWorkers
}

// ParallelFor calls fn(i) for every i in [start, end), split into one chunk
// per worker, and returns when all calls are done. fn must be safe to run
// concurrently for distinct i.
func (p *Pool) ParallelFor(start, end int, fn func(int)) {
	if start >= end {
		return
	}

	chunk := max(1, (end-start+p.numWorkers-1)/p.numWorkers)
	for i := start; i < end; i += chunk {
		lo, hi := i, min(i+chunk, end)
		p.Submit(func() {
			for j := lo; j < hi; j++ {
				fn(j)
			}
		})
	}
	p.Wait()
}
