// Package parallel fans independent per-row raster passes out over a
// fixed set of goroutines.
//
// None of the work scheduled here may draw random numbers: callers rely on
// a parallel pass producing exactly the bytes a serial pass would.
package parallel

import (
	"runtime"
	"sync"
)

// minRowsPerBand keeps tiny rasters on the calling goroutine.
const minRowsPerBand = 16

// WorkerPool is a pool of goroutines for row-parallel raster passes. Its
// workers live for the rest of the process.
//
// Each worker owns a queue. Work is assigned round-robin, and an idle
// worker steals from the other queues before blocking on its own.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers    int
	workQueues []chan func()
}

// NewWorkerPool creates a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := max(workers*4, 8)

	p := &WorkerPool{
		workers:    workers,
		workQueues: make([]chan func(), workers),
	}
	for i := range workers {
		p.workQueues[i] = make(chan func(), queueSize)
	}
	for i := range workers {
		go p.worker(i)
	}
	return p
}

func (p *WorkerPool) worker(id int) {
	own := p.workQueues[id]
	for {
		select {
		case work := <-own:
			work()
		default:
			if stolen := p.steal(id); stolen != nil {
				stolen()
				continue
			}
			(<-own)()
		}
	}
}

func (p *WorkerPool) steal(id int) func() {
	for i := range p.workers {
		if i == id {
			continue
		}
		select {
		case work := <-p.workQueues[i]:
			return work
		default:
		}
	}
	return nil
}

// ExecuteAll runs every work item and waits for all of them to finish.
func (p *WorkerPool) ExecuteAll(work []func()) {
	if len(work) == 0 {
		return
	}

	var completion sync.WaitGroup
	completion.Add(len(work))
	for i, fn := range work {
		p.workQueues[i%p.workers] <- func() {
			defer completion.Done()
			fn()
		}
	}
	completion.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

var (
	defaultOnce sync.Once
	defaultPool *WorkerPool
)

// Default returns the process-wide pool, creating it on first use.
func Default() *WorkerPool {
	defaultOnce.Do(func() {
		defaultPool = NewWorkerPool(0)
	})
	return defaultPool
}

// Rows calls fn for every row index in [0, height), splitting the rows into
// contiguous bands executed on the default pool. fn must only write state
// owned by its row.
func Rows(height int, fn func(y int)) {
	RowsOn(Default(), height, fn)
}

// RowsOn is Rows on an explicit pool.
func RowsOn(p *WorkerPool, height int, fn func(y int)) {
	if height <= 0 {
		return
	}
	bands := min(p.Workers(), (height+minRowsPerBand-1)/minRowsPerBand)
	if bands <= 1 {
		for y := range height {
			fn(y)
		}
		return
	}

	per := (height + bands - 1) / bands
	work := make([]func(), 0, bands)
	for lo := 0; lo < height; lo += per {
		hi := min(lo+per, height)
		work = append(work, func() {
			for y := lo; y < hi; y++ {
				fn(y)
			}
		})
	}
	p.ExecuteAll(work)
}
