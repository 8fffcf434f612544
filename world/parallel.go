package world

import (
	"math/rand"
	"runtime"
	"sync"
)

// parallelThreshold is the minimum cell count to use the worker pool. Small
// worlds (including the ones tests build) run single-threaded, which is both
// faster and bit-deterministic.
const parallelThreshold = 4096

// workerScratch holds per-worker reusable state. Each worker owns a seeded
// RNG for ambient regrowth so single-threaded runs are reproducible.
type workerScratch struct {
	rng *rand.Rand
}

// workChunk is one contiguous index range of the grid for a worker to scan.
type workChunk struct {
	start, end int
	cur, next  []Cell
}

// workerPool runs persistent goroutines that process grid chunks each tick.
// Workers only read the current buffer and write the next one; the sole
// cross-worker contention is the movement claim, which is resolved by
// compare-and-swap in the VM.
type workerPool struct {
	numWorkers int

	workChan chan workChunk
	doneChan chan struct{}
	stopChan chan struct{}
	wg       sync.WaitGroup
}

// hardwareWorkers returns the available parallelism with a floor of 4, in
// case the runtime reports nothing sensible.
func hardwareWorkers() int {
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		n = 4
	}
	return n
}

// startPool launches the persistent workers lazily on first parallel tick.
func (w *World) startPool() {
	p := &workerPool{
		numWorkers: len(w.scratches),
		workChan:   make(chan workChunk, len(w.scratches)),
		doneChan:   make(chan struct{}, len(w.scratches)),
		stopChan:   make(chan struct{}),
	}
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go w.worker(p, i)
	}
	w.pool = p
}

// worker processes chunks until stopped. Worker i always uses scratch i, so
// regrowth RNG streams never interleave within a worker.
func (w *World) worker(p *workerPool, id int) {
	defer p.wg.Done()
	scratch := &w.scratches[id]

	for {
		select {
		case <-p.stopChan:
			return
		case chunk, ok := <-p.workChan:
			if !ok {
				return
			}
			alive, dead := w.processRange(chunk.start, chunk.end, chunk.cur, chunk.next, scratch)
			w.alive.Add(int64(alive))
			w.deaths.Add(int64(dead))
			p.doneChan <- struct{}{}
		}
	}
}

// stepParallel partitions the grid into contiguous ranges and dispatches them
// to the pool, then joins. The join is the only synchronization point of a
// tick; it establishes the happens-before edge for the following swap.
func (w *World) stepParallel(cur, next []Cell) {
	if w.pool == nil {
		w.startPool()
	}

	n := len(cur)
	numWorkers := w.pool.numWorkers
	chunkSize := (n + numWorkers - 1) / numWorkers

	dispatched := 0
	for i := 0; i < numWorkers; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}
		if start >= end {
			continue
		}
		w.pool.workChan <- workChunk{start: start, end: end, cur: cur, next: next}
		dispatched++
	}

	for i := 0; i < dispatched; i++ {
		<-w.pool.doneChan
	}
}

// stop signals all workers to exit and waits for them.
func (p *workerPool) stop() {
	close(p.stopChan)
	p.wg.Wait()
	close(p.workChan)
	close(p.doneChan)
}
