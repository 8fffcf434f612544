// Package world implements the simulation engine: a toroidal 2D grid of
// cells populated by bytecode bots, advanced in lock-step generations over a
// double buffer.
package world

import (
	"math/rand"
	"sync/atomic"
)

// World owns both generation buffers and the worker pool that advances them.
// At any point between ticks exactly one buffer is authoritative; Step
// processes it into the other and flips.
type World struct {
	params Params

	cells [2][]Cell
	cur   int // index of the authoritative buffer

	// claims are per-cell movement claims into the next buffer, reset each
	// tick. A mover owns a destination cell iff it wins the compare-and-swap.
	claims []atomic.Bool

	tick   int64
	alive  atomic.Int64
	deaths atomic.Int64

	pool      *workerPool
	scratches []workerScratch

	frame []byte // W*H*4 RGBA scratch for Frame
}

// New builds a world from params and seeds it: every cell gets a little
// organic matter, and roughly a fifth of cells get a bot with a random genome
// and direction. The same seed always produces the same initial state.
func New(params Params, seed int64) (*World, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	n := params.W * params.H
	w := &World{
		params: params,
		claims: make([]atomic.Bool, n),
		frame:  make([]byte, n*4),
	}
	w.cells[0] = make([]Cell, n)
	w.cells[1] = make([]Cell, n)

	numWorkers := params.Workers
	if numWorkers < 1 {
		numWorkers = hardwareWorkers()
	}
	w.scratches = make([]workerScratch, numWorkers)
	for i := range w.scratches {
		w.scratches[i].rng = rand.New(rand.NewSource(seed + int64(i) + 1))
	}

	w.seed(seed)
	return w, nil
}

// seed populates the current buffer. Draw order per cell is fixed so that a
// given seed is reproducible: organic roll, spawn roll, then direction and
// genome if a bot spawns.
func (w *World) seed(seed int64) {
	rng := rand.New(rand.NewSource(seed))
	cur := w.cells[w.cur]
	alive := 0

	for i := range cur {
		cur[i].Organic = int32(rng.Intn(256)) % w.params.OrganicRange

		if rng.Intn(256) > w.params.SpawnThreshold {
			bot := &cur[i].Bot
			bot.Alive = true
			bot.Energy = w.params.InitialEnergy
			bot.Dir = uint8(rng.Intn(256) % 8)
			bot.Color = colorSpawn
			for g := 0; g < GenomeSize; g++ {
				bot.Genome[g] = byte(rng.Intn(256))
			}
			alive++
		}
	}
	w.alive.Store(int64(alive))
}

// Step advances the world by one tick: prepare the next buffer, dispatch the
// bot VM over the current buffer, join, swap.
func (w *World) Step() {
	cur := w.cells[w.cur]
	next := w.cells[w.cur^1]

	// Prepare: clear the bot layer, carry organic over, reset claims.
	for i := range next {
		next[i].Bot.Alive = false
		next[i].Organic = cur[i].Organic
		w.claims[i].Store(false)
	}

	w.alive.Store(0)

	n := len(cur)
	if len(w.scratches) == 1 || n < parallelThreshold {
		alive, dead := w.processRange(0, n, cur, next, &w.scratches[0])
		w.alive.Add(int64(alive))
		w.deaths.Add(int64(dead))
	} else {
		w.stepParallel(cur, next)
	}

	w.cur ^= 1
	w.tick++
}

// processRange runs one worker's scan over [start, end): live bots go through
// the VM, botless cells roll for ambient regrowth.
func (w *World) processRange(start, end int, cur, next []Cell, scratch *workerScratch) (alive, dead int) {
	for i := start; i < end; i++ {
		if cur[i].Bot.Alive {
			if w.processBot(i, cur, next) {
				alive++
			} else {
				dead++
			}
		} else if scratch.rng.Intn(w.params.RegrowthChance) == 0 {
			next[i].Organic += w.params.RegrowthAmount
		}
	}
	return alive, dead
}

// Stats returns the live bot count and the tick number. The count reflects
// the authoritative buffer after the last swap.
func (w *World) Stats() (alive int, tick int64) {
	return int(w.alive.Load()), w.tick
}

// Deaths returns the cumulative number of bots that have decayed.
func (w *World) Deaths() int64 {
	return w.deaths.Load()
}

// Width returns the grid width in cells.
func (w *World) Width() int { return w.params.W }

// Height returns the grid height in cells.
func (w *World) Height() int { return w.params.H }

// BotAt returns the bot at (x, y) in the authoritative buffer, if one lives
// there. Coordinates wrap toroidally.
func (w *World) BotAt(x, y int) (Bot, bool) {
	i := w.wrapIndex(x, y)
	bot := w.cells[w.cur][i].Bot
	return bot, bot.Alive
}

// OrganicAt returns the organic level at (x, y), with toroidal wrap.
func (w *World) OrganicAt(x, y int) int32 {
	return w.cells[w.cur][w.wrapIndex(x, y)].Organic
}

// TotalOrganic sums organic matter over the whole grid.
func (w *World) TotalOrganic() int64 {
	var total int64
	for i := range w.cells[w.cur] {
		total += int64(w.cells[w.cur][i].Organic)
	}
	return total
}

// EnergyValues appends the energy of every live bot to dst and returns it.
// Used by telemetry to sample the population's energy distribution.
func (w *World) EnergyValues(dst []float64) []float64 {
	cur := w.cells[w.cur]
	for i := range cur {
		if cur[i].Bot.Alive {
			dst = append(dst, float64(cur[i].Bot.Energy))
		}
	}
	return dst
}

// Close stops the worker pool. The world must not be stepped afterwards.
func (w *World) Close() {
	if w.pool != nil {
		w.pool.stop()
		w.pool = nil
	}
}

// wrapIndex maps possibly out-of-range coordinates onto the torus.
func (w *World) wrapIndex(x, y int) int {
	x = (x%w.params.W + w.params.W) % w.params.W
	y = (y%w.params.H + w.params.H) % w.params.H
	return y*w.params.W + x
}
