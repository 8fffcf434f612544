package world

import (
	"reflect"
	"testing"
)

func TestNewValidatesParams(t *testing.T) {
	p := DefaultParams()
	p.W = 0
	if _, err := New(p, 1); err == nil {
		t.Error("expected error for zero width")
	}

	p = DefaultParams()
	p.MaxSteps = 0
	if _, err := New(p, 1); err == nil {
		t.Error("expected error for zero max steps")
	}
}

func TestSeededInit(t *testing.T) {
	p := DefaultParams()
	p.Workers = 1
	w, err := New(p, DefaultSeed)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	alive, tick := w.Stats()
	if tick != 0 {
		t.Errorf("expected tick 0, got %d", tick)
	}

	// Spawn roll passes for bytes 201..255: expect ~21.5% density.
	total := p.W * p.H
	lo, hi := total*15/100, total*28/100
	if alive < lo || alive > hi {
		t.Errorf("expected initial population in [%d,%d], got %d", lo, hi, alive)
	}

	// Every spawned bot starts with the configured energy; organic within range.
	cur := w.cells[w.cur]
	for i := range cur {
		if cur[i].Organic < 0 || cur[i].Organic >= p.OrganicRange {
			t.Fatalf("cell %d organic %d outside [0,%d)", i, cur[i].Organic, p.OrganicRange)
		}
		if cur[i].Bot.Alive && cur[i].Bot.Energy != p.InitialEnergy {
			t.Fatalf("cell %d bot energy %d, want %d", i, cur[i].Bot.Energy, p.InitialEnergy)
		}
	}
}

func TestSingleThreadedDeterminism(t *testing.T) {
	p := DefaultParams()
	p.W = 64
	p.H = 32
	p.Workers = 1

	a, err := New(p, DefaultSeed)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	b, err := New(p, DefaultSeed)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for i := 0; i < 50; i++ {
		a.Step()
		b.Step()
	}

	if !reflect.DeepEqual(a.cells[a.cur], b.cells[b.cur]) {
		t.Error("single-threaded runs with the same seed diverged")
	}
	aliveA, _ := a.Stats()
	aliveB, _ := b.Stats()
	if aliveA != aliveB {
		t.Errorf("alive counts diverged: %d vs %d", aliveA, aliveB)
	}
}

// checkInvariants asserts the per-tick structural invariants: non-negative
// organic everywhere and an alive counter that matches a recount of the
// authoritative buffer.
func checkInvariants(t *testing.T, w *World) {
	t.Helper()
	cur := w.cells[w.cur]
	recount := 0
	for i := range cur {
		if cur[i].Organic < 0 {
			t.Fatalf("cell %d has negative organic %d", i, cur[i].Organic)
		}
		if cur[i].Bot.Alive {
			recount++
		}
	}
	alive, _ := w.Stats()
	if alive != recount {
		t.Fatalf("alive counter %d does not match recount %d", alive, recount)
	}
}

func TestInvariantsOverManyTicks(t *testing.T) {
	p := DefaultParams()
	p.W = 64
	p.H = 32
	p.Workers = 1

	w, err := New(p, DefaultSeed)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for i := 0; i < 100; i++ {
		w.Step()
		checkInvariants(t, w)
	}

	_, tick := w.Stats()
	if tick != 100 {
		t.Errorf("expected tick 100, got %d", tick)
	}
}

func TestInvariantsParallel(t *testing.T) {
	p := DefaultParams() // full 256x128 grid, pool engaged
	w, err := New(p, DefaultSeed)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.Close()

	for i := 0; i < 20; i++ {
		w.Step()
		checkInvariants(t, w)
	}
}

func TestAmbientRegrowth(t *testing.T) {
	p := DefaultParams()
	p.W = 8
	p.H = 8
	p.Workers = 1
	p.SpawnThreshold = 256
	p.OrganicRange = 1
	p.RegrowthChance = 1 // every botless cell regrows every tick

	w, err := New(p, 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	w.Step()
	for y := 0; y < p.H; y++ {
		for x := 0; x < p.W; x++ {
			if got := w.OrganicAt(x, y); got != p.RegrowthAmount {
				t.Fatalf("cell (%d,%d): expected organic %d, got %d", x, y, p.RegrowthAmount, got)
			}
		}
	}

	w.Step()
	if got := w.OrganicAt(0, 0); got != 2*p.RegrowthAmount {
		t.Errorf("expected organic to accumulate to %d, got %d", 2*p.RegrowthAmount, got)
	}
}

func TestRegrowthSkipsOccupiedCells(t *testing.T) {
	w := newTestWorld(t, 3, 3)
	w.params.RegrowthChance = 1
	w.params.RegrowthAmount = 10
	genome := make([]byte, GenomeSize)
	for i := range genome {
		genome[i] = opPhotosynth
	}
	placeBot(w, 1, 1, 0, 100, genome)

	w.Step()

	if got := w.OrganicAt(1, 1); got != 0 {
		t.Errorf("occupied cell should not regrow, got organic %d", got)
	}
	if got := w.OrganicAt(0, 0); got != 10 {
		t.Errorf("botless cell should regrow, got organic %d", got)
	}
}

func TestEnergyValues(t *testing.T) {
	w := newTestWorld(t, 3, 3)
	placeBot(w, 0, 0, 0, 100, []byte{opPhotosynth})
	placeBot(w, 2, 2, 0, 50, []byte{opPhotosynth})

	values := w.EnergyValues(nil)
	if len(values) != 2 {
		t.Fatalf("expected 2 energy samples, got %d", len(values))
	}
	if values[0] != 100 || values[1] != 50 {
		t.Errorf("expected samples [100 50] in scan order, got %v", values)
	}
}

func TestTotalOrganic(t *testing.T) {
	w := newTestWorld(t, 3, 3)
	w.cells[w.cur][0].Organic = 5
	w.cells[w.cur][4].Organic = 7

	if got := w.TotalOrganic(); got != 12 {
		t.Errorf("expected total organic 12, got %d", got)
	}
}
