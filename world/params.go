package world

import "fmt"

// Default world dimensions and seeding.
const (
	DefaultWidth  = 256
	DefaultHeight = 128
	DefaultSeed   = 12345
)

// Params holds the world dimensions and energy economics. Dimensions are
// fixed for the lifetime of a World.
type Params struct {
	W, H int

	// Workers is the number of tick workers. 0 means use all available
	// hardware parallelism; 1 forces single-threaded, deterministic ticks.
	Workers int

	// MaxSteps bounds how many opcodes a bot may fetch per tick before its
	// turn ends regardless (infinite-loop safeguard).
	MaxSteps int

	// Seeding
	InitialEnergy  int32
	SpawnThreshold int   // spawn roll byte must exceed this (200 of 255 = ~21.5% density)
	OrganicRange   int32 // initial organic drawn from [0, OrganicRange)

	// Per-tick economics
	ExistenceCost int32
	MoveCost      int32
	PhotoGain     int32
	EatMax        int32
	CorpseOrganic int32

	// Ambient regrowth: each botless cell gains RegrowthAmount organic with
	// probability 1/RegrowthChance per tick.
	RegrowthChance int
	RegrowthAmount int32
}

// DefaultParams returns the standard simulation parameters.
func DefaultParams() Params {
	return Params{
		W:              DefaultWidth,
		H:              DefaultHeight,
		Workers:        0,
		MaxSteps:       10,
		InitialEnergy:  500,
		SpawnThreshold: 200,
		OrganicRange:   50,
		ExistenceCost:  1,
		MoveCost:       2,
		PhotoGain:      5,
		EatMax:         20,
		CorpseOrganic:  50,
		RegrowthChance: 1000,
		RegrowthAmount: 10,
	}
}

// validate checks parameters that would break the tick loop.
func (p Params) validate() error {
	if p.W <= 0 || p.H <= 0 {
		return fmt.Errorf("world dimensions must be positive, got %dx%d", p.W, p.H)
	}
	if p.MaxSteps <= 0 {
		return fmt.Errorf("max steps must be positive, got %d", p.MaxSteps)
	}
	if p.OrganicRange <= 0 {
		return fmt.Errorf("organic range must be positive, got %d", p.OrganicRange)
	}
	if p.RegrowthChance <= 0 {
		return fmt.Errorf("regrowth chance must be positive, got %d", p.RegrowthChance)
	}
	return nil
}
