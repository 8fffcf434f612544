// Package game hosts the simulation engine: it drives the tick loop, feeds
// the frame buffer to a streaming texture, and handles input and telemetry.
// The engine itself lives in the world package and never touches raylib.
package game

import (
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/petri/camera"
	"github.com/pthm-cable/petri/config"
	"github.com/pthm-cable/petri/telemetry"
	"github.com/pthm-cable/petri/world"
)

// Options configures a Game instance.
type Options struct {
	Seed           int64
	Headless       bool
	LogStats       bool
	OutputDir      string
	StepsPerUpdate int
	StatsWindow    int // ticks per stats window; 0 = config value
}

// Game holds the engine plus everything around it: camera, texture,
// telemetry sinks and loop state.
type Game struct {
	cfg   *config.Config
	world *world.World
	cam   *camera.Camera

	collector *telemetry.Collector
	perf      *telemetry.PerfCollector
	output    *telemetry.OutputManager
	logStats  bool

	paused         bool
	stepsPerUpdate int
	extinctLogged  bool

	headless         bool
	texture          rl.Texture2D
	pixels           []rl.Color
	screenW, screenH float32
}

// NewGame builds a game from the global config and options. In graphical
// mode the raylib window must already be open.
func NewGame(opts Options) (*Game, error) {
	cfg := config.Cfg()

	seed := opts.Seed
	if seed == 0 {
		seed = cfg.World.Seed
	}

	w, err := world.New(paramsFromConfig(cfg), seed)
	if err != nil {
		return nil, fmt.Errorf("building world: %w", err)
	}

	statsWindow := opts.StatsWindow
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}
	stepsPerUpdate := opts.StepsPerUpdate
	if stepsPerUpdate < 1 {
		stepsPerUpdate = cfg.Simulation.StepsPerUpdate
	}
	if stepsPerUpdate < 1 {
		stepsPerUpdate = 1
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		w.Close()
		return nil, err
	}
	if err := output.WriteConfig(cfg); err != nil {
		w.Close()
		return nil, err
	}

	g := &Game{
		cfg:            cfg,
		world:          w,
		collector:      telemetry.NewCollector(statsWindow),
		perf:           telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		output:         output,
		logStats:       opts.LogStats,
		stepsPerUpdate: stepsPerUpdate,
		headless:       opts.Headless,
		screenW:        float32(cfg.Screen.Width),
		screenH:        float32(cfg.Screen.Height),
	}

	if !opts.Headless {
		g.cam = camera.New(g.screenW, g.screenH, float32(w.Width()), float32(w.Height()))
		img := rl.GenImageColor(w.Width(), w.Height(), rl.Black)
		g.texture = rl.LoadTextureFromImage(img)
		rl.UnloadImage(img)
		g.pixels = make([]rl.Color, w.Width()*w.Height())
	}

	alive, _ := g.world.Stats()
	slog.Info("world seeded",
		"seed", seed,
		"width", w.Width(),
		"height", w.Height(),
		"alive", alive,
	)

	return g, nil
}

// paramsFromConfig maps the loaded config onto engine parameters.
func paramsFromConfig(cfg *config.Config) world.Params {
	return world.Params{
		W:              cfg.World.Width,
		H:              cfg.World.Height,
		Workers:        cfg.Simulation.Workers,
		MaxSteps:       cfg.Simulation.MaxSteps,
		InitialEnergy:  cfg.World.InitialEnergy,
		SpawnThreshold: cfg.World.SpawnThreshold,
		OrganicRange:   cfg.World.OrganicRange,
		ExistenceCost:  cfg.Energy.ExistenceCost,
		MoveCost:       cfg.Energy.MoveCost,
		PhotoGain:      cfg.Energy.PhotoGain,
		EatMax:         cfg.Energy.EatMax,
		CorpseOrganic:  cfg.Energy.CorpseOrganic,
		RegrowthChance: cfg.Regrowth.Chance,
		RegrowthAmount: cfg.Regrowth.Amount,
	}
}

// Update runs input handling and one or more simulation steps.
func (g *Game) Update() {
	g.handleInput()
	g.perf.RecordFrame()

	if g.paused {
		return
	}
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step()
	}
}

// UpdateHeadless runs simulation steps without any input handling.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step()
	}
}

// step advances the engine one tick and services telemetry.
func (g *Game) step() {
	g.perf.StartTick()

	g.perf.StartPhase(telemetry.PhaseStep)
	g.world.Step()

	g.perf.StartPhase(telemetry.PhaseTelemetry)
	alive, tick := g.world.Stats()

	if alive == 0 && !g.extinctLogged {
		g.extinctLogged = true
		slog.Info("population extinct", "tick", tick)
	}

	if g.collector.ShouldFlush(tick) {
		stats := g.collector.Flush(g.world)
		if g.logStats {
			stats.LogStats()
		}
		if err := g.output.WriteStats(stats); err != nil {
			slog.Error("writing stats", "error", err)
		}
		if err := g.output.WritePerf(g.perf.Stats(), tick); err != nil {
			slog.Error("writing perf", "error", err)
		}
	}

	g.perf.EndTick()
}

// Tick returns the current tick number.
func (g *Game) Tick() int64 {
	_, tick := g.world.Stats()
	return tick
}

// Alive returns the current live bot count.
func (g *Game) Alive() int {
	alive, _ := g.world.Stats()
	return alive
}

// Unload releases the engine workers, output files and GPU resources.
func (g *Game) Unload() {
	g.world.Close()
	if err := g.output.Close(); err != nil {
		slog.Error("closing output", "error", err)
	}
	if !g.headless {
		rl.UnloadTexture(g.texture)
	}
}
