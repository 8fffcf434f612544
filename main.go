package main

import (
	"flag"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/petri/config"
	"github.com/pthm-cable/petri/game"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output window stats via slog")
	statsWindow := flag.Int("stats-window", 0, "Stats window size in ticks (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "World seed (0 = use config)")
	maxTicks := flag.Int64("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	stepsPerUpdate := flag.Int("steps-per-update", 0, "Simulation ticks per update call (0 = use config)")

	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Structured JSON logging to stdout
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	opts := game.Options{
		Seed:           *seed,
		Headless:       *headless,
		LogStats:       *logStats,
		OutputDir:      *outputDir,
		StepsPerUpdate: *stepsPerUpdate,
		StatsWindow:    *statsWindow,
	}

	if *headless {
		g, err := game.NewGame(opts)
		if err != nil {
			slog.Error("failed to start", "error", err)
			os.Exit(1)
		}
		defer g.Unload()

		slog.Info("starting headless simulation",
			"max_ticks", *maxTicks,
			"steps_per_update", *stepsPerUpdate,
		)

		for {
			g.UpdateHeadless()

			if *maxTicks > 0 && g.Tick() >= *maxTicks {
				slog.Info("max ticks reached", "tick", g.Tick())
				return
			}
		}
	}

	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "petri")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g, err := game.NewGame(opts)
	if err != nil {
		slog.Error("failed to start", "error", err)
		os.Exit(1)
	}
	defer g.Unload()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()

		if *maxTicks > 0 && g.Tick() >= *maxTicks {
			break
		}
	}
}
