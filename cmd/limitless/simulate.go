package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/limitless/internal/core"
	"github.com/vovakirdan/limitless/internal/games/limitless"
	"github.com/vovakirdan/limitless/internal/registry"
	"github.com/vovakirdan/limitless/internal/sim"
	"github.com/vovakirdan/limitless/internal/storage"
)

var (
	flagSimTicks   int
	flagSimWidth   int
	flagSimHeight  int
	flagSimSave    bool
	flagSimVariant string
	flagSimConfig  string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the autopilot without a terminal",
	Long: `Run one game with a scripted player and print a summary.
Particles are disabled; the run stops at game over or after --ticks.

Examples:
  limitless simulate
  limitless simulate --ticks 36000 --seed 7
  limitless simulate --variant limitless_hard --save`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimTicks, "ticks", 18000, "Maximum ticks to simulate")
	simulateCmd.Flags().IntVar(&flagSimWidth, "width", 120, "Arena width in terminal cells")
	simulateCmd.Flags().IntVar(&flagSimHeight, "height", 40, "Arena height in terminal cells")
	simulateCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record the run in the scores database")
	simulateCmd.Flags().StringVar(&flagSimVariant, "variant", "limitless", "Variant to simulate")
	simulateCmd.Flags().StringVar(&flagSimConfig, "config", "", "Path to a custom tuning file")
}

func runSimulate(_ *cobra.Command, _ []string) {
	logger, logFile, err := newLogger(os.Stderr, "limitless-sim")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeQuietly(logFile)

	if !registry.Exists(flagSimVariant) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", flagSimVariant)
		os.Exit(1)
	}
	variant := limitless.Variants[0]
	for _, v := range limitless.Variants {
		if v.ID == flagSimVariant {
			variant = v
		}
	}

	limitless.SetConfigPath(flagSimConfig)
	cfg, err := limitless.LoadConfig(variant.Preset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg.Particles.Enabled = false

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	w, h := limitless.WorldSize(flagSimWidth, flagSimHeight)
	session := sim.NewSession(cfg, w, h, seed)
	session.Start()
	logger.Debug("simulation started", "variant", variant.ID, "seed", seed, "world", fmt.Sprintf("%.0fx%.0f", w, h))

	start := time.Now()
	casts := make(map[string]int)
	fusions := 0
	for i := 0; i < flagSimTicks && session.State() == sim.StatePlaying; i++ {
		for _, e := range session.Tick(sim.Autopilot(session.Snapshot())) {
			switch e.Kind {
			case core.EventCast:
				casts[e.Label]++
			case core.EventFusion:
				fusions += e.Value
			case core.EventWaveAdvanced:
				logger.Info("wave advanced", "wave", e.Value, "tick", session.Stats().Tick)
			case core.EventGameOver:
				logger.Info("game over", "score", e.Value, "tick", session.Stats().Tick)
			}
		}
	}
	elapsed := time.Since(start)

	stats := session.Stats()
	snap := session.Snapshot()
	outcome := "survived"
	if session.State() == sim.StateGameOver {
		outcome = "died"
	}

	fmt.Printf("Simulation - %s (seed %d)\n", variant.Title, seed)
	fmt.Println()
	fmt.Printf("  Outcome:  %s after %d ticks (%s of play)\n", outcome, stats.Tick,
		(time.Duration(stats.Tick) * time.Second / time.Duration(max(flagFPS, 1))).Round(time.Second))
	fmt.Printf("  Score:    %d\n", stats.Score)
	fmt.Printf("  Wave:     %d\n", stats.Wave)
	fmt.Printf("  Kills:    %d\n", stats.Kills)
	fmt.Printf("  HP left:  %.0f / %.0f\n", max(snap.Player.HP, 0), snap.Player.MaxHP)
	fmt.Printf("  Casts:    blue %d, red %d, purple %d, domain %d\n",
		casts["blue"], casts["red"], casts["purple"], casts["domain"])
	fmt.Printf("  Fusions:  %d\n", fusions)
	fmt.Printf("  Wall:     %s\n", elapsed.Round(time.Millisecond))

	if !flagSimSave {
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if _, err := store.SaveRun(storage.RunRecord{
		GameID: variant.ID,
		Score:  stats.Score,
		Wave:   stats.Wave,
		Kills:  stats.Kills,
		Ticks:  stats.Tick,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving run: %v\n", err)
		os.Exit(1)
	}
	fmt.Println()
	fmt.Println("Run saved.")
}
