package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/limitless/internal/config"
	"github.com/vovakirdan/limitless/internal/core"
	"github.com/vovakirdan/limitless/internal/games/limitless"
	"github.com/vovakirdan/limitless/internal/platform/tui"
	"github.com/vovakirdan/limitless/internal/registry"
	"github.com/vovakirdan/limitless/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play locally in the terminal",
	Long: `Start playing. Without a variant a picker is shown.

Controls:
  WASD/Arrows  - Move
  Mouse        - Aim
  1/2/3/4      - Blue / Red / Purple / Domain
  Space        - Toggle Limitless
  Enter        - Start
  P            - Pause
  R            - Restart (after game over)
  Tab          - Scores (title and game over screens)
  Esc/B        - Back to the picker
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower spawns, weaker hits
  normal - Default tuning
  hard   - Faster spawns, harder hits, tanks from wave 2
  fixed  - Normal tuning without wave escalation

Examples:
  limitless play
  limitless play limitless_hard
  limitless play --difficulty easy
  limitless play --config ./my-limitless.toml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a custom tuning file (.yaml, .yml or .toml)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// variantForPreset returns the variant id registered for a preset.
func variantForPreset(p config.DifficultyPreset) string {
	for _, v := range limitless.Variants {
		if v.Preset == p {
			return v.ID
		}
	}
	return limitless.Variants[0].ID
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := ""
	if len(args) == 1 {
		gameID = args[0]
	} else if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		gameID = variantForPreset(preset)
	}

	if gameID != "" && !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'limitless list' to see available variants.")
		os.Exit(1)
	}

	// Fail early on a broken tuning file instead of silently playing defaults
	limitless.SetConfigPath(flagConfig)
	if _, err := config.Load(flagConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to Bubble Tea, so logs go to --log-file or nowhere
	logger, logFile, err := newLogger(io.Discard, "limitless")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeQuietly(logFile)

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without score storage", "error", err)
		// Continue without storage - game still works
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	// Esc on the title or game over screen returns to the picker; quit ends the loop
	for {
		if gameID == "" {
			result, err := tui.RunMenu(store, cfg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			cfg = result.Config
			if result.Quit {
				return
			}
			if result.WantsScoreboard {
				if _, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH, ""); err != nil {
					fmt.Fprintf(os.Stderr, "Error: %v\n", err)
					os.Exit(1)
				}
				continue
			}
			gameID = result.GameID
		}

		game, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			os.Exit(1)
		}

		back, err := tui.Run(game, store, cfg, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			os.Exit(1)
		}
		if !back {
			return
		}
		gameID = ""
	}
}
