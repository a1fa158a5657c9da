// limitless is a terminal arena game: hold off waves of enemies with four
// sorcery abilities and an energy-draining shield.
//
// Usage:
//
//	limitless list                - List difficulty variants
//	limitless play [variant]      - Play locally (picker when no variant)
//	limitless serve               - Start SSH server for remote play
//	limitless scores [variant]    - Show high scores
//	limitless simulate            - Headless autopilot run
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.limitless/scores.db)
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Register the game variants
	_ "github.com/vovakirdan/limitless/internal/games/limitless"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "limitless",
	Short: "Limitless - an arena sorcery game for your terminal",
	Long: `Limitless is a terminal arena game. Enemies close in from every side;
you hold them off with four abilities and an energy-draining shield.

Available commands:
  list      - Show the difficulty variants
  play      - Play locally
  serve     - Start SSH server for remote play
  scores    - View high scores
  simulate  - Run the autopilot headless

Examples:
  limitless play
  limitless play limitless_hard
  limitless serve --ssh :2222
  limitless scores limitless_easy
  limitless simulate --ticks 36000 --seed 7`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.limitless/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
}

// newLogger builds the process logger. Without --log-file it writes to
// fallback; the caller closes the returned file, if any.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out := fallback
	var closer io.Closer
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closer = f, f
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// closeQuietly closes c when it is non-nil.
func closeQuietly(c io.Closer) {
	if c != nil {
		c.Close()
	}
}
