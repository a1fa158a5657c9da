package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/limitless/internal/platform/tui"
	"github.com/vovakirdan/limitless/internal/registry"
	"github.com/vovakirdan/limitless/internal/storage"
)

var (
	flagScoresLimit int
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores",
	Long: `Display the top high scores for a variant (default: limitless).

Examples:
  limitless scores
  limitless scores limitless_hard
  limitless scores --interactive
  limitless scores limitless_easy --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse every variant in a scoreboard UI")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores for the variant")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := "limitless"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'limitless list' to see available variants.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if _, err := tui.RunScoreboard(store, width, height, gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared scores for %s.\n", title)
		return
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'limitless play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-4s  %-5s  %-7s  %s\n", "Rank", "Score", "Wave", "Kills", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-4s  %-5s  %-7s  %s\n", "----", "-----", "----", "-----", "----", "----")

	for i, e := range scores {
		length := time.Duration(e.Ticks) * time.Second / time.Duration(max(flagFPS, 1))
		fmt.Printf("  %-4d  %-8d  %-4d  %-5d  %-7s  %s\n",
			i+1, e.Score, e.Wave, e.Kills, length.Round(time.Second), e.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.GameStats(gameID); err == nil {
		fmt.Printf("Best: %d  Runs: %d  Best wave: %d  Average: %.0f\n",
			stats.HighScore, stats.GamesCount, stats.BestWave, stats.AvgScore)
	}
}
