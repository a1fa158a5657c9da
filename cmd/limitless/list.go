package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/limitless/internal/games/limitless"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the difficulty variants",
	Long:  `Shows every registered variant. Each keeps its own leaderboard.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	fmt.Println("Available variants:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, v := range limitless.Variants {
		maxIDLen = max(maxIDLen, len(v.ID))
	}

	fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, "ID", "Preset", "Title")
	fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, "--", "------", "-----")

	for _, v := range limitless.Variants {
		fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, v.ID, v.Preset, v.Title)
	}

	fmt.Println()
	fmt.Println("Run 'limitless play <id>' to play a variant.")
}
