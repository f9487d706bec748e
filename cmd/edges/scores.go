package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-edges/internal/registry"
	"github.com/vovakirdan/tui-edges/internal/storage"
)

var (
	flagClear bool
	flagLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [id]",
	Short: "Show best runs for a board",
	Long: `Display the best runs for the given board size (default: edges).

Examples:
  edges scores
  edges scores edges_5x5 --limit 20
  edges scores edges_4x4 --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores and runs for the board")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := "edges"
	if len(args) > 0 {
		gameID = args[0]
	}

	info, ok := registry.Info(gameID)
	if !ok {
		fail("unknown board %q", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			fail("clearing scores: %v", err)
		}
		logger.Info("scores cleared", "game", gameID)
		fmt.Printf("Cleared all scores for %s.\n", info.Title)
		return
	}

	runs, err := store.TopRuns(gameID, flagLimit)
	if err != nil {
		fail("retrieving runs: %v", err)
	}

	fmt.Printf("Best Runs - %s\n", info.Title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'edges play %s' to set the first score!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-7s  %s\n", "Rank", "Score", "Lines", "Cells", "Drops", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-7s  %s\n", "----", "-----", "-----", "-----", "-----", "----")

	for i, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-6d  %-6d  %-7d  %s\n",
			i+1, r.Score, r.LinesCleared, r.CellsCompleted, r.Placements, dateStr)
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Best: %d  Avg: %.0f  Lines: %d  Best lines: %d\n",
			stats.GamesCount, stats.HighScore, stats.AvgScore, stats.TotalLines, stats.BestLines)
	}
}
