package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-edges/internal/games/edges"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all board sizes",
	Long:  `Shows every registered board size with its game ID.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	if len(edges.Variants) == 0 {
		fmt.Println("No boards available.")
		return
	}

	fmt.Println("Available boards:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, v := range edges.Variants {
		if len(v.ID) > maxIDLen {
			maxIDLen = len(v.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-5s  %s\n", maxIDLen, "ID", "Size", "Title")
	fmt.Printf("  %-*s  %-5s  %s\n", maxIDLen, "--", "----", "-----")

	for _, v := range edges.Variants {
		size := fmt.Sprintf("%dx%d", v.Size, v.Size)
		fmt.Printf("  %-*s  %-5s  %s\n", maxIDLen, v.ID, size, v.Title)
	}

	fmt.Println()
	fmt.Println("Run 'edges play <id>' to play a board.")
}
