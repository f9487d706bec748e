package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-edges/internal/games/edges"
	"github.com/vovakirdan/tui-edges/internal/platform/tui"
	"github.com/vovakirdan/tui-edges/internal/registry"
	"github.com/vovakirdan/tui-edges/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the menu",
	Long: `Start in interactive menu mode.

Pick a board size and difficulty, play, and return to the menu when the
run ends. Tab opens the scoreboard.

Controls:
  Up/Down/j/k     - Navigate
  Left/Right/h/l  - Change board size or difficulty
  Enter/Space     - Select
  Tab             - Scores
  Q               - Quit

Examples:
  edges menu
  edges menu --fps 30
  edges menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	enableResume()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "err", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	cfg := runtimeConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		if menuResult.GameID == "" {
			break
		}

		selection, setupErr := tui.RunEdgesSetup(cfg)
		if setupErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", setupErr)
			continue
		}
		// User pressed back or quit
		if selection == nil {
			continue
		}
		edges.SetDifficulty(selection.Preset)

		game, err := registry.Create(selection.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Update seed for each game
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		logger.Info("game selected", "game", selection.GameID, "difficulty", selection.Preset)
		backToMenu, runErr := tui.Run(game, store, cfg, tui.WithLogger(logger))
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		}
		if !backToMenu {
			break
		}
	}

	// Cleanup
	if store != nil {
		store.Close()
	}
}
