package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-edges/internal/platform/tui"
	"github.com/vovakirdan/tui-edges/internal/registry"
	"github.com/vovakirdan/tui-edges/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [id]",
	Short: "Play a board",
	Long: `Start playing the given board size (default: edges, the 3x3 board).

An unfinished run is saved when you quit and resumed next time, unless
--no-resume is given.

Controls:
  Arrows/WASD/HJKL  - Move the cursor (cells and the edges between them)
  Tab/Shift+Tab     - Select a tray shape
  Enter/Space       - Place the selected shape at the cursor
  Mouse             - Drag a shape from the tray onto the board
  X                 - Cancel a drag
  P                 - Pause
  R                 - Restart (after game over)
  B/Esc             - Back (when paused or after game over)
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Mostly simple shapes, slowly gets harder
  normal - Starts at 30% difficulty
  hard   - Starts at 70% difficulty
  fixed  - No progression, stays at config's initial level

Examples:
  edges play
  edges play edges_5x5 --difficulty hard
  edges play --config ./my-edges.yaml --shapes ./my-shapes.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "edges"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintln(os.Stderr, "Run 'edges list' to see available boards.")
		fail("unknown board %q", gameID)
	}

	enableResume()

	game, err := registry.Create(gameID)
	if err != nil {
		fail("creating game: %v", err)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "err", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	_, runErr := tui.Run(game, store, runtimeConfig(), tui.WithLogger(logger))

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}
