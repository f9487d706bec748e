// edges is a terminal edge-matching puzzle: drop line, corner and cup shapes
// onto the edges of a square grid, complete cells and clear full rows and
// columns.
//
// Usage:
//
//	edges list              - List board sizes
//	edges play [id]         - Play a board size directly
//	edges menu              - Start menu to pick a board interactively
//	edges serve             - Start SSH server for remote play
//	edges scores [id]       - Show best runs for a board size
//	edges dump              - Print a board after scripted drops
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.edges/scores.db)
//	--log-file <path>     - Write logs to a file, "-" for stderr
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-edges/internal/config"
	"github.com/vovakirdan/tui-edges/internal/core"
	"github.com/vovakirdan/tui-edges/internal/games/edges"
	"github.com/vovakirdan/tui-edges/internal/logging"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagLogFile    string
	flagLogLevel   string
	flagConfig     string
	flagShapes     string
	flagDifficulty string
	flagNoResume   bool
)

var (
	logger    = logging.Discard()
	logCloser io.Closer
)

func main() {
	err := rootCmd.Execute()
	if logCloser != nil {
		logCloser.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "edges",
	Short: "Edges - an edge-matching puzzle in your terminal",
	Long: `Edges is a terminal puzzle played on a square grid.

Drag shapes from the tray (or move the cursor and press Enter) to claim
cell edges. A cell with all four edges claimed is complete; a full row or
column of complete cells is cleared for bonus points.

Available commands:
  list     - Show all board sizes
  play     - Play a board size directly
  menu     - Interactive menu with board and difficulty setup
  serve    - Start SSH server for remote play
  scores   - View best runs
  dump     - Print a board after scripted drops

Examples:
  edges menu
  edges play edges_4x4 --difficulty hard
  edges serve --ssh :2222
  edges dump --size 3 --drop square@0,0 --drop line-h@1,0.5`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.edges/scores.db", "Path to scores database")
	pf.StringVar(&flagLogFile, "log-file", "", `Log file path, "-" for stderr (default: no logging)`)
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagConfig, "config", "", "Path to custom edges.yaml")
	pf.StringVar(&flagShapes, "shapes", "", "Path to custom shapes.yaml")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.BoolVar(&flagNoResume, "no-resume", false, "Start fresh instead of resuming an unfinished run")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(dumpCmd)
}

// setup applies the global flags before any command runs.
func setup(_ *cobra.Command, _ []string) error {
	l, closer, err := logging.Open(logging.Options{
		Level:  flagLogLevel,
		File:   flagLogFile,
		Prefix: "edges",
	})
	if err != nil {
		return err
	}
	logger, logCloser = l, closer

	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	if flagDifficulty != "" {
		p, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		edges.SetDifficulty(p)
	}

	edges.SetLogger(logger)
	edges.SetConfigPath(flagConfig)
	edges.SetShapesPath(flagShapes)
	return nil
}

// enableResume lets local play continue an unfinished run. The SSH server
// never calls it since its sessions would share one save slot.
func enableResume() {
	if flagNoResume {
		return
	}
	store, err := edges.OpenSaveStore("tui-edges")
	if err != nil {
		logger.Warn("resume disabled", "err", err)
		return
	}
	edges.SetSaveStore(store)
}

// runtimeConfig builds the game config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// fail reports err and exits.
func fail(format string, args ...any) {
	logger.Error(fmt.Sprintf(format, args...))
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	if logCloser != nil {
		logCloser.Close()
	}
	os.Exit(1)
}
