// Package edges wraps the edge-matching board in a playable terminal game:
// a shape tray, keyboard and mouse placement, scoring, animations and
// resumable runs.
package edges

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-edges/internal/config"
	platformcore "github.com/vovakirdan/tui-edges/internal/core"
	"github.com/vovakirdan/tui-edges/internal/games/edges/core"
	"github.com/vovakirdan/tui-edges/internal/games/edges/shapes"
	"github.com/vovakirdan/tui-edges/internal/logging"
	"github.com/vovakirdan/tui-edges/internal/registry"
)

// Package-level settings applied on the next Reset.
var (
	configPath string
	shapesPath string
	preset     config.DifficultyPreset
	logger     = logging.Discard()
	saveStore  SaveStore
)

// SetConfigPath sets a custom edges.yaml. Empty uses the search order.
func SetConfigPath(path string) {
	configPath = path
}

// SetShapesPath sets a custom shapes.yaml. Empty uses the search order.
func SetShapesPath(path string) {
	shapesPath = path
}

// SetDifficulty selects a difficulty preset. Empty keeps the config as loaded.
func SetDifficulty(p config.DifficultyPreset) {
	preset = p
}

// GetDifficulty returns the selected preset.
func GetDifficulty() config.DifficultyPreset {
	return preset
}

// SetLogger sets the logger games report to. Nil discards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = logging.Discard()
	}
	logger = l
}

// SetSaveStore enables resuming unfinished runs. Nil disables it.
func SetSaveStore(s SaveStore) {
	saveStore = s
}

// Variant describes one registered board size.
type Variant struct {
	ID     string
	Title  string
	Size   int
	Hidden bool
}

// Variants lists the registered board sizes.
var Variants = []Variant{
	{ID: "edges", Title: "Edges", Size: 3},
	{ID: "edges_4x4", Title: "Edges 4x4", Size: 4, Hidden: true},
	{ID: "edges_5x5", Title: "Edges 5x5", Size: 5, Hidden: true},
}

func init() {
	for _, v := range Variants {
		var opts []registry.Option
		if v.Hidden {
			opts = append(opts, registry.Hidden())
		}
		registry.Register(v.ID, func() registry.Game {
			return New(v)
		}, opts...)
	}
}

// held is a shape picked up with the mouse.
type held struct {
	slot  int
	entry shapes.Entry
	x, y  int // Pointer position in terminal cells
}

// Game is the edges puzzle.
type Game struct {
	variant Variant
	preset  config.DifficultyPreset
	seed    int64
	tick    uint64
	dt      float32

	cfg     config.EdgesConfig
	board   *core.Board
	catalog *shapes.Catalog
	tray    *shapes.Tray
	diff    *config.DifficultyManager
	log     *log.Logger
	fx      *effects

	screenW, screenH int
	view             view
	tooSmall         bool

	// Keyboard cursor in half-cell steps from the center of cell (0,0), so
	// it can rest on cell centers and on the boundaries between them.
	cursorX, cursorY int
	selected         int
	held             *held

	score    int
	stats    platformcore.RunStats
	gameOver bool
	paused   bool
	resumed  bool

	message      string
	messageTicks int
}

// New creates a game for a board variant.
func New(v Variant) *Game {
	return &Game{variant: v}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// SetPreset selects the difficulty of this game only, overriding
// SetDifficulty.
func (g *Game) SetPreset(p config.DifficultyPreset) {
	g.preset = p
}

// Preset returns the difficulty preset the next Reset applies.
func (g *Game) Preset() config.DifficultyPreset {
	if g.preset != "" {
		return g.preset
	}
	return preset
}

// Reset starts a new run, resuming a saved one when a save store is set.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.seed = cfg.Seed
	g.tick = 0
	g.dt = 1.0 / 60
	if cfg.TickRate > 0 {
		g.dt = 1 / float32(cfg.TickRate)
	}
	g.log = logger.With("game", g.variant.ID)

	g.loadConfig()
	g.newBoard()

	g.score = 0
	g.stats = platformcore.RunStats{}
	g.gameOver = false
	g.paused = false
	g.resumed = false
	g.held = nil
	g.selected = 0
	g.message = ""
	g.messageTicks = 0
	g.centerCursor()

	if saveStore != nil {
		if err := g.resume(); err != nil {
			g.log.Warn("discarding saved run", "err", err)
			g.clearSave()
		}
	}
	g.Resize(cfg.ScreenW, cfg.ScreenH)
	g.selected = g.firstAvailable(g.selected)
	g.checkGameOver()

	g.log.Info("run started", "size", g.variant.Size, "seed", g.seed, "resumed", g.resumed)
}

// loadConfig reads edges.yaml and shapes.yaml, falling back to the built-in
// defaults on error.
func (g *Game) loadConfig() {
	cfg, err := config.LoadEdges(configPath)
	if err != nil {
		g.log.Warn("using default config", "err", err)
		cfg = config.DefaultEdgesConfig()
	}
	if p := g.Preset(); p != "" {
		config.ApplyEdgesPreset(&cfg, p)
	}
	cfg.Board.Size = g.variant.Size
	g.cfg = cfg

	g.catalog = shapes.Default()
	if def, err := config.LoadShapes(shapesPath); err != nil {
		g.log.Warn("using default shapes", "err", err)
	} else if cat, err := shapes.FromConfig(def); err != nil {
		g.log.Warn("using default shapes", "err", err)
	} else {
		g.catalog = cat
	}

	g.diff = config.NewDifficultyManager(cfg.Difficulty)
	g.fx = newEffects(cfg.Animation)
}

func (g *Game) newBoard() {
	layout := core.Layout{CellSize: g.cfg.Board.CellSize, Spacing: g.cfg.Board.Spacing}
	b, err := core.NewBoard(g.variant.Size, layout)
	if err != nil {
		// Size comes from a registered variant.
		panic(err)
	}
	b.SetListener(newEventLogger(g.log, g.variant.ID))
	g.board = b

	g.tray = shapes.NewTray(g.catalog, g.cfg.Tray.Slots, g.seed)
	g.tray.SetWeightFunc(func(e shapes.Entry) int {
		return g.diff.ShapeWeight(e.Weight, shapes.EdgeCount(e.Shape), g.score, g.stats.Placements)
	})
}

// Resize adapts the view to a new terminal size without restarting the run.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	v, ok := computeView(w, h, g.variant.Size, g.tray.Len(), g.board.Layout())
	g.view = v
	g.tooSmall = !ok
	if g.tooSmall {
		g.held = nil
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++
	g.fx.update(g.dt)
	if g.messageTicks > 0 {
		g.messageTicks--
		if g.messageTicks == 0 {
			g.message = ""
		}
	}

	if g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused || g.gameOver {
		return platformcore.StepResult{State: g.State()}
	}

	g.handleKeys(in)
	for _, p := range in.Pointers {
		g.handlePointer(p)
	}

	return platformcore.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
		Stats:    g.stats,
	}
}

// Board exposes the board for tools and tests.
func (g *Game) Board() *core.Board {
	return g.board
}

// Tray exposes the tray for tools and tests.
func (g *Game) Tray() *shapes.Tray {
	return g.tray
}

// Selected returns the selected tray slot, or -1 when the tray is empty.
func (g *Game) Selected() int {
	return g.selected
}

// Resumed reports whether the current run was restored from a save.
func (g *Game) Resumed() bool {
	return g.resumed
}

// PlaceSlot drops the shape in a tray slot at a grid-space point. It is the
// single path every accepted placement takes.
func (g *Game) PlaceSlot(slot int, p core.Point) (core.Result, error) {
	if g.gameOver {
		return core.Result{}, fmt.Errorf("edges: game is over")
	}
	entry, ok := g.tray.Get(slot)
	if !ok {
		return core.Result{}, fmt.Errorf("edges: slot %d is empty", slot)
	}

	res, err := g.board.Drop(entry.Shape, p)
	if err != nil {
		return core.Result{}, err
	}

	refilled, err := g.tray.Use(slot)
	if err != nil {
		// Get just confirmed the slot.
		panic(err)
	}

	gained := Points(res, g.cfg.Scoring, g.variant.Size)
	g.score += gained
	g.stats.Placements++
	g.stats.CellsCompleted += len(res.Completed)
	g.stats.LinesCleared += res.LinesCleared()

	g.fx.pop(res.Completed)
	g.fx.fade(res.ClearedCells)

	g.log.Debug("placed", "shape", entry.Name, "cell", res.Target.String(), "edges", res.Edges.String(), "points", gained)
	if n := res.LinesCleared(); n > 0 {
		g.log.Info("lines cleared", "rows", res.ClearedRows, "cols", res.ClearedColumns, "score", g.score)
		g.flash(fmt.Sprintf("+%d  %d line(s)!", gained, n))
	}
	if refilled {
		g.log.Debug("tray refilled", "deal", g.tray.Deals())
	}

	g.selected = g.firstAvailable(slot)
	g.checkGameOver()
	return res, nil
}

// checkGameOver ends the run when no shape left in the tray fits anywhere.
func (g *Game) checkGameOver() {
	for _, i := range g.tray.Available() {
		e, _ := g.tray.Get(i)
		if core.CanPlaceAnywhere(g.board.Grid(), e.Shape) {
			return
		}
	}
	g.gameOver = true
	g.held = nil
	g.clearSave()
	g.log.Info("game over", "score", g.score, "placements", g.stats.Placements, "lines", g.stats.LinesCleared)
}

// firstAvailable returns slot i if it is still available, else the next one.
func (g *Game) firstAvailable(i int) int {
	if _, ok := g.tray.Get(i); ok {
		return i
	}
	return g.tray.NextAvailable(i, 1)
}

func (g *Game) flash(msg string) {
	g.message = msg
	g.messageTicks = int(1.5 / g.dt)
}

// Suspend saves the unfinished run so the next Reset resumes it.
func (g *Game) Suspend() error {
	if saveStore == nil || g.gameOver || g.board == nil {
		return nil
	}
	names, used := g.tray.Snapshot()
	data, err := encodeRun(savedRun{
		Size:           g.variant.Size,
		Cells:          exportCells(g.board.Grid()),
		Tray:           names,
		Used:           used,
		Selected:       g.selected,
		Cursor:         [2]int{g.cursorX, g.cursorY},
		Score:          g.score,
		Seed:           g.seed,
		Placements:     g.stats.Placements,
		CellsCompleted: g.stats.CellsCompleted,
		LinesCleared:   g.stats.LinesCleared,
	})
	if err != nil {
		return err
	}
	if err := saveStore.Save(g.variant.ID, data); err != nil {
		return err
	}
	g.log.Info("run saved", "score", g.score)
	return nil
}

// resume restores a saved run, if there is one.
func (g *Game) resume() error {
	data, err := saveStore.Load(g.variant.ID)
	if err != nil || len(data) == 0 {
		return err
	}
	r, err := decodeRun(data, g.variant.Size)
	if err != nil {
		return err
	}
	if err := g.board.Grid().Restore(importCells(r.Cells)); err != nil {
		return fmt.Errorf("edges: saved board: %w", err)
	}
	if err := g.tray.Restore(r.Tray, r.Used); err != nil {
		g.board.Grid().Restore(make([]core.DirectionSet, g.variant.Size*g.variant.Size)) //nolint:errcheck // An empty grid is always valid
		return fmt.Errorf("edges: saved tray: %w", err)
	}
	g.score = r.Score
	g.stats = platformcore.RunStats{
		Placements:     r.Placements,
		CellsCompleted: r.CellsCompleted,
		LinesCleared:   r.LinesCleared,
	}
	g.selected = r.Selected
	g.setCursor(r.Cursor[0], r.Cursor[1])
	g.resumed = true
	g.log.Info("run resumed", "score", g.score)
	return nil
}

func (g *Game) clearSave() {
	if saveStore == nil {
		return
	}
	if err := saveStore.Save(g.variant.ID, nil); err != nil {
		g.log.Warn("cannot clear saved run", "err", err)
	}
}
