package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-edges/internal/core"
	"github.com/vovakirdan/tui-edges/internal/logging"
	"github.com/vovakirdan/tui-edges/internal/registry"
	"github.com/vovakirdan/tui-edges/internal/storage"
)

// Model is the Bubble Tea model that runs one game: it feeds key and mouse
// input to the game on every tick, renders it and records finished runs.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	palette    Palette
	log        *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	keyMapper  *KeyMapper
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the run has been saved for the current game over
}

// ModelOption customizes a Model.
type ModelOption func(*Model)

// WithPalette renders with p instead of the default palette.
func WithPalette(p Palette) ModelOption {
	return func(m *Model) {
		m.palette = p
	}
}

// WithLogger reports run results to l.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		m.log = l
	}
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		palette:    defaultPalette,
		log:        logging.Discard(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if p, ok := m.keyMapper.MapMouse(msg); ok {
			m.inputFrame.AddPointer(p)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.suspend()
		m.quitting = true
		return m, tea.Quit
	}

	// B or Esc leaves when the game is over or paused
	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.suspend()
		m.backToMenu = true
		return m, nil
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
		return m, nil
	}
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		// Reset seed for new game
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveRun()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveRun records the finished run. Best-effort: the game continues
// regardless.
func (m Model) saveRun() {
	st := m.gameState
	m.log.Info("run finished", "game", m.game.ID(), "score", st.Score, "lines", st.Stats.LinesCleared)
	if m.store == nil || st.Score == 0 {
		return
	}
	_, err := m.store.SaveRun(storage.RunRecord{
		GameID:         m.game.ID(),
		Score:          st.Score,
		Placements:     st.Stats.Placements,
		CellsCompleted: st.Stats.CellsCompleted,
		LinesCleared:   st.Stats.LinesCleared,
	})
	if err != nil {
		m.log.Warn("cannot save run", "game", m.game.ID(), "err", err)
	}
}

// suspend lets the game save an unfinished run.
func (m Model) suspend() {
	s, ok := m.game.(registry.Suspender)
	if !ok || m.gameState.GameOver {
		return
	}
	if err := s.Suspend(); err != nil {
		m.log.Warn("cannot save unfinished run", "game", m.game.ID(), "err", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".edges", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.palette.Render(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game. It returns when
// the player quits or goes back to the menu; backToMenu reports which.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) (backToMenu bool, err error) {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		backToMenuQuitter{model},
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if q, ok := final.(backToMenuQuitter); ok {
		return q.BackToMenu(), nil
	}
	return false, nil
}

// backToMenuQuitter ends a standalone program when the player asks for the
// menu. Inside an SSH session the session model handles that instead.
type backToMenuQuitter struct {
	Model
}

func (q backToMenuQuitter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := q.Model.Update(msg)
	if m, ok := next.(Model); ok {
		q.Model = m
	}
	if q.BackToMenu() {
		return q, tea.Quit
	}
	return q, cmd
}
