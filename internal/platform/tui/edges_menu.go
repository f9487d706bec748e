package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-edges/internal/config"
	"github.com/vovakirdan/tui-edges/internal/core"
	"github.com/vovakirdan/tui-edges/internal/games/edges"
)

// EdgesSelection holds the board size and difficulty picked before a run.
type EdgesSelection struct {
	GameID string
	Preset config.DifficultyPreset
}

// Rows of the setup screen.
const (
	setupRowSize = iota
	setupRowDifficulty
	setupRowStart
	setupRows
)

var setupPresets = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
	config.DifficultyFixed,
}

// EdgesSetupModel lets users choose board size and difficulty.
type EdgesSetupModel struct {
	row       int
	variant   int
	preset    int
	width     int
	height    int
	keyMapper *KeyMapper
	choosing  bool
	quitting  bool
	back      bool
}

// NewEdgesSetupModel creates the setup screen. Current preselects a
// difficulty; empty means normal.
func NewEdgesSetupModel(width, height int, current config.DifficultyPreset) EdgesSetupModel {
	m := EdgesSetupModel{
		row:       setupRowStart,
		preset:    1,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
	for i, p := range setupPresets {
		if p == current {
			m.preset = i
		}
	}
	return m
}

// Init initializes the model.
func (m EdgesSetupModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m EdgesSetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m EdgesSetupModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.row > 0 {
			m.row--
		}
	case MenuActionDown:
		if m.row < setupRows-1 {
			m.row++
		}
	case MenuActionLeft:
		m.change(-1)
	case MenuActionRight:
		m.change(1)
	case MenuActionSelect:
		m.choosing = false
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

// change cycles the value on the current row.
func (m *EdgesSetupModel) change(step int) {
	switch m.row {
	case setupRowSize:
		n := len(edges.Variants)
		m.variant = (m.variant + step + n) % n
	case setupRowDifficulty:
		n := len(setupPresets)
		m.preset = (m.preset + step + n) % n
	}
}

// View renders the setup screen.
func (m EdgesSetupModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("E D G E S", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("New run", m.width))
	b.WriteString("\n\n")

	v := edges.Variants[m.variant]
	rows := []string{
		fmt.Sprintf("Board:      < %dx%d >", v.Size, v.Size),
		fmt.Sprintf("Difficulty: < %s >", setupPresets[m.preset]),
		"Start",
	}
	for i, row := range rows {
		cursor := "  "
		if i == m.row {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+row, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Left/Right: Change  |  Enter: Start  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m EdgesSetupModel) Selected() *EdgesSelection {
	if m.choosing {
		return nil
	}
	return &EdgesSelection{
		GameID: edges.Variants[m.variant].ID,
		Preset: setupPresets[m.preset],
	}
}

// IsQuitting returns true if user wants to quit.
func (m EdgesSetupModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m EdgesSetupModel) WantsBack() bool {
	return m.back
}

// RunEdgesSetup runs the setup screen and returns the selection, or nil when
// the player backed out or quit.
func RunEdgesSetup(cfg core.RuntimeConfig) (*EdgesSelection, error) {
	model := NewEdgesSetupModel(cfg.ScreenW, cfg.ScreenH, edges.GetDifficulty())

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(EdgesSetupModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}
	return m.Selected(), nil
}
