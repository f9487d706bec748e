// Package config provides YAML-based game configuration loading and
// difficulty management for the Edges puzzle.
package config

// EdgesConfig contains all configuration for the Edges puzzle.
type EdgesConfig struct {
	Board      EdgesBoard       `yaml:"board"`
	Tray       EdgesTray        `yaml:"tray"`
	Scoring    EdgesScoring     `yaml:"scoring"`
	Animation  EdgesAnimation   `yaml:"animation"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// EdgesBoard defines the grid and its geometry in grid space.
type EdgesBoard struct {
	Size     int     `yaml:"size"`      // Cells per side
	CellSize float64 `yaml:"cell_size"` // Footprint width of one cell
	Spacing  float64 `yaml:"spacing"`   // Distance between neighbouring cell centers
}

// EdgesTray defines the shape tray.
type EdgesTray struct {
	Slots int `yaml:"slots"`
}

// EdgesScoring defines the points awarded per placement.
type EdgesScoring struct {
	PerEdge    int `yaml:"per_edge"`
	PerCell    int `yaml:"per_cell"`
	PerLine    int `yaml:"per_line"`    // Multiplied by the grid size
	ComboBonus int `yaml:"combo_bonus"` // Per extra line cleared by the same drop
}

// EdgesAnimation defines presentation timings, in seconds.
type EdgesAnimation struct {
	Enabled     bool    `yaml:"enabled"`
	PopSeconds  float64 `yaml:"pop_seconds"`
	FadeSeconds float64 `yaml:"fade_seconds"`
	SnapSeconds float64 `yaml:"snap_seconds"`
}

// ShapeCatalog is the list of shapes the tray draws from.
type ShapeCatalog struct {
	Shapes []ShapeDef `yaml:"shapes"`
}

// ShapeDef describes one catalog entry.
type ShapeDef struct {
	Name   string   `yaml:"name"`
	Kind   string   `yaml:"kind"`   // "fixed", "horizontal" or "vertical"
	Edges  []string `yaml:"edges"`  // Fixed shapes only
	Weight int      `yaml:"weight"` // Relative spawn weight, 0 means 1
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "placements", or "none"
	MaxAt int    `yaml:"max_at"` // Score/placements at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	ComplexWeight float64 `yaml:"complex_weight"` // Extra weight for 3+ edge shapes at max difficulty
	SimpleWeight  float64 `yaml:"simple_weight"`  // Weight lost by 1 edge shapes at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset returns the preset with the given name.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
