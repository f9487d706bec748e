package config

import (
	_ "embed"
)

//go:embed defaults/edges.yaml
var defaultEdgesYAML []byte

//go:embed defaults/shapes.yaml
var defaultShapesYAML []byte

// DefaultEdgesConfig returns the default Edges configuration.
func DefaultEdgesConfig() EdgesConfig {
	return EdgesConfig{
		Board: EdgesBoard{
			Size:     3,
			CellSize: 750,
			Spacing:  600,
		},
		Tray: EdgesTray{
			Slots: 5,
		},
		Scoring: EdgesScoring{
			PerEdge:    1,
			PerCell:    10,
			PerLine:    10,
			ComboBonus: 25,
		},
		Animation: EdgesAnimation{
			Enabled:     true,
			PopSeconds:  0.25,
			FadeSeconds: 0.4,
			SnapSeconds: 0.15,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				ComplexWeight: 1.0,
				SimpleWeight:  0.5,
			},
		},
	}
}

// DefaultShapeCatalog returns the built-in shape set: single edges, corners,
// parallel pairs, U shapes, the full square and the two auto-oriented lines.
func DefaultShapeCatalog() ShapeCatalog {
	return ShapeCatalog{Shapes: []ShapeDef{
		{Name: "line-h", Kind: "horizontal", Weight: 3},
		{Name: "line-v", Kind: "vertical", Weight: 3},
		{Name: "corner-ul", Kind: "fixed", Edges: []string{"up", "left"}, Weight: 2},
		{Name: "corner-ur", Kind: "fixed", Edges: []string{"up", "right"}, Weight: 2},
		{Name: "corner-dl", Kind: "fixed", Edges: []string{"down", "left"}, Weight: 2},
		{Name: "corner-dr", Kind: "fixed", Edges: []string{"down", "right"}, Weight: 2},
		{Name: "pair-h", Kind: "fixed", Edges: []string{"up", "down"}, Weight: 1},
		{Name: "pair-v", Kind: "fixed", Edges: []string{"left", "right"}, Weight: 1},
		{Name: "cup-up", Kind: "fixed", Edges: []string{"down", "left", "right"}, Weight: 1},
		{Name: "cup-down", Kind: "fixed", Edges: []string{"up", "left", "right"}, Weight: 1},
		{Name: "cup-left", Kind: "fixed", Edges: []string{"up", "down", "right"}, Weight: 1},
		{Name: "cup-right", Kind: "fixed", Edges: []string{"up", "down", "left"}, Weight: 1},
		{Name: "square", Kind: "fixed", Edges: []string{"up", "down", "left", "right"}, Weight: 1},
	}}
}

// GetDefaultYAML returns the embedded default YAML for a config name.
func GetDefaultYAML(name string) []byte {
	switch name {
	case "edges":
		return defaultEdgesYAML
	case "shapes":
		return defaultShapesYAML
	default:
		return nil
	}
}
