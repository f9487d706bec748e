package config

import "math"

// DifficultyManager calculates dynamic game parameters based on progress.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score or
// the number of placements made.
func (d *DifficultyManager) Level(score int, placements int) float64 {
	if !d.cfg.Enabled || d.cfg.Progression.Type == "none" {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "placements":
		progress = float64(placements) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// ShapeWeight scales a catalog weight by difficulty. Shapes with three or
// more edges gain weight, single edges lose it. The result is at least 1.
func (d *DifficultyManager) ShapeWeight(base, edges, score, placements int) int {
	if base <= 0 {
		base = 1
	}
	level := d.Level(score, placements)
	w := float64(base)
	switch {
	case edges >= 3:
		w *= 1.0 + level*d.cfg.Scaling.ComplexWeight
	case edges == 1:
		w *= 1.0 - level*clampF(d.cfg.Scaling.SimpleWeight, 0.0, 1.0)
	}
	return max(1, int(math.Round(w)))
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
