package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadEdges loads Edges configuration.
// Search order: customPath -> ~/.edges/configs/edges.yaml -> ./configs/edges.yaml -> embedded default
func LoadEdges(customPath string) (EdgesConfig, error) {
	cfg, err := loadYAML(customPath, "edges.yaml", defaultEdgesYAML, DefaultEdgesConfig)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid edges config: %w", err)
	}
	return cfg, nil
}

// LoadShapes loads the shape catalog.
// Search order: customPath -> ~/.edges/configs/shapes.yaml -> ./configs/shapes.yaml -> embedded default
func LoadShapes(customPath string) (ShapeCatalog, error) {
	cat, err := loadYAML(customPath, "shapes.yaml", defaultShapesYAML, DefaultShapeCatalog)
	if err != nil {
		return cat, err
	}
	if len(cat.Shapes) == 0 {
		return cat, fmt.Errorf("shape catalog is empty")
	}
	return cat, nil
}

// loadYAML walks the search order for one config file. Each file is decoded
// over the hard-coded defaults, so a partial file only overrides what it sets.
// A broken user or local file is skipped; a broken custom path is an error.
func loadYAML[T any](customPath, filename string, embedded []byte, fallback func() T) (T, error) {
	// Try custom path first
	if customPath != "" {
		cfg := fallback()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(filename), filepath.Join("configs", filename)} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			cfg := fallback()
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg := fallback()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return fallback(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".edges", "configs", filename)
}

// Validate checks the values the game cannot run without.
func (c EdgesConfig) Validate() error {
	if c.Board.Size < 1 {
		return fmt.Errorf("board.size must be at least 1, got %d", c.Board.Size)
	}
	if c.Board.CellSize <= 0 || c.Board.Spacing <= 0 {
		return fmt.Errorf("board.cell_size and board.spacing must be positive")
	}
	if c.Tray.Slots < 1 {
		return fmt.Errorf("tray.slots must be at least 1, got %d", c.Tray.Slots)
	}
	return nil
}

// ApplyEdgesPreset modifies the config based on a difficulty preset.
func ApplyEdgesPreset(cfg *EdgesConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Tray.Slots = 5
		cfg.Scoring.ComboBonus = 15
	case DifficultyHard:
		cfg.Tray.Slots = 3
		cfg.Scoring.ComboBonus = 40
	}
}
