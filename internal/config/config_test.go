package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-edges/internal/config"
)

// isolate points HOME and the working directory at empty temp dirs so only
// the embedded defaults are visible.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	chdir(t, t.TempDir())
	return home
}

func TestLoadEdgesEmbeddedDefault(t *testing.T) {
	isolate(t)

	cfg, err := config.LoadEdges("")
	if err != nil {
		t.Fatalf("LoadEdges failed: %v", err)
	}
	def := config.DefaultEdgesConfig()
	if cfg.Board != def.Board {
		t.Errorf("board = %+v, want %+v", cfg.Board, def.Board)
	}
	if cfg.Tray.Slots != 5 {
		t.Errorf("tray slots = %d, want 5", cfg.Tray.Slots)
	}
	if cfg.Scoring != def.Scoring {
		t.Errorf("scoring = %+v, want %+v", cfg.Scoring, def.Scoring)
	}
}

func TestLoadEdgesPartialCustomFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("board:\n  size: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.LoadEdges(path)
	if err != nil {
		t.Fatalf("LoadEdges failed: %v", err)
	}
	if cfg.Board.Size != 5 {
		t.Errorf("size = %d, want 5", cfg.Board.Size)
	}
	if cfg.Board.Spacing != 600 || cfg.Tray.Slots != 5 {
		t.Errorf("unset fields should keep their defaults: %+v", cfg)
	}
}

func TestLoadEdgesUserDirectory(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".edges", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "edges.yaml"), []byte("tray:\n  slots: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.LoadEdges("")
	if err != nil {
		t.Fatalf("LoadEdges failed: %v", err)
	}
	if cfg.Tray.Slots != 2 {
		t.Errorf("slots = %d, want 2 from the user config", cfg.Tray.Slots)
	}
}

func TestLoadEdgesErrors(t *testing.T) {
	isolate(t)

	if _, err := config.LoadEdges(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("board:\n  size: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := config.LoadEdges(path); err == nil {
		t.Error("size 0 should fail validation")
	}
}

func TestLoadShapesEmbeddedDefault(t *testing.T) {
	isolate(t)

	cat, err := config.LoadShapes("")
	if err != nil {
		t.Fatalf("LoadShapes failed: %v", err)
	}
	want := config.DefaultShapeCatalog()
	if len(cat.Shapes) != len(want.Shapes) {
		t.Fatalf("got %d shapes, want %d", len(cat.Shapes), len(want.Shapes))
	}
	for i := range want.Shapes {
		if cat.Shapes[i].Name != want.Shapes[i].Name || cat.Shapes[i].Kind != want.Shapes[i].Kind {
			t.Errorf("shape %d = %+v, want %+v", i, cat.Shapes[i], want.Shapes[i])
		}
	}
}

func TestLoadShapesCustomReplacesList(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "shapes.yaml")
	data := "shapes:\n  - name: only\n    kind: fixed\n    edges: [up]\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cat, err := config.LoadShapes(path)
	if err != nil {
		t.Fatalf("LoadShapes failed: %v", err)
	}
	if len(cat.Shapes) != 1 || cat.Shapes[0].Name != "only" {
		t.Errorf("custom catalog should replace the default list, got %+v", cat.Shapes)
	}
}

func TestApplyEdgesPreset(t *testing.T) {
	testCases := []struct {
		preset  config.DifficultyPreset
		slots   int
		enabled bool
		level   float64
	}{
		{config.DifficultyEasy, 5, true, 0.0},
		{config.DifficultyNormal, 5, true, 0.3},
		{config.DifficultyHard, 3, true, 0.7},
		{config.DifficultyFixed, 5, false, 0.0},
	}

	for _, tc := range testCases {
		cfg := config.DefaultEdgesConfig()
		config.ApplyEdgesPreset(&cfg, tc.preset)
		if cfg.Tray.Slots != tc.slots {
			t.Errorf("%s: slots = %d, want %d", tc.preset, cfg.Tray.Slots, tc.slots)
		}
		if cfg.Difficulty.Enabled != tc.enabled {
			t.Errorf("%s: enabled = %v, want %v", tc.preset, cfg.Difficulty.Enabled, tc.enabled)
		}
		if cfg.Difficulty.InitialLevel != tc.level {
			t.Errorf("%s: initial level = %v, want %v", tc.preset, cfg.Difficulty.InitialLevel, tc.level)
		}
	}
}

func TestDifficultyShapeWeight(t *testing.T) {
	cfg := config.DefaultEdgesConfig().Difficulty
	dm := config.NewDifficultyManager(cfg)

	if got := dm.ShapeWeight(2, 3, 0, 0); got != 2 {
		t.Errorf("at level 0 weight should be unchanged, got %d", got)
	}
	if got := dm.Level(cfg.Progression.MaxAt, 0); got != 1.0 {
		t.Fatalf("level at max_at = %v, want 1", got)
	}
	if got := dm.ShapeWeight(2, 4, cfg.Progression.MaxAt, 0); got != 4 {
		t.Errorf("complex shape at max difficulty = %d, want 4", got)
	}
	if got := dm.ShapeWeight(3, 1, cfg.Progression.MaxAt, 0); got != 2 {
		t.Errorf("single edge at max difficulty = %d, want 2", got)
	}
	if got := dm.ShapeWeight(0, 2, 0, 0); got != 1 {
		t.Errorf("zero base weight should count as 1, got %d", got)
	}

	dm.SetEnabled(false)
	if got := dm.Level(cfg.Progression.MaxAt, 0); got != cfg.InitialLevel {
		t.Errorf("disabled progression should stay at the initial level, got %v", got)
	}
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}
