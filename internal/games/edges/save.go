package edges

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-edges/internal/games/edges/core"
)

const (
	saveVersion = 1
	saveObject  = "runs"
)

// SaveStore persists unfinished runs between sessions, one blob per game ID.
type SaveStore interface {
	// Load returns nil data when nothing is saved under key.
	Load(key string) ([]byte, error)
	Save(key string, data []byte) error
}

// GdataStore keeps saved runs in the per-user application data directory.
type GdataStore struct {
	m *gdata.Manager
}

// OpenSaveStore opens the data directory for appName.
func OpenSaveStore(appName string) (*GdataStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("edges: open save store: %w", err)
	}
	return &GdataStore{m: m}, nil
}

// Load implements SaveStore.
func (s *GdataStore) Load(key string) ([]byte, error) {
	if !s.m.ObjectPropExists(saveObject, key) {
		return nil, nil
	}
	data, err := s.m.LoadObjectProp(saveObject, key)
	if err != nil {
		return nil, fmt.Errorf("edges: load %s: %w", key, err)
	}
	return data, nil
}

// Save implements SaveStore. Saving empty data clears the slot.
func (s *GdataStore) Save(key string, data []byte) error {
	if err := s.m.SaveObjectProp(saveObject, key, data); err != nil {
		return fmt.Errorf("edges: save %s: %w", key, err)
	}
	return nil
}

// savedRun is the resume blob.
type savedRun struct {
	Version  int      `yaml:"version"`
	Size     int      `yaml:"size"`
	Cells    []int    `yaml:"cells"` // Occupied direction bits per cell, row-major
	Tray     []string `yaml:"tray"`
	Used     []bool   `yaml:"used"`
	Selected int      `yaml:"selected"`
	Cursor   [2]int   `yaml:"cursor"`
	Score    int      `yaml:"score"`
	Seed     int64    `yaml:"seed"`

	Placements     int `yaml:"placements"`
	CellsCompleted int `yaml:"cells_completed"`
	LinesCleared   int `yaml:"lines_cleared"`
}

func encodeRun(r savedRun) ([]byte, error) {
	r.Version = saveVersion
	data, err := yaml.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("edges: encode run: %w", err)
	}
	return data, nil
}

func decodeRun(data []byte, size int) (savedRun, error) {
	var r savedRun
	if err := yaml.Unmarshal(data, &r); err != nil {
		return savedRun{}, fmt.Errorf("edges: decode run: %w", err)
	}
	if r.Version != saveVersion {
		return savedRun{}, fmt.Errorf("edges: save version %d not supported", r.Version)
	}
	if r.Size != size {
		return savedRun{}, fmt.Errorf("edges: save is for a %dx%d board", r.Size, r.Size)
	}
	return r, nil
}

func exportCells(g *core.Grid) []int {
	sets := g.Export()
	out := make([]int, len(sets))
	for i, s := range sets {
		out[i] = int(s)
	}
	return out
}

func importCells(cells []int) []core.DirectionSet {
	out := make([]core.DirectionSet, len(cells))
	for i, c := range cells {
		out[i] = core.DirectionSet(c)
	}
	return out
}
