package core_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-edges/internal/games/edges/core"
)

// restore builds a grid where every listed cell has all four edges occupied,
// together with the matching side of each neighbour, then frees the given
// boundaries on both sides.
func restore(t *testing.T, g *core.Grid, complete []core.Index, free map[core.Index]core.DirectionSet) {
	t.Helper()
	n := g.Size()
	sets := make([]core.DirectionSet, n*n)
	at := func(idx core.Index) *core.DirectionSet { return &sets[idx.Row*n+idx.Col] }

	for _, idx := range complete {
		for _, d := range core.AllDirections {
			*at(idx) = at(idx).Add(d)
			if nb := idx.Step(d); g.InBounds(nb) {
				*at(nb) = at(nb).Add(d.Opposite())
			}
		}
	}
	for idx, dirs := range free {
		for _, d := range dirs.Slice() {
			*at(idx) = at(idx).Remove(d)
			if nb := idx.Step(d); g.InBounds(nb) {
				*at(nb) = at(nb).Remove(d.Opposite())
			}
		}
	}

	if err := g.Restore(sets); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
}

func TestNewGrid(t *testing.T) {
	g, err := core.NewGrid(3)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	if g.Size() != 3 {
		t.Errorf("expected size 3, got %d", g.Size())
	}

	cells := g.Cells()
	if len(cells) != 9 {
		t.Fatalf("expected 9 cells, got %d", len(cells))
	}
	for i, c := range cells {
		want := core.At(i/3, i%3)
		if c.Index() != want {
			t.Errorf("cell %d has index %s, want %s", i, c.Index(), want)
		}
		if c.IsCompleted() || c.OccupiedCount() != 0 {
			t.Errorf("cell %s should start empty", c.Index())
		}
	}

	if _, err := core.NewGrid(0); err == nil {
		t.Error("NewGrid(0) should fail")
	}
}

func TestGridNeighbor(t *testing.T) {
	g := core.MustGrid(3)

	testCases := []struct {
		idx  core.Index
		d    core.Direction
		want core.Index
		ok   bool
	}{
		{core.At(1, 1), core.Up, core.At(0, 1), true},
		{core.At(1, 1), core.Down, core.At(2, 1), true},
		{core.At(1, 1), core.Left, core.At(1, 0), true},
		{core.At(1, 1), core.Right, core.At(1, 2), true},
		{core.At(0, 0), core.Up, core.Index{}, false},
		{core.At(0, 0), core.Left, core.Index{}, false},
		{core.At(2, 2), core.Down, core.Index{}, false},
		{core.At(2, 2), core.Right, core.Index{}, false},
	}

	for _, tc := range testCases {
		n, ok := g.Neighbor(tc.idx, tc.d)
		if ok != tc.ok {
			t.Errorf("Neighbor(%s, %s) ok = %v, want %v", tc.idx, tc.d, ok, tc.ok)
			continue
		}
		if ok && n.Index() != tc.want {
			t.Errorf("Neighbor(%s, %s) = %s, want %s", tc.idx, tc.d, n.Index(), tc.want)
		}
	}

	ns := g.NeighborsFor(core.At(0, 0), core.FullSet)
	if len(ns) != 2 {
		t.Errorf("corner should have 2 neighbours, got %d", len(ns))
	}
}

func TestCellCompletion(t *testing.T) {
	g := core.MustGrid(1)
	c := g.Cell(core.At(0, 0))

	for i, d := range core.AllDirections {
		became := c.SetEdgeOccupied(d)
		last := i == len(core.AllDirections)-1
		if became != last {
			t.Errorf("SetEdgeOccupied(%s) reported completion %v", d, became)
		}
	}
	if !c.IsCompleted() {
		t.Fatal("cell with four occupied edges should be complete")
	}
	if c.SetEdgeOccupied(core.Up) {
		t.Error("re-occupying an edge must not report completion again")
	}

	c.SetEdgeFree(core.Left)
	if c.IsCompleted() {
		t.Error("freeing an edge should make the cell incomplete")
	}
	if err := core.CheckInvariants(g); err != nil {
		t.Errorf("invariants: %v", err)
	}
}

func TestGridCompletedLines(t *testing.T) {
	g := core.MustGrid(3)
	restore(t, g, []core.Index{core.At(0, 0), core.At(0, 1), core.At(0, 2), core.At(1, 2), core.At(2, 2)}, nil)

	rows := g.CompletedRows()
	if len(rows) != 1 || rows[0] != 0 {
		t.Errorf("CompletedRows() = %v, want [0]", rows)
	}
	cols := g.CompletedColumns()
	if len(cols) != 1 || cols[0] != 2 {
		t.Errorf("CompletedColumns() = %v, want [2]", cols)
	}
	if g.CompletedCount() != 5 {
		t.Errorf("CompletedCount() = %d, want 5", g.CompletedCount())
	}
}

func TestGridOccupiedEdgeCount(t *testing.T) {
	g := core.MustGrid(2)
	restore(t, g, []core.Index{core.At(0, 0)}, nil)

	// Four edges of one corner cell, two of them shared.
	if got := g.OccupiedEdgeCount(); got != 4 {
		t.Errorf("OccupiedEdgeCount() = %d, want 4", got)
	}
}

func TestGridCloneEqual(t *testing.T) {
	g := core.MustGrid(3)
	restore(t, g, []core.Index{core.At(1, 1)}, nil)

	c := g.Clone()
	if !g.Equal(c) {
		t.Fatal("clone should equal original")
	}
	c.Cell(core.At(0, 0)).SetEdgeOccupied(core.Up)
	if g.Equal(c) {
		t.Error("mutating the clone should not affect the original")
	}
	if g.Cell(core.At(0, 0)).IsEdgeOccupied(core.Up) {
		t.Error("original cell changed through clone")
	}
}

func TestGridRestoreRejectsAsymmetry(t *testing.T) {
	g := core.MustGrid(2)
	sets := make([]core.DirectionSet, 4)
	sets[0] = core.NewDirectionSet(core.Right)

	err := g.Restore(sets)
	if err == nil {
		t.Fatal("expected an invariant error")
	}
	var ie *core.InvariantError
	if !errors.As(err, &ie) || ie.Code != core.CodeAsymmetricEdge {
		t.Errorf("expected %s, got %v", core.CodeAsymmetricEdge, err)
	}
}

func TestGridExportRoundTrip(t *testing.T) {
	g := core.MustGrid(3)
	restore(t, g, []core.Index{core.At(0, 0), core.At(2, 1)}, nil)

	other := core.MustGrid(3)
	if err := other.Restore(g.Export()); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	if !g.Equal(other) {
		t.Error("restored grid differs from exported one")
	}
}
