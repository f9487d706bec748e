package core

import "fmt"

// Grid is a fixed-size square arrangement of cells.
// Cells are stored in row-major order: index = row*size + col.
// A grid is created once and never resized.
type Grid struct {
	size  int
	cells []Cell
}

// NewGrid creates a size x size grid with every edge free.
func NewGrid(size int) (*Grid, error) {
	if size < 1 {
		return nil, fmt.Errorf("core: grid size must be at least 1, got %d", size)
	}
	g := &Grid{
		size:  size,
		cells: make([]Cell, size*size),
	}
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			g.cells[r*size+c] = newCell(At(r, c))
		}
	}
	return g, nil
}

// MustGrid is NewGrid for sizes known to be valid. Panics otherwise.
func MustGrid(size int) *Grid {
	g, err := NewGrid(size)
	if err != nil {
		panic(err)
	}
	return g
}

// Size returns the grid dimension N.
func (g *Grid) Size() int {
	return g.size
}

// InBounds returns true if the index lies in [0,N)x[0,N).
func (g *Grid) InBounds(idx Index) bool {
	return idx.Row >= 0 && idx.Row < g.size && idx.Col >= 0 && idx.Col < g.size
}

// Cell returns the cell at idx, or nil if out of bounds.
func (g *Grid) Cell(idx Index) *Cell {
	if !g.InBounds(idx) {
		return nil
	}
	return &g.cells[idx.Row*g.size+idx.Col]
}

// Cells returns every cell in scan order (row by row, left to right).
func (g *Grid) Cells() []*Cell {
	out := make([]*Cell, len(g.cells))
	for i := range g.cells {
		out[i] = &g.cells[i]
	}
	return out
}

// Neighbor returns the cell one step away from idx in direction d.
// Returns false when that step leaves the grid.
// Every adjacency question in the package goes through here.
func (g *Grid) Neighbor(idx Index, d Direction) (*Cell, bool) {
	n := g.Cell(idx.Step(d))
	if n == nil {
		return nil, false
	}
	return n, true
}

// NeighborsFor returns the in-bounds neighbours of idx for the given directions.
func (g *Grid) NeighborsFor(idx Index, dirs DirectionSet) map[Direction]*Cell {
	out := make(map[Direction]*Cell, dirs.Len())
	for _, d := range dirs.Slice() {
		if n, ok := g.Neighbor(idx, d); ok {
			out[d] = n
		}
	}
	return out
}

// RowComplete reports whether every cell in row r is complete.
func (g *Grid) RowComplete(r int) bool {
	if r < 0 || r >= g.size {
		return false
	}
	for c := 0; c < g.size; c++ {
		if !g.cells[r*g.size+c].completed {
			return false
		}
	}
	return true
}

// ColumnComplete reports whether every cell in column c is complete.
func (g *Grid) ColumnComplete(c int) bool {
	if c < 0 || c >= g.size {
		return false
	}
	for r := 0; r < g.size; r++ {
		if !g.cells[r*g.size+c].completed {
			return false
		}
	}
	return true
}

// CompletedRows returns the indices of fully complete rows, ascending.
func (g *Grid) CompletedRows() []int {
	var rows []int
	for r := 0; r < g.size; r++ {
		if g.RowComplete(r) {
			rows = append(rows, r)
		}
	}
	return rows
}

// CompletedColumns returns the indices of fully complete columns, ascending.
func (g *Grid) CompletedColumns() []int {
	var cols []int
	for c := 0; c < g.size; c++ {
		if g.ColumnComplete(c) {
			cols = append(cols, c)
		}
	}
	return cols
}

// CompletedCount returns the number of complete cells.
func (g *Grid) CompletedCount() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].completed {
			n++
		}
	}
	return n
}

// OccupiedEdgeCount returns the number of occupied logical edges.
// A shared boundary counts once.
func (g *Grid) OccupiedEdgeCount() int {
	n := 0
	for i := range g.cells {
		c := &g.cells[i]
		for _, d := range AllDirections {
			if !c.occupied[d] {
				continue
			}
			// Count a shared edge from its Up/Left owner only, or from this
			// side when the other side is off the grid.
			if _, ok := g.Neighbor(c.index, d); ok && (d == Down || d == Right) {
				continue
			}
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{size: g.size, cells: cells}
}

// Equal returns true if two grids have the same size and cell states.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.size != other.size {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Restore overwrites the occupancy of every cell from a row-major list of
// occupied sets and re-derives completion. Used when loading a saved board.
// The grid is left unchanged if the data breaks an invariant.
func (g *Grid) Restore(occupied []DirectionSet) error {
	if len(occupied) != len(g.cells) {
		return fmt.Errorf("core: restore needs %d cells, got %d", len(g.cells), len(occupied))
	}
	next := g.Clone()
	for i := range next.cells {
		c := &next.cells[i]
		for _, d := range AllDirections {
			c.occupied[d] = occupied[i].Has(d)
		}
		c.recompute()
	}
	if err := CheckInvariants(next); err != nil {
		return err
	}
	copy(g.cells, next.cells)
	return nil
}

// Export returns the occupied set of every cell in scan order.
func (g *Grid) Export() []DirectionSet {
	out := make([]DirectionSet, len(g.cells))
	for i := range g.cells {
		out[i] = g.cells[i].OccupiedSet()
	}
	return out
}
