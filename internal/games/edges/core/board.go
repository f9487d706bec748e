package core

import "fmt"

// Listener receives notifications raised while a placement resolves.
// Notifications are informational; the board never waits for a response.
type Listener interface {
	CellCompleted(idx Index)
	RowCleared(row int)
	ColumnCleared(col int)
}

// ListenerFuncs adapts plain functions to Listener. Nil fields are skipped.
type ListenerFuncs struct {
	OnCellCompleted func(idx Index)
	OnRowCleared    func(row int)
	OnColumnCleared func(col int)
}

func (f ListenerFuncs) CellCompleted(idx Index) {
	if f.OnCellCompleted != nil {
		f.OnCellCompleted(idx)
	}
}

func (f ListenerFuncs) RowCleared(row int) {
	if f.OnRowCleared != nil {
		f.OnRowCleared(row)
	}
}

func (f ListenerFuncs) ColumnCleared(col int) {
	if f.OnColumnCleared != nil {
		f.OnColumnCleared(col)
	}
}

// Result describes everything one accepted placement changed.
type Result struct {
	Target         Index
	Edges          DirectionSet
	EdgesPlaced    int     // Logical edges newly occupied, shared edges counted once
	Completed      []Index // Cells that became complete, in scan order
	ClearedRows    []int
	ClearedColumns []int
	ClearedCells   []Index // Union of cleared rows and columns, each cell once
}

// LinesCleared returns the number of rows plus columns cleared.
func (r Result) LinesCleared() int {
	return len(r.ClearedRows) + len(r.ClearedColumns)
}

// Board owns a grid and its layout and is the handle every placement goes
// through. It is not safe for concurrent use; one placement resolves fully
// before the next is accepted.
type Board struct {
	grid     *Grid
	layout   Layout
	listener Listener
	strict   bool
}

// NewBoard creates a board with a fresh size x size grid.
func NewBoard(size int, layout Layout) (*Board, error) {
	g, err := NewGrid(size)
	if err != nil {
		return nil, err
	}
	return &Board{grid: g, layout: layout}, nil
}

// Grid returns the underlying grid.
func (b *Board) Grid() *Grid {
	return b.grid
}

// Layout returns the board layout.
func (b *Board) Layout() Layout {
	return b.layout
}

// SetListener installs the notification target. Nil disables notifications.
func (b *Board) SetListener(l Listener) {
	b.listener = l
}

// SetStrict enables invariant checks after every mutation. A violation
// panics. Meant for tests and debug builds.
func (b *Board) SetStrict(strict bool) {
	b.strict = strict
}

// FindNearestCell returns the cell closest to p.
func (b *Board) FindNearestCell(p Point) (*Cell, bool) {
	return FindNearestCell(b.grid, b.layout, p)
}

// FindValidTargetCell returns the cell a drop at p would land on.
func (b *Board) FindValidTargetCell(p Point, edges DirectionSet) (*Cell, error) {
	return FindValidTargetCell(b.grid, b.layout, p, edges)
}

// NeighborsOf returns the in-bounds neighbours of idx for the given directions.
func (b *Board) NeighborsOf(idx Index, dirs DirectionSet) map[Direction]*Cell {
	return b.grid.NeighborsFor(idx, dirs)
}

// ResolveEdges returns the edges a shape claims when held at p.
func (b *Board) ResolveEdges(s Shape, p Point) DirectionSet {
	return ResolveEdges(b.grid, b.layout, s, p)
}

// Preview returns the target and edges a drop at p would use without
// changing anything.
func (b *Board) Preview(s Shape, p Point) (Index, DirectionSet, error) {
	edges := b.ResolveEdges(s, p)
	c, err := b.FindValidTargetCell(p, edges)
	if err != nil {
		return Index{}, edges, err
	}
	return c.Index(), edges, nil
}

// Drop resolves the shape's edges at p, finds the target and applies the
// placement. On error nothing is modified.
func (b *Board) Drop(s Shape, p Point) (Result, error) {
	idx, edges, err := b.Preview(s, p)
	if err != nil {
		return Result{}, err
	}
	return b.ApplyPlacement(idx, edges)
}

// ApplyPlacement occupies the given edges of the cell at idx and of the
// neighbours across them, then resolves completion and clearing.
// Either every requested edge is free and all of them are applied, or a
// *PlacementError is returned and the grid is untouched.
func (b *Board) ApplyPlacement(idx Index, edges DirectionSet) (Result, error) {
	target := b.grid.Cell(idx)
	if target == nil {
		return Result{}, rejectf(CodeOutOfBounds, "cell %s is outside the %dx%d grid", idx, b.grid.size, b.grid.size)
	}
	if edges.IsEmpty() {
		return Result{}, rejectf(CodeEmptyShape, "shape claims no edges")
	}
	if err := checkEdgesFree(target, edges); err != nil {
		return Result{}, err
	}

	res := Result{Target: idx, Edges: edges}
	completed := make(map[Index]bool)

	// Edges first, on both sides of each boundary.
	for _, d := range edges.Slice() {
		if target.SetEdgeOccupied(d) {
			completed[target.Index()] = true
		}
		if n, ok := b.grid.Neighbor(idx, d); ok {
			if n.SetEdgeOccupied(d.Opposite()) {
				completed[n.Index()] = true
			}
		}
		res.EdgesPlaced++
	}
	b.check()

	// Completion, reported in scan order.
	for _, c := range b.grid.Cells() {
		if completed[c.Index()] {
			res.Completed = append(res.Completed, c.Index())
		}
	}
	for _, ci := range res.Completed {
		b.notifyCompleted(ci)
	}

	// Rows, then columns, both read from the same post-placement snapshot.
	res.ClearedRows = b.grid.CompletedRows()
	res.ClearedColumns = b.grid.CompletedColumns()
	if res.LinesCleared() == 0 {
		return res, nil
	}

	res.ClearedCells = b.clearLines(res.ClearedRows, res.ClearedColumns)
	b.check()

	for _, r := range res.ClearedRows {
		b.notifyRow(r)
	}
	for _, c := range res.ClearedColumns {
		b.notifyColumn(c)
	}
	return res, nil
}

// clearLines resets every cell in the given rows and columns exactly once.
func (b *Board) clearLines(rows, cols []int) []Index {
	n := b.grid.size
	selected := make(map[Index]bool)
	var order []Index
	add := func(idx Index) {
		if !selected[idx] {
			selected[idx] = true
			order = append(order, idx)
		}
	}
	for _, r := range rows {
		for c := 0; c < n; c++ {
			add(At(r, c))
		}
	}
	for _, c := range cols {
		for r := 0; r < n; r++ {
			add(At(r, c))
		}
	}

	for _, idx := range order {
		b.resetCell(idx, selected)
	}
	return order
}

// resetCell frees the edges of a cleared cell. A boundary shared with a
// complete neighbour that is not itself being cleared stays occupied on both
// sides, so that neighbour keeps its completed state.
func (b *Board) resetCell(idx Index, clearing map[Index]bool) {
	c := b.grid.Cell(idx)
	c.MarkIncomplete()
	for _, d := range AllDirections {
		n, ok := b.grid.Neighbor(idx, d)
		if !ok {
			c.SetEdgeFree(d)
			continue
		}
		if n.IsCompleted() && !clearing[n.Index()] {
			continue
		}
		c.SetEdgeFree(d)
		n.SetEdgeFree(d.Opposite())
	}
}

func (b *Board) notifyCompleted(idx Index) {
	if b.listener != nil {
		b.listener.CellCompleted(idx)
	}
}

func (b *Board) notifyRow(r int) {
	if b.listener != nil {
		b.listener.RowCleared(r)
	}
}

func (b *Board) notifyColumn(c int) {
	if b.listener != nil {
		b.listener.ColumnCleared(c)
	}
}

func (b *Board) check() {
	if b.strict {
		mustHold(b.grid)
	}
}

// Clone returns an independent copy of the board without its listener.
func (b *Board) Clone() *Board {
	return &Board{grid: b.grid.Clone(), layout: b.layout, strict: b.strict}
}

// String returns a short summary for logs.
func (b *Board) String() string {
	return fmt.Sprintf("board %dx%d complete=%d edges=%d",
		b.grid.size, b.grid.size, b.grid.CompletedCount(), b.grid.OccupiedEdgeCount())
}
