package core

import "fmt"

// Index is an immutable (row, col) grid coordinate.
type Index struct {
	Row int
	Col int
}

// At is a convenience constructor for Index.
func At(row, col int) Index {
	return Index{Row: row, Col: col}
}

// String returns a string representation of the index.
func (i Index) String() string {
	return fmt.Sprintf("(%d,%d)", i.Row, i.Col)
}

// Step returns the index one step away in the given direction.
// The result may be out of bounds; use Grid.Neighbor for adjacency.
func (i Index) Step(d Direction) Index {
	dr, dc := d.Delta()
	return Index{Row: i.Row + dr, Col: i.Col + dc}
}

// Cell is one grid position. It owns the occupancy of its four edges and
// caches whether all of them are occupied.
type Cell struct {
	index     Index
	occupied  [NumDirections]bool
	completed bool
}

func newCell(idx Index) Cell {
	return Cell{index: idx}
}

// Index returns the cell's grid coordinate.
func (c *Cell) Index() Index {
	return c.index
}

// IsCompleted reports whether all four edges are occupied.
func (c *Cell) IsCompleted() bool {
	return c.completed
}

// IsEdgeOccupied reports whether the edge in direction d is occupied.
func (c *Cell) IsEdgeOccupied(d Direction) bool {
	if !d.Valid() {
		return false
	}
	return c.occupied[d]
}

// Occupancy returns a copy of the per-direction occupancy.
func (c *Cell) Occupancy() [NumDirections]bool {
	return c.occupied
}

// OccupiedSet returns the occupied edges as a set.
func (c *Cell) OccupiedSet() DirectionSet {
	var s DirectionSet
	for _, d := range AllDirections {
		if c.occupied[d] {
			s = s.Add(d)
		}
	}
	return s
}

// OccupiedCount returns how many edges are occupied.
func (c *Cell) OccupiedCount() int {
	return c.OccupiedSet().Len()
}

// SetEdgeOccupied marks the edge in direction d as occupied.
// Returns true only on the call that turns the cell complete; setting an
// already occupied edge never reports completion again.
func (c *Cell) SetEdgeOccupied(d Direction) bool {
	if !d.Valid() || c.occupied[d] {
		return false
	}
	c.occupied[d] = true
	wasCompleted := c.completed
	c.recompute()
	return c.completed && !wasCompleted
}

// SetEdgeFree marks the edge in direction d as free.
func (c *Cell) SetEdgeFree(d Direction) {
	if !d.Valid() {
		return
	}
	c.occupied[d] = false
	c.recompute()
}

// MarkIncomplete drops the completion flag ahead of a reset.
// The flag is re-derived on the next occupancy change.
func (c *Cell) MarkIncomplete() {
	c.completed = false
}

func (c *Cell) recompute() {
	for _, occ := range c.occupied {
		if !occ {
			c.completed = false
			return
		}
	}
	c.completed = true
}
