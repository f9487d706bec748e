package core

import "math"

// FindNearestCell returns the cell whose center is closest to p.
// Cells are scanned row by row; on equal distance the first one wins.
func FindNearestCell(g *Grid, l Layout, p Point) (*Cell, bool) {
	var nearest *Cell
	best := math.Inf(1)
	for _, c := range g.Cells() {
		d := p.Dist(l.Center(c.Index()))
		if d < best {
			best = d
			nearest = c
		}
	}
	return nearest, nearest != nil
}

// FindValidTargetCell returns the cell a drop at p would land on, or a
// *PlacementError explaining why there is none. A cell is only valid when p
// lies within half a footprint of its center and every requested edge is free.
func FindValidTargetCell(g *Grid, l Layout, p Point, edges DirectionSet) (*Cell, error) {
	if edges.IsEmpty() {
		return nil, rejectf(CodeEmptyShape, "shape claims no edges")
	}
	nearest, ok := FindNearestCell(g, l, p)
	if !ok {
		return nil, rejectf(CodeNoCell, "grid has no cells")
	}
	if dist := p.Dist(l.Center(nearest.Index())); dist > l.HalfSize() {
		return nil, rejectf(CodeOutsideFootprint,
			"drop is %.1f from cell %s, more than %.1f", dist, nearest.Index(), l.HalfSize())
	}
	if err := checkEdgesFree(nearest, edges); err != nil {
		return nil, err
	}
	return nearest, nil
}

func checkEdgesFree(c *Cell, edges DirectionSet) error {
	for _, d := range edges.Slice() {
		if c.IsEdgeOccupied(d) {
			return rejectf(CodeEdgeOccupied, "cell %s already has %s occupied", c.Index(), d)
		}
	}
	return nil
}

// CanPlace reports whether the shape fits on the cell at idx in at least one
// of its orientations.
func CanPlace(g *Grid, idx Index, s Shape) bool {
	c := g.Cell(idx)
	if c == nil {
		return false
	}
	for _, edges := range s.Candidates() {
		if !edges.IsEmpty() && checkEdgesFree(c, edges) == nil {
			return true
		}
	}
	return false
}

// CanPlaceAnywhere reports whether the shape fits on any cell.
func CanPlaceAnywhere(g *Grid, s Shape) bool {
	for _, c := range g.Cells() {
		if CanPlace(g, c.Index(), s) {
			return true
		}
	}
	return false
}
