package core

import "math"

// Point is a position in grid space.
type Point struct {
	X float64
	Y float64
}

// Pt is a convenience constructor for Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Dist returns the Euclidean distance to another point.
func (p Point) Dist(o Point) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

// Add returns p offset by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Layout places cell footprints in grid space. X grows to the right, Y grows
// downward. Cell centers are Spacing apart; each footprint is CellSize wide,
// so when Spacing < CellSize neighbouring footprints overlap on the shared edge.
type Layout struct {
	CellSize float64
	Spacing  float64
	Origin   Point // Center of cell (0,0)
}

// DefaultLayout uses 750 wide footprints whose centers sit 600 apart, so
// neighbouring footprints overlap on the shared edge.
func DefaultLayout() Layout {
	return Layout{CellSize: 750, Spacing: 600}
}

// UnitLayout returns a layout where footprints tile exactly.
func UnitLayout(cellSize float64) Layout {
	return Layout{CellSize: cellSize, Spacing: cellSize}
}

// Center returns the center of the cell at idx.
func (l Layout) Center(idx Index) Point {
	return Point{
		X: l.Origin.X + float64(idx.Col)*l.Spacing,
		Y: l.Origin.Y + float64(idx.Row)*l.Spacing,
	}
}

// HalfSize is the containment radius of a footprint.
func (l Layout) HalfSize() float64 {
	return l.CellSize / 2
}

// EdgeAnchor returns the midpoint of the edge in direction d. Two cells that
// share a boundary report the same anchor for it.
func (l Layout) EdgeAnchor(idx Index, d Direction) Point {
	c := l.Center(idx)
	dr, dc := d.Delta()
	half := l.Spacing / 2
	return c.Add(float64(dc)*half, float64(dr)*half)
}

// Bounds returns the top-left and bottom-right corners of an n x n board's
// footprints.
func (l Layout) Bounds(n int) (min, max Point) {
	half := l.HalfSize()
	last := l.Center(At(n-1, n-1))
	return l.Origin.Add(-half, -half), last.Add(half, half)
}
