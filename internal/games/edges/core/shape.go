package core

import (
	"fmt"
	"strings"
)

// Kind says how a shape decides which edges it claims.
type Kind uint8

const (
	// Fixed shapes claim an explicit edge set.
	Fixed Kind = iota
	// AutoHorizontal line shapes claim Up or Down, whichever is nearer.
	AutoHorizontal
	// AutoVertical line shapes claim Left or Right, whichever is nearer.
	AutoVertical
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	switch k {
	case Fixed:
		return "fixed"
	case AutoHorizontal:
		return "horizontal"
	case AutoVertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// ParseKind parses a kind name as used in shape catalogs.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fixed", "normal":
		return Fixed, true
	case "horizontal", "auto_horizontal", "hline":
		return AutoHorizontal, true
	case "vertical", "auto_vertical", "vline":
		return AutoVertical, true
	default:
		return 0, false
	}
}

// Shape is the input model for one draggable piece.
type Shape struct {
	Kind  Kind
	Edges DirectionSet // Used by Fixed shapes only
}

// FixedShape returns a shape claiming exactly the given edges.
func FixedShape(dirs ...Direction) Shape {
	return Shape{Kind: Fixed, Edges: NewDirectionSet(dirs...)}
}

// HorizontalLine returns an auto-oriented Up/Down line shape.
func HorizontalLine() Shape {
	return Shape{Kind: AutoHorizontal}
}

// VerticalLine returns an auto-oriented Left/Right line shape.
func VerticalLine() Shape {
	return Shape{Kind: AutoVertical}
}

// Validate checks that a fixed shape claims at least one edge.
func (s Shape) Validate() error {
	switch s.Kind {
	case Fixed:
		if s.Edges.IsEmpty() {
			return fmt.Errorf("core: fixed shape has no edges")
		}
	case AutoHorizontal, AutoVertical:
	default:
		return fmt.Errorf("core: unknown shape kind %d", s.Kind)
	}
	return nil
}

// Candidates returns every edge set the shape could resolve to.
func (s Shape) Candidates() []DirectionSet {
	switch s.Kind {
	case AutoHorizontal:
		return []DirectionSet{NewDirectionSet(Up), NewDirectionSet(Down)}
	case AutoVertical:
		return []DirectionSet{NewDirectionSet(Right), NewDirectionSet(Left)}
	default:
		return []DirectionSet{s.Edges}
	}
}

// String returns e.g. "fixed{Up,Left}" or "horizontal".
func (s Shape) String() string {
	if s.Kind == Fixed {
		return s.Kind.String() + s.Edges.String()
	}
	return s.Kind.String()
}

// ResolveEdges returns the edge set a shape claims when held at p.
// Auto-oriented shapes look at the nearest cell and pick the candidate whose
// edge anchor is closer to p; the first candidate wins a tie. Returns an
// empty set for auto shapes when the grid has no cells.
func ResolveEdges(g *Grid, l Layout, s Shape, p Point) DirectionSet {
	if s.Kind == Fixed {
		return s.Edges
	}
	nearest, ok := FindNearestCell(g, l, p)
	if !ok {
		return 0
	}
	best := DirectionSet(0)
	bestDist := 0.0
	for _, cand := range s.Candidates() {
		d := cand.Slice()[0]
		dist := p.Dist(l.EdgeAnchor(nearest.Index(), d))
		if best.IsEmpty() || dist < bestDist {
			best = cand
			bestDist = dist
		}
	}
	return best
}
