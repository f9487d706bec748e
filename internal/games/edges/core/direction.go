// Package core provides the occupancy state machine for the Edges puzzle.
// This package is UI-agnostic and deterministic: it knows nothing about
// terminals, mice or timing, only about cells, their four edges and the
// rows and columns they form.
package core

import "strings"

// Direction is one of the four cardinal boundaries of a cell.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// NumDirections is the number of edges every cell owns.
const NumDirections = 4

// AllDirections lists the directions in their canonical order.
var AllDirections = [NumDirections]Direction{Up, Down, Left, Right}

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// Opposite returns the direction on the other side of a shared edge.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

// Delta returns the (row, col) offset of the neighbour in this direction.
// Up decreases the row, Left decreases the column.
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	default:
		return 0, 0
	}
}

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	return d < NumDirections
}

// ParseDirection parses a direction name (case-insensitive).
// Single letters u/d/l/r are accepted as shorthands.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return Up, true
	case "down", "d":
		return Down, true
	case "left", "l":
		return Left, true
	case "right", "r":
		return Right, true
	default:
		return 0, false
	}
}

// DirectionSet is a set of directions stored as a 4-bit mask.
// A set can never hold the same direction twice.
type DirectionSet uint8

// NewDirectionSet builds a set from the given directions. Invalid directions
// are ignored.
func NewDirectionSet(dirs ...Direction) DirectionSet {
	var s DirectionSet
	for _, d := range dirs {
		s = s.Add(d)
	}
	return s
}

// FullSet contains all four directions.
const FullSet DirectionSet = 1<<NumDirections - 1

// Add returns the set with d included.
func (s DirectionSet) Add(d Direction) DirectionSet {
	if !d.Valid() {
		return s
	}
	return s | 1<<d
}

// Remove returns the set with d excluded.
func (s DirectionSet) Remove(d Direction) DirectionSet {
	if !d.Valid() {
		return s
	}
	return s &^ (1 << d)
}

// Has reports whether d is in the set.
func (s DirectionSet) Has(d Direction) bool {
	return d.Valid() && s&(1<<d) != 0
}

// Len returns the number of directions in the set.
func (s DirectionSet) Len() int {
	n := 0
	for _, d := range AllDirections {
		if s.Has(d) {
			n++
		}
	}
	return n
}

// IsEmpty reports whether the set holds no direction.
func (s DirectionSet) IsEmpty() bool {
	return s&FullSet == 0
}

// Slice returns the directions in canonical order.
func (s DirectionSet) Slice() []Direction {
	dirs := make([]Direction, 0, NumDirections)
	for _, d := range AllDirections {
		if s.Has(d) {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// String returns e.g. "{Up,Left}".
func (s DirectionSet) String() string {
	names := make([]string, 0, NumDirections)
	for _, d := range s.Slice() {
		names = append(names, d.String())
	}
	return "{" + strings.Join(names, ",") + "}"
}
