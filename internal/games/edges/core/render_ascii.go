package core

import (
	"fmt"
	"strings"
)

// ASCII glyphs used by RenderASCII.
const (
	asciiCorner   = "+"
	asciiHEdgeOn  = "==="
	asciiHEdgeOff = "..."
	asciiVEdgeOn  = "|"
	asciiVEdgeOff = ":"
	asciiDone     = " # "
	asciiOpen     = "   "
)

// RenderASCII returns a plain-text picture of the grid for debugging and the
// dump command. Occupied edges are drawn as "===" and "|", free ones as "..."
// and ":". Completed cells are marked with '#'.
// A shared edge is drawn once, from the cell above or to the left of it.
func RenderASCII(g *Grid) string {
	var sb strings.Builder
	n := g.Size()

	fmt.Fprintf(&sb, "Grid %dx%d | complete: %d | edges: %d\n",
		n, n, g.CompletedCount(), g.OccupiedEdgeCount())

	// Column headers
	sb.WriteString("   ")
	for c := 0; c < n; c++ {
		fmt.Fprintf(&sb, "  %d ", c%10)
	}
	sb.WriteString("\n")

	for r := 0; r < n; r++ {
		sb.WriteString("   ")
		writeHorizontal(&sb, g, r, Up)

		fmt.Fprintf(&sb, "%2d ", r%100)
		for c := 0; c < n; c++ {
			cell := g.Cell(At(r, c))
			sb.WriteString(vGlyph(cell.IsEdgeOccupied(Left)))
			if cell.IsCompleted() {
				sb.WriteString(asciiDone)
			} else {
				sb.WriteString(asciiOpen)
			}
		}
		sb.WriteString(vGlyph(g.Cell(At(r, n-1)).IsEdgeOccupied(Right)))
		sb.WriteString("\n")
	}
	sb.WriteString("   ")
	writeHorizontal(&sb, g, n-1, Down)

	return sb.String()
}

func writeHorizontal(sb *strings.Builder, g *Grid, row int, d Direction) {
	for c := 0; c < g.Size(); c++ {
		sb.WriteString(asciiCorner)
		if g.Cell(At(row, c)).IsEdgeOccupied(d) {
			sb.WriteString(asciiHEdgeOn)
		} else {
			sb.WriteString(asciiHEdgeOff)
		}
	}
	sb.WriteString(asciiCorner)
	sb.WriteString("\n")
}

func vGlyph(on bool) string {
	if on {
		return asciiVEdgeOn
	}
	return asciiVEdgeOff
}
