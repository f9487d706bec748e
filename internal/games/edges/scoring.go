package edges

import (
	"github.com/vovakirdan/tui-edges/internal/config"
	"github.com/vovakirdan/tui-edges/internal/games/edges/core"
)

// Points returns the score a placement earns on a board of the given size.
// Line points scale with the board size; every line past the first in the
// same drop adds the combo bonus.
func Points(res core.Result, s config.EdgesScoring, size int) int {
	pts := res.EdgesPlaced*s.PerEdge + len(res.Completed)*s.PerCell
	lines := res.LinesCleared()
	pts += lines * s.PerLine * size
	if lines > 1 {
		pts += (lines - 1) * s.ComboBonus
	}
	return pts
}
