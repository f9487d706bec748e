package edges

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-edges/internal/games/edges/core"
)

// newEventLogger forwards board notifications to l at debug level.
func newEventLogger(l *log.Logger, gameID string) core.Listener {
	return core.ListenerFuncs{
		OnCellCompleted: func(idx core.Index) {
			l.Debug("cell completed", "game", gameID, "cell", idx.String())
		},
		OnRowCleared: func(row int) {
			l.Debug("row cleared", "game", gameID, "row", row)
		},
		OnColumnCleared: func(col int) {
			l.Debug("column cleared", "game", gameID, "col", col)
		},
	}
}
