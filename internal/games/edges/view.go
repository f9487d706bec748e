package edges

import (
	"math"

	platformcore "github.com/vovakirdan/tui-edges/internal/core"
	"github.com/vovakirdan/tui-edges/internal/games/edges/core"
)

const (
	hudHeight  = 2
	slotWidth  = 9
	slotHeight = 5
	hintHeight = 1
)

// cellSizes are the character footprints tried for one board cell, largest
// first. Cells share their border lines.
var cellSizes = [][2]int{{8, 4}, {6, 3}, {4, 2}}

// view maps the board and tray onto the terminal.
type view struct {
	cellW, cellH   int
	boardX, boardY int
	size           int
	trayX, trayY   int
	slots          int
	layout         core.Layout
}

// computeView picks the largest cell footprint that fits the screen.
// ok is false when even the smallest does not.
func computeView(screenW, screenH, size, slots int, layout core.Layout) (view, bool) {
	trayW := slots*(slotWidth+1) - 1
	for _, cs := range cellSizes {
		w, h := cs[0], cs[1]
		boardW := size*w + 1
		boardH := size*h + 1
		totalH := hudHeight + boardH + 1 + slotHeight + hintHeight
		if totalH > screenH || max(boardW, trayW) > screenW {
			continue
		}
		top := (screenH - totalH) / 2
		return view{
			cellW:  w,
			cellH:  h,
			boardX: (screenW - boardW) / 2,
			boardY: top + hudHeight,
			size:   size,
			trayX:  (screenW - trayW) / 2,
			trayY:  top + hudHeight + boardH + 1,
			slots:  slots,
			layout: layout,
		}, true
	}
	return view{}, false
}

func (v view) boardW() int { return v.size*v.cellW + 1 }
func (v view) boardH() int { return v.size*v.cellH + 1 }

// boardRect covers the board including its outer border.
func (v view) boardRect() platformcore.Rect {
	return platformcore.NewRect(v.boardX, v.boardY, v.boardW(), v.boardH())
}

// toGrid converts a terminal cell to a grid-space point.
func (v view) toGrid(x, y int) core.Point {
	fx := (float64(x) - float64(v.boardX) - float64(v.cellW)/2) / float64(v.cellW)
	fy := (float64(y) - float64(v.boardY) - float64(v.cellH)/2) / float64(v.cellH)
	return v.layout.Origin.Add(fx*v.layout.Spacing, fy*v.layout.Spacing)
}

// toScreen converts a grid-space point to the nearest terminal cell.
func (v view) toScreen(p core.Point) (int, int) {
	fx := (p.X - v.layout.Origin.X) / v.layout.Spacing
	fy := (p.Y - v.layout.Origin.Y) / v.layout.Spacing
	x := float64(v.boardX) + float64(v.cellW)/2 + fx*float64(v.cellW)
	y := float64(v.boardY) + float64(v.cellH)/2 + fy*float64(v.cellH)
	return int(math.Floor(x)), int(math.Floor(y))
}

// cellOrigin is the top-left border corner of a cell.
func (v view) cellOrigin(idx core.Index) (int, int) {
	return v.boardX + idx.Col*v.cellW, v.boardY + idx.Row*v.cellH
}

// interior is the area inside a cell's borders.
func (v view) interior(idx core.Index) platformcore.Rect {
	x, y := v.cellOrigin(idx)
	return platformcore.NewRect(x+1, y+1, v.cellW-1, v.cellH-1)
}

// slotRect is the box of tray slot i.
func (v view) slotRect(i int) platformcore.Rect {
	return platformcore.NewRect(v.trayX+i*(slotWidth+1), v.trayY, slotWidth, slotHeight)
}

// slotAt returns the tray slot under (x, y), or -1.
func (v view) slotAt(x, y int) int {
	for i := 0; i < v.slots; i++ {
		if v.slotRect(i).Contains(x, y) {
			return i
		}
	}
	return -1
}
