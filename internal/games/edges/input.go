package edges

import (
	platformcore "github.com/vovakirdan/tui-edges/internal/core"
	"github.com/vovakirdan/tui-edges/internal/games/edges/core"
)

// handleKeys processes keyboard actions: arrows move the cursor, Tab cycles
// the tray, Enter drops the selected shape at the cursor and X cancels a
// mouse drag.
func (g *Game) handleKeys(in platformcore.InputFrame) {
	switch {
	case in.Has(platformcore.ActionUp):
		g.setCursor(g.cursorX, g.cursorY-1)
	case in.Has(platformcore.ActionDown):
		g.setCursor(g.cursorX, g.cursorY+1)
	case in.Has(platformcore.ActionLeft):
		g.setCursor(g.cursorX-1, g.cursorY)
	case in.Has(platformcore.ActionRight):
		g.setCursor(g.cursorX+1, g.cursorY)
	}

	if g.held != nil {
		if in.Has(platformcore.ActionCancel) {
			g.snapBack(g.held.slot, g.held.x, g.held.y)
			g.held = nil
		}
		return
	}

	if in.Has(platformcore.ActionNext) {
		g.cycle(1)
	}
	if in.Has(platformcore.ActionPrev) {
		g.cycle(-1)
	}
	if in.Has(platformcore.ActionConfirm) && g.selected >= 0 {
		slot := g.selected
		if _, err := g.PlaceSlot(slot, g.CursorPoint()); err != nil {
			x, y := g.view.toScreen(g.CursorPoint())
			g.reject(slot, x, y, err)
		}
	}
}

// handlePointer processes one mouse event. Pressing on a tray slot picks the
// shape up, dragging moves it and releasing drops it.
func (g *Game) handlePointer(p platformcore.Pointer) {
	switch p.Kind {
	case platformcore.PointerPress:
		if g.held != nil {
			return
		}
		slot := g.view.slotAt(p.X, p.Y)
		if slot < 0 {
			return
		}
		entry, ok := g.tray.Get(slot)
		if !ok {
			return
		}
		g.selected = slot
		g.held = &held{slot: slot, entry: entry, x: p.X, y: p.Y}

	case platformcore.PointerDrag:
		if g.held != nil {
			g.held.x, g.held.y = p.X, p.Y
		}

	case platformcore.PointerRelease:
		if g.held == nil {
			return
		}
		h := g.held
		g.held = nil
		h.x, h.y = p.X, p.Y
		// Letting go over the tray puts the shape back.
		if g.view.slotAt(p.X, p.Y) >= 0 {
			return
		}
		point := g.view.toGrid(p.X, p.Y)
		res, err := g.PlaceSlot(h.slot, point)
		if err != nil {
			g.reject(h.slot, p.X, p.Y, err)
			return
		}
		g.moveCursorTo(res.Target)
	}
}

// HeldPoint returns the grid-space point the current preview is taken at:
// the dragged shape's position, or the keyboard cursor.
func (g *Game) HeldPoint() core.Point {
	if g.held != nil {
		return g.view.toGrid(g.held.x, g.held.y)
	}
	return g.CursorPoint()
}

// CursorPoint is the keyboard cursor in grid space.
func (g *Game) CursorPoint() core.Point {
	l := g.board.Layout()
	half := l.Spacing / 2
	return l.Origin.Add(float64(g.cursorX)*half, float64(g.cursorY)*half)
}

// setCursor moves the cursor, keeping it on the board or its outer border.
func (g *Game) setCursor(x, y int) {
	hi := 2*(g.variant.Size-1) + 1
	g.cursorX = platformcore.Clamp(x, -1, hi)
	g.cursorY = platformcore.Clamp(y, -1, hi)
}

func (g *Game) centerCursor() {
	mid := g.variant.Size / 2
	g.setCursor(2*mid, 2*mid)
}

func (g *Game) moveCursorTo(idx core.Index) {
	g.setCursor(2*idx.Col, 2*idx.Row)
}

// cycle selects the next available tray slot in the given direction.
func (g *Game) cycle(step int) {
	if next := g.tray.NextAvailable(g.selected, step); next >= 0 {
		g.selected = next
	}
}

// reject reports a refused drop and slides the shape back to its slot.
func (g *Game) reject(slot, x, y int, err error) {
	g.snapBack(slot, x, y)
	g.flash(rejectionText(err))
	g.log.Debug("drop rejected", "slot", slot, "err", err)
}

func (g *Game) snapBack(slot, x, y int) {
	entry, ok := g.tray.Get(slot)
	if !ok {
		return
	}
	tx, ty := g.view.slotRect(slot).Center()
	g.fx.snap(entry, x, y, tx, ty)
}

func rejectionText(err error) string {
	switch core.RejectionCode(err) {
	case core.CodeNoCell, core.CodeOutsideFootprint:
		return "Drop shapes onto a cell"
	case core.CodeEdgeOccupied:
		return "That edge is already taken"
	case core.CodeEmptyShape:
		return "Nothing to place"
	default:
		return "Cannot place there"
	}
}
