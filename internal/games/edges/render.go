package edges

import (
	"fmt"
	"strconv"

	platformcore "github.com/vovakirdan/tui-edges/internal/core"
	"github.com/vovakirdan/tui-edges/internal/games/edges/core"
)

const (
	colorEdge     = platformcore.ColorBrightCyan
	colorFree     = platformcore.ColorGray
	colorComplete = platformcore.ColorGreen
	colorPop      = platformcore.ColorBrightGreen
	colorFade     = platformcore.ColorYellow
	colorPreview  = platformcore.ColorBrightYellow
	colorCursor   = platformcore.ColorBrightMagenta
	colorSelected = platformcore.ColorBrightYellow
	colorHeld     = platformcore.ColorBrightWhite
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if dst.Width() != g.screenW || dst.Height() != g.screenH {
		g.Resize(dst.Width(), dst.Height())
	}

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)
	g.renderPreview(dst)
	g.renderTray(dst)
	g.renderHint(dst)
	g.renderOverlays(dst)
}

func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

func (g *Game) renderHUD(dst *platformcore.Screen) {
	v := g.view
	left := min(v.boardX, v.trayX)
	right := max(v.boardX+v.boardW(), v.trayX+v.slots*(slotWidth+1)-1)

	dst.DrawTextCentered(v.boardY-2, g.variant.Title)

	dst.DrawText(left, v.boardY-1, fmt.Sprintf("Score: %d", g.score))
	info := fmt.Sprintf("Lines: %d  Deal: %d", g.stats.LinesCleared, g.tray.Deals())
	dst.DrawText(max(left, right-len(info)), v.boardY-1, info)
}

func (g *Game) renderBoard(dst *platformcore.Screen) {
	v := g.view
	grid := g.board.Grid()
	n := grid.Size()

	for r := 0; r <= n; r++ {
		for c := 0; c <= n; c++ {
			dst.SetWithColor(v.boardX+c*v.cellW, v.boardY+r*v.cellH, '+', colorFree)
		}
	}

	for _, cell := range grid.Cells() {
		idx := cell.Index()
		g.renderCellFill(dst, cell)

		// Each boundary is drawn once: from its upper or left cell, plus the
		// outer bottom and right borders.
		dirs := []core.Direction{core.Up, core.Left}
		if idx.Row == n-1 {
			dirs = append(dirs, core.Down)
		}
		if idx.Col == n-1 {
			dirs = append(dirs, core.Right)
		}
		for _, d := range dirs {
			if cell.IsEdgeOccupied(d) {
				g.drawEdge(dst, idx, d, edgeRune(d, true), colorEdge)
			} else {
				g.drawEdge(dst, idx, d, edgeRune(d, false), colorFree)
			}
		}
	}
}

// renderCellFill shades complete cells, and cells that are popping in or
// fading out.
func (g *Game) renderCellFill(dst *platformcore.Screen, cell *core.Cell) {
	idx := cell.Index()
	area := g.view.interior(idx)

	if v, ok := g.fx.level(effectFade, idx); ok {
		dst.DrawRectWithColor(area, shade(v), colorFade)
		return
	}
	if !cell.IsCompleted() {
		return
	}
	if v, ok := g.fx.level(effectPop, idx); ok {
		dst.DrawRectWithColor(area, shade(v), colorPop)
		return
	}
	dst.DrawRectWithColor(area, '▒', colorComplete)
}

// shade maps tween progress to a block density.
func shade(v float32) rune {
	switch {
	case v < 0.34:
		return '░'
	case v < 0.67:
		return '▒'
	default:
		return '▓'
	}
}

func edgeRune(d core.Direction, occupied bool) rune {
	horizontal := d == core.Up || d == core.Down
	switch {
	case horizontal && occupied:
		return '━'
	case horizontal:
		return '┄'
	case occupied:
		return '┃'
	default:
		return '┆'
	}
}

func (g *Game) drawEdge(dst *platformcore.Screen, idx core.Index, d core.Direction, r rune, c platformcore.Color) {
	v := g.view
	x, y := v.cellOrigin(idx)
	switch d {
	case core.Up:
		dst.DrawHLine(x+1, y, v.cellW-1, r, c)
	case core.Down:
		dst.DrawHLine(x+1, y+v.cellH, v.cellW-1, r, c)
	case core.Left:
		dst.DrawVLine(x, y+1, v.cellH-1, r, c)
	case core.Right:
		dst.DrawVLine(x+v.cellW, y+1, v.cellH-1, r, c)
	}
}

// renderPreview highlights where the held or selected shape would land and
// marks the keyboard cursor.
func (g *Game) renderPreview(dst *platformcore.Screen) {
	if g.gameOver {
		return
	}

	slot := g.selected
	if g.held != nil {
		slot = g.held.slot
	}
	if entry, ok := g.tray.Get(slot); ok {
		if idx, edges, err := g.board.Preview(entry.Shape, g.HeldPoint()); err == nil {
			for _, d := range edges.Slice() {
				r := '═'
				if d == core.Left || d == core.Right {
					r = '║'
				}
				g.drawEdge(dst, idx, d, r, colorPreview)
			}
		}
	}

	if g.held == nil {
		x, y := g.view.toScreen(g.CursorPoint())
		dst.SetWithColor(x, y, '◆', colorCursor)
	}
}

func (g *Game) renderTray(dst *platformcore.Screen) {
	for i, slot := range g.tray.Slots() {
		r := g.view.slotRect(i)
		boxColor := colorFree
		if i == g.selected && !slot.Used {
			boxColor = colorSelected
		}
		dst.DrawBoxWithColor(r, boxColor)
		dst.DrawTextWithColor(r.X+1, r.Bottom()-1, strconv.Itoa(i+1), boxColor)

		if slot.Used || (g.held != nil && g.held.slot == i) {
			continue
		}
		cx, cy := r.Center()
		drawGlyph(dst, cx, cy, slot.Entry.Shape, colorEdge)
	}

	for _, e := range g.fx.snaps() {
		x, y := e.position()
		drawGlyph(dst, x, y, e.entry.Shape, colorFree)
	}
	if g.held != nil {
		drawGlyph(dst, g.held.x, g.held.y, g.held.entry.Shape, colorHeld)
	}
}

// drawGlyph draws a 5x3 picture of a shape centered at (cx, cy).
func drawGlyph(dst *platformcore.Screen, cx, cy int, s core.Shape, c platformcore.Color) {
	switch s.Kind {
	case core.AutoHorizontal:
		dst.DrawHLine(cx-1, cy-1, 3, '┄', c)
		dst.DrawHLine(cx-1, cy+1, 3, '┄', c)
		dst.SetWithColor(cx, cy, '↕', c)
		return
	case core.AutoVertical:
		dst.SetWithColor(cx-2, cy, '┆', c)
		dst.SetWithColor(cx+2, cy, '┆', c)
		dst.SetWithColor(cx, cy, '↔', c)
		return
	}

	if s.Edges.Has(core.Up) {
		dst.DrawHLine(cx-1, cy-1, 3, '━', c)
	}
	if s.Edges.Has(core.Down) {
		dst.DrawHLine(cx-1, cy+1, 3, '━', c)
	}
	if s.Edges.Has(core.Left) {
		dst.SetWithColor(cx-2, cy, '┃', c)
	}
	if s.Edges.Has(core.Right) {
		dst.SetWithColor(cx+2, cy, '┃', c)
	}
}

func (g *Game) renderHint(dst *platformcore.Screen) {
	y := g.view.trayY + slotHeight
	if g.message != "" {
		dst.DrawTextCenteredWithColor(y, g.message, colorSelected)
		return
	}
	dst.DrawTextCenteredWithColor(y, g.Controls(), colorFree)
}

func (g *Game) renderOverlays(dst *platformcore.Screen) {
	r := g.view.boardRect()
	cx, cy := r.Center()

	if g.paused {
		drawOverlay(dst, cx, cy, "PAUSED", "Press P to resume")
		return
	}
	if g.gameOver {
		drawOverlay(dst, cx, cy,
			"NO MOVES LEFT",
			fmt.Sprintf("Score: %d", g.score),
			fmt.Sprintf("Lines: %d", g.stats.LinesCleared),
			"Press R to restart")
	}
}

// drawOverlay draws a centered text box over whatever is below it.
func drawOverlay(dst *platformcore.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}

	box := platformcore.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(centerX-len([]rune(line))/2, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows: Move | Tab: Shape | Enter: Place | Mouse: Drag | P: Pause"
}
