package edges

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/tui-edges/internal/config"
	"github.com/vovakirdan/tui-edges/internal/games/edges/core"
	"github.com/vovakirdan/tui-edges/internal/games/edges/shapes"
)

type effectKind int

const (
	effectPop  effectKind = iota // Newly completed cells fill in
	effectFade                   // Cleared cells fade out
	effectSnap                   // Rejected shape slides back to its slot
)

// effect is one running tween. The board state it decorates is already final.
type effect struct {
	kind  effectKind
	tween *gween.Tween
	value float32
	cells []core.Index

	entry        shapes.Entry
	fromX, fromY int
	toX, toY     int
}

// effects owns the running tweens. With animation disabled every start call
// is a no-op.
type effects struct {
	cfg    config.EdgesAnimation
	active []*effect
}

func newEffects(cfg config.EdgesAnimation) *effects {
	return &effects{cfg: cfg}
}

func (fx *effects) start(e *effect, seconds float64) {
	if !fx.cfg.Enabled || seconds <= 0 {
		return
	}
	e.value, _ = e.tween.Update(0)
	fx.active = append(fx.active, e)
}

func (fx *effects) pop(cells []core.Index) {
	if len(cells) == 0 {
		return
	}
	d := fx.cfg.PopSeconds
	fx.start(&effect{
		kind:  effectPop,
		tween: gween.New(0, 1, float32(d), ease.OutBack),
		cells: cells,
	}, d)
}

func (fx *effects) fade(cells []core.Index) {
	if len(cells) == 0 {
		return
	}
	d := fx.cfg.FadeSeconds
	fx.start(&effect{
		kind:  effectFade,
		tween: gween.New(1, 0, float32(d), ease.Linear),
		cells: cells,
	}, d)
}

func (fx *effects) snap(entry shapes.Entry, fromX, fromY, toX, toY int) {
	d := fx.cfg.SnapSeconds
	fx.start(&effect{
		kind:  effectSnap,
		tween: gween.New(0, 1, float32(d), ease.OutQuad),
		entry: entry,
		fromX: fromX,
		fromY: fromY,
		toX:   toX,
		toY:   toY,
	}, d)
}

// update advances every tween by dt seconds and drops the finished ones.
func (fx *effects) update(dt float32) {
	kept := fx.active[:0]
	for _, e := range fx.active {
		v, done := e.tween.Update(dt)
		e.value = v
		if !done {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(fx.active); i++ {
		fx.active[i] = nil
	}
	fx.active = kept
}

// level returns the progress of the newest effect of kind k covering idx.
func (fx *effects) level(k effectKind, idx core.Index) (float32, bool) {
	for i := len(fx.active) - 1; i >= 0; i-- {
		e := fx.active[i]
		if e.kind != k {
			continue
		}
		for _, c := range e.cells {
			if c == idx {
				return e.value, true
			}
		}
	}
	return 0, false
}

// snaps returns the running snap-back effects.
func (fx *effects) snaps() []*effect {
	var out []*effect
	for _, e := range fx.active {
		if e.kind == effectSnap {
			out = append(out, e)
		}
	}
	return out
}

func (fx *effects) clear() {
	fx.active = nil
}

// position interpolates a snap effect's screen position.
func (e *effect) position() (int, int) {
	t := float64(e.value)
	x := float64(e.fromX) + (float64(e.toX)-float64(e.fromX))*t
	y := float64(e.fromY) + (float64(e.toY)-float64(e.fromY))*t
	return int(x + 0.5), int(y + 0.5)
}
