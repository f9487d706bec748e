package core_test

import (
	"testing"

	"github.com/vovakirdan/tui-edges/internal/games/edges/core"
)

func TestFindNearestCell(t *testing.T) {
	g := core.MustGrid(3)
	l := core.DefaultLayout()

	testCases := []struct {
		name string
		p    core.Point
		want core.Index
	}{
		{"center of (1,2)", l.Center(core.At(1, 2)), core.At(1, 2)},
		{"slightly off (2,0)", l.Center(core.At(2, 0)).Add(40, -90), core.At(2, 0)},
		{"far outside", core.Pt(-5000, 9000), core.At(2, 0)},
		{"tie goes to first in scan order", core.Pt(300, 0), core.At(0, 0)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, ok := core.FindNearestCell(g, l, tc.p)
			if !ok {
				t.Fatal("expected a cell")
			}
			if c.Index() != tc.want {
				t.Errorf("got %s, want %s", c.Index(), tc.want)
			}
		})
	}
}

func TestFindValidTargetCell(t *testing.T) {
	l := core.DefaultLayout()
	up := core.NewDirectionSet(core.Up)

	t.Run("inside footprint", func(t *testing.T) {
		g := core.MustGrid(3)
		c, err := core.FindValidTargetCell(g, l, l.Center(core.At(1, 1)).Add(50, 50), up)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Index() != core.At(1, 1) {
			t.Errorf("got %s, want (1,1)", c.Index())
		}
	})

	t.Run("on the footprint boundary", func(t *testing.T) {
		g := core.MustGrid(3)
		if _, err := core.FindValidTargetCell(g, l, core.Pt(-l.HalfSize(), 0), up); err != nil {
			t.Errorf("point exactly half a footprint away should be accepted: %v", err)
		}
	})

	t.Run("outside footprint", func(t *testing.T) {
		g := core.MustGrid(3)
		_, err := core.FindValidTargetCell(g, l, core.Pt(-l.HalfSize()-1, 0), up)
		if got := core.RejectionCode(err); got != core.CodeOutsideFootprint {
			t.Errorf("expected %s, got %v", core.CodeOutsideFootprint, err)
		}
	})

	t.Run("edge occupied", func(t *testing.T) {
		g := core.MustGrid(3)
		g.Cell(core.At(0, 1)).SetEdgeOccupied(core.Down)
		g.Cell(core.At(1, 1)).SetEdgeOccupied(core.Up)

		_, err := core.FindValidTargetCell(g, l, l.Center(core.At(1, 1)), core.NewDirectionSet(core.Up, core.Left))
		if got := core.RejectionCode(err); got != core.CodeEdgeOccupied {
			t.Errorf("expected %s, got %v", core.CodeEdgeOccupied, err)
		}
		if _, err := core.FindValidTargetCell(g, l, l.Center(core.At(1, 1)), core.NewDirectionSet(core.Down)); err != nil {
			t.Errorf("free edge should be accepted: %v", err)
		}
	})

	t.Run("empty shape", func(t *testing.T) {
		g := core.MustGrid(3)
		_, err := core.FindValidTargetCell(g, l, l.Center(core.At(0, 0)), 0)
		if got := core.RejectionCode(err); got != core.CodeEmptyShape {
			t.Errorf("expected %s, got %v", core.CodeEmptyShape, err)
		}
	})
}

func TestResolveEdgesAutoOrientation(t *testing.T) {
	g := core.MustGrid(3)
	l := core.DefaultLayout()
	center := l.Center(core.At(1, 1))

	testCases := []struct {
		name  string
		shape core.Shape
		p     core.Point
		want  core.Direction
	}{
		{"horizontal above center", core.HorizontalLine(), center.Add(0, -100), core.Up},
		{"horizontal below center", core.HorizontalLine(), center.Add(0, 100), core.Down},
		{"horizontal tie prefers up", core.HorizontalLine(), center, core.Up},
		{"vertical right of center", core.VerticalLine(), center.Add(100, 0), core.Right},
		{"vertical left of center", core.VerticalLine(), center.Add(-100, 0), core.Left},
		{"vertical tie prefers right", core.VerticalLine(), center, core.Right},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := core.ResolveEdges(g, l, tc.shape, tc.p)
			if got != core.NewDirectionSet(tc.want) {
				t.Errorf("got %s, want {%s}", got, tc.want)
			}
		})
	}

	fixed := core.FixedShape(core.Left, core.Down)
	if got := core.ResolveEdges(g, l, fixed, center.Add(0, -100)); got != fixed.Edges {
		t.Errorf("fixed shape resolved to %s, want %s", got, fixed.Edges)
	}
}

func TestCanPlaceAnywhere(t *testing.T) {
	g := core.MustGrid(1)
	up := core.FixedShape(core.Up)

	if !core.CanPlaceAnywhere(g, up) {
		t.Error("empty grid should accept any shape")
	}

	g.Cell(core.At(0, 0)).SetEdgeOccupied(core.Up)
	if core.CanPlaceAnywhere(g, up) {
		t.Error("Up is taken on the only cell")
	}
	if !core.CanPlaceAnywhere(g, core.HorizontalLine()) {
		t.Error("horizontal line can still use Down")
	}

	g.Cell(core.At(0, 0)).SetEdgeOccupied(core.Down)
	if core.CanPlaceAnywhere(g, core.HorizontalLine()) {
		t.Error("horizontal line has nowhere left to go")
	}
}

func TestShapeValidate(t *testing.T) {
	if err := core.FixedShape().Validate(); err == nil {
		t.Error("fixed shape without edges should be invalid")
	}
	if err := core.VerticalLine().Validate(); err != nil {
		t.Errorf("vertical line should be valid: %v", err)
	}
	if err := (core.Shape{Kind: core.Kind(9)}).Validate(); err == nil {
		t.Error("unknown kind should be invalid")
	}

	k, ok := core.ParseKind("hline")
	if !ok || k != core.AutoHorizontal {
		t.Errorf("ParseKind(hline) = %v, %v", k, ok)
	}
}
