package core_test

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-edges/internal/games/edges/core"
)

func TestRenderASCII(t *testing.T) {
	g := core.MustGrid(2)
	restore(t, g, []core.Index{core.At(0, 0)}, nil)

	out := core.RenderASCII(g)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	// Header, column labels, then 2 rows of (border + cells) and a bottom border.
	if len(lines) != 7 {
		t.Fatalf("expected 7 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "complete: 1") {
		t.Errorf("header should report one complete cell: %q", lines[0])
	}
	if got := strings.TrimSpace(lines[2]); got != "+===+...+" {
		t.Errorf("top border = %q", got)
	}
	if got := strings.TrimSpace(lines[3]); got != "0 | # |   :" {
		t.Errorf("row 0 = %q", got)
	}
	if got := strings.TrimSpace(lines[4]); got != "+===+...+" {
		t.Errorf("middle border = %q", got)
	}
	if got := strings.TrimSpace(lines[6]); got != "+...+...+" {
		t.Errorf("bottom border = %q", got)
	}
}
