package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-edges/internal/core"
)

func TestPaletteRender(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.DrawTextWithColor(2, 0, "cd", core.ColorGreen)
	s.DrawText(0, 1, "xy")

	p := NewPalette(lipgloss.NewRenderer(&strings.Builder{}))
	out := p.Render(s)

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "ab") || !strings.Contains(lines[0], "cd") {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "xy") {
		t.Errorf("second line = %q", lines[1])
	}
}

func TestPaletteCoversColors(t *testing.T) {
	p := NewPalette(nil)
	for c := range ansiCodes {
		if _, ok := p[c]; !ok {
			t.Errorf("palette has no style for color %v", c)
		}
	}
	if _, ok := p[core.ColorDefault]; !ok {
		t.Error("palette has no default style")
	}
}
