package main

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-edges/internal/games/edges/shapes"
)

func TestParseDrop(t *testing.T) {
	tests := []struct {
		in      string
		want    drop
		wantErr bool
	}{
		{in: "square@0,0", want: drop{Shape: "square"}},
		{in: "line-h@1, 0.5", want: drop{Shape: "line-h", X: 1, Y: 0.5}},
		{in: "cup-up@-0.5,2", want: drop{Shape: "cup-up", X: -0.5, Y: 2}},
		{in: "square", wantErr: true},
		{in: "@0,0", wantErr: true},
		{in: "square@0", wantErr: true},
		{in: "square@a,0", wantErr: true},
		{in: "square@0,b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseDrop(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseDrop(%q) = %+v, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseDrop(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("parseDrop(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDump(t *testing.T) {
	var sb strings.Builder
	err := dump(&sb, 3, shapes.Default(), []drop{
		{Shape: "square", X: 0, Y: 0},
		{Shape: "square", X: 0, Y: 0},
	})
	if err != nil {
		t.Fatalf("dump failed: %v", err)
	}

	out := sb.String()
	for _, want := range []string{
		"1. square at (0,0)",
		"cell (0,0) completed",
		"2. square at (0,0)",
		"rejected",
		"Grid 3x3 | complete: 1 | edges: 4",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestDumpUnknownShape(t *testing.T) {
	var sb strings.Builder
	if err := dump(&sb, 3, shapes.Default(), []drop{{Shape: "triangle"}}); err == nil {
		t.Error("unknown shape should fail")
	}
	if err := dump(&sb, 0, shapes.Default(), nil); err == nil {
		t.Error("size 0 should fail")
	}
}
