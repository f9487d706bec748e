package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-edges/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"q quits", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"vim down", runeKey("j"), core.ActionDown, false},
		{"wasd left", runeKey("a"), core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"enter places", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"x cancels", runeKey("x"), core.ActionCancel, false},
		{"tab next shape", tea.KeyMsg{Type: tea.KeyTab}, core.ActionNext, false},
		{"shift+tab previous shape", tea.KeyMsg{Type: tea.KeyShiftTab}, core.ActionPrev, false},
		{"esc back", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"p pause", runeKey("p"), core.ActionPause, false},
		{"r restart", runeKey("r"), core.ActionRestart, false},
		{"unbound", runeKey("z"), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyTab}, &frame) {
		t.Error("tab should not quit")
	}
	if !frame.Has(core.ActionNext) {
		t.Error("frame should hold ActionNext")
	}
	if !km.MapKeyToFrame(runeKey("q"), &frame) {
		t.Error("q should quit")
	}
}

func TestMapMouse(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.MouseMsg
		kind core.PointerKind
		ok   bool
	}{
		{
			name: "left press",
			msg:  tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
			kind: core.PointerPress,
			ok:   true,
		},
		{
			name: "drag with left held",
			msg:  tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft},
			kind: core.PointerDrag,
			ok:   true,
		},
		{
			name: "release",
			msg:  tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone},
			kind: core.PointerRelease,
			ok:   true,
		},
		{
			name: "right press ignored",
			msg:  tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonRight},
		},
		{
			name: "hover ignored",
			msg:  tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone},
		},
		{
			name: "wheel ignored",
			msg:  tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := km.MapMouse(tt.msg)
			if ok != tt.ok {
				t.Fatalf("MapMouse ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if p.Kind != tt.kind || p.X != 3 || p.Y != 4 {
				t.Errorf("MapMouse = %+v", p)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runeKey("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, MenuActionLeft},
		{runeKey("l"), MenuActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{runeKey("b"), MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey("q"), MenuActionQuit},
		{runeKey("z"), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
