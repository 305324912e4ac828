package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/monster-hunter/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionMoveLeft},
		{"h", runeKey('h'), core.ActionMoveLeft},
		{"a", runeKey('a'), core.ActionMoveLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionMoveRight},
		{"l", runeKey('l'), core.ActionMoveRight},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionJump},
		{"f", runeKey('f'), core.ActionFire},
		{"x", runeKey('x'), core.ActionFire},
		{"r", runeKey('r'), core.ActionRestart},
		{"p", runeKey('p'), core.ActionPause},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"ctrl+s", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionNone},
		{"unbound", runeKey('z'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestHeldMovementWindow(t *testing.T) {
	h := newHeldInput(3)
	h.press(core.ActionMoveRight)

	for i := range 3 {
		if f := h.next(); !f.Has(core.ActionMoveRight) {
			t.Fatalf("tick %d: right should still be held", i)
		}
	}
	if f := h.next(); f.Has(core.ActionMoveRight) {
		t.Error("right should be released after the window")
	}
}

func TestHeldOppositeDirectionCancels(t *testing.T) {
	h := newHeldInput(5)
	h.press(core.ActionMoveLeft)
	h.press(core.ActionMoveRight)

	f := h.next()
	if f.Has(core.ActionMoveLeft) || !f.Has(core.ActionMoveRight) {
		t.Errorf("frame = %v, expected only MoveRight", f.Actions)
	}
}

func TestHeldPulses(t *testing.T) {
	h := newHeldInput(5)
	h.press(core.ActionFire)
	h.press(core.ActionJump)
	h.press(core.ActionQuit)
	h.press(core.ActionNone)

	f := h.next()
	if !f.Has(core.ActionFire) || !f.Has(core.ActionJump) {
		t.Errorf("first tick = %v, expected fire and jump", f.Actions)
	}
	if f.Has(core.ActionQuit) || f.Has(core.ActionNone) {
		t.Error("quit and none never reach the game")
	}
	if f := h.next(); len(f.Actions) != 0 {
		t.Errorf("second tick = %v, pulses last one tick", f.Actions)
	}
}

func TestHeldReset(t *testing.T) {
	h := newHeldInput(5)
	h.press(core.ActionMoveLeft)
	h.reset()
	if f := h.next(); len(f.Actions) != 0 {
		t.Errorf("frame after reset = %v", f.Actions)
	}
}

func TestTicksFor(t *testing.T) {
	if got := ticksFor(150*time.Millisecond, 60); got != 9 {
		t.Errorf("ticksFor(150ms, 60) = %d, want 9", got)
	}
	if got := ticksFor(time.Millisecond, 60); got != 1 {
		t.Errorf("ticksFor(1ms, 60) = %d, want at least 1", got)
	}
	if got := tickInterval(0); got != time.Second/60 {
		t.Errorf("tickInterval(0) = %v, expected the 60 Hz default", got)
	}
}
