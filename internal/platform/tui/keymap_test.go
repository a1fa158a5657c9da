package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/limitless/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
		quit     bool
	}{
		{"w moves up", runeKey('w'), core.ActionUp, false},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"a moves left", runeKey('a'), core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"1 casts blue", runeKey('1'), core.ActionBlue, false},
		{"2 casts red", runeKey('2'), core.ActionRed, false},
		{"3 casts purple", runeKey('3'), core.ActionPurple, false},
		{"4 casts domain", runeKey('4'), core.ActionDomain, false},
		{"space toggles limitless", tea.KeyMsg{Type: tea.KeySpace}, core.ActionLimitless, false},
		{"enter confirms", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"r restarts", runeKey('r'), core.ActionRestart, false},
		{"p pauses", runeKey('p'), core.ActionPause, false},
		{"tab opens scores", tea.KeyMsg{Type: tea.KeyTab}, core.ActionScores, false},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"q quits", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound key", runeKey('z'), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.expected || quit != tc.quit {
				t.Errorf("MapKey(%q) = %v, %v; expected %v, %v", tc.msg.String(), action, quit, tc.expected, tc.quit)
			}
		})
	}
}

func TestMoveLatchHoldsAndExpires(t *testing.T) {
	l := NewMoveLatch(60)
	if l.ticks != 10 {
		t.Fatalf("latch ticks at 60Hz = %d, expected 10", l.ticks)
	}

	l.Press(core.ActionRight)
	for i := 0; i < l.ticks; i++ {
		frame := core.NewInputFrame()
		l.Apply(&frame)
		if !frame.Has(core.ActionRight) {
			t.Fatalf("direction released early at tick %d", i)
		}
	}

	frame := core.NewInputFrame()
	l.Apply(&frame)
	if frame.Has(core.ActionRight) {
		t.Error("direction still held after the latch window")
	}
}

func TestMoveLatchOpposites(t *testing.T) {
	l := NewMoveLatch(60)
	l.Press(core.ActionLeft)
	l.Press(core.ActionUp)
	l.Press(core.ActionRight)

	frame := core.NewInputFrame()
	l.Apply(&frame)
	if frame.Has(core.ActionLeft) {
		t.Error("pressing right should release left")
	}
	if !frame.Has(core.ActionRight) || !frame.Has(core.ActionUp) {
		t.Error("diagonal should hold both directions")
	}

	l.Release()
	frame = core.NewInputFrame()
	l.Apply(&frame)
	if len(frame.Actions) != 0 {
		t.Errorf("Release() left %v held", frame.Actions)
	}
}

func TestMoveLatchIgnoresNonMovement(t *testing.T) {
	l := NewMoveLatch(60)
	l.Press(core.ActionBlue)

	frame := core.NewInputFrame()
	l.Apply(&frame)
	if frame.Has(core.ActionBlue) {
		t.Error("casts must not be latched")
	}
}
