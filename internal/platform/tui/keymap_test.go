package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tusk/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapDefaultActions(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"w", runeKey('w'), core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"a", runeKey('a'), core.ActionLeft},
		{"l", runeKey('l'), core.ActionRight},
		{"z", runeKey('z'), core.ActionUndo},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, core.ActionUndo},
		{"r", runeKey('r'), core.ActionReset},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionConfirm},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('x'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyMapFromConfig(t *testing.T) {
	km := NewKeyMap(map[string][]string{
		"up":   {"i"},
		"undo": {"ctrl+z"},
		"quit": {"x"},
	})

	if got := km.Action(runeKey('i')); got != core.ActionUp {
		t.Errorf("i = %v, want up", got)
	}
	if got := km.Action(runeKey('w')); got != core.ActionNone {
		t.Errorf("w should be unbound, got %v", got)
	}
	if got := km.Action(tea.KeyMsg{Type: tea.KeyCtrlZ}); got != core.ActionUndo {
		t.Errorf("ctrl+z = %v, want undo", got)
	}
	if got := km.Action(runeKey('x')); got != core.ActionQuit {
		t.Errorf("x = %v, want quit", got)
	}
}

func TestKeyMapMenuActions(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('q'), MenuActionQuit},
		{runeKey('z'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MenuAction(tt.msg); got != tt.want {
			t.Errorf("MenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestHelpKeys(t *testing.T) {
	tests := []struct {
		names []string
		want  string
	}{
		{[]string{"enter", " "}, "enter/space"},
		{[]string{"up", "w", "k"}, "up/w"},
		{[]string{"r"}, "r"},
		{nil, ""},
	}

	for _, tt := range tests {
		if got := helpKeys(tt.names); got != tt.want {
			t.Errorf("helpKeys(%q) = %q, want %q", tt.names, got, tt.want)
		}
	}
}
