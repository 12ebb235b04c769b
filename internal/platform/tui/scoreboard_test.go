package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tusk/internal/storage"
)

func boardUpdate(t *testing.T, m ScoreboardModel, msg tea.Msg) ScoreboardModel {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(ScoreboardModel)
}

func TestParDelta(t *testing.T) {
	tests := []struct {
		moves, par int
		want       string
	}{
		{4, 4, "par"},
		{7, 4, "+3"},
		{3, 4, "-1"},
		{9, 0, "-"},
	}

	for _, tt := range tests {
		if got := parDelta(tt.moves, tt.par); got != tt.want {
			t.Errorf("parDelta(%d, %d) = %q, want %q", tt.moves, tt.par, got, tt.want)
		}
	}
}

func TestScoreboardCyclesLevels(t *testing.T) {
	m := NewScoreboardModel(menuLevels, nil, DefaultKeyMap(), "c", 100, 30)
	if m.Level() != "c" {
		t.Fatalf("start level = %q, want c", m.Level())
	}

	m = boardUpdate(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Level() != "a" {
		t.Errorf("right from the last level = %q, want a", m.Level())
	}
	m = boardUpdate(t, m, runeKey('h'))
	if m.Level() != "c" {
		t.Errorf("left from the first level = %q, want c", m.Level())
	}
	m = boardUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Level() != "a" {
		t.Errorf("tab = %q, want a", m.Level())
	}

	back := boardUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !back.IsGoingBack() || back.IsQuitting() {
		t.Error("esc should go back")
	}
	quit := boardUpdate(t, m, runeKey('q'))
	if !quit.IsQuitting() {
		t.Error("q should quit")
	}
}

func TestScoreboardShowsSolves(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	store.SaveSolve("a", 5)
	store.SaveSolve("a", 3)

	for _, width := range []int{100, 60} {
		m := NewScoreboardModel(menuLevels, store, DefaultKeyMap(), "a", width, 30)
		view := m.View()

		if !strings.Contains(view, "Alpha (par 3)") {
			t.Errorf("width %d: title missing:\n%s", width, view)
		}
		if !strings.Contains(view, "2 solves | best 3") {
			t.Errorf("width %d: summary missing:\n%s", width, view)
		}
		if !strings.Contains(view, "+2") {
			t.Errorf("width %d: par delta missing:\n%s", width, view)
		}
	}

	empty := NewScoreboardModel(menuLevels, store, DefaultKeyMap(), "b", 100, 30)
	if !strings.Contains(empty.View(), "No solves recorded yet") {
		t.Error("unsolved level should show the empty message")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"Meadow", 10, "Meadow"},
		{"Crossroads", 6, "Cross."},
		{"ab", 1, "ab"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}
