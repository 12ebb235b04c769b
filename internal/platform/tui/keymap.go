package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tusk/internal/config"
	"github.com/vovakirdan/tusk/internal/core"
)

// KeyMap translates Bubble Tea key messages to game actions.
// Bindings come from the keys section of the config.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Undo    key.Binding
	Reset   key.Binding
	Confirm key.Binding
	Back    key.Binding
	Quit    key.Binding

	Screenshot key.Binding
	Scores     key.Binding
}

var actionHelp = map[core.Action]string{
	core.ActionUp:      "up",
	core.ActionDown:    "down",
	core.ActionLeft:    "left",
	core.ActionRight:   "right",
	core.ActionUndo:    "undo",
	core.ActionReset:   "reset",
	core.ActionConfirm: "next",
	core.ActionBack:    "menu",
	core.ActionQuit:    "quit",
}

// NewKeyMap builds bindings from action name -> key names.
// Unknown action names are ignored; Config.Validate reports them.
func NewKeyMap(keys map[string][]string) KeyMap {
	binding := func(a core.Action) key.Binding {
		names := keys[a.String()]
		return key.NewBinding(
			key.WithKeys(names...),
			key.WithHelp(helpKeys(names), actionHelp[a]),
		)
	}

	return KeyMap{
		Up:      binding(core.ActionUp),
		Down:    binding(core.ActionDown),
		Left:    binding(core.ActionLeft),
		Right:   binding(core.ActionRight),
		Undo:    binding(core.ActionUndo),
		Reset:   binding(core.ActionReset),
		Confirm: binding(core.ActionConfirm),
		Back:    binding(core.ActionBack),
		Quit:    binding(core.ActionQuit),

		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
	}
}

// DefaultKeyMap returns the bindings of the built-in config.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.DefaultConfig().Keys)
}

// helpKeys joins the first two key names for the help line.
func helpKeys(names []string) string {
	shown := make([]string, 0, 2)
	for _, n := range names {
		if n == " " {
			n = "space"
		}
		shown = append(shown, n)
		if len(shown) == 2 {
			break
		}
	}
	return strings.Join(shown, "/")
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Undo, k.Reset, k.Confirm, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Undo, k.Reset, k.Confirm},
		{k.Back, k.Quit, k.Screenshot},
	}
}

// Action returns the game action bound to msg, or ActionNone.
// Quit is checked first so it cannot be shadowed by a game binding.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Back):
		return core.ActionBack
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, k.Undo):
		return core.ActionUndo
	case key.Matches(msg, k.Reset):
		return core.ActionReset
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	}
	return core.ActionNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MenuAction translates a key to a menu action using the game bindings.
func (k KeyMap) MenuAction(msg tea.KeyMsg) MenuAction {
	if key.Matches(msg, k.Scores) {
		return MenuActionScoreboard
	}

	switch k.Action(msg) {
	case core.ActionQuit:
		return MenuActionQuit
	case core.ActionUp, core.ActionLeft:
		return MenuActionUp
	case core.ActionDown, core.ActionRight:
		return MenuActionDown
	case core.ActionConfirm:
		return MenuActionSelect
	case core.ActionBack:
		return MenuActionBack
	}
	return MenuActionNone
}
