package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tusk/internal/core"
	"github.com/vovakirdan/tusk/internal/games/elephant/levels"
	"github.com/vovakirdan/tusk/internal/storage"
)

// MenuItem represents a selectable level in the menu.
type MenuItem struct {
	LevelID string
	Title   string
	Par     int
	Best    int // fewest moves recorded, valid when Solved
	Solved  bool
}

// MenuModel is the Bubble Tea model for the level picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	config         core.RuntimeConfig
	keys           KeyMap
	quitting       bool
	selected       *MenuItem // Set when user selects a level
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model. The cursor starts on the first
// level without a recorded solve.
func NewMenuModel(lvls []levels.Level, store *storage.Store, cfg core.RuntimeConfig, keys KeyMap) MenuModel {
	best := map[string]int{}
	if store != nil {
		if b, err := store.AllBest(); err == nil {
			best = b
		}
	}

	items := make([]MenuItem, 0, len(lvls))
	cursor := -1
	for i, l := range lvls {
		moves, solved := best[l.ID]
		items = append(items, MenuItem{
			LevelID: l.ID,
			Title:   l.Title(),
			Par:     l.Par,
			Best:    moves,
			Solved:  solved,
		})
		if !solved && cursor < 0 {
			cursor = i
		}
	}

	return MenuModel{
		items:  items,
		cursor: max(cursor, 0),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
		keys:   keys,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start game
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit // Exit menu to show scoreboard
	}

	return m, nil
}

// visibleRange returns the slice of items that fits the window, keeping
// the cursor in view.
func (m MenuModel) visibleRange() (from, to int) {
	rows := max(m.height-9, 1) // title, subtitle, footer and spacing
	if len(m.items) <= rows {
		return 0, len(m.items)
	}
	from = min(max(m.cursor-rows/2, 0), len(m.items)-rows)
	return from, from + rows
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  T U S K  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a level", m.width))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(centerText(dimStyle.Render("No levels found."), m.width))
		b.WriteString("\n")
	}

	from, to := m.visibleRange()
	for i := from; i < to; i++ {
		b.WriteString(centerText(m.itemLine(i), m.width))
		b.WriteString("\n")
	}

	// Footer with controls
	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(dimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// itemLine formats one level entry.
func (m MenuModel) itemLine(i int) string {
	item := m.items[i]

	cursor := "  "
	if i == m.cursor {
		cursor = "> "
	}

	mark := " "
	if item.Solved {
		mark = "✓"
	}

	var stats string
	switch {
	case item.Solved && item.Par > 0:
		stats = fmt.Sprintf("  best %d / par %d", item.Best, item.Par)
	case item.Solved:
		stats = fmt.Sprintf("  best %d", item.Best)
	case item.Par > 0:
		stats = fmt.Sprintf("  par %d", item.Par)
	}

	line := fmt.Sprintf("%s%s %s%s", cursor, mark, item.Title, stats)
	if i == m.cursor {
		return lipgloss.NewStyle().Bold(true).Render(line)
	}
	return line
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	LevelID         string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(lvls []levels.Level, store *storage.Store, cfg core.RuntimeConfig, keys KeyMap) (MenuResult, error) {
	model := NewMenuModel(lvls, store, cfg, keys)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	return m.result(), nil
}

// result converts the final menu state into a MenuResult.
func (m MenuModel) result() MenuResult {
	result := MenuResult{
		Config: m.Config(),
	}

	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Selected() != nil:
		result.LevelID = m.Selected().LevelID
	default:
		result.Quit = true
	}

	return result
}
