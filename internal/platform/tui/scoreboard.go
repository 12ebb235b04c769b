package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tusk/internal/games/elephant/levels"
	"github.com/vovakirdan/tusk/internal/storage"
)

const (
	minWidthForSidebar = 80
	sidebarWidth       = 26
	maxSolves          = 100
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

var boardFrameStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(0, 1)

var boardActiveStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("229")).
	Background(lipgloss.Color("57")).
	Padding(0, 1)

// scoreboardHelp shows the bindings that matter on the scoreboard.
type scoreboardHelp struct{ keys KeyMap }

func (h scoreboardHelp) ShortHelp() []key.Binding {
	scroll := key.NewBinding(
		key.WithKeys(append(h.keys.Up.Keys(), h.keys.Down.Keys()...)...),
		key.WithHelp(h.keys.Up.Help().Key+" "+h.keys.Down.Help().Key, "scroll"),
	)
	level := key.NewBinding(
		key.WithKeys(append(h.keys.Left.Keys(), h.keys.Right.Keys()...)...),
		key.WithHelp(h.keys.Left.Help().Key+" "+h.keys.Right.Help().Key, "level"),
	)
	return []key.Binding{scroll, level, h.keys.Back, h.keys.Quit}
}

func (h scoreboardHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

// ScoreboardModel lists the best solves of one level at a time.
type ScoreboardModel struct {
	levels []levels.Level
	cursor int
	store  *storage.Store
	keys   KeyMap

	solves []storage.SolveEntry
	stats  *storage.LevelStats
	table  table.Model
	help   help.Model

	width, height int
	quitting      bool
	goingBack     bool
}

// NewScoreboardModel opens the scoreboard on startID, or on the first level
// if startID is empty or unknown.
func NewScoreboardModel(lvls []levels.Level, store *storage.Store, keys KeyMap, startID string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		levels: lvls,
		cursor: max(levels.IndexOf(lvls, startID), 0),
		store:  store,
		keys:   keys,
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.newTable()
	m.load()
	return m
}

func (m ScoreboardModel) wide() bool {
	return m.width >= minWidthForSidebar
}

func (m ScoreboardModel) newTable() table.Model {
	avail := m.width - 4
	if m.wide() {
		avail -= sidebarWidth + 3
	}
	dateW := min(max(avail-6-8-8, 12), 20)

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Moves", Width: 8},
			{Title: "Par", Width: 8},
			{Title: "Date", Width: dateW},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// load reads the solves and stats of the selected level. A missing store or
// a failed query shows an empty board.
func (m *ScoreboardModel) load() {
	m.solves, m.stats = nil, nil
	if m.store != nil && len(m.levels) > 0 {
		id := m.levels[m.cursor].ID
		if solves, err := m.store.BestSolves(id, maxSolves); err == nil {
			m.solves = solves
		}
		if stats, err := m.store.LevelStats(id); err == nil {
			m.stats = stats
		}
	}

	par := 0
	if len(m.levels) > 0 {
		par = m.levels[m.cursor].Par
	}
	rows := make([]table.Row, len(m.solves))
	for i, s := range m.solves {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			strconv.Itoa(s.Moves),
			parDelta(s.Moves, par),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// parDelta formats moves relative to par: "par", "+3" or "-1". Levels
// without a par give "-".
func parDelta(moves, par int) string {
	switch {
	case par <= 0:
		return "-"
	case moves == par:
		return "par"
	default:
		return fmt.Sprintf("%+d", moves-par)
	}
}

func (m *ScoreboardModel) step(delta int) {
	if n := len(m.levels); n > 0 {
		m.cursor = (m.cursor + delta + n) % n
		m.load()
	}
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Right, m.keys.Scores):
			m.step(1)
			return m, nil
		case key.Matches(msg, m.keys.Left):
			m.step(-1)
			return m, nil
		case key.Matches(msg, m.keys.Up):
			m.table.MoveUp(1)
			return m, nil
		case key.Matches(msg, m.keys.Down):
			m.table.MoveDown(1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.load()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(boardTitleStyle.Render(centerText(m.title(), m.width)))
	b.WriteString("\n")
	b.WriteString(boardDimStyle.Render(centerText(m.summary(), m.width)))
	b.WriteString("\n\n")

	if m.wide() {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar(), "  ", boardFrameStyle.Render(m.content())))
	} else {
		if len(m.levels) > 0 {
			name := truncate(m.levels[m.cursor].Name, max(m.width-16, 4))
			current := fmt.Sprintf("%s %d/%d", name, m.cursor+1, len(m.levels))
			b.WriteString(centerText("< "+boardActiveStyle.Render(current)+" >", m.width))
		}
		b.WriteString("\n\n")
		b.WriteString(centerText(boardFrameStyle.Render(m.content()), m.width))
	}

	b.WriteString("\n")
	b.WriteString(boardDimStyle.Render(m.help.View(scoreboardHelp{m.keys})))
	return b.String()
}

func (m ScoreboardModel) title() string {
	if len(m.levels) == 0 {
		return "BEST SOLVES"
	}
	lvl := m.levels[m.cursor]
	title := "BEST SOLVES - " + lvl.Title()
	if lvl.Par > 0 {
		title += fmt.Sprintf(" (par %d)", lvl.Par)
	}
	return title
}

// summary is the one-line stats under the title.
func (m ScoreboardModel) summary() string {
	if m.stats == nil || m.stats.Solves == 0 {
		return "not solved yet"
	}
	return fmt.Sprintf("%d solves | best %d | avg %.1f | last %s",
		m.stats.Solves, m.stats.BestMoves, m.stats.AvgMoves, m.stats.LastSolved.Format("Jan 02"))
}

func (m ScoreboardModel) sidebar() string {
	var sb strings.Builder
	sb.WriteString("Levels\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	sb.WriteString("\n")

	from, to := m.sidebarRange()
	for i := from; i < to; i++ {
		line := "  " + truncate(m.levels[i].Name, sidebarWidth-6)
		if i == m.cursor {
			line = boardTitleStyle.Render("> " + truncate(m.levels[i].Name, sidebarWidth-6))
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return boardFrameStyle.Width(sidebarWidth).Render(sb.String())
}

func (m ScoreboardModel) content() string {
	if len(m.solves) == 0 {
		return boardDimStyle.Italic(true).Padding(2, 4).
			Render("No solves recorded yet.\nFinish this level to set a record!")
	}
	return m.table.View()
}

// sidebarRange returns the levels listed in the sidebar, keeping the cursor
// in view.
func (m ScoreboardModel) sidebarRange() (from, to int) {
	rows := max(m.height-10, 1)
	if len(m.levels) <= rows {
		return 0, len(m.levels)
	}
	from = min(max(m.cursor-rows/2, 0), len(m.levels)-rows)
	return from, from + rows
}

// truncate shortens s to at most n runes, marking the cut with a dot.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n || n < 2 {
		return s
	}
	return string(r[:n-1]) + "."
}

// Level returns the id of the level being shown, or "" without levels.
func (m ScoreboardModel) Level() string {
	if len(m.levels) == 0 {
		return ""
	}
	return m.levels[m.cursor].ID
}

// IsGoingBack reports whether the user asked for the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the user asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard as its own program. It reports whether
// the user wants to go back to the menu.
func RunScoreboard(lvls []levels.Level, store *storage.Store, keys KeyMap, startID string, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(lvls, store, keys, startID, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
