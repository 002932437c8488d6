package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lane-runner/internal/registry"
	"github.com/vovakirdan/lane-runner/internal/storage"
)

// History layout constants
const (
	historyChrome = 8   // Rows taken by title, tabs, borders and help
	maxHistory    = 100 // Max runs to load
)

// RunSource lists recorded runs. *storage.Store implements it.
type RunSource interface {
	LongestRuns(gameID string, limit int) ([]storage.Run, error)
	RecentRuns(gameID string, limit int) ([]storage.Run, error)
}

// HistoryOrder selects how the history is sorted.
type HistoryOrder int

const (
	OrderLongest HistoryOrder = iota
	OrderRecent
)

// String returns the heading for the order.
func (o HistoryOrder) String() string {
	if o == OrderRecent {
		return "RECENT RUNS"
	}
	return "LONGEST RUNS"
}

// HistoryKeyMap defines the key bindings for the run history.
type HistoryKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	PrevLevel key.Binding
	NextLevel key.Binding
	Order     key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PrevLevel, k.NextLevel, k.Order, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.PrevLevel, k.NextLevel, k.Order},
		{k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		PrevLevel: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("left/h", "prev level"),
		),
		NextLevel: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("right/l", "next level"),
		),
		Order: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "longest/recent"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for browsing recorded runs.
type HistoryModel struct {
	levels   []registry.GameInfo
	cursor   int
	order    HistoryOrder
	source   RunSource
	runs     []storage.Run
	loadErr  error
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	width    int
	height   int
	quitting bool
}

// NewHistoryModel creates a history view starting at the given level.
// An unknown or empty level starts at the first registered one.
func NewHistoryModel(source RunSource, level string, width, height int) HistoryModel {
	m := HistoryModel{
		levels: registry.List(),
		source: source,
		keys:   DefaultHistoryKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	for i, l := range m.levels {
		if l.ID == level {
			m.cursor = i
		}
	}

	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a table sized to the current window.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Distance", Width: 10},
		{Title: "Hit", Width: 12},
		{Title: "Seed", Width: 20},
		{Title: "Date", Width: 12},
	}
	if m.width < 70 {
		// Seeds are the first thing to go on narrow terminals
		columns = append(columns[:3], columns[4])
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(1, m.height-historyChrome)),
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

// Level returns the id of the level being shown, or "" with none registered.
func (m HistoryModel) Level() string {
	if len(m.levels) == 0 {
		return ""
	}
	return m.levels[m.cursor].ID
}

// Runs returns the runs currently listed.
func (m HistoryModel) Runs() []storage.Run {
	return m.runs
}

// Order returns the active sort order.
func (m HistoryModel) Order() HistoryOrder {
	return m.order
}

// load fetches runs for the current level and order.
func (m *HistoryModel) load() {
	m.runs, m.loadErr = nil, nil
	if m.source != nil && len(m.levels) > 0 {
		level := m.Level()
		if m.order == OrderRecent {
			m.runs, m.loadErr = m.source.RecentRuns(level, maxHistory)
		} else {
			m.runs, m.loadErr = m.source.LongestRuns(level, maxHistory)
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded runs.
func (m *HistoryModel) updateTableRows() {
	narrow := len(m.table.Columns()) < 5
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		cause := r.Cause
		if cause == "" {
			cause = "-"
		}
		row := table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%.1f m", r.Distance),
			cause,
			fmt.Sprintf("%d", r.Seed),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
		if narrow {
			row = append(row[:3], row[4])
		}
		rows[i] = row
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history view.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextLevel):
			if len(m.levels) > 0 {
				m.cursor = (m.cursor + 1) % len(m.levels)
				m.load()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevLevel):
			if len(m.levels) > 0 {
				m.cursor = (m.cursor - 1 + len(m.levels)) % len(m.levels)
				m.load()
			}
			return m, nil

		case key.Matches(msg, m.keys.Order):
			m.order = 1 - m.order
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	title := m.order.String()
	if len(m.levels) > 0 {
		title = fmt.Sprintf("%s - %s", title, m.levels[m.cursor].Title)
	}
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTabs renders one tab per level, or arrows around the current one
// when they don't fit.
func (m HistoryModel) renderTabs() string {
	if len(m.levels) == 0 {
		return ""
	}

	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.levels))
	for i, l := range m.levels {
		if i == m.cursor {
			tabs[i] = activeTabStyle.Render(l.Title)
		} else {
			tabs[i] = tabStyle.Render(" " + l.Title + " ")
		}
	}

	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-4 {
		line = fmt.Sprintf("< %s >", m.levels[m.cursor].Title)
	}
	return line
}

// renderTableContent renders the table or a placeholder message.
func (m HistoryModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load runs:\n" + m.loadErr.Error())
	case len(m.runs) == 0:
		return emptyStyle.Render("No runs recorded yet.\nFinish a run to see it here!")
	}
	return m.table.View()
}

// centerText pads text so it sits in the middle of width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunHistory runs the history screen until the user quits.
func RunHistory(source RunSource, level string, width, height int) error {
	p := tea.NewProgram(
		NewHistoryModel(source, level, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
