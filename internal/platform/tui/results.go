package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pixel-racers/internal/game"
	"github.com/vovakirdan/pixel-racers/internal/storage"
)

// Results layout constants
const (
	maxResults    = 50 // Max results to load
	resultsChrome = 9  // Rows taken by title, summary, borders and help
)

// ResultsModel shows the best races of this process next to the session's own.
type ResultsModel struct {
	store   *storage.Store
	session string
	mode    string
	entries []storage.ResultEntry
	summary storage.Summary
	played  int // races finished in this session
	err     error
	table   table.Model
	help    help.Model
	keys    KeyMap
	width   int
	height  int
}

// NewResultsModel creates an empty results view. Call Load before showing it.
func NewResultsModel(store *storage.Store, session string, width, height int) ResultsModel {
	m := ResultsModel{
		store:   store,
		session: session,
		mode:    game.ModeName(false),
		help:    help.New(),
		keys:    DefaultKeyMap(),
		width:   width,
		height:  height,
	}
	m.help.ShowAll = true
	m.table = m.createTable()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *ResultsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Lap", Width: 5},
		{Title: "Outcome", Width: 10},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-resultsChrome)),
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

// Load refreshes the view for the given mode from the store.
func (m *ResultsModel) Load(infinite bool) {
	m.mode = game.ModeName(infinite)
	m.entries = nil
	m.err = nil
	m.played = 0

	if m.store != nil {
		m.entries, m.err = m.store.TopResults(m.mode, maxResults)
		if m.err == nil {
			m.summary, m.err = m.store.Summary()
		}
		if m.err == nil {
			var mine []storage.ResultEntry
			mine, m.err = m.store.SessionResults(m.session)
			m.played = len(mine)
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded results.
func (m *ResultsModel) updateTableRows() {
	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		rank := fmt.Sprintf("#%d", i+1)
		if e.Session == m.session {
			rank += "*"
		}
		rows[i] = table.Row{
			rank,
			fmt.Sprintf("%d", e.Score),
			fmt.Sprintf("%d", e.Lap),
			string(e.Outcome),
			e.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Update scrolls the table and tracks the window size.
func (m ResultsModel) Update(msg tea.Msg) (ResultsModel, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the results.
func (m ResultsModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("RESULTS - "+strings.ToUpper(m.mode), m.width)))
	b.WriteString("\n\n")

	summaryStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	b.WriteString(centerText(summaryStyle.Render(fmt.Sprintf(
		"Races: %d   Wins: %d   Crashes: %d   You: %d",
		m.summary.Races, m.summary.Wins, m.summary.Crashes, m.played,
	)), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or a placeholder.
func (m ResultsModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.store == nil:
		return emptyStyle.Render("Results are not being recorded.")
	case m.err != nil:
		return emptyStyle.Render("Could not load results.")
	case len(m.entries) == 0:
		return emptyStyle.Render("No races finished yet.\nFinish a race to set a best score!")
	}
	return m.table.View()
}

// Rows returns the number of ranked results loaded.
func (m ResultsModel) Rows() int {
	return len(m.entries)
}

// centerText pads every line of text to center it within width.
func centerText(text string, width int) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		pad := (width - lipgloss.Width(line)) / 2
		if pad > 0 {
			lines[i] = strings.Repeat(" ", pad) + line
		}
	}
	return strings.Join(lines, "\n")
}
