package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mishankov/gallows/internal/engine"
	"github.com/mishankov/gallows/internal/storage"
)

// Scoreboard layout constants
const (
	maxRounds = 100 // Max rounds to load per category
)

// ScoreboardKeyMap defines the key bindings for the past-rounds screen.
type ScoreboardKeyMap struct {
	Up           key.Binding
	Down         key.Binding
	NextCategory key.Binding
	PrevCategory key.Binding
	Back         key.Binding
	Quit         key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextCategory, k.PrevCategory, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextCategory, k.PrevCategory},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextCategory: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next category"),
		),
		PrevCategory: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev category"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for browsing past rounds.
type ScoreboardModel struct {
	categories []engine.Category
	cursor     int // Currently selected category index
	store      *storage.Store
	rounds     []storage.RoundEntry
	stats      *storage.CategoryStats
	table      table.Model
	help       help.Model
	keys       ScoreboardKeyMap
	width      int
	height     int
	quitting   bool
	goingBack  bool
}

// NewScoreboardModel creates a new past-rounds model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	keys := DefaultScoreboardKeyMap()
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		categories: []engine.Category{engine.CategoryBasic, engine.CategoryIntermediate},
		cursor:     0,
		store:      store,
		keys:       keys,
		help:       h,
		width:      width,
		height:     height,
	}

	m.table = m.createTable()
	m.loadRounds(m.categories[0])

	return m
}

// createTable creates a table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	answerWidth := m.width - 44
	if answerWidth < 12 {
		answerWidth = 12
	}
	if answerWidth > 28 {
		answerWidth = 28
	}

	columns := []table.Column{
		{Title: "Answer", Width: answerWidth},
		{Title: "Result", Width: 8},
		{Title: "Lives", Width: 6},
		{Title: "Guesses", Width: 8},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(m.height-10),
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

// loadRounds loads rounds and stats for the given category.
func (m *ScoreboardModel) loadRounds(cat engine.Category) {
	if m.store == nil {
		m.rounds = nil
		m.stats = nil
		m.updateTableRows()
		return
	}

	rounds, err := m.store.RecentRounds(cat.String(), maxRounds)
	if err != nil {
		m.rounds = nil
	} else {
		m.rounds = rounds
	}

	stats, err := m.store.Stats(cat.String())
	if err != nil {
		m.stats = nil
	} else {
		m.stats = stats
	}

	m.updateTableRows()
}

// updateTableRows updates the table with current rounds.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.rounds))
	for i, r := range m.rounds {
		result := "lost"
		if r.Won {
			result = "won"
		}
		rows[i] = table.Row{
			r.Answer,
			result,
			fmt.Sprintf("%d", r.LivesLeft),
			fmt.Sprintf("%d", r.Guesses),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the past-rounds model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the past-rounds screen.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextCategory):
			m.cursor = (m.cursor + 1) % len(m.categories)
			m.loadRounds(m.categories[m.cursor])
			return m, nil

		case key.Matches(msg, m.keys.PrevCategory):
			m.cursor--
			if m.cursor < 0 {
				m.cursor = len(m.categories) - 1
			}
			m.loadRounds(m.categories[m.cursor])
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
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

// View renders the past-rounds screen.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	cat := m.categories[m.cursor]
	title := fmt.Sprintf("PAST ROUNDS - %s", cat.Title())
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.stats != nil && m.stats.Played > 0 {
		summary := fmt.Sprintf("played %d  |  won %d  |  win rate %.0f%%  |  best lives left %d",
			m.stats.Played, m.stats.Won, m.stats.WinRate()*100, m.stats.BestLivesLeft)
		b.WriteString(faintStyle.Render(centerText(summary, m.width)))
		b.WriteString("\n\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(centerBlock(tableStyle.Render(m.renderTableContent()), m.width))

	b.WriteString("\n")
	b.WriteString(faintStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.rounds) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No rounds recorded yet.\nPlay a round to see it here!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the past-rounds screen.
// Returns true if the user wants to go back to the menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewScoreboardModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
