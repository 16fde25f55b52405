package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mishankov/gallows/internal/engine"
	"github.com/mishankov/gallows/internal/storage"
	"github.com/mishankov/gallows/internal/words"
)

// MenuItem represents a selectable category in the menu.
type MenuItem struct {
	Category engine.Category
	Title    string
	Count    int
}

// MenuModel is the Bubble Tea model for the category picker menu.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	store          *storage.Store
	quitting       bool
	selected       *MenuItem // Set when the user picks a category
	openScoreboard bool      // True if the user pressed Tab for past rounds
}

// NewMenuModel creates a new menu model from the word source's categories.
func NewMenuModel(source *words.Source, store *storage.Store, width, height int) MenuModel {
	infos := source.Categories()
	items := make([]MenuItem, 0, len(infos))
	for _, info := range infos {
		items = append(items, MenuItem{
			Category: info.Category,
			Title:    info.Title,
			Count:    info.Count,
		})
	}

	return MenuModel{
		items:  items,
		cursor: 0,
		width:  width,
		height: height,
		store:  store,
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
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case "enter", " ":
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case "tab":
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("  G A L L O W S  ", m.width)))
	b.WriteString("\n\n")

	b.WriteString(centerText("Pick a category", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%s (%d entries)", cursor, item.Title, item.Count)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Past rounds  |  Q: Quit"
	b.WriteString(faintStyle.Render(centerText(controls, m.width)))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen menu item, or nil if none was chosen.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested the past-rounds screen.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Category        engine.Category
	Picked          bool
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the category menu and returns the selection result.
func RunMenu(source *words.Source, store *storage.Store, width, height int) (MenuResult, error) {
	model := NewMenuModel(source, store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Quit: true}, nil
	}

	if m.WantsScoreboard() {
		return MenuResult{WantsScoreboard: true}, nil
	}
	if m.IsQuitting() || m.Selected() == nil {
		return MenuResult{Quit: true}, nil
	}

	return MenuResult{Category: m.Selected().Category, Picked: true}, nil
}
