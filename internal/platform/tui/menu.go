package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Source tells where a menu entry's map comes from.
type Source string

const (
	SourceBundled Source = "bundled"
	SourceFile    Source = "file"
	SourcePack    Source = "pack"
)

// MenuItem represents a selectable level in the menu.
type MenuItem struct {
	ID     string // Registry id, file id or pack name depending on Source
	Title  string
	Source Source
	Size   int    // Grid width, 0 if unknown
	Path   string // File path for SourceFile
}

// MenuKeyMap defines the key bindings for the level picker.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Select, k.Quit},
	}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuModel is the Bubble Tea model for the level picker.
type MenuModel struct {
	items    []MenuItem
	table    table.Model
	help     help.Model
	keys     MenuKeyMap
	tr       func(string) string
	status   string
	width    int
	height   int
	quitting bool
	selected *MenuItem
}

// NewMenuModel creates a level picker. tr translates fixed labels and may be nil.
// status is shown under the title, typically the outcome of the last level.
func NewMenuModel(items []MenuItem, width, height int, tr func(string) string, status string) MenuModel {
	if tr == nil {
		tr = func(s string) string { return s }
	}
	h := help.New()
	h.ShowAll = false
	h.Width = width

	m := MenuModel{
		items:  items,
		help:   h,
		keys:   DefaultMenuKeyMap(),
		tr:     tr,
		status: status,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	return m
}

// createTable builds the level table for the current size.
func (m *MenuModel) createTable() table.Model {
	titleWidth := 30
	if m.width > 60 {
		titleWidth = min(m.width-30, 48)
	}
	columns := []table.Column{
		{Title: m.tr("Level"), Width: titleWidth},
		{Title: m.tr("Source"), Width: 8},
		{Title: m.tr("Size"), Width: 6},
	}

	rows := make([]table.Row, len(m.items))
	for i, it := range m.items {
		size := "-"
		if it.Size > 0 {
			size = fmt.Sprintf("%d", it.Size)
		}
		rows[i] = table.Row{it.Title, m.tr(string(it.Source)), size}
	}

	height := m.height - 9
	if height < 3 {
		height = 3
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
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

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if len(m.items) > 0 {
				selected := m.items[m.table.Cursor()]
				m.selected = &selected
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		cursor := m.table.Cursor()
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("T H E   V E I L E D   P A T H", m.width)))
	b.WriteString("\n\n")

	subtitle := m.tr("Select a level")
	if m.status != "" {
		subtitle = m.status
	}
	b.WriteString(centerText(subtitle, m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.table.View()))
	b.WriteString("\n")

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Item MenuItem
	Quit bool
}

// RunMenu runs the level picker and returns the selection.
func RunMenu(items []MenuItem, width, height int, tr func(string) string, status string) (MenuResult, error) {
	model := NewMenuModel(items, width, height, tr, status)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Quit: true}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.IsQuitting() || m.Selected() == nil {
		return MenuResult{Quit: true}, nil
	}
	return MenuResult{Item: *m.Selected()}, nil
}
