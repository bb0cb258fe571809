package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pinball/internal/core"
	"github.com/vovakirdan/tui-pinball/internal/registry"
)

var (
	menuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14")).
			Padding(1, 0)
	menuBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
)

// MenuModel is the Bubble Tea model for the table picker.
type MenuModel struct {
	tables   []registry.TableInfo
	table    table.Model
	help     help.Model
	keys     MenuKeyMap
	config   core.RuntimeConfig
	quitting bool
	selected string
}

// NewMenuModel lists every registered table.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	tables := registry.List()

	rows := make([]table.Row, 0, len(tables))
	for _, t := range tables {
		rows = append(rows, table.Row{t.Title, t.ID})
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Table", Width: 20},
			{Title: "ID", Width: 14},
		}),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(core.Clamp(len(rows)+1, 2, 12)),
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

	return MenuModel{
		tables: tables,
		table:  t,
		help:   help.New(),
		keys:   DefaultMenuKeyMap(),
		config: cfg,
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
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Select):
			if len(m.tables) > 0 {
				m.selected = m.tables[m.table.Cursor()].ID
				return m, tea.Quit
			}
			return m, nil
		case key.Matches(msg, m.keys.Up):
			m.table.MoveUp(1)
			return m, nil
		case key.Matches(msg, m.keys.Down):
			m.table.MoveDown(1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(menuTitleStyle.Render("  P I N B A L L  "))
	b.WriteString("\n")
	b.WriteString(menuBoxStyle.Render(m.table.View()))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH,
		lipgloss.Center, lipgloss.Center, b.String())
}

// Selected returns the chosen table ID, or "" if none was chosen.
func (m MenuModel) Selected() string {
	return m.selected
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	TableID string
	Config  core.RuntimeConfig
	Quit    bool
}

// RunMenu runs the table picker and returns the selection.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(cfg), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.selected == "" {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return MenuResult{TableID: m.selected, Config: m.config}, nil
}
