package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pinball/internal/core"
)

// Model is the Bubble Tea model for playing a table.
type Model struct {
	session  *Session
	screen   *core.Screen
	renderer *TableRenderer
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	lastTick time.Time
	paused   bool
	quitting bool
}

// NewModel creates a model for the session.
func NewModel(s *Session, cfg core.RuntimeConfig) Model {
	// One row is kept for the help line.
	screenH := core.Max(cfg.ScreenH-1, 1)
	return Model{
		session:  s,
		screen:   core.NewScreen(cfg.ScreenW, screenH),
		renderer: NewTableRenderer(s, cfg.ScreenW, screenH),
		config:   cfg,
		keys:     DefaultKeyMap(),
		help:     help.New(),
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey routes keys through the event bus.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.MapKey(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionPause:
		m.paused = !m.paused
		if !m.paused {
			m.session.Resume()
			m.lastTick = time.Time{}
		}
		return m, nil
	}

	if m.paused && action != core.ActionQuit {
		return m, nil
	}

	handled := m.session.Dispatch(action)
	if m.session.QuitRequested() || (action == core.ActionQuit && handled == 0) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize keeps the round going and refits the table to the window.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	screenH := core.Max(msg.Height-1, 1)
	m.screen.Resize(msg.Width, screenH)
	m.renderer.Resize(m.session.World().Bounds(), msg.Width, screenH)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances both clocks by the wall time since the last frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.paused {
		return m, tickCmd(m.config.TickRate)
	}
	dt := frameDelta(m.lastTick, now, m.config.TickRate)
	m.lastTick = now
	m.session.Frame(dt)
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.renderer.Render(m.session, m.screen, m.paused)

	dir := filepath.Join(os.Getenv("HOME"), ".pinball", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.session.Table().Name, timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.renderer.Render(m.session, m.screen, m.paused)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// Paused reports whether the clocks are frozen.
func (m Model) Paused() bool {
	return m.paused
}

// Run starts the Bubble Tea program for the session.
func Run(s *Session, cfg core.RuntimeConfig) error {
	defer s.Close()

	p := tea.NewProgram(
		NewModel(s, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
