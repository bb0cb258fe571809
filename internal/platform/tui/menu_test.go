package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pinball/internal/core"
	"github.com/vovakirdan/tui-pinball/internal/registry"
	_ "github.com/vovakirdan/tui-pinball/internal/tables"
)

func TestMenuSelectsTable(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())
	list := registry.List()
	if len(list) < 2 {
		t.Fatalf("expected at least two tables, got %d", len(list))
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)

	if cmd == nil {
		t.Fatal("select should quit the menu")
	}
	if m.Selected() != list[1].ID {
		t.Errorf("selected %q, want %q", m.Selected(), list[1].ID)
	}
}

func TestMenuQuit(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = next.(MenuModel)

	if cmd == nil {
		t.Fatal("q should quit the menu")
	}
	if m.Selected() != "" {
		t.Errorf("selected %q after quit", m.Selected())
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
}
