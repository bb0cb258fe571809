package tables

import (
	"testing"

	"github.com/vovakirdan/tui-pinball/internal/registry"
)

func TestBuiltinTablesRegisterAndValidate(t *testing.T) {
	for _, b := range builtin {
		t.Run(b.id, func(t *testing.T) {
			if !registry.Exists(b.id) {
				t.Fatalf("table %q not registered", b.id)
			}
			layout, err := registry.Load(b.id)
			if err != nil {
				t.Fatalf("Load(%q) failed: %v", b.id, err)
			}
			if layout.Name != b.id {
				t.Errorf("layout name = %q, expected %q", layout.Name, b.id)
			}
			if layout.Title != b.title {
				t.Errorf("layout title = %q, expected %q", layout.Title, b.title)
			}
			if len(layout.Coins) == 0 {
				t.Error("built-in tables should have coins")
			}
		})
	}
}

func TestBuiltinUnknown(t *testing.T) {
	if _, err := Builtin("nope"); err == nil {
		t.Error("expected error for unknown built-in table")
	}
}

func TestClassicBallStartsDrained(t *testing.T) {
	layout, err := Builtin("classic")
	if err != nil {
		t.Fatalf("Builtin() failed: %v", err)
	}
	// The table boots with the ball resting in the trough so the start prompt shows.
	if layout.Ball.Start.Y >= -5.0 {
		t.Errorf("ball start y = %f, expected below the drain line", layout.Ball.Start.Y)
	}
}
