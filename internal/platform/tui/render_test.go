package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-pinball/internal/config"
	"github.com/vovakirdan/tui-pinball/internal/core"
)

func TestProjectionFitsBounds(t *testing.T) {
	b := config.Bounds{MinX: -6, MaxX: 6, MinY: -6, MaxY: 8}
	p := NewProjection(b, 56, 23)

	if p.w > 56 || p.h > 23 {
		t.Fatalf("table area %dx%d exceeds 56x23", p.w, p.h)
	}

	x, y := p.ToCell(core.V(b.MinX, b.MaxY))
	if x != p.ox || y != p.oy {
		t.Errorf("top-left at (%d,%d), want (%d,%d)", x, y, p.ox, p.oy)
	}

	// Higher world Y is further up the screen.
	_, yHigh := p.ToCell(core.V(0, 5))
	_, yLow := p.ToCell(core.V(0, -5))
	if yHigh >= yLow {
		t.Errorf("y not flipped: high=%d low=%d", yHigh, yLow)
	}

	cx, cy := p.ToCell(core.V(1.3, 2.1))
	back := p.ToWorld(cx, cy)
	bx, by := p.ToCell(back)
	if bx != cx || by != cy {
		t.Errorf("ToWorld/ToCell mismatch: (%d,%d) -> %v -> (%d,%d)", cx, cy, back, bx, by)
	}
}

func TestProjectionDegenerate(t *testing.T) {
	p := NewProjection(config.Bounds{}, 10, 10)
	if !p.ToWorld(3, 3).IsZero() {
		t.Error("empty projection should map to origin")
	}
}

func TestRenderDrawsHUDAndBall(t *testing.T) {
	s := newTestSession(t)
	s.Frame(1.0 / 60)

	screen := core.NewScreen(80, 23)
	r := NewTableRenderer(s, 80, 23)
	r.Render(s, screen, false)

	text := screen.String()
	for _, want := range []string{"LIVES: 0", "Classic", "PRESS 'SPACE' TO START"} {
		if !strings.Contains(text, want) {
			t.Errorf("screen missing %q", want)
		}
	}

	bx, by := r.Projection().ToCell(s.World().Position(s.World().Ball()))
	if got := screen.Get(bx, by); got != BallChar {
		t.Errorf("ball cell = %q, want %q", got, BallChar)
	}

	r.Render(s, screen, true)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused screen should say PAUSED")
	}
}

func TestSlopeGlyph(t *testing.T) {
	tests := []struct {
		dx, dy int
		want   rune
	}{
		{10, 0, '─'},
		{0, 10, '│'},
		{5, 5, '\\'},
		{5, -5, '/'},
	}
	for _, tt := range tests {
		if got := slopeGlyph(tt.dx, tt.dy); got != tt.want {
			t.Errorf("slopeGlyph(%d,%d) = %q, want %q", tt.dx, tt.dy, got, tt.want)
		}
	}
}
