package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pinball/internal/config"
	"github.com/vovakirdan/tui-pinball/internal/core"
	"github.com/vovakirdan/tui-pinball/internal/games/pinball"
	"github.com/vovakirdan/tui-pinball/internal/physics"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightCyan:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one style run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Glyphs.
const (
	BallChar       = '●'
	FlipperChar    = '='
	SpinnerChar    = 'x'
	BumperChar     = 'O'
	BoosterChar    = '»'
	TeleportChar   = '@'
	ExitChar       = '*'
	FloorChar      = '~'
	hudWidth       = 24
	minHUDScreenW  = 60
	cellAspect     = 2.0 // Terminal cells are about twice as tall as wide
	samplesPerCell = 2
)

// Projection maps world coordinates onto screen cells. World space is
// y-up, screen space is y-down.
type Projection struct {
	bounds config.Bounds
	sx, sy float64 // Cells per world unit
	ox, oy int     // Screen offset of the table's top-left corner
	w, h   int     // Table area in cells
}

// NewProjection fits bounds into a w×h cell area, preserving shape.
func NewProjection(bounds config.Bounds, w, h int) Projection {
	p := Projection{bounds: bounds}
	if w <= 0 || h <= 0 || bounds.Width() <= 0 || bounds.Height() <= 0 {
		return p
	}
	p.sy = float64(h) / bounds.Height()
	p.sx = p.sy * cellAspect
	if bounds.Width()*p.sx > float64(w) {
		p.sx = float64(w) / bounds.Width()
		p.sy = p.sx / cellAspect
	}
	p.w = int(math.Round(bounds.Width() * p.sx))
	p.h = int(math.Round(bounds.Height() * p.sy))
	p.ox = (w - p.w) / 2
	p.oy = (h - p.h) / 2
	return p
}

// ToCell returns the screen cell containing world point v.
func (p Projection) ToCell(v core.Vec2) (int, int) {
	x := p.ox + int(math.Floor((v.X-p.bounds.MinX)*p.sx))
	y := p.oy + int(math.Floor((p.bounds.MaxY-v.Y)*p.sy))
	return x, y
}

// ToWorld returns the world point at the center of cell (x, y).
func (p Projection) ToWorld(x, y int) core.Vec2 {
	if p.sx == 0 || p.sy == 0 {
		return core.Vec2{}
	}
	return core.V(
		p.bounds.MinX+(float64(x-p.ox)+0.5)/p.sx,
		p.bounds.MaxY-(float64(y-p.oy)+0.5)/p.sy,
	)
}

// TableRenderer draws a session onto a screen.
type TableRenderer struct {
	proj   Projection
	hud    bool
	tiers  map[pinball.Handle]pinball.Tier
	width  int
	height int
}

// NewTableRenderer creates a renderer sized for a w×h screen.
func NewTableRenderer(s *Session, w, h int) *TableRenderer {
	r := &TableRenderer{tiers: make(map[pinball.Handle]pinball.Tier)}
	for _, c := range s.Game().Registry().Coins {
		r.tiers[c.Body] = c.Tier
	}
	r.Resize(s.World().Bounds(), w, h)
	return r
}

// Resize recomputes the projection for a new screen size.
func (r *TableRenderer) Resize(bounds config.Bounds, w, h int) {
	r.width, r.height = w, h
	r.hud = w >= minHUDScreenW
	tableW := w
	if r.hud {
		tableW = w - hudWidth
	}
	r.proj = NewProjection(bounds, tableW, h)
}

// Projection returns the current world-to-screen mapping.
func (r *TableRenderer) Projection() Projection {
	return r.proj
}

// Render draws the table, the ball and the HUD.
func (r *TableRenderer) Render(s *Session, screen *core.Screen, paused bool) {
	screen.Clear()
	world := s.World()

	r.drawFloor(screen, world.Bounds())
	for _, b := range world.Bodies() {
		r.drawBody(screen, b)
	}
	// Ball last so it is never hidden.
	if ball, ok := world.Body(world.Ball()); ok {
		x, y := r.proj.ToCell(ball.Pos)
		screen.SetColored(x, y, BallChar, core.ColorWhite)
	}

	prompt := s.Text(pinball.LabelPrompt)
	if paused {
		prompt = "PAUSED"
	}
	if prompt != "" {
		cx := r.proj.ox + r.proj.w/2 - len(prompt)/2
		screen.DrawTextColored(cx, r.proj.oy+r.proj.h/2, prompt, core.ColorBrightYellow)
	}

	if r.hud {
		r.drawHUD(screen, s)
	}
}

func (r *TableRenderer) drawFloor(screen *core.Screen, b config.Bounds) {
	x0, y := r.proj.ToCell(core.V(b.MinX, b.MinY))
	x1, _ := r.proj.ToCell(core.V(b.MaxX, b.MinY))
	for x := x0; x < x1; x++ {
		screen.SetColored(x, y-1, FloorChar, core.ColorGray)
	}
}

func (r *TableRenderer) drawBody(screen *core.Screen, b physics.Body) {
	switch b.Kind {
	case physics.KindWall:
		s, e := b.Segment()
		r.drawSegment(screen, s, e, 0, core.ColorGray)
	case physics.KindFlipper:
		s, e := b.Segment()
		r.drawSegment(screen, s, e, FlipperChar, core.ColorBrightYellow)
	case physics.KindSpinner:
		s, e := b.Segment()
		r.drawSegment(screen, s, e, SpinnerChar, core.ColorCyan)
	case physics.KindBumper:
		r.fillCircle(screen, b.Pos, b.Radius, BumperChar, core.ColorMagenta)
	case physics.KindCoin:
		if !b.Active {
			return
		}
		x, y := r.proj.ToCell(b.Pos)
		screen.SetColored(x, y, coinGlyph(r.tiers[b.Handle]), core.ColorYellow)
	case physics.KindBooster:
		r.fillBox(screen, b.Pos, b.Width, b.Height, BoosterChar, core.ColorRed)
	case physics.KindTeleporter:
		x, y := r.proj.ToCell(b.Pos)
		screen.SetColored(x, y, TeleportChar, core.ColorBlue)
	case physics.KindMarker:
		x, y := r.proj.ToCell(b.Pos)
		screen.SetColored(x, y, ExitChar, core.ColorBrightCyan)
	}
}

func coinGlyph(t pinball.Tier) rune {
	switch t {
	case pinball.TierThree:
		return '3'
	case pinball.TierFive:
		return '5'
	default:
		return '1'
	}
}

// drawSegment plots a line. A zero glyph picks one from the line's slope.
func (r *TableRenderer) drawSegment(screen *core.Screen, a, b core.Vec2, glyph rune, c core.Color) {
	ax, ay := r.proj.ToCell(a)
	bx, by := r.proj.ToCell(b)
	if glyph == 0 {
		glyph = slopeGlyph(bx-ax, by-ay)
	}

	cells := core.Max(core.Abs(bx-ax), core.Abs(by-ay))
	n := (cells + 1) * samplesPerCell
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		x, y := r.proj.ToCell(a.Add(b.Sub(a).Scale(t)))
		screen.SetColored(x, y, glyph, c)
	}
}

func slopeGlyph(dx, dy int) rune {
	adx, ady := core.Abs(dx), core.Abs(dy)
	switch {
	case ady*2 <= adx:
		return '─'
	case adx*2 <= ady:
		return '│'
	case (dx > 0) == (dy > 0):
		return '\\'
	default:
		return '/'
	}
}

func (r *TableRenderer) fillCircle(screen *core.Screen, center core.Vec2, radius float64, glyph rune, c core.Color) {
	x0, y0 := r.proj.ToCell(center.Add(core.V(-radius, radius)))
	x1, y1 := r.proj.ToCell(center.Add(core.V(radius, -radius)))
	drawn := false
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if r.proj.ToWorld(x, y).Sub(center).Len() <= radius {
				screen.SetColored(x, y, glyph, c)
				drawn = true
			}
		}
	}
	if !drawn {
		x, y := r.proj.ToCell(center)
		screen.SetColored(x, y, glyph, c)
	}
}

func (r *TableRenderer) fillBox(screen *core.Screen, center core.Vec2, w, h float64, glyph rune, c core.Color) {
	x0, y0 := r.proj.ToCell(center.Add(core.V(-w/2, h/2)))
	x1, y1 := r.proj.ToCell(center.Add(core.V(w/2, -h/2)))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			screen.SetColored(x, y, glyph, c)
		}
	}
}

func (r *TableRenderer) drawHUD(screen *core.Screen, s *Session) {
	x := r.width - hudWidth + 2
	y := 1
	screen.DrawBox(core.NewRect(r.width-hudWidth, 0, hudWidth-1, 9), core.ColorGray)

	screen.DrawTextColored(x, y, "P I N B A L L", core.ColorBrightCyan)
	y += 2
	screen.DrawTextColored(x, y, s.Table().Title, core.ColorGray)
	y += 2

	for _, line := range strings.Split(s.Text(pinball.LabelStatus), "\n") {
		screen.DrawTextColored(x, y, line, core.ColorWhite)
		y++
	}
}
