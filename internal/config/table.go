package config

// TableLayout describes where every object sits on a table.
// Coordinates are world units, y-up. The layout is static for a session.
type TableLayout struct {
	Name          string           `yaml:"name"`
	Title         string           `yaml:"title"`
	Bounds        Bounds           `yaml:"bounds"`
	Ball          BallLayout       `yaml:"ball"`
	Walls         []Segment        `yaml:"walls"`
	Flippers      FlipperPair      `yaml:"flippers"`
	Coins         []CoinLayout     `yaml:"coins"`
	CircleBumpers []CircleLayout   `yaml:"circle_bumpers"`
	Spinners      []SpinnerLayout  `yaml:"spinners"`
	Boosters      []BoxLayout      `yaml:"boosters"`
	Teleporters   TeleporterLayout `yaml:"teleporters"`
}

// Bounds is the visible extent of the table.
type Bounds struct {
	MinX float64 `yaml:"min_x"`
	MaxX float64 `yaml:"max_x"`
	MinY float64 `yaml:"min_y"`
	MaxY float64 `yaml:"max_y"`
}

// Width returns the horizontal extent.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Contains reports whether p lies inside the bounds, edges included.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Height returns the vertical extent.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// BallLayout places the ball at load time.
type BallLayout struct {
	Start  Point   `yaml:"start"`
	Radius float64 `yaml:"radius"`
}

// Segment is a solid line wall.
type Segment struct {
	From Point `yaml:"from"`
	To   Point `yaml:"to"`
}

// FlipperPair holds both flippers.
type FlipperPair struct {
	Left  FlipperLayout `yaml:"left"`
	Right FlipperLayout `yaml:"right"`
}

// FlipperLayout is a hinged paddle. Angles are degrees, counter-clockwise
// from +X, and describe the direction from pivot to tip.
type FlipperLayout struct {
	Pivot    Point   `yaml:"pivot"`
	Length   float64 `yaml:"length"`
	Rest     float64 `yaml:"rest"`      // Starting angle
	MinAngle float64 `yaml:"min_angle"` // Hinge limit
	MaxAngle float64 `yaml:"max_angle"` // Hinge limit
}

// CoinLayout is a collectible. Sprite selects the point tier.
type CoinLayout struct {
	At     Point   `yaml:"at"`
	Radius float64 `yaml:"radius"`
	Sprite string  `yaml:"sprite"` // coin1, coin3 or coin5
}

// CircleLayout is a round static body or trigger.
type CircleLayout struct {
	At     Point   `yaml:"at"`
	Radius float64 `yaml:"radius"`
}

// SpinnerLayout is a rotating bar. Mirrored spinners turn counter-clockwise.
type SpinnerLayout struct {
	At       Point   `yaml:"at"`
	Length   float64 `yaml:"length"`
	Mirrored bool    `yaml:"mirrored"`
}

// BoxLayout is an axis-aligned trigger zone centered on At.
type BoxLayout struct {
	At     Point   `yaml:"at"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// TeleporterLayout holds index-aligned entry and exit points.
type TeleporterLayout struct {
	In  []CircleLayout `yaml:"in"`
	Out []Point        `yaml:"out"`
}
