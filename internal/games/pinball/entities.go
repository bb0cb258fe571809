package pinball

import (
	"errors"
	"fmt"
)

// ErrInvalidLayout is wrapped by every registry construction failure.
var ErrInvalidLayout = errors.New("pinball: invalid layout")

// Tier is a coin's point value.
type Tier int

const (
	TierOne   Tier = 1
	TierThree Tier = 3
	TierFive  Tier = 5
)

// TierForSprite maps a coin's visual variant to its tier.
func TierForSprite(sprite string) (Tier, error) {
	switch sprite {
	case "coin1":
		return TierOne, nil
	case "coin3":
		return TierThree, nil
	case "coin5":
		return TierFive, nil
	default:
		return 0, fmt.Errorf("%w: unknown coin sprite %q", ErrInvalidLayout, sprite)
	}
}

// Coin is a collectible with a fixed tier.
type Coin struct {
	Body Handle
	Tier Tier
}

// Spinner is a bar rotated every physics tick. Direction is +1 (counter-clockwise) or -1.
type Spinner struct {
	Body      Handle
	Direction float64
}

// TeleporterPair moves the ball from In to Out.
type TeleporterPair struct {
	In  Handle
	Out Handle
}

// CoinSpec describes a coin before validation.
type CoinSpec struct {
	Body   Handle
	Sprite string
}

// SpinnerSpec describes a spinner before validation.
// Mirrored spinners (negative horizontal scale) turn counter-clockwise.
type SpinnerSpec struct {
	Body     Handle
	Mirrored bool
}

// Entities is the raw set of handles a host hands to NewRegistry.
type Entities struct {
	Ball          Handle
	LeftFlipper   Handle
	RightFlipper  Handle
	Coins         []CoinSpec
	CircleBumpers []Handle
	Spinners      []SpinnerSpec
	Boosters      []Handle
	TeleportIn    []Handle
	TeleportOut   []Handle
}

// EntityRegistry holds the resolved, typed handles for every object on the table.
// It is built once and never changes.
type EntityRegistry struct {
	Ball          Handle
	LeftFlipper   Handle
	RightFlipper  Handle
	Coins         []Coin
	CircleBumpers []Handle
	Spinners      []Spinner
	Boosters      []Handle
	Teleporters   []TeleporterPair
}

// NewRegistry validates e and resolves it into an EntityRegistry.
func NewRegistry(e Entities) (*EntityRegistry, error) {
	if e.Ball == NoHandle {
		return nil, fmt.Errorf("%w: missing ball", ErrInvalidLayout)
	}
	if e.LeftFlipper == NoHandle || e.RightFlipper == NoHandle {
		return nil, fmt.Errorf("%w: missing flipper", ErrInvalidLayout)
	}
	if len(e.TeleportIn) != len(e.TeleportOut) {
		return nil, fmt.Errorf("%w: %d teleporter entries but %d exits",
			ErrInvalidLayout, len(e.TeleportIn), len(e.TeleportOut))
	}

	r := &EntityRegistry{
		Ball:          e.Ball,
		LeftFlipper:   e.LeftFlipper,
		RightFlipper:  e.RightFlipper,
		Coins:         make([]Coin, 0, len(e.Coins)),
		CircleBumpers: make([]Handle, 0, len(e.CircleBumpers)),
		Spinners:      make([]Spinner, 0, len(e.Spinners)),
		Boosters:      make([]Handle, 0, len(e.Boosters)),
		Teleporters:   make([]TeleporterPair, 0, len(e.TeleportIn)),
	}

	for i, c := range e.Coins {
		if c.Body == NoHandle {
			return nil, fmt.Errorf("%w: coin %d has no body", ErrInvalidLayout, i)
		}
		tier, err := TierForSprite(c.Sprite)
		if err != nil {
			return nil, fmt.Errorf("coin %d: %w", i, err)
		}
		r.Coins = append(r.Coins, Coin{Body: c.Body, Tier: tier})
	}

	for i, h := range e.CircleBumpers {
		if h == NoHandle {
			return nil, fmt.Errorf("%w: circle bumper %d has no body", ErrInvalidLayout, i)
		}
		r.CircleBumpers = append(r.CircleBumpers, h)
	}

	for i, s := range e.Spinners {
		if s.Body == NoHandle {
			return nil, fmt.Errorf("%w: spinner %d has no body", ErrInvalidLayout, i)
		}
		dir := -1.0
		if s.Mirrored {
			dir = 1.0
		}
		r.Spinners = append(r.Spinners, Spinner{Body: s.Body, Direction: dir})
	}

	for i, h := range e.Boosters {
		if h == NoHandle {
			return nil, fmt.Errorf("%w: booster %d has no body", ErrInvalidLayout, i)
		}
		r.Boosters = append(r.Boosters, h)
	}

	for i := range e.TeleportIn {
		in, out := e.TeleportIn[i], e.TeleportOut[i]
		if in == NoHandle || out == NoHandle {
			return nil, fmt.Errorf("%w: teleporter %d has no body", ErrInvalidLayout, i)
		}
		r.Teleporters = append(r.Teleporters, TeleporterPair{In: in, Out: out})
	}

	return r, nil
}
