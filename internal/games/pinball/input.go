package pinball

import "github.com/vovakirdan/tui-pinball/internal/core"

// Deactivate removes the handlers installed by Activate. Calling it more
// than once is harmless.
type Deactivate func()

// InputDispatcher maps player actions onto the game.
type InputDispatcher struct {
	game   *Game
	active Deactivate
}

// Activate subscribes the start, flip and quit handlers on bus. While the
// dispatcher is active a second call returns the existing token and adds
// no subscriptions.
func (d *InputDispatcher) Activate(bus *core.EventBus) Deactivate {
	if d.active != nil {
		return d.active
	}

	subs := []core.Subscription{
		bus.Subscribe(core.ActionStart, func(core.Action) { d.game.Start() }),
		bus.Subscribe(core.ActionFlipLeft, func(core.Action) { d.game.FlipLeft() }),
		bus.Subscribe(core.ActionFlipRight, func(core.Action) { d.game.FlipRight() }),
		bus.Subscribe(core.ActionQuit, func(core.Action) { d.game.Quit() }),
	}

	done := false
	d.active = func() {
		if done {
			return
		}
		done = true
		for _, s := range subs {
			bus.Unsubscribe(s)
		}
		d.active = nil
	}
	return d.active
}

// Active reports whether handlers are currently subscribed.
func (d *InputDispatcher) Active() bool {
	return d.active != nil
}
