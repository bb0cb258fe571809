package core

import "sort"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionStart            // Space - start a round or continue after a drain
	ActionFlipLeft         // Z, Left arrow - left flipper
	ActionFlipRight        // M, Right arrow - right flipper
	ActionQuit             // Q, Ctrl+C - exit the game
	ActionPause            // P - pause/unpause (handled by the platform)
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionFlipLeft:
		return "FlipLeft"
	case ActionFlipRight:
		return "FlipRight"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// Handler reacts to a single discrete action.
type Handler func(Action)

// Subscription identifies a registered handler.
type Subscription uint64

type binding struct {
	action  Action
	handler Handler
}

// EventBus delivers discrete input actions to subscribed handlers.
// Dispatch is synchronous and happens on the caller's goroutine, so handlers
// may mutate game state without locking. The bus itself is not safe for
// concurrent use.
type EventBus struct {
	next     Subscription
	bindings map[Subscription]binding
}

// NewEventBus creates an empty bus.
func NewEventBus() *EventBus {
	return &EventBus{bindings: make(map[Subscription]binding)}
}

// Subscribe registers h for action a and returns its subscription.
func (b *EventBus) Subscribe(a Action, h Handler) Subscription {
	if b.bindings == nil {
		b.bindings = make(map[Subscription]binding)
	}
	b.next++
	b.bindings[b.next] = binding{action: a, handler: h}
	return b.next
}

// Unsubscribe removes a subscription. Unknown subscriptions are ignored.
func (b *EventBus) Unsubscribe(s Subscription) {
	delete(b.bindings, s)
}

// Dispatch invokes every handler subscribed to a, in subscription order.
// Returns the number of handlers invoked.
func (b *EventBus) Dispatch(a Action) int {
	if a == ActionNone || len(b.bindings) == 0 {
		return 0
	}

	ids := make([]Subscription, 0, len(b.bindings))
	for id, bd := range b.bindings {
		if bd.action == a {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	invoked := 0
	for _, id := range ids {
		// A handler may unsubscribe a later one; skip it if so.
		if bd, ok := b.bindings[id]; ok {
			bd.handler(a)
			invoked++
		}
	}
	return invoked
}

// Subscribers returns how many handlers are registered for a.
func (b *EventBus) Subscribers(a Action) int {
	n := 0
	for _, bd := range b.bindings {
		if bd.action == a {
			n++
		}
	}
	return n
}
