package modal

import "sync"

// Kind identifies which modal a session is showing. String values are the
// canonical dispatch keys; lowercase camel is the single accepted casing.
type Kind string

const (
	KindNone         Kind = "none"
	KindLogin        Kind = "login"
	KindFindModel    Kind = "findModel"
	KindBooking      Kind = "booking"
	KindQuickBooking Kind = "quickBooking"
)

// State is the coordinator's observable state. Generation increases on every
// transition so asynchronous results can detect that the modal they belong to
// has since been closed or replaced.
type State struct {
	Kind       Kind
	Payload    any
	Generation uint64
}

func (s State) IsOpen() bool {
	return s.Kind != KindNone
}

type Subscriber func(State)

// Coordinator is the single source of truth for which modal is open in one
// session and with what payload. At most one modal is open at a time; opening
// replaces, never stacks. All transitions are atomic and subscribers observe
// them synchronously.
type Coordinator struct {
	mu    sync.Mutex
	state State
	subs  []Subscriber
}

func NewCoordinator() *Coordinator {
	return &Coordinator{
		state: State{Kind: KindNone},
	}
}

// Open transitions to Open(kind, payload) regardless of prior state. A
// previously open modal's payload is discarded, not merged. Returns the new
// generation for stale-result checks.
func (c *Coordinator) Open(kind Kind, payload any) uint64 {
	c.mu.Lock()
	c.state = State{
		Kind:       kind,
		Payload:    payload,
		Generation: c.state.Generation + 1,
	}
	state := c.state
	subs := c.subs
	c.mu.Unlock()

	notify(subs, state)
	return state.Generation
}

// Close transitions to Closed regardless of prior state. Closing a closed
// coordinator is a no-op apart from the generation bump.
func (c *Coordinator) Close() {
	c.mu.Lock()
	c.state = State{
		Kind:       KindNone,
		Generation: c.state.Generation + 1,
	}
	state := c.state
	subs := c.subs
	c.mu.Unlock()

	notify(subs, state)
}

func (c *Coordinator) Current() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Mutate replaces the payload through fn iff gen is still the active
// generation. Stale callers (a submission result arriving after the modal was
// closed or replaced) are ignored and get false back.
func (c *Coordinator) Mutate(gen uint64, fn func(payload any) any) bool {
	c.mu.Lock()
	if c.state.Generation != gen || c.state.Kind == KindNone {
		c.mu.Unlock()
		return false
	}
	c.state.Payload = fn(c.state.Payload)
	state := c.state
	subs := c.subs
	c.mu.Unlock()

	notify(subs, state)
	return true
}

// Subscribe registers fn for synchronous notification on every transition.
func (c *Coordinator) Subscribe(fn Subscriber) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs = append(c.subs, fn)
}

func notify(subs []Subscriber, state State) {
	for _, fn := range subs {
		fn(state)
	}
}
