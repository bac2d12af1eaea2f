package modal

import "log/slog"

// Descriptor tells the rendering layer which client component implements a
// modal kind.
type Descriptor struct {
	Kind      Kind
	Component string
}

// Registry is the explicit kind-to-implementation table. Kinds arrive as
// loosely controlled strings from dispatching code, so the miss policy is
// deliberate: resolve to nothing, log for diagnostics, never fail the render.
type Registry struct {
	entries map[Kind]Descriptor
	logger  *slog.Logger
}

func NewRegistry(logger *slog.Logger) *Registry {
	r := &Registry{
		entries: make(map[Kind]Descriptor),
		logger:  logger,
	}
	for _, d := range []Descriptor{
		{Kind: KindLogin, Component: "LoginModal"},
		{Kind: KindFindModel, Component: "FindModelModal"},
		{Kind: KindBooking, Component: "BookingModal"},
		{Kind: KindQuickBooking, Component: "QuickBookingModal"},
	} {
		r.entries[d.Kind] = d
	}
	return r
}

func (r *Registry) Register(d Descriptor) {
	r.entries[d.Kind] = d
}

// Resolve looks up the descriptor for kind. A miss renders nothing: callers
// get ok=false and must treat it as "no modal", not as an error.
func (r *Registry) Resolve(kind Kind) (Descriptor, bool) {
	if kind == KindNone {
		return Descriptor{}, false
	}
	d, ok := r.entries[kind]
	if !ok && r.logger != nil {
		r.logger.Warn("unregistered modal kind requested", "kind", string(kind))
	}
	return d, ok
}

// Known reports whether kind has a registered implementation.
func (r *Registry) Known(kind Kind) bool {
	_, ok := r.entries[kind]
	return ok
}
