package queries

import (
	"repair-storefront/internal/domain/modal"
	"repair-storefront/internal/domain/session"
)

type ModalQueries interface {
	Active(sess *session.Session) ModalView
}

type modalQueriesImpl struct {
	registry *modal.Registry
}

func NewModalQueries(registry *modal.Registry) ModalQueries {
	return &modalQueriesImpl{registry: registry}
}

// Active resolves the session's modal through the registry. A closed
// coordinator and an unregistered kind both come back as "none": the
// lookup-miss policy is render-nothing, never an error.
func (m *modalQueriesImpl) Active(sess *session.Session) ModalView {
	state := sess.Coordinator().Current()
	if !state.IsOpen() {
		return ModalView{Kind: string(modal.KindNone)}
	}

	descriptor, ok := m.registry.Resolve(state.Kind)
	if !ok {
		return ModalView{Kind: string(modal.KindNone)}
	}

	return ModalView{
		Open:      true,
		Kind:      string(state.Kind),
		Component: descriptor.Component,
		Payload:   state.Payload,
	}
}
