package commands

import (
	"encoding/json"
	"log/slog"

	"repair-storefront/internal/domain/modal"
	"repair-storefront/internal/domain/session"
	"repair-storefront/internal/pkg/errs"
)

// ModalCommands lets any component open or close the session's modal. Opening
// an unregistered kind is allowed - the dispatching side is loosely typed -
// and the miss surfaces at render time as "nothing", per the registry policy.
type ModalCommands interface {
	Open(sess *session.Session, kind string, payload json.RawMessage) (modal.State, error)
	Close(sess *session.Session)
}

type modalCommandsImpl struct {
	registry *modal.Registry
	logger   *slog.Logger
}

func NewModalCommands(registry *modal.Registry, logger *slog.Logger) ModalCommands {
	return &modalCommandsImpl{
		registry: registry,
		logger:   logger,
	}
}

func (m *modalCommandsImpl) Open(sess *session.Session, kind string, payload json.RawMessage) (modal.State, error) {
	if kind == "" || kind == string(modal.KindNone) {
		return modal.State{}, errs.ErrModalKindUnknown
	}

	k := modal.Kind(kind)
	if !m.registry.Known(k) {
		m.logger.Warn("opening unregistered modal kind", "kind", kind)
	}

	var body any
	if len(payload) > 0 {
		body = payload
	}
	sess.Coordinator().Open(k, body)
	return sess.Coordinator().Current(), nil
}

func (m *modalCommandsImpl) Close(sess *session.Session) {
	sess.Coordinator().Close()
}
