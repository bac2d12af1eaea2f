package commands

import (
	"log/slog"
	"strings"

	"repair-storefront/internal/domain/modal"
	"repair-storefront/internal/domain/session"
	"repair-storefront/internal/pkg/errs"
)

// AuthCommands flips the session's authentication flag. This is deliberately
// not a credential protocol: the storefront only needs to know who to call
// back, and the booking gate only needs the boolean.
type AuthCommands interface {
	Login(sess *session.Session, name, mobile string) error
	Logout(sess *session.Session)
}

type authCommandsImpl struct {
	logger *slog.Logger
}

func NewAuthCommands(logger *slog.Logger) AuthCommands {
	return &authCommandsImpl{logger: logger}
}

func (a *authCommandsImpl) Login(sess *session.Session, name, mobile string) error {
	name = strings.TrimSpace(name)
	mobile = strings.TrimSpace(mobile)
	if name == "" || mobile == "" {
		return errs.ErrContactInvalid
	}

	sess.SetAuthenticated(session.Profile{Name: name, Mobile: mobile})

	// If the login modal triggered this, dismiss it so the client can retry
	// the booking hand-off.
	if sess.Coordinator().Current().Kind == modal.KindLogin {
		sess.Coordinator().Close()
	}
	return nil
}

func (a *authCommandsImpl) Logout(sess *session.Session) {
	sess.ClearAuthenticated()
}
