package commands

import (
	"context"
	"log/slog"

	"repair-storefront/internal/domain/modal"
	"repair-storefront/internal/domain/session"
	"repair-storefront/internal/pkg/errs"
)

type QuoteCommands interface {
	ToggleService(ctx context.Context, sess *session.Session, deviceID, deviceModel, serviceID string) error
	ClearSelection(sess *session.Session)
	RequestQuote(sess *session.Session, deviceModel string) (modal.State, error)
}

type quoteCommandsImpl struct {
	catalog CatalogGateway
	logger  *slog.Logger
}

func NewQuoteCommands(catalogGW CatalogGateway, logger *slog.Logger) QuoteCommands {
	return &quoteCommandsImpl{
		catalog: catalogGW,
		logger:  logger,
	}
}

// ToggleService resolves serviceID against the device's catalog entry and
// flips its membership in the session cart. The catalog is the only source of
// prices; client-supplied amounts are never trusted.
func (q *quoteCommandsImpl) ToggleService(ctx context.Context, sess *session.Session, deviceID, deviceModel, serviceID string) error {
	items, err := q.catalog.Services(ctx, deviceID)
	if err != nil {
		return errs.Mark(err, errs.ErrCatalogDegraded)
	}

	for _, item := range items {
		if item.ID == serviceID {
			return sess.Toggle(deviceID, deviceModel, item)
		}
	}
	return errs.ErrServiceNotFound
}

func (q *quoteCommandsImpl) ClearSelection(sess *session.Session) {
	sess.ClearSelection()
}

// RequestQuote is the "Get Quote" hand-off: snapshot the selection and open
// the booking modal with it. Unauthenticated sessions get the login modal
// instead; the quote snapshot is not carried over, the client re-requests
// after login. An empty selection still builds a valid payload - disabling
// the button at zero total is the client's concern.
func (q *quoteCommandsImpl) RequestQuote(sess *session.Session, deviceModel string) (modal.State, error) {
	authenticated, _ := sess.IsAuthenticated()
	if !authenticated {
		sess.Coordinator().Open(modal.KindLogin, nil)
		return sess.Coordinator().Current(), nil
	}

	payload := sess.BuildQuote(deviceModel)
	sess.Coordinator().Open(modal.KindBooking, BookingView{
		Quote:  payload,
		Status: BookingStatusIdle,
	})
	return sess.Coordinator().Current(), nil
}
