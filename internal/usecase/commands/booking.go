package commands

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"repair-storefront/internal/domain/modal"
	"repair-storefront/internal/domain/quote"
	"repair-storefront/internal/domain/session"
	"repair-storefront/internal/infra"
	"repair-storefront/internal/infra/inquiry"
	"repair-storefront/internal/pkg/errs"
)

type BookingStatus string

const (
	BookingStatusIdle    BookingStatus = "idle"
	BookingStatusPending BookingStatus = "pending"
	BookingStatusError   BookingStatus = "error"
	BookingStatusSuccess BookingStatus = "success"
)

// BookingView is the booking modal's payload: the quote snapshot plus the
// submission status the rendering layer shows (pending spinner, error
// banner). The quote is never modified after hand-off.
type BookingView struct {
	Quote  quote.QuotePayload `json:"quote"`
	Status BookingStatus      `json:"status"`
	Error  string             `json:"error,omitempty"`
}

type SubmitBookingResult struct {
	Reference string
	Confirmed bool
}

type BookingCommands interface {
	SubmitBooking(ctx context.Context, sess *session.Session, name, mobile string) (*SubmitBookingResult, error)
}

type bookingCommandsImpl struct {
	inquiries InquiryGateway
	logger    *slog.Logger
}

func NewBookingCommands(inquiries InquiryGateway, logger *slog.Logger) BookingCommands {
	return &bookingCommandsImpl{
		inquiries: inquiries,
		logger:    logger,
	}
}

// SubmitBooking combines the contact fields with the booking modal's quote
// payload and posts the inquiry. While the call is in flight the modal shows
// pending and further submits are refused. On success the modal closes; on
// failure it stays open with the error recorded so the user can retry without
// re-entering anything. A result that lands after the modal was closed or
// replaced is discarded via the generation check.
func (b *bookingCommandsImpl) SubmitBooking(ctx context.Context, sess *session.Session, name, mobile string) (*SubmitBookingResult, error) {
	name = strings.TrimSpace(name)
	mobile = strings.TrimSpace(mobile)
	if name == "" || mobile == "" {
		return nil, errs.ErrContactInvalid
	}

	coord := sess.Coordinator()
	state := coord.Current()
	if state.Kind != modal.KindBooking {
		return nil, errs.ErrModalNotOpen
	}
	view, ok := state.Payload.(BookingView)
	if !ok {
		return nil, errs.ErrModalNotOpen
	}

	if !sess.BeginSubmission() {
		return nil, errs.ErrBookingInFlight
	}
	defer sess.EndSubmission()

	coord.Mutate(state.Generation, func(any) any {
		return BookingView{Quote: view.Quote, Status: BookingStatusPending}
	})

	result, err := b.inquiries.CreateInquiry(ctx, inquiry.Submission{
		Name:                name,
		MobileNumber:        mobile,
		DeviceModel:         view.Quote.DeviceModel,
		SelectedServices:    view.Quote.SelectedServices,
		TotalEstimatedPrice: view.Quote.TotalEstimatedPrice,
	})
	if err != nil {
		mapped := mapInquiryErr(err)
		applied := coord.Mutate(state.Generation, func(any) any {
			return BookingView{Quote: view.Quote, Status: BookingStatusError, Error: userMessage(mapped)}
		})
		if !applied {
			b.logger.Info("discarding stale booking failure", "session_id", sess.ID())
		}
		return nil, mapped
	}

	applied := coord.Mutate(state.Generation, func(any) any {
		return BookingView{Quote: view.Quote, Status: BookingStatusSuccess}
	})
	if applied {
		coord.Close()
	} else {
		b.logger.Info("discarding stale booking success", "session_id", sess.ID(), "reference", result.Reference)
	}

	return &SubmitBookingResult{
		Reference: result.Reference,
		Confirmed: applied,
	}, nil
}

func mapInquiryErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindRejected):
		return errs.Mark(err, errs.ErrBookingRejected)
	case infra.IsKind(err, infra.KindTimeout), infra.IsKind(err, infra.KindUnavailable):
		return errs.Mark(err, errs.ErrInquiryUnreachable)
	default:
		return errs.Mark(err, errs.ErrInquiryUnreachable)
	}
}

func userMessage(err error) string {
	switch {
	case errors.Is(err, errs.ErrBookingRejected):
		return "Something went wrong. Please try again."
	default:
		return "Failed to reach our team. Please check your connection and retry."
	}
}
