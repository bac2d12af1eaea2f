//go:build unit

package commands_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"repair-storefront/internal/domain/modal"
	"repair-storefront/internal/domain/quote"
	"repair-storefront/internal/domain/session"
	"repair-storefront/internal/infra"
	"repair-storefront/internal/infra/inquiry"
	"repair-storefront/internal/pkg/errs"
	"repair-storefront/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubInquiryGateway struct {
	result   inquiry.Result
	err      error
	received []inquiry.Submission
	onCall   func()
}

func (s *stubInquiryGateway) CreateInquiry(_ context.Context, sub inquiry.Submission) (inquiry.Result, error) {
	s.received = append(s.received, sub)
	if s.onCall != nil {
		s.onCall()
	}
	return s.result, s.err
}

func bookingSession(t *testing.T) *session.Session {
	t.Helper()
	sess := session.New(uuid.New(), time.Now())
	sess.SetAuthenticated(session.Profile{Name: "Asha", Mobile: "9876543210"})
	require.NoError(t, sess.Toggle("dev-1", "iPhone 16",
		quote.ServiceItem{ID: "svc-battery", Title: "Battery Issue", Price: 7990}))
	sess.Coordinator().Open(modal.KindBooking, commands.BookingView{
		Quote:  sess.BuildQuote(""),
		Status: commands.BookingStatusIdle,
	})
	return sess
}

func TestSubmitBooking(t *testing.T) {
	logger := slog.Default()

	t.Run("success closes the modal and confirms", func(t *testing.T) {
		gw := &stubInquiryGateway{result: inquiry.Result{Success: true, Reference: "INQ-1"}}
		uc := commands.NewBookingCommands(gw, logger)
		sess := bookingSession(t)

		result, err := uc.SubmitBooking(context.Background(), sess, "Asha", "9876543210")
		require.NoError(t, err)
		assert.True(t, result.Confirmed)
		assert.Equal(t, "INQ-1", result.Reference)
		assert.False(t, sess.Coordinator().Current().IsOpen())

		require.Len(t, gw.received, 1)
		sub := gw.received[0]
		assert.Equal(t, "Asha", sub.Name)
		assert.Equal(t, "9876543210", sub.MobileNumber)
		assert.Equal(t, "iPhone 16", sub.DeviceModel)
		require.Len(t, sub.SelectedServices, 1)
		assert.Equal(t, "Battery Issue", sub.SelectedServices[0].Name)
		assert.Equal(t, int64(7990), sub.TotalEstimatedPrice)
	})

	t.Run("rejection keeps the modal open with an error", func(t *testing.T) {
		gw := &stubInquiryGateway{
			result: inquiry.Result{Success: false},
			err:    infra.WrapGatewayErr(logger, infra.KindRejected, "inquiry rejected by upstream", nil),
		}
		uc := commands.NewBookingCommands(gw, logger)
		sess := bookingSession(t)

		_, err := uc.SubmitBooking(context.Background(), sess, "Asha", "9876543210")
		assert.ErrorIs(t, err, errs.ErrBookingRejected)

		state := sess.Coordinator().Current()
		require.True(t, state.IsOpen())
		view, ok := state.Payload.(commands.BookingView)
		require.True(t, ok)
		assert.Equal(t, commands.BookingStatusError, view.Status)
		assert.NotEmpty(t, view.Error)
		assert.Equal(t, int64(7990), view.Quote.TotalEstimatedPrice, "quote must survive for retry")
	})

	t.Run("transport failure maps to unreachable", func(t *testing.T) {
		gw := &stubInquiryGateway{
			err: infra.WrapGatewayErr(logger, infra.KindTimeout, "inquiry request timed out", context.DeadlineExceeded),
		}
		uc := commands.NewBookingCommands(gw, logger)
		sess := bookingSession(t)

		_, err := uc.SubmitBooking(context.Background(), sess, "Asha", "9876543210")
		assert.ErrorIs(t, err, errs.ErrInquiryUnreachable)
		assert.True(t, sess.Coordinator().Current().IsOpen())
	})

	t.Run("requires an open booking modal", func(t *testing.T) {
		gw := &stubInquiryGateway{}
		uc := commands.NewBookingCommands(gw, logger)
		sess := session.New(uuid.New(), time.Now())

		_, err := uc.SubmitBooking(context.Background(), sess, "Asha", "9876543210")
		assert.ErrorIs(t, err, errs.ErrModalNotOpen)

		sess.Coordinator().Open(modal.KindLogin, nil)
		_, err = uc.SubmitBooking(context.Background(), sess, "Asha", "9876543210")
		assert.ErrorIs(t, err, errs.ErrModalNotOpen)
		assert.Empty(t, gw.received)
	})

	t.Run("rejects blank contact details", func(t *testing.T) {
		gw := &stubInquiryGateway{}
		uc := commands.NewBookingCommands(gw, logger)
		sess := bookingSession(t)

		_, err := uc.SubmitBooking(context.Background(), sess, "  ", "9876543210")
		assert.ErrorIs(t, err, errs.ErrContactInvalid)
		_, err = uc.SubmitBooking(context.Background(), sess, "Asha", "")
		assert.ErrorIs(t, err, errs.ErrContactInvalid)
		assert.Empty(t, gw.received)
	})

	t.Run("refuses a second submit while in flight", func(t *testing.T) {
		gw := &stubInquiryGateway{result: inquiry.Result{Success: true}}
		uc := commands.NewBookingCommands(gw, logger)
		sess := bookingSession(t)

		gw.onCall = func() {
			_, err := uc.SubmitBooking(context.Background(), sess, "Asha", "9876543210")
			assert.ErrorIs(t, err, errs.ErrBookingInFlight)
		}

		_, err := uc.SubmitBooking(context.Background(), sess, "Asha", "9876543210")
		require.NoError(t, err)
		require.Len(t, gw.received, 1)
	})

	t.Run("stale success is discarded, not applied", func(t *testing.T) {
		gw := &stubInquiryGateway{result: inquiry.Result{Success: true, Reference: "INQ-9"}}
		uc := commands.NewBookingCommands(gw, logger)
		sess := bookingSession(t)

		// The user opens a different modal while the submission is in flight.
		gw.onCall = func() {
			sess.Coordinator().Open(modal.KindFindModel, "fresh")
		}

		result, err := uc.SubmitBooking(context.Background(), sess, "Asha", "9876543210")
		require.NoError(t, err)
		assert.False(t, result.Confirmed)

		state := sess.Coordinator().Current()
		assert.Equal(t, modal.KindFindModel, state.Kind)
		assert.Equal(t, "fresh", state.Payload, "late result must not touch the new modal")
	})
}
