//go:build unit

package queries_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"repair-storefront/internal/domain/modal"
	"repair-storefront/internal/domain/quote"
	"repair-storefront/internal/domain/session"
	"repair-storefront/internal/infra"
	"repair-storefront/internal/infra/catalog"
	"repair-storefront/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	brands   []catalog.Brand
	services []quote.ServiceItem
	err      error
}

func (s *stubSource) Brands(context.Context) ([]catalog.Brand, error) {
	return s.brands, s.err
}

func (s *stubSource) Devices(context.Context, string) ([]catalog.Device, error) {
	return nil, s.err
}

func (s *stubSource) Services(context.Context, string) ([]quote.ServiceItem, error) {
	return s.services, s.err
}

func TestCatalogQueries(t *testing.T) {
	logger := slog.Default()

	t.Run("maps brands to views", func(t *testing.T) {
		img := "https://cdn.example/apple.png"
		src := &stubSource{brands: []catalog.Brand{{ID: "b1", Name: "Apple", Image: &img}}}
		q := queries.NewCatalogQueries(src, logger)

		view := q.Brands(context.Background())
		require.Len(t, view.Brands, 1)
		assert.Equal(t, "Apple", view.Brands[0].Name)
		require.NotNil(t, view.Brands[0].Image)
		assert.False(t, view.Degraded)
	})

	t.Run("outage degrades to an empty list, never an error", func(t *testing.T) {
		src := &stubSource{err: infra.WrapGatewayErr(logger, infra.KindUnavailable, "catalog unreachable", nil)}
		q := queries.NewCatalogQueries(src, logger)

		view := q.Brands(context.Background())
		assert.Empty(t, view.Brands)
		assert.True(t, view.Degraded)
	})

	t.Run("unknown id is empty but not degraded", func(t *testing.T) {
		src := &stubSource{err: infra.WrapGatewayErr(logger, infra.KindNotFound, "catalog entity not found", nil)}
		q := queries.NewCatalogQueries(src, logger)

		view := q.Devices(context.Background(), "nope")
		assert.Empty(t, view.Devices)
		assert.False(t, view.Degraded)
	})

	t.Run("services carry selection state and formatted prices", func(t *testing.T) {
		src := &stubSource{services: []quote.ServiceItem{
			{ID: "svc-display", Title: "Display Broken", Price: 38500, IsActive: true},
			{ID: "svc-battery", Title: "Battery Issue", Price: 7990, IsActive: true},
		}}
		q := queries.NewCatalogQueries(src, logger)

		sess := session.New(uuid.New(), time.Now())
		require.NoError(t, sess.Toggle("dev-1", "iPhone 16",
			quote.ServiceItem{ID: "svc-display", Title: "Display Broken", Price: 38500}))

		view := q.Services(context.Background(), "dev-1", sess)
		require.Len(t, view.Services, 2)
		assert.True(t, view.Services[0].Selected)
		assert.Equal(t, "₹38,500", view.Services[0].FormattedPrice)
		assert.False(t, view.Services[1].Selected)
	})
}

func TestQuoteQueries(t *testing.T) {
	q := queries.NewQuoteQueries()
	sess := session.New(uuid.New(), time.Now())

	view := q.Selection(sess)
	assert.Zero(t, view.Total)
	assert.Equal(t, "₹0", view.FormattedTotal)
	assert.Empty(t, view.Items)

	require.NoError(t, sess.Toggle("dev-1", "iPhone 16",
		quote.ServiceItem{ID: "svc-battery", Title: "Battery Issue", Price: 7990}))
	require.NoError(t, sess.Toggle("dev-1", "iPhone 16",
		quote.ServiceItem{ID: "svc-charging", Title: "Charging Issue", Price: 7600}))

	view = q.Selection(sess)
	assert.Equal(t, int64(15590), view.Total)
	assert.Equal(t, "₹15,590", view.FormattedTotal)
	assert.Equal(t, 2, view.Count)
}

func TestModalQueries(t *testing.T) {
	registry := modal.NewRegistry(slog.Default())
	q := queries.NewModalQueries(registry)

	t.Run("closed", func(t *testing.T) {
		sess := session.New(uuid.New(), time.Now())
		view := q.Active(sess)
		assert.False(t, view.Open)
		assert.Equal(t, "none", view.Kind)
	})

	t.Run("open booking resolves its component", func(t *testing.T) {
		sess := session.New(uuid.New(), time.Now())
		sess.Coordinator().Open(modal.KindBooking, "payload")

		view := q.Active(sess)
		assert.True(t, view.Open)
		assert.Equal(t, "booking", view.Kind)
		assert.Equal(t, "BookingModal", view.Component)
		assert.Equal(t, "payload", view.Payload)
	})

	t.Run("unregistered kind renders nothing", func(t *testing.T) {
		sess := session.New(uuid.New(), time.Now())
		sess.Coordinator().Open(modal.Kind("BOOKING"), "payload")

		view := q.Active(sess)
		assert.False(t, view.Open)
		assert.Equal(t, "none", view.Kind)
	})
}
