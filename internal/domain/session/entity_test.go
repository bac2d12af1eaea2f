//go:build unit

package session_test

import (
	"testing"
	"time"

	"repair-storefront/internal/domain/quote"
	"repair-storefront/internal/domain/session"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession() *session.Session {
	return session.New(uuid.New(), time.Now())
}

func TestSessionDeviceScope(t *testing.T) {
	t.Run("cart is discarded when the device changes", func(t *testing.T) {
		s := newSession()
		require.NoError(t, s.Toggle("dev-1", "iPhone 16", quote.ServiceItem{ID: "a", Title: "Battery Issue", Price: 7990}))

		_, total := s.Selection()
		assert.Equal(t, int64(7990), total)

		require.NoError(t, s.Toggle("dev-2", "iPhone 15", quote.ServiceItem{ID: "b", Title: "Charging Issue", Price: 7600}))

		items, total := s.Selection()
		require.Len(t, items, 1)
		assert.Equal(t, "b", items[0].ID)
		assert.Equal(t, int64(7600), total)
	})

	t.Run("quote uses the remembered device model", func(t *testing.T) {
		s := newSession()
		require.NoError(t, s.Toggle("dev-1", "iPhone 16", quote.ServiceItem{ID: "a", Title: "Battery Issue", Price: 7990}))

		payload := s.BuildQuote("")
		assert.Equal(t, "iPhone 16", payload.DeviceModel)

		payload = s.BuildQuote("Pixel 9")
		assert.Equal(t, "Pixel 9", payload.DeviceModel)
	})

	t.Run("quote without any device context falls back to placeholder", func(t *testing.T) {
		s := newSession()
		payload := s.BuildQuote("")
		assert.Equal(t, quote.DefaultDeviceModel, payload.DeviceModel)
	})
}

func TestSessionAuthentication(t *testing.T) {
	s := newSession()

	ok, profile := s.IsAuthenticated()
	assert.False(t, ok)
	assert.Nil(t, profile)

	s.SetAuthenticated(session.Profile{Name: "Asha", Mobile: "9876543210"})
	ok, profile = s.IsAuthenticated()
	require.True(t, ok)
	require.NotNil(t, profile)
	assert.Equal(t, "Asha", profile.Name)

	s.ClearAuthenticated()
	ok, _ = s.IsAuthenticated()
	assert.False(t, ok)
}

func TestSessionSubmissionGuard(t *testing.T) {
	s := newSession()

	assert.True(t, s.BeginSubmission())
	assert.False(t, s.BeginSubmission(), "second submit while pending must be refused")

	s.EndSubmission()
	assert.True(t, s.BeginSubmission())
}

func TestSessionExpiry(t *testing.T) {
	now := time.Now()
	s := session.New(uuid.New(), now)

	assert.False(t, s.ExpiredAt(now.Add(30*time.Minute), time.Hour))
	assert.True(t, s.ExpiredAt(now.Add(2*time.Hour), time.Hour))

	s.Touch(now.Add(2 * time.Hour))
	assert.False(t, s.ExpiredAt(now.Add(2*time.Hour+time.Minute), time.Hour))
}
