//go:build unit

package sessiontoken_test

import (
	"testing"
	"time"

	"repair-storefront/internal/pkg/sessiontoken"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionToken(t *testing.T) {
	svc := sessiontoken.NewService("test-secret", time.Hour)

	t.Run("round trip", func(t *testing.T) {
		id := uuid.New()
		token, err := svc.Mint(id)
		require.NoError(t, err)

		got, err := svc.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, id, got)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := svc.Verify("not-a-token")
		assert.ErrorIs(t, err, sessiontoken.ErrInvalidToken)
	})

	t.Run("rejects wrong secret", func(t *testing.T) {
		other := sessiontoken.NewService("other-secret", time.Hour)
		token, err := other.Mint(uuid.New())
		require.NoError(t, err)

		_, err = svc.Verify(token)
		assert.ErrorIs(t, err, sessiontoken.ErrInvalidToken)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		expired := sessiontoken.NewService("test-secret", -time.Minute)
		token, err := expired.Mint(uuid.New())
		require.NoError(t, err)

		_, err = svc.Verify(token)
		assert.ErrorIs(t, err, sessiontoken.ErrExpiredToken)
	})
}
