//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"repair-storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestMark(t *testing.T) {
	cause := errs.New("upstream said no")

	t.Run("sentinel is visible to errors.Is", func(t *testing.T) {
		err := errs.Mark(cause, errs.ErrBookingRejected)
		assert.ErrorIs(t, err, errs.ErrBookingRejected)
	})

	t.Run("original cause stays in the chain", func(t *testing.T) {
		err := errs.Mark(cause, errs.ErrBookingRejected)
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "upstream said no")
		assert.Contains(t, err.Error(), errs.ErrBookingRejected.Error())
	})

	t.Run("marking nil yields the sentinel itself", func(t *testing.T) {
		err := errs.Mark(nil, errs.ErrCatalogDegraded)
		assert.Equal(t, errs.ErrCatalogDegraded, err)
	})

	t.Run("distinct sentinels do not cross-match", func(t *testing.T) {
		err := errs.Mark(cause, errs.ErrInquiryUnreachable)
		assert.ErrorIs(t, err, errs.ErrInquiryUnreachable)
		assert.False(t, errors.Is(err, errs.ErrBookingRejected))
	})
}
