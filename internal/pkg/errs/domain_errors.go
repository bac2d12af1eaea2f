package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Session errors
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")

	// Quote errors
	ErrServiceNotFound = errors.New("repair service not found")
	ErrCatalogDegraded = errors.New("catalog temporarily unavailable")

	// Modal errors
	ErrModalNotOpen     = errors.New("no modal open")
	ErrModalKindUnknown = errors.New("unknown modal kind")

	// Booking errors
	ErrBookingInFlight    = errors.New("booking submission already in progress")
	ErrBookingRejected    = errors.New("booking rejected by upstream")
	ErrInquiryUnreachable = errors.New("inquiry service unreachable")
	ErrContactInvalid     = errors.New("invalid contact details")
)
