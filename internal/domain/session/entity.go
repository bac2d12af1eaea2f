package session

import (
	"sync"
	"time"

	"repair-storefront/internal/domain/modal"
	"repair-storefront/internal/domain/quote"

	"github.com/google/uuid"
)

// Profile is the minimal identity attached to an authenticated session.
type Profile struct {
	Name   string
	Mobile string
}

// Session is one browser visit: a cart scoped to the device being viewed, a
// modal coordinator, and an authentication flag. HTTP handlers run
// concurrently, so all cart access goes through the session lock even though
// each browser session is logically single-threaded.
type Session struct {
	mu sync.Mutex

	id          uuid.UUID
	cart        *quote.Cart
	coordinator *modal.Coordinator

	deviceID    string
	deviceModel string

	authenticated bool
	profile       *Profile

	submitting bool

	lastSeen time.Time
}

func New(id uuid.UUID, now time.Time) *Session {
	return &Session{
		id:          id,
		cart:        quote.NewCart(),
		coordinator: modal.NewCoordinator(),
		lastSeen:    now,
	}
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

// Coordinator is safe to share; it carries its own lock.
func (s *Session) Coordinator() *modal.Coordinator {
	return s.coordinator
}

// Toggle flips membership of item in the cart. The cart belongs to one device
// at a time: when the device context changes the previous selection is
// discarded first, matching a navigation to a different model page.
func (s *Session) Toggle(deviceID, deviceModel string, item quote.ServiceItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if deviceID != s.deviceID {
		s.cart.Clear()
		s.deviceID = deviceID
	}
	if deviceModel != "" {
		s.deviceModel = deviceModel
	}
	return s.cart.Toggle(item)
}

func (s *Session) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
}

// Selection returns an ordered snapshot of the cart plus its total.
func (s *Session) Selection() ([]quote.ServiceItem, int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Items(), s.cart.Total()
}

func (s *Session) IsSelected(serviceID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.IsSelected(serviceID)
}

// BuildQuote snapshots the selection. An explicit deviceModel wins over the
// one remembered from toggling.
func (s *Session) BuildQuote(deviceModel string) quote.QuotePayload {
	s.mu.Lock()
	defer s.mu.Unlock()

	if deviceModel == "" {
		deviceModel = s.deviceModel
	}
	return s.cart.BuildQuotePayload(deviceModel)
}

func (s *Session) DeviceModel() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deviceModel
}

func (s *Session) SetAuthenticated(p Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authenticated = true
	s.profile = &p
}

func (s *Session) ClearAuthenticated() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authenticated = false
	s.profile = nil
}

func (s *Session) IsAuthenticated() (bool, *Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return s.authenticated, nil
	}
	p := *s.profile
	return s.authenticated, &p
}

// BeginSubmission marks a booking submission in flight. A second submit
// while one is pending is refused; stale results are discarded separately by
// the coordinator's generation check.
func (s *Session) BeginSubmission() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitting {
		return false
	}
	s.submitting = true
	return true
}

func (s *Session) EndSubmission() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = false
}

func (s *Session) Touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = now
}

func (s *Session) ExpiredAt(now time.Time, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen) > ttl
}
