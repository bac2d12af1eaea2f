// Package sessionstore keeps live sessions in process memory. Sessions are
// browser-visit scoped by design; nothing here survives a restart and no
// persistence layer backs it.
package sessionstore

import (
	"log/slog"
	"sync"
	"time"

	"repair-storefront/internal/domain/session"
	"repair-storefront/internal/pkg/clock"
	"repair-storefront/internal/pkg/errs"

	"github.com/google/uuid"
)

type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*session.Session

	ttl    time.Duration
	clock  clock.Clock
	logger *slog.Logger

	stop chan struct{}
	once sync.Once
}

func New(ttl time.Duration, clk clock.Clock, logger *slog.Logger) *Store {
	return &Store{
		sessions: make(map[uuid.UUID]*session.Session),
		ttl:      ttl,
		clock:    clk,
		logger:   logger,
		stop:     make(chan struct{}),
	}
}

// Create allocates a fresh session with a new id.
func (s *Store) Create() *session.Session {
	sess := session.New(uuid.New(), s.clock.Now())

	s.mu.Lock()
	s.sessions[sess.ID()] = sess
	s.mu.Unlock()

	return sess
}

// Get returns the live session for id, touching its last-seen time. Expired
// sessions are treated as missing; the caller mints a new one.
func (s *Store) Get(id uuid.UUID) (*session.Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, errs.ErrSessionNotFound
	}

	now := s.clock.Now()
	if sess.ExpiredAt(now, s.ttl) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return nil, errs.ErrSessionExpired
	}

	sess.Touch(now)
	return sess, nil
}

func (s *Store) Delete(id uuid.UUID) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// StartJanitor launches the TTL sweeper. Safe to call once; Stop ends it.
func (s *Store) StartJanitor(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.sweep()
			case <-s.stop:
				return
			}
		}
	}()
}

func (s *Store) Stop() {
	s.once.Do(func() { close(s.stop) })
}

func (s *Store) sweep() {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	var evicted int
	for id, sess := range s.sessions {
		if sess.ExpiredAt(now, s.ttl) {
			delete(s.sessions, id)
			evicted++
		}
	}
	if evicted > 0 {
		s.logger.Debug("evicted expired sessions", "count", evicted, "remaining", len(s.sessions))
	}
}
