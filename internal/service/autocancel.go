package service

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/Dulllu/netsasa/internal/core/ports"
)

// AutoCancelScheduler implements ports.AutoCancelScheduler with one
// time.AfterFunc timer per in-flight checkout. The expire func runs on the
// timer goroutine; it must tolerate firing after the checkout already went
// terminal, which the registry guard guarantees.
type AutoCancelScheduler struct {
	delay    time.Duration
	onExpire func(checkoutID string)

	mu     sync.Mutex
	timers map[string]*time.Timer
	closed bool
	log    zerolog.Logger
}

var _ ports.AutoCancelScheduler = (*AutoCancelScheduler)(nil)

// NewAutoCancelScheduler creates a scheduler firing after delay. The expire
// func is set separately to break the construction cycle with the checkout
// service.
func NewAutoCancelScheduler(delay time.Duration, log zerolog.Logger) *AutoCancelScheduler {
	return &AutoCancelScheduler{
		delay:  delay,
		timers: make(map[string]*time.Timer),
		log:    log.With().Str("component", "auto_cancel").Logger(),
	}
}

// SetExpireFunc wires the callback invoked when a checkout's timer fires.
// Must be called before the first Schedule.
func (s *AutoCancelScheduler) SetExpireFunc(fn func(checkoutID string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onExpire = fn
}

// Schedule arms the auto-cancel timer for a checkout.
func (s *AutoCancelScheduler) Schedule(checkoutID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	if _, exists := s.timers[checkoutID]; exists {
		return
	}

	s.timers[checkoutID] = time.AfterFunc(s.delay, func() {
		s.mu.Lock()
		delete(s.timers, checkoutID)
		fn := s.onExpire
		s.mu.Unlock()

		s.log.Debug().Str("checkout_id", checkoutID).Msg("auto-cancel timer fired")
		if fn != nil {
			fn(checkoutID)
		}
	})
}

// Stop disarms the timer for a checkout that reached a terminal state via
// webhook. Purely an optimization; a fired timer is a no-op downstream.
func (s *AutoCancelScheduler) Stop(checkoutID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[checkoutID]; ok {
		t.Stop()
		delete(s.timers, checkoutID)
	}
}

// Close disarms all pending timers. Used on shutdown.
func (s *AutoCancelScheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
}
