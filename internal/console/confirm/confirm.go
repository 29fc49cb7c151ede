// Package confirm implements the single-slot confirmation channel that
// destructive actions traverse before running. A requester blocks until
// whatever surface currently shows the prompt resolves it; the slot holds
// at most one outstanding request at a time and enforces that itself.
package confirm

import (
	"context"
	"errors"
	"sync"
)

// ErrRequestPending is returned when a confirmation is requested while an
// earlier one is still unresolved.
var ErrRequestPending = errors.New("a confirmation is already pending")

// Options describes the prompt shown to the operator.
type Options struct {
	Title        string
	Message      string
	ConfirmLabel string
	CancelLabel  string
}

type pending struct {
	opts   Options
	result chan bool
}

// Service is the confirmation slot. The zero value is not usable; call New.
type Service struct {
	mu      sync.Mutex
	current *pending
}

func New() *Service {
	return &Service{}
}

// Request publishes the prompt and blocks until Confirm or Cancel resolves
// it, or ctx ends. A second request while one is pending fails immediately
// with ErrRequestPending rather than silently dropping either caller.
func (s *Service) Request(ctx context.Context, opts Options) (bool, error) {
	if opts.ConfirmLabel == "" {
		opts.ConfirmLabel = "Confirm"
	}
	if opts.CancelLabel == "" {
		opts.CancelLabel = "Cancel"
	}

	req := &pending{opts: opts, result: make(chan bool, 1)}

	s.mu.Lock()
	if s.current != nil {
		s.mu.Unlock()
		return false, ErrRequestPending
	}
	s.current = req
	s.mu.Unlock()

	select {
	case v := <-req.result:
		return v, nil
	case <-ctx.Done():
		// Abandoned request frees the slot so the next one starts clean.
		s.mu.Lock()
		if s.current == req {
			s.current = nil
		}
		s.mu.Unlock()
		return false, ctx.Err()
	}
}

// Pending returns the currently published prompt, if any.
func (s *Service) Pending() (Options, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return Options{}, false
	}
	return s.current.opts, true
}

// Confirm resolves the pending request to true. No-op when nothing is pending.
func (s *Service) Confirm() { s.resolve(true) }

// Cancel resolves the pending request to false. No-op when nothing is pending.
func (s *Service) Cancel() { s.resolve(false) }

// resolve clears the slot and delivers the answer atomically with respect
// to new requests: once the lock is released a fresh Request may proceed.
func (s *Service) resolve(answer bool) {
	s.mu.Lock()
	req := s.current
	s.current = nil
	s.mu.Unlock()

	if req != nil {
		req.result <- answer
	}
}
