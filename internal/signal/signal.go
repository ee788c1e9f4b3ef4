// Copyright (c) 2025 Conduit
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package signal implements a minimal observable cell: a value that notifies
// subscribers on change and replays its latest value to new subscribers.
//
// Emissions are equality-suppressed: setting a value equal to the current one
// does not re-notify. This is a contract, not an optimization; downstream
// mount/unmount logic keys off every delivered emission.
package signal

import "sync"

// Signal holds one value of type T and a set of observers.
//
// Delivery is synchronous and strictly ordered: observers run on the goroutine
// that called Set, while the signal lock is held, so every observer sees
// transitions in the same relative order they occurred. Observers must not
// call back into the same Signal.
type Signal[T any] struct {
	mu    sync.Mutex
	value T
	eq    func(a, b T) bool
	subs  map[int]func(T)
	next  int
}

// Subscription detaches a single observer. Unsubscribe is idempotent.
type Subscription struct {
	once   sync.Once
	cancel func()
}

// Unsubscribe removes the observer; it never fires again after this returns.
func (s *Subscription) Unsubscribe() {
	s.once.Do(s.cancel)
}

// New creates a signal holding initial. eq decides whether two values are
// semantically equal for emission suppression; nil means every Set emits.
func New[T any](initial T, eq func(a, b T) bool) *Signal[T] {
	return &Signal[T]{
		value: initial,
		eq:    eq,
		subs:  make(map[int]func(T)),
	}
}

// Get returns the current value.
func (s *Signal[T]) Get() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Set stores v and notifies all observers, unless v equals the current value.
func (s *Signal[T]) Set(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.eq != nil && s.eq(s.value, v) {
		return
	}
	s.value = v
	for _, fn := range s.subs {
		fn(v)
	}
}

// Subscribe registers fn and synchronously delivers the current value before
// returning, so new observers never wait for the next change.
func (s *Signal[T]) Subscribe(fn func(T)) *Subscription {
	s.mu.Lock()
	id := s.next
	s.next++
	s.subs[id] = fn
	v := s.value
	fn(v)
	s.mu.Unlock()

	return &Subscription{cancel: func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}}
}
