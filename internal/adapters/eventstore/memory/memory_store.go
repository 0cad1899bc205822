// Package memory provides the reference in-memory event store. It is the
// only store the write model ships with; durable stores are external
// collaborators implementing the same port.
package memory

import (
	"sync"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_app/internal/core/ports/repositories"
)

// Store holds the event log as a slice in append order.
//
// Writes are expected to come from a single writer (the mailbox loop); the
// lock exists so that concurrent readers taking snapshots never observe a
// log mid-append.
type Store struct {
	mu   sync.RWMutex
	data []domain.Event
}

// Ensure Store implements the event store port.
var _ portsrepo.EventStore = (*Store)(nil)

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Append adds one event unconditionally.
func (s *Store) Append(event domain.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append(s.data, event)
}

// All returns a copy of the full log in append order. Later appends never
// show up in a previously returned snapshot.
func (s *Store) All() []domain.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot := make([]domain.Event, len(s.data))
	copy(snapshot, s.data)
	return snapshot
}

// Evolve runs producer against the current log and appends its events only
// on success. The producer's error is returned unmodified; a failed call
// leaves the log untouched.
func (s *Store) Evolve(producer portsrepo.Producer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	newEvents, err := producer(s.data)
	if err != nil {
		return err
	}
	s.data = append(s.data, newEvents...)
	return nil
}
