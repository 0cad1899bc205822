package repositories

import "github.com/SscSPs/bookkeeping_app/internal/core/domain"

// Producer inspects a snapshot of the current log and either returns the new
// events to append or a validation error. It must be pure: no mutation of
// the snapshot, no hidden state.
type Producer func(current []domain.Event) ([]domain.Event, error)

// EventReader defines read access to the event log for projections and
// reporting collaborators.
type EventReader interface {
	// All returns the full log in append order as a point-in-time
	// snapshot. The returned slice never changes after the call.
	All() []domain.Event
}

// EventStore is the append-only log the write model evolves. Validation is
// never this layer's job; aggregates decide, the store records.
type EventStore interface {
	EventReader

	// Append adds one event unconditionally.
	Append(event domain.Event)

	// Evolve runs producer against the current log and, only if it
	// succeeds, appends all returned events in order. On failure the log
	// is unchanged and the producer's error is returned unmodified.
	// Events from one call are appended together or not at all.
	Evolve(producer Producer) error
}
