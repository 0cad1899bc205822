// Package write contains the write-model aggregates. Each aggregate is a
// transient object: it is rebuilt from a fresh log snapshot at the start of
// a command, validates that one command, emits the resulting events and is
// then discarded. Derived state is never persisted.
package write

import (
	"fmt"
	"sort"

	"github.com/SscSPs/bookkeeping_app/internal/apperrors"
	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
)

// LedgerResolver keeps a tally of all ledger namespaces in the system.
type LedgerResolver struct {
	ledgers map[domain.LedgerID]struct{}
}

// NewLedgerResolver folds LedgerCreated events into the set of known ledgers.
func NewLedgerResolver(history []domain.Event) *LedgerResolver {
	r := &LedgerResolver{
		ledgers: make(map[domain.LedgerID]struct{}),
	}
	for _, event := range history {
		if created, ok := event.(domain.LedgerCreated); ok {
			r.ledgers[created.LedgerID] = struct{}{}
		}
	}
	return r
}

// Create registers a new ledger namespace and returns the event recording it.
func (r *LedgerResolver) Create(id domain.LedgerID) ([]domain.Event, error) {
	if r.Exists(id) {
		return nil, fmt.Errorf("%w: ledger %q", apperrors.ErrLedgerExists, id)
	}
	r.ledgers[id] = struct{}{}
	return []domain.Event{domain.LedgerCreated{LedgerID: id}}, nil
}

// Exists reports whether the ledger id is known.
func (r *LedgerResolver) Exists(id domain.LedgerID) bool {
	_, ok := r.ledgers[id]
	return ok
}

// LedgerIDs returns the known ledger ids in lexical order.
func (r *LedgerResolver) LedgerIDs() []domain.LedgerID {
	ids := make([]domain.LedgerID, 0, len(r.ledgers))
	for id := range r.ledgers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// requireLedger is the guard every per-ledger aggregate runs before any
// further validation: commands against an unknown ledger fail outright.
func requireLedger(id domain.LedgerID, history []domain.Event) error {
	for _, event := range history {
		if created, ok := event.(domain.LedgerCreated); ok && created.LedgerID == id {
			return nil
		}
	}
	return fmt.Errorf("%w: ledger %q", apperrors.ErrLedgerNotFound, id)
}
