package memory_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/bookkeeping_app/internal/adapters/eventstore/memory"
	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
)

func TestAppendAndAllPreserveOrder(t *testing.T) {
	store := memory.NewStore()
	store.Append(domain.LedgerCreated{LedgerID: "main"})
	store.Append(domain.AccountOpened{LedgerID: "main", AccountID: 101, Name: "Bank", Category: domain.Asset})

	events := store.All()
	require.Len(t, events, 2)
	assert.Equal(t, domain.LedgerCreated{LedgerID: "main"}, events[0])
	assert.Equal(t, domain.AccountOpened{LedgerID: "main", AccountID: 101, Name: "Bank", Category: domain.Asset}, events[1])
}

func TestAllReturnsPointInTimeSnapshot(t *testing.T) {
	store := memory.NewStore()
	store.Append(domain.LedgerCreated{LedgerID: "main"})

	snapshot := store.All()
	store.Append(domain.AccountOpened{LedgerID: "main", AccountID: 101, Name: "Bank", Category: domain.Asset})

	// The earlier snapshot must not observe the later append.
	assert.Len(t, snapshot, 1)
	assert.Len(t, store.All(), 2)
}

func TestEvolveAppendsProducedEventsInOrder(t *testing.T) {
	store := memory.NewStore()
	store.Append(domain.LedgerCreated{LedgerID: "main"})

	err := store.Evolve(func(current []domain.Event) ([]domain.Event, error) {
		assert.Len(t, current, 1)
		return []domain.Event{
			domain.AccountOpened{LedgerID: "main", AccountID: 101, Name: "Bank", Category: domain.Asset},
			domain.AccountOpened{LedgerID: "main", AccountID: 501, Name: "Groceries", Category: domain.Expenses},
		}, nil
	})
	require.NoError(t, err)

	events := store.All()
	require.Len(t, events, 3)
	assert.Equal(t, domain.AccountID(101), events[1].(domain.AccountOpened).AccountID)
	assert.Equal(t, domain.AccountID(501), events[2].(domain.AccountOpened).AccountID)
}

func TestEvolveFailureLeavesLogUnchanged(t *testing.T) {
	store := memory.NewStore()
	store.Append(domain.LedgerCreated{LedgerID: "main"})

	produced := errors.New("rejected by aggregate")
	err := store.Evolve(func(current []domain.Event) ([]domain.Event, error) {
		return nil, produced
	})

	// The producer's error comes back unmodified and nothing was appended.
	assert.Equal(t, produced, err)
	assert.Len(t, store.All(), 1)
}

func TestEvolveNeverPartiallyAppends(t *testing.T) {
	store := memory.NewStore()

	err := store.Evolve(func(current []domain.Event) ([]domain.Event, error) {
		// Returning events alongside an error must append nothing.
		return []domain.Event{domain.LedgerCreated{LedgerID: "main"}}, errors.New("late failure")
	})

	assert.Error(t, err)
	assert.Empty(t, store.All())
}
