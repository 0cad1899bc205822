package write_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/bookkeeping_app/internal/apperrors"
	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	"github.com/SscSPs/bookkeeping_app/internal/core/write"
)

func TestResolverCreate(t *testing.T) {
	resolver := write.NewLedgerResolver(nil)

	events, err := resolver.Create("main")
	require.NoError(t, err)
	assert.Equal(t, []domain.Event{domain.LedgerCreated{LedgerID: "main"}}, events)
	assert.True(t, resolver.Exists("main"))
}

func TestResolverCreateDuplicateFails(t *testing.T) {
	resolver := write.NewLedgerResolver([]domain.Event{
		domain.LedgerCreated{LedgerID: "main"},
	})

	_, err := resolver.Create("main")
	assert.ErrorIs(t, err, apperrors.ErrLedgerExists)
}

func TestResolverFoldsOnlyLedgerCreated(t *testing.T) {
	resolver := write.NewLedgerResolver([]domain.Event{
		domain.LedgerCreated{LedgerID: "main"},
		domain.AccountOpened{LedgerID: "main", AccountID: 101, Name: "Bank", Category: domain.Asset},
		domain.LedgerCreated{LedgerID: "side"},
	})

	assert.Equal(t, []domain.LedgerID{"main", "side"}, resolver.LedgerIDs())
	assert.False(t, resolver.Exists("other"))
}
