package projections_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	"github.com/SscSPs/bookkeeping_app/internal/core/projections"
)

var reportDate = time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

func sampleLog() []domain.Event {
	return []domain.Event{
		domain.LedgerCreated{LedgerID: "main"},
		domain.LedgerCreated{LedgerID: "side"},
		domain.AccountOpened{LedgerID: "main", AccountID: 101, Name: "Bank", Category: domain.Asset},
		domain.AccountOpened{LedgerID: "main", AccountID: 501, Name: "Groceries", Category: domain.Expenses},
		domain.AccountOpened{LedgerID: "side", AccountID: 1, Name: "Petty Cash", Category: domain.Asset},
		domain.TransactionRecorded{
			LedgerID:      "main",
			TransactionID: 1,
			Description:   "Groceries",
			Date:          reportDate,
			Legs: []domain.Leg{
				{AccountID: 101, Amount: domain.Balance{Type: domain.Credit, Amount: 50}},
				{AccountID: 501, Amount: domain.Balance{Type: domain.Debit, Amount: 50}},
			},
		},
		domain.AccountClosed{LedgerID: "main", AccountID: 501},
	}
}

func TestReduceFoldsInOrder(t *testing.T) {
	kinds := projections.Reduce([]string(nil), func(state []string, event domain.Event) []string {
		return append(state, event.Kind())
	}, sampleLog())

	assert.Equal(t, []string{
		"LedgerCreated",
		"LedgerCreated",
		"AccountOpened",
		"AccountOpened",
		"AccountOpened",
		"TransactionRecorded",
		"AccountClosed",
	}, kinds)
}

func TestLedgerIDsSorted(t *testing.T) {
	events := []domain.Event{
		domain.LedgerCreated{LedgerID: "zulu"},
		domain.LedgerCreated{LedgerID: "alpha"},
		domain.LedgerCreated{LedgerID: "main"},
	}
	assert.Equal(t, []domain.LedgerID{"alpha", "main", "zulu"}, projections.LedgerIDs(events))
}

func TestLedgerIDsEmptyLog(t *testing.T) {
	assert.Empty(t, projections.LedgerIDs(nil))
}

func TestAccountsIncludesClosed(t *testing.T) {
	accounts := projections.Accounts("main", sampleLog())
	require.Len(t, accounts, 2)

	assert.Equal(t, domain.AccountID(101), accounts[0].ID)
	assert.True(t, accounts[0].IsOpen)

	assert.Equal(t, domain.AccountID(501), accounts[1].ID)
	assert.Equal(t, domain.AccountName("Groceries"), accounts[1].Name)
	assert.Equal(t, domain.Expenses, accounts[1].Category)
	assert.False(t, accounts[1].IsOpen)
}

func TestAccountsScopedToLedger(t *testing.T) {
	accounts := projections.Accounts("side", sampleLog())
	require.Len(t, accounts, 1)
	assert.Equal(t, domain.AccountID(1), accounts[0].ID)
}

func TestOpenAccountsFiltersClosed(t *testing.T) {
	open := projections.OpenAccounts("main", sampleLog())
	require.Len(t, open, 1)
	assert.Equal(t, domain.AccountID(101), open[0].ID)
}

func TestProjectionsArePure(t *testing.T) {
	log := sampleLog()

	first := projections.Accounts("main", log)
	second := projections.Accounts("main", log)
	assert.Equal(t, first, second)

	// Restart from scratch over a longer log: the prefix result is a plain
	// function of the prefix, nothing is remembered between runs.
	prefix := projections.LedgerIDs(log[:2])
	assert.Equal(t, []domain.LedgerID{"main", "side"}, prefix)
	assert.Equal(t, prefix, projections.LedgerIDs(log[:2]))
}
