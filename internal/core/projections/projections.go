// Package projections holds fold-based read models over the event log.
// Every projection is a pure function of the events it is given: running it
// twice over the same sequence yields equal results, and it works over both
// full and partial logs.
package projections

import (
	"sort"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
)

// Reduce folds step over events, starting from init. It is the single
// combinator every read model is built from.
func Reduce[S any](init S, step func(S, domain.Event) S, events []domain.Event) S {
	state := init
	for _, event := range events {
		state = step(state, event)
	}
	return state
}

// LedgerIDs projects the log into the set of live ledger namespaces,
// returned in lexical order.
func LedgerIDs(events []domain.Event) []domain.LedgerID {
	set := Reduce(make(map[domain.LedgerID]struct{}), func(state map[domain.LedgerID]struct{}, event domain.Event) map[domain.LedgerID]struct{} {
		if created, ok := event.(domain.LedgerCreated); ok {
			state[created.LedgerID] = struct{}{}
		}
		return state
	}, events)

	ids := make([]domain.LedgerID, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Accounts projects the account registry of one ledger into derived account
// views, ordered by id. Closed accounts are included with IsOpen false.
func Accounts(ledgerID domain.LedgerID, events []domain.Event) []domain.Account {
	byID := Reduce(make(map[domain.AccountID]domain.Account), func(state map[domain.AccountID]domain.Account, event domain.Event) map[domain.AccountID]domain.Account {
		if event.Ledger() != ledgerID {
			return state
		}
		switch e := event.(type) {
		case domain.AccountOpened:
			state[e.AccountID] = domain.Account{
				ID:       e.AccountID,
				Name:     e.Name,
				Category: e.Category,
				IsOpen:   true,
			}
		case domain.AccountClosed:
			if account, ok := state[e.AccountID]; ok {
				account.IsOpen = false
				state[e.AccountID] = account
			}
		}
		return state
	}, events)

	accounts := make([]domain.Account, 0, len(byID))
	for _, account := range byID {
		accounts = append(accounts, account)
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].ID < accounts[j].ID })
	return accounts
}

// OpenAccounts is Accounts restricted to accounts that currently accept
// transactions.
func OpenAccounts(ledgerID domain.LedgerID, events []domain.Event) []domain.Account {
	all := Accounts(ledgerID, events)
	open := all[:0]
	for _, account := range all {
		if account.IsOpen {
			open = append(open, account)
		}
	}
	return open
}
