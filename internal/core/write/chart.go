package write

import (
	"fmt"
	"sort"

	"github.com/SscSPs/bookkeeping_app/internal/apperrors"
	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
)

// accountState is the folded registry entry for one account id. A closed
// account keeps its entry: ids are retired, never reused.
type accountState struct {
	name     domain.AccountName
	category domain.Category
	isOpen   bool
}

// Chart is the account registry aggregate for a single ledger. It decides
// whether an account may be opened or closed and emits the corresponding
// event.
type Chart struct {
	ledgerID domain.LedgerID
	accounts map[domain.AccountID]accountState
}

// NewChart reconstructs the chart for ledgerID by folding the account events
// belonging to that ledger. It fails with ErrLedgerNotFound when the ledger
// was never created.
func NewChart(ledgerID domain.LedgerID, history []domain.Event) (*Chart, error) {
	if err := requireLedger(ledgerID, history); err != nil {
		return nil, err
	}
	chart := &Chart{
		ledgerID: ledgerID,
		accounts: make(map[domain.AccountID]accountState),
	}
	chart.apply(history)
	return chart, nil
}

// Open registers a new account. Reopening a closed id is rejected: closed
// accounts are retired and a fresh id must be issued instead.
func (c *Chart) Open(id domain.AccountID, name domain.AccountName, category domain.Category) ([]domain.Event, error) {
	if state, ok := c.accounts[id]; ok {
		if state.isOpen {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrAccountExists, id)
		}
		return nil, fmt.Errorf("%w: account %s", apperrors.ErrAccountClosed, id)
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("%w: unknown account category %q", apperrors.ErrValidation, string(category))
	}

	events := []domain.Event{domain.AccountOpened{
		LedgerID:  c.ledgerID,
		AccountID: id,
		Name:      name,
		Category:  category,
	}}
	c.apply(events)
	return events, nil
}

// Close retires an open account.
func (c *Chart) Close(id domain.AccountID) ([]domain.Event, error) {
	state, ok := c.accounts[id]
	if !ok {
		return nil, fmt.Errorf("%w: account %s", apperrors.ErrAccountNotOpen, id)
	}
	if !state.isOpen {
		return nil, fmt.Errorf("%w: account %s", apperrors.ErrAccountClosed, id)
	}

	events := []domain.Event{domain.AccountClosed{
		LedgerID:  c.ledgerID,
		AccountID: id,
	}}
	c.apply(events)
	return events, nil
}

// IsOpen reports whether the account currently accepts transactions.
func (c *Chart) IsOpen(id domain.AccountID) bool {
	state, ok := c.accounts[id]
	return ok && state.isOpen
}

// Accounts returns the derived account views, ordered by id.
func (c *Chart) Accounts() []domain.Account {
	accounts := make([]domain.Account, 0, len(c.accounts))
	for id, state := range c.accounts {
		accounts = append(accounts, domain.Account{
			ID:       id,
			Name:     state.name,
			Category: state.category,
			IsOpen:   state.isOpen,
		})
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].ID < accounts[j].ID })
	return accounts
}

func (c *Chart) apply(events []domain.Event) {
	for _, event := range events {
		if event.Ledger() != c.ledgerID {
			continue
		}
		switch e := event.(type) {
		case domain.AccountOpened:
			c.accounts[e.AccountID] = accountState{
				name:     e.Name,
				category: e.Category,
				isOpen:   true,
			}
		case domain.AccountClosed:
			if state, ok := c.accounts[e.AccountID]; ok {
				state.isOpen = false
				c.accounts[e.AccountID] = state
			}
		}
	}
}
