package projections

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
)

// TrialBalanceRow is one account's signed running balance.
type TrialBalanceRow struct {
	AccountID domain.AccountID   `json:"accountID"`
	Name      domain.AccountName `json:"name"`
	Category  domain.Category    `json:"category"`
	IsOpen    bool               `json:"isOpen"`
	Balance   decimal.Decimal    `json:"balance"`
}

// TrialBalance projects one ledger's log into per-account balances, ordered
// by account id. An entry on an account's natural side increases its
// balance, the opposite side decreases it:
//
//	DEBIT to ASSET/EXPENSES    -> positive
//	CREDIT to ASSET/EXPENSES   -> negative
//	DEBIT to the credit-normal categories  -> negative
//	CREDIT to the credit-normal categories -> positive
//
// Closed accounts keep their history and show up with IsOpen false.
func TrialBalance(ledgerID domain.LedgerID, events []domain.Event) []TrialBalanceRow {
	type reportState struct {
		accounts map[domain.AccountID]domain.Account
		balances map[domain.AccountID]decimal.Decimal
	}

	state := Reduce(reportState{
		accounts: make(map[domain.AccountID]domain.Account),
		balances: make(map[domain.AccountID]decimal.Decimal),
	}, func(state reportState, event domain.Event) reportState {
		if event.Ledger() != ledgerID {
			return state
		}
		switch e := event.(type) {
		case domain.AccountOpened:
			state.accounts[e.AccountID] = domain.Account{
				ID:       e.AccountID,
				Name:     e.Name,
				Category: e.Category,
				IsOpen:   true,
			}
			state.balances[e.AccountID] = decimal.Zero
		case domain.AccountClosed:
			if account, ok := state.accounts[e.AccountID]; ok {
				account.IsOpen = false
				state.accounts[e.AccountID] = account
			}
		case domain.TransactionRecorded:
			for _, leg := range e.Legs {
				account, ok := state.accounts[leg.AccountID]
				if !ok {
					continue
				}
				state.balances[leg.AccountID] = state.balances[leg.AccountID].Add(signedAmount(leg.Amount, account.Category))
			}
		}
		return state
	}, events)

	rows := make([]TrialBalanceRow, 0, len(state.accounts))
	for id, account := range state.accounts {
		rows = append(rows, TrialBalanceRow{
			AccountID: id,
			Name:      account.Name,
			Category:  account.Category,
			IsOpen:    account.IsOpen,
			Balance:   state.balances[id],
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].AccountID < rows[j].AccountID })
	return rows
}

// signedAmount applies the reporting sign convention for one leg against an
// account of the given category.
func signedAmount(amount domain.Balance, category domain.Category) decimal.Decimal {
	value := decimal.NewFromInt(int64(amount.Amount))
	isDebit := amount.Type == domain.Debit
	if category.IsDebitNormal() == isDebit {
		return value
	}
	return value.Neg()
}
