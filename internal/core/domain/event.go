package domain

import "time"

// Event is an immutable domain fact recorded in the event log. The concrete
// variants form a closed set; total order is defined by log append order.
// All variants are plain value types so replay and tests can compare them
// structurally.
type Event interface {
	// Ledger names the namespace the event belongs to. Replay for one
	// ledger must ignore events carrying a different id.
	Ledger() LedgerID
	// Kind is a stable name for the variant, used for logging and
	// serialization by transports.
	Kind() string
}

// LedgerCreated records that a ledger namespace came into existence.
type LedgerCreated struct {
	LedgerID LedgerID `json:"ledgerID"`
}

// AccountOpened records that an account was added to a ledger's chart.
type AccountOpened struct {
	LedgerID  LedgerID    `json:"ledgerID"`
	AccountID AccountID   `json:"accountID"`
	Name      AccountName `json:"name"`
	Category  Category    `json:"category"`
}

// AccountClosed records that an account was retired. Closed accounts keep
// their id forever; the id is never reused.
type AccountClosed struct {
	LedgerID  LedgerID  `json:"ledgerID"`
	AccountID AccountID `json:"accountID"`
}

// TransactionRecorded records one balanced multi-leg transaction. The legs
// are carried in entry order and always sum to zero under the debit-positive
// convention.
type TransactionRecorded struct {
	LedgerID      LedgerID      `json:"ledgerID"`
	TransactionID TransactionID `json:"transactionID"`
	Description   string        `json:"description"`
	Date          time.Time     `json:"date"`
	Legs          []Leg         `json:"legs"`
}

func (e LedgerCreated) Ledger() LedgerID       { return e.LedgerID }
func (e AccountOpened) Ledger() LedgerID       { return e.LedgerID }
func (e AccountClosed) Ledger() LedgerID       { return e.LedgerID }
func (e TransactionRecorded) Ledger() LedgerID { return e.LedgerID }

func (LedgerCreated) Kind() string       { return "LedgerCreated" }
func (AccountOpened) Kind() string       { return "AccountOpened" }
func (AccountClosed) Kind() string       { return "AccountClosed" }
func (TransactionRecorded) Kind() string { return "TransactionRecorded" }
