// Package mailbox turns concurrent command submissions into a strictly
// ordered stream of event-store evolutions: one bounded queue, one consuming
// goroutine, one read-validate-append cycle at a time.
package mailbox

import (
	"time"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
)

// Message is the closed set of commands the mailbox accepts. Every variant
// carries an optional reply destination; a nil channel means fire-and-forget.
//
// Reply channels must be buffered (the helpers on Service always are): the
// processing loop sends without blocking and discards the reply when nobody
// is left to receive it.
type Message interface {
	// Kind is a stable command name for logging.
	Kind() string
}

// CreateLedgerMessage registers a new ledger namespace.
type CreateLedgerMessage struct {
	LedgerID domain.LedgerID
	Reply    chan<- error
}

// OpenAccountMessage adds an account to a ledger's chart.
type OpenAccountMessage struct {
	LedgerID  domain.LedgerID
	AccountID domain.AccountID
	Name      domain.AccountName
	Category  domain.Category
	Reply     chan<- error
}

// CloseAccountMessage retires an open account.
type CloseAccountMessage struct {
	LedgerID  domain.LedgerID
	AccountID domain.AccountID
	Reply     chan<- error
}

// RecordTransactionMessage appends a balanced multi-leg transaction.
type RecordTransactionMessage struct {
	LedgerID    domain.LedgerID
	Description string
	Legs        []domain.Leg
	Date        time.Time
	Reply       chan<- RecordTransactionResult
}

// RecordTransactionResult is the reply for RecordTransactionMessage: the
// assigned transaction id on success, the validation error otherwise.
type RecordTransactionResult struct {
	TransactionID domain.TransactionID
	Err           error
}

func (CreateLedgerMessage) Kind() string      { return "CreateLedger" }
func (OpenAccountMessage) Kind() string       { return "OpenAccount" }
func (CloseAccountMessage) Kind() string      { return "CloseAccount" }
func (RecordTransactionMessage) Kind() string { return "RecordTransaction" }
