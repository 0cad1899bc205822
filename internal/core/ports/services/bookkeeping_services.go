package services

import (
	"context"
	"time"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	"github.com/SscSPs/bookkeeping_app/internal/core/projections"
)

// BookkeepingWriterSvc defines the command side of the write model. Every
// method submits one command to the serialization mailbox and waits for its
// typed outcome; ctx bounds the wait, not the command's execution.
type BookkeepingWriterSvc interface {
	// CreateLedger registers a new ledger namespace.
	CreateLedger(ctx context.Context, ledgerID domain.LedgerID) error

	// OpenAccount adds an account to the ledger's chart.
	OpenAccount(ctx context.Context, ledgerID domain.LedgerID, accountID domain.AccountID, name domain.AccountName, category domain.Category) error

	// CloseAccount retires an open account.
	CloseAccount(ctx context.Context, ledgerID domain.LedgerID, accountID domain.AccountID) error

	// RecordTransaction appends a balanced multi-leg transaction and
	// returns the assigned transaction id.
	RecordTransaction(ctx context.Context, ledgerID domain.LedgerID, description string, legs []domain.Leg, date time.Time) (domain.TransactionID, error)
}

// BookkeepingReaderSvc defines the read side: projections over a
// point-in-time snapshot of the event log.
type BookkeepingReaderSvc interface {
	// Ledgers lists the live ledger namespaces.
	Ledgers(ctx context.Context) []domain.LedgerID

	// Accounts lists the derived account views of one ledger.
	Accounts(ctx context.Context, ledgerID domain.LedgerID) ([]domain.Account, error)

	// TrialBalance reports per-account signed balances for one ledger.
	TrialBalance(ctx context.Context, ledgerID domain.LedgerID) ([]projections.TrialBalanceRow, error)

	// Events returns the full log snapshot in append order.
	Events(ctx context.Context) []domain.Event
}

// BookkeepingSvcFacade combines the command and read sides for clients that
// need both.
type BookkeepingSvcFacade interface {
	BookkeepingWriterSvc
	BookkeepingReaderSvc
}
