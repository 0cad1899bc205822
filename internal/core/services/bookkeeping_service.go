package services

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/bookkeeping_app/internal/apperrors"
	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookkeeping_app/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_app/internal/core/projections"
	"github.com/SscSPs/bookkeeping_app/internal/core/write"
	"github.com/SscSPs/bookkeeping_app/internal/mailbox"
)

// bookkeepingService is the synchronous facade over the command mailbox and
// the event log read port. Writes are posted to the mailbox and awaited;
// reads project a fresh snapshot on every call.
type bookkeepingService struct {
	mailbox *mailbox.Mailbox
	reader  portsrepo.EventReader
}

// NewBookkeepingService creates the facade.
func NewBookkeepingService(mb *mailbox.Mailbox, reader portsrepo.EventReader) portssvc.BookkeepingSvcFacade {
	return &bookkeepingService{
		mailbox: mb,
		reader:  reader,
	}
}

// Ensure bookkeepingService implements the facade interface.
var _ portssvc.BookkeepingSvcFacade = (*bookkeepingService)(nil)

// CreateLedger implements portssvc.BookkeepingWriterSvc.
func (s *bookkeepingService) CreateLedger(ctx context.Context, ledgerID domain.LedgerID) error {
	replyCh := make(chan error, 1)
	if err := s.mailbox.Post(ctx, mailbox.CreateLedgerMessage{
		LedgerID: ledgerID,
		Reply:    replyCh,
	}); err != nil {
		return err
	}
	return awaitReply(ctx, replyCh)
}

// OpenAccount implements portssvc.BookkeepingWriterSvc.
func (s *bookkeepingService) OpenAccount(ctx context.Context, ledgerID domain.LedgerID, accountID domain.AccountID, name domain.AccountName, category domain.Category) error {
	replyCh := make(chan error, 1)
	if err := s.mailbox.Post(ctx, mailbox.OpenAccountMessage{
		LedgerID:  ledgerID,
		AccountID: accountID,
		Name:      name,
		Category:  category,
		Reply:     replyCh,
	}); err != nil {
		return err
	}
	return awaitReply(ctx, replyCh)
}

// CloseAccount implements portssvc.BookkeepingWriterSvc.
func (s *bookkeepingService) CloseAccount(ctx context.Context, ledgerID domain.LedgerID, accountID domain.AccountID) error {
	replyCh := make(chan error, 1)
	if err := s.mailbox.Post(ctx, mailbox.CloseAccountMessage{
		LedgerID:  ledgerID,
		AccountID: accountID,
		Reply:     replyCh,
	}); err != nil {
		return err
	}
	return awaitReply(ctx, replyCh)
}

// RecordTransaction implements portssvc.BookkeepingWriterSvc.
func (s *bookkeepingService) RecordTransaction(ctx context.Context, ledgerID domain.LedgerID, description string, legs []domain.Leg, date time.Time) (domain.TransactionID, error) {
	replyCh := make(chan mailbox.RecordTransactionResult, 1)
	if err := s.mailbox.Post(ctx, mailbox.RecordTransactionMessage{
		LedgerID:    ledgerID,
		Description: description,
		Legs:        legs,
		Date:        date,
		Reply:       replyCh,
	}); err != nil {
		return 0, err
	}
	select {
	case result := <-replyCh:
		return result.TransactionID, result.Err
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

// Ledgers implements portssvc.BookkeepingReaderSvc.
func (s *bookkeepingService) Ledgers(_ context.Context) []domain.LedgerID {
	return projections.LedgerIDs(s.reader.All())
}

// Accounts implements portssvc.BookkeepingReaderSvc.
func (s *bookkeepingService) Accounts(_ context.Context, ledgerID domain.LedgerID) ([]domain.Account, error) {
	events := s.reader.All()
	if !write.NewLedgerResolver(events).Exists(ledgerID) {
		return nil, fmt.Errorf("%w: ledger %q", apperrors.ErrLedgerNotFound, ledgerID)
	}
	return projections.Accounts(ledgerID, events), nil
}

// TrialBalance implements portssvc.BookkeepingReaderSvc.
func (s *bookkeepingService) TrialBalance(_ context.Context, ledgerID domain.LedgerID) ([]projections.TrialBalanceRow, error) {
	events := s.reader.All()
	if !write.NewLedgerResolver(events).Exists(ledgerID) {
		return nil, fmt.Errorf("%w: ledger %q", apperrors.ErrLedgerNotFound, ledgerID)
	}
	return projections.TrialBalance(ledgerID, events), nil
}

// Events implements portssvc.BookkeepingReaderSvc.
func (s *bookkeepingService) Events(_ context.Context) []domain.Event {
	return s.reader.All()
}

// awaitReply races the mailbox reply against the caller's deadline. A reply
// arriving after the caller gave up is silently discarded by the handler's
// non-blocking send.
func awaitReply(ctx context.Context, replyCh <-chan error) error {
	select {
	case err := <-replyCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
