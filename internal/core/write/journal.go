package write

import (
	"fmt"
	"math"
	"time"

	"github.com/SscSPs/bookkeeping_app/internal/apperrors"
	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
)

// Journal is the transaction aggregate for a single ledger. It validates
// multi-leg entries, assigns monotonic transaction ids and emits the
// TransactionRecorded event.
type Journal struct {
	ledgerID  domain.LedgerID
	currentID domain.TransactionID
	open      map[domain.AccountID]struct{}
}

// NewJournal reconstructs the journal for ledgerID from the log: the highest
// transaction id seen and the set of currently open accounts. It fails with
// ErrLedgerNotFound when the ledger was never created.
func NewJournal(ledgerID domain.LedgerID, history []domain.Event) (*Journal, error) {
	if err := requireLedger(ledgerID, history); err != nil {
		return nil, err
	}
	journal := &Journal{
		ledgerID: ledgerID,
		open:     make(map[domain.AccountID]struct{}),
	}
	journal.apply(history)
	return journal, nil
}

// Entry validates a multi-leg transaction and, on success, returns the
// events recording it together with the assigned id. The returned events
// are a unit: callers append them atomically or not at all.
func (j *Journal) Entry(description string, legs []domain.Leg, date time.Time) ([]domain.Event, domain.TransactionID, error) {
	if len(legs) == 0 {
		return nil, 0, apperrors.ErrEmptyTransaction
	}
	if err := checkBalance(legs); err != nil {
		return nil, 0, err
	}
	for _, leg := range legs {
		if _, ok := j.open[leg.AccountID]; !ok {
			return nil, 0, fmt.Errorf("%w: account %s", apperrors.ErrAccountNotFound, leg.AccountID)
		}
	}
	id, err := nextID(j.currentID)
	if err != nil {
		return nil, 0, err
	}

	recorded := domain.TransactionRecorded{
		LedgerID:      j.ledgerID,
		TransactionID: id,
		Description:   description,
		Date:          date,
		Legs:          append([]domain.Leg(nil), legs...),
	}
	events := []domain.Event{recorded}
	j.apply(events)
	return events, id, nil
}

// checkBalance partitions the legs into debit and credit totals and requires
// the two sides to match. Overflow of either side is a hard failure, never a
// silent wrap.
func checkBalance(legs []domain.Leg) error {
	var debits, credits uint32
	for _, leg := range legs {
		amount := leg.Amount.Amount
		if amount == 0 {
			return fmt.Errorf("%w: leg amount must be a positive integer", apperrors.ErrValidation)
		}
		switch leg.Amount.Type {
		case domain.Debit:
			sum, err := checkedAdd(debits, amount)
			if err != nil {
				return err
			}
			debits = sum
		case domain.Credit:
			sum, err := checkedAdd(credits, amount)
			if err != nil {
				return err
			}
			credits = sum
		default:
			return fmt.Errorf("%w: unknown entry type %q", apperrors.ErrValidation, string(leg.Amount.Type))
		}
	}
	if debits != credits {
		return fmt.Errorf("%w: debits %d, credits %d", apperrors.ErrUnbalancedTransaction, debits, credits)
	}
	return nil
}

func checkedAdd(a, b uint32) (uint32, error) {
	if a > math.MaxUint32-b {
		return 0, apperrors.ErrAmountOverflow
	}
	return a + b, nil
}

func nextID(current domain.TransactionID) (domain.TransactionID, error) {
	if current == domain.MaxTransactionID {
		return 0, apperrors.ErrJournalLimitReached
	}
	return current + 1, nil
}

func (j *Journal) apply(events []domain.Event) {
	for _, event := range events {
		if event.Ledger() != j.ledgerID {
			continue
		}
		switch e := event.(type) {
		case domain.AccountOpened:
			j.open[e.AccountID] = struct{}{}
		case domain.AccountClosed:
			delete(j.open, e.AccountID)
		case domain.TransactionRecorded:
			if e.TransactionID > j.currentID {
				j.currentID = e.TransactionID
			}
		}
	}
}
