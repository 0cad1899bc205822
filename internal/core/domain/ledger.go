package domain

import (
	"fmt"
	"math"
	"regexp"

	"github.com/SscSPs/bookkeeping_app/internal/apperrors"
)

// ledgerIDPattern: a leading ASCII alphanumeric, then alphanumerics,
// underscores or hyphens.
var ledgerIDPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// LedgerID names a ledger namespace. Accounts and transactions in different
// ledgers never interact.
type LedgerID string

// NewLedgerID validates the raw id against the ledger naming rules.
func NewLedgerID(raw string) (LedgerID, error) {
	if !ledgerIDPattern.MatchString(raw) {
		return "", fmt.Errorf("%w: ledger id %q must match %s", apperrors.ErrValidation, raw, ledgerIDPattern)
	}
	return LedgerID(raw), nil
}

func (id LedgerID) String() string {
	return string(id)
}

// TransactionID numbers recorded transactions within a ledger, starting at 1
// and strictly increasing with no gaps or repeats.
type TransactionID uint32

// MaxTransactionID is the last assignable transaction id; the entry that
// would exceed it fails with ErrJournalLimitReached.
const MaxTransactionID = TransactionID(math.MaxUint32)
