package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// Command validation errors returned by the write aggregates. Each wraps one
// of the generic kinds above so transport code can map them with errors.Is
// without enumerating every specific failure.
var (
	ErrLedgerExists          = fmt.Errorf("%w: ledger already exists", ErrDuplicate)
	ErrLedgerNotFound        = fmt.Errorf("%w: ledger does not exist", ErrNotFound)
	ErrAccountExists         = fmt.Errorf("%w: account already opened", ErrDuplicate)
	ErrAccountClosed         = fmt.Errorf("%w: account has been closed", ErrValidation)
	ErrAccountNotOpen        = fmt.Errorf("%w: account is not open", ErrValidation)
	ErrAccountNotFound       = fmt.Errorf("%w: account does not exist in this ledger", ErrNotFound)
	ErrEmptyTransaction      = fmt.Errorf("%w: transaction has no legs", ErrValidation)
	ErrUnbalancedTransaction = fmt.Errorf("%w: transaction legs do not balance to zero", ErrValidation)
	ErrJournalLimitReached   = fmt.Errorf("%w: transaction id space exhausted", ErrValidation)
	ErrAmountOverflow        = fmt.Errorf("%w: transaction amounts overflow", ErrValidation)
)

// ErrMailboxClosed is returned when a command is posted to a mailbox whose
// processing loop has terminated. It is deliberately not a validation error:
// callers must be able to tell "rejected by business rules" apart from
// "the system is no longer accepting commands".
var ErrMailboxClosed = errors.New("mailbox is closed")
