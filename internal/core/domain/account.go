package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/bookkeeping_app/internal/apperrors"
)

// AccountID identifies an account within a ledger.
// Zero is never a valid id; construct via NewAccountID.
type AccountID uint32

// NewAccountID validates that the raw id is strictly positive.
func NewAccountID(raw uint32) (AccountID, error) {
	if raw == 0 {
		return 0, fmt.Errorf("%w: account id must be a positive integer", apperrors.ErrValidation)
	}
	return AccountID(raw), nil
}

func (id AccountID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// AccountName is a trimmed, non-empty user-facing account name.
type AccountName string

// NewAccountName trims the input and rejects names that are empty afterwards.
func NewAccountName(raw string) (AccountName, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("%w: account name must not be empty", apperrors.ErrValidation)
	}
	return AccountName(trimmed), nil
}

func (n AccountName) String() string {
	return string(n)
}

// Account is the derived view of an account produced by folding
// AccountOpened/AccountClosed events. It is never stored directly.
type Account struct {
	ID       AccountID   `json:"accountID"`
	Name     AccountName `json:"name"`
	Category Category    `json:"category"`
	IsOpen   bool        `json:"isOpen"`
}
