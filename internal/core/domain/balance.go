package domain

import (
	"fmt"

	"github.com/SscSPs/bookkeeping_app/internal/apperrors"
)

// EntryType indicates whether a leg amount sits on the debit or credit side.
type EntryType string

const (
	Debit  EntryType = "DEBIT"
	Credit EntryType = "CREDIT"
)

// Balance is a signed leg amount: a strictly positive quantity in minor
// units tagged with the side it falls on. The zero value is invalid;
// construct via NewDebit or NewCredit.
type Balance struct {
	Type   EntryType `json:"type"`
	Amount uint32    `json:"amount"`
}

// NewDebit builds a debit amount. Zero amounts are rejected.
func NewDebit(amount uint32) (Balance, error) {
	if amount == 0 {
		return Balance{}, fmt.Errorf("%w: leg amount must be a positive integer", apperrors.ErrValidation)
	}
	return Balance{Type: Debit, Amount: amount}, nil
}

// NewCredit builds a credit amount. Zero amounts are rejected.
func NewCredit(amount uint32) (Balance, error) {
	if amount == 0 {
		return Balance{}, fmt.Errorf("%w: leg amount must be a positive integer", apperrors.ErrValidation)
	}
	return Balance{Type: Credit, Amount: amount}, nil
}

// Signed returns the amount under the convention that debits are positive
// and credits negative.
func (b Balance) Signed() int64 {
	if b.Type == Credit {
		return -int64(b.Amount)
	}
	return int64(b.Amount)
}

// Leg pairs an account with the signed amount a transaction moves through it.
type Leg struct {
	AccountID AccountID `json:"accountID"`
	Amount    Balance   `json:"amount"`
}

// NewLeg builds a transaction leg from a validated account id and amount.
func NewLeg(accountID AccountID, amount Balance) Leg {
	return Leg{AccountID: accountID, Amount: amount}
}
