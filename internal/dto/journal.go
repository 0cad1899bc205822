package dto

import (
	"time"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	"github.com/SscSPs/bookkeeping_app/internal/core/projections"
)

// TransactionLeg is one (account, signed amount) pair of a transaction
// request.
type TransactionLeg struct {
	AccountID uint32 `json:"accountID" binding:"required,min=1"`
	Type      string `json:"type" binding:"required,oneof=DEBIT CREDIT"`
	Amount    uint32 `json:"amount" binding:"required,min=1"`
}

// RecordTransactionRequest is the payload for recording a balanced
// multi-leg transaction.
type RecordTransactionRequest struct {
	Description string           `json:"description"`
	Date        time.Time        `json:"date" binding:"required"`
	Legs        []TransactionLeg `json:"legs" binding:"required,min=1,dive"`
}

// ToDomainLegs converts the request legs into validated domain legs.
func (r RecordTransactionRequest) ToDomainLegs() ([]domain.Leg, error) {
	legs := make([]domain.Leg, 0, len(r.Legs))
	for _, leg := range r.Legs {
		accountID, err := domain.NewAccountID(leg.AccountID)
		if err != nil {
			return nil, err
		}
		var amount domain.Balance
		if domain.EntryType(leg.Type) == domain.Debit {
			amount, err = domain.NewDebit(leg.Amount)
		} else {
			amount, err = domain.NewCredit(leg.Amount)
		}
		if err != nil {
			return nil, err
		}
		legs = append(legs, domain.NewLeg(accountID, amount))
	}
	return legs, nil
}

// RecordTransactionResponse returns the id assigned to a recorded
// transaction.
type RecordTransactionResponse struct {
	TransactionID uint32 `json:"transactionID"`
}

// TrialBalanceRowResponse is one row of the trial balance report.
type TrialBalanceRowResponse struct {
	AccountID uint32 `json:"accountID"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	IsOpen    bool   `json:"isOpen"`
	Balance   string `json:"balance"`
}

// TrialBalanceResponse is the trial balance report for one ledger.
type TrialBalanceResponse struct {
	LedgerID string                    `json:"ledgerID"`
	Rows     []TrialBalanceRowResponse `json:"rows"`
}

// NewTrialBalanceResponse maps trial balance rows to their transport form.
func NewTrialBalanceResponse(ledgerID domain.LedgerID, rows []projections.TrialBalanceRow) TrialBalanceResponse {
	out := make([]TrialBalanceRowResponse, len(rows))
	for i, row := range rows {
		out[i] = TrialBalanceRowResponse{
			AccountID: uint32(row.AccountID),
			Name:      row.Name.String(),
			Category:  row.Category.String(),
			IsOpen:    row.IsOpen,
			Balance:   row.Balance.String(),
		}
	}
	return TrialBalanceResponse{LedgerID: ledgerID.String(), Rows: out}
}
