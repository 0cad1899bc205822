package dto

import "github.com/SscSPs/bookkeeping_app/internal/core/domain"

// CreateLedgerRequest is the payload for creating a ledger namespace.
type CreateLedgerRequest struct {
	LedgerID string `json:"ledgerID" binding:"required,ledgerid"`
}

// ListLedgersResponse lists the live ledger namespaces.
type ListLedgersResponse struct {
	Ledgers []string `json:"ledgers"`
}

// NewListLedgersResponse maps ledger ids to their transport form.
func NewListLedgersResponse(ids []domain.LedgerID) ListLedgersResponse {
	ledgers := make([]string, len(ids))
	for i, id := range ids {
		ledgers[i] = id.String()
	}
	return ListLedgersResponse{Ledgers: ledgers}
}
