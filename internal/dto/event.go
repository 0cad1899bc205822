package dto

import (
	"time"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
)

// EventLegResponse is one transaction leg inside an event response.
type EventLegResponse struct {
	AccountID uint32 `json:"accountID"`
	Type      string `json:"type"`
	Amount    uint32 `json:"amount"`
}

// EventResponse is the transport form of one log event. Fields not carried
// by the event's variant are omitted.
type EventResponse struct {
	Kind          string             `json:"kind"`
	LedgerID      string             `json:"ledgerID"`
	AccountID     *uint32            `json:"accountID,omitempty"`
	Name          *string            `json:"name,omitempty"`
	Category      *string            `json:"category,omitempty"`
	TransactionID *uint32            `json:"transactionID,omitempty"`
	Description   *string            `json:"description,omitempty"`
	Date          *time.Time         `json:"date,omitempty"`
	Legs          []EventLegResponse `json:"legs,omitempty"`
}

// NewEventResponses maps a log snapshot to its transport form, preserving
// append order.
func NewEventResponses(events []domain.Event) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for _, event := range events {
		resp := EventResponse{
			Kind:     event.Kind(),
			LedgerID: event.Ledger().String(),
		}
		switch e := event.(type) {
		case domain.AccountOpened:
			accountID := uint32(e.AccountID)
			name := e.Name.String()
			category := e.Category.String()
			resp.AccountID = &accountID
			resp.Name = &name
			resp.Category = &category
		case domain.AccountClosed:
			accountID := uint32(e.AccountID)
			resp.AccountID = &accountID
		case domain.TransactionRecorded:
			transactionID := uint32(e.TransactionID)
			description := e.Description
			date := e.Date
			resp.TransactionID = &transactionID
			resp.Description = &description
			resp.Date = &date
			for _, leg := range e.Legs {
				resp.Legs = append(resp.Legs, EventLegResponse{
					AccountID: uint32(leg.AccountID),
					Type:      string(leg.Amount.Type),
					Amount:    leg.Amount.Amount,
				})
			}
		}
		out = append(out, resp)
	}
	return out
}
