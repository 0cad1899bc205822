package dto

import "github.com/SscSPs/bookkeeping_app/internal/core/domain"

// CreateAccountRequest is the payload for opening an account in a ledger.
type CreateAccountRequest struct {
	AccountID uint32 `json:"accountID" binding:"required,min=1"`
	Name      string `json:"name" binding:"required"`
	Category  string `json:"category" binding:"required"`
}

// AccountResponse is the transport form of a derived account view.
type AccountResponse struct {
	AccountID uint32 `json:"accountID"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	IsOpen    bool   `json:"isOpen"`
}

// ListAccountsResponse lists a ledger's accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// NewListAccountsResponse maps derived account views to their transport form.
func NewListAccountsResponse(accounts []domain.Account) ListAccountsResponse {
	out := make([]AccountResponse, len(accounts))
	for i, account := range accounts {
		out[i] = AccountResponse{
			AccountID: uint32(account.ID),
			Name:      account.Name.String(),
			Category:  account.Category.String(),
			IsOpen:    account.IsOpen,
		}
	}
	return ListAccountsResponse{Accounts: out}
}
