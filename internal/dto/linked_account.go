package dto

import "github.com/ecovault/eco_finance_app/internal/core/domain"

// LinkAccountRequest is the payload for connecting a bank account through the
// aggregator.
type LinkAccountRequest struct {
	ExternalID  string `json:"externalID" binding:"required,notblank"`
	Institution string `json:"institution" binding:"required,max=128"`
	Mask        string `json:"mask" binding:"omitempty,max=8"`
}

// LinkedAccountResponse is the public representation of a bank connection.
type LinkedAccountResponse struct {
	AccountID    string `json:"accountID"`
	Institution  string `json:"institution"`
	Mask         string `json:"mask"`
	LastSyncedAt string `json:"lastSyncedAt,omitempty"`
}

// ListLinkedAccountsResponse wraps an owner's bank connections.
type ListLinkedAccountsResponse struct {
	Accounts []LinkedAccountResponse `json:"accounts"`
}

// ToLinkedAccountResponse converts a domain connection to its public form.
func ToLinkedAccountResponse(a *domain.LinkedAccount) LinkedAccountResponse {
	resp := LinkedAccountResponse{
		AccountID:   a.AccountID,
		Institution: a.Institution,
		Mask:        a.Mask,
	}
	if a.LastSyncedAt != nil {
		resp.LastSyncedAt = a.LastSyncedAt.Format("2006-01-02T15:04:05Z07:00")
	}
	return resp
}
