package domain

import "time"

// LinkedAccount is a bank account connected through the aggregator. The
// external id identifies the account at the aggregator; transactions pulled
// for it flow through the same scoring pipeline as CSV uploads.
type LinkedAccount struct {
	AccountID    string     `json:"accountID"`
	OwnerID      int64      `json:"ownerID"`
	ExternalID   string     `json:"externalID"`
	Institution  string     `json:"institution"`
	Mask         string     `json:"mask"`
	LastSyncedAt *time.Time `json:"lastSyncedAt,omitempty"`
	AuditFields
}
