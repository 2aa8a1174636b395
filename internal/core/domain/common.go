package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// RawRow is one validated line of uploaded transaction data. All fields are
// kept as text; parsing of the amount and date happens in the scoring engine.
// RawRows are transient and never persisted.
type RawRow struct {
	Date     string
	Merchant string
	Category string
	Amount   string
}
