package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ScoredTransaction is one uploaded transaction after scoring. EcoScore is
// always in [0,100]. Amount passes through with its original sign; negative
// amounts get no special treatment. Category is stored exactly as uploaded
// even though breakdown grouping lower-cases it.
type ScoredTransaction struct {
	TransactionID   string          `json:"transactionID"`
	OwnerID         int64           `json:"ownerID"`
	Date            time.Time       `json:"date"`
	Merchant        string          `json:"merchant"`
	Category        string          `json:"category"`
	Amount          decimal.Decimal `json:"amount"`
	EcoScore        int             `json:"ecoScore"`
	HasAlternatives bool            `json:"hasAlternatives"`
	AuditFields
}
