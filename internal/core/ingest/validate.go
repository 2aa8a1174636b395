package ingest

import (
	"errors"

	"github.com/ecovault/eco_finance_app/internal/core/domain"
)

// validateRow checks the structural shape of a parsed row: every required
// field must be non-empty. Semantic checks (amount is numeric, date parses)
// belong to the scoring engine.
func validateRow(row domain.RawRow) error {
	switch {
	case row.Date == "":
		return errors.New("date must not be empty")
	case row.Merchant == "":
		return errors.New("merchant must not be empty")
	case row.Category == "":
		return errors.New("category must not be empty")
	case row.Amount == "":
		return errors.New("amount must not be empty")
	}
	return nil
}
