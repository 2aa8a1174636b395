// Package ingest converts raw delimited upload text into validated RawRows.
//
// The format is deliberately naive: fields are split on bare commas with no
// support for quoted fields or embedded commas. This is a documented
// limitation of the upload format, not something the parser tries to repair.
package ingest

import (
	"strings"

	"github.com/ecovault/eco_finance_app/internal/core/domain"
)

// requiredHeaders are the columns an upload must carry, in any order.
var requiredHeaders = []string{"date", "merchant", "category", "amount"}

// Parse converts raw delimited text into an ordered sequence of RawRows.
// The first line is the header; its fields are matched case-insensitively
// against the required column names. Blank lines are skipped silently and do
// not shift line numbers reported for later rows.
func Parse(rawText string) ([]domain.RawRow, error) {
	if strings.TrimSpace(rawText) == "" {
		return nil, newParseError(0, "upload is empty")
	}

	// Tolerate both \n and \r\n line endings.
	lines := strings.Split(strings.ReplaceAll(rawText, "\r\n", "\n"), "\n")

	header := splitFields(lines[0])
	for i, h := range header {
		header[i] = strings.ToLower(h)
	}

	colIndex := make(map[string]int, len(header))
	for i, h := range header {
		if _, seen := colIndex[h]; !seen {
			colIndex[h] = i
		}
	}

	var missing []string
	for _, name := range requiredHeaders {
		if _, ok := colIndex[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, newParseError(0, "missing required column(s): %s", strings.Join(missing, ", "))
	}

	var rows []domain.RawRow
	for i, line := range lines[1:] {
		lineNo := i + 2 // 1-based, header is line 1
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := splitFields(line)
		if len(fields) < len(requiredHeaders) {
			return nil, newParseError(lineNo, "expected at least %d fields, got %d", len(requiredHeaders), len(fields))
		}

		row := domain.RawRow{}
		for _, name := range requiredHeaders {
			idx := colIndex[name]
			if idx >= len(fields) {
				return nil, newParseError(lineNo, "missing value for column %q", name)
			}
			switch name {
			case "date":
				row.Date = fields[idx]
			case "merchant":
				row.Merchant = fields[idx]
			case "category":
				row.Category = fields[idx]
			case "amount":
				row.Amount = fields[idx]
			}
		}

		if err := validateRow(row); err != nil {
			return nil, newParseError(lineNo, "%s", err.Error())
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, newParseError(0, "upload contains no transaction rows")
	}
	return rows, nil
}

// splitFields performs the naive comma split with per-field trimming.
func splitFields(line string) []string {
	parts := strings.Split(line, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
