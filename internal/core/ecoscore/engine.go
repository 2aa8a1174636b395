package ecoscore

import (
	"strings"
	"time"

	"github.com/ecovault/eco_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Footprint factors are fixed business rules inherited from the product; they
// are not derived from any physical model and must not be "corrected".
var (
	carbonFactor = decimal.NewFromFloat(0.05)  // kg CO2e per score-point-dollar
	waterFactor  = decimal.NewFromFloat(0.001) // kL per score-point-dollar
)

// dateLayouts are tried in order when parsing a row's date.
var dateLayouts = []string{"2006-01-02", "01/02/2006", "2006/01/02"}

// Result holds everything Process derives from one batch. Transactions,
// Summary and Breakdowns share the batch's owner id but do not reference each
// other; the aggregates are computed from the transactions, not linked to them.
type Result struct {
	Transactions []domain.ScoredTransaction
	Summary      domain.SustainabilitySummary
	Breakdowns   []domain.CategoryBreakdown
}

// Engine scores raw rows and aggregates them into a Result. It is stateless
// between invocations and safe for concurrent use; the only injected
// collaborator is the clock stamped onto summaries.
type Engine struct {
	now func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the wall clock used for summary timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine creates a scoring engine with the real clock unless overridden.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Process scores every row and folds the batch into one summary plus one
// breakdown per distinct category. It either returns the complete result or
// fails with no partial output: every amount is parsed up front, before any
// aggregate is touched, so a bad row late in the batch leaves nothing behind.
func (e *Engine) Process(rows []domain.RawRow, ownerID int64) (*Result, error) {
	if len(rows) == 0 {
		return nil, &EmptyBatchError{}
	}

	amounts := make([]decimal.Decimal, len(rows))
	for i, row := range rows {
		amount, err := ParseAmount(row.Amount)
		if err != nil {
			return nil, err
		}
		amounts[i] = amount
	}

	result := &Result{
		Transactions: make([]domain.ScoredTransaction, 0, len(rows)),
	}

	type categoryGroup struct {
		total    decimal.Decimal
		scoreSum int64
		count    int64
	}
	groups := make(map[string]*categoryGroup)
	var groupOrder []string

	var scoreSum int64
	var sustainableCount int64
	carbon := decimal.Zero
	water := decimal.Zero

	for i, row := range rows {
		score := Score(row.Merchant, row.Category)
		txn := domain.ScoredTransaction{
			OwnerID:         ownerID,
			Date:            parseDate(row.Date),
			Merchant:        row.Merchant,
			Category:        row.Category, // stored as uploaded, grouping lower-cases separately
			Amount:          amounts[i],
			EcoScore:        score,
			HasAlternatives: SuggestsAlternatives(row.Merchant, row.Category, score),
		}
		result.Transactions = append(result.Transactions, txn)

		scoreSum += int64(score)
		if score >= SustainableThreshold {
			sustainableCount++
		}

		severity := decimal.NewFromInt(int64(100 - score))
		carbon = carbon.Add(severity.Mul(carbonFactor).Mul(amounts[i]))
		water = water.Add(severity.Mul(waterFactor).Mul(amounts[i]))

		key := strings.ToLower(row.Category)
		group, ok := groups[key]
		if !ok {
			group = &categoryGroup{total: decimal.Zero}
			groups[key] = group
			groupOrder = append(groupOrder, key)
		}
		group.total = group.total.Add(amounts[i])
		group.scoreSum += int64(score)
		group.count++
	}

	n := int64(len(rows))
	result.Summary = domain.SustainabilitySummary{
		OwnerID:            ownerID,
		OverallScore:       roundRatio(scoreSum, n),
		CarbonFootprintKg:  carbon.Round(1),
		SustainablePercent: roundRatio(sustainableCount*100, n),
		WaterUsageLiters:   water.Round(1),
		ComputedAt:         e.now(),
	}

	result.Breakdowns = make([]domain.CategoryBreakdown, 0, len(groupOrder))
	for _, key := range groupOrder {
		group := groups[key]
		result.Breakdowns = append(result.Breakdowns, domain.CategoryBreakdown{
			OwnerID:      ownerID,
			Category:     key,
			TotalAmount:  group.total.Round(2),
			AverageScore: roundRatio(group.scoreSum, group.count),
		})
	}

	return result, nil
}

// ParseAmount normalizes a raw amount string (leading $, comma thousands
// separators) and parses it as a decimal. The sign passes through untouched.
func ParseAmount(raw string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, &InvalidAmountError{Raw: raw}
	}
	return amount, nil
}

// parseDate tries the known upload layouts; rows with unrecognized dates keep
// a zero date rather than failing the batch.
func parseDate(raw string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, strings.TrimSpace(raw)); err == nil {
			return t
		}
	}
	return time.Time{}
}

// roundRatio divides two integers and rounds half away from zero.
func roundRatio(numerator, denominator int64) int {
	return int(decimal.NewFromInt(numerator).
		Div(decimal.NewFromInt(denominator)).
		Round(0).
		IntPart())
}
