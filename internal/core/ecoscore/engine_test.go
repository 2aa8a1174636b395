package ecoscore_test

import (
	"testing"
	"time"

	"github.com/ecovault/eco_finance_app/internal/core/domain"
	"github.com/ecovault/eco_finance_app/internal/core/ecoscore"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

func newTestEngine() *ecoscore.Engine {
	return ecoscore.NewEngine(ecoscore.WithClock(func() time.Time { return fixedTime }))
}

func sampleRows() []domain.RawRow {
	return []domain.RawRow{
		{Date: "2024-03-01", Merchant: "Whole Foods", Category: "groceries", Amount: "$100.00"},
		{Date: "2024-03-02", Merchant: "Uber", Category: "transportation", Amount: "20.00"},
		{Date: "2024-03-03", Merchant: "Joe's Diner", Category: "dining", Amount: "30.00"},
	}
}

func TestProcess_ScoresAndFlagsTransactions(t *testing.T) {
	result, err := newTestEngine().Process(sampleRows(), 7)

	require.NoError(t, err)
	require.Len(t, result.Transactions, 3)

	wholeFoods := result.Transactions[0]
	assert.Equal(t, int64(7), wholeFoods.OwnerID)
	assert.Equal(t, 85, wholeFoods.EcoScore)
	assert.False(t, wholeFoods.HasAlternatives)
	assert.True(t, decimal.NewFromInt(100).Equal(wholeFoods.Amount))
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), wholeFoods.Date)

	uber := result.Transactions[1]
	assert.Equal(t, 60, uber.EcoScore)
	assert.True(t, uber.HasAlternatives)

	diner := result.Transactions[2]
	assert.Equal(t, 65, diner.EcoScore)
	assert.True(t, diner.HasAlternatives)
}

func TestProcess_SummaryAggregates(t *testing.T) {
	result, err := newTestEngine().Process(sampleRows(), 7)

	require.NoError(t, err)
	summary := result.Summary
	assert.Equal(t, int64(7), summary.OwnerID)
	// (85 + 60 + 65) / 3
	assert.Equal(t, 70, summary.OverallScore)
	// 15*0.05*100 + 40*0.05*20 + 35*0.05*30 = 75 + 40 + 52.5
	assert.Equal(t, "167.5", summary.CarbonFootprintKg.String())
	// 15*0.001*100 + 40*0.001*20 + 35*0.001*30 = 1.5 + 0.8 + 1.05
	assert.Equal(t, "3.4", summary.WaterUsageLiters.String())
	// only the 85 clears the sustainable threshold: 1/3 rounded
	assert.Equal(t, 33, summary.SustainablePercent)
	assert.Equal(t, fixedTime, summary.ComputedAt)
}

func TestProcess_AllAtThresholdIsFullySustainable(t *testing.T) {
	rows := []domain.RawRow{
		{Date: "2024-03-01", Merchant: "Chipotle", Category: "dining", Amount: "10.00"},
		{Date: "2024-03-02", Merchant: "Chipotle", Category: "dining", Amount: "12.00"},
	}

	result, err := newTestEngine().Process(rows, 1)

	require.NoError(t, err)
	assert.Equal(t, 70, result.Summary.OverallScore)
	assert.Equal(t, 100, result.Summary.SustainablePercent)
}

func TestProcess_CategoryBreakdowns(t *testing.T) {
	rows := []domain.RawRow{
		{Date: "2024-03-01", Merchant: "Whole Foods", Category: "Groceries", Amount: "100.00"},
		{Date: "2024-03-02", Merchant: "Trader Joe's", Category: "groceries", Amount: "50.555"},
		{Date: "2024-03-03", Merchant: "Uber", Category: "transportation", Amount: "20.00"},
	}

	result, err := newTestEngine().Process(rows, 3)

	require.NoError(t, err)
	require.Len(t, result.Breakdowns, 2)

	groceries := result.Breakdowns[0]
	assert.Equal(t, "groceries", groceries.Category)
	assert.Equal(t, "150.56", groceries.TotalAmount.String())
	// (85 + 80) / 2 = 82.5 rounds away from zero
	assert.Equal(t, 83, groceries.AverageScore)

	transport := result.Breakdowns[1]
	assert.Equal(t, "transportation", transport.Category)
	assert.Equal(t, 60, transport.AverageScore)

	// Per-transaction records keep the category exactly as uploaded.
	assert.Equal(t, "Groceries", result.Transactions[0].Category)
}

func TestProcess_BreakdownAmountsSumToTransactionTotal(t *testing.T) {
	result, err := newTestEngine().Process(sampleRows(), 7)
	require.NoError(t, err)

	txnTotal := decimal.Zero
	for _, txn := range result.Transactions {
		txnTotal = txnTotal.Add(txn.Amount)
	}
	breakdownTotal := decimal.Zero
	for _, b := range result.Breakdowns {
		breakdownTotal = breakdownTotal.Add(b.TotalAmount)
	}

	diff := txnTotal.Sub(breakdownTotal).Abs()
	assert.True(t, diff.LessThanOrEqual(decimal.NewFromFloat(0.01)),
		"breakdown total %s deviates from transaction total %s", breakdownTotal, txnTotal)
}

func TestProcess_EmptyBatch(t *testing.T) {
	result, err := newTestEngine().Process(nil, 7)

	assert.Nil(t, result)
	var emptyErr *ecoscore.EmptyBatchError
	assert.ErrorAs(t, err, &emptyErr)
}

func TestProcess_InvalidAmountAbortsWholeBatch(t *testing.T) {
	rows := sampleRows()
	rows = append(rows, domain.RawRow{Date: "2024-03-04", Merchant: "Target", Category: "shopping", Amount: "twelve"})

	result, err := newTestEngine().Process(rows, 7)

	assert.Nil(t, result, "a late bad row must leave no partial output")
	var amountErr *ecoscore.InvalidAmountError
	require.ErrorAs(t, err, &amountErr)
	assert.Equal(t, "twelve", amountErr.Raw)
}

func TestProcess_AmountNormalization(t *testing.T) {
	rows := []domain.RawRow{
		{Date: "2024-03-01", Merchant: "Patagonia", Category: "shopping", Amount: "$1,234.56"},
		{Date: "2024-03-02", Merchant: "Refund Co", Category: "other", Amount: "-25.00"},
	}

	result, err := newTestEngine().Process(rows, 2)

	require.NoError(t, err)
	assert.Equal(t, "1234.56", result.Transactions[0].Amount.String())
	// Negative amounts pass through uninterpreted.
	assert.Equal(t, "-25", result.Transactions[1].Amount.String())
}

func TestProcess_Idempotent(t *testing.T) {
	engine := newTestEngine()

	first, err := engine.Process(sampleRows(), 7)
	require.NoError(t, err)
	second, err := engine.Process(sampleRows(), 7)
	require.NoError(t, err)

	assert.Equal(t, first.Summary, second.Summary)
	assert.Equal(t, first.Transactions, second.Transactions)
	assert.Equal(t, first.Breakdowns, second.Breakdowns)
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{"42.50", "42.5", false},
		{"$42.50", "42.5", false},
		{"$1,000,000.99", "1000000.99", false},
		{" 19.99 ", "19.99", false},
		{"-3.50", "-3.5", false},
		{"", "", true},
		{"abc", "", true},
		{"$", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ecoscore.ParseAmount(tt.raw)
			if tt.wantErr {
				var amountErr *ecoscore.InvalidAmountError
				require.ErrorAs(t, err, &amountErr)
				assert.Equal(t, tt.raw, amountErr.Raw)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}
