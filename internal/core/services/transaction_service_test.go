package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/ecovault/eco_finance_app/internal/core/domain"
	"github.com/ecovault/eco_finance_app/internal/core/ecoscore"
	"github.com/ecovault/eco_finance_app/internal/core/ingest"
	portssvc "github.com/ecovault/eco_finance_app/internal/core/ports/services"
	"github.com/ecovault/eco_finance_app/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock EcoBatchRepository ---
type MockEcoBatchRepository struct {
	mock.Mock
}

func (m *MockEcoBatchRepository) SaveBatch(ctx context.Context, summary domain.SustainabilitySummary, txns []domain.ScoredTransaction, breakdowns []domain.CategoryBreakdown) error {
	args := m.Called(ctx, summary, txns, breakdowns)
	return args.Error(0)
}

func (m *MockEcoBatchRepository) FindTransactionsByOwner(ctx context.Context, ownerID int64, limit int, offset int) ([]domain.ScoredTransaction, error) {
	args := m.Called(ctx, ownerID, limit, offset)
	var txns []domain.ScoredTransaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.ScoredTransaction)
	}
	return txns, args.Error(1)
}

func (m *MockEcoBatchRepository) FindLatestSummary(ctx context.Context, ownerID int64) (*domain.SustainabilitySummary, error) {
	args := m.Called(ctx, ownerID)
	var summary *domain.SustainabilitySummary
	if args.Get(0) != nil {
		summary = args.Get(0).(*domain.SustainabilitySummary)
	}
	return summary, args.Error(1)
}

func (m *MockEcoBatchRepository) FindSummaries(ctx context.Context, ownerID int64, limit int, offset int) ([]domain.SustainabilitySummary, error) {
	args := m.Called(ctx, ownerID, limit, offset)
	var summaries []domain.SustainabilitySummary
	if args.Get(0) != nil {
		summaries = args.Get(0).([]domain.SustainabilitySummary)
	}
	return summaries, args.Error(1)
}

func (m *MockEcoBatchRepository) FindBreakdownsForSummary(ctx context.Context, summaryID string) ([]domain.CategoryBreakdown, error) {
	args := m.Called(ctx, summaryID)
	var breakdowns []domain.CategoryBreakdown
	if args.Get(0) != nil {
		breakdowns = args.Get(0).([]domain.CategoryBreakdown)
	}
	return breakdowns, args.Error(1)
}

// --- Mock RewardsAwarder ---
type MockRewardsAwarder struct {
	mock.Mock
}

func (m *MockRewardsAwarder) AwardForBatch(ctx context.Context, result *ecoscore.Result) (*domain.CashbackReward, error) {
	args := m.Called(ctx, result)
	var reward *domain.CashbackReward
	if args.Get(0) != nil {
		reward = args.Get(0).(*domain.CashbackReward)
	}
	return reward, args.Error(1)
}

// --- Test Suite ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockBatchRepo *MockEcoBatchRepository
	mockRewards   *MockRewardsAwarder
	service       portssvc.TransactionSvcFacade
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockBatchRepo = new(MockEcoBatchRepository)
	suite.mockRewards = new(MockRewardsAwarder)

	fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	engine := ecoscore.NewEngine(ecoscore.WithClock(func() time.Time { return fixed }))

	suite.service = services.NewTransactionService(
		suite.mockBatchRepo,
		services.WithEngine(engine),
		services.WithRewardsAwarder(suite.mockRewards),
	)
}

const sampleCSV = "date,merchant,category,amount\n" +
	"2024-01-15,Whole Foods,Groceries,100.00\n" +
	"2024-01-16,Uber,Transport,20.00\n"

func (suite *TransactionServiceTestSuite) TestUploadCSV_Success() {
	ctx := context.Background()

	suite.mockBatchRepo.On("SaveBatch", ctx,
		mock.AnythingOfType("domain.SustainabilitySummary"),
		mock.AnythingOfType("[]domain.ScoredTransaction"),
		mock.AnythingOfType("[]domain.CategoryBreakdown"),
	).Return(nil).Once()
	suite.mockRewards.On("AwardForBatch", ctx, mock.AnythingOfType("*ecoscore.Result")).Return(nil, nil).Once()

	result, err := suite.service.UploadCSV(ctx, 42, sampleCSV)

	suite.Require().NoError(err)
	suite.Require().Len(result.Transactions, 2)

	// The service assigns ids before persisting
	suite.NotEmpty(result.Summary.SummaryID)
	for _, txn := range result.Transactions {
		suite.NotEmpty(txn.TransactionID)
		suite.Equal(int64(42), txn.OwnerID)
	}
	for _, b := range result.Breakdowns {
		suite.NotEmpty(b.BreakdownID)
	}

	suite.mockBatchRepo.AssertExpectations(suite.T())
	suite.mockRewards.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestUploadCSV_ParseErrorSkipsPersistence() {
	ctx := context.Background()

	result, err := suite.service.UploadCSV(ctx, 42, "merchant,category\nWhole Foods,Groceries\n")

	suite.Require().Error(err)
	suite.Nil(result)

	var parseErr *ingest.ParseError
	suite.ErrorAs(err, &parseErr)
	suite.mockBatchRepo.AssertNotCalled(suite.T(), "SaveBatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestUploadCSV_InvalidAmountSkipsPersistence() {
	ctx := context.Background()
	csv := "date,merchant,category,amount\n" +
		"2024-01-15,Whole Foods,Groceries,twelve\n"

	result, err := suite.service.UploadCSV(ctx, 42, csv)

	suite.Require().Error(err)
	suite.Nil(result)

	var amountErr *ecoscore.InvalidAmountError
	suite.ErrorAs(err, &amountErr)
	suite.Equal("twelve", amountErr.Raw)
	suite.mockBatchRepo.AssertNotCalled(suite.T(), "SaveBatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestUploadCSV_SaveError() {
	ctx := context.Background()

	suite.mockBatchRepo.On("SaveBatch", ctx,
		mock.AnythingOfType("domain.SustainabilitySummary"),
		mock.AnythingOfType("[]domain.ScoredTransaction"),
		mock.AnythingOfType("[]domain.CategoryBreakdown"),
	).Return(context.DeadlineExceeded).Once()

	result, err := suite.service.UploadCSV(ctx, 42, sampleCSV)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, context.DeadlineExceeded)
	suite.mockRewards.AssertNotCalled(suite.T(), "AwardForBatch", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestIngestRows_FeedsSamePipeline() {
	ctx := context.Background()
	rows := []domain.RawRow{
		{Date: "2024-02-01", Merchant: "Patagonia", Category: "Clothing", Amount: "150.00"},
	}

	suite.mockBatchRepo.On("SaveBatch", ctx,
		mock.AnythingOfType("domain.SustainabilitySummary"),
		mock.AnythingOfType("[]domain.ScoredTransaction"),
		mock.AnythingOfType("[]domain.CategoryBreakdown"),
	).Return(nil).Once()
	suite.mockRewards.On("AwardForBatch", ctx, mock.AnythingOfType("*ecoscore.Result")).Return(nil, nil).Once()

	result, err := suite.service.IngestRows(ctx, 7, rows)

	suite.Require().NoError(err)
	suite.Require().Len(result.Transactions, 1)
	suite.Equal("Patagonia", result.Transactions[0].Merchant)
	suite.Equal(90, result.Transactions[0].EcoScore)
	suite.mockBatchRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListLatestBreakdowns_UsesLatestSummary() {
	ctx := context.Background()
	summary := &domain.SustainabilitySummary{SummaryID: "sum-1", OwnerID: 42}
	breakdowns := []domain.CategoryBreakdown{{BreakdownID: "b-1", Category: "Groceries"}}

	suite.mockBatchRepo.On("FindLatestSummary", ctx, int64(42)).Return(summary, nil).Once()
	suite.mockBatchRepo.On("FindBreakdownsForSummary", ctx, "sum-1").Return(breakdowns, nil).Once()

	got, err := suite.service.ListLatestBreakdowns(ctx, 42)

	suite.Require().NoError(err)
	suite.Equal(breakdowns, got)
	suite.mockBatchRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListSummaries_PagesHistory() {
	ctx := context.Background()
	summaries := []domain.SustainabilitySummary{
		{SummaryID: "sum-2", OwnerID: 42},
		{SummaryID: "sum-1", OwnerID: 42},
	}

	suite.mockBatchRepo.On("FindSummaries", ctx, int64(42), 20, 0).Return(summaries, nil).Once()

	got, err := suite.service.ListSummaries(ctx, 42, 20, 0)

	suite.Require().NoError(err)
	suite.Equal(summaries, got)
	suite.mockBatchRepo.AssertExpectations(suite.T())
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
