package services_test

import (
	"context"
	"testing"

	"github.com/ecovault/eco_finance_app/internal/apperrors"
	"github.com/ecovault/eco_finance_app/internal/core/domain"
	portssvc "github.com/ecovault/eco_finance_app/internal/core/ports/services"
	"github.com/ecovault/eco_finance_app/internal/core/services"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type RecommendationServiceTestSuite struct {
	suite.Suite
	mockBatchRepo *MockEcoBatchRepository
	service       portssvc.RecommendationSvcFacade
}

func (suite *RecommendationServiceTestSuite) SetupTest() {
	suite.mockBatchRepo = new(MockEcoBatchRepository)
	suite.service = services.NewRecommendationService(suite.mockBatchRepo)
}

func (suite *RecommendationServiceTestSuite) TestListRecommendations_MidScore() {
	ctx := context.Background()
	summary := &domain.SustainabilitySummary{OwnerID: 42, OverallScore: 70}

	suite.mockBatchRepo.On("FindLatestSummary", ctx, int64(42)).Return(summary, nil).Once()

	score, funds, err := suite.service.ListRecommendations(ctx, 42)

	suite.Require().NoError(err)
	suite.Equal(70, score)

	tickers := make([]string, len(funds))
	for i, f := range funds {
		tickers[i] = f.Ticker
	}
	// A score of 70 unlocks everything up to the water fund, not the
	// high-bar regenerative agriculture fund.
	suite.Equal([]string{"GRNB", "ESGV", "CLNR", "WTRX"}, tickers)
	suite.mockBatchRepo.AssertExpectations(suite.T())
}

func (suite *RecommendationServiceTestSuite) TestListRecommendations_LowScore() {
	ctx := context.Background()
	summary := &domain.SustainabilitySummary{OwnerID: 42, OverallScore: 30}

	suite.mockBatchRepo.On("FindLatestSummary", ctx, int64(42)).Return(summary, nil).Once()

	score, funds, err := suite.service.ListRecommendations(ctx, 42)

	suite.Require().NoError(err)
	suite.Equal(30, score)
	suite.Require().Len(funds, 1)
	suite.Equal("GRNB", funds[0].Ticker)
}

func (suite *RecommendationServiceTestSuite) TestListRecommendations_NoBatchesYet() {
	ctx := context.Background()

	suite.mockBatchRepo.On("FindLatestSummary", ctx, int64(42)).Return(nil, apperrors.ErrNotFound).Once()

	_, funds, err := suite.service.ListRecommendations(ctx, 42)

	suite.Require().Error(err)
	suite.Nil(funds)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestRecommendationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RecommendationServiceTestSuite))
}
