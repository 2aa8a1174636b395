package services

import (
	portsrepo "github.com/ecovault/eco_finance_app/internal/core/ports/repositories"
	portssvc "github.com/ecovault/eco_finance_app/internal/core/ports/services"
	"github.com/ecovault/eco_finance_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	fetcher portssvc.BankTransactionFetcher,
	searcher portssvc.EcoProductSearcher,
) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Rewards = NewRewardsService(repos.RewardRepo)
	container.Transaction = NewTransactionService(
		repos.EcoBatchRepo,
		WithRewardsAwarder(container.Rewards),
	)
	container.Recommendation = NewRecommendationService(repos.EcoBatchRepo)
	container.BankSync = NewBankSyncService(repos.LinkedAccountRepo, fetcher, container.Transaction)
	container.ProductSearch = NewProductSearchService(searcher)
	container.Token = NewTokenService(cfg, container.User)
	container.GoogleOAuth = NewGoogleOAuthService(cfg, repos.UserRepo)

	return container
}

// Compile-time interface checks for the service implementations.
var (
	_ portssvc.UserSvcFacade           = (*userService)(nil)
	_ portssvc.TransactionSvcFacade    = (*transactionService)(nil)
	_ portssvc.RewardsSvcFacade        = (*rewardsService)(nil)
	_ portssvc.RecommendationSvcFacade = (*recommendationService)(nil)
	_ portssvc.BankSyncSvcFacade       = (*bankSyncService)(nil)
)
