package pgsql

import (
	"context"
	"fmt"

	"github.com/ecovault/eco_finance_app/internal/core/domain"
	portsrepo "github.com/ecovault/eco_finance_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxRewardRepository implements cashback reward persistence using pgx.
type PgxRewardRepository struct {
	BaseRepository
}

func newPgxRewardRepository(db *pgxpool.Pool) portsrepo.RewardRepositoryFacade {
	return &PgxRewardRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.RewardRepositoryFacade = (*PgxRewardRepository)(nil)

func (r *PgxRewardRepository) SaveReward(ctx context.Context, reward domain.CashbackReward) error {
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO cashback_rewards (reward_id, owner_id, summary_id, tier, amount, earned_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`, reward.RewardID, reward.OwnerID, reward.SummaryID, reward.Tier, reward.Amount, reward.EarnedAt)
	if err != nil {
		return fmt.Errorf("failed to insert reward: %w", err)
	}
	return nil
}

func (r *PgxRewardRepository) FindRewardsByOwner(ctx context.Context, ownerID int64, limit int, offset int) ([]domain.CashbackReward, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT reward_id, owner_id, summary_id, tier, amount, earned_at
		FROM cashback_rewards
		WHERE owner_id = $1
		ORDER BY earned_at DESC
		LIMIT $2 OFFSET $3;
	`, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query rewards: %w", err)
	}
	defer rows.Close()

	var rewards []domain.CashbackReward
	for rows.Next() {
		var rw domain.CashbackReward
		err := rows.Scan(&rw.RewardID, &rw.OwnerID, &rw.SummaryID, &rw.Tier, &rw.Amount, &rw.EarnedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reward: %w", err)
		}
		rewards = append(rewards, rw)
	}
	return rewards, rows.Err()
}
