package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecovault/eco_finance_app/internal/apperrors"
	"github.com/ecovault/eco_finance_app/internal/core/domain"
	portsrepo "github.com/ecovault/eco_finance_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxEcoBatchRepository persists scored batches. SaveBatch writes the
// summary, transactions and breakdowns inside one database transaction so a
// failed batch leaves no partial rows behind.
type PgxEcoBatchRepository struct {
	BaseRepository
}

func newPgxEcoBatchRepository(db *pgxpool.Pool) portsrepo.EcoBatchRepositoryFacade {
	return &PgxEcoBatchRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.EcoBatchRepositoryFacade = (*PgxEcoBatchRepository)(nil)

func (r *PgxEcoBatchRepository) SaveBatch(
	ctx context.Context,
	summary domain.SustainabilitySummary,
	txns []domain.ScoredTransaction,
	breakdowns []domain.CategoryBreakdown,
) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO sustainability_summaries
			(summary_id, owner_id, overall_score, carbon_footprint_kg, sustainable_percent, water_usage_liters, computed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`,
		summary.SummaryID,
		summary.OwnerID,
		summary.OverallScore,
		summary.CarbonFootprintKg,
		summary.SustainablePercent,
		summary.WaterUsageLiters,
		summary.ComputedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert summary: %w", err)
	}

	txnRows := make([][]any, len(txns))
	for i, t := range txns {
		var date any
		if !t.Date.IsZero() {
			date = t.Date
		}
		txnRows[i] = []any{
			t.TransactionID, t.OwnerID, summary.SummaryID, date, t.Merchant,
			t.Category, t.Amount, t.EcoScore, t.HasAlternatives, t.CreatedAt, t.LastUpdatedAt,
		}
	}
	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"scored_transactions"},
		[]string{"transaction_id", "owner_id", "summary_id", "txn_date", "merchant", "category", "amount", "eco_score", "has_alternatives", "created_at", "last_updated_at"},
		pgx.CopyFromRows(txnRows),
	)
	if err != nil {
		return fmt.Errorf("failed to insert transactions: %w", err)
	}

	for _, b := range breakdowns {
		_, err = tx.Exec(ctx, `
			INSERT INTO category_breakdowns
				(breakdown_id, owner_id, summary_id, category, total_amount, average_score)
			VALUES ($1, $2, $3, $4, $5, $6);
		`, b.BreakdownID, b.OwnerID, summary.SummaryID, b.Category, b.TotalAmount, b.AverageScore)
		if err != nil {
			return fmt.Errorf("failed to insert breakdown: %w", err)
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxEcoBatchRepository) FindTransactionsByOwner(ctx context.Context, ownerID int64, limit int, offset int) ([]domain.ScoredTransaction, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT transaction_id, owner_id, COALESCE(txn_date, 'epoch'::timestamptz), merchant, category,
		       amount, eco_score, has_alternatives, created_at, last_updated_at
		FROM scored_transactions
		WHERE owner_id = $1
		ORDER BY created_at DESC, txn_date DESC
		LIMIT $2 OFFSET $3;
	`, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var txns []domain.ScoredTransaction
	for rows.Next() {
		var t domain.ScoredTransaction
		err := rows.Scan(
			&t.TransactionID, &t.OwnerID, &t.Date, &t.Merchant, &t.Category,
			&t.Amount, &t.EcoScore, &t.HasAlternatives, &t.CreatedAt, &t.LastUpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, t)
	}
	return txns, rows.Err()
}

func (r *PgxEcoBatchRepository) FindLatestSummary(ctx context.Context, ownerID int64) (*domain.SustainabilitySummary, error) {
	row := r.Pool.QueryRow(ctx, `
		SELECT summary_id, owner_id, overall_score, carbon_footprint_kg, sustainable_percent, water_usage_liters, computed_at
		FROM sustainability_summaries
		WHERE owner_id = $1
		ORDER BY computed_at DESC
		LIMIT 1;
	`, ownerID)
	return scanSummary(row)
}

func (r *PgxEcoBatchRepository) FindSummaries(ctx context.Context, ownerID int64, limit int, offset int) ([]domain.SustainabilitySummary, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT summary_id, owner_id, overall_score, carbon_footprint_kg, sustainable_percent, water_usage_liters, computed_at
		FROM sustainability_summaries
		WHERE owner_id = $1
		ORDER BY computed_at DESC
		LIMIT $2 OFFSET $3;
	`, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query summaries: %w", err)
	}
	defer rows.Close()

	var summaries []domain.SustainabilitySummary
	for rows.Next() {
		summary, err := scanSummary(rows)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, *summary)
	}
	return summaries, rows.Err()
}

func (r *PgxEcoBatchRepository) FindBreakdownsForSummary(ctx context.Context, summaryID string) ([]domain.CategoryBreakdown, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT breakdown_id, owner_id, category, total_amount, average_score
		FROM category_breakdowns
		WHERE summary_id = $1
		ORDER BY category;
	`, summaryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query breakdowns: %w", err)
	}
	defer rows.Close()

	var breakdowns []domain.CategoryBreakdown
	for rows.Next() {
		var b domain.CategoryBreakdown
		if err := rows.Scan(&b.BreakdownID, &b.OwnerID, &b.Category, &b.TotalAmount, &b.AverageScore); err != nil {
			return nil, fmt.Errorf("failed to scan breakdown: %w", err)
		}
		breakdowns = append(breakdowns, b)
	}
	return breakdowns, rows.Err()
}

func scanSummary(row pgx.Row) (*domain.SustainabilitySummary, error) {
	var s domain.SustainabilitySummary
	err := row.Scan(
		&s.SummaryID, &s.OwnerID, &s.OverallScore, &s.CarbonFootprintKg,
		&s.SustainablePercent, &s.WaterUsageLiters, &s.ComputedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan summary: %w", err)
	}
	return &s, nil
}
