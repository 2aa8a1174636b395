package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecovault/eco_finance_app/internal/apperrors"
	"github.com/ecovault/eco_finance_app/internal/core/domain"
	portsrepo "github.com/ecovault/eco_finance_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxLinkedAccountRepository implements bank connection persistence using pgx.
type PgxLinkedAccountRepository struct {
	BaseRepository
}

func newPgxLinkedAccountRepository(db *pgxpool.Pool) portsrepo.LinkedAccountRepositoryFacade {
	return &PgxLinkedAccountRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.LinkedAccountRepositoryFacade = (*PgxLinkedAccountRepository)(nil)

const linkedAccountColumns = `account_id, owner_id, external_id, institution, mask, last_synced_at, created_at, last_updated_at`

func scanLinkedAccount(row pgx.Row) (*domain.LinkedAccount, error) {
	var a domain.LinkedAccount
	err := row.Scan(
		&a.AccountID, &a.OwnerID, &a.ExternalID, &a.Institution,
		&a.Mask, &a.LastSyncedAt, &a.CreatedAt, &a.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan linked account: %w", err)
	}
	return &a, nil
}

func (r *PgxLinkedAccountRepository) SaveLinkedAccount(ctx context.Context, account domain.LinkedAccount) error {
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO linked_accounts (`+linkedAccountColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`,
		account.AccountID, account.OwnerID, account.ExternalID, account.Institution,
		account.Mask, account.LastSyncedAt, account.CreatedAt, account.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert linked account: %w", err)
	}
	return nil
}

func (r *PgxLinkedAccountRepository) FindLinkedAccountByID(ctx context.Context, accountID string) (*domain.LinkedAccount, error) {
	row := r.Pool.QueryRow(ctx, `
		SELECT `+linkedAccountColumns+`
		FROM linked_accounts
		WHERE account_id = $1;
	`, accountID)
	return scanLinkedAccount(row)
}

func (r *PgxLinkedAccountRepository) FindLinkedAccountsByOwner(ctx context.Context, ownerID int64) ([]domain.LinkedAccount, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT `+linkedAccountColumns+`
		FROM linked_accounts
		WHERE owner_id = $1
		ORDER BY created_at;
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query linked accounts: %w", err)
	}
	defer rows.Close()

	var accounts []domain.LinkedAccount
	for rows.Next() {
		account, err := scanLinkedAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, *account)
	}
	return accounts, rows.Err()
}

func (r *PgxLinkedAccountRepository) UpdateLastSynced(ctx context.Context, accountID string, syncedAt time.Time) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE linked_accounts
		SET last_synced_at = $2, last_updated_at = $2
		WHERE account_id = $1;
	`, accountID, syncedAt)
	if err != nil {
		return fmt.Errorf("failed to update last synced: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
