package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aidar/team-dao/internal/domain"
)

// AccountRepository реализует repository.AccountRepository для PostgreSQL
type AccountRepository struct {
	db *pgxpool.Pool
}

// NewAccountRepository создает новый экземпляр AccountRepository
func NewAccountRepository(db *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{db: db}
}

// Balance возвращает баланс счета
func (r *AccountRepository) Balance(ctx context.Context, account string) (int64, error) {
	return balance(ctx, r.db, account, false)
}

// Transfer переводит средства между счетами в отдельной транзакции
func (r *AccountRepository) Transfer(ctx context.Context, from, to string, amount int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx) // Ignore error as it will fail if transaction was committed
	}()

	if err := transfer(ctx, tx, from, to, amount); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Credit зачисляет средства на счет
func (r *AccountRepository) Credit(ctx context.Context, account string, amount int64) error {
	if amount <= 0 {
		return domain.ErrInvalidAmount
	}
	return credit(ctx, r.db, account, amount)
}

// txTreasury реализует repository.Treasury в рамках транзакции команды
type txTreasury struct {
	tx pgx.Tx
}

func (t *txTreasury) Balance(ctx context.Context, account string) (int64, error) {
	return balance(ctx, t.tx, account, true)
}

func (t *txTreasury) Transfer(ctx context.Context, from, to string, amount int64) error {
	return transfer(ctx, t.tx, from, to, amount)
}

func (t *txTreasury) RecordClaim(ctx context.Context, claim *domain.RewardClaim) error {
	query := `
		INSERT INTO reward_claims (claim_id, team_name, team_uid, beneficiary, claimed_by, amount, claimed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := t.tx.Exec(ctx, query,
		claim.ID, claim.Team.Name, int64(claim.Team.UID),
		claim.Beneficiary, claim.ClaimedBy, claim.Amount, claim.ClaimedAt,
	)
	return err
}

func balance(ctx context.Context, q querier, account string, forUpdate bool) (int64, error) {
	query := `SELECT balance FROM accounts WHERE account = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var amount int64
	err := q.QueryRow(ctx, query, account).Scan(&amount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}

	return amount, nil
}

func transfer(ctx context.Context, tx pgx.Tx, from, to string, amount int64) error {
	if amount <= 0 {
		return domain.ErrInvalidAmount
	}

	available, err := balance(ctx, tx, from, true)
	if err != nil {
		return err
	}
	if available < amount {
		return domain.ErrInsufficientFunds
	}

	_, err = tx.Exec(ctx, `
		UPDATE accounts
		SET balance = balance - $2, updated_at = NOW()
		WHERE account = $1
	`, from, amount)
	if err != nil {
		return err
	}

	return credit(ctx, tx, to, amount)
}

func credit(ctx context.Context, q querier, account string, amount int64) error {
	query := `
		INSERT INTO accounts (account, balance)
		VALUES ($1, $2)
		ON CONFLICT (account) DO UPDATE
		SET balance = accounts.balance + EXCLUDED.balance,
		    updated_at = NOW()
	`

	_, err := q.Exec(ctx, query, account, amount)
	return err
}
