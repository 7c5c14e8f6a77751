package repository

import (
	"context"

	"lessonbook/internal/infra"
	"lessonbook/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CreditLedger is an append-only entry ledger. The balance is the sum of all
// entries for a user, so spends and refunds never overwrite each other.
type CreditLedger struct {
	pool *pgxpool.Pool
}

func NewCreditLedger(pool *pgxpool.Pool) *CreditLedger {
	return &CreditLedger{pool: pool}
}

func (r *CreditLedger) AvailableCredits(ctx context.Context, userID uuid.UUID) (int, error) {
	var balance int
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0)
		FROM credit_entries
		WHERE user_id = $1`,
		userID,
	).Scan(&balance)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to read credit balance", err)
	}
	return balance, nil
}

// Spend records a negative entry inside the caller's transaction. The balance
// is re-checked under the transaction so concurrent confirmations cannot spend
// the same credits twice.
func (r *CreditLedger) Spend(ctx context.Context, tx pgx.Tx, userID uuid.UUID, amount int) error {
	if amount <= 0 {
		return infra.WrapRepoErr("spend amount must be positive", errs.New("invalid amount"), infra.KindConflict)
	}

	// Aggregates cannot take row locks, so serialize per user with an
	// advisory lock before summing.
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1::text))`, userID); err != nil {
		return infra.WrapRepoErr("failed to lock credit balance", err)
	}

	var balance int
	err := tx.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0)
		FROM credit_entries
		WHERE user_id = $1`,
		userID,
	).Scan(&balance)
	if err != nil {
		return infra.WrapRepoErr("failed to read credit balance", err)
	}
	if balance < amount {
		return infra.WrapRepoErr("credit balance below spend amount", errs.New("insufficient balance"), infra.KindConflict)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO credit_entries (id, user_id, amount, reason, created_at)
		VALUES ($1, $2, $3, 'lesson_booking', now())`,
		uuid.New(), userID, -amount,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to record credit spend", err)
	}
	return nil
}

// Refund records a positive entry tied to the cancelled lesson. The partial
// unique index on lesson_id keeps a retried cancellation from refunding twice.
func (r *CreditLedger) Refund(ctx context.Context, tx pgx.Tx, userID, lessonID uuid.UUID, amount int) error {
	if amount <= 0 {
		return infra.WrapRepoErr("refund amount must be positive", errs.New("invalid amount"), infra.KindConflict)
	}

	_, err := tx.Exec(ctx, `
		INSERT INTO credit_entries (id, user_id, amount, reason, lesson_id, created_at)
		VALUES ($1, $2, $3, 'lesson_refund', $4, now())
		ON CONFLICT (lesson_id) WHERE reason = 'lesson_refund' DO NOTHING`,
		uuid.New(), userID, amount, lessonID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to record credit refund", err)
	}
	return nil
}
