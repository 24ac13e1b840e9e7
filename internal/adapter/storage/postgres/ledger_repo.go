package postgres

import (
	"context"
	"fmt"
)

// LedgerRepo implements ports.LedgerRepository. One row per customer phone,
// accumulating lifetime spend and loyalty points.
type LedgerRepo struct {
	pool Pool
}

// NewLedgerRepo creates a new LedgerRepo.
func NewLedgerRepo(pool Pool) *LedgerRepo {
	return &LedgerRepo{pool: pool}
}

// RecordSpend upserts the customer's ledger row, adding the paid amount and
// earned points to the running totals.
func (r *LedgerRepo) RecordSpend(ctx context.Context, phone string, amount, points int64) error {
	query := `INSERT INTO loyalty_ledger (phone, total_spend, points, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (phone) DO UPDATE SET
			total_spend = loyalty_ledger.total_spend + EXCLUDED.total_spend,
			points = loyalty_ledger.points + EXCLUDED.points,
			updated_at = now()`

	_, err := r.pool.Exec(ctx, query, phone, amount, points)
	if err != nil {
		return fmt.Errorf("record ledger spend: %w", err)
	}
	return nil
}
