package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/Dulllu/netsasa/internal/core/domain"
	"github.com/Dulllu/netsasa/internal/core/ports"
)

// TransactionRepo implements ports.TransactionRepository. It is the durable
// history behind the in-memory registry: rows outlive the retention window
// and feed the vendor dashboard.
type TransactionRepo struct {
	pool Pool
}

// NewTransactionRepo creates a new TransactionRepo.
func NewTransactionRepo(pool Pool) *TransactionRepo {
	return &TransactionRepo{pool: pool}
}

const checkoutColumns = `checkout_id, transaction_id, phone, amount, package_id,
	status, result_code, result_desc, mpesa_receipt, raw_callback, created_at, completed_at`

// Create inserts a freshly initiated checkout row.
func (r *TransactionRepo) Create(ctx context.Context, c *domain.Checkout) error {
	query := `INSERT INTO checkouts (` + checkoutColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.pool.Exec(ctx, query,
		c.CheckoutID, c.GatewayTransactionID, c.Phone, c.Amount, c.PackageID,
		c.Status, c.ResultCode, c.ResultDesc, c.ReceiptNumber, c.RawCallback,
		c.CreatedAt, c.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("insert checkout: %w", err)
	}
	return nil
}

// GetByCheckoutID fetches a checkout row by its gateway checkout id.
// Returns (nil, nil) when no row exists.
func (r *TransactionRepo) GetByCheckoutID(ctx context.Context, checkoutID string) (*domain.Checkout, error) {
	query := `SELECT ` + checkoutColumns + ` FROM checkouts WHERE checkout_id = $1`
	return r.scanCheckout(r.pool.QueryRow(ctx, query, checkoutID))
}

// MarkTerminal records the terminal outcome on an existing history row.
func (r *TransactionRepo) MarkTerminal(ctx context.Context, c *domain.Checkout) error {
	query := `UPDATE checkouts SET status = $1, transaction_id = $2, result_code = $3,
		result_desc = $4, mpesa_receipt = $5, raw_callback = $6, completed_at = $7
		WHERE checkout_id = $8`

	tag, err := r.pool.Exec(ctx, query,
		c.Status, c.GatewayTransactionID, c.ResultCode,
		c.ResultDesc, c.ReceiptNumber, c.RawCallback, c.CompletedAt,
		c.CheckoutID,
	)
	if err != nil {
		return fmt.Errorf("mark checkout terminal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("checkout not found: %s", c.CheckoutID)
	}
	return nil
}

// ListByPhone fetches the most recent checkouts for a customer phone.
func (r *TransactionRepo) ListByPhone(ctx context.Context, phone string, limit int) ([]domain.Checkout, error) {
	query := `SELECT ` + checkoutColumns + ` FROM checkouts
		WHERE phone = $1 ORDER BY created_at DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, phone, limit)
	if err != nil {
		return nil, fmt.Errorf("list checkouts by phone: %w", err)
	}
	defer rows.Close()

	return collectCheckouts(rows)
}

// List fetches checkouts with filtering and pagination.
func (r *TransactionRepo) List(ctx context.Context, params ports.CheckoutListParams) ([]domain.Checkout, int64, error) {
	var conditions []string
	var args []any
	argIdx := 1

	if params.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *params.Status)
		argIdx++
	}
	if params.Phone != nil {
		conditions = append(conditions, fmt.Sprintf("phone = $%d", argIdx))
		args = append(args, *params.Phone)
		argIdx++
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	// Count total
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM checkouts %s", where)
	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count checkouts: %w", err)
	}

	// Fetch page
	offset := (params.Page - 1) * params.PageSize
	dataQuery := fmt.Sprintf(`SELECT `+checkoutColumns+` FROM checkouts %s
		ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, where, argIdx, argIdx+1)
	args = append(args, params.PageSize, offset)

	rows, err := r.pool.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list checkouts: %w", err)
	}
	defer rows.Close()

	checkouts, err := collectCheckouts(rows)
	if err != nil {
		return nil, 0, err
	}
	return checkouts, total, nil
}

// GetStats retrieves aggregated checkout statistics for the dashboard.
func (r *TransactionRepo) GetStats(ctx context.Context) (*ports.CheckoutStats, error) {
	query := `SELECT
		COUNT(*) AS total,
		COUNT(*) FILTER (WHERE status = 'success') AS successful,
		COUNT(*) FILTER (WHERE status = 'failed') AS failed,
		COUNT(*) FILTER (WHERE status = 'cancelled') AS cancelled,
		COALESCE(SUM(amount) FILTER (WHERE status = 'success'), 0) AS revenue
		FROM checkouts`

	stats := &ports.CheckoutStats{}
	err := r.pool.QueryRow(ctx, query).Scan(
		&stats.Total, &stats.Successful, &stats.Failed, &stats.Cancelled, &stats.TotalRevenue,
	)
	if err != nil {
		return nil, fmt.Errorf("get checkout stats: %w", err)
	}
	return stats, nil
}

// scanCheckout is a helper to scan a single row into a Checkout.
func (r *TransactionRepo) scanCheckout(row pgx.Row) (*domain.Checkout, error) {
	c := &domain.Checkout{}
	err := row.Scan(
		&c.CheckoutID, &c.GatewayTransactionID, &c.Phone, &c.Amount, &c.PackageID,
		&c.Status, &c.ResultCode, &c.ResultDesc, &c.ReceiptNumber, &c.RawCallback,
		&c.CreatedAt, &c.CompletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan checkout: %w", err)
	}
	return c, nil
}

func collectCheckouts(rows pgx.Rows) ([]domain.Checkout, error) {
	var checkouts []domain.Checkout
	for rows.Next() {
		c := domain.Checkout{}
		err := rows.Scan(
			&c.CheckoutID, &c.GatewayTransactionID, &c.Phone, &c.Amount, &c.PackageID,
			&c.Status, &c.ResultCode, &c.ResultDesc, &c.ReceiptNumber, &c.RawCallback,
			&c.CreatedAt, &c.CompletedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan checkout row: %w", err)
		}
		checkouts = append(checkouts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate checkout rows: %w", err)
	}
	return checkouts, nil
}
