package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/trip-collab/gw-trip-wallet/internal/apperrors"
	"github.com/trip-collab/gw-trip-wallet/internal/logger"
	"github.com/trip-collab/gw-trip-wallet/internal/models"
)

const expenseColumns = `
	expense_id, trip_id, title, amount, currency, paid_by_member_id,
	expense_date, note, payment_source, original_amount, original_currency,
	fx_rate, fx_source, amount_overridden, created_by_member_id,
	created_at, updated_at
`

// ExpenseWriteRepository handles expense write operations.
type ExpenseWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewExpenseWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ExpenseWriteRepository {
	return &ExpenseWriteRepository{db: db, txGetter: txGetter}
}

// Save performs an UPSERT keyed by expense_id: inserts a new expense or
// rewrites an existing one in place.
func (r *ExpenseWriteRepository) Save(ctx context.Context, e *models.ExpenseDB) error {
	const query = `
		INSERT INTO expenses (
			expense_id, trip_id, title, amount, currency, paid_by_member_id,
			expense_date, note, payment_source, original_amount, original_currency,
			fx_rate, fx_source, amount_overridden, created_by_member_id,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		ON CONFLICT (expense_id)
		DO UPDATE SET title = EXCLUDED.title,
		              amount = EXCLUDED.amount,
		              currency = EXCLUDED.currency,
		              paid_by_member_id = EXCLUDED.paid_by_member_id,
		              expense_date = EXCLUDED.expense_date,
		              note = EXCLUDED.note,
		              original_amount = EXCLUDED.original_amount,
		              original_currency = EXCLUDED.original_currency,
		              fx_rate = EXCLUDED.fx_rate,
		              fx_source = EXCLUDED.fx_source,
		              amount_overridden = EXCLUDED.amount_overridden,
		              updated_at = EXCLUDED.updated_at
	`

	_, err := r.executor(ctx).ExecContext(ctx, query,
		e.ExpenseID, e.TripID, e.Title, e.Amount, e.Currency, e.PaidByMemberID,
		e.ExpenseDate, e.Note, e.PaymentSource, e.OriginalAmount, e.OriginalCurrency,
		e.FxRate, e.FxSource, e.AmountOverridden, e.CreatedByMemberID,
		e.CreatedAt, e.UpdatedAt)
	if err != nil {
		logger.Log.Errorw("failed to save expense", "expense_id", e.ExpenseID, "trip_id", e.TripID, "error", err)
	}
	return err
}

// DeleteByIDAndTripID removes the expense if it belongs to the trip.
func (r *ExpenseWriteRepository) DeleteByIDAndTripID(ctx context.Context, expenseID, tripID uuid.UUID) error {
	const query = `DELETE FROM expenses WHERE expense_id = $1 AND trip_id = $2`

	_, err := r.executor(ctx).ExecContext(ctx, query, expenseID, tripID)
	if err != nil {
		logger.Log.Errorw("failed to delete expense", "expense_id", expenseID, "trip_id", tripID, "error", err)
	}
	return err
}

func (r *ExpenseWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// ExpenseReadRepository handles expense read operations.
type ExpenseReadRepository struct {
	db *sqlx.DB
}

func NewExpenseReadRepository(db *sqlx.DB) *ExpenseReadRepository {
	return &ExpenseReadRepository{db: db}
}

// GetByIDAndTripID returns the expense if it belongs to the trip.
func (r *ExpenseReadRepository) GetByIDAndTripID(ctx context.Context, expenseID, tripID uuid.UUID) (*models.ExpenseDB, error) {
	const query = `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE expense_id = $1 AND trip_id = $2
	`

	var e models.ExpenseDB
	err := r.db.GetContext(ctx, &e, query, expenseID, tripID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFoundf("expense not found")
	}
	if err != nil {
		logger.Log.Errorw("failed to get expense", "expense_id", expenseID, "trip_id", tripID, "error", err)
		return nil, err
	}
	return &e, nil
}

// ListByTripID returns all trip expenses ordered by date, then creation time.
func (r *ExpenseReadRepository) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]models.ExpenseDB, error) {
	const query = `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE trip_id = $1
		ORDER BY expense_date ASC, created_at ASC
	`

	var expenses []models.ExpenseDB
	if err := r.db.SelectContext(ctx, &expenses, query, tripID); err != nil {
		logger.Log.Errorw("failed to list expenses", "trip_id", tripID, "error", err)
		return nil, err
	}
	return expenses, nil
}

// ListByTripIDAndDate returns the trip expenses on one calendar day.
func (r *ExpenseReadRepository) ListByTripIDAndDate(ctx context.Context, tripID uuid.UUID, day time.Time) ([]models.ExpenseDB, error) {
	const query = `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE trip_id = $1 AND expense_date = $2
		ORDER BY created_at ASC
	`

	var expenses []models.ExpenseDB
	if err := r.db.SelectContext(ctx, &expenses, query, tripID, day); err != nil {
		logger.Log.Errorw("failed to list expenses by day", "trip_id", tripID, "day", day, "error", err)
		return nil, err
	}
	return expenses, nil
}

// Search filters trip expenses by title substring and date range. Nil
// bounds and an empty query match everything.
func (r *ExpenseReadRepository) Search(ctx context.Context, tripID uuid.UUID, q string, from, to *time.Time) ([]models.ExpenseDB, error) {
	const query = `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE trip_id = $1
		  AND ($2::date IS NULL OR expense_date >= $2)
		  AND ($3::date IS NULL OR expense_date <= $3)
		  AND ($4 = '' OR title ILIKE '%' || $4 || '%')
		ORDER BY expense_date ASC, created_at ASC
	`

	var expenses []models.ExpenseDB
	if err := r.db.SelectContext(ctx, &expenses, query, tripID, from, to, q); err != nil {
		logger.Log.Errorw("failed to search expenses", "trip_id", tripID, "q", q, "error", err)
		return nil, err
	}
	return expenses, nil
}

// SumPaidByMember returns, per paying member, the total of expense
// amounts in the trip. Wallet-paid expenses have a null payer and are
// excluded: the wallet itself is the payer.
func (r *ExpenseReadRepository) SumPaidByMember(ctx context.Context, tripID uuid.UUID) (map[uuid.UUID]decimal.Decimal, error) {
	const query = `
		SELECT paid_by_member_id, COALESCE(SUM(amount), 0) AS total
		FROM expenses
		WHERE trip_id = $1 AND paid_by_member_id IS NOT NULL
		GROUP BY paid_by_member_id
	`

	var rows []struct {
		MemberID uuid.UUID       `db:"paid_by_member_id"`
		Total    decimal.Decimal `db:"total"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, tripID); err != nil {
		logger.Log.Errorw("failed to sum paid by member", "trip_id", tripID, "error", err)
		return nil, err
	}

	totals := make(map[uuid.UUID]decimal.Decimal, len(rows))
	for _, row := range rows {
		totals[row.MemberID] = row.Total
	}
	return totals, nil
}
