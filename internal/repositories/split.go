package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/trip-collab/gw-trip-wallet/internal/logger"
	"github.com/trip-collab/gw-trip-wallet/internal/models"
)

// SplitWriteRepository handles expense split write operations.
type SplitWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewSplitWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *SplitWriteRepository {
	return &SplitWriteRepository{db: db, txGetter: txGetter}
}

// ReplaceForExpense swaps the expense's full split set: delete-all then
// insert-all. Runs on the request transaction, so a partial set is never
// visible.
func (r *SplitWriteRepository) ReplaceForExpense(ctx context.Context, expenseID uuid.UUID, splits []models.ExpenseSplitDB) error {
	executor := r.executor(ctx)

	if _, err := executor.ExecContext(ctx, `DELETE FROM expense_splits WHERE expense_id = $1`, expenseID); err != nil {
		logger.Log.Errorw("failed to delete expense splits", "expense_id", expenseID, "error", err)
		return err
	}

	const insert = `
		INSERT INTO expense_splits (split_id, expense_id, member_id, share_amount, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	for _, s := range splits {
		if _, err := executor.ExecContext(ctx, insert, s.SplitID, s.ExpenseID, s.MemberID, s.ShareAmount, s.CreatedAt); err != nil {
			logger.Log.Errorw("failed to insert expense split", "expense_id", expenseID, "member_id", s.MemberID, "error", err)
			return err
		}
	}
	return nil
}

// DeleteByExpenseID removes all splits of an expense.
func (r *SplitWriteRepository) DeleteByExpenseID(ctx context.Context, expenseID uuid.UUID) error {
	_, err := r.executor(ctx).ExecContext(ctx, `DELETE FROM expense_splits WHERE expense_id = $1`, expenseID)
	if err != nil {
		logger.Log.Errorw("failed to delete expense splits", "expense_id", expenseID, "error", err)
	}
	return err
}

func (r *SplitWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// SplitReadRepository handles expense split read operations.
type SplitReadRepository struct {
	db *sqlx.DB
}

func NewSplitReadRepository(db *sqlx.DB) *SplitReadRepository {
	return &SplitReadRepository{db: db}
}

// ListByExpenseID returns the splits of one expense.
func (r *SplitReadRepository) ListByExpenseID(ctx context.Context, expenseID uuid.UUID) ([]models.ExpenseSplitDB, error) {
	const query = `
		SELECT split_id, expense_id, member_id, share_amount, created_at
		FROM expense_splits
		WHERE expense_id = $1
		ORDER BY member_id ASC
	`

	var splits []models.ExpenseSplitDB
	if err := r.db.SelectContext(ctx, &splits, query, expenseID); err != nil {
		logger.Log.Errorw("failed to list expense splits", "expense_id", expenseID, "error", err)
		return nil, err
	}
	return splits, nil
}

// SumOwedByMember returns, per member, the total of split shares over
// all expenses in the trip.
func (r *SplitReadRepository) SumOwedByMember(ctx context.Context, tripID uuid.UUID) (map[uuid.UUID]decimal.Decimal, error) {
	const query = `
		SELECT s.member_id, COALESCE(SUM(s.share_amount), 0) AS total
		FROM expense_splits s
		JOIN expenses e ON e.expense_id = s.expense_id
		WHERE e.trip_id = $1
		GROUP BY s.member_id
	`

	var rows []struct {
		MemberID uuid.UUID       `db:"member_id"`
		Total    decimal.Decimal `db:"total"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, tripID); err != nil {
		logger.Log.Errorw("failed to sum owed by member", "trip_id", tripID, "error", err)
		return nil, err
	}

	totals := make(map[uuid.UUID]decimal.Decimal, len(rows))
	for _, row := range rows {
		totals[row.MemberID] = row.Total
	}
	return totals, nil
}
