package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/trip-collab/gw-trip-wallet/internal/apperrors"
)

func expenseRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"expense_id", "trip_id", "title", "amount", "currency", "paid_by_member_id",
		"expense_date", "note", "payment_source", "original_amount", "original_currency",
		"fx_rate", "fx_source", "amount_overridden", "created_by_member_id",
		"created_at", "updated_at",
	})
}

func TestExpenseReadRepository_GetByIDAndTripID(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewExpenseReadRepository(sqlxDB)

	expenseID := uuid.New()
	tripID := uuid.New()
	payerID := uuid.New()
	day := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE expense_id = $1 AND trip_id = $2`)).
		WithArgs(expenseID, tripID).
		WillReturnRows(expenseRows().
			AddRow(expenseID, tripID, "Dinner", "100.00", "EUR", payerID,
				day, "", "PERSONAL", nil, nil,
				nil, nil, false, nil,
				now, now))

	expense, err := repo.GetByIDAndTripID(context.Background(), expenseID, tripID)
	assert.NoError(t, err)
	assert.Equal(t, "Dinner", expense.Title)
	assert.Equal(t, "100.00", expense.Amount.StringFixed(2))
	assert.Equal(t, payerID, *expense.PaidByMemberID)
	assert.False(t, expense.FxRate.Valid)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseReadRepository_GetByIDAndTripID_NotFound(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewExpenseReadRepository(sqlxDB)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE expense_id = $1 AND trip_id = $2`)).
		WillReturnError(sql.ErrNoRows)

	expense, err := repo.GetByIDAndTripID(context.Background(), uuid.New(), uuid.New())
	assert.Nil(t, expense)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseReadRepository_Search(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewExpenseReadRepository(sqlxDB)

	tripID := uuid.New()
	from := time.Date(2026, 8, 18, 0, 0, 0, 0, time.UTC)
	day := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`title ILIKE '%' || $4 || '%'`)).
		WithArgs(tripID, &from, nil, "dinner").
		WillReturnRows(expenseRows().
			AddRow(uuid.New(), tripID, "Team dinner", "64.00", "EUR", uuid.New(),
				day, "", "PERSONAL", nil, nil,
				nil, nil, false, nil,
				now, now))

	expenses, err := repo.Search(context.Background(), tripID, "dinner", &from, nil)
	assert.NoError(t, err)
	assert.Len(t, expenses, 1)
	assert.Equal(t, "Team dinner", expenses[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseReadRepository_SumPaidByMember(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewExpenseReadRepository(sqlxDB)

	tripID := uuid.New()
	alice := uuid.New()
	bob := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`GROUP BY paid_by_member_id`)).
		WithArgs(tripID).
		WillReturnRows(sqlmock.NewRows([]string{"paid_by_member_id", "total"}).
			AddRow(alice, "120.00").
			AddRow(bob, "30.50"))

	totals, err := repo.SumPaidByMember(context.Background(), tripID)
	assert.NoError(t, err)
	assert.Len(t, totals, 2)
	assert.Equal(t, "120.00", totals[alice].StringFixed(2))
	assert.Equal(t, "30.50", totals[bob].StringFixed(2))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseWriteRepository_DeleteByIDAndTripID(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewExpenseWriteRepository(sqlxDB, nil)

	expenseID := uuid.New()
	tripID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM expenses WHERE expense_id = $1 AND trip_id = $2`)).
		WithArgs(expenseID, tripID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DeleteByIDAndTripID(context.Background(), expenseID, tripID)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
