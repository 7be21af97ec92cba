package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/trip-collab/gw-trip-wallet/internal/apperrors"
	"github.com/trip-collab/gw-trip-wallet/internal/models"
)

func TestWalletTransactionWriteRepository_Save(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewWalletTransactionWriteRepository(sqlxDB, nil)

	txn := &models.WalletTransactionDB{
		TransactionID:      uuid.New(),
		WalletID:           uuid.New(),
		TxnType:            models.TxnTypeDeposit,
		Direction:          models.DirectionIn,
		OriginalAmount:     decimal.RequireFromString("500.00"),
		OriginalCurrency:   "USD",
		FxRate:             decimal.RequireFromString("0.9"),
		ComputedBaseAmount: decimal.RequireFromString("450.00"),
		CreatedAt:          time.Now(),
	}

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO wallet_transactions`)).
		WithArgs(txn.TransactionID, txn.WalletID, txn.TxnType, txn.Direction, txn.OriginalAmount,
			txn.OriginalCurrency, txn.FxRate, txn.ComputedBaseAmount, nil,
			nil, nil, nil, nil, txn.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Save(context.Background(), txn)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletTransactionReadRepository_ExistsExpense(t *testing.T) {
	tests := []struct {
		name   string
		exists bool
	}{
		{name: "linked expense transaction", exists: true},
		{name: "no transaction yet", exists: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sqlxDB, mock := newMockDB(t)
			repo := NewWalletTransactionReadRepository(sqlxDB)

			expenseID := uuid.New()

			mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS`)).
				WithArgs(expenseID, models.TxnTypeExpense).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(tt.exists))

			exists, err := repo.ExistsExpense(context.Background(), expenseID)
			assert.NoError(t, err)
			assert.Equal(t, tt.exists, exists)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestWalletTransactionReadRepository_GetByIDAndWalletID_NotFound(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewWalletTransactionReadRepository(sqlxDB)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM wallet_transactions`)).
		WillReturnError(sql.ErrNoRows)

	txn, err := repo.GetByIDAndWalletID(context.Background(), uuid.New(), uuid.New())
	assert.Nil(t, txn)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func transactionRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"transaction_id", "wallet_id", "txn_type", "direction", "original_amount",
		"original_currency", "fx_rate", "computed_base_amount", "member_id",
		"expense_id", "exchange_group_id", "fx_source", "note", "created_at",
	})
}

func TestWalletTransactionReadRepository_List(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewWalletTransactionReadRepository(sqlxDB)

	walletID := uuid.New()
	filter := models.WalletTransactionFilter{
		Currency: "EUR",
		TxnType:  models.TxnTypeDeposit,
		Page:     2,
		Size:     25,
	}

	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY created_at DESC, transaction_id DESC`)).
		WithArgs(walletID, "EUR", models.TxnTypeDeposit, nil, 25, 50).
		WillReturnRows(transactionRows().
			AddRow(uuid.New(), walletID, models.TxnTypeDeposit, models.DirectionIn, "100.00",
				"EUR", "1", "100.00", nil, nil, nil, "manual", nil, time.Now()))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*)`)).
		WithArgs(walletID, "EUR", models.TxnTypeDeposit, nil).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(51))

	items, total, err := repo.List(context.Background(), walletID, filter)
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, int64(51), total)
	assert.Equal(t, "100.00", items[0].ComputedBaseAmount.StringFixed(2))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletTransactionReadRepository_List_ByExchangeGroup(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewWalletTransactionReadRepository(sqlxDB)

	walletID := uuid.New()
	groupID := uuid.New()
	filter := models.WalletTransactionFilter{
		ExchangeGroupID: &groupID,
		Size:            50,
	}

	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY created_at DESC, transaction_id DESC`)).
		WithArgs(walletID, "", "", &groupID, 50, 0).
		WillReturnRows(transactionRows().
			AddRow(uuid.New(), walletID, models.TxnTypeExchange, models.DirectionOut, "100.00",
				"EUR", "1", "100.00", nil, nil, groupID, "manual", nil, time.Now()).
			AddRow(uuid.New(), walletID, models.TxnTypeExchange, models.DirectionIn, "3600.00",
				"THB", "0.025", "90.00", nil, nil, groupID, "manual", nil, time.Now()))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*)`)).
		WithArgs(walletID, "", "", &groupID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	items, total, err := repo.List(context.Background(), walletID, filter)
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, groupID, *items[0].ExchangeGroupID)
	assert.Equal(t, groupID, *items[1].ExchangeGroupID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletTransactionReadRepository_TotalsInBase(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewWalletTransactionReadRepository(sqlxDB)

	walletID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM wallet_transactions`)).
		WithArgs(walletID).
		WillReturnRows(sqlmock.NewRows([]string{"total_deposits", "total_withdrawals", "total_expenses", "net_adjustments"}).
			AddRow("1000.00", "50.00", "320.00", "-10.00"))

	totals, err := repo.TotalsInBase(context.Background(), walletID)
	assert.NoError(t, err)
	assert.Equal(t, "1000.00", totals.TotalDeposits.StringFixed(2))
	assert.Equal(t, "50.00", totals.TotalWithdrawals.StringFixed(2))
	assert.Equal(t, "320.00", totals.TotalExpenses.StringFixed(2))
	assert.Equal(t, "-10.00", totals.NetAdjustments.StringFixed(2))
	assert.NoError(t, mock.ExpectationsWereMet())
}
