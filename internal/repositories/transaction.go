package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/trip-collab/gw-trip-wallet/internal/apperrors"
	"github.com/trip-collab/gw-trip-wallet/internal/logger"
	"github.com/trip-collab/gw-trip-wallet/internal/models"
)

const transactionColumns = `
	transaction_id, wallet_id, txn_type, direction, original_amount,
	original_currency, fx_rate, computed_base_amount, member_id,
	expense_id, exchange_group_id, fx_source, note, created_at
`

// WalletTransactionWriteRepository appends ledger records. Transactions
// are never updated or deleted.
type WalletTransactionWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewWalletTransactionWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *WalletTransactionWriteRepository {
	return &WalletTransactionWriteRepository{db: db, txGetter: txGetter}
}

// Save appends one transaction row.
func (r *WalletTransactionWriteRepository) Save(ctx context.Context, t *models.WalletTransactionDB) error {
	const query = `
		INSERT INTO wallet_transactions (
			transaction_id, wallet_id, txn_type, direction, original_amount,
			original_currency, fx_rate, computed_base_amount, member_id,
			expense_id, exchange_group_id, fx_source, note, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.executor(ctx).ExecContext(ctx, query,
		t.TransactionID, t.WalletID, t.TxnType, t.Direction, t.OriginalAmount,
		t.OriginalCurrency, t.FxRate, t.ComputedBaseAmount, t.MemberID,
		t.ExpenseID, t.ExchangeGroupID, t.FxSource, t.Note, t.CreatedAt)
	if err != nil {
		logger.Log.Errorw("failed to insert wallet transaction",
			"transaction_id", t.TransactionID, "wallet_id", t.WalletID, "txn_type", t.TxnType, "error", err)
	}
	return err
}

func (r *WalletTransactionWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// WalletTransactionReadRepository handles ledger read operations.
type WalletTransactionReadRepository struct {
	db *sqlx.DB
}

func NewWalletTransactionReadRepository(db *sqlx.DB) *WalletTransactionReadRepository {
	return &WalletTransactionReadRepository{db: db}
}

// ExistsExpense reports whether an EXPENSE transaction is already linked
// to the expense. This is the duplicate-debit guard.
func (r *WalletTransactionReadRepository) ExistsExpense(ctx context.Context, expenseID uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM wallet_transactions
			WHERE expense_id = $1 AND txn_type = $2
		)
	`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, expenseID, models.TxnTypeExpense); err != nil {
		logger.Log.Errorw("failed to check expense transaction", "expense_id", expenseID, "error", err)
		return false, err
	}
	return exists, nil
}

// GetByIDAndWalletID returns one transaction if it belongs to the wallet.
func (r *WalletTransactionReadRepository) GetByIDAndWalletID(ctx context.Context, transactionID, walletID uuid.UUID) (*models.WalletTransactionDB, error) {
	const query = `
		SELECT ` + transactionColumns + `
		FROM wallet_transactions
		WHERE transaction_id = $1 AND wallet_id = $2
	`

	var t models.WalletTransactionDB
	err := r.db.GetContext(ctx, &t, query, transactionID, walletID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFoundf("transaction not found")
	}
	if err != nil {
		logger.Log.Errorw("failed to get wallet transaction", "transaction_id", transactionID, "wallet_id", walletID, "error", err)
		return nil, err
	}
	return &t, nil
}

// List returns a transaction page matching the filter, newest first,
// plus the total match count.
func (r *WalletTransactionReadRepository) List(ctx context.Context, walletID uuid.UUID, filter models.WalletTransactionFilter) ([]models.WalletTransactionDB, int64, error) {
	const query = `
		SELECT ` + transactionColumns + `
		FROM wallet_transactions
		WHERE wallet_id = $1
		  AND ($2 = '' OR original_currency = $2)
		  AND ($3 = '' OR txn_type = $3)
		  AND ($4::uuid IS NULL OR exchange_group_id = $4)
		ORDER BY created_at DESC, transaction_id DESC
		LIMIT $5 OFFSET $6
	`
	const countQuery = `
		SELECT COUNT(*)
		FROM wallet_transactions
		WHERE wallet_id = $1
		  AND ($2 = '' OR original_currency = $2)
		  AND ($3 = '' OR txn_type = $3)
		  AND ($4::uuid IS NULL OR exchange_group_id = $4)
	`

	offset := filter.Page * filter.Size

	var items []models.WalletTransactionDB
	if err := r.db.SelectContext(ctx, &items, query,
		walletID, filter.Currency, filter.TxnType, filter.ExchangeGroupID, filter.Size, offset); err != nil {
		logger.Log.Errorw("failed to list wallet transactions", "wallet_id", walletID, "error", err)
		return nil, 0, err
	}

	var total int64
	if err := r.db.GetContext(ctx, &total, countQuery,
		walletID, filter.Currency, filter.TxnType, filter.ExchangeGroupID); err != nil {
		logger.Log.Errorw("failed to count wallet transactions", "wallet_id", walletID, "error", err)
		return nil, 0, err
	}

	return items, total, nil
}

// TotalsInBase aggregates base-currency totals over the wallet's history.
func (r *WalletTransactionReadRepository) TotalsInBase(ctx context.Context, walletID uuid.UUID) (*models.WalletTotals, error) {
	const query = `
		SELECT
			COALESCE(SUM(CASE WHEN txn_type = 'DEPOSIT' AND direction = 'IN' THEN computed_base_amount ELSE 0 END), 0) AS total_deposits,
			COALESCE(SUM(CASE WHEN txn_type = 'WITHDRAW' AND direction = 'OUT' THEN computed_base_amount ELSE 0 END), 0) AS total_withdrawals,
			COALESCE(SUM(CASE WHEN txn_type = 'EXPENSE' AND direction = 'OUT' THEN computed_base_amount ELSE 0 END), 0) AS total_expenses,
			COALESCE(SUM(CASE
				WHEN txn_type = 'ADJUSTMENT' AND direction = 'IN' THEN computed_base_amount
				WHEN txn_type = 'ADJUSTMENT' AND direction = 'OUT' THEN -computed_base_amount
				ELSE 0 END), 0) AS net_adjustments
		FROM wallet_transactions
		WHERE wallet_id = $1
	`

	var totals models.WalletTotals
	if err := r.db.GetContext(ctx, &totals, query, walletID); err != nil {
		logger.Log.Errorw("failed to aggregate wallet totals", "wallet_id", walletID, "error", err)
		return nil, err
	}
	return &totals, nil
}
