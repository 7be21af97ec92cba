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

// SharedWalletWriteRepository handles shared wallet write operations.
type SharedWalletWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewSharedWalletWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *SharedWalletWriteRepository {
	return &SharedWalletWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a shared wallet row.
func (r *SharedWalletWriteRepository) Save(ctx context.Context, w *models.SharedWalletDB) error {
	const query = `
		INSERT INTO shared_wallets (wallet_id, trip_id, base_currency, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.executor(ctx).ExecContext(ctx, query,
		w.WalletID, w.TripID, w.BaseCurrency, w.CreatedAt, w.UpdatedAt)
	if err != nil {
		logger.Log.Errorw("failed to insert shared wallet", "wallet_id", w.WalletID, "trip_id", w.TripID, "error", err)
	}
	return err
}

// Touch bumps the wallet's updated_at after a ledger mutation.
func (r *SharedWalletWriteRepository) Touch(ctx context.Context, walletID uuid.UUID, at time.Time) error {
	const query = `UPDATE shared_wallets SET updated_at = $2 WHERE wallet_id = $1`

	_, err := r.executor(ctx).ExecContext(ctx, query, walletID, at)
	if err != nil {
		logger.Log.Errorw("failed to touch shared wallet", "wallet_id", walletID, "error", err)
	}
	return err
}

func (r *SharedWalletWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// SharedWalletReadRepository handles shared wallet read operations.
type SharedWalletReadRepository struct {
	db *sqlx.DB
}

func NewSharedWalletReadRepository(db *sqlx.DB) *SharedWalletReadRepository {
	return &SharedWalletReadRepository{db: db}
}

// GetByTripID returns the trip's shared wallet.
func (r *SharedWalletReadRepository) GetByTripID(ctx context.Context, tripID uuid.UUID) (*models.SharedWalletDB, error) {
	const query = `
		SELECT wallet_id, trip_id, base_currency, created_at, updated_at
		FROM shared_wallets
		WHERE trip_id = $1
	`

	var w models.SharedWalletDB
	err := r.db.GetContext(ctx, &w, query, tripID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFoundf("shared wallet not found for trip %s", tripID)
	}
	if err != nil {
		logger.Log.Errorw("failed to get shared wallet", "trip_id", tripID, "error", err)
		return nil, err
	}
	return &w, nil
}

// WalletBalanceRepository owns the per-currency balance table. Balances
// are mutated only through Credit and DebitIfSufficient; both run as a
// single statement so a balance can never be observed negative.
type WalletBalanceRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewWalletBalanceRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *WalletBalanceRepository {
	return &WalletBalanceRepository{db: db, txGetter: txGetter}
}

// Credit performs an UPSERT: creates the currency row at the delta if
// absent, otherwise increases the balance.
func (r *WalletBalanceRepository) Credit(ctx context.Context, walletID uuid.UUID, currency string, delta decimal.Decimal) error {
	const query = `
		INSERT INTO wallet_balances (wallet_id, currency, balance, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (wallet_id, currency)
		DO UPDATE SET balance = wallet_balances.balance + EXCLUDED.balance, updated_at = NOW()
		RETURNING balance
	`

	var balance decimal.Decimal
	err := sqlx.GetContext(ctx, r.executor(ctx), &balance, query, walletID, currency, delta)

	logger.Log.Infow("wallet credit",
		"wallet_id", walletID,
		"currency", currency,
		"delta", delta,
		"balance", balance,
		"error", err,
	)

	return err
}

// DebitIfSufficient decrements the balance only if it covers the amount.
// The guard lives in the UPDATE itself, never in a separate read, so
// concurrent debits serialize on the row and exactly one wins the last
// sufficient balance.
func (r *WalletBalanceRepository) DebitIfSufficient(ctx context.Context, walletID uuid.UUID, currency string, amount decimal.Decimal) (bool, error) {
	const query = `
		UPDATE wallet_balances
		SET balance = balance - $3, updated_at = NOW()
		WHERE wallet_id = $1 AND currency = $2 AND balance >= $3
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, walletID, currency, amount)
	if err != nil {
		logger.Log.Errorw("failed to debit wallet balance", "wallet_id", walletID, "currency", currency, "amount", amount, "error", err)
		return false, err
	}

	updated, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	logger.Log.Infow("wallet debit",
		"wallet_id", walletID,
		"currency", currency,
		"amount", amount,
		"sufficient", updated > 0,
	)

	return updated > 0, nil
}

// ListByWalletID returns all currency balances of a wallet ordered by
// currency code.
func (r *WalletBalanceRepository) ListByWalletID(ctx context.Context, walletID uuid.UUID) ([]models.WalletBalanceDB, error) {
	const query = `
		SELECT wallet_id, currency, balance, created_at, updated_at
		FROM wallet_balances
		WHERE wallet_id = $1
		ORDER BY currency ASC
	`

	var balances []models.WalletBalanceDB
	if err := r.db.SelectContext(ctx, &balances, query, walletID); err != nil {
		logger.Log.Errorw("failed to list wallet balances", "wallet_id", walletID, "error", err)
		return nil, err
	}
	return balances, nil
}

func (r *WalletBalanceRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}
