package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SharedWalletDB represents the one pooled cash account a trip owns.
type SharedWalletDB struct {
	WalletID     uuid.UUID `json:"wallet_id" db:"wallet_id"`
	TripID       uuid.UUID `json:"trip_id" db:"trip_id"`
	BaseCurrency string    `json:"base_currency" db:"base_currency"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// WalletBalanceDB represents one (wallet, currency) balance row. The
// balance is derived from the transaction log and mutated only through
// the ledger's atomic primitives; it never goes negative.
type WalletBalanceDB struct {
	WalletID  uuid.UUID       `json:"wallet_id" db:"wallet_id"`
	Currency  string          `json:"currency" db:"currency"`
	Balance   decimal.Decimal `json:"balance" db:"balance"` // >= 0, 6 decimals
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}

// WalletTotals aggregates base-currency totals over a wallet's
// transaction history.
type WalletTotals struct {
	TotalDeposits    decimal.Decimal `json:"total_deposits" db:"total_deposits"`
	TotalWithdrawals decimal.Decimal `json:"total_withdrawals" db:"total_withdrawals"`
	TotalExpenses    decimal.Decimal `json:"total_expenses" db:"total_expenses"`
	NetAdjustments   decimal.Decimal `json:"net_adjustments" db:"net_adjustments"`
}

// WalletSummary is the full wallet view: per-currency balances plus
// base-currency totals.
type WalletSummary struct {
	WalletID     uuid.UUID         `json:"wallet_id"`
	TripID       uuid.UUID         `json:"trip_id"`
	BaseCurrency string            `json:"base_currency"`
	Balances     []WalletBalanceDB `json:"balances"`
	Totals       WalletTotals      `json:"totals_in_base"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// WalletTransactionList is one page of ledger records.
type WalletTransactionList struct {
	Items      []WalletTransactionDB `json:"items"`
	Page       int                   `json:"page"`
	Size       int                   `json:"size"`
	Total      int64                 `json:"total"`
	TotalPages int                   `json:"total_pages"`
}
