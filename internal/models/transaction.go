package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Wallet transaction types.
const (
	TxnTypeDeposit    = "DEPOSIT"
	TxnTypeWithdraw   = "WITHDRAW"
	TxnTypeExpense    = "EXPENSE"
	TxnTypeExchange   = "EXCHANGE"
	TxnTypeAdjustment = "ADJUSTMENT"
)

// Wallet transaction directions.
const (
	DirectionIn  = "IN"
	DirectionOut = "OUT"
)

// WalletTransactionDB is one append-only ledger record. Replaying the
// IN minus OUT original-currency amounts for a currency reproduces that
// currency's current balance.
type WalletTransactionDB struct {
	TransactionID      uuid.UUID           `json:"transaction_id" db:"transaction_id"`
	WalletID           uuid.UUID           `json:"wallet_id" db:"wallet_id"`
	TxnType            string              `json:"txn_type" db:"txn_type"`                       // DEPOSIT, WITHDRAW, EXPENSE, EXCHANGE, ADJUSTMENT
	Direction          string              `json:"direction" db:"direction"`                     // IN or OUT
	OriginalAmount     decimal.Decimal     `json:"original_amount" db:"original_amount"`         // Amount in the transaction currency
	OriginalCurrency   string              `json:"original_currency" db:"original_currency"`     // 3-letter code
	FxRate             decimal.Decimal     `json:"fx_rate" db:"fx_rate"`                         // Rate to the wallet base currency
	ComputedBaseAmount decimal.Decimal     `json:"computed_base_amount" db:"computed_base_amount"` // originalAmount x fxRate
	MemberID           *uuid.UUID          `json:"member_id" db:"member_id"`                     // Acting member, when known
	ExpenseID          *uuid.UUID          `json:"expense_id" db:"expense_id"`                   // Set for EXPENSE transactions
	ExchangeGroupID    *uuid.UUID          `json:"exchange_group_id" db:"exchange_group_id"`     // Shared by the two legs of one exchange
	FxSource           *string             `json:"fx_source" db:"fx_source"`
	Note               *string             `json:"note" db:"note"`
	CreatedAt          time.Time           `json:"created_at" db:"created_at"`
}

// WalletTransactionFilter narrows a transaction listing.
type WalletTransactionFilter struct {
	Currency        string     // empty means any
	TxnType         string     // empty means any
	ExchangeGroupID *uuid.UUID // nil means any
	Page            int
	Size            int
}

// WalletEvent is the message published to Kafka after a wallet
// transaction commits.
type WalletEvent struct {
	TransactionID string `json:"transaction_id"` // Ledger transaction identifier
	WalletID      string `json:"wallet_id"`      // Wallet the transaction belongs to
	TxnType       string `json:"txn_type"`       // Transaction type, e.g. "DEPOSIT"
	Direction     string `json:"direction"`      // "IN" or "OUT"
	Amount        string `json:"amount"`         // Original-currency amount, decimal string
	Currency      string `json:"currency"`       // Original currency
	Timestamp     int64  `json:"timestamp"`      // Unix seconds when the event was produced
}
