package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment sources.
const (
	PaymentSourcePersonal     = "PERSONAL"
	PaymentSourceSharedWallet = "SHARED_WALLET"
)

// Split methods.
const (
	SplitMethodEqual        = "EQUAL"
	SplitMethodCustomAmount = "CUSTOM_AMOUNT"
)

// ExpenseDB represents an expense row in the database.
// Amount is always denominated in the trip's base currency; foreign
// expenses carry the original amount/currency plus the fx rate used.
type ExpenseDB struct {
	ExpenseID         uuid.UUID           `json:"expense_id" db:"expense_id"`
	TripID            uuid.UUID           `json:"trip_id" db:"trip_id"`
	Title             string              `json:"title" db:"title"`
	Amount            decimal.Decimal     `json:"amount" db:"amount"`                           // Trip-base-currency amount, 2 decimals
	Currency          string              `json:"currency" db:"currency"`                       // Always the trip base currency
	PaidByMemberID    *uuid.UUID          `json:"paid_by_member_id" db:"paid_by_member_id"`     // Nil when paid from the shared wallet
	ExpenseDate       time.Time           `json:"expense_date" db:"expense_date"`               // Calendar date of the expense
	Note              string              `json:"note" db:"note"`
	PaymentSource     string              `json:"payment_source" db:"payment_source"`           // PERSONAL or SHARED_WALLET
	OriginalAmount    decimal.NullDecimal `json:"original_amount" db:"original_amount"`         // Amount in the incurred currency
	OriginalCurrency  *string             `json:"original_currency" db:"original_currency"`     // Incurred currency, nil for base-currency expenses
	FxRate            decimal.NullDecimal `json:"fx_rate" db:"fx_rate"`                         // Rate used to compute the base amount
	FxSource          *string             `json:"fx_source" db:"fx_source"`                     // Where the rate came from
	AmountOverridden  bool                `json:"amount_overridden" db:"amount_overridden"`     // Caller-supplied amount differs from originalAmount x fxRate
	CreatedByMemberID *uuid.UUID          `json:"created_by_member_id" db:"created_by_member_id"`
	CreatedAt         time.Time           `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at" db:"updated_at"`
}

// ExpenseSplitDB represents one member's share of an expense. For a given
// expense the shares are unique per member and sum exactly to the
// expense amount.
type ExpenseSplitDB struct {
	SplitID     uuid.UUID       `json:"split_id" db:"split_id"`
	ExpenseID   uuid.UUID       `json:"expense_id" db:"expense_id"`
	MemberID    uuid.UUID       `json:"member_id" db:"member_id"`
	ShareAmount decimal.Decimal `json:"share_amount" db:"share_amount"` // >= 0, 2 decimals
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
}

// MemberShare is a (member, amount) pair used for CUSTOM_AMOUNT splits
// and as the split calculator's output.
type MemberShare struct {
	MemberID uuid.UUID       `json:"member_id"`
	Amount   decimal.Decimal `json:"amount"`
}

// MemberSummary reports one member's totals in the trip base currency.
type MemberSummary struct {
	MemberID  uuid.UUID       `json:"member_id"`
	Nickname  string          `json:"nickname"`
	PaidTotal decimal.Decimal `json:"paid_total"`
	OwedTotal decimal.Decimal `json:"owed_total"`
	Net       decimal.Decimal `json:"net"` // paid - owed; positive means owed money by the group
	Currency  string          `json:"currency"`
}

// SettlementTransfer is one member-to-member payment that moves net
// balances toward zero.
type SettlementTransfer struct {
	FromMemberID uuid.UUID       `json:"from_member_id"`
	FromNickname string          `json:"from_nickname"`
	ToMemberID   uuid.UUID       `json:"to_member_id"`
	ToNickname   string          `json:"to_nickname"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
}
