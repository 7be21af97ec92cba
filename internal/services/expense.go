package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/trip-collab/gw-trip-wallet/internal/apperrors"
	"github.com/trip-collab/gw-trip-wallet/internal/models"
	"github.com/trip-collab/gw-trip-wallet/internal/money"
)

// ExpenseReader defines the expense lookups the workflow needs.
type ExpenseReader interface {
	GetByIDAndTripID(ctx context.Context, expenseID, tripID uuid.UUID) (*models.ExpenseDB, error)
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]models.ExpenseDB, error)
	ListByTripIDAndDate(ctx context.Context, tripID uuid.UUID, day time.Time) ([]models.ExpenseDB, error)
	Search(ctx context.Context, tripID uuid.UUID, q string, from, to *time.Time) ([]models.ExpenseDB, error)
}

// ExpenseWriter persists expenses.
type ExpenseWriter interface {
	Save(ctx context.Context, e *models.ExpenseDB) error
	DeleteByIDAndTripID(ctx context.Context, expenseID, tripID uuid.UUID) error
}

// SplitReader reads expense splits.
type SplitReader interface {
	ListByExpenseID(ctx context.Context, expenseID uuid.UUID) ([]models.ExpenseSplitDB, error)
}

// SplitWriter persists expense splits.
type SplitWriter interface {
	ReplaceForExpense(ctx context.Context, expenseID uuid.UUID, splits []models.ExpenseSplitDB) error
	DeleteByExpenseID(ctx context.Context, expenseID uuid.UUID) error
}

// WalletExpenseRecorder debits the shared wallet for one expense.
type WalletExpenseRecorder interface {
	RecordExpense(
		ctx context.Context,
		tripID, expenseID uuid.UUID,
		memberID *uuid.UUID,
		originalAmount decimal.Decimal,
		originalCurrency string,
		fxRate decimal.Decimal,
		fxSource, note string,
	) (*models.WalletTransactionDB, error)
}

// ExpenseParams carries an expense create or update.
type ExpenseParams struct {
	Title                string
	Amount               decimal.NullDecimal // base-currency amount; optional when original fields are supplied
	Currency             string
	PaymentSource        string // create only; ignored on update
	PaidByMemberID       *uuid.UUID
	ExpenseDate          *time.Time
	Note                 string
	CreatedByMemberID    *uuid.UUID
	SplitMethod          string
	ParticipantMemberIDs []uuid.UUID
	CustomSplits         []models.MemberShare
	OriginalAmount       decimal.NullDecimal
	OriginalCurrency     string
	FxRate               decimal.NullDecimal // unset means resolve via the FX gateway
	FxSource             string
}

// ExpenseService orchestrates expenses plus their splits, and debits the
// shared wallet exactly once when an expense is wallet-paid.
type ExpenseService struct {
	trips      TripReader
	membership *MembershipValidator
	expenses   ExpenseReader
	expWrite   ExpenseWriter
	splits     SplitReader
	splitWrite SplitWriter
	calculator *SplitCalculator
	wallet     WalletExpenseRecorder
	rates      FxRateSource
}

func NewExpenseService(
	trips TripReader,
	membership *MembershipValidator,
	expenses ExpenseReader,
	expWrite ExpenseWriter,
	splits SplitReader,
	splitWrite SplitWriter,
	calculator *SplitCalculator,
	wallet WalletExpenseRecorder,
	rates FxRateSource,
) *ExpenseService {
	return &ExpenseService{
		trips:      trips,
		membership: membership,
		expenses:   expenses,
		expWrite:   expWrite,
		splits:     splits,
		splitWrite: splitWrite,
		calculator: calculator,
		wallet:     wallet,
		rates:      rates,
	}
}

// Create validates, persists the expense and its splits, and, for
// SHARED_WALLET payment, records the wallet debit.
func (s *ExpenseService) Create(ctx context.Context, tripID uuid.UUID, p ExpenseParams) (*models.ExpenseDB, error) {
	paymentSource, err := normalizePaymentSource(p.PaymentSource)
	if err != nil {
		return nil, err
	}
	sharedWallet := paymentSource == models.PaymentSourceSharedWallet

	if sharedWallet {
		if strings.TrimSpace(p.OriginalCurrency) == "" {
			return nil, apperrors.Invalidf("originalCurrency is required for shared wallet payments")
		}
		if !p.OriginalAmount.Valid {
			return nil, apperrors.Invalidf("originalAmount is required for shared wallet payments")
		}
	}

	if !sharedWallet {
		if p.PaidByMemberID == nil {
			return nil, apperrors.Invalidf("paidByMemberId is required")
		}
		if err := s.membership.RequireActive(ctx, tripID, "paidByMemberId", *p.PaidByMemberID); err != nil {
			return nil, err
		}
	}

	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return nil, err
	}

	fx, err := s.resolveAmount(ctx, trip.Currency, p)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(p.Title)
	if title == "" {
		return nil, apperrors.Invalidf("title is required")
	}

	var paidBy *uuid.UUID
	if !sharedWallet {
		paidBy = p.PaidByMemberID
	}

	expenseDate := time.Now()
	if p.ExpenseDate != nil {
		expenseDate = *p.ExpenseDate
	}

	now := time.Now()
	expense := &models.ExpenseDB{
		ExpenseID:         uuid.New(),
		TripID:            tripID,
		Title:             title,
		Amount:            fx.finalAmount,
		Currency:          trip.Currency,
		PaidByMemberID:    paidBy,
		ExpenseDate:       expenseDate,
		Note:              p.Note,
		PaymentSource:     paymentSource,
		OriginalAmount:    fx.originalAmount,
		OriginalCurrency:  fx.originalCurrency,
		FxRate:            fx.fxRate,
		FxSource:          optionalString(fx.fxSource),
		AmountOverridden:  fx.overridden,
		CreatedByMemberID: p.CreatedByMemberID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	shares, err := s.calculator.Compute(ctx, tripID, fx.finalAmount, p.SplitMethod, p.ParticipantMemberIDs, p.CustomSplits)
	if err != nil {
		return nil, err
	}

	if err := s.expWrite.Save(ctx, expense); err != nil {
		return nil, err
	}
	if err := s.splitWrite.ReplaceForExpense(ctx, expense.ExpenseID, buildSplitRows(expense.ExpenseID, shares, now)); err != nil {
		return nil, err
	}

	if sharedWallet {
		// The wallet is debited in the incurred currency. The earlier
		// requirement checks guarantee the original fields are present.
		_, err := s.wallet.RecordExpense(ctx, tripID, expense.ExpenseID, nil,
			fx.originalAmount.Decimal, *fx.originalCurrency, fx.fxRate.Decimal, fx.fxSource, p.Note)
		if err != nil {
			return nil, err
		}
	}

	return expense, nil
}

// Update rewrites the expense and atomically replaces its full split
// set. Wallet-paid expenses are immutable.
func (s *ExpenseService) Update(ctx context.Context, tripID, expenseID uuid.UUID, p ExpenseParams) (*models.ExpenseDB, error) {
	expense, err := s.expenses.GetByIDAndTripID(ctx, expenseID, tripID)
	if err != nil {
		return nil, err
	}
	if expense.PaymentSource == models.PaymentSourceSharedWallet {
		return nil, apperrors.Conflictf("editing shared-wallet-paid expenses is not supported")
	}

	if p.PaidByMemberID == nil {
		return nil, apperrors.Invalidf("paidByMemberId is required")
	}
	if err := s.membership.RequireActive(ctx, tripID, "paidByMemberId", *p.PaidByMemberID); err != nil {
		return nil, err
	}

	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return nil, err
	}

	fx, err := s.resolveAmount(ctx, trip.Currency, p)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(p.Title)
	if title == "" {
		return nil, apperrors.Invalidf("title is required")
	}

	shares, err := s.calculator.Compute(ctx, tripID, fx.finalAmount, p.SplitMethod, p.ParticipantMemberIDs, p.CustomSplits)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	expense.Title = title
	expense.Amount = fx.finalAmount
	expense.Currency = trip.Currency
	expense.PaidByMemberID = p.PaidByMemberID
	if p.ExpenseDate != nil {
		expense.ExpenseDate = *p.ExpenseDate
	}
	expense.Note = p.Note
	expense.OriginalAmount = fx.originalAmount
	expense.OriginalCurrency = fx.originalCurrency
	expense.FxRate = fx.fxRate
	expense.FxSource = optionalString(fx.fxSource)
	expense.AmountOverridden = fx.overridden
	expense.UpdatedAt = now

	if err := s.expWrite.Save(ctx, expense); err != nil {
		return nil, err
	}
	if err := s.splitWrite.ReplaceForExpense(ctx, expenseID, buildSplitRows(expenseID, shares, now)); err != nil {
		return nil, err
	}

	return expense, nil
}

// Delete removes the splits then the expense. Wallet-paid expenses
// cannot be deleted: reversing a wallet debit is unsupported.
func (s *ExpenseService) Delete(ctx context.Context, tripID, expenseID uuid.UUID) error {
	expense, err := s.expenses.GetByIDAndTripID(ctx, expenseID, tripID)
	if err != nil {
		return err
	}
	if expense.PaymentSource == models.PaymentSourceSharedWallet {
		return apperrors.Conflictf("deleting shared-wallet-paid expenses is not supported")
	}

	if err := s.splitWrite.DeleteByExpenseID(ctx, expenseID); err != nil {
		return err
	}
	return s.expWrite.DeleteByIDAndTripID(ctx, expenseID, tripID)
}

// Move changes only the expense date.
func (s *ExpenseService) Move(ctx context.Context, tripID, expenseID uuid.UUID, newDate *time.Time) (*models.ExpenseDB, error) {
	if newDate == nil {
		return nil, apperrors.Invalidf("newDate is required")
	}

	expense, err := s.expenses.GetByIDAndTripID(ctx, expenseID, tripID)
	if err != nil {
		return nil, err
	}

	expense.ExpenseDate = *newDate
	expense.UpdatedAt = time.Now()
	if err := s.expWrite.Save(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// Get returns one expense of the trip.
func (s *ExpenseService) Get(ctx context.Context, tripID, expenseID uuid.UUID) (*models.ExpenseDB, error) {
	return s.expenses.GetByIDAndTripID(ctx, expenseID, tripID)
}

// List returns all trip expenses ordered by date then creation time.
func (s *ExpenseService) List(ctx context.Context, tripID uuid.UUID) ([]models.ExpenseDB, error) {
	return s.expenses.ListByTripID(ctx, tripID)
}

// ListDay returns the trip expenses on one calendar day.
func (s *ExpenseService) ListDay(ctx context.Context, tripID uuid.UUID, day time.Time) ([]models.ExpenseDB, error) {
	return s.expenses.ListByTripIDAndDate(ctx, tripID, day)
}

// Search filters trip expenses by title substring and date range.
func (s *ExpenseService) Search(ctx context.Context, tripID uuid.UUID, q string, from, to *time.Time) ([]models.ExpenseDB, error) {
	return s.expenses.Search(ctx, tripID, q, from, to)
}

// GetSplits returns the splits of one expense of the trip.
func (s *ExpenseService) GetSplits(ctx context.Context, tripID, expenseID uuid.UUID) ([]models.ExpenseSplitDB, error) {
	if _, err := s.expenses.GetByIDAndTripID(ctx, expenseID, tripID); err != nil {
		return nil, err
	}
	return s.splits.ListByExpenseID(ctx, expenseID)
}

// fxResolved is the outcome of expressing a request in the trip base
// currency.
type fxResolved struct {
	finalAmount      decimal.Decimal
	originalAmount   decimal.NullDecimal
	originalCurrency *string
	fxRate           decimal.NullDecimal
	fxSource         string
	overridden       bool
}

// resolveAmount enforces that the request currency is the trip base
// currency and, for foreign expenses, computes originalAmount x fxRate.
// A caller-supplied base amount that differs from the computed value is
// kept but flagged as overridden.
func (s *ExpenseService) resolveAmount(ctx context.Context, tripCurrency string, p ExpenseParams) (*fxResolved, error) {
	reqCurrency, err := money.NormalizeCurrencyOptional(p.Currency, "currency")
	if err != nil {
		return nil, err
	}
	if reqCurrency != tripCurrency {
		return nil, apperrors.Invalidf(
			"currency must equal trip base currency (%s); use originalAmount/originalCurrency + fxRate for foreign expenses",
			tripCurrency)
	}

	originalCurrency, err := money.NormalizeCurrencyOptional(p.OriginalCurrency, "originalCurrency")
	if err != nil {
		return nil, err
	}

	if originalCurrency == "" {
		if !p.Amount.Valid {
			return nil, apperrors.Invalidf("amount is required")
		}
		finalAmount, err := money.RequirePositive(p.Amount.Decimal, "amount")
		if err != nil {
			return nil, err
		}
		return &fxResolved{finalAmount: finalAmount}, nil
	}

	if !p.OriginalAmount.Valid {
		return nil, apperrors.Invalidf("original.amount is required")
	}
	originalAmount, err := money.RequirePositive(p.OriginalAmount.Decimal, "original.amount")
	if err != nil {
		return nil, err
	}

	fxRate := p.FxRate.Decimal
	fxSource := p.FxSource
	if !p.FxRate.Valid {
		fxRate, fxSource, err = s.gatewayRate(ctx, originalCurrency, tripCurrency)
		if err != nil {
			return nil, err
		}
	}
	if fxRate, err = money.RequirePositiveRate(fxRate, "original.fxRate"); err != nil {
		return nil, err
	}

	computed := money.Round2(originalAmount.Mul(fxRate))
	resolved := &fxResolved{
		finalAmount:      computed,
		originalAmount:   decimal.NewNullDecimal(originalAmount),
		originalCurrency: &originalCurrency,
		fxRate:           decimal.NewNullDecimal(fxRate),
		fxSource:         fxSource,
	}

	if p.Amount.Valid {
		override, err := money.RequirePositive(p.Amount.Decimal, "amount")
		if err != nil {
			return nil, err
		}
		resolved.finalAmount = money.Round2(override)
		resolved.overridden = !resolved.finalAmount.Equal(computed)
	}
	return resolved, nil
}

// gatewayRate resolves originalCurrency -> tripCurrency when the caller
// omitted fxRate. Without a configured gateway the rate stays required.
func (s *ExpenseService) gatewayRate(ctx context.Context, originalCurrency, tripCurrency string) (decimal.Decimal, string, error) {
	if originalCurrency == tripCurrency {
		return decimal.New(1, 0), "", nil
	}
	if s.rates == nil {
		return decimal.Zero, "", apperrors.Invalidf("original.fxRate is required")
	}
	rate, err := s.rates.RateFor(ctx, originalCurrency, tripCurrency)
	if err != nil {
		return decimal.Zero, "", apperrors.Invalidf("original.fxRate is required")
	}
	return rate, FxSourceGatewayName, nil
}

func buildSplitRows(expenseID uuid.UUID, shares []models.MemberShare, at time.Time) []models.ExpenseSplitDB {
	rows := make([]models.ExpenseSplitDB, 0, len(shares))
	for _, share := range shares {
		rows = append(rows, models.ExpenseSplitDB{
			SplitID:     uuid.New(),
			ExpenseID:   expenseID,
			MemberID:    share.MemberID,
			ShareAmount: share.Amount,
			CreatedAt:   at,
		})
	}
	return rows
}

func normalizePaymentSource(v string) (string, error) {
	if strings.TrimSpace(v) == "" {
		return models.PaymentSourcePersonal, nil
	}
	source := strings.ToUpper(strings.TrimSpace(v))
	if source != models.PaymentSourcePersonal && source != models.PaymentSourceSharedWallet {
		return "", apperrors.Invalidf("paymentSource is invalid")
	}
	return source, nil
}
