package services

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trip-collab/gw-trip-wallet/internal/apperrors"
	"github.com/trip-collab/gw-trip-wallet/internal/models"
)

// decEq matches a decimal.Decimal by numeric value. gomock's default
// reflect.DeepEqual comparison distinguishes equal values with different
// exponents, so money arguments need a value comparison.
type decimalMatcher struct {
	want decimal.Decimal
}

func decEq(s string) gomock.Matcher {
	return decimalMatcher{want: decimal.RequireFromString(s)}
}

func (m decimalMatcher) Matches(x interface{}) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalMatcher) String() string {
	return "decimal equal to " + m.want.String()
}

type walletMocks struct {
	wallets     *MockSharedWalletReader
	walletWrite *MockSharedWalletWriter
	balances    *MockBalanceReader
	balanceOps  *MockBalanceWriter
	txnRead     *MockTransactionReader
	txnWrite    *MockTransactionWriter
	rates       *MockFxRateSource
	kafka       *MockKafkaWriter
}

func newWalletMocks(ctrl *gomock.Controller) *walletMocks {
	return &walletMocks{
		wallets:     NewMockSharedWalletReader(ctrl),
		walletWrite: NewMockSharedWalletWriter(ctrl),
		balances:    NewMockBalanceReader(ctrl),
		balanceOps:  NewMockBalanceWriter(ctrl),
		txnRead:     NewMockTransactionReader(ctrl),
		txnWrite:    NewMockTransactionWriter(ctrl),
		rates:       NewMockFxRateSource(ctrl),
		kafka:       NewMockKafkaWriter(ctrl),
	}
}

func (m *walletMocks) service(withRates, withKafka bool) *WalletService {
	var rates FxRateSource
	if withRates {
		rates = m.rates
	}
	var kafka KafkaWriter
	if withKafka {
		kafka = m.kafka
	}
	return NewWalletService(m.wallets, m.walletWrite, m.balances, m.balanceOps, m.txnRead, m.txnWrite, rates, kafka)
}

func TestWalletService_Deposit(t *testing.T) {
	ctx := context.Background()
	tripID := uuid.New()
	walletID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newWalletMocks(ctrl)
	m.wallets.EXPECT().GetByTripID(ctx, tripID).Return(&models.SharedWalletDB{WalletID: walletID, TripID: tripID, BaseCurrency: "EUR"}, nil)

	var saved *models.WalletTransactionDB
	m.txnWrite.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, txn *models.WalletTransactionDB) error {
		saved = txn
		return nil
	})
	m.balanceOps.EXPECT().Credit(ctx, walletID, "USD", decEq("500.00")).Return(nil)
	m.walletWrite.EXPECT().Touch(ctx, walletID, gomock.Any()).Return(nil)
	m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

	svc := m.service(false, true)
	txn, err := svc.Deposit(ctx, tripID, DepositParams{
		OriginalAmount:   decimal.RequireFromString("500.00"),
		OriginalCurrency: "usd",
		FxRate:           decimal.RequireFromString("0.9"),
		FxSource:         "manual",
	})
	require.NoError(t, err)
	require.NotNil(t, saved)

	assert.Equal(t, models.TxnTypeDeposit, txn.TxnType)
	assert.Equal(t, models.DirectionIn, txn.Direction)
	assert.Equal(t, "USD", txn.OriginalCurrency)
	assert.Equal(t, "450.00", txn.ComputedBaseAmount.StringFixed(2))
	require.NotNil(t, txn.FxSource)
	assert.Equal(t, "manual", *txn.FxSource)
}

func TestWalletService_Deposit_BaseCurrencyDefaultsRateToOne(t *testing.T) {
	ctx := context.Background()
	tripID := uuid.New()
	walletID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newWalletMocks(ctrl)
	m.wallets.EXPECT().GetByTripID(ctx, tripID).Return(&models.SharedWalletDB{WalletID: walletID, BaseCurrency: "EUR"}, nil)
	m.txnWrite.EXPECT().Save(ctx, gomock.Any()).Return(nil)
	m.balanceOps.EXPECT().Credit(ctx, walletID, "EUR", decEq("100.00")).Return(nil)
	m.walletWrite.EXPECT().Touch(ctx, walletID, gomock.Any()).Return(nil)

	svc := m.service(false, false)
	txn, err := svc.Deposit(ctx, tripID, DepositParams{
		OriginalAmount:   decimal.RequireFromString("100.00"),
		OriginalCurrency: "EUR",
	})
	require.NoError(t, err)
	assert.True(t, txn.FxRate.Equal(decimal.New(1, 0)))
	assert.Equal(t, "100.00", txn.ComputedBaseAmount.StringFixed(2))
}

func TestWalletService_Deposit_ForeignWithoutRateNeedsGateway(t *testing.T) {
	ctx := context.Background()
	tripID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newWalletMocks(ctrl)
	m.wallets.EXPECT().GetByTripID(ctx, tripID).Return(&models.SharedWalletDB{WalletID: uuid.New(), BaseCurrency: "EUR"}, nil)

	svc := m.service(false, false)
	_, err := svc.Deposit(ctx, tripID, DepositParams{
		OriginalAmount:   decimal.RequireFromString("100.00"),
		OriginalCurrency: "USD",
	})
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidInput))
	assert.EqualError(t, err, "fxRate must be > 0")
}

func TestWalletService_Deposit_RateResolvedByGateway(t *testing.T) {
	ctx := context.Background()
	tripID := uuid.New()
	walletID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newWalletMocks(ctrl)
	m.wallets.EXPECT().GetByTripID(ctx, tripID).Return(&models.SharedWalletDB{WalletID: walletID, BaseCurrency: "EUR"}, nil)
	m.rates.EXPECT().RateFor(ctx, "USD", "EUR").Return(decimal.RequireFromString("0.92"), nil)
	m.txnWrite.EXPECT().Save(ctx, gomock.Any()).Return(nil)
	m.balanceOps.EXPECT().Credit(ctx, walletID, "USD", decEq("100.00")).Return(nil)
	m.walletWrite.EXPECT().Touch(ctx, walletID, gomock.Any()).Return(nil)

	svc := m.service(true, false)
	txn, err := svc.Deposit(ctx, tripID, DepositParams{
		OriginalAmount:   decimal.RequireFromString("100.00"),
		OriginalCurrency: "USD",
	})
	require.NoError(t, err)
	assert.Equal(t, "92.00", txn.ComputedBaseAmount.StringFixed(2))
	require.NotNil(t, txn.FxSource)
	assert.Equal(t, FxSourceGatewayName, *txn.FxSource)
}

func TestWalletService_RecordExpense(t *testing.T) {
	ctx := context.Background()
	tripID := uuid.New()
	walletID := uuid.New()
	expenseID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newWalletMocks(ctrl)
	m.wallets.EXPECT().GetByTripID(ctx, tripID).Return(&models.SharedWalletDB{WalletID: walletID, BaseCurrency: "EUR"}, nil)
	m.txnRead.EXPECT().ExistsExpense(ctx, expenseID).Return(false, nil)
	m.balanceOps.EXPECT().DebitIfSufficient(ctx, walletID, "THB", decEq("1000.00")).Return(true, nil)
	m.txnWrite.EXPECT().Save(ctx, gomock.Any()).Return(nil)
	m.walletWrite.EXPECT().Touch(ctx, walletID, gomock.Any()).Return(nil)

	svc := m.service(false, false)
	txn, err := svc.RecordExpense(ctx, tripID, expenseID, nil,
		decimal.RequireFromString("1000.00"), "THB", decimal.RequireFromString("0.025"), "manual", "dinner")
	require.NoError(t, err)

	assert.Equal(t, models.TxnTypeExpense, txn.TxnType)
	assert.Equal(t, models.DirectionOut, txn.Direction)
	require.NotNil(t, txn.ExpenseID)
	assert.Equal(t, expenseID, *txn.ExpenseID)
	assert.Equal(t, "25.00", txn.ComputedBaseAmount.StringFixed(2))
}

func TestWalletService_RecordExpense_Duplicate(t *testing.T) {
	ctx := context.Background()
	tripID := uuid.New()
	expenseID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newWalletMocks(ctrl)
	m.wallets.EXPECT().GetByTripID(ctx, tripID).Return(&models.SharedWalletDB{WalletID: uuid.New(), BaseCurrency: "EUR"}, nil)
	m.txnRead.EXPECT().ExistsExpense(ctx, expenseID).Return(true, nil)

	svc := m.service(false, false)
	_, err := svc.RecordExpense(ctx, tripID, expenseID, nil,
		decimal.NewFromInt(10), "EUR", decimal.New(1, 0), "", "")
	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))
	assert.EqualError(t, err, "wallet expense transaction already exists")
}

func TestWalletService_RecordExpense_InsufficientBalance(t *testing.T) {
	ctx := context.Background()
	tripID := uuid.New()
	walletID := uuid.New()
	expenseID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newWalletMocks(ctrl)
	m.wallets.EXPECT().GetByTripID(ctx, tripID).Return(&models.SharedWalletDB{WalletID: walletID, BaseCurrency: "EUR"}, nil)
	m.txnRead.EXPECT().ExistsExpense(ctx, expenseID).Return(false, nil)
	m.balanceOps.EXPECT().DebitIfSufficient(ctx, walletID, "THB", decEq("9999.00")).Return(false, nil)

	svc := m.service(false, false)
	_, err := svc.RecordExpense(ctx, tripID, expenseID, nil,
		decimal.RequireFromString("9999.00"), "THB", decimal.RequireFromString("0.025"), "", "")
	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))
	assert.EqualError(t, err, "insufficient wallet balance in THB")
}

func TestWalletService_Exchange(t *testing.T) {
	ctx := context.Background()
	tripID := uuid.New()
	walletID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newWalletMocks(ctrl)
	m.wallets.EXPECT().GetByTripID(ctx, tripID).Return(&models.SharedWalletDB{WalletID: walletID, BaseCurrency: "EUR"}, nil)
	m.balanceOps.EXPECT().DebitIfSufficient(ctx, walletID, "EUR", decEq("100.00")).Return(true, nil)

	var saved []*models.WalletTransactionDB
	m.txnWrite.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, txn *models.WalletTransactionDB) error {
		saved = append(saved, txn)
		return nil
	}).Times(2)
	m.balanceOps.EXPECT().Credit(ctx, walletID, "THB", decEq("3900.00")).Return(nil)
	m.walletWrite.EXPECT().Touch(ctx, walletID, gomock.Any()).Return(nil)
	m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	svc := m.service(false, true)
	res, err := svc.Exchange(ctx, tripID, ExchangeParams{
		From: ExchangeLeg{Currency: "EUR", Amount: decimal.RequireFromString("100.00"), FxRateToBase: decimal.New(1, 0)},
		To:   ExchangeLeg{Currency: "THB", Amount: decimal.RequireFromString("3900.00"), FxRateToBase: decimal.RequireFromString("0.0256")},
	})
	require.NoError(t, err)
	require.Len(t, saved, 2)
	require.Len(t, res.Transactions, 2)

	out, in := res.Transactions[0], res.Transactions[1]
	assert.Equal(t, models.DirectionOut, out.Direction)
	assert.Equal(t, "EUR", out.OriginalCurrency)
	assert.Equal(t, models.DirectionIn, in.Direction)
	assert.Equal(t, "THB", in.OriginalCurrency)

	// Both legs share one exchange group.
	require.NotNil(t, out.ExchangeGroupID)
	require.NotNil(t, in.ExchangeGroupID)
	assert.Equal(t, *out.ExchangeGroupID, *in.ExchangeGroupID)
	assert.Equal(t, res.ExchangeGroupID, *out.ExchangeGroupID)
}

func TestWalletService_Exchange_SameCurrency(t *testing.T) {
	ctx := context.Background()
	tripID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newWalletMocks(ctrl)
	m.wallets.EXPECT().GetByTripID(ctx, tripID).Return(&models.SharedWalletDB{WalletID: uuid.New(), BaseCurrency: "EUR"}, nil)

	svc := m.service(false, false)
	_, err := svc.Exchange(ctx, tripID, ExchangeParams{
		From: ExchangeLeg{Currency: "EUR", Amount: decimal.NewFromInt(10), FxRateToBase: decimal.New(1, 0)},
		To:   ExchangeLeg{Currency: "eur", Amount: decimal.NewFromInt(10), FxRateToBase: decimal.New(1, 0)},
	})
	assert.EqualError(t, err, "from.currency and to.currency must be different")
}

func TestWalletService_Exchange_InsufficientFromLeg(t *testing.T) {
	ctx := context.Background()
	tripID := uuid.New()
	walletID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newWalletMocks(ctrl)
	m.wallets.EXPECT().GetByTripID(ctx, tripID).Return(&models.SharedWalletDB{WalletID: walletID, BaseCurrency: "EUR"}, nil)
	m.balanceOps.EXPECT().DebitIfSufficient(ctx, walletID, "EUR", decEq("500.00")).Return(false, nil)

	svc := m.service(false, false)
	_, err := svc.Exchange(ctx, tripID, ExchangeParams{
		From: ExchangeLeg{Currency: "EUR", Amount: decimal.NewFromInt(500), FxRateToBase: decimal.New(1, 0)},
		To:   ExchangeLeg{Currency: "USD", Amount: decimal.NewFromInt(540), FxRateToBase: decimal.RequireFromString("0.92")},
	})
	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))
}

func TestWalletService_Summary(t *testing.T) {
	ctx := context.Background()
	tripID := uuid.New()
	walletID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newWalletMocks(ctrl)
	m.wallets.EXPECT().GetByTripID(ctx, tripID).Return(&models.SharedWalletDB{WalletID: walletID, TripID: tripID, BaseCurrency: "EUR"}, nil)
	m.balances.EXPECT().ListByWalletID(ctx, walletID).Return([]models.WalletBalanceDB{
		{WalletID: walletID, Currency: "EUR", Balance: decimal.RequireFromString("120.50")},
		{WalletID: walletID, Currency: "THB", Balance: decimal.RequireFromString("2500.00")},
	}, nil)
	m.txnRead.EXPECT().TotalsInBase(ctx, walletID).Return(&models.WalletTotals{
		TotalDeposits:    decimal.RequireFromString("500.00"),
		TotalWithdrawals: decimal.Zero,
		TotalExpenses:    decimal.RequireFromString("310.00"),
		NetAdjustments:   decimal.Zero,
	}, nil)

	svc := m.service(false, false)
	summary, err := svc.Summary(ctx, tripID)
	require.NoError(t, err)

	assert.Equal(t, walletID, summary.WalletID)
	assert.Equal(t, "EUR", summary.BaseCurrency)
	require.Len(t, summary.Balances, 2)
	assert.Equal(t, "500.00", summary.Totals.TotalDeposits.StringFixed(2))
}

func TestWalletService_ListTransactions_ClampsPaging(t *testing.T) {
	ctx := context.Background()
	tripID := uuid.New()
	walletID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newWalletMocks(ctrl)
	m.wallets.EXPECT().GetByTripID(ctx, tripID).Return(&models.SharedWalletDB{WalletID: walletID, BaseCurrency: "EUR"}, nil)
	m.txnRead.EXPECT().List(ctx, walletID, models.WalletTransactionFilter{Page: 0, Size: 50}).
		Return([]models.WalletTransactionDB{}, int64(101), nil)

	svc := m.service(false, false)
	page, err := svc.ListTransactions(ctx, tripID, models.WalletTransactionFilter{Page: -3, Size: 0})
	require.NoError(t, err)

	assert.Equal(t, 0, page.Page)
	assert.Equal(t, 50, page.Size)
	assert.Equal(t, int64(101), page.Total)
	assert.Equal(t, 3, page.TotalPages)
}

func TestWalletService_ListTransactions_InvalidTxnType(t *testing.T) {
	ctx := context.Background()
	tripID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newWalletMocks(ctrl)
	m.wallets.EXPECT().GetByTripID(ctx, tripID).Return(&models.SharedWalletDB{WalletID: uuid.New(), BaseCurrency: "EUR"}, nil)

	svc := m.service(false, false)
	_, err := svc.ListTransactions(ctx, tripID, models.WalletTransactionFilter{TxnType: "REFUND"})
	assert.EqualError(t, err, "txnType is invalid")
}

// balanceBook is an in-memory BalanceWriter with the same semantics as
// the SQL primitives: unconditional credit, debit only when covered.
type balanceBook struct {
	balances map[string]decimal.Decimal
}

func newBalanceBook() *balanceBook {
	return &balanceBook{balances: make(map[string]decimal.Decimal)}
}

func (b *balanceBook) Credit(_ context.Context, _ uuid.UUID, currency string, delta decimal.Decimal) error {
	b.balances[currency] = b.balances[currency].Add(delta)
	return nil
}

func (b *balanceBook) DebitIfSufficient(_ context.Context, _ uuid.UUID, currency string, amount decimal.Decimal) (bool, error) {
	if b.balances[currency].LessThan(amount) {
		return false, nil
	}
	b.balances[currency] = b.balances[currency].Sub(amount)
	return true, nil
}

func TestWalletService_LedgerReplayMatchesBalances(t *testing.T) {
	ctx := context.Background()
	tripID := uuid.New()
	walletID := uuid.New()
	expenseID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newWalletMocks(ctrl)
	m.wallets.EXPECT().GetByTripID(ctx, tripID).
		Return(&models.SharedWalletDB{WalletID: walletID, TripID: tripID, BaseCurrency: "EUR"}, nil).AnyTimes()
	m.txnRead.EXPECT().ExistsExpense(ctx, expenseID).Return(false, nil)
	m.walletWrite.EXPECT().Touch(ctx, walletID, gomock.Any()).Return(nil).AnyTimes()

	var ledger []*models.WalletTransactionDB
	m.txnWrite.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, txn *models.WalletTransactionDB) error {
		ledger = append(ledger, txn)
		return nil
	}).AnyTimes()

	book := newBalanceBook()
	svc := NewWalletService(m.wallets, m.walletWrite, m.balances, book, m.txnRead, m.txnWrite, nil, nil)

	_, err := svc.Deposit(ctx, tripID, DepositParams{
		OriginalAmount:   decimal.RequireFromString("100.00"),
		OriginalCurrency: "USD",
		FxRate:           decimal.RequireFromString("0.92"),
	})
	require.NoError(t, err)

	_, err = svc.Deposit(ctx, tripID, DepositParams{
		OriginalAmount:   decimal.RequireFromString("200.00"),
		OriginalCurrency: "EUR",
	})
	require.NoError(t, err)

	_, err = svc.RecordExpense(ctx, tripID, expenseID, nil,
		decimal.RequireFromString("40.00"), "USD", decimal.RequireFromString("0.92"), "manual", "")
	require.NoError(t, err)

	_, err = svc.Exchange(ctx, tripID, ExchangeParams{
		From: ExchangeLeg{Currency: "USD", Amount: decimal.RequireFromString("50.00"), FxRateToBase: decimal.RequireFromString("0.92")},
		To:   ExchangeLeg{Currency: "EUR", Amount: decimal.RequireFromString("45.50"), FxRateToBase: decimal.New(1, 0)},
	})
	require.NoError(t, err)

	// Replaying the ledger (IN minus OUT per original currency) must
	// reproduce the accumulated balances exactly.
	replayed := make(map[string]decimal.Decimal)
	for _, txn := range ledger {
		switch txn.Direction {
		case models.DirectionIn:
			replayed[txn.OriginalCurrency] = replayed[txn.OriginalCurrency].Add(txn.OriginalAmount)
		case models.DirectionOut:
			replayed[txn.OriginalCurrency] = replayed[txn.OriginalCurrency].Sub(txn.OriginalAmount)
		}
	}

	require.Len(t, ledger, 5)
	require.Len(t, replayed, len(book.balances))
	for currency, balance := range book.balances {
		assert.True(t, balance.Equal(replayed[currency]),
			"currency %s: balance %s, ledger replay %s", currency, balance, replayed[currency])
	}
	assert.Equal(t, "10.00", book.balances["USD"].StringFixed(2))
	assert.Equal(t, "245.50", book.balances["EUR"].StringFixed(2))
}
