package services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"github.com/trip-collab/gw-trip-wallet/internal/apperrors"
	"github.com/trip-collab/gw-trip-wallet/internal/logger"
	"github.com/trip-collab/gw-trip-wallet/internal/models"
	"github.com/trip-collab/gw-trip-wallet/internal/money"
)

// SharedWalletReader looks up a trip's shared wallet.
type SharedWalletReader interface {
	GetByTripID(ctx context.Context, tripID uuid.UUID) (*models.SharedWalletDB, error)
}

// SharedWalletWriter persists shared wallet rows.
type SharedWalletWriter interface {
	Save(ctx context.Context, w *models.SharedWalletDB) error
	Touch(ctx context.Context, walletID uuid.UUID, at time.Time) error
}

// BalanceWriter exposes the two atomic balance primitives.
type BalanceWriter interface {
	Credit(ctx context.Context, walletID uuid.UUID, currency string, delta decimal.Decimal) error
	DebitIfSufficient(ctx context.Context, walletID uuid.UUID, currency string, amount decimal.Decimal) (bool, error)
}

// BalanceReader lists per-currency balances.
type BalanceReader interface {
	ListByWalletID(ctx context.Context, walletID uuid.UUID) ([]models.WalletBalanceDB, error)
}

// TransactionWriter appends ledger records.
type TransactionWriter interface {
	Save(ctx context.Context, t *models.WalletTransactionDB) error
}

// TransactionReader reads the ledger.
type TransactionReader interface {
	ExistsExpense(ctx context.Context, expenseID uuid.UUID) (bool, error)
	GetByIDAndWalletID(ctx context.Context, transactionID, walletID uuid.UUID) (*models.WalletTransactionDB, error)
	List(ctx context.Context, walletID uuid.UUID, filter models.WalletTransactionFilter) ([]models.WalletTransactionDB, int64, error)
	TotalsInBase(ctx context.Context, walletID uuid.UUID) (*models.WalletTotals, error)
}

// FxRateSource resolves an FX rate for a currency pair. Optional.
type FxRateSource interface {
	RateFor(ctx context.Context, fromCurrency, toCurrency string) (decimal.Decimal, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// DepositParams carries one wallet deposit.
type DepositParams struct {
	OriginalAmount   decimal.Decimal
	OriginalCurrency string
	FxRate           decimal.Decimal // zero means resolve via the FX gateway
	FxSource         string
	Note             string
	ActorMemberID    *uuid.UUID
}

// ExchangeLeg is one side of a currency exchange.
type ExchangeLeg struct {
	Currency     string
	Amount       decimal.Decimal
	FxRateToBase decimal.Decimal
}

// ExchangeParams carries one wallet currency exchange.
type ExchangeParams struct {
	From          ExchangeLeg
	To            ExchangeLeg
	FxSource      string
	Note          string
	ActorMemberID *uuid.UUID
}

// ExchangeResult pairs the two ledger legs of an exchange.
type ExchangeResult struct {
	ExchangeGroupID uuid.UUID                    `json:"exchange_group_id"`
	WalletID        uuid.UUID                    `json:"wallet_id"`
	Transactions    []models.WalletTransactionDB `json:"transactions"`
}

// WalletService is the shared wallet ledger: an append-only transaction
// log plus derived per-currency balances. Each public operation runs
// inside the caller's transaction boundary; balances move only through
// the atomic credit/debit primitives.
type WalletService struct {
	wallets     SharedWalletReader
	walletWrite SharedWalletWriter
	balances    BalanceReader
	balanceOps  BalanceWriter
	txnRead     TransactionReader
	txnWrite    TransactionWriter
	rates       FxRateSource
	kafkaWriter KafkaWriter
}

func NewWalletService(
	wallets SharedWalletReader,
	walletWrite SharedWalletWriter,
	balances BalanceReader,
	balanceOps BalanceWriter,
	txnRead TransactionReader,
	txnWrite TransactionWriter,
	rates FxRateSource,
	kafkaWriter KafkaWriter,
) *WalletService {
	return &WalletService{
		wallets:     wallets,
		walletWrite: walletWrite,
		balances:    balances,
		balanceOps:  balanceOps,
		txnRead:     txnRead,
		txnWrite:    txnWrite,
		rates:       rates,
		kafkaWriter: kafkaWriter,
	}
}

// Deposit adds funds in the deposited currency and records one
// DEPOSIT/IN transaction.
func (s *WalletService) Deposit(ctx context.Context, tripID uuid.UUID, p DepositParams) (*models.WalletTransactionDB, error) {
	wallet, err := s.wallets.GetByTripID(ctx, tripID)
	if err != nil {
		return nil, err
	}

	currency, err := money.NormalizeCurrency(p.OriginalCurrency, "originalCurrency")
	if err != nil {
		return nil, err
	}
	amount, err := money.RequirePositive(p.OriginalAmount, "originalAmount")
	if err != nil {
		return nil, err
	}
	rate, source, err := s.resolveRate(ctx, wallet, currency, p.FxRate, p.FxSource, "fxRate")
	if err != nil {
		return nil, err
	}

	now := time.Now()
	txn := &models.WalletTransactionDB{
		TransactionID:      uuid.New(),
		WalletID:           wallet.WalletID,
		TxnType:            models.TxnTypeDeposit,
		Direction:          models.DirectionIn,
		OriginalAmount:     amount,
		OriginalCurrency:   currency,
		FxRate:             rate,
		ComputedBaseAmount: money.Round2(amount.Mul(rate)),
		MemberID:           p.ActorMemberID,
		FxSource:           optionalString(source),
		Note:               optionalString(p.Note),
		CreatedAt:          now,
	}

	if err := s.txnWrite.Save(ctx, txn); err != nil {
		return nil, err
	}
	if err := s.balanceOps.Credit(ctx, wallet.WalletID, currency, amount); err != nil {
		return nil, err
	}
	if err := s.walletWrite.Touch(ctx, wallet.WalletID, now); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, txn)
	return txn, nil
}

// RecordExpense debits the wallet for one expense and records one
// EXPENSE/OUT transaction. An expense can be recorded at most once;
// an insufficient balance refuses with Conflict and writes nothing.
func (s *WalletService) RecordExpense(
	ctx context.Context,
	tripID, expenseID uuid.UUID,
	memberID *uuid.UUID,
	originalAmount decimal.Decimal,
	originalCurrency string,
	fxRate decimal.Decimal,
	fxSource, note string,
) (*models.WalletTransactionDB, error) {
	wallet, err := s.wallets.GetByTripID(ctx, tripID)
	if err != nil {
		return nil, err
	}

	exists, err := s.txnRead.ExistsExpense(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.Conflictf("wallet expense transaction already exists")
	}

	currency, err := money.NormalizeCurrency(originalCurrency, "originalCurrency")
	if err != nil {
		return nil, err
	}
	amount, err := money.RequirePositive(originalAmount, "originalAmount")
	if err != nil {
		return nil, err
	}
	rate, source, err := s.resolveRate(ctx, wallet, currency, fxRate, fxSource, "fxRate")
	if err != nil {
		return nil, err
	}

	ok, err := s.balanceOps.DebitIfSufficient(ctx, wallet.WalletID, currency, amount)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.Conflictf("insufficient wallet balance in %s", currency)
	}

	now := time.Now()
	txn := &models.WalletTransactionDB{
		TransactionID:      uuid.New(),
		WalletID:           wallet.WalletID,
		TxnType:            models.TxnTypeExpense,
		Direction:          models.DirectionOut,
		OriginalAmount:     amount,
		OriginalCurrency:   currency,
		FxRate:             rate,
		ComputedBaseAmount: money.Round2(amount.Mul(rate)),
		MemberID:           memberID,
		ExpenseID:          &expenseID,
		FxSource:           optionalString(source),
		Note:               optionalString(note),
		CreatedAt:          now,
	}

	if err := s.txnWrite.Save(ctx, txn); err != nil {
		return nil, err
	}
	if err := s.walletWrite.Touch(ctx, wallet.WalletID, now); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, txn)
	return txn, nil
}

// Exchange converts between two wallet currencies: an OUT leg debited
// with the sufficiency guard and an unconditional IN leg, sharing one
// exchange group id. The legs carry independent rates, so base-currency
// value is not asserted to be conserved across the pair.
func (s *WalletService) Exchange(ctx context.Context, tripID uuid.UUID, p ExchangeParams) (*ExchangeResult, error) {
	wallet, err := s.wallets.GetByTripID(ctx, tripID)
	if err != nil {
		return nil, err
	}

	fromCurrency, err := money.NormalizeCurrency(p.From.Currency, "from.currency")
	if err != nil {
		return nil, err
	}
	toCurrency, err := money.NormalizeCurrency(p.To.Currency, "to.currency")
	if err != nil {
		return nil, err
	}
	if fromCurrency == toCurrency {
		return nil, apperrors.Invalidf("from.currency and to.currency must be different")
	}

	fromAmount, err := money.RequirePositive(p.From.Amount, "from.amount")
	if err != nil {
		return nil, err
	}
	toAmount, err := money.RequirePositive(p.To.Amount, "to.amount")
	if err != nil {
		return nil, err
	}
	fromRate, err := money.RequirePositiveRate(p.From.FxRateToBase, "from.fxRateToBase")
	if err != nil {
		return nil, err
	}
	toRate, err := money.RequirePositiveRate(p.To.FxRateToBase, "to.fxRateToBase")
	if err != nil {
		return nil, err
	}

	ok, err := s.balanceOps.DebitIfSufficient(ctx, wallet.WalletID, fromCurrency, fromAmount)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.Conflictf("insufficient wallet balance in %s", fromCurrency)
	}

	now := time.Now()
	groupID := uuid.New()

	outTxn := &models.WalletTransactionDB{
		TransactionID:      uuid.New(),
		WalletID:           wallet.WalletID,
		TxnType:            models.TxnTypeExchange,
		Direction:          models.DirectionOut,
		OriginalAmount:     fromAmount,
		OriginalCurrency:   fromCurrency,
		FxRate:             fromRate,
		ComputedBaseAmount: money.Round2(fromAmount.Mul(fromRate)),
		MemberID:           p.ActorMemberID,
		ExchangeGroupID:    &groupID,
		FxSource:           optionalString(p.FxSource),
		Note:               optionalString(p.Note),
		CreatedAt:          now,
	}
	inTxn := &models.WalletTransactionDB{
		TransactionID:      uuid.New(),
		WalletID:           wallet.WalletID,
		TxnType:            models.TxnTypeExchange,
		Direction:          models.DirectionIn,
		OriginalAmount:     toAmount,
		OriginalCurrency:   toCurrency,
		FxRate:             toRate,
		ComputedBaseAmount: money.Round2(toAmount.Mul(toRate)),
		MemberID:           p.ActorMemberID,
		ExchangeGroupID:    &groupID,
		FxSource:           optionalString(p.FxSource),
		Note:               optionalString(p.Note),
		CreatedAt:          now,
	}

	if err := s.txnWrite.Save(ctx, outTxn); err != nil {
		return nil, err
	}
	if err := s.txnWrite.Save(ctx, inTxn); err != nil {
		return nil, err
	}
	if err := s.balanceOps.Credit(ctx, wallet.WalletID, toCurrency, toAmount); err != nil {
		return nil, err
	}
	if err := s.walletWrite.Touch(ctx, wallet.WalletID, now); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, outTxn)
	s.publishEvent(ctx, inTxn)

	return &ExchangeResult{
		ExchangeGroupID: groupID,
		WalletID:        wallet.WalletID,
		Transactions:    []models.WalletTransactionDB{*outTxn, *inTxn},
	}, nil
}

// Summary returns the wallet's balances ordered by currency plus the
// base-currency totals derived from the transaction log.
func (s *WalletService) Summary(ctx context.Context, tripID uuid.UUID) (*models.WalletSummary, error) {
	wallet, err := s.wallets.GetByTripID(ctx, tripID)
	if err != nil {
		return nil, err
	}

	balances, err := s.balances.ListByWalletID(ctx, wallet.WalletID)
	if err != nil {
		return nil, err
	}

	totals, err := s.txnRead.TotalsInBase(ctx, wallet.WalletID)
	if err != nil {
		return nil, err
	}

	return &models.WalletSummary{
		WalletID:     wallet.WalletID,
		TripID:       wallet.TripID,
		BaseCurrency: wallet.BaseCurrency,
		Balances:     balances,
		Totals:       *totals,
		UpdatedAt:    wallet.UpdatedAt,
	}, nil
}

// ListTransactions returns one ledger page, newest first. Page is
// clamped to >= 0 and size to [1, 200].
func (s *WalletService) ListTransactions(ctx context.Context, tripID uuid.UUID, filter models.WalletTransactionFilter) (*models.WalletTransactionList, error) {
	wallet, err := s.wallets.GetByTripID(ctx, tripID)
	if err != nil {
		return nil, err
	}

	if filter.Currency != "" {
		if filter.Currency, err = money.NormalizeCurrency(filter.Currency, "currency"); err != nil {
			return nil, err
		}
	}
	if filter.TxnType != "" {
		if filter.TxnType, err = normalizeTxnType(filter.TxnType); err != nil {
			return nil, err
		}
	}
	if filter.Page < 0 {
		filter.Page = 0
	}
	if filter.Size < 1 {
		filter.Size = 50
	} else if filter.Size > 200 {
		filter.Size = 200
	}

	items, total, err := s.txnRead.List(ctx, wallet.WalletID, filter)
	if err != nil {
		return nil, err
	}

	totalPages := int(total) / filter.Size
	if int(total)%filter.Size != 0 {
		totalPages++
	}

	return &models.WalletTransactionList{
		Items:      items,
		Page:       filter.Page,
		Size:       filter.Size,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

// GetTransaction returns one ledger record of the trip's wallet.
func (s *WalletService) GetTransaction(ctx context.Context, tripID, transactionID uuid.UUID) (*models.WalletTransactionDB, error) {
	wallet, err := s.wallets.GetByTripID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	return s.txnRead.GetByIDAndWalletID(ctx, transactionID, wallet.WalletID)
}

// resolveRate validates a caller-supplied rate, or, when none was given,
// asks the FX gateway for currency -> wallet base. A supplied rate
// always wins.
func (s *WalletService) resolveRate(ctx context.Context, wallet *models.SharedWalletDB, currency string, supplied decimal.Decimal, suppliedSource, field string) (decimal.Decimal, string, error) {
	if supplied.Sign() > 0 {
		return supplied, suppliedSource, nil
	}
	if !supplied.IsZero() {
		return decimal.Zero, "", apperrors.Invalidf("%s must be > 0", field)
	}
	if currency == wallet.BaseCurrency {
		return decimal.New(1, 0), suppliedSource, nil
	}
	if s.rates == nil {
		return decimal.Zero, "", apperrors.Invalidf("%s must be > 0", field)
	}

	rate, err := s.rates.RateFor(ctx, currency, wallet.BaseCurrency)
	if err != nil {
		logger.Log.Errorw("failed to resolve fx rate", "from", currency, "to", wallet.BaseCurrency, "error", err)
		return decimal.Zero, "", apperrors.Invalidf("%s must be > 0", field)
	}
	if rate.Sign() <= 0 {
		return decimal.Zero, "", apperrors.Invalidf("%s must be > 0", field)
	}
	return rate, FxSourceGatewayName, nil
}

// FxSourceGatewayName mirrors facades.FxSourceGateway without importing
// the facade package into the service layer.
const FxSourceGatewayName = "exchange-gateway"

// publishEvent publishes a wallet transaction to Kafka. Best-effort:
// failures are logged, never surfaced. It runs inside the request
// transaction, before commit, so a later rollback can leave an event
// with no matching ledger row; consumers must treat events as hints
// and read the ledger as the source of truth.
func (s *WalletService) publishEvent(ctx context.Context, txn *models.WalletTransactionDB) {
	if s.kafkaWriter == nil {
		return
	}

	event := models.WalletEvent{
		TransactionID: txn.TransactionID.String(),
		WalletID:      txn.WalletID.String(),
		TxnType:       txn.TxnType,
		Direction:     txn.Direction,
		Amount:        txn.OriginalAmount.String(),
		Currency:      txn.OriginalCurrency,
		Timestamp:     time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal wallet event", "transaction_id", event.TransactionID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.TransactionID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish wallet event", "transaction_id", event.TransactionID, "error", err)
		return
	}
	logger.Log.Infow("wallet event published", "transaction_id", event.TransactionID, "txn_type", event.TxnType)
}

var allowedTxnTypes = map[string]struct{}{
	models.TxnTypeDeposit:    {},
	models.TxnTypeWithdraw:   {},
	models.TxnTypeExpense:    {},
	models.TxnTypeExchange:   {},
	models.TxnTypeAdjustment: {},
}

func normalizeTxnType(v string) (string, error) {
	t := strings.ToUpper(strings.TrimSpace(v))
	if _, ok := allowedTxnTypes[t]; !ok {
		return "", apperrors.Invalidf("txnType is invalid")
	}
	return t, nil
}

func optionalString(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
