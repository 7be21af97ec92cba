package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/trip-collab/gw-trip-wallet/internal/apperrors"
	"github.com/trip-collab/gw-trip-wallet/internal/logger"
	"github.com/trip-collab/gw-trip-wallet/internal/models"
)

// WalletViewer defines the interface that the service must implement.
type WalletViewer interface {
	Summary(ctx context.Context, tripID uuid.UUID) (*models.WalletSummary, error)
	ListTransactions(ctx context.Context, tripID uuid.UUID, filter models.WalletTransactionFilter) (*models.WalletTransactionList, error)
	GetTransaction(ctx context.Context, tripID, transactionID uuid.UUID) (*models.WalletTransactionDB, error)
}

// NewWalletSummaryHandler returns an HTTP handler for the wallet view.
// @Summary Shared wallet summary
// @Description Returns per-currency balances plus base-currency totals over the transaction history.
// @Tags wallet
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} models.WalletSummary "Wallet summary"
// @Failure 404 {object} handlers.ErrorResponse "Shared wallet not found"
// @Router /trips/{tripId}/wallet [get]
func NewWalletSummaryHandler(svc WalletViewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tripID, err := pathUUID(r, "tripId")
		if err != nil {
			writeError(w, err)
			return
		}

		summary, err := svc.Summary(ctx, tripID)
		if err != nil {
			logger.Log.Errorw("failed to get wallet summary", "tripID", tripID, "error", err)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}

func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.Invalidf("%s must be an integer", name)
	}
	return v, nil
}

// NewWalletTransactionsHandler returns an HTTP handler for one ledger page.
// @Summary List wallet transactions
// @Description Returns one page of ledger records, newest first. Filterable by currency, txn_type and exchange_group_id.
// @Tags wallet
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param currency query string false "Currency filter, ISO 4217"
// @Param txn_type query string false "DEPOSIT, WITHDRAW, EXPENSE, EXCHANGE or ADJUSTMENT"
// @Param exchange_group_id query string false "Exchange group filter"
// @Param page query int false "Page, zero-based"
// @Param size query int false "Page size, 1..200, default 50"
// @Success 200 {object} models.WalletTransactionList "Ledger page"
// @Failure 400 {object} handlers.ErrorResponse "Invalid filter"
// @Router /trips/{tripId}/wallet/transactions [get]
func NewWalletTransactionsHandler(svc WalletViewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tripID, err := pathUUID(r, "tripId")
		if err != nil {
			writeError(w, err)
			return
		}

		filter := models.WalletTransactionFilter{
			Currency: r.URL.Query().Get("currency"),
			TxnType:  r.URL.Query().Get("txn_type"),
		}
		if raw := r.URL.Query().Get("exchange_group_id"); raw != "" {
			groupID, err := uuid.Parse(raw)
			if err != nil {
				writeError(w, apperrors.Invalidf("exchange_group_id must be a valid UUID"))
				return
			}
			filter.ExchangeGroupID = &groupID
		}
		if filter.Page, err = queryInt(r, "page", 0); err != nil {
			writeError(w, err)
			return
		}
		if filter.Size, err = queryInt(r, "size", 0); err != nil {
			writeError(w, err)
			return
		}

		page, err := svc.ListTransactions(ctx, tripID, filter)
		if err != nil {
			logger.Log.Errorw("failed to list wallet transactions", "tripID", tripID, "error", err)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, page)
	}
}

// NewWalletTransactionHandler returns an HTTP handler for one ledger record.
// @Summary Get wallet transaction
// @Description Returns one ledger record of the trip's wallet.
// @Tags wallet
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param transactionId path string true "Transaction ID"
// @Success 200 {object} models.WalletTransactionDB "Ledger record"
// @Failure 404 {object} handlers.ErrorResponse "Transaction not found"
// @Router /trips/{tripId}/wallet/transactions/{transactionId} [get]
func NewWalletTransactionHandler(svc WalletViewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tripID, err := pathUUID(r, "tripId")
		if err != nil {
			writeError(w, err)
			return
		}
		transactionID, err := pathUUID(r, "transactionId")
		if err != nil {
			writeError(w, err)
			return
		}

		txn, err := svc.GetTransaction(ctx, tripID, transactionID)
		if err != nil {
			logger.Log.Errorw("failed to get wallet transaction", "tripID", tripID, "transactionID", transactionID, "error", err)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, txn)
	}
}
