package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/trip-collab/gw-trip-wallet/internal/logger"
	"github.com/trip-collab/gw-trip-wallet/internal/models"
	"github.com/trip-collab/gw-trip-wallet/internal/services"
)

// WalletOperator defines the interface that the service must implement.
type WalletOperator interface {
	Deposit(ctx context.Context, tripID uuid.UUID, p services.DepositParams) (*models.WalletTransactionDB, error)
	Exchange(ctx context.Context, tripID uuid.UUID, p services.ExchangeParams) (*services.ExchangeResult, error)
}

// DepositRequest represents the JSON body for a wallet deposit
// swagger:model DepositRequest
type DepositRequest struct {
	// Amount in the deposited currency
	// required: true
	// default: 500.00
	Amount decimal.Decimal `json:"amount"`

	// Deposited currency, ISO 4217
	// required: true
	// default: EUR
	Currency string `json:"currency" validate:"required,len=3"`

	// Rate currency -> wallet base; omit to resolve via the FX gateway
	FxRate *decimal.Decimal `json:"fx_rate"`

	// Where the rate came from
	FxSource string `json:"fx_source"`

	// Free-form note
	Note string `json:"note"`

	// Depositing member
	MemberID *uuid.UUID `json:"member_id"`
}

// ExchangeLegPayload is one side of a wallet currency exchange.
// swagger:model ExchangeLegPayload
type ExchangeLegPayload struct {
	// Currency, ISO 4217
	// required: true
	Currency string `json:"currency" validate:"required,len=3"`

	// Amount in this currency
	// required: true
	Amount decimal.Decimal `json:"amount"`

	// Rate currency -> wallet base
	// required: true
	FxRateToBase decimal.Decimal `json:"fx_rate_to_base"`
}

// ExchangeRequest represents the JSON body for a wallet currency exchange
// swagger:model ExchangeRequest
type ExchangeRequest struct {
	// Debited leg
	// required: true
	From ExchangeLegPayload `json:"from" validate:"required"`

	// Credited leg
	// required: true
	To ExchangeLegPayload `json:"to" validate:"required"`

	// Where the rates came from
	FxSource string `json:"fx_source"`

	// Free-form note
	Note string `json:"note"`

	// Exchanging member
	MemberID *uuid.UUID `json:"member_id"`
}

// NewWalletDepositHandler returns an HTTP handler that funds the shared wallet.
// @Summary Deposit into shared wallet
// @Description Credits the wallet in the deposited currency and appends one DEPOSIT transaction.
// @Tags wallet
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param request body handlers.DepositRequest true "Deposit Request"
// @Success 201 {object} models.WalletTransactionDB "Deposit recorded"
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount, currency or rate"
// @Failure 404 {object} handlers.ErrorResponse "Shared wallet not found"
// @Router /trips/{tripId}/wallet/deposit [post]
func NewWalletDepositHandler(svc WalletOperator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tripID, err := pathUUID(r, "tripId")
		if err != nil {
			writeError(w, err)
			return
		}

		var req DepositRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, err)
			return
		}

		params := services.DepositParams{
			OriginalAmount:   req.Amount,
			OriginalCurrency: req.Currency,
			FxSource:         req.FxSource,
			Note:             req.Note,
			ActorMemberID:    req.MemberID,
		}
		if req.FxRate != nil {
			params.FxRate = *req.FxRate
		}

		txn, err := svc.Deposit(ctx, tripID, params)
		if err != nil {
			logger.Log.Errorw("failed to deposit into wallet", "tripID", tripID, "currency", req.Currency, "error", err)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, txn)
	}
}

// NewWalletExchangeHandler returns an HTTP handler that converts wallet funds.
// @Summary Exchange wallet currencies
// @Description Debits the from leg with the balance guard and credits the to leg. Both ledger records share one exchange group id.
// @Tags wallet
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param request body handlers.ExchangeRequest true "Exchange Request"
// @Success 201 {object} services.ExchangeResult "Exchange recorded"
// @Failure 400 {object} handlers.ErrorResponse "Invalid legs"
// @Failure 409 {object} handlers.ErrorResponse "Insufficient wallet balance"
// @Router /trips/{tripId}/wallet/exchange [post]
func NewWalletExchangeHandler(svc WalletOperator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tripID, err := pathUUID(r, "tripId")
		if err != nil {
			writeError(w, err)
			return
		}

		var req ExchangeRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, err)
			return
		}

		res, err := svc.Exchange(ctx, tripID, services.ExchangeParams{
			From: services.ExchangeLeg{
				Currency:     req.From.Currency,
				Amount:       req.From.Amount,
				FxRateToBase: req.From.FxRateToBase,
			},
			To: services.ExchangeLeg{
				Currency:     req.To.Currency,
				Amount:       req.To.Amount,
				FxRateToBase: req.To.FxRateToBase,
			},
			FxSource:      req.FxSource,
			Note:          req.Note,
			ActorMemberID: req.MemberID,
		})
		if err != nil {
			logger.Log.Errorw("failed to exchange wallet funds", "tripID", tripID, "error", err)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, res)
	}
}
