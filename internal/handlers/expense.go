package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/trip-collab/gw-trip-wallet/internal/apperrors"
	"github.com/trip-collab/gw-trip-wallet/internal/logger"
	"github.com/trip-collab/gw-trip-wallet/internal/models"
	"github.com/trip-collab/gw-trip-wallet/internal/services"
)

// ExpenseWorkflow defines the interface that the service must implement.
type ExpenseWorkflow interface {
	Create(ctx context.Context, tripID uuid.UUID, p services.ExpenseParams) (*models.ExpenseDB, error)
	Update(ctx context.Context, tripID, expenseID uuid.UUID, p services.ExpenseParams) (*models.ExpenseDB, error)
	Delete(ctx context.Context, tripID, expenseID uuid.UUID) error
	Move(ctx context.Context, tripID, expenseID uuid.UUID, newDate *time.Time) (*models.ExpenseDB, error)
}

// CustomSplitPayload is one explicit member share.
// swagger:model CustomSplitPayload
type CustomSplitPayload struct {
	// Member ID
	// required: true
	MemberID uuid.UUID `json:"member_id" validate:"required"`

	// Share amount in the trip base currency
	// required: true
	Amount decimal.Decimal `json:"amount"`
}

// ExpenseRequest represents the JSON body for creating or updating an expense
// swagger:model ExpenseRequest
type ExpenseRequest struct {
	// Expense title
	// required: true
	// default: Dinner
	Title string `json:"title" validate:"required"`

	// Amount in the trip base currency; optional when original fields are given
	Amount *decimal.Decimal `json:"amount"`

	// Currency; must equal the trip base currency when set
	Currency string `json:"currency" validate:"omitempty,len=3"`

	// PERSONAL or SHARED_WALLET; create only
	PaymentSource string `json:"payment_source" validate:"omitempty,oneof=PERSONAL SHARED_WALLET personal shared_wallet"`

	// Paying member; required for PERSONAL payments
	PaidByMemberID *uuid.UUID `json:"paid_by_member_id"`

	// Expense date, YYYY-MM-DD
	ExpenseDate string `json:"expense_date" validate:"omitempty,datetime=2006-01-02"`

	// Free-form note
	Note string `json:"note"`

	// Member who records the expense
	CreatedByMemberID *uuid.UUID `json:"created_by_member_id"`

	// EQUAL or CUSTOM_AMOUNT; defaults to EQUAL
	SplitMethod string `json:"split_method" validate:"omitempty,oneof=EQUAL CUSTOM_AMOUNT"`

	// Participants for EQUAL splits
	ParticipantMemberIDs []uuid.UUID `json:"participant_member_ids"`

	// Explicit shares for CUSTOM_AMOUNT splits
	CustomSplits []CustomSplitPayload `json:"custom_splits" validate:"omitempty,dive"`

	// Amount in the incurred currency
	OriginalAmount *decimal.Decimal `json:"original_amount"`

	// Incurred currency, ISO 4217
	OriginalCurrency string `json:"original_currency" validate:"omitempty,len=3"`

	// Rate original -> base; omit to resolve via the FX gateway
	FxRate *decimal.Decimal `json:"fx_rate"`

	// Where the rate came from
	FxSource string `json:"fx_source"`
}

// MoveExpenseRequest represents the JSON body for moving an expense
// swagger:model MoveExpenseRequest
type MoveExpenseRequest struct {
	// New expense date, YYYY-MM-DD
	// required: true
	// default: 2026-08-20
	NewDate string `json:"new_date" validate:"required,datetime=2006-01-02"`
}

func nullDecimal(v *decimal.Decimal) decimal.NullDecimal {
	if v == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*v)
}

func (req *ExpenseRequest) toParams() (services.ExpenseParams, error) {
	p := services.ExpenseParams{
		Title:                req.Title,
		Amount:               nullDecimal(req.Amount),
		Currency:             req.Currency,
		PaymentSource:        req.PaymentSource,
		PaidByMemberID:       req.PaidByMemberID,
		Note:                 req.Note,
		CreatedByMemberID:    req.CreatedByMemberID,
		SplitMethod:          req.SplitMethod,
		ParticipantMemberIDs: req.ParticipantMemberIDs,
		OriginalAmount:       nullDecimal(req.OriginalAmount),
		OriginalCurrency:     req.OriginalCurrency,
		FxRate:               nullDecimal(req.FxRate),
		FxSource:             req.FxSource,
	}

	if req.ExpenseDate != "" {
		day, err := time.Parse("2006-01-02", req.ExpenseDate)
		if err != nil {
			return p, apperrors.Invalidf("expense_date must be YYYY-MM-DD")
		}
		p.ExpenseDate = &day
	}

	for _, cs := range req.CustomSplits {
		p.CustomSplits = append(p.CustomSplits, models.MemberShare{MemberID: cs.MemberID, Amount: cs.Amount})
	}
	return p, nil
}

// NewCreateExpenseHandler returns an HTTP handler that records an expense with its splits.
// @Summary Create expense
// @Description Records an expense in the trip base currency, computes the splits, and debits the shared wallet for SHARED_WALLET payments.
// @Tags expenses
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param request body handlers.ExpenseRequest true "Expense Request"
// @Success 201 {object} models.ExpenseDB "Expense created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid expense payload"
// @Failure 409 {object} handlers.ErrorResponse "Insufficient wallet balance"
// @Router /trips/{tripId}/expenses [post]
func NewCreateExpenseHandler(svc ExpenseWorkflow) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tripID, err := pathUUID(r, "tripId")
		if err != nil {
			writeError(w, err)
			return
		}

		var req ExpenseRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, err)
			return
		}
		params, err := req.toParams()
		if err != nil {
			writeError(w, err)
			return
		}

		expense, err := svc.Create(ctx, tripID, params)
		if err != nil {
			logger.Log.Errorw("failed to create expense", "tripID", tripID, "title", req.Title, "error", err)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, expense)
	}
}

// NewUpdateExpenseHandler returns an HTTP handler that rewrites an expense and its splits.
// @Summary Update expense
// @Description Updates the expense and atomically replaces its full split set. Wallet-paid expenses are immutable.
// @Tags expenses
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param expenseId path string true "Expense ID"
// @Param request body handlers.ExpenseRequest true "Expense Request"
// @Success 200 {object} models.ExpenseDB "Expense updated"
// @Failure 404 {object} handlers.ErrorResponse "Expense not found"
// @Failure 409 {object} handlers.ErrorResponse "Editing shared-wallet-paid expenses is not supported"
// @Router /trips/{tripId}/expenses/{expenseId} [put]
func NewUpdateExpenseHandler(svc ExpenseWorkflow) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tripID, err := pathUUID(r, "tripId")
		if err != nil {
			writeError(w, err)
			return
		}
		expenseID, err := pathUUID(r, "expenseId")
		if err != nil {
			writeError(w, err)
			return
		}

		var req ExpenseRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, err)
			return
		}
		params, err := req.toParams()
		if err != nil {
			writeError(w, err)
			return
		}

		expense, err := svc.Update(ctx, tripID, expenseID, params)
		if err != nil {
			logger.Log.Errorw("failed to update expense", "tripID", tripID, "expenseID", expenseID, "error", err)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, expense)
	}
}

// NewDeleteExpenseHandler returns an HTTP handler that deletes an expense with its splits.
// @Summary Delete expense
// @Description Deletes the expense and its splits. Wallet-paid expenses cannot be deleted.
// @Tags expenses
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param expenseId path string true "Expense ID"
// @Success 204 "Expense deleted"
// @Failure 404 {object} handlers.ErrorResponse "Expense not found"
// @Failure 409 {object} handlers.ErrorResponse "Deleting shared-wallet-paid expenses is not supported"
// @Router /trips/{tripId}/expenses/{expenseId} [delete]
func NewDeleteExpenseHandler(svc ExpenseWorkflow) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tripID, err := pathUUID(r, "tripId")
		if err != nil {
			writeError(w, err)
			return
		}
		expenseID, err := pathUUID(r, "expenseId")
		if err != nil {
			writeError(w, err)
			return
		}

		if err := svc.Delete(ctx, tripID, expenseID); err != nil {
			logger.Log.Errorw("failed to delete expense", "tripID", tripID, "expenseID", expenseID, "error", err)
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// NewMoveExpenseHandler returns an HTTP handler that changes only the expense date.
// @Summary Move expense
// @Description Moves the expense to another day. Allowed for wallet-paid expenses since no amounts change.
// @Tags expenses
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param expenseId path string true "Expense ID"
// @Param request body handlers.MoveExpenseRequest true "Move Expense Request"
// @Success 200 {object} models.ExpenseDB "Expense moved"
// @Failure 400 {object} handlers.ErrorResponse "Invalid date"
// @Failure 404 {object} handlers.ErrorResponse "Expense not found"
// @Router /trips/{tripId}/expenses/{expenseId}/move [post]
func NewMoveExpenseHandler(svc ExpenseWorkflow) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tripID, err := pathUUID(r, "tripId")
		if err != nil {
			writeError(w, err)
			return
		}
		expenseID, err := pathUUID(r, "expenseId")
		if err != nil {
			writeError(w, err)
			return
		}

		var req MoveExpenseRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, err)
			return
		}
		day, err := time.Parse("2006-01-02", req.NewDate)
		if err != nil {
			writeError(w, apperrors.Invalidf("new_date must be YYYY-MM-DD"))
			return
		}

		expense, err := svc.Move(ctx, tripID, expenseID, &day)
		if err != nil {
			logger.Log.Errorw("failed to move expense", "tripID", tripID, "expenseID", expenseID, "error", err)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, expense)
	}
}
