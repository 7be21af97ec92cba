package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/trip-collab/gw-trip-wallet/internal/apperrors"
	"github.com/trip-collab/gw-trip-wallet/internal/logger"
	"github.com/trip-collab/gw-trip-wallet/internal/models"
)

// ExpenseQuerier defines the interface that the service must implement.
type ExpenseQuerier interface {
	Get(ctx context.Context, tripID, expenseID uuid.UUID) (*models.ExpenseDB, error)
	List(ctx context.Context, tripID uuid.UUID) ([]models.ExpenseDB, error)
	ListDay(ctx context.Context, tripID uuid.UUID, day time.Time) ([]models.ExpenseDB, error)
	Search(ctx context.Context, tripID uuid.UUID, q string, from, to *time.Time) ([]models.ExpenseDB, error)
	GetSplits(ctx context.Context, tripID, expenseID uuid.UUID) ([]models.ExpenseSplitDB, error)
}

// ExpenseWithSplits pairs one expense with its split rows.
// swagger:model ExpenseWithSplits
type ExpenseWithSplits struct {
	Expense *models.ExpenseDB       `json:"expense"`
	Splits  []models.ExpenseSplitDB `json:"splits"`
}

func queryDate(r *http.Request, name string) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	day, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, apperrors.Invalidf("%s must be YYYY-MM-DD", name)
	}
	return &day, nil
}

// NewGetExpenseHandler returns an HTTP handler for one expense with its splits.
// @Summary Get expense
// @Description Returns the expense and its split rows.
// @Tags expenses
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param expenseId path string true "Expense ID"
// @Success 200 {object} handlers.ExpenseWithSplits "Expense with splits"
// @Failure 404 {object} handlers.ErrorResponse "Expense not found"
// @Router /trips/{tripId}/expenses/{expenseId} [get]
func NewGetExpenseHandler(svc ExpenseQuerier) http.HandlerFunc {
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

		expense, err := svc.Get(ctx, tripID, expenseID)
		if err != nil {
			logger.Log.Errorw("failed to get expense", "tripID", tripID, "expenseID", expenseID, "error", err)
			writeError(w, err)
			return
		}
		splits, err := svc.GetSplits(ctx, tripID, expenseID)
		if err != nil {
			logger.Log.Errorw("failed to get expense splits", "expenseID", expenseID, "error", err)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ExpenseWithSplits{Expense: expense, Splits: splits})
	}
}

// NewListExpensesHandler returns an HTTP handler that lists trip expenses.
// @Summary List expenses
// @Description Lists trip expenses ordered by date. With ?date= only that day; with ?q=, ?from= or ?to= a filtered search.
// @Tags expenses
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param date query string false "Single day, YYYY-MM-DD"
// @Param q query string false "Title substring"
// @Param from query string false "Range start, YYYY-MM-DD"
// @Param to query string false "Range end, YYYY-MM-DD"
// @Success 200 {array} models.ExpenseDB "Expenses"
// @Failure 400 {object} handlers.ErrorResponse "Invalid filter"
// @Router /trips/{tripId}/expenses [get]
func NewListExpensesHandler(svc ExpenseQuerier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tripID, err := pathUUID(r, "tripId")
		if err != nil {
			writeError(w, err)
			return
		}

		day, err := queryDate(r, "date")
		if err != nil {
			writeError(w, err)
			return
		}
		from, err := queryDate(r, "from")
		if err != nil {
			writeError(w, err)
			return
		}
		to, err := queryDate(r, "to")
		if err != nil {
			writeError(w, err)
			return
		}
		q := r.URL.Query().Get("q")

		var expenses []models.ExpenseDB
		switch {
		case day != nil:
			expenses, err = svc.ListDay(ctx, tripID, *day)
		case q != "" || from != nil || to != nil:
			expenses, err = svc.Search(ctx, tripID, q, from, to)
		default:
			expenses, err = svc.List(ctx, tripID)
		}
		if err != nil {
			logger.Log.Errorw("failed to list expenses", "tripID", tripID, "error", err)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, expenses)
	}
}
