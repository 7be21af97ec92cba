package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/trip-collab/gw-trip-wallet/internal/logger"
	"github.com/trip-collab/gw-trip-wallet/internal/models"
)

// BalanceSummarizer defines the interface that the service must implement.
type BalanceSummarizer interface {
	Summary(ctx context.Context, tripID uuid.UUID) ([]models.MemberSummary, error)
}

// SettlementPlanner defines the interface that the service must implement.
type SettlementPlanner interface {
	Settlements(ctx context.Context, tripID uuid.UUID) ([]models.SettlementTransfer, error)
}

// NewTripSummaryHandler returns an HTTP handler for per-member balance totals.
// @Summary Trip balance summary
// @Description Returns paid, owed and net totals per active member in the trip base currency. Nets sum to zero.
// @Tags balances
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {array} models.MemberSummary "Member summaries"
// @Failure 404 {object} handlers.ErrorResponse "Trip not found"
// @Router /trips/{tripId}/summary [get]
func NewTripSummaryHandler(svc BalanceSummarizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tripID, err := pathUUID(r, "tripId")
		if err != nil {
			writeError(w, err)
			return
		}

		summaries, err := svc.Summary(ctx, tripID)
		if err != nil {
			logger.Log.Errorw("failed to build trip summary", "tripID", tripID, "error", err)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, summaries)
	}
}

// NewSettlementsHandler returns an HTTP handler for the settlement plan.
// @Summary Trip settlements
// @Description Returns the transfers from debtors to creditors that zero out all member balances.
// @Tags balances
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {array} models.SettlementTransfer "Settlement transfers"
// @Failure 404 {object} handlers.ErrorResponse "Trip not found"
// @Router /trips/{tripId}/settlements [get]
func NewSettlementsHandler(svc SettlementPlanner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tripID, err := pathUUID(r, "tripId")
		if err != nil {
			writeError(w, err)
			return
		}

		transfers, err := svc.Settlements(ctx, tripID)
		if err != nil {
			logger.Log.Errorw("failed to plan settlements", "tripID", tripID, "error", err)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, transfers)
	}
}
