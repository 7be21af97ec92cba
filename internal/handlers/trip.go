package handlers

import (
	"context"
	"net/http"

	"github.com/trip-collab/gw-trip-wallet/internal/logger"
	"github.com/trip-collab/gw-trip-wallet/internal/models"
)

// TripCreator defines the interface that the service must implement.
type TripCreator interface {
	Create(ctx context.Context, title, currency string) (*models.TripDB, error)
}

// CreateTripRequest represents the JSON body for creating a trip
// swagger:model CreateTripRequest
type CreateTripRequest struct {
	// Trip title
	// required: true
	// default: Thailand 2026
	Title string `json:"title" validate:"required"`

	// Base currency, ISO 4217
	// required: true
	// default: EUR
	Currency string `json:"currency" validate:"required,len=3"`
}

// NewCreateTripHandler returns an HTTP handler that creates a trip and
// its shared wallet.
// @Summary Create trip
// @Description Creates a trip with a base currency and one shared wallet in that currency.
// @Tags trips
// @Accept json
// @Produce json
// @Param request body handlers.CreateTripRequest true "Create Trip Request"
// @Success 201 {object} models.TripDB "Trip created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid title or currency"
// @Router /trips [post]
func NewCreateTripHandler(svc TripCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req CreateTripRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, err)
			return
		}

		trip, err := svc.Create(ctx, req.Title, req.Currency)
		if err != nil {
			logger.Log.Errorw("failed to create trip", "title", req.Title, "error", err)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, trip)
	}
}
