package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/trip-collab/gw-trip-wallet/internal/apperrors"
	"github.com/trip-collab/gw-trip-wallet/internal/models"
	"github.com/trip-collab/gw-trip-wallet/internal/money"
)

// TripWriter persists trips.
type TripWriter interface {
	Save(ctx context.Context, trip *models.TripDB) error
}

// TripService creates trips. Every trip owns exactly one shared wallet,
// created in the same transaction.
type TripService struct {
	tripWrite   TripWriter
	walletWrite SharedWalletWriter
}

func NewTripService(tripWrite TripWriter, walletWrite SharedWalletWriter) *TripService {
	return &TripService{tripWrite: tripWrite, walletWrite: walletWrite}
}

// Create makes a trip with the given base currency plus its shared wallet.
func (s *TripService) Create(ctx context.Context, title, currency string) (*models.TripDB, error) {
	t := strings.TrimSpace(title)
	if t == "" {
		return nil, apperrors.Invalidf("title is required")
	}

	ccy, err := money.NormalizeCurrency(currency, "currency")
	if err != nil {
		return nil, err
	}

	now := time.Now()
	trip := &models.TripDB{
		TripID:    uuid.New(),
		Title:     t,
		Currency:  ccy,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.tripWrite.Save(ctx, trip); err != nil {
		return nil, err
	}

	wallet := &models.SharedWalletDB{
		WalletID:     uuid.New(),
		TripID:       trip.TripID,
		BaseCurrency: ccy,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.walletWrite.Save(ctx, wallet); err != nil {
		return nil, err
	}

	return trip, nil
}
