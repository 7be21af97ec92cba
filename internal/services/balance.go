package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/trip-collab/gw-trip-wallet/internal/models"
	"github.com/trip-collab/gw-trip-wallet/internal/money"
)

// TripReader defines the trip lookups the services need.
type TripReader interface {
	GetByID(ctx context.Context, tripID uuid.UUID) (*models.TripDB, error)
}

// PaidTotalsReader aggregates expense amounts grouped by paying member.
type PaidTotalsReader interface {
	SumPaidByMember(ctx context.Context, tripID uuid.UUID) (map[uuid.UUID]decimal.Decimal, error)
}

// OwedTotalsReader aggregates split shares grouped by member.
type OwedTotalsReader interface {
	SumOwedByMember(ctx context.Context, tripID uuid.UUID) (map[uuid.UUID]decimal.Decimal, error)
}

// BalanceService computes per-member paid/owed/net totals in the trip
// base currency.
type BalanceService struct {
	trips   TripReader
	members MemberReader
	paid    PaidTotalsReader
	owed    OwedTotalsReader
}

func NewBalanceService(trips TripReader, members MemberReader, paid PaidTotalsReader, owed OwedTotalsReader) *BalanceService {
	return &BalanceService{trips: trips, members: members, paid: paid, owed: owed}
}

// Summary returns one row per active member, ordered by join time.
// Members with no expenses or splits get zero totals. Wallet-paid
// expenses have no paying member and land in nobody's paid total.
func (s *BalanceService) Summary(ctx context.Context, tripID uuid.UUID) ([]models.MemberSummary, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return nil, err
	}

	members, err := s.members.ListActiveByTripID(ctx, tripID)
	if err != nil {
		return nil, err
	}

	paidMap, err := s.paid.SumPaidByMember(ctx, tripID)
	if err != nil {
		return nil, err
	}

	owedMap, err := s.owed.SumOwedByMember(ctx, tripID)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.MemberSummary, 0, len(members))
	for _, m := range members {
		paid := money.Round2(paidMap[m.MemberID])
		owed := money.Round2(owedMap[m.MemberID])
		summaries = append(summaries, models.MemberSummary{
			MemberID:  m.MemberID,
			Nickname:  m.Nickname,
			PaidTotal: paid,
			OwedTotal: owed,
			Net:       paid.Sub(owed),
			Currency:  trip.Currency,
		})
	}
	return summaries, nil
}
