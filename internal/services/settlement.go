package services

import (
	"bytes"
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/trip-collab/gw-trip-wallet/internal/models"
)

// SummaryProvider yields per-member net balances for a trip.
type SummaryProvider interface {
	Summary(ctx context.Context, tripID uuid.UUID) ([]models.MemberSummary, error)
}

// SettlementService computes the transfers that zero out all member net
// balances.
type SettlementService struct {
	summaries SummaryProvider
}

func NewSettlementService(summaries SummaryProvider) *SettlementService {
	return &SettlementService{summaries: summaries}
}

// Settlements returns transfers from debtors to creditors. Greedy
// two-pointer matching over both lists sorted by member id: simple and
// deterministic, though not minimum-count optimal for every topology.
func (s *SettlementService) Settlements(ctx context.Context, tripID uuid.UUID) ([]models.SettlementTransfer, error) {
	summaries, err := s.summaries.Summary(ctx, tripID)
	if err != nil {
		return nil, err
	}
	return planTransfers(summaries), nil
}

type settlementNode struct {
	memberID  uuid.UUID
	nickname  string
	remaining decimal.Decimal
}

func planTransfers(summaries []models.MemberSummary) []models.SettlementTransfer {
	var creditors, debtors []settlementNode
	currency := ""

	for _, m := range summaries {
		currency = m.Currency
		switch m.Net.Sign() {
		case 1:
			creditors = append(creditors, settlementNode{m.MemberID, m.Nickname, m.Net})
		case -1:
			debtors = append(debtors, settlementNode{m.MemberID, m.Nickname, m.Net.Abs()})
		}
	}

	byID := func(nodes []settlementNode) func(i, j int) bool {
		return func(i, j int) bool {
			return bytes.Compare(nodes[i].memberID[:], nodes[j].memberID[:]) < 0
		}
	}
	sort.Slice(creditors, byID(creditors))
	sort.Slice(debtors, byID(debtors))

	transfers := []models.SettlementTransfer{}
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		d, c := &debtors[i], &creditors[j]

		pay := decimal.Min(d.remaining, c.remaining)
		if pay.Sign() > 0 {
			transfers = append(transfers, models.SettlementTransfer{
				FromMemberID: d.memberID,
				FromNickname: d.nickname,
				ToMemberID:   c.memberID,
				ToNickname:   c.nickname,
				Amount:       pay,
				Currency:     currency,
			})
		}

		d.remaining = d.remaining.Sub(pay)
		c.remaining = c.remaining.Sub(pay)

		if d.remaining.IsZero() {
			i++
		}
		if c.remaining.IsZero() {
			j++
		}
	}

	return transfers
}
