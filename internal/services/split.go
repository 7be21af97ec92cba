package services

import (
	"bytes"
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/trip-collab/gw-trip-wallet/internal/apperrors"
	"github.com/trip-collab/gw-trip-wallet/internal/models"
	"github.com/trip-collab/gw-trip-wallet/internal/money"
)

// SplitCalculator turns an expense total and a split policy into
// per-member shares that sum to the total exactly.
type SplitCalculator struct {
	membership *MembershipValidator
}

func NewSplitCalculator(membership *MembershipValidator) *SplitCalculator {
	return &SplitCalculator{membership: membership}
}

// Compute returns the shares for the given method. An empty method
// defaults to EQUAL. Every referenced member must be an active member of
// the trip.
func (c *SplitCalculator) Compute(
	ctx context.Context,
	tripID uuid.UUID,
	total decimal.Decimal,
	method string,
	participants []uuid.UUID,
	customShares []models.MemberShare,
) ([]models.MemberShare, error) {
	if method == "" {
		method = models.SplitMethodEqual
	}

	switch method {
	case models.SplitMethodEqual:
		return c.computeEqual(ctx, tripID, total, participants)
	case models.SplitMethodCustomAmount:
		return c.computeCustom(ctx, tripID, total, customShares)
	default:
		return nil, apperrors.Invalidf("splitMethod is invalid")
	}
}

// computeEqual divides the total evenly: base = floor(total/n) at cent
// precision and the leftover cents go to the first members in sorted id
// order, one cent each. The shares always sum to the total.
func (c *SplitCalculator) computeEqual(ctx context.Context, tripID uuid.UUID, total decimal.Decimal, participants []uuid.UUID) ([]models.MemberShare, error) {
	if len(participants) == 0 {
		return nil, apperrors.Invalidf("participantMemberIds is required for EQUAL split")
	}

	seen := make(map[uuid.UUID]struct{}, len(participants))
	for _, memberID := range participants {
		if _, dup := seen[memberID]; dup {
			return nil, apperrors.Invalidf("duplicate memberId in participantMemberIds")
		}
		seen[memberID] = struct{}{}
	}

	if err := c.membership.RequireActive(ctx, tripID, "participant", participants...); err != nil {
		return nil, err
	}

	sorted := make([]uuid.UUID, len(participants))
	copy(sorted, participants)
	sort.Slice(sorted, func(i, j int) bool {
		return bytes.Compare(sorted[i][:], sorted[j][:]) < 0
	})

	// Integer cents keep the remainder arithmetic exact.
	totalCents := money.Round2(total).Shift(money.AmountScale).IntPart()
	n := int64(len(sorted))
	baseCents := totalCents / n
	extraCents := totalCents % n

	shares := make([]models.MemberShare, 0, len(sorted))
	for i, memberID := range sorted {
		cents := baseCents
		if int64(i) < extraCents {
			cents++
		}
		shares = append(shares, models.MemberShare{
			MemberID: memberID,
			Amount:   decimal.New(cents, -money.AmountScale),
		})
	}
	return shares, nil
}

// computeCustom accepts explicit (member, amount) pairs and fails unless
// their sum equals the total exactly after 2-decimal normalization.
func (c *SplitCalculator) computeCustom(ctx context.Context, tripID uuid.UUID, total decimal.Decimal, customShares []models.MemberShare) ([]models.MemberShare, error) {
	if len(customShares) == 0 {
		return nil, apperrors.Invalidf("customSplits is required for CUSTOM_AMOUNT split")
	}

	seen := make(map[uuid.UUID]struct{}, len(customShares))
	memberIDs := make([]uuid.UUID, 0, len(customShares))
	shares := make([]models.MemberShare, 0, len(customShares))
	sum := decimal.Zero

	for _, s := range customShares {
		if _, dup := seen[s.MemberID]; dup {
			return nil, apperrors.Invalidf("duplicate memberId in customSplits")
		}
		seen[s.MemberID] = struct{}{}
		memberIDs = append(memberIDs, s.MemberID)

		amount := money.Round2(s.Amount)
		if amount.Sign() < 0 {
			return nil, apperrors.Invalidf("customSplits.amount must be >= 0")
		}
		sum = sum.Add(amount)
		shares = append(shares, models.MemberShare{MemberID: s.MemberID, Amount: amount})
	}

	if err := c.membership.RequireActive(ctx, tripID, "customSplits member", memberIDs...); err != nil {
		return nil, err
	}

	if !sum.Equal(money.Round2(total)) {
		return nil, apperrors.Invalidf("sum(customSplits.amount) must equal total amount")
	}
	return shares, nil
}
