package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trip-collab/gw-trip-wallet/internal/models"
)

func TestSettlementService_TwoDebtorsOneCreditor(t *testing.T) {
	ctx := context.Background()
	tripID := uuid.New()
	ids := sortedMembers(3)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	summaries := NewMockSummaryProvider(ctrl)
	summaries.EXPECT().Summary(ctx, tripID).Return([]models.MemberSummary{
		{MemberID: ids[0], Nickname: "alice", Net: decimal.RequireFromString("66.67"), Currency: "EUR"},
		{MemberID: ids[1], Nickname: "bob", Net: decimal.RequireFromString("-33.33"), Currency: "EUR"},
		{MemberID: ids[2], Nickname: "carol", Net: decimal.RequireFromString("-33.34"), Currency: "EUR"},
	}, nil)

	svc := NewSettlementService(summaries)
	transfers, err := svc.Settlements(ctx, tripID)
	require.NoError(t, err)
	require.Len(t, transfers, 2)

	assert.Equal(t, ids[1], transfers[0].FromMemberID)
	assert.Equal(t, ids[0], transfers[0].ToMemberID)
	assert.Equal(t, "33.33", transfers[0].Amount.StringFixed(2))
	assert.Equal(t, "EUR", transfers[0].Currency)

	assert.Equal(t, ids[2], transfers[1].FromMemberID)
	assert.Equal(t, ids[0], transfers[1].ToMemberID)
	assert.Equal(t, "33.34", transfers[1].Amount.StringFixed(2))
}

func TestSettlementService_SettledTripHasNoTransfers(t *testing.T) {
	ctx := context.Background()
	tripID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	summaries := NewMockSummaryProvider(ctrl)
	summaries.EXPECT().Summary(ctx, tripID).Return([]models.MemberSummary{
		{MemberID: uuid.New(), Nickname: "alice", Net: decimal.Zero, Currency: "USD"},
		{MemberID: uuid.New(), Nickname: "bob", Net: decimal.Zero, Currency: "USD"},
	}, nil)

	svc := NewSettlementService(summaries)
	transfers, err := svc.Settlements(ctx, tripID)
	require.NoError(t, err)
	assert.Empty(t, transfers)
}

func TestSettlementService_OneCreditorSplitsAcrossDebtors(t *testing.T) {
	ctx := context.Background()
	tripID := uuid.New()
	ids := sortedMembers(4)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	summaries := NewMockSummaryProvider(ctrl)
	summaries.EXPECT().Summary(ctx, tripID).Return([]models.MemberSummary{
		{MemberID: ids[0], Nickname: "a", Net: decimal.RequireFromString("-10.00"), Currency: "USD"},
		{MemberID: ids[1], Nickname: "b", Net: decimal.RequireFromString("30.00"), Currency: "USD"},
		{MemberID: ids[2], Nickname: "c", Net: decimal.RequireFromString("-20.00"), Currency: "USD"},
		{MemberID: ids[3], Nickname: "d", Net: decimal.Zero, Currency: "USD"},
	}, nil)

	svc := NewSettlementService(summaries)
	transfers, err := svc.Settlements(ctx, tripID)
	require.NoError(t, err)
	require.Len(t, transfers, 2)

	// Debtors pay in id order until the creditor is made whole.
	assert.Equal(t, ids[0], transfers[0].FromMemberID)
	assert.Equal(t, "10.00", transfers[0].Amount.StringFixed(2))
	assert.Equal(t, ids[2], transfers[1].FromMemberID)
	assert.Equal(t, "20.00", transfers[1].Amount.StringFixed(2))

	total := decimal.Zero
	for _, tr := range transfers {
		assert.Equal(t, ids[1], tr.ToMemberID)
		total = total.Add(tr.Amount)
	}
	assert.True(t, total.Equal(decimal.RequireFromString("30.00")))
}

func TestSettlementService_SummaryError(t *testing.T) {
	ctx := context.Background()
	tripID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	summaries := NewMockSummaryProvider(ctrl)
	summaries.EXPECT().Summary(ctx, tripID).Return(nil, errors.New("db down"))

	svc := NewSettlementService(summaries)
	_, err := svc.Settlements(ctx, tripID)
	assert.EqualError(t, err, "db down")
}
