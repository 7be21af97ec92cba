package services

import (
	"bytes"
	"context"
	"sort"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trip-collab/gw-trip-wallet/internal/apperrors"
	"github.com/trip-collab/gw-trip-wallet/internal/models"
)

func sortedMembers(n int) []uuid.UUID {
	ids := make([]uuid.UUID, n)
	for i := range ids {
		ids[i] = uuid.New()
	}
	sort.Slice(ids, func(i, j int) bool {
		return bytes.Compare(ids[i][:], ids[j][:]) < 0
	})
	return ids
}

func TestSplitCalculator_EqualWithRemainder(t *testing.T) {
	ctx := context.Background()
	tripID := uuid.New()
	ids := sortedMembers(3)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	members := NewMockMemberReader(ctrl)
	for _, id := range ids {
		members.EXPECT().ExistsActive(ctx, id, tripID).Return(true, nil)
	}

	calc := NewSplitCalculator(NewMembershipValidator(members))

	// 100.00 / 3: one leftover cent goes to the first member in id order.
	shares, err := calc.Compute(ctx, tripID, decimal.RequireFromString("100.00"), models.SplitMethodEqual, []uuid.UUID{ids[2], ids[0], ids[1]}, nil)
	require.NoError(t, err)
	require.Len(t, shares, 3)

	assert.Equal(t, ids[0], shares[0].MemberID)
	assert.Equal(t, "33.34", shares[0].Amount.StringFixed(2))
	assert.Equal(t, "33.33", shares[1].Amount.StringFixed(2))
	assert.Equal(t, "33.33", shares[2].Amount.StringFixed(2))

	sum := decimal.Zero
	for _, s := range shares {
		sum = sum.Add(s.Amount)
	}
	assert.True(t, sum.Equal(decimal.RequireFromString("100.00")))
}

func TestSplitCalculator_EqualTinyTotal(t *testing.T) {
	ctx := context.Background()
	tripID := uuid.New()
	ids := sortedMembers(3)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	members := NewMockMemberReader(ctrl)
	for _, id := range ids {
		members.EXPECT().ExistsActive(ctx, id, tripID).Return(true, nil)
	}

	calc := NewSplitCalculator(NewMembershipValidator(members))

	// 0.02 / 3: two members get a cent, the last gets zero.
	shares, err := calc.Compute(ctx, tripID, decimal.RequireFromString("0.02"), "", ids, nil)
	require.NoError(t, err)

	assert.Equal(t, "0.01", shares[0].Amount.StringFixed(2))
	assert.Equal(t, "0.01", shares[1].Amount.StringFixed(2))
	assert.Equal(t, "0.00", shares[2].Amount.StringFixed(2))
}

func TestSplitCalculator_EqualExactDivision(t *testing.T) {
	ctx := context.Background()
	tripID := uuid.New()
	ids := sortedMembers(4)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	members := NewMockMemberReader(ctrl)
	for _, id := range ids {
		members.EXPECT().ExistsActive(ctx, id, tripID).Return(true, nil)
	}

	calc := NewSplitCalculator(NewMembershipValidator(members))

	shares, err := calc.Compute(ctx, tripID, decimal.RequireFromString("100.00"), models.SplitMethodEqual, ids, nil)
	require.NoError(t, err)
	for _, s := range shares {
		assert.Equal(t, "25.00", s.Amount.StringFixed(2))
	}
}

func TestSplitCalculator_EqualValidation(t *testing.T) {
	ctx := context.Background()
	tripID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	members := NewMockMemberReader(ctrl)
	calc := NewSplitCalculator(NewMembershipValidator(members))

	_, err := calc.Compute(ctx, tripID, decimal.NewFromInt(10), models.SplitMethodEqual, nil, nil)
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidInput))

	dup := uuid.New()
	_, err = calc.Compute(ctx, tripID, decimal.NewFromInt(10), models.SplitMethodEqual, []uuid.UUID{dup, dup}, nil)
	assert.EqualError(t, err, "duplicate memberId in participantMemberIds")

	inactive := uuid.New()
	members.EXPECT().ExistsActive(ctx, inactive, tripID).Return(false, nil)
	_, err = calc.Compute(ctx, tripID, decimal.NewFromInt(10), models.SplitMethodEqual, []uuid.UUID{inactive}, nil)
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidInput))

	_, err = calc.Compute(ctx, tripID, decimal.NewFromInt(10), "PERCENT", nil, nil)
	assert.EqualError(t, err, "splitMethod is invalid")
}

func TestSplitCalculator_CustomExactSum(t *testing.T) {
	ctx := context.Background()
	tripID := uuid.New()
	ids := sortedMembers(2)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	members := NewMockMemberReader(ctrl)
	for _, id := range ids {
		members.EXPECT().ExistsActive(ctx, id, tripID).Return(true, nil)
	}

	calc := NewSplitCalculator(NewMembershipValidator(members))

	custom := []models.MemberShare{
		{MemberID: ids[0], Amount: decimal.RequireFromString("70.50")},
		{MemberID: ids[1], Amount: decimal.RequireFromString("29.50")},
	}
	shares, err := calc.Compute(ctx, tripID, decimal.RequireFromString("100.00"), models.SplitMethodCustomAmount, nil, custom)
	require.NoError(t, err)
	assert.Equal(t, "70.50", shares[0].Amount.StringFixed(2))
	assert.Equal(t, "29.50", shares[1].Amount.StringFixed(2))
}

func TestSplitCalculator_CustomValidation(t *testing.T) {
	ctx := context.Background()
	tripID := uuid.New()
	ids := sortedMembers(2)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	members := NewMockMemberReader(ctrl)
	calc := NewSplitCalculator(NewMembershipValidator(members))

	_, err := calc.Compute(ctx, tripID, decimal.NewFromInt(10), models.SplitMethodCustomAmount, nil, nil)
	assert.EqualError(t, err, "customSplits is required for CUSTOM_AMOUNT split")

	dup := []models.MemberShare{
		{MemberID: ids[0], Amount: decimal.NewFromInt(5)},
		{MemberID: ids[0], Amount: decimal.NewFromInt(5)},
	}
	_, err = calc.Compute(ctx, tripID, decimal.NewFromInt(10), models.SplitMethodCustomAmount, nil, dup)
	assert.EqualError(t, err, "duplicate memberId in customSplits")

	negative := []models.MemberShare{{MemberID: ids[0], Amount: decimal.NewFromInt(-1)}}
	_, err = calc.Compute(ctx, tripID, decimal.NewFromInt(10), models.SplitMethodCustomAmount, nil, negative)
	assert.EqualError(t, err, "customSplits.amount must be >= 0")

	for _, id := range ids {
		members.EXPECT().ExistsActive(ctx, id, tripID).Return(true, nil)
	}
	short := []models.MemberShare{
		{MemberID: ids[0], Amount: decimal.RequireFromString("60.00")},
		{MemberID: ids[1], Amount: decimal.RequireFromString("39.99")},
	}
	_, err = calc.Compute(ctx, tripID, decimal.RequireFromString("100.00"), models.SplitMethodCustomAmount, nil, short)
	assert.EqualError(t, err, "sum(customSplits.amount) must equal total amount")
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidInput))
}
