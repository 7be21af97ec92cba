package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/trip-collab/gw-trip-wallet/internal/apperrors"
	"github.com/trip-collab/gw-trip-wallet/internal/models"
)

// MemberReader defines the member lookups the services need.
type MemberReader interface {
	GetByIDAndTripID(ctx context.Context, memberID, tripID uuid.UUID) (*models.TripMemberDB, error)
	ListActiveByTripID(ctx context.Context, tripID uuid.UUID) ([]models.TripMemberDB, error)
	ExistsActive(ctx context.Context, memberID, tripID uuid.UUID) (bool, error)
	ExistsNickname(ctx context.Context, tripID uuid.UUID, nickname string) (bool, error)
}

// MembershipValidator is the single place that answers "is this an
// active member of the trip". Both the split calculator and the expense
// workflow go through it.
type MembershipValidator struct {
	members MemberReader
}

func NewMembershipValidator(members MemberReader) *MembershipValidator {
	return &MembershipValidator{members: members}
}

// RequireActive fails with InvalidInput unless every given member is an
// active member of the trip.
func (v *MembershipValidator) RequireActive(ctx context.Context, tripID uuid.UUID, field string, memberIDs ...uuid.UUID) error {
	for _, memberID := range memberIDs {
		ok, err := v.members.ExistsActive(ctx, memberID, tripID)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.Invalidf("%s is not an active member of this trip: %s", field, memberID)
		}
	}
	return nil
}
