package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/trip-collab/gw-trip-wallet/internal/apperrors"
	"github.com/trip-collab/gw-trip-wallet/internal/models"
)

// MemberWriter persists trip members.
type MemberWriter interface {
	Save(ctx context.Context, m *models.TripMemberDB) error
}

// MemberService manages trip membership: nicknames are unique per trip
// and members are deactivated, never deleted, so history keeps valid
// references.
type MemberService struct {
	members  MemberReader
	memWrite MemberWriter
}

func NewMemberService(members MemberReader, memWrite MemberWriter) *MemberService {
	return &MemberService{members: members, memWrite: memWrite}
}

// Create adds an active member to the trip.
func (s *MemberService) Create(ctx context.Context, tripID uuid.UUID, nickname, role string) (*models.TripMemberDB, error) {
	nn := strings.TrimSpace(nickname)
	if nn == "" {
		return nil, apperrors.Invalidf("nickname is required")
	}
	if len(nn) > 50 {
		return nil, apperrors.Invalidf("nickname too long")
	}

	r, err := normalizeRole(role)
	if err != nil {
		return nil, err
	}

	taken, err := s.members.ExistsNickname(ctx, tripID, nn)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.Conflictf("nickname already exists in this trip")
	}

	now := time.Now()
	member := &models.TripMemberDB{
		MemberID:  uuid.New(),
		TripID:    tripID,
		Nickname:  nn,
		Role:      r,
		IsActive:  true,
		JoinedAt:  now,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.memWrite.Save(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// Update renames and/or toggles a member. Nil fields are left unchanged.
func (s *MemberService) Update(ctx context.Context, tripID, memberID uuid.UUID, nickname *string, isActive *bool) (*models.TripMemberDB, error) {
	member, err := s.members.GetByIDAndTripID(ctx, memberID, tripID)
	if err != nil {
		return nil, err
	}

	if nickname != nil {
		nn := strings.TrimSpace(*nickname)
		if nn == "" {
			return nil, apperrors.Invalidf("nickname is required")
		}
		if len(nn) > 50 {
			return nil, apperrors.Invalidf("nickname too long")
		}
		if nn != member.Nickname {
			taken, err := s.members.ExistsNickname(ctx, tripID, nn)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, apperrors.Conflictf("nickname already exists in this trip")
			}
			member.Nickname = nn
		}
	}

	if isActive != nil {
		member.IsActive = *isActive
	}

	member.UpdatedAt = time.Now()
	if err := s.memWrite.Save(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// ListActive returns active members ordered by join time.
func (s *MemberService) ListActive(ctx context.Context, tripID uuid.UUID) ([]models.TripMemberDB, error) {
	return s.members.ListActiveByTripID(ctx, tripID)
}

func normalizeRole(role string) (string, error) {
	if strings.TrimSpace(role) == "" {
		return models.RoleMember, nil
	}
	r := strings.ToLower(strings.TrimSpace(role))
	if r != models.RoleOwner && r != models.RoleMember {
		return "", apperrors.Invalidf("role must be owner or member")
	}
	return r, nil
}
