package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/trip-collab/gw-trip-wallet/internal/logger"
	"github.com/trip-collab/gw-trip-wallet/internal/models"
)

// MemberManager defines the interface that the service must implement.
type MemberManager interface {
	Create(ctx context.Context, tripID uuid.UUID, nickname, role string) (*models.TripMemberDB, error)
	Update(ctx context.Context, tripID, memberID uuid.UUID, nickname *string, isActive *bool) (*models.TripMemberDB, error)
	ListActive(ctx context.Context, tripID uuid.UUID) ([]models.TripMemberDB, error)
}

// CreateMemberRequest represents the JSON body for adding a trip member
// swagger:model CreateMemberRequest
type CreateMemberRequest struct {
	// Nickname, unique within the trip
	// required: true
	// default: alice
	Nickname string `json:"nickname" validate:"required,max=50"`

	// Role: owner or member
	// default: member
	Role string `json:"role" validate:"omitempty,oneof=owner member"`
}

// UpdateMemberRequest represents the JSON body for updating a trip member
// swagger:model UpdateMemberRequest
type UpdateMemberRequest struct {
	// New nickname; omit to keep the current one
	Nickname *string `json:"nickname" validate:"omitempty,max=50"`

	// Active flag; omit to keep the current one
	IsActive *bool `json:"is_active"`
}

// NewCreateMemberHandler returns an HTTP handler that adds a member to a trip.
// @Summary Add trip member
// @Description Adds an active member. Nicknames are unique per trip.
// @Tags members
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param request body handlers.CreateMemberRequest true "Create Member Request"
// @Success 201 {object} models.TripMemberDB "Member created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid nickname or role"
// @Failure 409 {object} handlers.ErrorResponse "Nickname already exists in this trip"
// @Router /trips/{tripId}/members [post]
func NewCreateMemberHandler(svc MemberManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tripID, err := pathUUID(r, "tripId")
		if err != nil {
			writeError(w, err)
			return
		}

		var req CreateMemberRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, err)
			return
		}

		member, err := svc.Create(ctx, tripID, req.Nickname, req.Role)
		if err != nil {
			logger.Log.Errorw("failed to create member", "tripID", tripID, "nickname", req.Nickname, "error", err)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, member)
	}
}

// NewUpdateMemberHandler returns an HTTP handler that renames or toggles a member.
// @Summary Update trip member
// @Description Renames and/or activates/deactivates a member. Omitted fields stay unchanged.
// @Tags members
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param memberId path string true "Member ID"
// @Param request body handlers.UpdateMemberRequest true "Update Member Request"
// @Success 200 {object} models.TripMemberDB "Member updated"
// @Failure 404 {object} handlers.ErrorResponse "Member not found"
// @Failure 409 {object} handlers.ErrorResponse "Nickname already exists in this trip"
// @Router /trips/{tripId}/members/{memberId} [patch]
func NewUpdateMemberHandler(svc MemberManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tripID, err := pathUUID(r, "tripId")
		if err != nil {
			writeError(w, err)
			return
		}
		memberID, err := pathUUID(r, "memberId")
		if err != nil {
			writeError(w, err)
			return
		}

		var req UpdateMemberRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, err)
			return
		}

		member, err := svc.Update(ctx, tripID, memberID, req.Nickname, req.IsActive)
		if err != nil {
			logger.Log.Errorw("failed to update member", "tripID", tripID, "memberID", memberID, "error", err)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, member)
	}
}

// NewListMembersHandler returns an HTTP handler that lists active trip members.
// @Summary List trip members
// @Description Returns active members ordered by join time.
// @Tags members
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {array} models.TripMemberDB "Active members"
// @Failure 400 {object} handlers.ErrorResponse "Invalid trip id"
// @Router /trips/{tripId}/members [get]
func NewListMembersHandler(svc MemberManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tripID, err := pathUUID(r, "tripId")
		if err != nil {
			writeError(w, err)
			return
		}

		members, err := svc.ListActive(ctx, tripID)
		if err != nil {
			logger.Log.Errorw("failed to list members", "tripID", tripID, "error", err)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, members)
	}
}
