package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/trip-collab/gw-trip-wallet/internal/apperrors"
	"github.com/trip-collab/gw-trip-wallet/internal/logger"
	"github.com/trip-collab/gw-trip-wallet/internal/models"
)

// MemberWriteRepository handles trip member write operations.
type MemberWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewMemberWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *MemberWriteRepository {
	return &MemberWriteRepository{db: db, txGetter: txGetter}
}

// Save performs an UPSERT keyed by member_id.
func (r *MemberWriteRepository) Save(ctx context.Context, m *models.TripMemberDB) error {
	const query = `
		INSERT INTO trip_members (member_id, trip_id, nickname, role, is_active, joined_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (member_id)
		DO UPDATE SET nickname = EXCLUDED.nickname,
		              is_active = EXCLUDED.is_active,
		              updated_at = EXCLUDED.updated_at
	`

	_, err := r.executor(ctx).ExecContext(ctx, query,
		m.MemberID, m.TripID, m.Nickname, m.Role, m.IsActive, m.JoinedAt, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		logger.Log.Errorw("failed to save trip member", "member_id", m.MemberID, "trip_id", m.TripID, "error", err)
	}
	return err
}

func (r *MemberWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// MemberReadRepository handles trip member read operations.
type MemberReadRepository struct {
	db *sqlx.DB
}

func NewMemberReadRepository(db *sqlx.DB) *MemberReadRepository {
	return &MemberReadRepository{db: db}
}

// GetByIDAndTripID returns the member if it belongs to the trip.
func (r *MemberReadRepository) GetByIDAndTripID(ctx context.Context, memberID, tripID uuid.UUID) (*models.TripMemberDB, error) {
	const query = `
		SELECT member_id, trip_id, nickname, role, is_active, joined_at, created_at, updated_at
		FROM trip_members
		WHERE member_id = $1 AND trip_id = $2
	`

	var m models.TripMemberDB
	err := r.db.GetContext(ctx, &m, query, memberID, tripID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFoundf("member not found")
	}
	if err != nil {
		logger.Log.Errorw("failed to get trip member", "member_id", memberID, "trip_id", tripID, "error", err)
		return nil, err
	}
	return &m, nil
}

// ListActiveByTripID returns active members ordered by join time.
func (r *MemberReadRepository) ListActiveByTripID(ctx context.Context, tripID uuid.UUID) ([]models.TripMemberDB, error) {
	const query = `
		SELECT member_id, trip_id, nickname, role, is_active, joined_at, created_at, updated_at
		FROM trip_members
		WHERE trip_id = $1 AND is_active
		ORDER BY joined_at ASC
	`

	var members []models.TripMemberDB
	if err := r.db.SelectContext(ctx, &members, query, tripID); err != nil {
		logger.Log.Errorw("failed to list active members", "trip_id", tripID, "error", err)
		return nil, err
	}
	return members, nil
}

// ExistsActive reports whether the member is an active member of the trip.
func (r *MemberReadRepository) ExistsActive(ctx context.Context, memberID, tripID uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM trip_members
			WHERE member_id = $1 AND trip_id = $2 AND is_active
		)
	`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, memberID, tripID); err != nil {
		logger.Log.Errorw("failed to check active member", "member_id", memberID, "trip_id", tripID, "error", err)
		return false, err
	}
	return exists, nil
}

// ExistsNickname reports whether the nickname is already taken in the trip.
func (r *MemberReadRepository) ExistsNickname(ctx context.Context, tripID uuid.UUID, nickname string) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM trip_members
			WHERE trip_id = $1 AND nickname = $2
		)
	`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, tripID, nickname); err != nil {
		logger.Log.Errorw("failed to check nickname", "trip_id", tripID, "nickname", nickname, "error", err)
		return false, err
	}
	return exists, nil
}
