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

// TripWriteRepository handles trip write operations.
type TripWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTripWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TripWriteRepository {
	return &TripWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a trip row.
func (r *TripWriteRepository) Save(ctx context.Context, trip *models.TripDB) error {
	const query = `
		INSERT INTO trips (trip_id, title, currency, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.executor(ctx).ExecContext(ctx, query,
		trip.TripID, trip.Title, trip.Currency, trip.CreatedAt, trip.UpdatedAt)
	if err != nil {
		logger.Log.Errorw("failed to insert trip", "trip_id", trip.TripID, "error", err)
	}
	return err
}

func (r *TripWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// TripReadRepository handles trip read operations.
type TripReadRepository struct {
	db *sqlx.DB
}

func NewTripReadRepository(db *sqlx.DB) *TripReadRepository {
	return &TripReadRepository{db: db}
}

// GetByID returns the trip with the given id.
func (r *TripReadRepository) GetByID(ctx context.Context, tripID uuid.UUID) (*models.TripDB, error) {
	const query = `
		SELECT trip_id, title, currency, created_at, updated_at
		FROM trips
		WHERE trip_id = $1
	`

	var trip models.TripDB
	err := r.db.GetContext(ctx, &trip, query, tripID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFoundf("trip not found")
	}
	if err != nil {
		logger.Log.Errorw("failed to get trip", "trip_id", tripID, "error", err)
		return nil, err
	}
	return &trip, nil
}
