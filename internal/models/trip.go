package models

import (
	"time"

	"github.com/google/uuid"
)

// TripDB represents a trip row in the database.
type TripDB struct {
	TripID    uuid.UUID `json:"trip_id" db:"trip_id"`       // Unique trip identifier
	Title     string    `json:"title" db:"title"`           // Trip title
	Currency  string    `json:"currency" db:"currency"`     // Base settlement currency (3-letter code)
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Timestamp when the trip was created
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // Timestamp of the last trip update
}
