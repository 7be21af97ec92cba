package models

import (
	"time"

	"github.com/google/uuid"
)

// Member roles.
const (
	RoleOwner  = "owner"
	RoleMember = "member"
)

// TripMemberDB represents a trip member row in the database.
type TripMemberDB struct {
	MemberID  uuid.UUID `json:"member_id" db:"member_id"`   // Unique member identifier
	TripID    uuid.UUID `json:"trip_id" db:"trip_id"`       // Trip the member belongs to
	Nickname  string    `json:"nickname" db:"nickname"`     // Display name, unique within the trip
	Role      string    `json:"role" db:"role"`             // "owner" or "member"
	IsActive  bool      `json:"is_active" db:"is_active"`   // Only active members may appear in new splits or payments
	JoinedAt  time.Time `json:"joined_at" db:"joined_at"`   // Timestamp when the member joined the trip
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Timestamp when the row was created
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // Timestamp of the last update
}
