package queries

import (
	"time"

	"signup-engine/internal/domain/capacity"

	"github.com/google/uuid"
)

// PoolsView is the read-side rendering of capacity.Pools.
type PoolsView struct {
	A            int `json:"a"`
	B            int `json:"b"`
	Unrestricted int `json:"unrestricted"`
}

func NewPoolsView(p capacity.Pools) PoolsView {
	return PoolsView{A: p.A, B: p.B, Unrestricted: p.Unrestricted}
}

type SessionView struct {
	ID           uuid.UUID `json:"id"`
	OwnerID      uuid.UUID `json:"owner_id"`
	VenueID      uuid.UUID `json:"venue_id"`
	ActivityDate time.Time `json:"activity_date"`
	TimeSlot     string    `json:"time_slot"`
	NetHeight    string    `json:"net_height"`
	Level        string    `json:"level"`
	Fee          int       `json:"fee"`
	Note         *string   `json:"note,omitempty"`
	Capacity     PoolsView `json:"capacity"`
	Consumed     PoolsView `json:"consumed"`
	Available    PoolsView `json:"available"`
	ExpiresAt    time.Time `json:"expires_at"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ReservationView struct {
	ID        uuid.UUID `json:"id"`
	SessionID uuid.UUID `json:"session_id"`
	UserID    uuid.UUID `json:"user_id"`
	Request   PoolsView `json:"request"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SessionSummary is the slice of a session shown next to a caller's reservation.
type SessionSummary struct {
	ID           uuid.UUID `json:"id"`
	VenueID      uuid.UUID `json:"venue_id"`
	ActivityDate time.Time `json:"activity_date"`
	TimeSlot     string    `json:"time_slot"`
	Level        string    `json:"level"`
	Fee          int       `json:"fee"`
}

type MyReservationView struct {
	ReservationView
	Session SessionSummary `json:"session"`
}

type CheckView struct {
	SessionID     uuid.UUID  `json:"session_id"`
	Reserved      bool       `json:"reserved"`
	ReservationID *uuid.UUID `json:"reservation_id,omitempty"`
}

type SessionFilter struct {
	// Date limits the listing to one calendar day in the booking zone.
	Date *time.Time
}
