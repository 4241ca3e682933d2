package commands

import (
	"context"
	"time"

	"signup-engine/internal/domain/capacity"
	"signup-engine/internal/domain/reservation"
	"signup-engine/internal/domain/session"

	"github.com/google/uuid"
)

// CacheInvalidator drops read-side copies once a write has committed.
type CacheInvalidator interface {
	InvalidateSession(ctx context.Context, id uuid.UUID)
}

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type SessionSnapshot struct {
	ID           uuid.UUID      `json:"id"`
	OwnerID      uuid.UUID      `json:"owner_id"`
	VenueID      uuid.UUID      `json:"venue_id"`
	ActivityDate time.Time      `json:"activity_date"`
	TimeSlot     string         `json:"time_slot"`
	NetHeight    string         `json:"net_height"`
	Level        string         `json:"level"`
	Fee          int            `json:"fee"`
	Note         *string        `json:"note,omitempty"`
	Capacity     capacity.Pools `json:"capacity"`
	Consumed     capacity.Pools `json:"consumed"`
	Available    capacity.Pools `json:"available"`
	ExpiresAt    time.Time      `json:"expires_at"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

type ReservationSnapshot struct {
	ID        uuid.UUID      `json:"id"`
	SessionID uuid.UUID      `json:"session_id"`
	UserID    uuid.UUID      `json:"user_id"`
	Request   capacity.Pools `json:"request"`
	ExpiresAt time.Time      `json:"expires_at"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func snapshotSession(s *session.Session) SessionSnapshot {
	d := s.Details()
	return SessionSnapshot{
		ID:           s.ID(),
		OwnerID:      s.OwnerID(),
		VenueID:      d.VenueID,
		ActivityDate: s.ActivityDate(),
		TimeSlot:     d.TimeSlot,
		NetHeight:    d.NetHeight,
		Level:        d.Level,
		Fee:          d.Fee,
		Note:         d.Note,
		Capacity:     s.Capacity(),
		Consumed:     s.Consumed(),
		Available:    s.Available(),
		ExpiresAt:    s.ExpiresAt(),
		CreatedAt:    s.CreatedAt(),
		UpdatedAt:    s.UpdatedAt(),
	}
}

func snapshotReservation(r *reservation.Reservation) ReservationSnapshot {
	return ReservationSnapshot{
		ID:        r.ID(),
		SessionID: r.SessionID(),
		UserID:    r.UserID(),
		Request:   r.Request(),
		ExpiresAt: r.ExpiresAt(),
		CreatedAt: r.CreatedAt(),
		UpdatedAt: r.UpdatedAt(),
	}
}
