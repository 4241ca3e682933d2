package reservation

import (
	"time"

	"signup-engine/internal/domain/capacity"

	"github.com/google/uuid"
)

// Reservation is one user's claim against one session's pools.
type Reservation struct {
	id        uuid.UUID
	sessionID uuid.UUID
	userID    uuid.UUID
	request   capacity.Pools
	expiresAt time.Time
	createdAt time.Time
	updatedAt time.Time
}

// NewReservation validates the claim shape only; whether the session can
// absorb it is decided by the session's pools.
func NewReservation(sessionID, userID uuid.UUID, request capacity.Pools, expiresAt, now time.Time) (*Reservation, error) {
	if err := capacity.ValidateRequest(request); err != nil {
		return nil, err
	}
	return &Reservation{
		id:        uuid.New(),
		sessionID: sessionID,
		userID:    userID,
		request:   request,
		expiresAt: expiresAt,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructReservation(
	id, sessionID, userID uuid.UUID,
	request capacity.Pools,
	expiresAt, createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		sessionID: sessionID,
		userID:    userID,
		request:   request,
		expiresAt: expiresAt,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *Reservation) OwnedBy(userID uuid.UUID) bool {
	return r.userID == userID
}

func (r *Reservation) IsExpired(now time.Time) bool {
	return !now.Before(r.expiresAt)
}

func (r *Reservation) Amend(next capacity.Pools, now time.Time) error {
	if err := capacity.ValidateRequest(next); err != nil {
		return err
	}
	r.request = next
	r.updatedAt = now
	return nil
}

func (r *Reservation) ID() uuid.UUID           { return r.id }
func (r *Reservation) SessionID() uuid.UUID    { return r.sessionID }
func (r *Reservation) UserID() uuid.UUID       { return r.userID }
func (r *Reservation) Request() capacity.Pools { return r.request }
func (r *Reservation) ExpiresAt() time.Time    { return r.expiresAt }
func (r *Reservation) CreatedAt() time.Time    { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time    { return r.updatedAt }
