//go:build unit || e2e

package builder

import (
	"time"

	"signup-engine/internal/domain/capacity"
	"signup-engine/internal/domain/reservation"
	reqdto "signup-engine/internal/handler/dto/request"
	"signup-engine/internal/usecase/commands"
	"signup-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID        uuid.UUID
	SessionID uuid.UUID
	UserID    uuid.UUID
	Request   capacity.Pools
	ExpiresAt time.Time
	Now       time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:        uuid.New(),
		SessionID: uuid.New(),
		UserID:    uuid.New(),
		Request:   capacity.Pools{A: 1, B: 1},
		ExpiresAt: time.Date(2026, 5, 11, 0, 0, 0, 0, TestZone),
		Now:       TestNow,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	return reservation.NewReservation(b.SessionID, b.UserID, b.Request, b.ExpiresAt, b.Now)
}

func (b *ReservationBuilder) BuildReconstructed() *reservation.Reservation {
	return reservation.ReconstructReservation(b.ID, b.SessionID, b.UserID, b.Request, b.ExpiresAt, b.Now, b.Now)
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:        b.ID,
		SessionID: b.SessionID,
		UserID:    b.UserID,
		Request:   queries.NewPoolsView(b.Request),
		ExpiresAt: b.ExpiresAt,
		CreatedAt: b.Now,
		UpdatedAt: b.Now,
	}
}

func (b *ReservationBuilder) BuildSnapshot() commands.ReservationSnapshot {
	return commands.ReservationSnapshot{
		ID:        b.ID,
		SessionID: b.SessionID,
		UserID:    b.UserID,
		Request:   b.Request,
		ExpiresAt: b.ExpiresAt,
		CreatedAt: b.Now,
		UpdatedAt: b.Now,
	}
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		SessionID:    b.SessionID.String(),
		A:            b.Request.A,
		B:            b.Request.B,
		Unrestricted: b.Request.Unrestricted,
	}
}

// ForSession ties the reservation to a session and mirrors its expiry.
func (b *ReservationBuilder) ForSession(id uuid.UUID, expiresAt time.Time) *ReservationBuilder {
	b.SessionID = id
	b.ExpiresAt = expiresAt
	return b
}

func (b *ReservationBuilder) WithUserID(id uuid.UUID) *ReservationBuilder {
	b.UserID = id
	return b
}

func (b *ReservationBuilder) WithRequest(p capacity.Pools) *ReservationBuilder {
	b.Request = p
	return b
}
