package shared

import (
	"context"
	"time"

	"signup-engine/internal/domain/reservation"
	"signup-engine/internal/domain/session"
	"signup-engine/internal/infra/pgquery"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within runs fn in one write transaction, retrying on serialization
	// failures and deadlocks. Returning an error rolls everything back.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Sessions() SessionRepository
	Reservations() ReservationRepository
	Events() EventRepository
	DB() pgquery.DBTX
}

type SessionRepository interface {
	Create(ctx context.Context, db pgquery.DBTX, s *session.Session) error
	// GetForUpdate locks the session row until the transaction ends.
	GetForUpdate(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (*session.Session, error)
	Update(ctx context.Context, db pgquery.DBTX, s *session.Session) error
	Delete(ctx context.Context, db pgquery.DBTX, id uuid.UUID) error
	DeleteExpired(ctx context.Context, db pgquery.DBTX, now time.Time) (int64, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, db pgquery.DBTX, r *reservation.Reservation) error
	GetByID(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (*reservation.Reservation, error)
	Update(ctx context.Context, db pgquery.DBTX, r *reservation.Reservation) error
	Delete(ctx context.Context, db pgquery.DBTX, id uuid.UUID) error
	DeleteBySession(ctx context.Context, db pgquery.DBTX, sessionID uuid.UUID) (int64, error)
	UpdateExpiryBySession(ctx context.Context, db pgquery.DBTX, sessionID uuid.UUID, expiresAt, now time.Time) (int64, error)
	DeleteExpired(ctx context.Context, db pgquery.DBTX, now time.Time) (int64, error)
}

type EventRepository interface {
	Append(ctx context.Context, db pgquery.DBTX, ev Event) error
	ClaimPending(ctx context.Context, db pgquery.DBTX, limit int32) ([]OutboxEvent, error)
	MarkPublished(ctx context.Context, db pgquery.DBTX, ids []uuid.UUID, at time.Time) error
}

// Event is a domain event recorded in the same transaction as the change it describes.
type Event struct {
	Topic      string
	Payload    any
	OccurredAt time.Time
}

// OutboxEvent is a stored event waiting to be relayed.
type OutboxEvent struct {
	ID        uuid.UUID
	Topic     string
	Payload   []byte
	CreatedAt time.Time
}

const (
	TopicReservationCreated   = "reservation.created"
	TopicReservationUpdated   = "reservation.updated"
	TopicReservationCancelled = "reservation.cancelled"
	TopicSessionUpdated       = "session.updated"
	TopicSessionDeleted       = "session.deleted"
)
