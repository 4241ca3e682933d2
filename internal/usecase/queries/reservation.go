package queries

import (
	"context"
	"time"

	"signup-engine/internal/infra"
	"signup-engine/internal/pkg/clock"
	"signup-engine/internal/pkg/errs"
	"signup-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID, now time.Time) ([]*MyReservationView, error)
	ListBySession(ctx context.Context, sessionID uuid.UUID, now time.Time) ([]*ReservationView, error)
	FindByUserInSession(ctx context.Context, sessionID, userID uuid.UUID, now time.Time) (*ReservationView, error)
}

type ReservationQueries interface {
	ListMine(ctx context.Context, userID uuid.UUID) ([]*MyReservationView, error)
	// ListBySession is restricted to the session owner.
	ListBySession(ctx context.Context, rawSessionID string, actorID uuid.UUID) ([]*ReservationView, error)
	Check(ctx context.Context, rawSessionID string, actorID uuid.UUID) (*CheckView, error)
}

type reservationQueriesImpl struct {
	reservations ReservationReadStore
	sessions     SessionReadStore
	clock        clock.Clock
}

func NewReservationQueries(reservations ReservationReadStore, sessions SessionReadStore, clk clock.Clock) ReservationQueries {
	return &reservationQueriesImpl{reservations: reservations, sessions: sessions, clock: clk}
}

func (q *reservationQueriesImpl) ListMine(ctx context.Context, userID uuid.UUID) ([]*MyReservationView, error) {
	return q.reservations.ListByUser(ctx, userID, q.clock.Now())
}

func (q *reservationQueriesImpl) ListBySession(ctx context.Context, rawSessionID string, actorID uuid.UUID) ([]*ReservationView, error) {
	sessionID, err := shared.ParseID(rawSessionID)
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	s, err := q.sessions.FindByID(ctx, sessionID, now)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrNotFound)
		}
		return nil, err
	}
	if s.OwnerID != actorID {
		return nil, errs.ErrUnauthorized
	}

	return q.reservations.ListBySession(ctx, sessionID, now)
}

func (q *reservationQueriesImpl) Check(ctx context.Context, rawSessionID string, actorID uuid.UUID) (*CheckView, error) {
	sessionID, err := shared.ParseID(rawSessionID)
	if err != nil {
		return nil, err
	}

	view := &CheckView{SessionID: sessionID}
	r, err := q.reservations.FindByUserInSession(ctx, sessionID, actorID, q.clock.Now())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return view, nil
		}
		return nil, err
	}
	view.Reserved = true
	view.ReservationID = &r.ID
	return view, nil
}
