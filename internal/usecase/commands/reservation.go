package commands

import (
	"context"
	"log/slog"

	"signup-engine/internal/domain/capacity"
	"signup-engine/internal/domain/reservation"
	"signup-engine/internal/domain/session"
	"signup-engine/internal/pkg/clock"
	"signup-engine/internal/pkg/errs"
	"signup-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateReservationInput struct {
	SessionID string
	Request   capacity.Pools
}

type EditReservationInput struct {
	ReservationID string
	Request       capacity.Patch
}

type ReservationResult struct {
	Reservation ReservationSnapshot `json:"reservation"`
	Session     SessionSnapshot     `json:"session"`
}

type CancelResult struct {
	ReservationID uuid.UUID       `json:"reservation_id"`
	Session       SessionSnapshot `json:"session"`
}

// ReservationCoordinator owns every mutation of a session's consumed pools.
// Each call runs in one unit of work that holds the session row lock, so
// concurrent calls against one session serialize and calls against different
// sessions do not contend.
type ReservationCoordinator interface {
	Create(ctx context.Context, actorID uuid.UUID, in CreateReservationInput) (*ReservationResult, error)
	Edit(ctx context.Context, actorID uuid.UUID, in EditReservationInput) (*ReservationResult, error)
	Cancel(ctx context.Context, actorID uuid.UUID, rawReservationID string) (*CancelResult, error)
}

type reservationCoordinator struct {
	uow   shared.UnitOfWork
	cache CacheInvalidator
	clock clock.Clock
}

func NewReservationCoordinator(uow shared.UnitOfWork, cache CacheInvalidator, clk clock.Clock) ReservationCoordinator {
	return &reservationCoordinator{uow: uow, cache: cache, clock: clk}
}

func (c *reservationCoordinator) Create(ctx context.Context, actorID uuid.UUID, in CreateReservationInput) (*ReservationResult, error) {
	sessionID, err := shared.ParseID(in.SessionID)
	if err != nil {
		return nil, err
	}
	if err := capacity.ValidateRequest(in.Request); err != nil {
		return nil, err
	}

	var result ReservationResult
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := c.clock.Now()

		s, err := c.lockLiveSession(ctx, tx, sessionID)
		if err != nil {
			return err
		}
		if err := s.Reserve(in.Request, now); err != nil {
			return err
		}

		r, err := reservation.NewReservation(s.ID(), actorID, in.Request, s.ExpiresAt(), now)
		if err != nil {
			return err
		}

		if err := tx.Sessions().Update(ctx, tx.DB(), s); err != nil {
			return err
		}
		if err := tx.Reservations().Create(ctx, tx.DB(), r); err != nil {
			return err
		}

		result = ReservationResult{Reservation: snapshotReservation(r), Session: snapshotSession(s)}
		return tx.Events().Append(ctx, tx.DB(), shared.Event{
			Topic:      shared.TopicReservationCreated,
			Payload:    result,
			OccurredAt: now,
		})
	})
	if err != nil {
		return nil, err
	}

	c.cache.InvalidateSession(ctx, sessionID)
	slog.Info("reservation created",
		"reservation_id", result.Reservation.ID,
		"session_id", sessionID,
		"user_id", actorID)
	return &result, nil
}

func (c *reservationCoordinator) Edit(ctx context.Context, actorID uuid.UUID, in EditReservationInput) (*ReservationResult, error) {
	reservationID, err := shared.ParseID(in.ReservationID)
	if err != nil {
		return nil, err
	}

	var result ReservationResult
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := c.clock.Now()

		s, r, err := c.lockOwnedReservation(ctx, tx, reservationID, actorID)
		if err != nil {
			return err
		}

		prior := r.Request()
		next := in.Request.Apply(s.Capacity(), prior)
		if err := capacity.ValidateRequest(next); err != nil {
			return err
		}
		if err := s.Amend(prior, next, now); err != nil {
			return err
		}
		if err := r.Amend(next, now); err != nil {
			return err
		}

		if err := tx.Sessions().Update(ctx, tx.DB(), s); err != nil {
			return err
		}
		if err := tx.Reservations().Update(ctx, tx.DB(), r); err != nil {
			return err
		}

		result = ReservationResult{Reservation: snapshotReservation(r), Session: snapshotSession(s)}
		return tx.Events().Append(ctx, tx.DB(), shared.Event{
			Topic:      shared.TopicReservationUpdated,
			Payload:    result,
			OccurredAt: now,
		})
	})
	if err != nil {
		return nil, err
	}

	c.cache.InvalidateSession(ctx, result.Session.ID)
	return &result, nil
}

func (c *reservationCoordinator) Cancel(ctx context.Context, actorID uuid.UUID, rawReservationID string) (*CancelResult, error) {
	reservationID, err := shared.ParseID(rawReservationID)
	if err != nil {
		return nil, err
	}

	var result CancelResult
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := c.clock.Now()

		s, r, err := c.lockOwnedReservation(ctx, tx, reservationID, actorID)
		if err != nil {
			return err
		}

		s.Release(r.Request(), now)
		if err := tx.Sessions().Update(ctx, tx.DB(), s); err != nil {
			return err
		}
		if err := tx.Reservations().Delete(ctx, tx.DB(), r.ID()); err != nil {
			return notFound(err)
		}

		result = CancelResult{ReservationID: r.ID(), Session: snapshotSession(s)}
		return tx.Events().Append(ctx, tx.DB(), shared.Event{
			Topic:      shared.TopicReservationCancelled,
			Payload:    result,
			OccurredAt: now,
		})
	})
	if err != nil {
		return nil, err
	}

	c.cache.InvalidateSession(ctx, result.Session.ID)
	slog.Info("reservation cancelled", "reservation_id", reservationID, "user_id", actorID)
	return &result, nil
}

func (c *reservationCoordinator) lockLiveSession(ctx context.Context, tx shared.Tx, id uuid.UUID) (*session.Session, error) {
	s, err := tx.Sessions().GetForUpdate(ctx, tx.DB(), id)
	if err != nil {
		return nil, notFound(err)
	}
	if s.IsExpired(c.clock.Now()) {
		return nil, errs.Wrapf(ErrNotFound, "session %s expired", id)
	}
	return s, nil
}

// lockOwnedReservation locks the parent session before trusting the
// reservation. Reading the reservation first only tells us which session to
// lock; the second read sees any edit or cancel that committed while we waited.
func (c *reservationCoordinator) lockOwnedReservation(ctx context.Context, tx shared.Tx, id, actorID uuid.UUID) (*session.Session, *reservation.Reservation, error) {
	peek, err := tx.Reservations().GetByID(ctx, tx.DB(), id)
	if err != nil {
		return nil, nil, notFound(err)
	}
	if !peek.OwnedBy(actorID) {
		return nil, nil, ErrUnauthorized
	}

	s, err := c.lockLiveSession(ctx, tx, peek.SessionID())
	if err != nil {
		return nil, nil, err
	}

	r, err := tx.Reservations().GetByID(ctx, tx.DB(), id)
	if err != nil {
		return nil, nil, notFound(err)
	}
	if r.SessionID() != s.ID() || r.IsExpired(c.clock.Now()) {
		return nil, nil, errs.Wrapf(ErrNotFound, "reservation %s", id)
	}
	return s, r, nil
}
