package commands

import (
	"context"
	"log/slog"
	"time"

	"signup-engine/internal/domain/capacity"
	"signup-engine/internal/domain/session"
	"signup-engine/internal/pkg/clock"
	"signup-engine/internal/pkg/errs"
	"signup-engine/internal/pkg/patch"
	"signup-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateSessionInput struct {
	VenueID      string
	ActivityDate string
	TimeSlot     string
	NetHeight    string
	Level        string
	Fee          int
	Note         *string
	Capacity     capacity.Pools
}

// EditSessionInput leaves a field unchanged when it is nil. An empty Note
// clears it.
type EditSessionInput struct {
	SessionID    string
	VenueID      *string
	ActivityDate *string
	TimeSlot     *string
	NetHeight    *string
	Level        *string
	Fee          *int
	Note         *string
	Capacity     capacity.Patch
}

type SessionResult struct {
	Session             SessionSnapshot `json:"session"`
	UpdatedReservations int64           `json:"updated_reservations"`
}

type DeleteSessionResult struct {
	SessionID           uuid.UUID `json:"session_id"`
	RemovedReservations int64     `json:"removed_reservations"`
}

type SessionCommands interface {
	Create(ctx context.Context, ownerID uuid.UUID, in CreateSessionInput) (*SessionResult, error)
	Edit(ctx context.Context, actorID uuid.UUID, in EditSessionInput) (*SessionResult, error)
	Delete(ctx context.Context, actorID uuid.UUID, rawSessionID string) (*DeleteSessionResult, error)
	// DeleteAsAdmin skips the ownership check.
	DeleteAsAdmin(ctx context.Context, rawSessionID string) (*DeleteSessionResult, error)
}

type sessionCommands struct {
	uow     shared.UnitOfWork
	cascade CascadeManager
	cache   CacheInvalidator
	cal     *session.Calendar
	clock   clock.Clock
}

func NewSessionCommands(
	uow shared.UnitOfWork,
	cascade CascadeManager,
	cache CacheInvalidator,
	cal *session.Calendar,
	clk clock.Clock,
) SessionCommands {
	return &sessionCommands{
		uow:     uow,
		cascade: cascade,
		cache:   cache,
		cal:     cal,
		clock:   clk,
	}
}

func (c *sessionCommands) Create(ctx context.Context, ownerID uuid.UUID, in CreateSessionInput) (*SessionResult, error) {
	venueID, err := shared.ParseID(in.VenueID)
	if err != nil {
		return nil, err
	}
	day, err := c.cal.ParseDate(in.ActivityDate)
	if err != nil {
		return nil, invalidSession(err)
	}

	details := session.Details{
		VenueID:   venueID,
		TimeSlot:  in.TimeSlot,
		NetHeight: in.NetHeight,
		Level:     in.Level,
		Fee:       in.Fee,
		Note:      in.Note,
	}
	s, err := session.NewSession(c.cal, ownerID, day, details, in.Capacity, c.clock.Now())
	if err != nil {
		return nil, invalidSession(err)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Sessions().Create(ctx, tx.DB(), s)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("session created", "session_id", s.ID(), "owner_id", ownerID, "activity_date", day.Format(session.DateLayout))
	return &SessionResult{Session: snapshotSession(s)}, nil
}

func (c *sessionCommands) Edit(ctx context.Context, actorID uuid.UUID, in EditSessionInput) (*SessionResult, error) {
	sessionID, err := shared.ParseID(in.SessionID)
	if err != nil {
		return nil, err
	}

	var venueID *uuid.UUID
	if in.VenueID != nil {
		id, err := shared.ParseID(*in.VenueID)
		if err != nil {
			return nil, err
		}
		venueID = &id
	}
	var newDay *time.Time
	if in.ActivityDate != nil {
		day, err := c.cal.ParseDate(*in.ActivityDate)
		if err != nil {
			return nil, invalidSession(err)
		}
		newDay = &day
	}

	var result SessionResult
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := c.clock.Now()

		s, err := c.lockOwnedSession(ctx, tx, sessionID, &actorID)
		if err != nil {
			return err
		}

		current := s.Details()
		details := session.Details{
			VenueID:   patch.Coalesce(venueID, current.VenueID),
			TimeSlot:  patch.Coalesce(in.TimeSlot, current.TimeSlot),
			NetHeight: patch.Coalesce(in.NetHeight, current.NetHeight),
			Level:     patch.Coalesce(in.Level, current.Level),
			Fee:       patch.Coalesce(in.Fee, current.Fee),
			Note:      current.Note,
		}
		if in.Note != nil {
			details.Note = in.Note
		}
		if err := s.UpdateDetails(details, now); err != nil {
			return invalidSession(err)
		}

		if !in.Capacity.IsEmpty() {
			if err := s.Resize(in.Capacity.Merge(s.Capacity()), now); err != nil {
				return invalidSession(err)
			}
		}

		moved := false
		if newDay != nil {
			moved = s.Reschedule(c.cal, *newDay, now)
		}

		if err := tx.Sessions().Update(ctx, tx.DB(), s); err != nil {
			return err
		}
		if moved {
			n, err := c.cascade.OnSessionDateChange(ctx, tx, s, now)
			if err != nil {
				return err
			}
			result.UpdatedReservations = n
		}

		result.Session = snapshotSession(s)
		return tx.Events().Append(ctx, tx.DB(), shared.Event{
			Topic:      shared.TopicSessionUpdated,
			Payload:    result,
			OccurredAt: now,
		})
	})
	if err != nil {
		return nil, err
	}

	c.cache.InvalidateSession(ctx, sessionID)
	return &result, nil
}

func (c *sessionCommands) Delete(ctx context.Context, actorID uuid.UUID, rawSessionID string) (*DeleteSessionResult, error) {
	return c.delete(ctx, &actorID, rawSessionID)
}

func (c *sessionCommands) DeleteAsAdmin(ctx context.Context, rawSessionID string) (*DeleteSessionResult, error) {
	return c.delete(ctx, nil, rawSessionID)
}

func (c *sessionCommands) delete(ctx context.Context, actorID *uuid.UUID, rawSessionID string) (*DeleteSessionResult, error) {
	sessionID, err := shared.ParseID(rawSessionID)
	if err != nil {
		return nil, err
	}

	var result DeleteSessionResult
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := c.clock.Now()

		s, err := c.lockOwnedSession(ctx, tx, sessionID, actorID)
		if err != nil {
			return err
		}

		removed, err := c.cascade.OnSessionDelete(ctx, tx, s)
		if err != nil {
			return err
		}

		result = DeleteSessionResult{SessionID: s.ID(), RemovedReservations: removed}
		return tx.Events().Append(ctx, tx.DB(), shared.Event{
			Topic:      shared.TopicSessionDeleted,
			Payload:    result,
			OccurredAt: now,
		})
	})
	if err != nil {
		return nil, err
	}

	c.cache.InvalidateSession(ctx, sessionID)
	slog.Info("session deleted", "session_id", sessionID, "removed_reservations", result.RemovedReservations)
	return &result, nil
}

// lockOwnedSession locks the row and checks ownership. A nil actorID skips
// the ownership check.
func (c *sessionCommands) lockOwnedSession(ctx context.Context, tx shared.Tx, id uuid.UUID, actorID *uuid.UUID) (*session.Session, error) {
	s, err := tx.Sessions().GetForUpdate(ctx, tx.DB(), id)
	if err != nil {
		return nil, notFound(err)
	}
	if s.IsExpired(c.clock.Now()) {
		return nil, errs.Wrapf(ErrNotFound, "session %s expired", id)
	}
	if actorID != nil && !s.OwnedBy(*actorID) {
		return nil, ErrUnauthorized
	}
	return s, nil
}
