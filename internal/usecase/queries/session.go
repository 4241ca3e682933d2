package queries

import (
	"context"
	"log/slog"
	"time"

	"signup-engine/internal/domain/session"
	"signup-engine/internal/infra"
	"signup-engine/internal/pkg/clock"
	"signup-engine/internal/pkg/errs"
	"signup-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type SessionReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID, now time.Time) (*SessionView, error)
	List(ctx context.Context, filter SessionFilter, now time.Time) ([]*SessionView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, now time.Time) ([]*SessionView, error)
}

// SessionCache is a best-effort view cache; misses and failures fall through
// to the store.
type SessionCache interface {
	GetSession(ctx context.Context, id uuid.UUID) (*SessionView, bool)
	PutSession(ctx context.Context, view *SessionView)
}

type SessionQueries interface {
	GetByID(ctx context.Context, rawID string) (*SessionView, error)
	List(ctx context.Context, rawDate string) ([]*SessionView, error)
	ListMine(ctx context.Context, ownerID uuid.UUID) ([]*SessionView, error)
}

type sessionQueriesImpl struct {
	store SessionReadStore
	cache SessionCache
	cal   *session.Calendar
	clock clock.Clock
}

func NewSessionQueries(store SessionReadStore, cache SessionCache, cal *session.Calendar, clk clock.Clock) SessionQueries {
	return &sessionQueriesImpl{store: store, cache: cache, cal: cal, clock: clk}
}

func (q *sessionQueriesImpl) GetByID(ctx context.Context, rawID string) (*SessionView, error) {
	id, err := shared.ParseID(rawID)
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	if view, ok := q.cache.GetSession(ctx, id); ok && now.Before(view.ExpiresAt) {
		return view, nil
	}

	view, err := q.store.FindByID(ctx, id, now)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrNotFound)
		}
		return nil, err
	}
	q.cache.PutSession(ctx, view)
	return view, nil
}

func (q *sessionQueriesImpl) List(ctx context.Context, rawDate string) ([]*SessionView, error) {
	var filter SessionFilter
	if rawDate != "" {
		day, err := q.cal.ParseDate(rawDate)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidFilter)
		}
		filter.Date = &day
	}

	views, err := q.store.List(ctx, filter, q.clock.Now())
	if err != nil {
		return nil, err
	}
	slog.Debug("sessions listed", "count", len(views), "date", rawDate)
	return views, nil
}

func (q *sessionQueriesImpl) ListMine(ctx context.Context, ownerID uuid.UUID) ([]*SessionView, error) {
	return q.store.ListByOwner(ctx, ownerID, q.clock.Now())
}
