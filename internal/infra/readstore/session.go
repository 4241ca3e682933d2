package readstore

import (
	"context"
	"time"

	"signup-engine/internal/domain/capacity"
	"signup-engine/internal/domain/session"
	"signup-engine/internal/infra"
	"signup-engine/internal/infra/pgquery"
	"signup-engine/internal/pkg/pgconv"
	"signup-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type SessionViewQueries interface {
	GetActiveSessionByID(ctx context.Context, db pgquery.DBTX, arg pgquery.GetActiveSessionByIDParams) (pgquery.Sessions, error)
	ListActiveSessions(ctx context.Context, db pgquery.DBTX, arg pgquery.ListActiveSessionsParams) ([]pgquery.Sessions, error)
	ListActiveSessionsByOwner(ctx context.Context, db pgquery.DBTX, arg pgquery.ListActiveSessionsByOwnerParams) ([]pgquery.Sessions, error)
}

type SessionReadStore struct {
	queries SessionViewQueries
	db      pgquery.DBTX
	cal     *session.Calendar
}

func NewSessionReadStore(queries SessionViewQueries, db pgquery.DBTX, cal *session.Calendar) *SessionReadStore {
	return &SessionReadStore{
		queries: queries,
		db:      db,
		cal:     cal,
	}
}

func (r *SessionReadStore) FindByID(ctx context.Context, id uuid.UUID, now time.Time) (*queries.SessionView, error) {
	row, err := r.queries.GetActiveSessionByID(ctx, r.db, pgquery.GetActiveSessionByIDParams{
		ID:  id,
		Now: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("session not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get session view by id", err)
	}
	return r.toView(row), nil
}

func (r *SessionReadStore) List(ctx context.Context, filter queries.SessionFilter, now time.Time) ([]*queries.SessionView, error) {
	params := pgquery.ListActiveSessionsParams{Now: pgconv.TimeToPgtype(now)}
	if filter.Date != nil {
		params.ActivityDate = pgconv.DateToPgtype(r.cal.Day(*filter.Date))
	} else {
		params.ActivityDate = pgtype.Date{Valid: false}
	}

	rows, err := r.queries.ListActiveSessions(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list sessions", err)
	}
	return r.toViews(rows), nil
}

func (r *SessionReadStore) ListByOwner(ctx context.Context, ownerID uuid.UUID, now time.Time) ([]*queries.SessionView, error) {
	rows, err := r.queries.ListActiveSessionsByOwner(ctx, r.db, pgquery.ListActiveSessionsByOwnerParams{
		OwnerID: ownerID,
		Now:     pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list sessions by owner", err)
	}
	return r.toViews(rows), nil
}

func (r *SessionReadStore) toViews(rows []pgquery.Sessions) []*queries.SessionView {
	result := make([]*queries.SessionView, len(rows))
	for i, row := range rows {
		result[i] = r.toView(row)
	}
	return result
}

func (r *SessionReadStore) toView(row pgquery.Sessions) *queries.SessionView {
	declared := capacity.Pools{A: int(row.CapacityA), B: int(row.CapacityB), Unrestricted: int(row.CapacityUnrestricted)}
	consumed := capacity.Pools{A: int(row.ConsumedA), B: int(row.ConsumedB), Unrestricted: int(row.ConsumedUnrestricted)}
	return &queries.SessionView{
		ID:           row.ID,
		OwnerID:      row.OwnerID,
		VenueID:      row.VenueID,
		ActivityDate: pgconv.DateFromPgtype(row.ActivityDate, r.cal.Location()),
		TimeSlot:     row.TimeSlot,
		NetHeight:    row.NetHeight,
		Level:        row.Level,
		Fee:          int(row.Fee),
		Note:         pgconv.StringPtrFromPgtype(row.Note),
		Capacity:     queries.NewPoolsView(declared),
		Consumed:     queries.NewPoolsView(consumed),
		Available:    queries.NewPoolsView(capacity.Available(declared, consumed)),
		ExpiresAt:    pgconv.TimeFromPgtype(row.ExpiresAt),
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
