package readstore

import (
	"context"
	"time"

	"signup-engine/internal/domain/session"
	"signup-engine/internal/infra"
	"signup-engine/internal/infra/pgquery"
	"signup-engine/internal/pkg/pgconv"
	"signup-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationViewQueries interface {
	ListActiveReservationsByUser(ctx context.Context, db pgquery.DBTX, arg pgquery.ListActiveReservationsByUserParams) ([]pgquery.ListActiveReservationsByUserRow, error)
	ListActiveReservationsBySession(ctx context.Context, db pgquery.DBTX, arg pgquery.ListActiveReservationsBySessionParams) ([]pgquery.Reservations, error)
	FindActiveReservationByUser(ctx context.Context, db pgquery.DBTX, arg pgquery.FindActiveReservationByUserParams) (pgquery.Reservations, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      pgquery.DBTX
	cal     *session.Calendar
}

func NewReservationReadStore(queries ReservationViewQueries, db pgquery.DBTX, cal *session.Calendar) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
		cal:     cal,
	}
}

func (r *ReservationReadStore) ListByUser(ctx context.Context, userID uuid.UUID, now time.Time) ([]*queries.MyReservationView, error) {
	rows, err := r.queries.ListActiveReservationsByUser(ctx, r.db, pgquery.ListActiveReservationsByUserParams{
		UserID: userID,
		Now:    pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by user", err)
	}

	result := make([]*queries.MyReservationView, len(rows))
	for i, row := range rows {
		result[i] = &queries.MyReservationView{
			ReservationView: queries.ReservationView{
				ID:        row.ID,
				SessionID: row.SessionID,
				UserID:    row.UserID,
				Request:   queries.PoolsView{A: int(row.A), B: int(row.B), Unrestricted: int(row.Unrestricted)},
				ExpiresAt: pgconv.TimeFromPgtype(row.ExpiresAt),
				CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
				UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
			},
			Session: queries.SessionSummary{
				ID:           row.SessionID,
				VenueID:      row.VenueID,
				ActivityDate: pgconv.DateFromPgtype(row.ActivityDate, r.cal.Location()),
				TimeSlot:     row.TimeSlot,
				Level:        row.Level,
				Fee:          int(row.Fee),
			},
		}
	}
	return result, nil
}

func (r *ReservationReadStore) ListBySession(ctx context.Context, sessionID uuid.UUID, now time.Time) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListActiveReservationsBySession(ctx, r.db, pgquery.ListActiveReservationsBySessionParams{
		SessionID: sessionID,
		Now:       pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by session", err)
	}

	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		result[i] = toReservationView(row)
	}
	return result, nil
}

func (r *ReservationReadStore) FindByUserInSession(ctx context.Context, sessionID, userID uuid.UUID, now time.Time) (*queries.ReservationView, error) {
	row, err := r.queries.FindActiveReservationByUser(ctx, r.db, pgquery.FindActiveReservationByUserParams{
		SessionID: sessionID,
		UserID:    userID,
		Now:       pgconv.TimeToPgtype(now),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation in session", err)
	}
	return toReservationView(row), nil
}

func toReservationView(row pgquery.Reservations) *queries.ReservationView {
	return &queries.ReservationView{
		ID:        row.ID,
		SessionID: row.SessionID,
		UserID:    row.UserID,
		Request:   queries.PoolsView{A: int(row.A), B: int(row.B), Unrestricted: int(row.Unrestricted)},
		ExpiresAt: pgconv.TimeFromPgtype(row.ExpiresAt),
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
