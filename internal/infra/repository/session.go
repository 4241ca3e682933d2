package repository

import (
	"context"
	"time"

	"signup-engine/internal/domain/session"
	"signup-engine/internal/infra"
	"signup-engine/internal/infra/pgquery"
	"signup-engine/internal/infra/repository/converter"
	"signup-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type SessionWriteQueries interface {
	CreateSession(ctx context.Context, db pgquery.DBTX, arg pgquery.CreateSessionParams) (pgquery.Sessions, error)
	GetSessionForUpdate(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.Sessions, error)
	UpdateSession(ctx context.Context, db pgquery.DBTX, arg pgquery.UpdateSessionParams) error
	DeleteSession(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (int64, error)
	DeleteExpiredSessions(ctx context.Context, db pgquery.DBTX, now pgtype.Timestamptz) (int64, error)
}

type SessionRepository struct {
	queries SessionWriteQueries
	db      pgquery.DBTX
	cal     *session.Calendar
}

func NewSessionRepository(queries SessionWriteQueries, db pgquery.DBTX, cal *session.Calendar) *SessionRepository {
	return &SessionRepository{
		queries: queries,
		db:      db,
		cal:     cal,
	}
}

func (r *SessionRepository) Create(ctx context.Context, tx pgquery.DBTX, s *session.Session) error {
	if _, err := r.queries.CreateSession(ctx, tx, converter.SessionToCreateParams(s)); err != nil {
		return infra.WrapRepoErr("failed to create session", err)
	}
	return nil
}

func (r *SessionRepository) GetForUpdate(ctx context.Context, tx pgquery.DBTX, id uuid.UUID) (*session.Session, error) {
	row, err := r.queries.GetSessionForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("session not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock session", err)
	}
	return converter.SessionFromRow(row, r.cal), nil
}

func (r *SessionRepository) Update(ctx context.Context, tx pgquery.DBTX, s *session.Session) error {
	if err := r.queries.UpdateSession(ctx, tx, converter.SessionToUpdateParams(s)); err != nil {
		return infra.WrapRepoErr("failed to update session", err)
	}
	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, tx pgquery.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteSession(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete session", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("session not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SessionRepository) DeleteExpired(ctx context.Context, tx pgquery.DBTX, now time.Time) (int64, error) {
	n, err := r.queries.DeleteExpiredSessions(ctx, tx, pgconv.TimeToPgtype(now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired sessions", err)
	}
	return n, nil
}
