package repository

import (
	"context"
	"time"

	"signup-engine/internal/domain/reservation"
	"signup-engine/internal/infra"
	"signup-engine/internal/infra/pgquery"
	"signup-engine/internal/infra/repository/converter"
	"signup-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db pgquery.DBTX, arg pgquery.CreateReservationParams) (pgquery.Reservations, error)
	GetReservationByID(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.Reservations, error)
	UpdateReservationRequest(ctx context.Context, db pgquery.DBTX, arg pgquery.UpdateReservationRequestParams) error
	DeleteReservation(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (int64, error)
	DeleteReservationsBySession(ctx context.Context, db pgquery.DBTX, sessionID uuid.UUID) (int64, error)
	UpdateReservationExpiryBySession(ctx context.Context, db pgquery.DBTX, arg pgquery.UpdateReservationExpiryBySessionParams) (int64, error)
	DeleteExpiredReservations(ctx context.Context, db pgquery.DBTX, now pgtype.Timestamptz) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      pgquery.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db pgquery.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, tx pgquery.DBTX, res *reservation.Reservation) error {
	if _, err := r.queries.CreateReservation(ctx, tx, converter.ReservationToCreateParams(res)); err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, tx pgquery.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get reservation", err)
	}
	return converter.ReservationFromRow(row), nil
}

func (r *ReservationRepository) Update(ctx context.Context, tx pgquery.DBTX, res *reservation.Reservation) error {
	if err := r.queries.UpdateReservationRequest(ctx, tx, converter.ReservationToUpdateParams(res)); err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, tx pgquery.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteReservation(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) DeleteBySession(ctx context.Context, tx pgquery.DBTX, sessionID uuid.UUID) (int64, error) {
	n, err := r.queries.DeleteReservationsBySession(ctx, tx, sessionID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete reservations of session", err)
	}
	return n, nil
}

func (r *ReservationRepository) UpdateExpiryBySession(ctx context.Context, tx pgquery.DBTX, sessionID uuid.UUID, expiresAt, now time.Time) (int64, error) {
	n, err := r.queries.UpdateReservationExpiryBySession(ctx, tx, pgquery.UpdateReservationExpiryBySessionParams{
		SessionID: sessionID,
		ExpiresAt: pgconv.TimeToPgtype(expiresAt),
		UpdatedAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to propagate reservation expiry", err)
	}
	return n, nil
}

func (r *ReservationRepository) DeleteExpired(ctx context.Context, tx pgquery.DBTX, now time.Time) (int64, error) {
	n, err := r.queries.DeleteExpiredReservations(ctx, tx, pgconv.TimeToPgtype(now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired reservations", err)
	}
	return n, nil
}
