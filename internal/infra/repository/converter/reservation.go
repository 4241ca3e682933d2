package converter

import (
	"signup-engine/internal/domain/capacity"
	"signup-engine/internal/domain/reservation"
	"signup-engine/internal/infra/pgquery"
	"signup-engine/internal/pkg/pgconv"
)

func ReservationToCreateParams(r *reservation.Reservation) pgquery.CreateReservationParams {
	req := r.Request()
	return pgquery.CreateReservationParams{
		ID:           r.ID(),
		SessionID:    r.SessionID(),
		UserID:       r.UserID(),
		A:            pgconv.IntToInt32(req.A),
		B:            pgconv.IntToInt32(req.B),
		Unrestricted: pgconv.IntToInt32(req.Unrestricted),
		ExpiresAt:    pgconv.TimeToPgtype(r.ExpiresAt()),
		CreatedAt:    pgconv.TimeToPgtype(r.CreatedAt()),
	}
}

func ReservationToUpdateParams(r *reservation.Reservation) pgquery.UpdateReservationRequestParams {
	req := r.Request()
	return pgquery.UpdateReservationRequestParams{
		ID:           r.ID(),
		A:            pgconv.IntToInt32(req.A),
		B:            pgconv.IntToInt32(req.B),
		Unrestricted: pgconv.IntToInt32(req.Unrestricted),
		UpdatedAt:    pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func ReservationFromRow(row pgquery.Reservations) *reservation.Reservation {
	return reservation.ReconstructReservation(
		row.ID,
		row.SessionID,
		row.UserID,
		RequestFromRow(row),
		pgconv.TimeFromPgtype(row.ExpiresAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func RequestFromRow(row pgquery.Reservations) capacity.Pools {
	return capacity.Pools{A: int(row.A), B: int(row.B), Unrestricted: int(row.Unrestricted)}
}
