package pgquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const reservationColumns = `id, session_id, user_id, a, b, unrestricted, expires_at, created_at, updated_at`

func scanReservation(row interface{ Scan(dest ...any) error }) (Reservations, error) {
	var i Reservations
	err := row.Scan(
		&i.ID,
		&i.SessionID,
		&i.UserID,
		&i.A,
		&i.B,
		&i.Unrestricted,
		&i.ExpiresAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

func collectReservations(ctx context.Context, db DBTX, query string, args ...interface{}) ([]Reservations, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Reservations{}
	for rows.Next() {
		i, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createReservation = `-- name: CreateReservation :one
INSERT INTO reservations (
    id, session_id, user_id, a, b, unrestricted, expires_at, created_at, updated_at
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $8
)
RETURNING ` + reservationColumns

type CreateReservationParams struct {
	ID           uuid.UUID          `json:"id"`
	SessionID    uuid.UUID          `json:"session_id"`
	UserID       uuid.UUID          `json:"user_id"`
	A            int32              `json:"a"`
	B            int32              `json:"b"`
	Unrestricted int32              `json:"unrestricted"`
	ExpiresAt    pgtype.Timestamptz `json:"expires_at"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateReservation(ctx context.Context, db DBTX, arg CreateReservationParams) (Reservations, error) {
	row := db.QueryRow(ctx, createReservation,
		arg.ID,
		arg.SessionID,
		arg.UserID,
		arg.A,
		arg.B,
		arg.Unrestricted,
		arg.ExpiresAt,
		arg.CreatedAt,
	)
	return scanReservation(row)
}

const getReservationByID = `-- name: GetReservationByID :one
SELECT ` + reservationColumns + `
FROM reservations
WHERE id = $1`

func (q *Queries) GetReservationByID(ctx context.Context, db DBTX, id uuid.UUID) (Reservations, error) {
	row := db.QueryRow(ctx, getReservationByID, id)
	return scanReservation(row)
}

const updateReservationRequest = `-- name: UpdateReservationRequest :exec
UPDATE reservations
SET a = $2,
    b = $3,
    unrestricted = $4,
    updated_at = $5
WHERE id = $1`

type UpdateReservationRequestParams struct {
	ID           uuid.UUID          `json:"id"`
	A            int32              `json:"a"`
	B            int32              `json:"b"`
	Unrestricted int32              `json:"unrestricted"`
	UpdatedAt    pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateReservationRequest(ctx context.Context, db DBTX, arg UpdateReservationRequestParams) error {
	_, err := db.Exec(ctx, updateReservationRequest,
		arg.ID,
		arg.A,
		arg.B,
		arg.Unrestricted,
		arg.UpdatedAt,
	)
	return err
}

const deleteReservation = `-- name: DeleteReservation :execrows
DELETE FROM reservations
WHERE id = $1`

func (q *Queries) DeleteReservation(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteReservation, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteReservationsBySession = `-- name: DeleteReservationsBySession :execrows
DELETE FROM reservations
WHERE session_id = $1`

func (q *Queries) DeleteReservationsBySession(ctx context.Context, db DBTX, sessionID uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteReservationsBySession, sessionID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const updateReservationExpiryBySession = `-- name: UpdateReservationExpiryBySession :execrows
UPDATE reservations
SET expires_at = $2,
    updated_at = $3
WHERE session_id = $1`

type UpdateReservationExpiryBySessionParams struct {
	SessionID uuid.UUID          `json:"session_id"`
	ExpiresAt pgtype.Timestamptz `json:"expires_at"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateReservationExpiryBySession(ctx context.Context, db DBTX, arg UpdateReservationExpiryBySessionParams) (int64, error) {
	result, err := db.Exec(ctx, updateReservationExpiryBySession, arg.SessionID, arg.ExpiresAt, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteExpiredReservations = `-- name: DeleteExpiredReservations :execrows
DELETE FROM reservations
WHERE expires_at <= $1
   OR session_id IN (SELECT id FROM sessions WHERE expires_at <= $1)`

func (q *Queries) DeleteExpiredReservations(ctx context.Context, db DBTX, now pgtype.Timestamptz) (int64, error) {
	result, err := db.Exec(ctx, deleteExpiredReservations, now)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const listActiveReservationsBySession = `-- name: ListActiveReservationsBySession :many
SELECT ` + reservationColumns + `
FROM reservations
WHERE session_id = $1 AND expires_at > $2
ORDER BY created_at, id`

type ListActiveReservationsBySessionParams struct {
	SessionID uuid.UUID          `json:"session_id"`
	Now       pgtype.Timestamptz `json:"now"`
}

func (q *Queries) ListActiveReservationsBySession(ctx context.Context, db DBTX, arg ListActiveReservationsBySessionParams) ([]Reservations, error) {
	return collectReservations(ctx, db, listActiveReservationsBySession, arg.SessionID, arg.Now)
}

const findActiveReservationByUser = `-- name: FindActiveReservationByUser :one
SELECT ` + reservationColumns + `
FROM reservations
WHERE session_id = $1 AND user_id = $2 AND expires_at > $3
ORDER BY created_at DESC, id
LIMIT 1`

type FindActiveReservationByUserParams struct {
	SessionID uuid.UUID          `json:"session_id"`
	UserID    uuid.UUID          `json:"user_id"`
	Now       pgtype.Timestamptz `json:"now"`
}

func (q *Queries) FindActiveReservationByUser(ctx context.Context, db DBTX, arg FindActiveReservationByUserParams) (Reservations, error) {
	row := db.QueryRow(ctx, findActiveReservationByUser, arg.SessionID, arg.UserID, arg.Now)
	return scanReservation(row)
}

const listActiveReservationsByUser = `-- name: ListActiveReservationsByUser :many
SELECT r.id, r.session_id, r.user_id, r.a, r.b, r.unrestricted, r.expires_at, r.created_at, r.updated_at,
       s.venue_id, s.activity_date, s.time_slot, s.level, s.fee
FROM reservations r
JOIN sessions s ON s.id = r.session_id
WHERE r.user_id = $1 AND r.expires_at > $2 AND s.expires_at > $2
ORDER BY s.activity_date, s.time_slot, r.id`

type ListActiveReservationsByUserParams struct {
	UserID uuid.UUID          `json:"user_id"`
	Now    pgtype.Timestamptz `json:"now"`
}

type ListActiveReservationsByUserRow struct {
	ID           uuid.UUID          `json:"id"`
	SessionID    uuid.UUID          `json:"session_id"`
	UserID       uuid.UUID          `json:"user_id"`
	A            int32              `json:"a"`
	B            int32              `json:"b"`
	Unrestricted int32              `json:"unrestricted"`
	ExpiresAt    pgtype.Timestamptz `json:"expires_at"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
	UpdatedAt    pgtype.Timestamptz `json:"updated_at"`
	VenueID      uuid.UUID          `json:"venue_id"`
	ActivityDate pgtype.Date        `json:"activity_date"`
	TimeSlot     string             `json:"time_slot"`
	Level        string             `json:"level"`
	Fee          int32              `json:"fee"`
}

func (q *Queries) ListActiveReservationsByUser(ctx context.Context, db DBTX, arg ListActiveReservationsByUserParams) ([]ListActiveReservationsByUserRow, error) {
	rows, err := db.Query(ctx, listActiveReservationsByUser, arg.UserID, arg.Now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ListActiveReservationsByUserRow{}
	for rows.Next() {
		var i ListActiveReservationsByUserRow
		if err := rows.Scan(
			&i.ID,
			&i.SessionID,
			&i.UserID,
			&i.A,
			&i.B,
			&i.Unrestricted,
			&i.ExpiresAt,
			&i.CreatedAt,
			&i.UpdatedAt,
			&i.VenueID,
			&i.ActivityDate,
			&i.TimeSlot,
			&i.Level,
			&i.Fee,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
