package pgquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const sessionColumns = `id, owner_id, venue_id, activity_date, time_slot, net_height, level, fee, note,
       capacity_a, capacity_b, capacity_unrestricted,
       consumed_a, consumed_b, consumed_unrestricted,
       expires_at, created_at, updated_at`

func scanSession(row interface{ Scan(dest ...any) error }) (Sessions, error) {
	var i Sessions
	err := row.Scan(
		&i.ID,
		&i.OwnerID,
		&i.VenueID,
		&i.ActivityDate,
		&i.TimeSlot,
		&i.NetHeight,
		&i.Level,
		&i.Fee,
		&i.Note,
		&i.CapacityA,
		&i.CapacityB,
		&i.CapacityUnrestricted,
		&i.ConsumedA,
		&i.ConsumedB,
		&i.ConsumedUnrestricted,
		&i.ExpiresAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createSession = `-- name: CreateSession :one
INSERT INTO sessions (
    id, owner_id, venue_id, activity_date, time_slot, net_height, level, fee, note,
    capacity_a, capacity_b, capacity_unrestricted,
    consumed_a, consumed_b, consumed_unrestricted,
    expires_at, created_at, updated_at
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9,
    $10, $11, $12,
    0, 0, 0,
    $13, $14, $14
)
RETURNING ` + sessionColumns

type CreateSessionParams struct {
	ID                   uuid.UUID          `json:"id"`
	OwnerID              uuid.UUID          `json:"owner_id"`
	VenueID              uuid.UUID          `json:"venue_id"`
	ActivityDate         pgtype.Date        `json:"activity_date"`
	TimeSlot             string             `json:"time_slot"`
	NetHeight            string             `json:"net_height"`
	Level                string             `json:"level"`
	Fee                  int32              `json:"fee"`
	Note                 pgtype.Text        `json:"note"`
	CapacityA            int32              `json:"capacity_a"`
	CapacityB            int32              `json:"capacity_b"`
	CapacityUnrestricted int32              `json:"capacity_unrestricted"`
	ExpiresAt            pgtype.Timestamptz `json:"expires_at"`
	CreatedAt            pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateSession(ctx context.Context, db DBTX, arg CreateSessionParams) (Sessions, error) {
	row := db.QueryRow(ctx, createSession,
		arg.ID,
		arg.OwnerID,
		arg.VenueID,
		arg.ActivityDate,
		arg.TimeSlot,
		arg.NetHeight,
		arg.Level,
		arg.Fee,
		arg.Note,
		arg.CapacityA,
		arg.CapacityB,
		arg.CapacityUnrestricted,
		arg.ExpiresAt,
		arg.CreatedAt,
	)
	return scanSession(row)
}

const getSessionForUpdate = `-- name: GetSessionForUpdate :one
SELECT ` + sessionColumns + `
FROM sessions
WHERE id = $1
FOR UPDATE`

// GetSessionForUpdate takes the row lock that serializes every pool mutation
// of one session.
func (q *Queries) GetSessionForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Sessions, error) {
	row := db.QueryRow(ctx, getSessionForUpdate, id)
	return scanSession(row)
}

const getActiveSessionByID = `-- name: GetActiveSessionByID :one
SELECT ` + sessionColumns + `
FROM sessions
WHERE id = $1 AND expires_at > $2`

type GetActiveSessionByIDParams struct {
	ID  uuid.UUID          `json:"id"`
	Now pgtype.Timestamptz `json:"now"`
}

func (q *Queries) GetActiveSessionByID(ctx context.Context, db DBTX, arg GetActiveSessionByIDParams) (Sessions, error) {
	row := db.QueryRow(ctx, getActiveSessionByID, arg.ID, arg.Now)
	return scanSession(row)
}

const listActiveSessions = `-- name: ListActiveSessions :many
SELECT ` + sessionColumns + `
FROM sessions
WHERE expires_at > $1
  AND ($2::date IS NULL OR activity_date = $2::date)
ORDER BY activity_date, time_slot, id`

type ListActiveSessionsParams struct {
	Now          pgtype.Timestamptz `json:"now"`
	ActivityDate pgtype.Date        `json:"activity_date"`
}

func (q *Queries) ListActiveSessions(ctx context.Context, db DBTX, arg ListActiveSessionsParams) ([]Sessions, error) {
	rows, err := db.Query(ctx, listActiveSessions, arg.Now, arg.ActivityDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Sessions{}
	for rows.Next() {
		i, err := scanSession(rows)
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

const listActiveSessionsByOwner = `-- name: ListActiveSessionsByOwner :many
SELECT ` + sessionColumns + `
FROM sessions
WHERE owner_id = $1 AND expires_at > $2
ORDER BY activity_date, time_slot, id`

type ListActiveSessionsByOwnerParams struct {
	OwnerID uuid.UUID          `json:"owner_id"`
	Now     pgtype.Timestamptz `json:"now"`
}

func (q *Queries) ListActiveSessionsByOwner(ctx context.Context, db DBTX, arg ListActiveSessionsByOwnerParams) ([]Sessions, error) {
	rows, err := db.Query(ctx, listActiveSessionsByOwner, arg.OwnerID, arg.Now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Sessions{}
	for rows.Next() {
		i, err := scanSession(rows)
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

const updateSession = `-- name: UpdateSession :exec
UPDATE sessions
SET venue_id = $2,
    activity_date = $3,
    time_slot = $4,
    net_height = $5,
    level = $6,
    fee = $7,
    note = $8,
    capacity_a = $9,
    capacity_b = $10,
    capacity_unrestricted = $11,
    consumed_a = $12,
    consumed_b = $13,
    consumed_unrestricted = $14,
    expires_at = $15,
    updated_at = $16
WHERE id = $1`

type UpdateSessionParams struct {
	ID                   uuid.UUID          `json:"id"`
	VenueID              uuid.UUID          `json:"venue_id"`
	ActivityDate         pgtype.Date        `json:"activity_date"`
	TimeSlot             string             `json:"time_slot"`
	NetHeight            string             `json:"net_height"`
	Level                string             `json:"level"`
	Fee                  int32              `json:"fee"`
	Note                 pgtype.Text        `json:"note"`
	CapacityA            int32              `json:"capacity_a"`
	CapacityB            int32              `json:"capacity_b"`
	CapacityUnrestricted int32              `json:"capacity_unrestricted"`
	ConsumedA            int32              `json:"consumed_a"`
	ConsumedB            int32              `json:"consumed_b"`
	ConsumedUnrestricted int32              `json:"consumed_unrestricted"`
	ExpiresAt            pgtype.Timestamptz `json:"expires_at"`
	UpdatedAt            pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateSession(ctx context.Context, db DBTX, arg UpdateSessionParams) error {
	_, err := db.Exec(ctx, updateSession,
		arg.ID,
		arg.VenueID,
		arg.ActivityDate,
		arg.TimeSlot,
		arg.NetHeight,
		arg.Level,
		arg.Fee,
		arg.Note,
		arg.CapacityA,
		arg.CapacityB,
		arg.CapacityUnrestricted,
		arg.ConsumedA,
		arg.ConsumedB,
		arg.ConsumedUnrestricted,
		arg.ExpiresAt,
		arg.UpdatedAt,
	)
	return err
}

const deleteSession = `-- name: DeleteSession :execrows
DELETE FROM sessions
WHERE id = $1`

func (q *Queries) DeleteSession(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteSession, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteExpiredSessions = `-- name: DeleteExpiredSessions :execrows
DELETE FROM sessions
WHERE expires_at <= $1`

func (q *Queries) DeleteExpiredSessions(ctx context.Context, db DBTX, now pgtype.Timestamptz) (int64, error) {
	result, err := db.Exec(ctx, deleteExpiredSessions, now)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
