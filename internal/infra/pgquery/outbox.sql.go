package pgquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const insertOutboxEvent = `-- name: InsertOutboxEvent :exec
INSERT INTO outbox_events (id, topic, payload, created_at)
VALUES ($1, $2, $3, $4)`

type InsertOutboxEventParams struct {
	ID        uuid.UUID          `json:"id"`
	Topic     string             `json:"topic"`
	Payload   []byte             `json:"payload"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) InsertOutboxEvent(ctx context.Context, db DBTX, arg InsertOutboxEventParams) error {
	_, err := db.Exec(ctx, insertOutboxEvent,
		arg.ID,
		arg.Topic,
		arg.Payload,
		arg.CreatedAt,
	)
	return err
}

const claimPendingOutboxEvents = `-- name: ClaimPendingOutboxEvents :many
SELECT id, topic, payload, created_at, published_at
FROM outbox_events
WHERE published_at IS NULL
ORDER BY created_at, id
LIMIT $1
FOR UPDATE SKIP LOCKED`

func (q *Queries) ClaimPendingOutboxEvents(ctx context.Context, db DBTX, limit int32) ([]OutboxEvents, error) {
	rows, err := db.Query(ctx, claimPendingOutboxEvents, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []OutboxEvents{}
	for rows.Next() {
		var i OutboxEvents
		if err := rows.Scan(
			&i.ID,
			&i.Topic,
			&i.Payload,
			&i.CreatedAt,
			&i.PublishedAt,
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

const markOutboxEventsPublished = `-- name: MarkOutboxEventsPublished :exec
UPDATE outbox_events
SET published_at = $2
WHERE id = ANY($1::uuid[])`

type MarkOutboxEventsPublishedParams struct {
	Ids         []uuid.UUID        `json:"ids"`
	PublishedAt pgtype.Timestamptz `json:"published_at"`
}

func (q *Queries) MarkOutboxEventsPublished(ctx context.Context, db DBTX, arg MarkOutboxEventsPublishedParams) error {
	_, err := db.Exec(ctx, markOutboxEventsPublished, arg.Ids, arg.PublishedAt)
	return err
}
