package repository

import (
	"context"
	"encoding/json"
	"time"

	"signup-engine/internal/infra"
	"signup-engine/internal/infra/pgquery"
	"signup-engine/internal/pkg/pgconv"
	"signup-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type EventWriteQueries interface {
	InsertOutboxEvent(ctx context.Context, db pgquery.DBTX, arg pgquery.InsertOutboxEventParams) error
	ClaimPendingOutboxEvents(ctx context.Context, db pgquery.DBTX, limit int32) ([]pgquery.OutboxEvents, error)
	MarkOutboxEventsPublished(ctx context.Context, db pgquery.DBTX, arg pgquery.MarkOutboxEventsPublishedParams) error
}

// EventRepository is the transactional outbox.
type EventRepository struct {
	queries EventWriteQueries
	db      pgquery.DBTX
}

func NewEventRepository(queries EventWriteQueries, db pgquery.DBTX) *EventRepository {
	return &EventRepository{
		queries: queries,
		db:      db,
	}
}

func (r *EventRepository) Append(ctx context.Context, tx pgquery.DBTX, ev shared.Event) error {
	payload, err := json.Marshal(ev.Payload)
	if err != nil {
		return infra.WrapRepoErr("failed to encode event payload", err)
	}
	params := pgquery.InsertOutboxEventParams{
		ID:        uuid.New(),
		Topic:     ev.Topic,
		Payload:   payload,
		CreatedAt: pgconv.TimeToPgtype(ev.OccurredAt),
	}
	if err := r.queries.InsertOutboxEvent(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to append outbox event", err)
	}
	return nil
}

// ClaimPending locks up to limit unpublished rows; concurrent relays skip them.
func (r *EventRepository) ClaimPending(ctx context.Context, tx pgquery.DBTX, limit int32) ([]shared.OutboxEvent, error) {
	rows, err := r.queries.ClaimPendingOutboxEvents(ctx, tx, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim outbox events", err)
	}
	events := make([]shared.OutboxEvent, len(rows))
	for i, row := range rows {
		events[i] = shared.OutboxEvent{
			ID:        row.ID,
			Topic:     row.Topic,
			Payload:   row.Payload,
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return events, nil
}

func (r *EventRepository) MarkPublished(ctx context.Context, tx pgquery.DBTX, ids []uuid.UUID, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	err := r.queries.MarkOutboxEventsPublished(ctx, tx, pgquery.MarkOutboxEventsPublishedParams{
		Ids:         ids,
		PublishedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark outbox events published", err)
	}
	return nil
}
