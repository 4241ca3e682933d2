package messaging

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"signup-engine/internal/pkg/clock"
	"signup-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	defaultRelayInterval = 2 * time.Second
	defaultBatchSize     = 100
)

// Relay moves committed outbox events to the broker. Delivery is at least
// once: a crash between publish and commit republishes the batch.
type Relay struct {
	uow       shared.UnitOfWork
	publisher Publisher
	clock     clock.Clock
	interval  time.Duration
	batchSize int32

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewRelay(uow shared.UnitOfWork, publisher Publisher, clk clock.Clock, interval time.Duration, batchSize int32) *Relay {
	if interval <= 0 {
		interval = defaultRelayInterval
	}
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &Relay{
		uow:       uow,
		publisher: publisher,
		clock:     clk,
		interval:  interval,
		batchSize: batchSize,
	}
}

// Flush publishes one batch in order and marks what was sent. It stops at
// the first publish failure so later events are not sent ahead of it.
func (r *Relay) Flush(ctx context.Context) (int, error) {
	sent := 0
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sent = 0
		pending, err := tx.Events().ClaimPending(ctx, tx.DB(), r.batchSize)
		if err != nil {
			return err
		}

		ids := make([]uuid.UUID, 0, len(pending))
		var publishErr error
		for _, ev := range pending {
			if publishErr = r.publisher.Publish(ctx, ev); publishErr != nil {
				slog.Warn("event publish failed", "event_id", ev.ID, "topic", ev.Topic, "error", publishErr.Error())
				break
			}
			ids = append(ids, ev.ID)
		}
		if len(ids) == 0 {
			return publishErr
		}

		if err := tx.Events().MarkPublished(ctx, tx.DB(), ids, r.clock.Now()); err != nil {
			return err
		}
		sent = len(ids)
		return nil
	})
	return sent, err
}

func (r *Relay) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.done = make(chan struct{})

	go func() {
		defer close(r.done)
		r.run(ctx)
	}()
	slog.Info("outbox relay started", "interval", r.interval.String(), "batch_size", r.batchSize)
}

func (r *Relay) Stop(ctx context.Context) error {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.cancel, r.done = nil, nil
	r.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()
	select {
	case <-done:
		slog.Info("outbox relay stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Relay) run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.drain(ctx)
		}
	}
}

// drain keeps flushing while full batches come back.
func (r *Relay) drain(ctx context.Context) {
	for ctx.Err() == nil {
		n, err := r.Flush(ctx)
		if err != nil {
			if ctx.Err() == nil {
				slog.Error("outbox relay flush failed", "error", err.Error())
			}
			return
		}
		if n > 0 {
			slog.Debug("outbox events relayed", "count", n)
		}
		if n < int(r.batchSize) {
			return
		}
	}
}
