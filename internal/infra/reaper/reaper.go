// Package reaper purges sessions and reservations whose expiresAt has passed.
// Postgres has no row TTL, so a ticker loop stands in for one.
package reaper

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"signup-engine/internal/pkg/clock"
	"signup-engine/internal/usecase/shared"
)

const defaultInterval = time.Minute

type SweepResult struct {
	Reservations int64
	Sessions     int64
}

type Reaper struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func New(uow shared.UnitOfWork, clk clock.Clock, interval time.Duration) *Reaper {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Reaper{uow: uow, clock: clk, interval: interval}
}

// Sweep deletes expired rows in one unit of work, children first. Live
// sessions are never touched, so consumed pools need no adjustment.
func (r *Reaper) Sweep(ctx context.Context) (SweepResult, error) {
	var res SweepResult
	now := r.clock.Now()
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Reservations().DeleteExpired(ctx, tx.DB(), now)
		if err != nil {
			return err
		}
		res.Reservations = n

		n, err = tx.Sessions().DeleteExpired(ctx, tx.DB(), now)
		if err != nil {
			return err
		}
		res.Sessions = n
		return nil
	})
	if err != nil {
		return SweepResult{}, err
	}
	return res, nil
}

// Start runs Sweep immediately and then on every tick until Stop.
func (r *Reaper) Start() {
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
	slog.Info("expiry reaper started", "interval", r.interval.String())
}

func (r *Reaper) Stop(ctx context.Context) error {
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
		slog.Info("expiry reaper stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Reaper) run(ctx context.Context) {
	r.tick(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.tick(ctx)
		}
	}
}

func (r *Reaper) tick(ctx context.Context) {
	res, err := r.Sweep(ctx)
	if err != nil {
		if ctx.Err() == nil {
			slog.Error("expiry sweep failed", "error", err.Error())
		}
		return
	}
	if res.Reservations > 0 || res.Sessions > 0 {
		slog.Info("expired records purged", "reservations", res.Reservations, "sessions", res.Sessions)
		return
	}
	slog.Debug("expiry sweep found nothing")
}
