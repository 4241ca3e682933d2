//go:build unit

package reaper_test

import (
	"context"
	"testing"
	"time"

	"signup-engine/internal/domain/capacity"
	"signup-engine/internal/infra/reaper"
	"signup-engine/internal/pkg/clock"
	"signup-engine/tests/common/builder"
	"signup-engine/tests/common/memstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaper_Sweep(t *testing.T) {
	ctx := context.Background()

	store := memstore.New()
	expired := builder.NewSessionBuilder().With(func(b *builder.SessionBuilder) {
		b.ActivityDate = time.Date(2026, 4, 30, 0, 0, 0, 0, builder.TestZone)
		b.Consumed = capacity.Pools{A: 1}
	}).BuildReconstructed()
	live := builder.NewSessionBuilder().WithConsumed(capacity.Pools{B: 2}).BuildReconstructed()
	store.PutSession(expired)
	store.PutSession(live)

	gone := builder.NewReservationBuilder().ForSession(expired.ID(), expired.ExpiresAt()).WithRequest(capacity.Pools{A: 1}).BuildReconstructed()
	kept := builder.NewReservationBuilder().ForSession(live.ID(), live.ExpiresAt()).WithRequest(capacity.Pools{B: 2}).BuildReconstructed()
	store.PutReservation(gone)
	store.PutReservation(kept)

	clk := clock.NewMockClock(builder.TestNow)
	r := reaper.New(store, clk, time.Minute)

	res, err := r.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, reaper.SweepResult{Reservations: 1, Sessions: 1}, res)

	_, ok := store.Session(expired.ID())
	assert.False(t, ok)
	_, ok = store.Reservation(gone.ID())
	assert.False(t, ok)

	stored, ok := store.Session(live.ID())
	require.True(t, ok)
	assert.Equal(t, capacity.Pools{B: 2}, stored.Consumed())
	_, ok = store.Reservation(kept.ID())
	assert.True(t, ok)

	t.Run("boundary: expiresAt equal to now is purged", func(t *testing.T) {
		clk.Set(live.ExpiresAt())
		res, err := r.Sweep(ctx)
		require.NoError(t, err)
		assert.Equal(t, reaper.SweepResult{Reservations: 1, Sessions: 1}, res)
	})

	t.Run("nothing left", func(t *testing.T) {
		res, err := r.Sweep(ctx)
		require.NoError(t, err)
		assert.Zero(t, res)
	})
}

func TestReaper_StartStop(t *testing.T) {
	store := memstore.New()
	s := builder.NewSessionBuilder().With(func(b *builder.SessionBuilder) {
		b.ActivityDate = time.Date(2026, 4, 1, 0, 0, 0, 0, builder.TestZone)
	}).BuildReconstructed()
	store.PutSession(s)

	r := reaper.New(store, clock.NewMockClock(builder.TestNow), time.Hour)
	r.Start()
	r.Start()

	assert.Eventually(t, func() bool {
		_, ok := store.Session(s.ID())
		return !ok
	}, time.Second, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, r.Stop(ctx))
	require.NoError(t, r.Stop(ctx))
}
