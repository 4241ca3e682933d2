//go:build unit

package commands_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"signup-engine/internal/domain/capacity"
	"signup-engine/internal/domain/session"
	"signup-engine/internal/pkg/ptr"
	"signup-engine/internal/usecase/commands"
	"signup-engine/internal/usecase/shared"
	"signup-engine/tests/common/builder"
	"signup-engine/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSessionInput() commands.CreateSessionInput {
	return commands.CreateSessionInput{
		VenueID:      uuid.NewString(),
		ActivityDate: "2026-05-10",
		TimeSlot:     "19:00-21:00",
		NetHeight:    "2.43m",
		Level:        "open",
		Fee:          150,
		Capacity:     capacity.Pools{A: 6, B: 6, Unrestricted: 2},
	}
}

func TestSessionCommands_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success derives expiry in the reference zone", func(t *testing.T) {
		f := newFixture()
		owner := uuid.New()

		res, err := f.sessions.Create(ctx, owner, validSessionInput())
		require.NoError(t, err)

		assert.Equal(t, owner, res.Session.OwnerID)
		assert.Equal(t, time.Date(2026, 5, 11, 0, 0, 0, 0, builder.TestZone), res.Session.ExpiresAt)
		assert.Equal(t, capacity.Pools{}, res.Session.Consumed)
		assert.Equal(t, res.Session.Capacity, res.Session.Available)

		stored, ok := f.store.Session(res.Session.ID)
		require.True(t, ok)
		assert.Equal(t, "open", stored.Details().Level)
	})

	testCases := []struct {
		name    string
		mutate  func(*commands.CreateSessionInput)
		wantErr error
	}{
		{name: "malformed venue", mutate: func(in *commands.CreateSessionInput) { in.VenueID = "venue-1" }, wantErr: commands.ErrInvalidIdentifier},
		{name: "malformed date", mutate: func(in *commands.CreateSessionInput) { in.ActivityDate = "10/05/2026" }, wantErr: commands.ErrInvalidSessionDetails},
		{name: "blank level", mutate: func(in *commands.CreateSessionInput) { in.Level = "  " }, wantErr: commands.ErrInvalidSessionDetails},
		{name: "negative fee", mutate: func(in *commands.CreateSessionInput) { in.Fee = -1 }, wantErr: commands.ErrInvalidSessionDetails},
		{name: "negative pool", mutate: func(in *commands.CreateSessionInput) { in.Capacity.B = -2 }, wantErr: commands.ErrInvalidSessionDetails},
		{name: "pool beyond int32", mutate: func(in *commands.CreateSessionInput) { in.Capacity.A = math.MaxInt32 + 1 }, wantErr: commands.ErrInvalidSessionDetails},
		{name: "fee over the limit", mutate: func(in *commands.CreateSessionInput) { in.Fee = session.MaxFee + 1 }, wantErr: commands.ErrInvalidSessionDetails},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			in := validSessionInput()
			tc.mutate(&in)

			_, err := f.sessions.Create(ctx, uuid.New(), in)
			assert.True(t, errors.Is(err, tc.wantErr), "got %v", err)
		})
	}
}

func TestSessionCommands_Edit(t *testing.T) {
	ctx := context.Background()

	t.Run("date change propagates the identical expiry", func(t *testing.T) {
		f := newFixture()
		s := f.seedSession(t, capacity.Pools{A: 4, B: 4})
		first := f.reserve(t, s.ID(), uuid.New(), capacity.Pools{A: 1})
		second := f.reserve(t, s.ID(), uuid.New(), capacity.Pools{B: 2})

		res, err := f.sessions.Edit(ctx, s.OwnerID(), commands.EditSessionInput{
			SessionID:    s.ID().String(),
			ActivityDate: ptr.Of("2026-05-20"),
		})
		require.NoError(t, err)

		want := time.Date(2026, 5, 21, 0, 0, 0, 0, builder.TestZone)
		assert.Equal(t, want, res.Session.ExpiresAt)
		assert.EqualValues(t, 2, res.UpdatedReservations)
		for _, id := range []uuid.UUID{first.Reservation.ID, second.Reservation.ID} {
			r, ok := f.store.Reservation(id)
			require.True(t, ok)
			assert.True(t, want.Equal(r.ExpiresAt()), "reservation %s expires %s", id, r.ExpiresAt())
		}
		assert.Contains(t, f.store.Topics(), shared.TopicSessionUpdated)
	})

	t.Run("same date leaves children untouched", func(t *testing.T) {
		f := newFixture()
		s := f.seedSession(t, capacity.Pools{A: 4})
		f.reserve(t, s.ID(), uuid.New(), capacity.Pools{A: 1})

		res, err := f.sessions.Edit(ctx, s.OwnerID(), commands.EditSessionInput{
			SessionID:    s.ID().String(),
			ActivityDate: ptr.Of(s.ActivityDate().Format("2006-01-02")),
			Level:        ptr.Of("advanced"),
		})
		require.NoError(t, err)
		assert.Zero(t, res.UpdatedReservations)
		assert.Equal(t, "advanced", res.Session.Level)
	})

	t.Run("resize above consumed", func(t *testing.T) {
		f := newFixture()
		s := f.seedSession(t, capacity.Pools{A: 4, B: 4})
		f.reserve(t, s.ID(), uuid.New(), capacity.Pools{A: 3})

		res, err := f.sessions.Edit(ctx, s.OwnerID(), commands.EditSessionInput{
			SessionID: s.ID().String(),
			Capacity:  capacity.Patch{A: ptr.Of(3), Unrestricted: ptr.Of(2)},
		})
		require.NoError(t, err)
		assert.Equal(t, capacity.Pools{A: 3, B: 4, Unrestricted: 2}, res.Session.Capacity)
		assert.Equal(t, capacity.Pools{B: 4, Unrestricted: 2}, res.Session.Available)
	})

	t.Run("resize below consumed is rejected", func(t *testing.T) {
		f := newFixture()
		s := f.seedSession(t, capacity.Pools{A: 4, Unrestricted: 3})
		f.reserve(t, s.ID(), uuid.New(), capacity.Pools{A: 3})
		f.reserve(t, s.ID(), uuid.New(), capacity.Pools{Unrestricted: 2})

		_, err := f.sessions.Edit(ctx, s.OwnerID(), commands.EditSessionInput{
			SessionID: s.ID().String(),
			Capacity:  capacity.Patch{A: ptr.Of(2)},
		})
		assert.True(t, errors.Is(err, commands.ErrExceedsCategoryCapacity))

		_, err = f.sessions.Edit(ctx, s.OwnerID(), commands.EditSessionInput{
			SessionID: s.ID().String(),
			Capacity:  capacity.Patch{Unrestricted: ptr.Of(1)},
		})
		assert.True(t, errors.Is(err, commands.ErrExceedsUnrestrictedCapacity))

		stored, _ := f.store.Session(s.ID())
		assert.Equal(t, capacity.Pools{A: 4, Unrestricted: 3}, stored.Capacity())
	})

	t.Run("empty note clears it", func(t *testing.T) {
		f := newFixture()
		s := f.seedSession(t, capacity.Pools{A: 1})

		res, err := f.sessions.Edit(ctx, s.OwnerID(), commands.EditSessionInput{
			SessionID: s.ID().String(),
			Note:      ptr.Of(""),
		})
		require.NoError(t, err)
		assert.Nil(t, res.Session.Note)
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		f := newFixture()
		s := f.seedSession(t, capacity.Pools{A: 1})

		_, err := f.sessions.Edit(ctx, uuid.New(), commands.EditSessionInput{
			SessionID: s.ID().String(),
			Level:     ptr.Of("advanced"),
		})
		assert.True(t, errors.Is(err, commands.ErrUnauthorized))
	})

	t.Run("failed propagation keeps the old date", func(t *testing.T) {
		f := newFixture()
		s := f.seedSession(t, capacity.Pools{A: 4})
		mine := f.reserve(t, s.ID(), uuid.New(), capacity.Pools{A: 1})
		f.store.FailOn(memstore.OpReservationUpdateExpiry, errors.New("disk full"))

		_, err := f.sessions.Edit(ctx, s.OwnerID(), commands.EditSessionInput{
			SessionID:    s.ID().String(),
			ActivityDate: ptr.Of("2026-05-20"),
		})
		require.Error(t, err)

		stored, _ := f.store.Session(s.ID())
		assert.Equal(t, s.ExpiresAt(), stored.ExpiresAt())
		r, _ := f.store.Reservation(mine.Reservation.ID)
		assert.Equal(t, s.ExpiresAt(), r.ExpiresAt())
	})
}

func TestSessionCommands_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes every reservation with the session", func(t *testing.T) {
		f := newFixture()
		s := f.seedSession(t, capacity.Pools{A: 4, B: 4, Unrestricted: 4})
		other := f.seedSession(t, capacity.Pools{A: 2})
		f.reserve(t, s.ID(), uuid.New(), capacity.Pools{A: 1})
		f.reserve(t, s.ID(), uuid.New(), capacity.Pools{B: 2})
		f.reserve(t, s.ID(), uuid.New(), capacity.Pools{Unrestricted: 3})
		kept := f.reserve(t, other.ID(), uuid.New(), capacity.Pools{A: 1})

		res, err := f.sessions.Delete(ctx, s.OwnerID(), s.ID().String())
		require.NoError(t, err)
		assert.EqualValues(t, 3, res.RemovedReservations)

		_, exists := f.store.Session(s.ID())
		assert.False(t, exists)
		assert.Empty(t, f.store.ReservationsOf(s.ID()))
		_, exists = f.store.Reservation(kept.Reservation.ID)
		assert.True(t, exists)
		assert.Contains(t, f.store.Topics(), shared.TopicSessionDeleted)
		assert.Contains(t, f.cache.invalidated(), s.ID())
	})

	t.Run("all or nothing when the parent delete fails", func(t *testing.T) {
		f := newFixture()
		s := f.seedSession(t, capacity.Pools{A: 4})
		f.reserve(t, s.ID(), uuid.New(), capacity.Pools{A: 1})
		f.reserve(t, s.ID(), uuid.New(), capacity.Pools{A: 2})
		f.store.FailOn(memstore.OpSessionDelete, errors.New("connection reset"))

		_, err := f.sessions.Delete(ctx, s.OwnerID(), s.ID().String())
		require.Error(t, err)

		_, exists := f.store.Session(s.ID())
		assert.True(t, exists)
		assert.Len(t, f.store.ReservationsOf(s.ID()), 2)
		assert.Equal(t, capacity.Pools{A: 3}, f.consumed(t, s.ID()))
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		f := newFixture()
		s := f.seedSession(t, capacity.Pools{A: 4})
		f.reserve(t, s.ID(), uuid.New(), capacity.Pools{A: 1})

		_, err := f.sessions.Delete(ctx, uuid.New(), s.ID().String())
		assert.True(t, errors.Is(err, commands.ErrUnauthorized))
		assert.Len(t, f.store.ReservationsOf(s.ID()), 1)
	})

	t.Run("admin delete skips the ownership check", func(t *testing.T) {
		f := newFixture()
		s := f.seedSession(t, capacity.Pools{A: 4})
		f.reserve(t, s.ID(), uuid.New(), capacity.Pools{A: 1})

		res, err := f.sessions.DeleteAsAdmin(ctx, s.ID().String())
		require.NoError(t, err)
		assert.EqualValues(t, 1, res.RemovedReservations)
	})

	t.Run("second delete is not found", func(t *testing.T) {
		f := newFixture()
		s := f.seedSession(t, capacity.Pools{A: 4})

		_, err := f.sessions.Delete(ctx, s.OwnerID(), s.ID().String())
		require.NoError(t, err)
		_, err = f.sessions.Delete(ctx, s.OwnerID(), s.ID().String())
		assert.True(t, errors.Is(err, commands.ErrNotFound))
	})
}
