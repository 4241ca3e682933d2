//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"

	"signup-engine/internal/domain/capacity"
	"signup-engine/internal/domain/session"
	"signup-engine/internal/pkg/clock"
	"signup-engine/internal/usecase/commands"
	"signup-engine/tests/common/builder"
	"signup-engine/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type recordingInvalidator struct {
	mu  sync.Mutex
	ids []uuid.UUID
}

func (r *recordingInvalidator) InvalidateSession(_ context.Context, id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids = append(r.ids, id)
}

func (r *recordingInvalidator) invalidated() []uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]uuid.UUID(nil), r.ids...)
}

type fixture struct {
	store        *memstore.Store
	cache        *recordingInvalidator
	clock        *clock.MockClock
	cal          *session.Calendar
	reservations commands.ReservationCoordinator
	sessions     commands.SessionCommands
}

func newFixture() *fixture {
	store := memstore.New()
	cache := &recordingInvalidator{}
	clk := clock.NewMockClock(builder.TestNow)
	cal := session.NewCalendar(builder.TestZone)
	return &fixture{
		store:        store,
		cache:        cache,
		clock:        clk,
		cal:          cal,
		reservations: commands.NewReservationCoordinator(store, cache, clk),
		sessions:     commands.NewSessionCommands(store, commands.NewCascadeManager(), cache, cal, clk),
	}
}

// seedSession stores a session with the given declared capacity and nothing consumed.
func (f *fixture) seedSession(t *testing.T, declared capacity.Pools) *session.Session {
	t.Helper()
	s := builder.NewSessionBuilder().WithCapacity(declared).BuildReconstructed()
	f.store.PutSession(s)
	return s
}

func (f *fixture) reserve(t *testing.T, sessionID, userID uuid.UUID, req capacity.Pools) *commands.ReservationResult {
	t.Helper()
	res, err := f.reservations.Create(context.Background(), userID, commands.CreateReservationInput{
		SessionID: sessionID.String(),
		Request:   req,
	})
	require.NoError(t, err)
	return res
}

func (f *fixture) consumed(t *testing.T, id uuid.UUID) capacity.Pools {
	t.Helper()
	s, ok := f.store.Session(id)
	require.True(t, ok, "session %s missing", id)
	return s.Consumed()
}

// contributions sums the committed reservations of a session.
func (f *fixture) contributions(id uuid.UUID) capacity.Pools {
	var sum capacity.Pools
	for _, r := range f.store.ReservationsOf(id) {
		sum = sum.Add(r.Request())
	}
	return sum
}
