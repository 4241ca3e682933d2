//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"signup-engine/internal/domain/session"
	"signup-engine/internal/infra"
	"signup-engine/internal/pkg/clock"
	"signup-engine/internal/pkg/errs"
	"signup-engine/internal/usecase/queries"
	"signup-engine/tests/common/builder"
	queriesmock "signup-engine/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type sessionQueriesFixture struct {
	store *queriesmock.MockSessionReadStore
	cache *queriesmock.MockSessionCache
	sut   queries.SessionQueries
}

func newSessionQueriesFixture(t *testing.T) sessionQueriesFixture {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockSessionReadStore(ctrl)
	cache := queriesmock.NewMockSessionCache(ctrl)
	return sessionQueriesFixture{
		store: store,
		cache: cache,
		sut:   queries.NewSessionQueries(store, cache, session.NewCalendar(builder.TestZone), clock.NewMockClock(builder.TestNow)),
	}
}

func TestSessionQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	live := &queries.SessionView{ID: id, ExpiresAt: builder.TestNow.Add(24 * time.Hour)}

	t.Run("cache hit skips the store", func(t *testing.T) {
		f := newSessionQueriesFixture(t)
		f.cache.EXPECT().GetSession(ctx, id).Return(live, true)

		got, err := f.sut.GetByID(ctx, id.String())
		require.NoError(t, err)
		assert.Same(t, live, got)
	})

	t.Run("cache miss loads and fills", func(t *testing.T) {
		f := newSessionQueriesFixture(t)
		f.cache.EXPECT().GetSession(ctx, id).Return(nil, false)
		f.store.EXPECT().FindByID(ctx, id, builder.TestNow).Return(live, nil)
		f.cache.EXPECT().PutSession(ctx, live)

		got, err := f.sut.GetByID(ctx, id.String())
		require.NoError(t, err)
		assert.Equal(t, id, got.ID)
	})

	t.Run("stale cached view past expiry goes to the store", func(t *testing.T) {
		f := newSessionQueriesFixture(t)
		expired := &queries.SessionView{ID: id, ExpiresAt: builder.TestNow}
		f.cache.EXPECT().GetSession(ctx, id).Return(expired, true)
		f.store.EXPECT().FindByID(ctx, id, builder.TestNow).
			Return(nil, infra.WrapRepoErr("session not found", nil, infra.KindNotFound))

		_, err := f.sut.GetByID(ctx, id.String())
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("malformed id", func(t *testing.T) {
		f := newSessionQueriesFixture(t)

		_, err := f.sut.GetByID(ctx, "nope")
		assert.True(t, errs.Is(err, errs.ErrInvalidIdentifier))
	})

	t.Run("store failure passes through", func(t *testing.T) {
		f := newSessionQueriesFixture(t)
		boom := errors.New("boom")
		f.cache.EXPECT().GetSession(ctx, id).Return(nil, false)
		f.store.EXPECT().FindByID(ctx, id, builder.TestNow).Return(nil, boom)

		_, err := f.sut.GetByID(ctx, id.String())
		require.ErrorIs(t, err, boom)
		assert.False(t, errs.Is(err, errs.ErrNotFound))
	})
}

func TestSessionQueries_List(t *testing.T) {
	ctx := context.Background()

	t.Run("date filter", func(t *testing.T) {
		f := newSessionQueriesFixture(t)
		day := time.Date(2026, 5, 10, 0, 0, 0, 0, builder.TestZone)
		f.store.EXPECT().List(ctx, queries.SessionFilter{Date: &day}, builder.TestNow).
			Return([]*queries.SessionView{{ID: uuid.New()}}, nil)

		views, err := f.sut.List(ctx, "2026-05-10")
		require.NoError(t, err)
		assert.Len(t, views, 1)
	})

	t.Run("no filter", func(t *testing.T) {
		f := newSessionQueriesFixture(t)
		f.store.EXPECT().List(ctx, queries.SessionFilter{}, builder.TestNow).Return([]*queries.SessionView{}, nil)

		views, err := f.sut.List(ctx, "")
		require.NoError(t, err)
		assert.Empty(t, views)
	})

	t.Run("bad date", func(t *testing.T) {
		f := newSessionQueriesFixture(t)

		_, err := f.sut.List(ctx, "10/05/2026")
		assert.True(t, errs.Is(err, queries.ErrInvalidFilter))
	})
}

func TestSessionQueries_ListMine(t *testing.T) {
	ctx := context.Background()
	f := newSessionQueriesFixture(t)
	owner := uuid.New()
	f.store.EXPECT().ListByOwner(ctx, owner, builder.TestNow).Return([]*queries.SessionView{{OwnerID: owner}}, nil)

	views, err := f.sut.ListMine(ctx, owner)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, owner, views[0].OwnerID)
}
