//go:build unit

package queries_test

import (
	"context"
	"testing"

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

func newReservationQueries(t *testing.T) (*queriesmock.MockReservationReadStore, *queriesmock.MockSessionReadStore, queries.ReservationQueries) {
	ctrl := gomock.NewController(t)
	reservations := queriesmock.NewMockReservationReadStore(ctrl)
	sessions := queriesmock.NewMockSessionReadStore(ctrl)
	return reservations, sessions, queries.NewReservationQueries(reservations, sessions, clock.NewMockClock(builder.TestNow))
}

func TestReservationQueries_ListBySession(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	sessionID := uuid.New()

	t.Run("owner sees every reservation", func(t *testing.T) {
		reservations, sessions, sut := newReservationQueries(t)
		sessions.EXPECT().FindByID(ctx, sessionID, builder.TestNow).Return(&queries.SessionView{ID: sessionID, OwnerID: owner}, nil)
		reservations.EXPECT().ListBySession(ctx, sessionID, builder.TestNow).
			Return([]*queries.ReservationView{{SessionID: sessionID}, {SessionID: sessionID}}, nil)

		views, err := sut.ListBySession(ctx, sessionID.String(), owner)
		require.NoError(t, err)
		assert.Len(t, views, 2)
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		_, sessions, sut := newReservationQueries(t)
		sessions.EXPECT().FindByID(ctx, sessionID, builder.TestNow).Return(&queries.SessionView{ID: sessionID, OwnerID: owner}, nil)

		_, err := sut.ListBySession(ctx, sessionID.String(), uuid.New())
		assert.True(t, errs.Is(err, errs.ErrUnauthorized))
	})

	t.Run("missing session", func(t *testing.T) {
		_, sessions, sut := newReservationQueries(t)
		sessions.EXPECT().FindByID(ctx, sessionID, builder.TestNow).
			Return(nil, infra.WrapRepoErr("session not found", nil, infra.KindNotFound))

		_, err := sut.ListBySession(ctx, sessionID.String(), owner)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("malformed id", func(t *testing.T) {
		_, _, sut := newReservationQueries(t)

		_, err := sut.ListBySession(ctx, "xyz", owner)
		assert.True(t, errs.Is(err, errs.ErrInvalidIdentifier))
	})
}

func TestReservationQueries_Check(t *testing.T) {
	ctx := context.Background()
	actor := uuid.New()
	sessionID := uuid.New()

	t.Run("reserved", func(t *testing.T) {
		reservations, _, sut := newReservationQueries(t)
		resID := uuid.New()
		reservations.EXPECT().FindByUserInSession(ctx, sessionID, actor, builder.TestNow).
			Return(&queries.ReservationView{ID: resID, SessionID: sessionID}, nil)

		view, err := sut.Check(ctx, sessionID.String(), actor)
		require.NoError(t, err)
		assert.True(t, view.Reserved)
		require.NotNil(t, view.ReservationID)
		assert.Equal(t, resID, *view.ReservationID)
	})

	t.Run("not reserved", func(t *testing.T) {
		reservations, _, sut := newReservationQueries(t)
		reservations.EXPECT().FindByUserInSession(ctx, sessionID, actor, builder.TestNow).
			Return(nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound))

		view, err := sut.Check(ctx, sessionID.String(), actor)
		require.NoError(t, err)
		assert.False(t, view.Reserved)
		assert.Nil(t, view.ReservationID)
		assert.Equal(t, sessionID, view.SessionID)
	})
}

func TestReservationQueries_ListMine(t *testing.T) {
	ctx := context.Background()
	reservations, _, sut := newReservationQueries(t)
	user := uuid.New()
	reservations.EXPECT().ListByUser(ctx, user, builder.TestNow).Return([]*queries.MyReservationView{}, nil)

	views, err := sut.ListMine(ctx, user)
	require.NoError(t, err)
	assert.Empty(t, views)
}
