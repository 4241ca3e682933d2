//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"signup-engine/internal/domain/session"
	"signup-engine/internal/infra"
	"signup-engine/internal/infra/pgquery"
	"signup-engine/internal/infra/readstore"
	"signup-engine/internal/pkg/pgconv"
	"signup-engine/internal/usecase/queries"
	"signup-engine/tests/common/builder"
	readstoremock "signup-engine/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReservationReadStore_ListByUser(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := readstoremock.NewMockReservationViewQueries(ctrl)
	store := readstore.NewReservationReadStore(mockQueries, &mockDBTX{}, session.NewCalendar(builder.TestZone))

	userID := uuid.New()
	sessionID := uuid.New()
	mockQueries.EXPECT().ListActiveReservationsByUser(ctx, gomock.Any(), pgquery.ListActiveReservationsByUserParams{
		UserID: userID,
		Now:    pgconv.TimeToPgtype(builder.TestNow),
	}).Return([]pgquery.ListActiveReservationsByUserRow{{
		ID:           uuid.New(),
		SessionID:    sessionID,
		UserID:       userID,
		A:            1,
		B:            2,
		ExpiresAt:    pgconv.TimeToPgtype(time.Date(2026, 5, 11, 0, 0, 0, 0, builder.TestZone)),
		ActivityDate: pgtype.Date{Time: time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC), Valid: true},
		TimeSlot:     "19:00-21:00",
		Level:        "open",
		Fee:          150,
	}}, nil)

	views, err := store.ListByUser(ctx, userID, builder.TestNow)
	require.NoError(t, err)
	require.Len(t, views, 1)

	got := views[0]
	assert.Equal(t, queries.PoolsView{A: 1, B: 2}, got.Request)
	assert.Equal(t, sessionID, got.Session.ID)
	assert.Equal(t, time.Date(2026, 5, 10, 0, 0, 0, 0, builder.TestZone), got.Session.ActivityDate)
	assert.Equal(t, 150, got.Session.Fee)
}

func TestReservationReadStore_FindByUserInSession(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		row        pgquery.Reservations
		returnErr  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: reservation found", row: pgquery.Reservations{ID: uuid.New(), Unrestricted: 1}},
		{name: "error: none held", returnErr: pgx.ErrNoRows, expectKind: infra.KindNotFound},
		{name: "error: database error", returnErr: errDBConnectionLost, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockReservationViewQueries(ctrl)
			store := readstore.NewReservationReadStore(mockQueries, &mockDBTX{}, session.NewCalendar(builder.TestZone))

			mockQueries.EXPECT().FindActiveReservationByUser(ctx, gomock.Any(), gomock.Any()).Return(tc.row, tc.returnErr)

			view, err := store.FindByUserInSession(ctx, uuid.New(), uuid.New(), builder.TestNow)
			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.row.ID, view.ID)
			assert.Equal(t, queries.PoolsView{Unrestricted: 1}, view.Request)
		})
	}
}

func TestReservationReadStore_ListBySession(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := readstoremock.NewMockReservationViewQueries(ctrl)
	store := readstore.NewReservationReadStore(mockQueries, &mockDBTX{}, session.NewCalendar(builder.TestZone))

	sessionID := uuid.New()
	mockQueries.EXPECT().ListActiveReservationsBySession(ctx, gomock.Any(), pgquery.ListActiveReservationsBySessionParams{
		SessionID: sessionID,
		Now:       pgconv.TimeToPgtype(builder.TestNow),
	}).Return([]pgquery.Reservations{{ID: uuid.New(), SessionID: sessionID, A: 1}}, nil)

	views, err := store.ListBySession(ctx, sessionID, builder.TestNow)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, sessionID, views[0].SessionID)
}
