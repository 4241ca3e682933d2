//go:build unit

package readstore_test

import (
	"context"
	"errors"
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
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDBConnectionLost = errors.New("database connection lost")

func sampleSessionRow(id uuid.UUID) pgquery.Sessions {
	return pgquery.Sessions{
		ID:                   id,
		OwnerID:              uuid.New(),
		VenueID:              uuid.New(),
		ActivityDate:         pgtype.Date{Time: time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC), Valid: true},
		TimeSlot:             "19:00-21:00",
		NetHeight:            "2.24m",
		Level:                "intermediate",
		Fee:                  200,
		CapacityA:            6,
		CapacityB:            6,
		CapacityUnrestricted: 4,
		ConsumedA:            2,
		ConsumedUnrestricted: 4,
		ExpiresAt:            pgconv.TimeToPgtype(time.Date(2026, 5, 11, 0, 0, 0, 0, builder.TestZone)),
		CreatedAt:            pgconv.TimeToPgtype(builder.TestNow),
		UpdatedAt:            pgconv.TimeToPgtype(builder.TestNow),
	}
}

// =============================================================================
// FindByID Tests
// =============================================================================

func TestSessionReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	sessionID := uuid.New()

	testCases := []struct {
		name       string
		setupMock  func(*readstoremock.MockSessionViewQueries)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: session found",
			setupMock: func(mock *readstoremock.MockSessionViewQueries) {
				mock.EXPECT().GetActiveSessionByID(ctx, gomock.Any(), pgquery.GetActiveSessionByIDParams{
					ID:  sessionID,
					Now: pgconv.TimeToPgtype(builder.TestNow),
				}).Return(sampleSessionRow(sessionID), nil)
			},
		},
		{
			name: "error: session not found or expired",
			setupMock: func(mock *readstoremock.MockSessionViewQueries) {
				mock.EXPECT().GetActiveSessionByID(ctx, gomock.Any(), gomock.Any()).Return(pgquery.Sessions{}, pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockSessionViewQueries) {
				mock.EXPECT().GetActiveSessionByID(ctx, gomock.Any(), gomock.Any()).Return(pgquery.Sessions{}, errDBConnectionLost)
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockSessionViewQueries(ctrl)
			tc.setupMock(mockQueries)
			store := readstore.NewSessionReadStore(mockQueries, &mockDBTX{}, session.NewCalendar(builder.TestZone))

			view, err := store.FindByID(ctx, sessionID, builder.TestNow)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, view)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, sessionID, view.ID)
			assert.Equal(t, queries.PoolsView{A: 6, B: 6, Unrestricted: 4}, view.Capacity)
			assert.Equal(t, queries.PoolsView{A: 4, B: 6, Unrestricted: 0}, view.Available)
			assert.Equal(t, time.Date(2026, 5, 10, 0, 0, 0, 0, builder.TestZone), view.ActivityDate)
			assert.Nil(t, view.Note)
		})
	}
}

// =============================================================================
// List Tests
// =============================================================================

func TestSessionReadStore_List(t *testing.T) {
	ctx := context.Background()

	t.Run("date filter is sent as a calendar day", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockSessionViewQueries(ctrl)
		store := readstore.NewSessionReadStore(mockQueries, &mockDBTX{}, session.NewCalendar(builder.TestZone))

		// 23:30 on the 9th UTC is the 10th in the booking zone
		day := time.Date(2026, 5, 9, 23, 30, 0, 0, time.UTC)
		mockQueries.EXPECT().ListActiveSessions(ctx, gomock.Any(), pgquery.ListActiveSessionsParams{
			Now:          pgconv.TimeToPgtype(builder.TestNow),
			ActivityDate: pgtype.Date{Time: time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC), Valid: true},
		}).Return([]pgquery.Sessions{sampleSessionRow(uuid.New()), sampleSessionRow(uuid.New())}, nil)

		views, err := store.List(ctx, queries.SessionFilter{Date: &day}, builder.TestNow)
		require.NoError(t, err)
		assert.Len(t, views, 2)
	})

	t.Run("no filter sends a NULL date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockSessionViewQueries(ctrl)
		store := readstore.NewSessionReadStore(mockQueries, &mockDBTX{}, session.NewCalendar(builder.TestZone))

		mockQueries.EXPECT().ListActiveSessions(ctx, gomock.Any(), pgquery.ListActiveSessionsParams{
			Now:          pgconv.TimeToPgtype(builder.TestNow),
			ActivityDate: pgtype.Date{Valid: false},
		}).Return([]pgquery.Sessions{}, nil)

		views, err := store.List(ctx, queries.SessionFilter{}, builder.TestNow)
		require.NoError(t, err)
		assert.Empty(t, views)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockSessionViewQueries(ctrl)
		store := readstore.NewSessionReadStore(mockQueries, &mockDBTX{}, session.NewCalendar(builder.TestZone))

		mockQueries.EXPECT().ListActiveSessionsByOwner(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)

		_, err := store.ListByOwner(ctx, uuid.New(), builder.TestNow)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

// mockDBTX is a mock implementation of pgquery.DBTX
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
