//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"signup-engine/internal/domain/capacity"
	"signup-engine/internal/domain/user"
	"signup-engine/internal/handler/api"
	resdto "signup-engine/internal/handler/dto/response"
	"signup-engine/internal/usecase/commands"
	"signup-engine/internal/usecase/queries"
	"signup-engine/tests/common/builder"
	"signup-engine/tests/common/httptest"
	"signup-engine/tests/common/testutil"
	commandsmock "signup-engine/tests/mock/commands"
	queriesmock "signup-engine/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SessionHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockCommands     *commandsmock.MockSessionCommands
	mockQueries      *queriesmock.MockSessionQueries
	mockReservations *queriesmock.MockReservationQueries
	handler          *api.SessionHandler
	userID           uuid.UUID
}

func (s *SessionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSessionCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSessionQueries(s.mockCtrl)
	s.mockReservations = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewSessionHandler(s.mockCommands, s.mockQueries, s.mockReservations)
	s.userID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleMember)
		c.Next()
	}

	s.router.POST("/sessions", authMiddleware, s.handler.Create)
	s.router.GET("/sessions", s.handler.List)
	s.router.GET("/sessions/mine", authMiddleware, s.handler.ListMine)
	s.router.GET("/sessions/:id", authMiddleware, s.handler.Get)
	s.router.PATCH("/sessions/:id", authMiddleware, s.handler.Edit)
	s.router.DELETE("/sessions/:id", authMiddleware, s.handler.Delete)
	s.router.GET("/sessions/:id/reservations", authMiddleware, s.handler.ListReservations)
	s.router.GET("/sessions/:id/reservations/check", authMiddleware, s.handler.CheckReservation)
	s.router.DELETE("/admin/sessions/:id", authMiddleware, s.handler.DeleteAsAdmin)
}

func (s *SessionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSessionHandlerSuite(t *testing.T) {
	suite.Run(t, new(SessionHandlerTestSuite))
}

type testCaseSession struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *SessionHandlerTestSuite) TestCreate() {
	url := "/sessions"
	sb := builder.NewSessionBuilder().WithOwnerID(uuid.New())
	reqBody := sb.BuildCreateRequestDTO()
	expected := &commands.SessionResult{Session: sb.BuildSnapshot()}

	s.Run("success: returns 201 with the new session", func() {
		s.mockCommands.EXPECT().
			Create(gomock.Any(), s.userID, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, in commands.CreateSessionInput) (*commands.SessionResult, error) {
				s.Equal(reqBody.ActivityDate, in.ActivityDate)
				s.Equal(capacity.Pools{A: 6, B: 6, Unrestricted: 4}, in.Capacity)
				return expected, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.SessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(sb.ID, body.ID)
		s.Equal("2026-05-10", body.ActivityDate)
		s.Equal(resdto.PoolsResponse{A: 6, B: 6, Unrestricted: 4}, body.Capacity)
	})

	validation := []testCaseSession{
		{name: "missing venue_id", mutate: testutil.Field("venue_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing activity_date", mutate: testutil.Field("activity_date", nil), expectCode: http.StatusBadRequest},
		{name: "missing time_slot", mutate: testutil.Field("time_slot", nil), expectCode: http.StatusBadRequest},
		{name: "level too long", mutate: testutil.Field("level", strings.Repeat("x", 51)), expectCode: http.StatusBadRequest},
		{name: "negative fee", mutate: testutil.Field("fee", -1), expectCode: http.StatusBadRequest},
		{name: "negative capacity", mutate: testutil.NestedField("capacity", "a", -1), expectCode: http.StatusBadRequest},
		{name: "capacity beyond int32", mutate: testutil.NestedField("capacity", "unrestricted", 3000000000), expectCode: http.StatusBadRequest},
		{name: "fee over the limit", mutate: testutil.Field("fee", 1000001), expectCode: http.StatusBadRequest},
	}

	for _, tc := range validation {
		s.Run("error: "+tc.name, func() {
			requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
		})
	}

	s.Run("error: 400 when domain validation rejects the date", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrInvalidSessionDetails).Times(1)

		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("activity_date", "2026-13-40"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid session details")
	})
}

// ================================================================================
// TestList / TestGet
// ================================================================================

func (s *SessionHandlerTestSuite) TestList() {
	s.Run("success: passes the date filter through", func() {
		view := builder.NewSessionBuilder().BuildView()
		s.mockQueries.EXPECT().List(gomock.Any(), "2026-05-10").
			Return([]*queries.SessionView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/sessions?date=2026-05-10", nil, "")

		var body []resdto.SessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(view.ID, body[0].ID)
	})

	s.Run("error: 400 on a malformed date", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), "yesterday").
			Return(nil, queries.ErrInvalidFilter).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/sessions?date=yesterday", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid filter")
	})
}

func (s *SessionHandlerTestSuite) TestGet() {
	s.Run("success", func() {
		view := builder.NewSessionBuilder().WithConsumed(capacity.Pools{A: 2}).BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID.String()).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/sessions/"+view.ID.String(), nil, "bearer-token")

		var body resdto.SessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(resdto.PoolsResponse{A: 4, B: 6, Unrestricted: 4}, body.Available)
		s.Equal(resdto.PoolsResponse{A: 2}, body.Consumed)
	})

	s.Run("error: 404 for an expired session", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(nil, commands.ErrNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/sessions/"+uuid.NewString(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}

// ================================================================================
// TestEdit
// ================================================================================

func (s *SessionHandlerTestSuite) TestEdit() {
	sessionID := uuid.NewString()
	url := "/sessions/" + sessionID

	s.Run("success: reports propagated reservations", func() {
		snapshot := builder.NewSessionBuilder().BuildSnapshot()
		s.mockCommands.EXPECT().
			Edit(gomock.Any(), s.userID, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, in commands.EditSessionInput) (*commands.SessionResult, error) {
				s.Equal(sessionID, in.SessionID)
				s.Require().NotNil(in.ActivityDate)
				s.Equal("2026-05-12", *in.ActivityDate)
				s.Require().NotNil(in.Capacity.B)
				s.Equal(8, *in.Capacity.B)
				s.Nil(in.Capacity.A)
				s.Nil(in.Fee)
				return &commands.SessionResult{Session: snapshot, UpdatedReservations: 3}, nil
			}).Times(1)

		body := map[string]any{"activity_date": "2026-05-12", "capacity": map[string]any{"b": 8}}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "bearer-token")

		var resp resdto.SessionEditResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(int64(3), resp.UpdatedReservations)
		s.Equal(snapshot.ID, resp.Session.ID)
	})

	s.Run("error: 409 when shrinking below consumed seats", func() {
		s.mockCommands.EXPECT().Edit(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrExceedsCategoryCapacity).Times(1)

		body := map[string]any{"capacity": map[string]any{"a": 0}}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, "EXCEEDS_CATEGORY_CAPACITY")
	})

	s.Run("error: 403 for a session owned by someone else", func() {
		s.mockCommands.EXPECT().Edit(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrUnauthorized).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"fee": 100}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}

// ================================================================================
// TestDelete
// ================================================================================

func (s *SessionHandlerTestSuite) TestDelete() {
	s.Run("success: owner delete", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Delete(gomock.Any(), s.userID, id.String()).
			Return(&commands.DeleteSessionResult{SessionID: id, RemovedReservations: 2}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/sessions/"+id.String(), nil, "bearer-token")

		var body resdto.DeleteSessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(id, body.SessionID)
		s.Equal(int64(2), body.RemovedReservations)
	})

	s.Run("success: admin delete skips ownership", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().DeleteAsAdmin(gomock.Any(), id.String()).
			Return(&commands.DeleteSessionResult{SessionID: id}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/sessions/"+id.String(), nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 for a malformed id", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), gomock.Any(), "not-a-uuid").
			Return(nil, commands.ErrInvalidIdentifier).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/sessions/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid identifier")
	})
}

// ================================================================================
// TestReservationsOfSession
// ================================================================================

func (s *SessionHandlerTestSuite) TestReservationsOfSession() {
	sessionID := uuid.NewString()

	s.Run("success: owner lists reservations", func() {
		view := builder.NewReservationBuilder().BuildView()
		s.mockReservations.EXPECT().ListBySession(gomock.Any(), sessionID, s.userID).
			Return([]*queries.ReservationView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/sessions/"+sessionID+"/reservations", nil, "bearer-token")

		var body []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(resdto.PoolsResponse{A: 1, B: 1}, body[0].Request)
	})

	s.Run("success: check reports the held reservation", func() {
		reservationID := uuid.New()
		parsed := uuid.MustParse(sessionID)
		s.mockReservations.EXPECT().Check(gomock.Any(), sessionID, s.userID).
			Return(&queries.CheckView{SessionID: parsed, Reserved: true, ReservationID: &reservationID}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/sessions/"+sessionID+"/reservations/check", nil, "bearer-token")

		var body resdto.CheckReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Reserved)
		s.Require().NotNil(body.ReservationID)
		s.Equal(reservationID, *body.ReservationID)
	})
}
