package api

import (
	"errors"
	"net/http"

	reqdto "signup-engine/internal/handler/dto/request"
	resdto "signup-engine/internal/handler/dto/response"
	"signup-engine/internal/handler/httperr"
	"signup-engine/internal/handler/middleware"
	"signup-engine/internal/usecase/commands"
	"signup-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errMissingIdentity = errors.New("authenticated user missing from context")

type SessionHandler struct {
	cmds         commands.SessionCommands
	q            queries.SessionQueries
	reservations queries.ReservationQueries
}

func NewSessionHandler(cmds commands.SessionCommands, q queries.SessionQueries, reservations queries.ReservationQueries) *SessionHandler {
	return &SessionHandler{cmds: cmds, q: q, reservations: reservations}
}

// @Summary Create session
// @Description Publish a new session owned by the caller
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateSessionRequest true "Create session request"
// @Success 201 {object} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /sessions [post]
func (h *SessionHandler) Create(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), ownerID, req.ToInput())
	if err != nil {
		httperr.AbortWithAppError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSessionSnapshot(&result.Session))
}

// @Summary List sessions
// @Description List live sessions, optionally for one activity date
// @Tags sessions
// @Produce json
// @Param date query string false "Activity date (YYYY-MM-DD)"
// @Success 200 {array} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Router /sessions [get]
func (h *SessionHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context(), c.Query("date"))
	if err != nil {
		httperr.AbortWithAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSessionViews(views))
}

// @Summary List my sessions
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.SessionResponse
// @Failure 401 {object} httperr.Response
// @Router /sessions/mine [get]
func (h *SessionHandler) ListMine(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Unauthorized", nil)
		return
	}
	views, err := h.q.ListMine(c.Request.Context(), ownerID)
	if err != nil {
		httperr.AbortWithAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSessionViews(views))
}

// @Summary Get session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /sessions/{id} [get]
func (h *SessionHandler) Get(c *gin.Context) {
	view, err := h.q.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.AbortWithAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSessionView(view))
}

// @Summary Edit session
// @Description Partially update a session; a date change moves the expiry of its reservations
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param request body reqdto.EditSessionRequest true "Edit session request"
// @Success 200 {object} resdto.SessionEditResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /sessions/{id} [patch]
func (h *SessionHandler) Edit(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Unauthorized", nil)
		return
	}
	var req reqdto.EditSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Edit(c.Request.Context(), actorID, req.ToInput(c.Param("id")))
	if err != nil {
		httperr.AbortWithAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSessionResult(result))
}

// @Summary Delete session
// @Description Delete an owned session together with its reservations
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.DeleteSessionResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /sessions/{id} [delete]
func (h *SessionHandler) Delete(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Unauthorized", nil)
		return
	}
	result, err := h.cmds.Delete(c.Request.Context(), actorID, c.Param("id"))
	if err != nil {
		httperr.AbortWithAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDeleteSessionResult(result))
}

// @Summary Delete any session
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.DeleteSessionResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/sessions/{id} [delete]
func (h *SessionHandler) DeleteAsAdmin(c *gin.Context) {
	result, err := h.cmds.DeleteAsAdmin(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.AbortWithAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDeleteSessionResult(result))
}

// @Summary List session reservations
// @Description Reservations of a session, visible to its owner
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /sessions/{id}/reservations [get]
func (h *SessionHandler) ListReservations(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Unauthorized", nil)
		return
	}
	views, err := h.reservations.ListBySession(c.Request.Context(), c.Param("id"), actorID)
	if err != nil {
		httperr.AbortWithAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// @Summary Check reservation
// @Description Whether the caller holds a reservation in the session
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.CheckReservationResponse
// @Failure 400 {object} httperr.Response
// @Router /sessions/{id}/reservations/check [get]
func (h *SessionHandler) CheckReservation(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Unauthorized", nil)
		return
	}
	view, err := h.reservations.Check(c.Request.Context(), c.Param("id"), actorID)
	if err != nil {
		httperr.AbortWithAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckView(view))
}
