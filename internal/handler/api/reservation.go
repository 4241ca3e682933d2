package api

import (
	"net/http"

	reqdto "signup-engine/internal/handler/dto/request"
	resdto "signup-engine/internal/handler/dto/response"
	"signup-engine/internal/handler/httperr"
	"signup-engine/internal/handler/middleware"
	"signup-engine/internal/usecase/commands"
	"signup-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	coordinator commands.ReservationCoordinator
	q           queries.ReservationQueries
}

func NewReservationHandler(coordinator commands.ReservationCoordinator, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{coordinator: coordinator, q: q}
}

// @Summary Create reservation
// @Description Reserve seats from the A, B and unrestricted pools of a session
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResultResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.coordinator.Create(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		httperr.AbortWithAppError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReservationResult(result))
}

// @Summary List my reservations
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.MyReservationResponse
// @Failure 401 {object} httperr.Response
// @Router /reservations [get]
func (h *ReservationHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Unauthorized", nil)
		return
	}
	views, err := h.q.ListMine(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMyReservationViews(views))
}

// @Summary Edit reservation
// @Description Change the seat counts of an owned reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.EditReservationRequest true "Edit reservation request"
// @Success 200 {object} resdto.ReservationResultResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id} [patch]
func (h *ReservationHandler) Edit(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Unauthorized", nil)
		return
	}
	var req reqdto.EditReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.coordinator.Edit(c.Request.Context(), userID, req.ToInput(c.Param("id")))
	if err != nil {
		httperr.AbortWithAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationResult(result))
}

// @Summary Cancel reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.CancelReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Unauthorized", nil)
		return
	}
	result, err := h.coordinator.Cancel(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		httperr.AbortWithAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCancelResult(result))
}
