package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/sorriso-perfeito/internal/calendar"
	"github.com/BruksfildServices01/sorriso-perfeito/internal/middleware"
	"github.com/BruksfildServices01/sorriso-perfeito/internal/scheduler"
)

// SessionHandler exposes the scheduling session as JSON.
type SessionHandler struct {
	svc *scheduler.Service
	log *logrus.Logger
}

func NewSessionHandler(svc *scheduler.Service, log *logrus.Logger) *SessionHandler {
	return &SessionHandler{svc: svc, log: log}
}

// ======================================================
// REQUESTS / RESPONSES
// ======================================================

type SelectDateRequest struct {
	Date string `json:"date" binding:"required"`
}

type SelectTimeRequest struct {
	Time string `json:"time" binding:"required"`
}

type SetClientRequest struct {
	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`
}

type SessionResponse struct {
	*scheduler.Session
	Grid      GridView            `json:"grid"`
	TimeSlots []calendar.TimeSlot `json:"time_slots"`
}

func (h *SessionHandler) respond(c *gin.Context, status int, sess *scheduler.Session) {
	grid, err := sess.Grid()
	if err != nil {
		writeSessionError(c, h.log, err)
		return
	}

	c.JSON(status, SessionResponse{
		Session:   sess,
		Grid:      newGridView(grid, middleware.Localizer(c), sess.SelectedDate),
		TimeSlots: calendar.DefaultTimeSlots,
	})
}

func (h *SessionHandler) result(c *gin.Context, sess *scheduler.Session, err error) {
	if err != nil {
		writeSessionError(c, h.log, err)
		return
	}
	h.respond(c, http.StatusOK, sess)
}

// ======================================================
// ENDPOINTS
// ======================================================

func (h *SessionHandler) Create(c *gin.Context) {
	sess, err := h.svc.Start(c.Request.Context())
	if err != nil {
		writeSessionError(c, h.log, err)
		return
	}
	h.respond(c, http.StatusCreated, sess)
}

func (h *SessionHandler) Get(c *gin.Context) {
	sess, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	h.result(c, sess, err)
}

func (h *SessionHandler) Prev(c *gin.Context) {
	sess, err := h.svc.Prev(c.Request.Context(), c.Param("id"))
	h.result(c, sess, err)
}

func (h *SessionHandler) Next(c *gin.Context) {
	sess, err := h.svc.Next(c.Request.Context(), c.Param("id"))
	h.result(c, sess, err)
}

func (h *SessionHandler) SelectDate(c *gin.Context) {
	var req SelectDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWith(c, http.StatusBadRequest, "invalid_request")
		return
	}

	d, err := calendar.ParseDate(req.Date)
	if err != nil {
		abortWith(c, http.StatusBadRequest, "invalid_date")
		return
	}

	sess, err := h.svc.SelectDate(c.Request.Context(), c.Param("id"), d)
	h.result(c, sess, err)
}

func (h *SessionHandler) SelectTime(c *gin.Context) {
	var req SelectTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWith(c, http.StatusBadRequest, "invalid_request")
		return
	}

	slot, err := calendar.ParseTimeSlot(req.Time)
	if err != nil {
		abortWith(c, http.StatusUnprocessableEntity, "invalid_time")
		return
	}

	sess, err := h.svc.SelectTime(c.Request.Context(), c.Param("id"), slot)
	h.result(c, sess, err)
}

func (h *SessionHandler) SetClient(c *gin.Context) {
	var req SetClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWith(c, http.StatusBadRequest, "invalid_request")
		return
	}

	sess, err := h.svc.SetClient(c.Request.Context(), c.Param("id"), req.ClientName, req.ClientPhone)
	h.result(c, sess, err)
}

// Submit answers 200 on success, 422 when the session is incomplete and
// 409/502 when the booking was refused. The body is always the session.
func (h *SessionHandler) Submit(c *gin.Context) {
	sess, err := h.svc.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeSessionError(c, h.log, err)
		return
	}

	status := http.StatusOK
	switch sess.Outcome {
	case scheduler.OutcomeInvalid:
		status = http.StatusUnprocessableEntity
	case scheduler.OutcomeFailed:
		status = http.StatusBadGateway
		if sess.ErrorCode == "time_conflict" {
			status = http.StatusConflict
		}
	}

	h.respond(c, status, sess)
}
