package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/sorriso-perfeito/internal/calendar"
	"github.com/BruksfildServices01/sorriso-perfeito/internal/domain/appointment"
	"github.com/BruksfildServices01/sorriso-perfeito/internal/httpresp"
	"github.com/BruksfildServices01/sorriso-perfeito/internal/middleware"
	"github.com/BruksfildServices01/sorriso-perfeito/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/sorriso-perfeito/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

// AppointmentHandler serves direct booking and, when a database is
// configured, the staff agenda. The agenda use cases are nil otherwise.
type AppointmentHandler struct {
	booker        appointment.Booker
	submitTimeout time.Duration
	loc           *time.Location
	clock         timezone.Clock
	log           *logrus.Logger

	completeUC    *ucAppointment.CompleteAppointment
	cancelUC      *ucAppointment.CancelAppointment
	listByDateUC  *ucAppointment.ListAppointmentsByDate
	listByMonthUC *ucAppointment.ListAppointmentsByMonth
}

func NewAppointmentHandler(
	booker appointment.Booker,
	submitTimeout time.Duration,
	loc *time.Location,
	clock timezone.Clock,
	log *logrus.Logger,
	completeUC *ucAppointment.CompleteAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	listByDateUC *ucAppointment.ListAppointmentsByDate,
	listByMonthUC *ucAppointment.ListAppointmentsByMonth,
) *AppointmentHandler {
	return &AppointmentHandler{
		booker:        booker,
		submitTimeout: submitTimeout,
		loc:           loc,
		clock:         clock,
		log:           log,
		completeUC:    completeUC,
		cancelUC:      cancelUC,
		listByDateUC:  listByDateUC,
		listByMonthUC: listByMonthUC,
	}
}

func (h *AppointmentHandler) agendaEnabled(c *gin.Context) bool {
	if h.listByMonthUC == nil {
		abortWith(c, http.StatusServiceUnavailable, "agenda_unavailable")
		return false
	}
	return true
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	DateTime    string `json:"dateTime" binding:"required"`
	ClientName  string `json:"clientName"`
	ClientPhone string `json:"clientPhone"`
}

// ======================================================
// BOOK (public)
// ======================================================

// Book submits a free date and time without a scheduling session.
func (h *AppointmentHandler) Book(c *gin.Context) {
	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWith(c, http.StatusBadRequest, "invalid_request")
		return
	}

	at, err := parseDateTimeInClinic(req.DateTime, h.loc)
	if err != nil {
		abortWith(c, http.StatusBadRequest, "invalid_date_or_time")
		return
	}

	bookReq := appointment.Request{
		DateTime:    at,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
	}.Normalized()

	// Every booker gets a complete request, the simulated one included.
	if bookReq.ClientName == "" || bookReq.ClientPhone == "" {
		abortWith(c, http.StatusUnprocessableEntity, "contact_required")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.submitTimeout)
	defer cancel()

	res, err := h.booker.Book(ctx, bookReq)
	if err != nil {
		writeBookingError(c, h.log, err)
		return
	}
	if res == nil {
		abortWith(c, http.StatusBadGateway, "booking_failed")
		return
	}

	httpresp.Created(c, res)
}

// ======================================================
// AGENDA (staff)
// ======================================================

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	if !h.agendaEnabled(c) {
		return
	}

	ym, code, ok := parseYearMonth(c, h.clock.Now())
	if !ok {
		abortWith(c, http.StatusBadRequest, code)
		return
	}

	agenda, err := h.listByMonthUC.Execute(c.Request.Context(), ym)
	if err != nil {
		writeAppointmentError(c, h.log, err)
		return
	}

	httpresp.OK(c, agenda)
}

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	if !h.agendaEnabled(c) {
		return
	}

	date := calendar.DateOf(h.clock.Now())
	if s := c.Query("date"); s != "" {
		d, err := calendar.ParseDate(s)
		if err != nil {
			abortWith(c, http.StatusBadRequest, "invalid_date")
			return
		}
		date = d
	}

	items, err := h.listByDateUC.Execute(c.Request.Context(), date)
	if err != nil {
		writeAppointmentError(c, h.log, err)
		return
	}

	httpresp.List(c, items)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	if !h.agendaEnabled(c) {
		return
	}

	id, ok := parseID(c)
	if !ok {
		abortWith(c, http.StatusBadRequest, "invalid_request")
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), middleware.StaffEmail(c), id)
	if err != nil {
		writeAppointmentError(c, h.log, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	if !h.agendaEnabled(c) {
		return
	}

	id, ok := parseID(c)
	if !ok {
		abortWith(c, http.StatusBadRequest, "invalid_request")
		return
	}

	ap, err := h.completeUC.Execute(c.Request.Context(), middleware.StaffEmail(c), id)
	if err != nil {
		writeAppointmentError(c, h.log, err)
		return
	}

	httpresp.OK(c, ap)
}
