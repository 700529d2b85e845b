package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/sorriso-perfeito/internal/calendar"
	"github.com/BruksfildServices01/sorriso-perfeito/internal/domain/appointment"
	"github.com/BruksfildServices01/sorriso-perfeito/internal/httperr"
	"github.com/BruksfildServices01/sorriso-perfeito/internal/i18n"
	"github.com/BruksfildServices01/sorriso-perfeito/internal/middleware"
	"github.com/BruksfildServices01/sorriso-perfeito/internal/scheduler"
)

// errorKeys maps error codes to their localized message.
var errorKeys = map[string]string{
	"invalid_request":        i18n.KeyErrInvalidRequest,
	"invalid_date":           i18n.KeyErrInvalidDate,
	"invalid_time":           i18n.KeyErrInvalidTime,
	"invalid_year":           i18n.KeyErrInvalidYear,
	"invalid_month":          i18n.KeyErrInvalidMonth,
	"date_not_displayed":     i18n.KeyErrDateNotDisplayed,
	"session_not_found":      i18n.KeyErrSessionNotFound,
	"invalid_credentials":    i18n.KeyErrInvalidCreds,
	"no_booking":             i18n.KeyErrNoBooking,
	"internal_error":         i18n.KeyErrInternal,
	"agenda_unavailable":     i18n.KeyErrAgendaUnavailable,
	"appointment_not_found":  i18n.KeyErrNotFound,
	"invalid_state":          i18n.KeyErrInvalidState,
	"selection_required":     i18n.KeySelectDayAndTime,
	"contact_required":       i18n.KeyFillNameAndPhone,
	"invalid_date_or_time":   i18n.KeySelectDayAndTime,
	"time_conflict":          i18n.KeyBookingConflict,
	"booking_failed":         i18n.KeyBookingFailed,
	"booking_timeout":        i18n.KeyBookingFailed,
	"submission_in_progress": i18n.KeyPageScheduling,
}

// abortWith writes {error_code, message} in the request language.
func abortWith(c *gin.Context, status int, code string) {
	msg := code
	if key, ok := errorKeys[code]; ok {
		msg = middleware.Localizer(c).T(key)
	}
	httperr.Write(c, status, code, msg)
}

// writeSessionError maps scheduler and calendar errors to HTTP.
func writeSessionError(c *gin.Context, log *logrus.Logger, err error) {
	switch {
	case errors.Is(err, scheduler.ErrSessionNotFound):
		abortWith(c, http.StatusNotFound, "session_not_found")
	case errors.Is(err, scheduler.ErrDateNotDisplayed):
		abortWith(c, http.StatusUnprocessableEntity, "date_not_displayed")
	case errors.Is(err, scheduler.ErrUnknownTimeSlot), errors.Is(err, calendar.ErrInvalidTimeSlot):
		abortWith(c, http.StatusUnprocessableEntity, "invalid_time")
	case errors.Is(err, calendar.ErrInvalidDate):
		abortWith(c, http.StatusBadRequest, "invalid_date")
	case errors.Is(err, calendar.ErrInvalidMonth):
		abortWith(c, http.StatusBadRequest, "invalid_month")
	case errors.Is(err, scheduler.ErrSubmissionInProgress):
		abortWith(c, http.StatusConflict, "submission_in_progress")
	default:
		log.WithField("path", c.FullPath()).Errorf("scheduler error: %v", err)
		abortWith(c, http.StatusInternalServerError, "internal_error")
	}
}

// writeBookingError maps a Booker failure. Rejections keep the message
// the booker produced.
func writeBookingError(c *gin.Context, log *logrus.Logger, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		abortWith(c, http.StatusGatewayTimeout, "booking_timeout")
		return
	}

	var rej *appointment.RejectedError
	if !errors.As(err, &rej) {
		log.Errorf("booking error: %v", err)
		abortWith(c, http.StatusInternalServerError, "booking_failed")
		return
	}

	status := http.StatusBadGateway
	switch rej.Code {
	case "time_conflict":
		status = http.StatusConflict
	case "invalid_date_or_time", "contact_required":
		status = http.StatusUnprocessableEntity
	}
	httperr.Write(c, status, rej.Code, rej.Error())
}

// writeAppointmentError maps staff agenda errors.
func writeAppointmentError(c *gin.Context, log *logrus.Logger, err error) {
	switch code := httperr.CodeOf(err); code {
	case "appointment_not_found":
		abortWith(c, http.StatusNotFound, code)
	case "invalid_state":
		abortWith(c, http.StatusConflict, code)
	default:
		log.Errorf("appointment error: %v", err)
		abortWith(c, http.StatusInternalServerError, "internal_error")
	}
}
