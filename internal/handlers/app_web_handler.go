package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/sorriso-perfeito/internal/calendar"
	"github.com/BruksfildServices01/sorriso-perfeito/internal/clinic"
	"github.com/BruksfildServices01/sorriso-perfeito/internal/domain/appointment"
	"github.com/BruksfildServices01/sorriso-perfeito/internal/i18n"
	"github.com/BruksfildServices01/sorriso-perfeito/internal/ics"
	"github.com/BruksfildServices01/sorriso-perfeito/internal/middleware"
	"github.com/BruksfildServices01/sorriso-perfeito/internal/scheduler"
	"github.com/BruksfildServices01/sorriso-perfeito/internal/timezone"
)

const (
	SessionCookie = "scheduler_session"
	schedulerPath = "/agendar"
)

// ======================================================
// HANDLER
// ======================================================

// AppWebHandler serves the scheduler page. Every form posts back and is
// redirected to the page (post/redirect/get); the session id lives in a
// cookie.
type AppWebHandler struct {
	svc        *scheduler.Service
	site       clinic.Clinic
	clock      timezone.Clock
	log        *logrus.Logger
	cookieTTL  time.Duration
	secureOnly bool
}

func NewAppWebHandler(
	svc *scheduler.Service,
	site clinic.Clinic,
	clock timezone.Clock,
	log *logrus.Logger,
	cookieTTL time.Duration,
	secureOnly bool,
) *AppWebHandler {
	return &AppWebHandler{
		svc:        svc,
		site:       site,
		clock:      clock,
		log:        log,
		cookieTTL:  cookieTTL,
		secureOnly: secureOnly,
	}
}

// --------------------------------------------------
// Session cookie
// --------------------------------------------------

func (h *AppWebHandler) session(c *gin.Context) (*scheduler.Session, error) {
	id, _ := c.Cookie(SessionCookie)

	sess, err := h.svc.GetOrStart(c.Request.Context(), id)
	if err != nil {
		return nil, err
	}

	if sess.ID != id {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookie, sess.ID, int(h.cookieTTL.Seconds()), "/", "", h.secureOnly, true)
	}
	return sess, nil
}

func (h *AppWebHandler) back(c *gin.Context) {
	target := schedulerPath
	if lang := langParam(c); lang != "" {
		target += "?lang=" + url.QueryEscape(lang)
	}
	c.Redirect(http.StatusSeeOther, target)
}

func (h *AppWebHandler) fail(c *gin.Context, err error) {
	h.log.WithField("path", c.FullPath()).Errorf("scheduler page: %v", err)
	c.String(http.StatusInternalServerError, middleware.Localizer(c).T(i18n.KeyErrInternal))
}

// ======================================================
// PAGE
// ======================================================

type dayView struct {
	Day         int
	Date        string
	Placeholder bool
	Selected    bool
	Today       bool
}

type slotView struct {
	Value    string
	Selected bool
}

func (h *AppWebHandler) Page(c *gin.Context) {
	sess, err := h.session(c)
	if err != nil {
		h.fail(c, err)
		return
	}

	grid, err := sess.Grid()
	if err != nil {
		h.fail(c, err)
		return
	}

	l := middleware.Localizer(c)
	now := h.clock.Now()
	today := calendar.DateOf(now)

	weeks := make([][]dayView, 0, len(grid.Weeks))
	for _, week := range grid.Weeks {
		row := make([]dayView, 0, len(week))
		for _, cell := range week {
			if cell.IsPlaceholder() {
				row = append(row, dayView{Placeholder: true})
				continue
			}
			row = append(row, dayView{
				Day:      cell.Date.Day,
				Date:     cell.Date.String(),
				Selected: sess.IsSelected(cell.Date),
				Today:    cell.Date == today,
			})
		}
		weeks = append(weeks, row)
	}

	slots := make([]slotView, 0, len(calendar.DefaultTimeSlots))
	for _, slot := range calendar.DefaultTimeSlots {
		slots = append(slots, slotView{Value: slot.String(), Selected: slot == sess.SelectedTime})
	}

	data := pageData(c, h.site, now, i18n.KeyPageScheduleTitle)
	data["MonthLabel"] = fmt.Sprintf("%s %d", l.MonthName(grid.Month), grid.Year)
	data["Weekdays"] = l.Weekdays()
	data["Weeks"] = weeks
	data["Slots"] = slots
	data["HasDate"] = sess.SelectedDate != nil
	data["ClientName"] = sess.ClientName
	data["ClientPhone"] = sess.ClientPhone
	data["Status"] = sess.Status
	data["Success"] = sess.Outcome == scheduler.OutcomeSuccess
	data["Scheduling"] = sess.Scheduling
	data["HasBooking"] = sess.LastBooking != nil

	c.HTML(http.StatusOK, "scheduler.html", data)
}

// ======================================================
// FORM ACTIONS
// ======================================================

func (h *AppWebHandler) Prev(c *gin.Context) {
	h.apply(c, func(id string) error {
		_, err := h.svc.Prev(c.Request.Context(), id)
		return err
	})
}

func (h *AppWebHandler) Next(c *gin.Context) {
	h.apply(c, func(id string) error {
		_, err := h.svc.Next(c.Request.Context(), id)
		return err
	})
}

// SelectDay ignores dates outside the displayed month; the page is
// simply shown again.
func (h *AppWebHandler) SelectDay(c *gin.Context) {
	h.apply(c, func(id string) error {
		d, err := calendar.ParseDate(c.PostForm("date"))
		if err != nil {
			return nil
		}
		_, err = h.svc.SelectDate(c.Request.Context(), id, d)
		if errors.Is(err, scheduler.ErrDateNotDisplayed) {
			return nil
		}
		return err
	})
}

func (h *AppWebHandler) SelectTime(c *gin.Context) {
	h.apply(c, func(id string) error {
		slot, err := calendar.ParseTimeSlot(strings.TrimSpace(c.PostForm("time")))
		if err != nil {
			return nil
		}
		_, err = h.svc.SelectTime(c.Request.Context(), id, slot)
		if errors.Is(err, scheduler.ErrUnknownTimeSlot) {
			return nil
		}
		return err
	})
}

func (h *AppWebHandler) Confirm(c *gin.Context) {
	h.apply(c, func(id string) error {
		ctx := c.Request.Context()
		if _, err := h.svc.SetClient(ctx, id, c.PostForm("client_name"), c.PostForm("client_phone")); err != nil {
			return err
		}
		_, err := h.svc.Submit(ctx, id)
		if errors.Is(err, scheduler.ErrSubmissionInProgress) {
			return nil
		}
		return err
	})
}

func (h *AppWebHandler) apply(c *gin.Context, fn func(id string) error) {
	sess, err := h.session(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	if err := fn(sess.ID); err != nil {
		h.fail(c, err)
		return
	}
	h.back(c)
}

// ======================================================
// ICS
// ======================================================

func (h *AppWebHandler) Calendar(c *gin.Context) {
	sess, err := h.session(c)
	if err != nil {
		h.fail(c, err)
		return
	}

	l := middleware.Localizer(c)
	if sess.LastBooking == nil {
		c.String(http.StatusNotFound, l.T(i18n.KeyErrNoBooking))
		return
	}

	b := sess.LastBooking
	data, err := ics.Encode(ics.Event{
		ID:          fmt.Sprintf("%s-%d", sess.ID, b.DateTime.Unix()),
		Start:       b.DateTime,
		Duration:    appointment.DefaultDuration,
		Summary:     l.TData(i18n.KeyICSSummary, map[string]any{"Clinic": h.site.ShortName}),
		Location:    h.site.Contact.Address(),
		Description: b.ClientName + " - " + b.ClientPhone,
		Reminder:    "-PT2H",
	}, h.clock.Now())
	if err != nil {
		h.fail(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="consulta.ics"`)
	c.Data(http.StatusOK, ics.ContentType, data)
}
