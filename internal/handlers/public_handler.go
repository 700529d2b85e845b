package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/sorriso-perfeito/internal/calendar"
	"github.com/BruksfildServices01/sorriso-perfeito/internal/clinic"
	"github.com/BruksfildServices01/sorriso-perfeito/internal/httpresp"
	"github.com/BruksfildServices01/sorriso-perfeito/internal/middleware"
	"github.com/BruksfildServices01/sorriso-perfeito/internal/timezone"
)

// PublicHandler serves read-only JSON for the public site.
type PublicHandler struct {
	site  clinic.Clinic
	clock timezone.Clock
}

func NewPublicHandler(site clinic.Clinic, clock timezone.Clock) *PublicHandler {
	return &PublicHandler{site: site, clock: clock}
}

func (h *PublicHandler) Clinic(c *gin.Context) {
	httpresp.OK(c, h.site)
}

// Calendar returns the grid of ?year=&month= (default: current month).
func (h *PublicHandler) Calendar(c *gin.Context) {
	l := middleware.Localizer(c)

	ym, code, ok := parseYearMonth(c, h.clock.Now())
	if !ok {
		abortWith(c, http.StatusBadRequest, code)
		return
	}

	grid, err := ym.Grid()
	if err != nil {
		abortWith(c, http.StatusBadRequest, "invalid_month")
		return
	}

	c.JSON(http.StatusOK, newGridView(grid, l, nil))
}

func (h *PublicHandler) TimeSlots(c *gin.Context) {
	httpresp.List(c, calendar.DefaultTimeSlots)
}
