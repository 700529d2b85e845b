package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/sorriso-perfeito/internal/clinic"
	"github.com/BruksfildServices01/sorriso-perfeito/internal/i18n"
	"github.com/BruksfildServices01/sorriso-perfeito/internal/timezone"
)

// PublicWebHandler renders the institutional pages.
type PublicWebHandler struct {
	site  clinic.Clinic
	clock timezone.Clock
}

func NewPublicWebHandler(site clinic.Clinic, clock timezone.Clock) *PublicWebHandler {
	return &PublicWebHandler{site: site, clock: clock}
}

func (h *PublicWebHandler) Landing(c *gin.Context) {
	c.HTML(http.StatusOK, "landing.html", pageData(c, h.site, h.clock.Now(), i18n.KeyNavServices))
}

func (h *PublicWebHandler) Contact(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", pageData(c, h.site, h.clock.Now(), i18n.KeyContactTitle))
}
