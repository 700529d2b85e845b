package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/sorriso-perfeito/internal/config"
	"github.com/BruksfildServices01/sorriso-perfeito/internal/middleware"
)

type MeHandler struct {
	config *config.Config
}

func NewMeHandler(cfg *config.Config) *MeHandler {
	return &MeHandler{config: cfg}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"email":        middleware.StaffEmail(c),
		"role":         c.GetString(middleware.ContextStaffRole),
		"booking_mode": h.config.BookingMode,
		"timezone":     h.config.ClinicTimezone,
	})
}
