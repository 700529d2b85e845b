package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/sorriso-perfeito/internal/calendar"
)

// --------------------------------------------------
// Clinic-local parsing
// --------------------------------------------------

// parseYearMonth reads ?year=&month=, defaulting each to now's value.
// Month is 1..12 and year 1..9999.
func parseYearMonth(c *gin.Context, now time.Time) (calendar.YearMonth, string, bool) {
	ym := calendar.CurrentMonth(now)

	if s := strings.TrimSpace(c.Query("year")); s != "" {
		y, err := strconv.Atoi(s)
		if err != nil || y < 1 || y > 9999 {
			return ym, "invalid_year", false
		}
		ym.Year = y
	}

	if s := strings.TrimSpace(c.Query("month")); s != "" {
		m, err := strconv.Atoi(s)
		if err != nil || m < 1 || m > 12 {
			return ym, "invalid_month", false
		}
		ym.Month = time.Month(m)
	}

	return ym, "", true
}

// parseDateTimeInClinic accepts RFC 3339 or a datetime-local value
// ("2006-01-02T15:04"), the latter read in loc.
func parseDateTimeInClinic(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(loc), nil
	}
	return time.ParseInLocation("2006-01-02T15:04", s, loc)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
