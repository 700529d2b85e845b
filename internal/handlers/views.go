package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/sorriso-perfeito/internal/calendar"
	"github.com/BruksfildServices01/sorriso-perfeito/internal/clinic"
	"github.com/BruksfildServices01/sorriso-perfeito/internal/i18n"
	"github.com/BruksfildServices01/sorriso-perfeito/internal/middleware"
)

// ======================================================
// HTML
// ======================================================

// pageData holds what the shared header and footer need. LangParam is
// set only when the visitor chose a language with ?lang=, so links and
// forms keep that choice.
func pageData(c *gin.Context, site clinic.Clinic, now time.Time, titleKey string) gin.H {
	l := middleware.Localizer(c)
	return gin.H{
		"Lang":      l.Lang(),
		"LangParam": langParam(c),
		"Title":     l.T(titleKey),
		"T":         l.T,
		"Clinic":    site,
		"Year":      now.Year(),
	}
}

// langParam is the resolved language when ?lang= was given, else "".
func langParam(c *gin.Context) string {
	if c.Query("lang") == "" {
		return ""
	}
	return middleware.Localizer(c).Lang()
}

// ======================================================
// JSON
// ======================================================

type CellView struct {
	Day         int    `json:"day,omitempty"`
	Date        string `json:"date,omitempty"`
	Placeholder bool   `json:"placeholder"`
	Selected    bool   `json:"selected,omitempty"`
}

type GridView struct {
	Year      int          `json:"year"`
	Month     int          `json:"month"`
	MonthName string       `json:"month_name"`
	Weekdays  []string     `json:"weekdays"`
	Weeks     [][]CellView `json:"weeks"`
}

// newGridView flattens the grid; selected may be nil.
func newGridView(g calendar.Grid, l *i18n.Localizer, selected *calendar.Date) GridView {
	v := GridView{
		Year:      g.Year,
		Month:     int(g.Month),
		MonthName: l.MonthName(g.Month),
		Weekdays:  l.Weekdays(),
		Weeks:     make([][]CellView, 0, len(g.Weeks)),
	}

	for _, week := range g.Weeks {
		row := make([]CellView, 0, len(week))
		for _, cell := range week {
			if cell.IsPlaceholder() {
				row = append(row, CellView{Placeholder: true})
				continue
			}
			row = append(row, CellView{
				Day:      cell.Date.Day,
				Date:     cell.Date.String(),
				Selected: selected != nil && *selected == cell.Date,
			})
		}
		v.Weeks = append(v.Weeks, row)
	}

	return v
}
