package calendar

import (
	"fmt"
	"time"
)

// YearMonth identifies the month shown by the scheduler.
type YearMonth struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

func CurrentMonth(now time.Time) YearMonth {
	return YearMonth{Year: now.Year(), Month: now.Month()}
}

// Prev steps back one month, wrapping January to December of the prior year.
func (ym YearMonth) Prev() YearMonth {
	if ym.Month == time.January {
		return YearMonth{Year: ym.Year - 1, Month: time.December}
	}
	return YearMonth{Year: ym.Year, Month: ym.Month - 1}
}

// Next steps forward one month, wrapping December to January of the next year.
func (ym YearMonth) Next() YearMonth {
	if ym.Month == time.December {
		return YearMonth{Year: ym.Year + 1, Month: time.January}
	}
	return YearMonth{Year: ym.Year, Month: ym.Month + 1}
}

func (ym YearMonth) Grid() (Grid, error) {
	return BuildGrid(ym.Year, ym.Month)
}

// Bounds returns [first day 00:00, first day of next month 00:00) in loc.
func (ym YearMonth) Bounds(loc *time.Location) (time.Time, time.Time) {
	start := time.Date(ym.Year, ym.Month, 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 1, 0)
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}
