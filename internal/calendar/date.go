package calendar

import (
	"errors"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

var (
	ErrInvalidMonth = errors.New("calendar: month out of range")
	ErrInvalidDate  = errors.New("calendar: invalid date")
)

// Date is a concrete day of a month, independent of any time zone.
type Date struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Day   int        `json:"day"`
}

// NewDate validates the fields against the Gregorian calendar.
func NewDate(year int, month time.Month, day int) (Date, error) {
	if err := checkMonth(month); err != nil {
		return Date{}, err
	}
	if day < 1 || day > DaysIn(year, month) {
		return Date{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, int(month), day)
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return DateOf(t), nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Weekday is computed in UTC so zone offsets can never shift the day.
func (d Date) Weekday() time.Weekday {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Weekday()
}

func (d Date) YearMonth() YearMonth {
	return YearMonth{Year: d.Year, Month: d.Month}
}

func (d Date) IsZero() bool {
	return d == Date{}
}

// IsLeapYear follows the Gregorian rule.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysIn returns the number of days of month in year.
func DaysIn(year int, month time.Month) int {
	switch month {
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

func checkMonth(month time.Month) error {
	if month < time.January || month > time.December {
		return fmt.Errorf("%w: %d", ErrInvalidMonth, int(month))
	}
	return nil
}
