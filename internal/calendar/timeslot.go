package calendar

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidTimeSlot = errors.New("calendar: invalid time slot")

// TimeSlot is a wall-clock time of day in HH:MM form.
type TimeSlot string

// DefaultTimeSlots are the bookable times offered to every patient.
// They are not derived from availability.
var DefaultTimeSlots = []TimeSlot{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00"}

// ParseTimeSlot accepts HH:MM with 00 <= HH <= 23 and 00 <= MM <= 59.
func ParseTimeSlot(s string) (TimeSlot, error) {
	if _, err := time.Parse("15:04", s); err != nil || len(s) != 5 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeSlot, s)
	}
	return TimeSlot(s), nil
}

// Clock returns the hour and minute of the slot.
func (s TimeSlot) Clock() (hour, minute int, err error) {
	t, err := time.Parse("15:04", string(s))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeSlot, string(s))
	}
	return t.Hour(), t.Minute(), nil
}

func (s TimeSlot) String() string {
	return string(s)
}

// IsOffered reports whether s belongs to DefaultTimeSlots.
func IsOffered(s TimeSlot) bool {
	for _, slot := range DefaultTimeSlots {
		if slot == s {
			return true
		}
	}
	return false
}

// Combine applies slot to date in loc and returns the instant. The
// calendar fields of the result in loc always equal date.
func Combine(date Date, slot TimeSlot, loc *time.Location) (time.Time, error) {
	if _, err := NewDate(date.Year, date.Month, date.Day); err != nil {
		return time.Time{}, err
	}
	hour, minute, err := slot.Clock()
	if err != nil {
		return time.Time{}, err
	}
	if loc == nil {
		loc = time.Local
	}
	return time.Date(date.Year, date.Month, date.Day, hour, minute, 0, 0, loc), nil
}
