// Package scheduler holds the appointment scheduling session: the month
// on display, the chosen day and time, the client's contact and the last
// status message.
package scheduler

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BruksfildServices01/sorriso-perfeito/internal/calendar"
	"github.com/BruksfildServices01/sorriso-perfeito/internal/domain/appointment"
)

var (
	ErrSelectionRequired    = errors.New("scheduler: select a day and a time to schedule")
	ErrContactRequired      = errors.New("scheduler: fill in your name and phone")
	ErrDateNotDisplayed     = errors.New("scheduler: date is not in the displayed month")
	ErrUnknownTimeSlot      = errors.New("scheduler: time slot is not offered")
	ErrSessionNotFound      = errors.New("scheduler: session not found")
	ErrSubmissionInProgress = errors.New("scheduler: submission already in progress")
)

// Submission outcomes.
const (
	OutcomeSuccess = "success"
	OutcomeInvalid = "invalid"
	OutcomeFailed  = "failed"
)

// Confirmation is what remains of a successful booking.
type Confirmation struct {
	DateTime      time.Time `json:"date_time"`
	ClientName    string    `json:"client_name"`
	ClientPhone   string    `json:"client_phone"`
	Message       string    `json:"message"`
	AppointmentID uint      `json:"appointment_id,omitempty"`
}

type Session struct {
	ID        string             `json:"id"`
	Displayed calendar.YearMonth `json:"displayed"`

	SelectedDate *calendar.Date    `json:"selected_date,omitempty"`
	SelectedTime calendar.TimeSlot `json:"selected_time,omitempty"`

	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`

	Status     string `json:"status"`
	Outcome    string `json:"outcome,omitempty"`
	ErrorCode  string `json:"error_code,omitempty"`
	Scheduling bool   `json:"scheduling"`

	LastBooking *Confirmation `json:"last_booking,omitempty"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// NewSession displays the month containing today.
func NewSession(id string, today time.Time) *Session {
	return &Session{
		ID:        id,
		Displayed: calendar.CurrentMonth(today),
		UpdatedAt: today,
	}
}

// ======================================================
// TRANSITIONS
// ======================================================

// NavigatePrev shows the previous month. The day selection belongs to the
// old month and is dropped; the time slot is kept.
func (s *Session) NavigatePrev() {
	s.Displayed = s.Displayed.Prev()
	s.SelectedDate = nil
}

func (s *Session) NavigateNext() {
	s.Displayed = s.Displayed.Next()
	s.SelectedDate = nil
}

func (s *Session) SelectDate(d calendar.Date) error {
	grid, err := s.Grid()
	if err != nil {
		return err
	}
	if !grid.Contains(d) {
		return fmt.Errorf("%w: %s", ErrDateNotDisplayed, d)
	}
	s.SelectedDate = &d
	return nil
}

func (s *Session) SelectTime(slot calendar.TimeSlot) error {
	if !calendar.IsOffered(slot) {
		return fmt.Errorf("%w: %q", ErrUnknownTimeSlot, string(slot))
	}
	s.SelectedTime = slot
	return nil
}

func (s *Session) SetClient(name, phone string) {
	s.ClientName = name
	s.ClientPhone = phone
}

func (s *Session) Grid() (calendar.Grid, error) {
	return s.Displayed.Grid()
}

// Validate checks the selection before the contact fields.
func (s *Session) Validate() error {
	if s.SelectedDate == nil || s.SelectedTime == "" {
		return ErrSelectionRequired
	}
	if strings.TrimSpace(s.ClientName) == "" || strings.TrimSpace(s.ClientPhone) == "" {
		return ErrContactRequired
	}
	return nil
}

// Request builds the booking payload with the chosen day and time
// interpreted in loc.
func (s *Session) Request(loc *time.Location) (appointment.Request, error) {
	if err := s.Validate(); err != nil {
		return appointment.Request{}, err
	}

	at, err := calendar.Combine(*s.SelectedDate, s.SelectedTime, loc)
	if err != nil {
		return appointment.Request{}, err
	}

	return appointment.Request{
		DateTime:    at,
		ClientName:  s.ClientName,
		ClientPhone: s.ClientPhone,
	}.Normalized(), nil
}

// IsSelected reports whether d is the selected day.
func (s *Session) IsSelected(d calendar.Date) bool {
	return s.SelectedDate != nil && *s.SelectedDate == d
}
