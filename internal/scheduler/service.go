package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/sorriso-perfeito/internal/calendar"
	"github.com/BruksfildServices01/sorriso-perfeito/internal/domain/appointment"
	"github.com/BruksfildServices01/sorriso-perfeito/internal/httperr"
	"github.com/BruksfildServices01/sorriso-perfeito/internal/i18n"
	"github.com/BruksfildServices01/sorriso-perfeito/internal/metrics"
	"github.com/BruksfildServices01/sorriso-perfeito/internal/timezone"
)

type ServiceConfig struct {
	Location      *time.Location
	SubmitTimeout time.Duration
	Clock         timezone.Clock
	Translator    *i18n.Translator
	Metrics       *metrics.SchedulerMetrics
	Logger        *logrus.Logger
}

// Service loads a session, applies one transition and saves it back.
type Service struct {
	store  Store
	booker appointment.Booker

	loc           *time.Location
	submitTimeout time.Duration
	clock         timezone.Clock
	tr            *i18n.Translator
	metrics       *metrics.SchedulerMetrics
	log           *logrus.Logger
}

func NewService(store Store, booker appointment.Booker, cfg ServiceConfig) *Service {
	s := &Service{
		store:         store,
		booker:        booker,
		loc:           cfg.Location,
		submitTimeout: cfg.SubmitTimeout,
		clock:         cfg.Clock,
		tr:            cfg.Translator,
		metrics:       cfg.Metrics,
		log:           cfg.Logger,
	}
	if s.loc == nil {
		s.loc = timezone.Location(timezone.DefaultTimezone)
	}
	if s.clock == nil {
		s.clock = timezone.ClinicClock{Loc: s.loc}
	}
	if s.submitTimeout <= 0 {
		s.submitTimeout = 10 * time.Second
	}
	if s.log == nil {
		s.log = logrus.StandardLogger()
	}
	return s
}

func (s *Service) Location() *time.Location {
	return s.loc
}

// ======================================================
// SESSION LIFECYCLE
// ======================================================

func (s *Service) Start(ctx context.Context) (*Session, error) {
	sess := NewSession(uuid.NewString(), s.clock.Now().In(s.loc))
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return sess, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Session, error) {
	return s.store.Load(ctx, id)
}

// GetOrStart returns the session or a fresh one when id is unknown.
func (s *Service) GetOrStart(ctx context.Context, id string) (*Session, error) {
	if id != "" {
		sess, err := s.store.Load(ctx, id)
		if err == nil {
			return sess, nil
		}
		if !errors.Is(err, ErrSessionNotFound) {
			return nil, err
		}
	}
	return s.Start(ctx)
}

func (s *Service) update(ctx context.Context, id string, fn func(*Session) error) (*Session, error) {
	sess, err := s.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(sess); err != nil {
		return sess, err
	}
	sess.UpdatedAt = s.clock.Now()
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return sess, nil
}

// ======================================================
// TRANSITIONS
// ======================================================

func (s *Service) Prev(ctx context.Context, id string) (*Session, error) {
	s.metrics.ObserveNavigation("prev")
	return s.update(ctx, id, func(sess *Session) error {
		sess.NavigatePrev()
		return nil
	})
}

func (s *Service) Next(ctx context.Context, id string) (*Session, error) {
	s.metrics.ObserveNavigation("next")
	return s.update(ctx, id, func(sess *Session) error {
		sess.NavigateNext()
		return nil
	})
}

func (s *Service) SelectDate(ctx context.Context, id string, d calendar.Date) (*Session, error) {
	return s.update(ctx, id, func(sess *Session) error {
		return sess.SelectDate(d)
	})
}

func (s *Service) SelectTime(ctx context.Context, id string, slot calendar.TimeSlot) (*Session, error) {
	return s.update(ctx, id, func(sess *Session) error {
		return sess.SelectTime(slot)
	})
}

func (s *Service) SetClient(ctx context.Context, id, name, phone string) (*Session, error) {
	return s.update(ctx, id, func(sess *Session) error {
		sess.SetClient(name, phone)
		return nil
	})
}

// ======================================================
// SUBMIT
// ======================================================

// Submit validates the session and, only when it is complete, calls the
// booker once. The outcome is reported through the session's Status; the
// returned error is reserved for store failures, unknown sessions and a
// concurrent submit.
func (s *Service) Submit(ctx context.Context, id string) (*Session, error) {
	l := s.tr.FromContext(ctx)

	sess, err := s.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	if sess.Scheduling && s.clock.Now().Sub(sess.UpdatedAt) < s.submitTimeout {
		return sess, ErrSubmissionInProgress
	}

	req, err := sess.Request(s.loc)
	if err != nil {
		sess.Outcome = OutcomeInvalid
		sess.ErrorCode = validationCode(err)
		sess.Status = validationMessage(l, err)
		s.metrics.ObserveSubmission(OutcomeInvalid)
		return s.save(ctx, sess)
	}

	sess.Status = ""
	sess.Outcome = ""
	sess.ErrorCode = ""
	sess.Scheduling = true
	if _, err := s.save(ctx, sess); err != nil {
		return nil, err
	}

	bookCtx, cancel := context.WithTimeout(ctx, s.submitTimeout)
	defer cancel()

	started := time.Now()
	res, err := s.booker.Book(bookCtx, req)
	elapsed := time.Since(started).Seconds()

	sess.Scheduling = false
	if err == nil && res == nil {
		err = appointment.Reject("booking_failed", l.T(i18n.KeyBookingFailed))
	}

	switch {
	case err != nil:
		sess.Outcome = OutcomeFailed
		sess.ErrorCode = httperr.CodeOf(err)
		sess.Status = err.Error()
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			sess.ErrorCode = "booking_timeout"
			sess.Status = l.T(i18n.KeyBookingFailed)
		}
		s.metrics.ObserveSubmission(OutcomeFailed)
		s.metrics.ObserveBookingLatency(OutcomeFailed, elapsed)
		s.log.WithFields(logrus.Fields{
			"component":  "scheduler",
			"session_id": sess.ID,
		}).Warnf("booking failed: %v", err)

	default:
		sess.Outcome = OutcomeSuccess
		sess.Status = res.Message
		sess.LastBooking = &Confirmation{
			DateTime:    req.DateTime,
			ClientName:  req.ClientName,
			ClientPhone: req.ClientPhone,
			Message:     res.Message,
		}
		if res.Appointment != nil {
			sess.LastBooking.AppointmentID = res.Appointment.ID
		}
		s.metrics.ObserveSubmission(OutcomeSuccess)
		s.metrics.ObserveBookingLatency(OutcomeSuccess, elapsed)
	}

	// Persist the outcome even when the request was cancelled meanwhile.
	return s.save(context.WithoutCancel(ctx), sess)
}

func (s *Service) save(ctx context.Context, sess *Session) (*Session, error) {
	sess.UpdatedAt = s.clock.Now()
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return sess, nil
}

func validationCode(err error) string {
	switch {
	case errors.Is(err, ErrSelectionRequired):
		return "selection_required"
	case errors.Is(err, ErrContactRequired):
		return "contact_required"
	default:
		return "invalid_request"
	}
}

func validationMessage(l *i18n.Localizer, err error) string {
	switch {
	case errors.Is(err, ErrSelectionRequired):
		return l.T(i18n.KeySelectDayAndTime)
	case errors.Is(err, ErrContactRequired):
		return l.T(i18n.KeyFillNameAndPhone)
	default:
		return l.T(i18n.KeyErrInvalidRequest)
	}
}
