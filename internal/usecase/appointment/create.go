package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/sorriso-perfeito/internal/audit"
	domain "github.com/BruksfildServices01/sorriso-perfeito/internal/domain/appointment"
	"github.com/BruksfildServices01/sorriso-perfeito/internal/httperr"
	"github.com/BruksfildServices01/sorriso-perfeito/internal/i18n"
	"github.com/BruksfildServices01/sorriso-perfeito/internal/models"
)

// ======================================================
// USE CASE
// ======================================================

// CreateAppointment is the store-backed Booker. One consultation occupies
// [DateTime, DateTime+DefaultDuration) and may not overlap another
// scheduled one.
type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	tr    *i18n.Translator
	log   *logrus.Logger
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tr *i18n.Translator,
	log *logrus.Logger,
) *CreateAppointment {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
		tr:    tr,
		log:   log,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Book(
	ctx context.Context,
	req domain.Request,
) (*domain.Result, error) {

	l := uc.tr.FromContext(ctx)
	req = req.Normalized()

	// --------------------------------------------------
	// 1️⃣ Dados obrigatórios
	// --------------------------------------------------
	if req.DateTime.IsZero() {
		return nil, domain.Reject("invalid_date_or_time", l.T(i18n.KeySelectDayAndTime))
	}
	if req.ClientName == "" || req.ClientPhone == "" {
		return nil, domain.Reject("contact_required", l.T(i18n.KeyFillNameAndPhone))
	}

	start := req.DateTime
	end := start.Add(domain.DefaultDuration)

	// --------------------------------------------------
	// 2️⃣ Conflito de horário
	// --------------------------------------------------
	conflict, err := uc.repo.HasTimeConflict(ctx, start, end)
	if err != nil {
		return nil, uc.failed(l, fmt.Errorf("check conflict: %w", err))
	}
	if conflict {
		return nil, domain.Reject("time_conflict", l.T(i18n.KeyBookingConflict))
	}

	// --------------------------------------------------
	// 3️⃣ Persistência
	// --------------------------------------------------
	ap := &models.Appointment{
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		StartTime:   start,
		EndTime:     end,
		Status:      string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		if httperr.IsBusiness(err, "time_conflict") {
			return nil, domain.Reject("time_conflict", l.T(i18n.KeyBookingConflict))
		}
		return nil, uc.failed(l, fmt.Errorf("create appointment: %w", err))
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    "site",
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"start_time": start.Format(time.RFC3339),
		},
	})

	uc.log.WithFields(logrus.Fields{
		"component":      "booking",
		"appointment_id": ap.ID,
	}).Infof("appointment created for %s", start.Format(time.RFC3339))

	return &domain.Result{
		Success:     true,
		Message:     l.T(i18n.KeyBookingSuccess),
		Data:        req,
		Appointment: ap,
	}, nil
}

func (uc *CreateAppointment) failed(l *i18n.Localizer, err error) error {
	uc.log.WithField("component", "booking").Errorf("booking failed: %v", err)
	return &domain.RejectedError{
		Code:    "booking_failed",
		Message: l.T(i18n.KeyBookingFailed),
		Err:     err,
	}
}

var _ domain.Booker = (*CreateAppointment)(nil)
