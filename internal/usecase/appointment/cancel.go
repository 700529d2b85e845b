package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/sorriso-perfeito/internal/audit"
	domain "github.com/BruksfildServices01/sorriso-perfeito/internal/domain/appointment"
	"github.com/BruksfildServices01/sorriso-perfeito/internal/models"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	loc *time.Location,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
		loc:   loc,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	actor string,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	now := time.Now().In(uc.loc)
	if err := domain.Cancel(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
