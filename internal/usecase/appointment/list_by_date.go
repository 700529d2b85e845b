package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/sorriso-perfeito/internal/calendar"
	domain "github.com/BruksfildServices01/sorriso-perfeito/internal/domain/appointment"
	"github.com/BruksfildServices01/sorriso-perfeito/internal/dto"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListAppointmentsByDate(
	repo domain.Repository,
	loc *time.Location,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
		loc:  loc,
	}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	date calendar.Date,
) ([]dto.AppointmentListDTO, error) {

	start := time.Date(date.Year, date.Month, date.Day, 0, 0, 0, 0, uc.loc)
	end := start.AddDate(0, 0, 1)

	appointments, err := uc.repo.ListAppointmentsForPeriod(ctx, start, end)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.NewAppointmentListDTO(ap, uc.loc))
	}

	return out, nil
}
