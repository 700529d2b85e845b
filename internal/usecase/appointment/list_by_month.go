package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/sorriso-perfeito/internal/calendar"
	domain "github.com/BruksfildServices01/sorriso-perfeito/internal/domain/appointment"
	"github.com/BruksfildServices01/sorriso-perfeito/internal/dto"
)

// ListAppointmentsByMonth lays the month's appointments over the calendar
// grid, one bucket per day.
type ListAppointmentsByMonth struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListAppointmentsByMonth(
	repo domain.Repository,
	loc *time.Location,
) *ListAppointmentsByMonth {
	return &ListAppointmentsByMonth{
		repo: repo,
		loc:  loc,
	}
}

func (uc *ListAppointmentsByMonth) Execute(
	ctx context.Context,
	ym calendar.YearMonth,
) (*dto.AgendaDTO, error) {

	grid, err := ym.Grid()
	if err != nil {
		return nil, err
	}

	start, end := ym.Bounds(uc.loc)
	appointments, err := uc.repo.ListAppointmentsForPeriod(ctx, start, end)
	if err != nil {
		return nil, err
	}

	byDay := make(map[calendar.Date][]dto.AppointmentListDTO)
	for _, ap := range appointments {
		d := calendar.DateOf(ap.StartTime.In(uc.loc))
		byDay[d] = append(byDay[d], dto.NewAppointmentListDTO(ap, uc.loc))
	}

	out := &dto.AgendaDTO{
		Year:  grid.Year,
		Month: int(grid.Month),
		Total: len(appointments),
		Weeks: make([][]dto.AgendaDayDTO, 0, len(grid.Weeks)),
	}

	for _, week := range grid.Weeks {
		row := make([]dto.AgendaDayDTO, 0, len(week))
		for _, cell := range week {
			if cell.IsPlaceholder() {
				row = append(row, dto.AgendaDayDTO{Placeholder: true})
				continue
			}
			items := byDay[cell.Date]
			if items == nil {
				items = []dto.AppointmentListDTO{}
			}
			row = append(row, dto.AgendaDayDTO{
				Date:         cell.Date.String(),
				Day:          cell.Date.Day,
				Appointments: items,
			})
		}
		out.Weeks = append(out.Weeks, row)
	}

	return out, nil
}
