package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/sorriso-perfeito/internal/models"
)

type Repository interface {
	// -------- Appointment (create / conflict) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	HasTimeConflict(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) (bool, error)

	// -------- Appointment (state change) --------
	GetAppointment(
		ctx context.Context,
		appointmentID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Agenda --------
	ListAppointmentsForPeriod(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}
