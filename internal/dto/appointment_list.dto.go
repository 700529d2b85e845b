package dto

import (
	"time"

	"github.com/BruksfildServices01/sorriso-perfeito/internal/models"
)

type AppointmentListDTO struct {
	ID          uint      `json:"id"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Time        string    `json:"time"`
	Status      string    `json:"status"`
	ClientName  string    `json:"client_name"`
	ClientPhone string    `json:"client_phone"`
}

// NewAppointmentListDTO renders times in the clinic's location.
func NewAppointmentListDTO(ap models.Appointment, loc *time.Location) AppointmentListDTO {
	start := ap.StartTime.In(loc)
	return AppointmentListDTO{
		ID:          ap.ID,
		StartTime:   start,
		EndTime:     ap.EndTime.In(loc),
		Time:        start.Format("15:04"),
		Status:      ap.Status,
		ClientName:  ap.ClientName,
		ClientPhone: ap.ClientPhone,
	}
}
