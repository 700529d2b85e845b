package dto

// AgendaDTO is a month grid for staff. Placeholder cells have no date.
type AgendaDTO struct {
	Year  int              `json:"year"`
	Month int              `json:"month"`
	Total int              `json:"total"`
	Weeks [][]AgendaDayDTO `json:"weeks"`
}

type AgendaDayDTO struct {
	Date         string               `json:"date,omitempty"`
	Day          int                  `json:"day,omitempty"`
	Placeholder  bool                 `json:"placeholder,omitempty"`
	Appointments []AppointmentListDTO `json:"appointments,omitempty"`
}
