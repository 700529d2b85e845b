package appointment

import "github.com/BruksfildServices01/sorriso-perfeito/internal/httperr"

// Status is the lifecycle of a consultation. Only a scheduled
// consultation holds its slot (see the conflict query).
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// transitions lists where each status may go. Cancelled and completed
// consultations are final.
var transitions = map[Status][]Status{
	StatusScheduled: {StatusCancelled, StatusCompleted},
}

// CanTransition reports invalid_state unless from -> to is allowed.
func CanTransition(from, to Status) error {
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return httperr.ErrBusiness("invalid_state")
}

// CanCancel: the reception desk may cancel a consultation that has not
// happened yet.
func CanCancel(current Status) error {
	return CanTransition(current, StatusCancelled)
}

// CanComplete: the dentist closes a consultation after the visit.
func CanComplete(current Status) error {
	return CanTransition(current, StatusCompleted)
}

// InitialStatus is the status of every booking made from the site.
func InitialStatus() Status {
	return StatusScheduled
}
