package appointment

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/sorriso-perfeito/internal/models"
)

// DefaultDuration is the length of one consultation.
const DefaultDuration = time.Hour

// Request is the payload handed to a Booker. It only lives for the
// duration of one submission.
type Request struct {
	DateTime    time.Time `json:"dateTime"`
	ClientName  string    `json:"clientName"`
	ClientPhone string    `json:"clientPhone"`
}

// Normalized trims the client fields.
func (r Request) Normalized() Request {
	r.ClientName = strings.TrimSpace(r.ClientName)
	r.ClientPhone = strings.TrimSpace(r.ClientPhone)
	return r
}

// Result carries a human-readable confirmation. Appointment is only set
// by bookers that persist.
type Result struct {
	Success     bool                `json:"success"`
	Message     string              `json:"message"`
	Data        Request             `json:"data"`
	Appointment *models.Appointment `json:"appointment,omitempty"`
}

// Booker submits an appointment request. Callers display Result.Message
// on success and err.Error() on failure, verbatim.
type Booker interface {
	Book(ctx context.Context, req Request) (*Result, error)
}
