package appointment

import (
	"time"

	"github.com/BruksfildServices01/sorriso-perfeito/internal/models"
)

// Cancel frees the consultation's slot and stamps CancelledAt.
func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}
	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

// Complete marks the visit as done and stamps CompletedAt.
func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}
	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}
