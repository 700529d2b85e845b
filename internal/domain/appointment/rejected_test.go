package appointment

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/sorriso-perfeito/internal/httperr"
	"github.com/BruksfildServices01/sorriso-perfeito/internal/models"
)

func TestRejectedErrorKeepsCodeAndCause(t *testing.T) {
	cause := errors.New("unique violation")
	err := fmt.Errorf("book: %w", &RejectedError{Code: "time_conflict", Message: "Horário indisponível.", Err: cause})

	assert.Equal(t, "book: Horário indisponível.", err.Error())
	assert.True(t, httperr.IsBusiness(err, "time_conflict"))
	assert.ErrorIs(t, err, cause)

	var rej *RejectedError
	assert.True(t, errors.As(err, &rej))
	assert.Equal(t, "Horário indisponível.", rej.Error())
}

func TestRejectWithoutMessageFallsBackToCode(t *testing.T) {
	assert.Equal(t, "invalid_request", Reject("invalid_request", "").Error())
}

func TestStatusTransitions(t *testing.T) {
	assert.NoError(t, CanCancel(StatusScheduled))
	assert.True(t, httperr.IsBusiness(CanCancel(StatusCompleted), "invalid_state"))
	assert.NoError(t, CanComplete(StatusScheduled))
	assert.True(t, httperr.IsBusiness(CanComplete(StatusCancelled), "invalid_state"))
}

func TestFinalStatusesAreFinal(t *testing.T) {
	for _, from := range []Status{StatusCancelled, StatusCompleted} {
		for _, to := range []Status{StatusScheduled, StatusCancelled, StatusCompleted} {
			assert.True(t, httperr.IsBusiness(CanTransition(from, to), "invalid_state"), "%s -> %s", from, to)
		}
	}
	assert.True(t, httperr.IsBusiness(CanTransition(StatusScheduled, StatusScheduled), "invalid_state"))
}

func TestCancelStampsTime(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	ap := &models.Appointment{Status: string(InitialStatus())}

	assert.NoError(t, Cancel(ap, now))
	assert.Equal(t, string(StatusCancelled), ap.Status)
	assert.Equal(t, now, *ap.CancelledAt)

	assert.Error(t, Complete(ap, now))
	assert.Nil(t, ap.CompletedAt)
}
