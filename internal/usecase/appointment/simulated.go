package appointment

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	domain "github.com/BruksfildServices01/sorriso-perfeito/internal/domain/appointment"
	"github.com/BruksfildServices01/sorriso-perfeito/internal/i18n"
)

// SimulatedBooker stands in for a real backend: it waits, then confirms.
// Nothing is stored.
type SimulatedBooker struct {
	delay time.Duration
	tr    *i18n.Translator
	log   *logrus.Logger
}

func NewSimulatedBooker(
	delay time.Duration,
	tr *i18n.Translator,
	log *logrus.Logger,
) *SimulatedBooker {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &SimulatedBooker{
		delay: delay,
		tr:    tr,
		log:   log,
	}
}

func (b *SimulatedBooker) Book(
	ctx context.Context,
	req domain.Request,
) (*domain.Result, error) {

	if b.delay > 0 {
		timer := time.NewTimer(b.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	req = req.Normalized()
	b.log.WithFields(logrus.Fields{
		"component": "booking",
		"mode":      "simulated",
		"date_time": req.DateTime.Format(time.RFC3339),
	}).Info("appointment request accepted")

	return &domain.Result{
		Success: true,
		Message: b.tr.FromContext(ctx).T(i18n.KeyBookingSimulated),
		Data:    req,
	}, nil
}

var _ domain.Booker = (*SimulatedBooker)(nil)
