package appointment

import (
	"context"
	"sync"
	"time"

	domain "github.com/BruksfildServices01/sorriso-perfeito/internal/domain/appointment"
	"github.com/BruksfildServices01/sorriso-perfeito/internal/httperr"
	"github.com/BruksfildServices01/sorriso-perfeito/internal/models"
)

type fakeRepo struct {
	mu     sync.Mutex
	items  []models.Appointment
	nextID uint
	err    error
}

func (r *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.nextID++
	ap.ID = r.nextID
	r.items = append(r.items, *ap)
	return nil
}

func (r *fakeRepo) HasTimeConflict(_ context.Context, start, end time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return false, r.err
	}
	for _, ap := range r.items {
		if ap.Status == string(domain.StatusScheduled) && ap.StartTime.Before(end) && ap.EndTime.After(start) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ap := range r.items {
		if ap.ID == id {
			cp := ap
			return &cp, nil
		}
	}
	return nil, httperr.ErrBusiness("appointment_not_found")
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == ap.ID {
			r.items[i] = *ap
			return nil
		}
	}
	return httperr.ErrBusiness("appointment_not_found")
}

func (r *fakeRepo) ListAppointmentsForPeriod(_ context.Context, start, end time.Time) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Appointment
	for _, ap := range r.items {
		if !ap.StartTime.Before(start) && ap.StartTime.Before(end) {
			out = append(out, ap)
		}
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)
