package appointment

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/sorriso-perfeito/internal/audit"
	domain "github.com/BruksfildServices01/sorriso-perfeito/internal/domain/appointment"
	"github.com/BruksfildServices01/sorriso-perfeito/internal/httperr"
	"github.com/BruksfildServices01/sorriso-perfeito/internal/i18n"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func translator(t *testing.T) *i18n.Translator {
	t.Helper()
	tr, err := i18n.New("pt-BR")
	require.NoError(t, err)
	return tr
}

func saoPaulo(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	return loc
}

type eventSink struct {
	events chan audit.Event
}

func (s eventSink) Log(ev audit.Event) error {
	s.events <- ev
	return nil
}

func TestSimulatedBookerConfirms(t *testing.T) {
	b := NewSimulatedBooker(10*time.Millisecond, translator(t), quietLogger())
	when := time.Date(2024, 3, 15, 14, 0, 0, 0, saoPaulo(t))

	res, err := b.Book(context.Background(), domain.Request{
		DateTime:    when,
		ClientName:  "  Ana ",
		ClientPhone: "11999990000",
	})

	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "Consulta agendada com sucesso (simulação)!", res.Message)
	assert.Equal(t, "Ana", res.Data.ClientName)
	assert.Nil(t, res.Appointment)
}

func TestSimulatedBookerHonoursCancellation(t *testing.T) {
	b := NewSimulatedBooker(time.Hour, translator(t), quietLogger())
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := b.Book(ctx, domain.Request{DateTime: time.Now(), ClientName: "a", ClientPhone: "b"})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSimulatedBookerUsesRequestLanguage(t *testing.T) {
	tr := translator(t)
	b := NewSimulatedBooker(0, tr, quietLogger())
	ctx := i18n.WithLocalizer(context.Background(), tr.Localizer("en"))

	res, err := b.Book(ctx, domain.Request{DateTime: time.Now(), ClientName: "a", ClientPhone: "b"})
	require.NoError(t, err)
	assert.Equal(t, "Appointment scheduled successfully (simulation)!", res.Message)
}

func TestCreateAppointmentPersistsAndAudits(t *testing.T) {
	repo := &fakeRepo{}
	sink := eventSink{events: make(chan audit.Event, 1)}
	dispatcher := audit.NewDispatcher(sink, quietLogger())
	defer dispatcher.Close()

	uc := NewCreateAppointment(repo, dispatcher, translator(t), quietLogger())
	when := time.Date(2024, 3, 15, 14, 0, 0, 0, saoPaulo(t))

	res, err := uc.Book(context.Background(), domain.Request{
		DateTime:    when,
		ClientName:  "Ana",
		ClientPhone: "11999990000",
	})

	require.NoError(t, err)
	assert.Equal(t, "Consulta agendada com sucesso!", res.Message)
	require.NotNil(t, res.Appointment)
	assert.Equal(t, uint(1), res.Appointment.ID)
	assert.Equal(t, when.Add(time.Hour), res.Appointment.EndTime)
	assert.Equal(t, "scheduled", res.Appointment.Status)

	select {
	case ev := <-sink.events:
		assert.Equal(t, "appointment_created", ev.Action)
		assert.Equal(t, uint(1), *ev.EntityID)
	case <-time.After(time.Second):
		t.Fatal("audit event not delivered")
	}
}

func TestCreateAppointmentRejectsConflict(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewCreateAppointment(repo, nil, translator(t), quietLogger())
	when := time.Date(2024, 3, 15, 14, 0, 0, 0, saoPaulo(t))
	req := domain.Request{DateTime: when, ClientName: "Ana", ClientPhone: "1"}

	_, err := uc.Book(context.Background(), req)
	require.NoError(t, err)

	_, err = uc.Book(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, "Horário indisponível.", err.Error())
	assert.True(t, httperr.IsBusiness(err, "time_conflict"))

	req.DateTime = when.Add(time.Hour)
	_, err = uc.Book(context.Background(), req)
	assert.NoError(t, err)
}

func TestCreateAppointmentValidatesInput(t *testing.T) {
	uc := NewCreateAppointment(&fakeRepo{}, nil, translator(t), quietLogger())

	_, err := uc.Book(context.Background(), domain.Request{ClientName: "Ana", ClientPhone: "1"})
	assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))
	assert.Equal(t, "Selecione um dia e um horário para agendar.", err.Error())

	_, err = uc.Book(context.Background(), domain.Request{DateTime: time.Now(), ClientName: "  ", ClientPhone: "1"})
	assert.True(t, httperr.IsBusiness(err, "contact_required"))
}

func TestCreateAppointmentWrapsStoreFailure(t *testing.T) {
	cause := errors.New("connection refused")
	uc := NewCreateAppointment(&fakeRepo{err: cause}, nil, translator(t), quietLogger())

	_, err := uc.Book(context.Background(), domain.Request{DateTime: time.Now(), ClientName: "a", ClientPhone: "b"})
	require.Error(t, err)
	assert.Equal(t, "Erro ao agendar consulta.", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.True(t, httperr.IsBusiness(err, "booking_failed"))
}
