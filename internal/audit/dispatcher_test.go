package audit

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

type recordingSink struct {
	mu     sync.Mutex
	events []Event
	err    error
}

func (s *recordingSink) Log(ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return s.err
}

func TestDispatcherDeliversInOrder(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(sink, nil)

	d.Dispatch(Event{Action: "appointment_created"})
	d.Dispatch(Event{Action: "appointment_cancelled"})
	d.Close()

	assert.Equal(t, []Event{{Action: "appointment_created"}, {Action: "appointment_cancelled"}}, sink.events)
}

func TestDispatcherLogsSinkErrors(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)

	d := NewDispatcher(&recordingSink{err: errors.New("db down")}, log)
	d.Dispatch(Event{Action: "appointment_created"})
	d.Close()

	assert.Contains(t, buf.String(), "db down")
}

func TestNilDispatcherIsSafe(t *testing.T) {
	var d *Dispatcher
	d.Dispatch(Event{Action: "x"})
	d.Close()
}

func TestLogrusSink(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetFormatter(&logrus.JSONFormatter{})

	id := uint(3)
	err := LogrusSink{Logger: log}.Log(Event{
		Actor:    "site",
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &id,
		Metadata: map[string]string{"phone": "123"},
	})

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), `"msg":"appointment_created"`)
	assert.Contains(t, buf.String(), `"entity_id":3`)
}
