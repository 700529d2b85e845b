// Package ics renders a booked consultation as an iCalendar file.
package ics

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/emersion/go-ical"
)

const (
	ProdID      = "-//Sorriso Perfeito//Agendamento//PT"
	ContentType = "text/calendar; charset=utf-8"
	uidDomain   = "sorrisoperfeito.com.br"
)

var ErrMissingStart = errors.New("ics: event start is required")

type Event struct {
	ID          string
	Start       time.Time
	Duration    time.Duration
	Summary     string
	Location    string
	Description string
	// Reminder is an RFC 5545 duration such as "-PT1H"; empty means none.
	Reminder string
}

// Encode writes a calendar holding a single event. Times are stamped in UTC.
func Encode(ev Event, now time.Time) ([]byte, error) {
	if ev.Start.IsZero() {
		return nil, ErrMissingStart
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, ProdID)
	cal.Props.SetText(ical.PropCalendarScale, "GREGORIAN")
	cal.Props.SetText(ical.PropMethod, "PUBLISH")

	event := ical.NewEvent()
	event.Props.SetText(ical.PropUID, fmt.Sprintf("%s@%s", ev.ID, uidDomain))
	event.Props.SetDateTime(ical.PropDateTimeStamp, now.UTC())
	event.Props.SetDateTime(ical.PropDateTimeStart, ev.Start.UTC())
	event.Props.SetDateTime(ical.PropDateTimeEnd, ev.Start.Add(ev.Duration).UTC())
	event.Props.SetText(ical.PropSummary, ev.Summary)
	if ev.Location != "" {
		event.Props.SetText(ical.PropLocation, ev.Location)
	}
	if ev.Description != "" {
		event.Props.SetText(ical.PropDescription, ev.Description)
	}
	if ev.Reminder != "" {
		addAlarm(event, ev.Reminder, ev.Summary)
	}

	cal.Children = append(cal.Children, event.Component)

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("encode ics: %w", err)
	}
	return buf.Bytes(), nil
}

func addAlarm(event *ical.Event, trigger, description string) {
	alarm := ical.NewComponent(ical.CompAlarm)
	alarm.Props.SetText(ical.PropAction, "DISPLAY")
	alarm.Props.SetText(ical.PropDescription, description)

	// Set the value directly so the encoder does not add VALUE=TEXT.
	triggerProp := ical.NewProp(ical.PropTrigger)
	triggerProp.Value = trigger
	alarm.Props.Set(triggerProp)

	event.Children = append(event.Children, alarm)
}
