// Package service implements the booking workflow: validate the request,
// mirror it into the external calendar (best effort), persist it, then
// announce it on the broker.
package service

import (
	"context"
	"fmt"
	"log"
	"net/mail"
	"strings"
	"time"

	"github.com/appointive/appointment-booking-api/internal/model"
	"github.com/appointive/appointment-booking-api/internal/queue"
)

// AppointmentStore is the slice of the appointment repository the booking
// workflow needs.
type AppointmentStore interface {
	Create(ctx context.Context, name, email string, at time.Time, notes, googleEventID string) (model.Appointment, error)
}

// EventCreator mirrors a booking into an external calendar. An empty
// return value means "not synced" and is never treated as a failure.
type EventCreator interface {
	CreateEvent(ctx context.Context, name, email string, start time.Time, notes string) string
}

// EventPublisher announces a persisted booking on the message broker.
type EventPublisher interface {
	PublishAppointmentBooked(ctx context.Context, evt queue.AppointmentBookedEvent) error
}

// ValidationError identifies the request field that failed validation.
// It is reported before any side effect occurs.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

// BookingInput is the raw public submission. AppointmentDateTime is kept
// as a string so parsing failures surface as field-level validation
// errors rather than bind errors.
type BookingInput struct {
	Name                string
	Email               string
	AppointmentDateTime string
	Notes               string
}

// BookingService orchestrates a single appointment creation. Events may
// be nil when no broker is configured.
type BookingService struct {
	Appointments AppointmentStore
	Calendar     EventCreator
	Events       EventPublisher
}

func NewBookingService(store AppointmentStore, cal EventCreator, events EventPublisher) *BookingService {
	return &BookingService{Appointments: store, Calendar: cal, Events: events}
}

// Book runs the workflow in fixed order: validate, parse, sync, persist.
// The calendar result never aborts the booking; a persistence failure
// after a successful sync leaves the calendar event in place (accepted
// inconsistency, there is no rollback or reconciliation).
func (s *BookingService) Book(ctx context.Context, in BookingInput) (model.Appointment, error) {
	at, err := s.validate(&in)
	if err != nil {
		return model.Appointment{}, err
	}

	eventID := s.Calendar.CreateEvent(ctx, in.Name, in.Email, at, in.Notes)

	appt, err := s.Appointments.Create(ctx, in.Name, in.Email, at, in.Notes, eventID)
	if err != nil {
		return model.Appointment{}, fmt.Errorf("persist appointment: %w", err)
	}
	log.Printf("booking: appointment created: %s", appt.ID)

	s.publish(ctx, appt)
	return appt, nil
}

// validate checks input shape and returns the parsed UTC timestamp.
func (s *BookingService) validate(in *BookingInput) (time.Time, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Notes = strings.TrimSpace(in.Notes)

	if in.Name == "" {
		return time.Time{}, &ValidationError{Field: "name", Msg: "name is required"}
	}
	if in.Email == "" {
		return time.Time{}, &ValidationError{Field: "email", Msg: "email is required"}
	}
	if addr, err := mail.ParseAddress(in.Email); err != nil || addr.Address != in.Email {
		return time.Time{}, &ValidationError{Field: "email", Msg: "email is not valid"}
	}
	if in.AppointmentDateTime == "" {
		return time.Time{}, &ValidationError{Field: "appointmentDateTime", Msg: "appointmentDateTime is required"}
	}
	at, err := time.Parse(time.RFC3339, in.AppointmentDateTime)
	if err != nil {
		return time.Time{}, &ValidationError{Field: "appointmentDateTime", Msg: "appointmentDateTime must be an ISO 8601 date-time"}
	}
	return at.UTC(), nil
}

// publish is best effort: broker failures are logged and dropped.
func (s *BookingService) publish(ctx context.Context, appt model.Appointment) {
	if s.Events == nil {
		return
	}
	evt := queue.AppointmentBookedEvent{
		AppointmentID: appt.ID,
		Name:          appt.Name,
		Email:         appt.Email,
		AppointmentAt: appt.AppointmentAt.Format(time.RFC3339),
		Synced:        appt.GoogleEventID != nil,
		BookedAt:      appt.CreatedAt.Format(time.RFC3339),
	}
	if appt.GoogleEventID != nil {
		evt.GoogleEventID = *appt.GoogleEventID
	}
	if err := s.Events.PublishAppointmentBooked(ctx, evt); err != nil {
		log.Printf("booking: publish booked event failed: %v", err)
	}
}
