package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/appointive/appointment-booking-api/internal/model"
	"github.com/appointive/appointment-booking-api/internal/queue"
)

// fakeStore mirrors the repository contract in memory.
type fakeStore struct {
	created []model.Appointment
	fail    bool
}

func (f *fakeStore) Create(_ context.Context, name, email string, at time.Time, notes, googleEventID string) (model.Appointment, error) {
	if f.fail {
		return model.Appointment{}, errors.New("datastore unavailable")
	}
	a := model.Appointment{
		ID:            fmt.Sprintf("appt-%d", len(f.created)+1),
		Name:          name,
		Email:         email,
		AppointmentAt: at.UTC(),
		Notes:         notes,
		CreatedAt:     time.Now().UTC(),
	}
	a.UpdatedAt = a.CreatedAt
	if googleEventID != "" {
		a.GoogleEventID = &googleEventID
	}
	f.created = append(f.created, a)
	return a, nil
}

// fakeCalendar returns a fixed event id; "" simulates any sync failure
// (unconfigured credentials, network error, quota).
type fakeCalendar struct {
	eventID string
	calls   int
}

func (f *fakeCalendar) CreateEvent(_ context.Context, _, _ string, _ time.Time, _ string) string {
	f.calls++
	return f.eventID
}

type fakePublisher struct {
	events []queue.AppointmentBookedEvent
	err    error
}

func (f *fakePublisher) PublishAppointmentBooked(_ context.Context, evt queue.AppointmentBookedEvent) error {
	f.events = append(f.events, evt)
	return f.err
}

func validInput() BookingInput {
	return BookingInput{
		Name:                "Ada",
		Email:               "ada@x.com",
		AppointmentDateTime: "2025-03-01T10:00:00Z",
		Notes:               "first visit",
	}
}

func TestBookEchoesInputAndCapturesEventID(t *testing.T) {
	store := &fakeStore{}
	cal := &fakeCalendar{eventID: "evt_1"}
	pub := &fakePublisher{}
	svc := NewBookingService(store, cal, pub)

	appt, err := svc.Book(context.Background(), validInput())
	if err != nil {
		t.Fatalf("book: %v", err)
	}

	if appt.ID == "" || appt.CreatedAt.IsZero() {
		t.Error("id/createdAt not generated")
	}
	if appt.Name != "Ada" || appt.Email != "ada@x.com" || appt.Notes != "first visit" {
		t.Errorf("stored fields do not echo input: %+v", appt)
	}
	want := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	if !appt.AppointmentAt.Equal(want) {
		t.Errorf("appointmentAt = %v, want %v", appt.AppointmentAt, want)
	}
	if appt.GoogleEventID == nil || *appt.GoogleEventID != "evt_1" {
		t.Errorf("googleEventId = %v, want evt_1", appt.GoogleEventID)
	}
	if cal.calls != 1 {
		t.Errorf("calendar called %d times, want exactly 1", cal.calls)
	}

	if len(pub.events) != 1 {
		t.Fatalf("published %d events, want 1", len(pub.events))
	}
	evt := pub.events[0]
	if !evt.Synced || evt.GoogleEventID != "evt_1" || evt.AppointmentID != appt.ID {
		t.Errorf("unexpected booked event: %+v", evt)
	}
}

func TestBookSucceedsWhenSyncFails(t *testing.T) {
	// A failed or unconfigured sync yields "" from the calendar client;
	// the booking must still succeed with a null event id.
	store := &fakeStore{}
	svc := NewBookingService(store, &fakeCalendar{eventID: ""}, nil)

	appt, err := svc.Book(context.Background(), validInput())
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	if appt.GoogleEventID != nil {
		t.Errorf("googleEventId = %q, want nil", *appt.GoogleEventID)
	}
	if len(store.created) != 1 {
		t.Fatalf("appointment not persisted")
	}
}

func TestBookValidation(t *testing.T) {
	tests := []struct {
		name  string
		mut   func(*BookingInput)
		field string
	}{
		{"empty name", func(in *BookingInput) { in.Name = "  " }, "name"},
		{"empty email", func(in *BookingInput) { in.Email = "" }, "email"},
		{"malformed email", func(in *BookingInput) { in.Email = "not-an-email" }, "email"},
		{"email with display name", func(in *BookingInput) { in.Email = "Ada <ada@x.com>" }, "email"},
		{"missing datetime", func(in *BookingInput) { in.AppointmentDateTime = "" }, "appointmentDateTime"},
		{"unparseable datetime", func(in *BookingInput) { in.AppointmentDateTime = "tomorrow at noon" }, "appointmentDateTime"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{}
			cal := &fakeCalendar{eventID: "evt_1"}
			svc := NewBookingService(store, cal, nil)

			in := validInput()
			tt.mut(&in)

			_, err := svc.Book(context.Background(), in)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tt.field {
				t.Errorf("field = %q, want %q", verr.Field, tt.field)
			}
			// Validation must reject before any side effect.
			if cal.calls != 0 {
				t.Error("calendar called despite validation failure")
			}
			if len(store.created) != 0 {
				t.Error("appointment persisted despite validation failure")
			}
		})
	}
}

func TestBookNormalizesOffsetToUTC(t *testing.T) {
	store := &fakeStore{}
	svc := NewBookingService(store, &fakeCalendar{}, nil)

	in := validInput()
	in.AppointmentDateTime = "2025-03-01T12:00:00+02:00"

	appt, err := svc.Book(context.Background(), in)
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	want := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	if !appt.AppointmentAt.Equal(want) || appt.AppointmentAt.Location() != time.UTC {
		t.Errorf("appointmentAt = %v, want %v (UTC)", appt.AppointmentAt, want)
	}
}

func TestBookPersistenceFailure(t *testing.T) {
	cal := &fakeCalendar{eventID: "evt_orphan"}
	pub := &fakePublisher{}
	svc := NewBookingService(&fakeStore{fail: true}, cal, pub)

	_, err := svc.Book(context.Background(), validInput())
	if err == nil {
		t.Fatal("expected persistence error")
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		t.Fatal("persistence failure misreported as validation error")
	}
	// The calendar event was already created and is not rolled back; the
	// booked event must not be announced for a failed booking.
	if cal.calls != 1 {
		t.Errorf("calendar calls = %d, want 1", cal.calls)
	}
	if len(pub.events) != 0 {
		t.Error("booked event published despite persistence failure")
	}
}

func TestBookIgnoresPublisherFailure(t *testing.T) {
	pub := &fakePublisher{err: errors.New("broker down")}
	svc := NewBookingService(&fakeStore{}, &fakeCalendar{eventID: "evt_1"}, pub)

	if _, err := svc.Book(context.Background(), validInput()); err != nil {
		t.Fatalf("broker failure leaked into booking result: %v", err)
	}
}
