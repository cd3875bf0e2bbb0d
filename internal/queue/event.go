// Package queue defines message payloads exchanged over the message broker
// and the background consumer that turns them into an audit log.
package queue

// AppointmentBookedEvent is published after an appointment has been
// persisted. It carries enough for downstream consumers to write audit
// records without querying the primary database. Synced reports whether a
// calendar event was created for the booking.
type AppointmentBookedEvent struct {
	AppointmentID string `json:"appointment_id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	AppointmentAt string `json:"appointment_at"`
	GoogleEventID string `json:"google_event_id,omitempty"`
	Synced        bool   `json:"synced"`
	BookedAt      string `json:"booked_at"`
}
