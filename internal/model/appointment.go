package model

import "time"

// Appointment records a visitor's booking request as stored in the
// `appointments` table. GoogleEventID references the mirrored calendar
// event; it is set at most once, at creation time, and only when the
// calendar sync succeeded. A nil value means the appointment was never
// synced and never will be — there is no retry path.
type Appointment struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	AppointmentAt time.Time `json:"appointmentDateTime"`
	Notes         string    `json:"notes,omitempty"`
	GoogleEventID *string   `json:"googleEventId"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
