package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/appointive/appointment-booking-api/internal/model"
)

// AppointmentRepo persists appointment records. Appointments are written
// exactly once per booking and never updated or deleted afterwards.
type AppointmentRepo struct{ DB *sql.DB }

func NewAppointmentRepo(db *sql.DB) *AppointmentRepo { return &AppointmentRepo{DB: db} }

// Create inserts a new appointment and returns the stored record with its
// generated id and timestamps. An empty googleEventID is stored as NULL.
func (r *AppointmentRepo) Create(ctx context.Context, name, email string, at time.Time, notes, googleEventID string) (model.Appointment, error) {
	a := model.Appointment{
		ID:            uuid.New().String(),
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

	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO appointments (id, name, email, appointment_at, notes, google_event_id, created_at, updated_at)
		 VALUES (?,?,?,?,?,?,?,?)`,
		a.ID, a.Name, a.Email, a.AppointmentAt, nullable(a.Notes), a.GoogleEventID, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return model.Appointment{}, err
	}
	return a, nil
}

// List returns all appointments ordered by their scheduled time,
// earliest first, regardless of insertion order.
func (r *AppointmentRepo) List(ctx context.Context) ([]model.Appointment, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, name, email, appointment_at, notes, google_event_id, created_at, updated_at
		 FROM appointments ORDER BY appointment_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Appointment
	for rows.Next() {
		a, err := scanAppointment(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// GetByID fetches a single appointment; a miss maps to ErrNotFound.
func (r *AppointmentRepo) GetByID(ctx context.Context, id string) (model.Appointment, error) {
	row := r.DB.QueryRowContext(ctx,
		`SELECT id, name, email, appointment_at, notes, google_event_id, created_at, updated_at
		 FROM appointments WHERE id=? LIMIT 1`, id)
	a, err := scanAppointment(row.Scan)
	if err == sql.ErrNoRows {
		return model.Appointment{}, ErrNotFound
	}
	return a, err
}

func scanAppointment(scan func(...any) error) (model.Appointment, error) {
	var (
		a       model.Appointment
		notes   sql.NullString
		eventID sql.NullString
	)
	err := scan(&a.ID, &a.Name, &a.Email, &a.AppointmentAt, &notes, &eventID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return model.Appointment{}, err
	}
	a.Notes = notes.String
	if eventID.Valid {
		a.GoogleEventID = &eventID.String
	}
	a.AppointmentAt = a.AppointmentAt.UTC()
	return a, nil
}

// nullable turns an empty string into a NULL column value.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
