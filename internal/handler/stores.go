package handler // handler defines http handlers

import (
	"context"
	"time"

	"github.com/appointive/appointment-booking-api/internal/model"
)

// UserStore is the slice of the user repository the handlers need.
// *repository.UserRepo satisfies it.
type UserStore interface {
	Create(ctx context.Context, email, passwordHash string) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	List(ctx context.Context) ([]model.User, error)
}

// AppointmentReader serves the admin query surface.
// *repository.AppointmentRepo satisfies it.
type AppointmentReader interface {
	List(ctx context.Context) ([]model.Appointment, error)
	GetByID(ctx context.Context, id string) (model.Appointment, error)
}

// dbTimeout bounds every repository call made from a handler.
const dbTimeout = 5 * time.Second
