package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/appointive/appointment-booking-api/internal/model"
	"github.com/appointive/appointment-booking-api/internal/repository"
	"github.com/appointive/appointment-booking-api/internal/service"
)

// AppointmentHandler exposes the public booking endpoint and the
// admin-gated query surface.
type AppointmentHandler struct {
	Booking      *service.BookingService
	Appointments AppointmentReader
}

func NewAppointmentHandler(booking *service.BookingService, appts AppointmentReader) *AppointmentHandler {
	return &AppointmentHandler{Booking: booking, Appointments: appts}
}

type createAppointmentReq struct {
	Name                string `json:"name"`
	Email               string `json:"email"`
	AppointmentDateTime string `json:"appointmentDateTime"`
	Notes               string `json:"notes"`
}

// Create handles the public booking submission. Validation failures name
// the offending field; calendar-sync failures never surface here.
func (h *AppointmentHandler) Create(c echo.Context) error {
	var req createAppointmentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	appt, err := h.Booking.Book(ctx, service.BookingInput{
		Name:                req.Name,
		Email:               req.Email,
		AppointmentDateTime: req.AppointmentDateTime,
		Notes:               req.Notes,
	})
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": verr.Msg, "field": verr.Field})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not save appointment"})
	}

	return c.JSON(http.StatusCreated, appt)
}

// List returns all appointments ascending by their scheduled time.
func (h *AppointmentHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	appts, err := h.Appointments.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if appts == nil {
		appts = []model.Appointment{}
	}
	return c.JSON(http.StatusOK, appts)
}

// Get returns a single appointment by id.
func (h *AppointmentHandler) Get(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	appt, err := h.Appointments.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, appt)
}
