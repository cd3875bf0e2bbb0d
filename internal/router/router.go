package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/appointive/appointment-booking-api/internal/handler"
	"github.com/appointive/appointment-booking-api/internal/middleware"
)

// Register wires every route onto the Echo instance. The public surface
// is the booking submission, login and the health check; everything else
// sits behind the admin gate (valid bearer token + is_admin claim).
// cacheMW may be nil when no Redis is configured.
func Register(e *echo.Echo, auth *handler.AuthHandler, appts *handler.AppointmentHandler, users *handler.UserHandler, jwtSecret string, cacheMW echo.MiddlewareFunc) {
	e.GET("/healthz", handler.Health)

	e.POST("/auth/login", auth.Login)

	// Anyone can book; only admins can read.
	e.POST("/appointments", appts.Create)

	gate := []echo.MiddlewareFunc{middleware.JWTAuth(jwtSecret), middleware.RequireAdmin()}
	admin := e.Group("", gate...)
	if cacheMW != nil {
		admin.Use(cacheMW)
	}
	admin.GET("/appointments", appts.List)
	admin.GET("/appointments/:id", appts.Get)
	admin.POST("/users", users.Create)
	admin.GET("/users", users.List)
}
