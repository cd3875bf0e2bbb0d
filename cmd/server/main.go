package main // Entry point package

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/appointive/appointment-booking-api/internal/calendar"
	"github.com/appointive/appointment-booking-api/internal/config"
	"github.com/appointive/appointment-booking-api/internal/database"
	"github.com/appointive/appointment-booking-api/internal/handler"
	"github.com/appointive/appointment-booking-api/internal/middleware"
	"github.com/appointive/appointment-booking-api/internal/queue"
	"github.com/appointive/appointment-booking-api/internal/repository"
	"github.com/appointive/appointment-booking-api/internal/router"
	"github.com/appointive/appointment-booking-api/internal/service"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	ctx := context.Background()

	db, err := database.Open(ctx, cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer db.Close()
	log.Println("connected to mysql")

	// Everything is wired explicitly here, once; handlers and services
	// receive their collaborators as constructor arguments.
	userRepo := repository.NewUserRepo(db)
	apptRepo := repository.NewAppointmentRepo(db)

	cal := calendar.New(ctx, cfg.GoogleServiceAccountEmail, cfg.GooglePrivateKey, cfg.GoogleCalendarID)
	booking := service.NewBookingService(apptRepo, cal, service.QueuePublisher{})

	authHandler := handler.NewAuthHandler(cfg, userRepo)
	apptHandler := handler.NewAppointmentHandler(booking, apptRepo)
	userHandler := handler.NewUserHandler(cfg, userRepo)

	var cacheMW echo.MiddlewareFunc
	if rdb := config.NewRedisClient(); rdb != nil {
		log.Println("redis cache enabled")
		cacheMW = middleware.Cache(rdb, cfg.CacheTTL)
	}

	e := echo.New()
	e.HideBanner = true
	router.Register(e, authHandler, apptHandler, userHandler, cfg.JWTSecret, cacheMW)

	// Audit consumer runs for the lifetime of the process and reconnects
	// on its own; a missing broker only costs log noise.
	go queue.StartBookedConsumer()

	go func() {
		log.Printf("listening on :%s", cfg.Port)
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Printf("http: %v", err)
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	log.Println("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
