// Command seed creates the initial admin user (admin@example.com) when it
// does not exist yet. Safe to run repeatedly.
package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/appointive/appointment-booking-api/internal/config"
	"github.com/appointive/appointment-booking-api/internal/database"
	"github.com/appointive/appointment-booking-api/internal/repository"
	"github.com/appointive/appointment-booking-api/internal/utils"
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

	email := envOr("SEED_ADMIN_EMAIL", "admin@example.com")
	password := envOr("SEED_ADMIN_PASSWORD", "admin123")

	hash, err := utils.HashPassword(password, cfg.BcryptCost)
	if err != nil {
		log.Fatalf("hash: %v", err)
	}

	users := repository.NewUserRepo(db)
	u, err := users.Create(ctx, email, hash)
	if errors.Is(err, repository.ErrEmailExists) {
		log.Printf("admin user %s already exists, nothing to do", email)
		return
	}
	if err != nil {
		log.Fatalf("seed: %v", err)
	}
	log.Printf("seeded admin user: %s (%s)", u.Email, u.ID)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
