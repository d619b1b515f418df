package main

import (
	"context"
	"time"

	"ai-booking-assistant/internal/models"
	"ai-booking-assistant/internal/repository"
	"ai-booking-assistant/pkg/config"
	"ai-booking-assistant/pkg/logger"
	"ai-booking-assistant/pkg/postgres"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		is_admin BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS customers (
		customer_id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		phone TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id UUID PRIMARY KEY,
		customer_id UUID NOT NULL REFERENCES customers(customer_id),
		booking_type TEXT NOT NULL,
		date TEXT NOT NULL,
		time TEXT NOT NULL,
		status TEXT NOT NULL,
		doctor_name TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL
	)`,
}

// Applies the schema and creates the default admin account.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Get()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, &cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			log.Fatal("Failed to apply schema", zap.Error(err))
		}
	}
	log.Info("Schema applied")

	userRepo := repository.NewUserRepository(pool, log)

	adminEmail := "admin@example.com"
	if existing, err := userRepo.GetByEmail(ctx, adminEmail); err == nil && existing != nil {
		log.Info("Admin user already present", zap.String("email", adminEmail))
		return
	}

	now := time.Now()
	admin := &models.User{
		ID:        uuid.New(),
		Email:     adminEmail,
		Password:  "admin123",
		IsAdmin:   true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		log.Fatal("Failed to create admin user", zap.Error(err))
	}

	log.Info("Admin user created", zap.String("email", admin.Email))
}
