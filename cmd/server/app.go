package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/cosan-app/cosan-api/internal/config"
	"github.com/cosan-app/cosan-api/internal/platform/postgres"
	"github.com/cosan-app/cosan-api/internal/service"
	"github.com/cosan-app/cosan-api/internal/service/auth"
	"github.com/cosan-app/cosan-api/internal/store"
)

// application holds the wired dependencies of one server process.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores, held as capability interfaces so the wiring below is the
	// only place that knows the concrete storage backend.
	userStore     store.UserStore
	wordStore     store.WordStore
	userWordStore store.UserWordStore

	// Services.
	tokenValidator  auth.TokenValidator
	passwordHasher  auth.PasswordHasher
	userService     *service.UserService
	wordService     *service.WordService
	userWordService *service.UserWordService
}

// newApplication wires stores and services over the given database handle.
func newApplication(cfg *config.Config, log *slog.Logger, db *sql.DB) (*application, error) {
	tokenValidator, err := auth.NewTokenValidator(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create token validator: %w", err)
	}

	passwordHasher := auth.NewBcryptHasher()

	userStore := postgres.NewUserStore(db, log)
	wordStore := postgres.NewWordStore(db, log)
	userWordStore := postgres.NewUserWordStore(db, log)

	return &application{
		config:          cfg,
		logger:          log,
		db:              db,
		userStore:       userStore,
		wordStore:       wordStore,
		userWordStore:   userWordStore,
		tokenValidator:  tokenValidator,
		passwordHasher:  passwordHasher,
		userService:     service.NewUserService(userStore, passwordHasher),
		wordService:     service.NewWordService(wordStore),
		userWordService: service.NewUserWordService(userWordStore),
	}, nil
}
