// Package modelhub is an in-process, authorization-aware store for layered
// AI-model configuration: operators maintain a shared provider/model
// catalog, users overlay private credentials, enablement flags and
// parameter tweaks, and plain users can register fully private providers.
// The surrounding application supplies caller identity; modelhub does no
// authentication of its own.
package modelhub

import (
	"context"
	"fmt"

	"gorm.io/gorm/logger"

	"modelhub/internal/database"
	"modelhub/internal/encrypt"
	"modelhub/internal/services"
	"modelhub/internal/utils"
)

// EncryptionKeyEnv names the environment variable holding the credential
// encryption passphrase.
const EncryptionKeyEnv = "MODELHUB_ENCRYPTION_KEY"

// Config holds application configuration.
type Config struct {
	DatabasePath string
	LogLevel     logger.LogLevel
	// EncryptionKey overrides the environment variable when set.
	EncryptionKey string
	// SeedBuiltins installs the default provider/model catalog on an
	// empty database.
	SeedBuiltins bool
}

// App wires the database, cipher and services into one handle for the
// surrounding application.
type App struct {
	Providers services.ProviderService
	Models    services.ModelService
	Catalog   services.CatalogService
	Verifier  services.VerifyService

	dbClose func() error
}

// New opens the database, initializes the credential cipher and wires the
// service container.
func New(ctx context.Context, cfg Config) (*App, error) {
	if err := utils.LoadEnv(); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	passphrase := cfg.EncryptionKey
	if passphrase == "" {
		passphrase = utils.Env(EncryptionKeyEnv, "")
	}
	cipher, err := encrypt.New(passphrase)
	if err != nil {
		return nil, fmt.Errorf("init credential cipher: %w", err)
	}

	db, err := database.Init(database.Config{
		Path:     cfg.DatabasePath,
		LogLevel: cfg.LogLevel,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	app := &App{}
	if sqlDB, err := db.DB(); err == nil {
		app.dbClose = sqlDB.Close
	}

	svc := services.NewServices(db, cipher)
	app.Providers = svc.Providers
	app.Models = svc.Models
	app.Catalog = svc.Catalog
	app.Verifier = svc.Verifier

	if cfg.SeedBuiltins {
		if err := svc.Seed(ctx); err != nil {
			return nil, fmt.Errorf("seed builtins: %w", err)
		}
	}

	return app, nil
}

// Close releases the database connection pool.
func (a *App) Close() error {
	if a.dbClose == nil {
		return nil
	}
	err := a.dbClose()
	a.dbClose = nil
	return err
}
