package services

import (
	"context"

	"gorm.io/gorm"

	"modelhub/internal/encrypt"
	"modelhub/internal/repositories"
)

// Services aggregates all domain services backed by the database.
type Services struct {
	Providers ProviderService
	Models    ModelService
	Catalog   CatalogService
	Verifier  VerifyService

	store *repositories.Store
}

// NewServices constructs the service container over a store backed by db.
// The cipher guards credentials at rest and is shared by every writer.
func NewServices(db *gorm.DB, cipher *encrypt.Cipher) *Services {
	store := repositories.NewStore(db)
	resolver := NewOwnershipResolver()

	return &Services{
		Providers: NewProviderService(store, cipher, resolver),
		Models:    NewModelService(store, resolver),
		Catalog:   NewCatalogService(store),
		Verifier:  NewVerifyService(store),
		store:     store,
	}
}

// Seed installs the builtin catalog on an empty database.
func (s *Services) Seed(ctx context.Context) error {
	return SeedDefaults(ctx, s.store)
}
