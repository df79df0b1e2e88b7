package repositories

import (
	"context"

	"gorm.io/gorm"
)

// Store aggregates the repositories over one database handle. Multi-write
// operations (cascade deletes, shared-row update paired with an override
// upsert) go through Transaction so they apply atomically.
type Store struct {
	db *gorm.DB

	Providers       ProviderRepository
	Definitions     ModelDefinitionRepository
	ProviderConfigs ProviderConfigRepository
	Preferences     ModelPreferenceRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:              db,
		Providers:       NewProviderRepository(db),
		Definitions:     NewModelDefinitionRepository(db),
		ProviderConfigs: NewProviderConfigRepository(db),
		Preferences:     NewModelPreferenceRepository(db),
	}
}

// Transaction runs fn with a Store bound to the transaction handle. A
// returned error rolls everything back.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
