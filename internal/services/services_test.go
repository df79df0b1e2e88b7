package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"modelhub/internal/database"
	"modelhub/internal/encrypt"
	"modelhub/internal/repositories"
)

// newTestStore opens a throwaway on-disk sqlite store with migrations run.
func newTestStore(t *testing.T) *repositories.Store {
	t.Helper()
	db, err := database.Init(database.Config{
		Path:     filepath.Join(t.TempDir(), "modelhub.db"),
		LogLevel: logger.Silent,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return repositories.NewStore(db)
}

func newTestCipher(t *testing.T) *encrypt.Cipher {
	t.Helper()
	cipher, err := encrypt.New("services-test-passphrase")
	require.NoError(t, err)
	return cipher
}
