// Package dbtest opens throwaway migrated stores for tests.
package dbtest

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/hrms/internal/config"
	dbpkg "github.com/BruksfildServices01/hrms/internal/db"
)

// New returns a migrated sqlite store under t.TempDir, closed on cleanup.
func New(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{DBPath: filepath.Join(t.TempDir(), "hrms.db")}

	db, err := dbpkg.Open(cfg, false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = dbpkg.Close(db) })

	require.NoError(t, dbpkg.Migrate(db))
	return db
}
