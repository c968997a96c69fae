package repository

import (
	"path/filepath"
	"testing"

	"go-ims/pkg/database"
	"go-ims/pkg/logger"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Options{
		Driver: "sqlite",
		Path:   filepath.Join(t.TempDir(), "ims.db"),
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}
