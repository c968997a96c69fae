package database

import (
	"path/filepath"
	"testing"

	"go-ims/internal/model"
	"go-ims/pkg/logger"

	"github.com/stretchr/testify/require"
)

func TestConnectSQLiteCreatesSchema(t *testing.T) {
	db, err := Connect(Options{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "ims.db")}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	for _, m := range model.All() {
		require.True(t, db.Migrator().HasTable(m), "missing table for %T", m)
	}
	require.True(t, db.Migrator().HasColumn(&model.Supplier{}, "desc"))
}

func TestConnectRejectsUnknownDriver(t *testing.T) {
	_, err := Connect(Options{Driver: "oracle"}, logger.Nop())
	require.Error(t, err)
}
