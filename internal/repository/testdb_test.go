package repository

import (
	"testing"

	"eventpro/internal/database"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))

	t.Cleanup(func() { _ = database.Close(db) })
	return db
}
