// Package testdb opens a migrated in-memory sqlite database for tests.
package testdb

import (
	"context"
	"testing"

	_ "github.com/shashiranjanraj/donorlink/database/migrations"
	"github.com/shashiranjanraj/donorlink/pkg/database"
	"github.com/shashiranjanraj/donorlink/pkg/migration"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// New returns a fresh migrated database closed at test cleanup.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	require.NoError(t, migration.New(db).Quiet().Run())
	return db
}

// Ctx returns a context carrying a session of db, as database.Middleware
// would inside a request.
func Ctx(t testing.TB, db *gorm.DB) context.Context {
	t.Helper()
	return database.WithDB(context.Background(), db)
}
