package testutils

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"flowdeck-api/db"
	"flowdeck-api/internal/config"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

func SetupTestDatabase(t *testing.T) *sql.DB {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	testDB, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	require.NoError(t, err)
	t.Cleanup(func() { testDB.Close() })

	err = db.InitializeSchema(testDB)
	require.NoError(t, err)

	err = db.SeedAdminUser(context.Background(), testDB)
	require.NoError(t, err)

	return testDB
}

func SetupTestRepositoryFactory(t *testing.T) *db.RepositoryFactory {
	return db.NewRepositoryFactory(SetupTestDatabase(t))
}

func GetTestConfig() *config.Config {
	return &config.Config{
		Port:             "0",
		SQLitePath:       ":memory:",
		JwtKey:           []byte("test_jwt_secret_key_for_testing_only"),
		JwtIssuer:        "flowdeck-api",
		JwtAudience:      "flowdeck-app",
		JwtExpiryMinutes: 60,
	}
}
