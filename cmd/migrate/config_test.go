package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMigrationsDir(t *testing.T) {
	t.Setenv("MIGRATIONS_DIR", "")
	assert.Equal(t, "db/migrations", migrationsDir())

	t.Setenv("MIGRATIONS_DIR", "/custom/migrations")
	assert.Equal(t, "/custom/migrations", migrationsDir())
}

func TestDatabaseDSN(t *testing.T) {
	t.Setenv("DB_DSN", "")
	assert.Equal(t, defaultDSN, databaseDSN())

	t.Setenv("DB_DSN", "postgres://u:p@db:5432/x")
	assert.Equal(t, "postgres://u:p@db:5432/x", databaseDSN())
}

func TestMigrate_UnknownCommand(t *testing.T) {
	err := migrate(nil, "sideways", "db/migrations")
	assert.ErrorContains(t, err, "unknown command")
}
