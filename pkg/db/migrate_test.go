package db

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const migrationsDir = "../../migrations"

func TestMigrationFilesExist(t *testing.T) {
	for _, filename := range []string{
		"000001_initial_schema.up.sql",
		"000001_initial_schema.down.sql",
	} {
		_, err := os.Stat(filepath.Join(migrationsDir, filename))
		assert.NoError(t, err, "migration file %s must exist", filename)
	}
}

func TestMigrationFilesDeclareTables(t *testing.T) {
	up, err := os.ReadFile(filepath.Join(migrationsDir, "000001_initial_schema.up.sql"))
	require.NoError(t, err)
	down, err := os.ReadFile(filepath.Join(migrationsDir, "000001_initial_schema.down.sql"))
	require.NoError(t, err)

	for _, table := range []string{"ideas", "team_messages", "team_profiles"} {
		assert.Contains(t, string(up), "CREATE TABLE IF NOT EXISTS "+table)
		assert.Contains(t, string(down), "DROP TABLE IF EXISTS "+table)
	}
}

func TestRequiresVerification(t *testing.T) {
	assert.True(t, requiresVerification("postgres://h/db?sslmode=verify-full"))
	assert.True(t, requiresVerification("postgres://h/db?sslmode=verify-ca"))
	assert.False(t, requiresVerification("postgres://h/db?sslmode=require"))
	assert.False(t, requiresVerification("postgres://localhost/db"))
}

func TestConfigureTLS_NoCertConfigured(t *testing.T) {
	t.Setenv("DATABASE_CA_CERT", "")

	cfg, err := configureTLS("postgres://h/db?sslmode=verify-full")

	assert.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestConfigureTLS_MissingCertFile(t *testing.T) {
	t.Setenv("DATABASE_CA_CERT", filepath.Join(t.TempDir(), "missing.crt"))

	_, err := configureTLS("postgres://h/db?sslmode=verify-full")

	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "failed to read CA certificate"))
}
