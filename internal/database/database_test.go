package database

import (
	"testing"

	"github.com/dandi-labs/dandi-dashboard/internal/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDB_SQLiteMigrates(t *testing.T) {
	db, err := InitDB(config.DatabaseConfig{
		Driver: config.DriverSQLite,
		DSN:    "file:" + uuid.NewString() + "?mode=memory&cache=shared",
	})
	require.NoError(t, err)
	defer Close(db)

	assert.True(t, db.Migrator().HasTable("api_keys"))
	assert.True(t, db.Migrator().HasColumn("api_keys", "pii_restrictions"))
	assert.True(t, db.Migrator().HasColumn("api_keys", "monthly_usage_limit"))
}

func TestInitDB_UnknownDriver(t *testing.T) {
	_, err := InitDB(config.DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
}
