package repository

import (
	"context"
	"testing"
	"time"

	"github.com/dandi-labs/dandi-dashboard/internal/config"
	"github.com/dandi-labs/dandi-dashboard/internal/database"
	"github.com/dandi-labs/dandi-dashboard/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) *APIKeyRepository {
	t.Helper()
	db, err := database.InitDB(config.DatabaseConfig{
		Driver: config.DriverSQLite,
		DSN:    "file:" + uuid.NewString() + "?mode=memory&cache=shared",
	})
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })
	return NewAPIKeyRepository(db)
}

func insertKey(t *testing.T, repo *APIKeyRepository, name, key string, createdAt time.Time) string {
	t.Helper()
	id, err := repo.Insert(context.Background(), models.APIKeyColumns{
		"name":                name,
		"key":                 key,
		"type":                "dev",
		"usage":               int64(0),
		"limit_monthly_usage": false,
		"pii_restrictions":    false,
		"created_at":          createdAt,
	})
	require.NoError(t, err)
	return id
}

func TestInsertAssignsIDAndTimestamp(t *testing.T) {
	repo := newTestRepository(t)

	id, err := repo.Insert(context.Background(), models.APIKeyColumns{
		"name": "Backend",
		"key":  "dandi-dev-AAAAAAAAAAAAAAAAAAAAAAAA",
		"type": "dev",
	})
	require.NoError(t, err)
	_, err = uuid.Parse(id)
	require.NoError(t, err)

	row, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Backend", row.Name)
	assert.False(t, row.CreatedAt.IsZero())
	assert.Nil(t, row.MonthlyUsageLimit)
}

func TestInsertDuplicateKeyFails(t *testing.T) {
	repo := newTestRepository(t)
	insertKey(t, repo, "one", "dandi-dev-same", time.Now())

	_, err := repo.Insert(context.Background(), models.APIKeyColumns{
		"name": "two",
		"key":  "dandi-dev-same",
		"type": "dev",
	})
	assert.Error(t, err)
}

func TestListNewestFirst(t *testing.T) {
	repo := newTestRepository(t)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	insertKey(t, repo, "old", "dandi-dev-old", base)
	insertKey(t, repo, "new", "dandi-dev-new", base.Add(48*time.Hour))
	insertKey(t, repo, "mid", "dandi-dev-mid", base.Add(24*time.Hour))

	rows, err := repo.ListNewestFirst(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"new", "mid", "old"}, []string{rows[0].Name, rows[1].Name, rows[2].Name})
}

func TestGetByIDNotFound(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrAPIKeyNotFound)
}

func TestFindIDByKey(t *testing.T) {
	repo := newTestRepository(t)
	id := insertKey(t, repo, "Backend", "dandi-dev-findme", time.Now())

	found, err := repo.FindIDByKey(context.Background(), "dandi-dev-findme")
	require.NoError(t, err)
	assert.Equal(t, id, found)

	_, err = repo.FindIDByKey(context.Background(), "dandi-dev-other")
	assert.ErrorIs(t, err, ErrAPIKeyNotFound)
}

func TestUpdateByID(t *testing.T) {
	repo := newTestRepository(t)
	id := insertKey(t, repo, "Backend", "dandi-dev-update", time.Now())

	affected, err := repo.UpdateByID(context.Background(), id, models.APIKeyColumns{
		"name":                "Renamed",
		"limit_monthly_usage": true,
		"monthly_usage_limit": 500,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	row, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", row.Name)
	assert.Equal(t, "dandi-dev-update", row.Key)
	require.NotNil(t, row.MonthlyUsageLimit)
	assert.Equal(t, 500, *row.MonthlyUsageLimit)

	affected, err = repo.UpdateByID(context.Background(), id, models.APIKeyColumns{
		"limit_monthly_usage": false,
		"monthly_usage_limit": nil,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	row, err = repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, row.MonthlyUsageLimit)
}

func TestUpdateByIDNoMatch(t *testing.T) {
	repo := newTestRepository(t)

	affected, err := repo.UpdateByID(context.Background(), "missing", models.APIKeyColumns{"name": "x"})
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestDeleteByID(t *testing.T) {
	repo := newTestRepository(t)
	id := insertKey(t, repo, "Backend", "dandi-dev-delete", time.Now())

	affected, err := repo.DeleteByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	affected, err = repo.DeleteByID(context.Background(), id)
	require.NoError(t, err)
	assert.Zero(t, affected)
}
