package repository

import (
	"context"
	"errors"
	"time"

	"github.com/dandi-labs/dandi-dashboard/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrAPIKeyNotFound is returned when a single-row lookup matches no rows
var ErrAPIKeyNotFound = errors.New("API key not found")

// APIKeyRepository handles database operations for api_keys rows
type APIKeyRepository struct {
	db *gorm.DB
}

// NewAPIKeyRepository creates a new APIKeyRepository instance
func NewAPIKeyRepository(db *gorm.DB) *APIKeyRepository {
	return &APIKeyRepository{db: db}
}

// ListNewestFirst returns every row ordered by creation time, newest first
func (r *APIKeyRepository) ListNewestFirst(ctx context.Context) ([]models.APIKeyRow, error) {
	var rows []models.APIKeyRow
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetByID retrieves a row by its ID
func (r *APIKeyRepository) GetByID(ctx context.Context, id string) (*models.APIKeyRow, error) {
	var row models.APIKeyRow
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAPIKeyNotFound
		}
		return nil, err
	}
	return &row, nil
}

// FindIDByKey returns the ID of the row holding key, or ErrAPIKeyNotFound
func (r *APIKeyRepository) FindIDByKey(ctx context.Context, key string) (string, error) {
	var row models.APIKeyRow
	err := r.db.WithContext(ctx).
		Select("id").
		Where(map[string]interface{}{"key": key}).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrAPIKeyNotFound
		}
		return "", err
	}
	return row.ID, nil
}

// Insert adds a new row and returns the ID assigned to it
func (r *APIKeyRepository) Insert(ctx context.Context, columns models.APIKeyColumns) (string, error) {
	values := make(map[string]interface{}, len(columns)+2)
	for k, v := range columns {
		values[k] = v
	}

	id, ok := values["id"].(string)
	if !ok || id == "" {
		id = uuid.NewString()
		values["id"] = id
	}
	if _, ok := values["created_at"]; !ok {
		values["created_at"] = time.Now().UTC()
	}

	if err := r.db.WithContext(ctx).Model(&models.APIKeyRow{}).Create(values).Error; err != nil {
		return "", err
	}
	return id, nil
}

// UpdateByID applies columns to the row with the given ID and reports how many rows matched
func (r *APIKeyRepository) UpdateByID(ctx context.Context, id string, columns models.APIKeyColumns) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.APIKeyRow{}).
		Where("id = ?", id).
		Updates(map[string]interface{}(columns))
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// DeleteByID removes a row by its ID and reports how many rows were removed
func (r *APIKeyRepository) DeleteByID(ctx context.Context, id string) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.APIKeyRow{}, "id = ?", id)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
