package api_key

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dandi-labs/dandi-dashboard/internal/database/repository"
	"github.com/dandi-labs/dandi-dashboard/internal/models"
	"github.com/sirupsen/logrus"
)

// Store is the persistence boundary used by Service
type Store interface {
	ListNewestFirst(ctx context.Context) ([]models.APIKeyRow, error)
	GetByID(ctx context.Context, id string) (*models.APIKeyRow, error)
	FindIDByKey(ctx context.Context, key string) (string, error)
	Insert(ctx context.Context, columns models.APIKeyColumns) (string, error)
	UpdateByID(ctx context.Context, id string, columns models.APIKeyColumns) (int64, error)
	DeleteByID(ctx context.Context, id string) (int64, error)
}

// Publisher receives lifecycle events after successful mutations
type Publisher interface {
	Publish(ctx context.Context, event models.APIKeyEvent)
}

// ErrAPIKeyNotFound is wrapped by service errors for IDs that match no key
var ErrAPIKeyNotFound = repository.ErrAPIKeyNotFound

// Service handles API key CRUD operations
type Service struct {
	store     Store
	publisher Publisher
	now       func() time.Time
}

// NewService creates a new API key service. publisher may be nil.
func NewService(store Store, publisher Publisher) *Service {
	return &Service{
		store:     store,
		publisher: publisher,
		now:       time.Now,
	}
}

// FetchAll returns every API key, newest first
func (s *Service) FetchAll(ctx context.Context) ([]models.APIKey, error) {
	rows, err := s.store.ListNewestFirst(context.WithoutCancel(ctx))
	if err != nil {
		return nil, NewServiceError(fmt.Sprintf("Failed to fetch API keys: %v", err), err)
	}

	keys := make([]models.APIKey, 0, len(rows))
	for _, row := range rows {
		keys = append(keys, FromStorage(row))
	}
	return keys, nil
}

// Get returns a single API key by ID
func (s *Service) Get(ctx context.Context, id string) (*models.APIKey, error) {
	if id == "" {
		return nil, NewValidationError(msgIDRequired)
	}

	row, err := s.store.GetByID(context.WithoutCancel(ctx), id)
	if err != nil {
		if errors.Is(err, ErrAPIKeyNotFound) {
			return nil, NewServiceError("API key not found", err)
		}
		return nil, NewServiceError(fmt.Sprintf("Failed to fetch API key: %v", err), err)
	}

	key := FromStorage(*row)
	return &key, nil
}

// Create validates form and stores a new API key with a freshly generated secret
func (s *Service) Create(ctx context.Context, form models.APIKeyFormData) error {
	err := s.create(ctx, form)
	return passThroughOrWrap(err, "An unexpected error occurred while creating API key")
}

func (s *Service) create(ctx context.Context, form models.APIKeyFormData) error {
	if err := ValidateAPIKeyForm(form); err != nil {
		return err
	}

	keyValue, err := GenerateAPIKey(form.Type)
	if err != nil {
		return fmt.Errorf("generate key: %w", err)
	}

	var usage int64
	fields := formFields(form)
	fields.Key = &keyValue
	fields.Usage = &usage

	id, err := s.store.Insert(context.WithoutCancel(ctx), ToStorage(fields))
	if err != nil {
		return NewServiceError(fmt.Sprintf("Failed to create API key: %v", err), err)
	}

	logrus.WithFields(logrus.Fields{"api_key_id": id, "type": form.Type}).Info("API key created")
	s.publish(ctx, models.APIKeyCreated, id, form)
	return nil
}

// Update applies form to the API key with the given ID. The secret never changes.
func (s *Service) Update(ctx context.Context, id string, form models.APIKeyFormData) error {
	err := s.update(ctx, id, form)
	return passThroughOrWrap(err, "An unexpected error occurred while updating API key")
}

func (s *Service) update(ctx context.Context, id string, form models.APIKeyFormData) error {
	if err := ValidateAPIKeyForm(form); err != nil {
		return err
	}
	if id == "" {
		return NewValidationError(msgIDRequired)
	}

	columns := ToStorage(formFields(form))
	if !form.LimitMonthlyUsage {
		columns["monthly_usage_limit"] = nil
	}

	affected, err := s.store.UpdateByID(context.WithoutCancel(ctx), id, columns)
	if err != nil {
		return NewServiceError(fmt.Sprintf("Failed to update API key: %v", err), err)
	}
	if affected == 0 {
		return NewServiceError("Failed to update API key: API key not found", ErrAPIKeyNotFound)
	}

	logrus.WithField("api_key_id", id).Info("API key updated")
	s.publish(ctx, models.APIKeyUpdated, id, form)
	return nil
}

// Delete removes the API key with the given ID
func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.delete(ctx, id)
	return passThroughOrWrap(err, "An unexpected error occurred while deleting API key")
}

func (s *Service) delete(ctx context.Context, id string) error {
	if id == "" {
		return NewValidationError(msgIDRequired)
	}

	affected, err := s.store.DeleteByID(context.WithoutCancel(ctx), id)
	if err != nil {
		return NewServiceError(fmt.Sprintf("Failed to delete API key: %v", err), err)
	}
	if affected == 0 {
		return NewServiceError("Failed to delete API key: API key not found", ErrAPIKeyNotFound)
	}

	logrus.WithField("api_key_id", id).Info("API key deleted")
	s.publish(ctx, models.APIKeyDeleted, id, models.APIKeyFormData{})
	return nil
}

func (s *Service) publish(ctx context.Context, eventType models.APIKeyEventType, id string, form models.APIKeyFormData) {
	if s.publisher == nil {
		return
	}
	s.publisher.Publish(context.WithoutCancel(ctx), models.APIKeyEvent{
		Type:       eventType,
		APIKeyID:   id,
		Name:       form.Name,
		KeyType:    form.Type,
		OccurredAt: s.now().UTC(),
	})
}

// passThroughOrWrap returns validation and service errors unchanged and wraps
// anything else in a ServiceError carrying message
func passThroughOrWrap(err error, message string) error {
	if err == nil {
		return nil
	}
	switch KindOf(err) {
	case KindValidation, KindService:
		return err
	default:
		return NewServiceError(message, err)
	}
}
