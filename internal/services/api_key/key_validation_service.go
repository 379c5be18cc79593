package api_key

import (
	"context"
	"errors"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sirupsen/logrus"
)

var validationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "dandi_key_validations_total",
	Help: "API key validation attempts by outcome",
}, []string{"outcome"})

// Outcome is the result of looking up a raw key
type Outcome string

const (
	OutcomeValid    Outcome = "valid"
	OutcomeEmpty    Outcome = "empty"
	OutcomeNotFound Outcome = "not_found"
	OutcomeError    Outcome = "error"
)

// KeyLookup is the part of Store needed to validate keys
type KeyLookup interface {
	FindIDByKey(ctx context.Context, key string) (string, error)
}

// ValidationResult describes a single key check
type ValidationResult struct {
	Outcome  Outcome
	APIKeyID string
	Err      error
}

// Valid reports whether the key was found
func (r ValidationResult) Valid() bool {
	return r.Outcome == OutcomeValid
}

// ValidationService checks raw keys against storage
type ValidationService struct {
	store KeyLookup
}

// NewValidationService creates a new key validation service
func NewValidationService(store KeyLookup) *ValidationService {
	return &ValidationService{store: store}
}

// ValidateAPIKey reports whether rawKey exists. Any failure counts as invalid.
func (s *ValidationService) ValidateAPIKey(ctx context.Context, rawKey string) bool {
	return s.Check(ctx, rawKey).Valid()
}

// Check looks up rawKey and reports the outcome. It never performs a storage
// call for blank input.
func (s *ValidationService) Check(ctx context.Context, rawKey string) ValidationResult {
	result := s.check(ctx, rawKey)
	validationsTotal.WithLabelValues(string(result.Outcome)).Inc()
	return result
}

func (s *ValidationService) check(ctx context.Context, rawKey string) ValidationResult {
	key := strings.TrimSpace(rawKey)
	if key == "" {
		return ValidationResult{Outcome: OutcomeEmpty}
	}

	id, err := s.store.FindIDByKey(context.WithoutCancel(ctx), key)
	if err != nil {
		if errors.Is(err, ErrAPIKeyNotFound) {
			return ValidationResult{Outcome: OutcomeNotFound}
		}
		logrus.WithError(err).Warn("Error validating API key")
		return ValidationResult{Outcome: OutcomeError, Err: err}
	}

	return ValidationResult{Outcome: OutcomeValid, APIKeyID: id}
}
