package models

import "time"

// APIKeyEventType names a change in an API key's lifecycle
type APIKeyEventType string

const (
	APIKeyCreated APIKeyEventType = "api_key.created"
	APIKeyUpdated APIKeyEventType = "api_key.updated"
	APIKeyDeleted APIKeyEventType = "api_key.deleted"
)

// APIKeyEvent is broadcast after a successful mutation. It never carries the secret.
type APIKeyEvent struct {
	Type       APIKeyEventType `json:"type"`
	APIKeyID   string          `json:"api_key_id"`
	Name       string          `json:"name,omitempty"`
	KeyType    APIKeyType      `json:"key_type,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}
