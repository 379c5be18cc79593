package models

import (
	"time"
)

// APIKeyType is the environment an API key is issued for
type APIKeyType string

const (
	APIKeyTypeDev  APIKeyType = "dev"
	APIKeyTypeProd APIKeyType = "prod"
)

// IsValid reports whether t is one of the known key types
func (t APIKeyType) IsValid() bool {
	return t == APIKeyTypeDev || t == APIKeyTypeProd
}

// APIKeyRow is the storage shape of an API key in the api_keys table
type APIKeyRow struct {
	ID                string     `gorm:"primaryKey;type:varchar(36)"`
	Name              string     `gorm:"type:varchar(100);not null"`
	Key               string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	Type              APIKeyType `gorm:"type:varchar(10);not null"`
	Usage             *int64     `gorm:"default:0"`
	MonthlyUsageLimit *int
	LimitMonthlyUsage *bool `gorm:"default:false"`
	PIIRestrictions   *bool `gorm:"column:pii_restrictions;default:false"`
	CreatedAt         time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for the APIKeyRow model
func (APIKeyRow) TableName() string {
	return "api_keys"
}

// APIKeyColumns is a partial api_keys row keyed by column name.
// Only the columns present in the map are written.
type APIKeyColumns map[string]interface{}

// APIKey is the application-facing API key
type APIKey struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Key               string     `json:"key"`
	Type              APIKeyType `json:"type"`
	Usage             int64      `json:"usage"`
	MonthlyUsageLimit *int       `json:"monthlyUsageLimit,omitempty"`
	LimitMonthlyUsage bool       `json:"limitMonthlyUsage"`
	PIIRestrictions   bool       `json:"piiRestrictions"`
	CreatedAt         string     `json:"createdAt" example:"2025-01-15"`
}

// APIKeyFields is a partial APIKey. Nil fields are left untouched when the
// value is converted to storage columns.
type APIKeyFields struct {
	Name              *string
	Key               *string
	Type              *APIKeyType
	Usage             *int64
	MonthlyUsageLimit *int
	LimitMonthlyUsage *bool
	PIIRestrictions   *bool
}

// APIKeyFormData is the user-editable subset of an API key
type APIKeyFormData struct {
	Name              string     `json:"name" example:"Production backend"`
	Type              APIKeyType `json:"type" example:"dev"`
	LimitMonthlyUsage bool       `json:"limitMonthlyUsage"`
	MonthlyUsageLimit *int       `json:"monthlyUsageLimit,omitempty" example:"1000"`
	PIIRestrictions   bool       `json:"piiRestrictions"`
}

// APIKeyResponse is an API key as listed on the dashboard, with the secret masked
type APIKeyResponse struct {
	APIKey
	MaskedKey string `json:"maskedKey" example:"dandi-dev-************************"`
}

// ValidateKeyRequest is the body of POST /api/validate-key
type ValidateKeyRequest struct {
	APIKey interface{} `json:"apiKey" swaggertype:"string"`
}

// ValidateKeyResponse is the body returned by POST /api/validate-key
type ValidateKeyResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}
