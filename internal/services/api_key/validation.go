package api_key

import (
	"strings"
	"unicode/utf8"

	"github.com/dandi-labs/dandi-dashboard/internal/models"
)

const (
	MaxNameLength          = 100
	MinMonthlyUsageLimit   = 1
	MaxMonthlyUsageLimit   = 1_000_000
	msgNameRequired        = "Key name is required"
	msgNameTooLong         = "Key name must be less than 100 characters"
	msgInvalidType         = "Key type must be dev or prod"
	msgMonthlyLimitOutside = "Monthly usage limit must be between 1 and 1,000,000"
	msgIDRequired          = "API key ID is required"
)

// ValidateAPIKeyForm checks form against the field constraints
func ValidateAPIKeyForm(form models.APIKeyFormData) error {
	if strings.TrimSpace(form.Name) == "" {
		return NewValidationError(msgNameRequired)
	}

	if utf8.RuneCountInString(form.Name) > MaxNameLength {
		return NewValidationError(msgNameTooLong)
	}

	if !form.Type.IsValid() {
		return NewValidationError(msgInvalidType)
	}

	if form.LimitMonthlyUsage {
		limit := form.MonthlyUsageLimit
		if limit == nil || *limit < MinMonthlyUsageLimit || *limit > MaxMonthlyUsageLimit {
			return NewValidationError(msgMonthlyLimitOutside)
		}
	}

	return nil
}
