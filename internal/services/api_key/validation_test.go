package api_key

import (
	"strings"
	"testing"

	"github.com/dandi-labs/dandi-dashboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() models.APIKeyFormData {
	return models.APIKeyFormData{
		Name: "Backend",
		Type: models.APIKeyTypeDev,
	}
}

func TestValidateAPIKeyForm(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(f *models.APIKeyFormData)
		wantMsg string
	}{
		{"valid", func(f *models.APIKeyFormData) {}, ""},
		{"empty name", func(f *models.APIKeyFormData) { f.Name = "" }, "Key name is required"},
		{"whitespace name", func(f *models.APIKeyFormData) { f.Name = "   \t" }, "Key name is required"},
		{"name of 100 chars", func(f *models.APIKeyFormData) { f.Name = strings.Repeat("a", 100) }, ""},
		{"name of 101 chars", func(f *models.APIKeyFormData) { f.Name = strings.Repeat("a", 101) }, "Key name must be less than 100 characters"},
		{"100 multibyte chars", func(f *models.APIKeyFormData) { f.Name = strings.Repeat("é", 100) }, ""},
		{"unknown type", func(f *models.APIKeyFormData) { f.Type = "staging" }, "Key type must be dev or prod"},
		{"limit enabled without value", func(f *models.APIKeyFormData) { f.LimitMonthlyUsage = true }, "Monthly usage limit must be between 1 and 1,000,000"},
		{"limit zero", func(f *models.APIKeyFormData) {
			f.LimitMonthlyUsage = true
			f.MonthlyUsageLimit = ptr(0)
		}, "Monthly usage limit must be between 1 and 1,000,000"},
		{"limit above max", func(f *models.APIKeyFormData) {
			f.LimitMonthlyUsage = true
			f.MonthlyUsageLimit = ptr(1_000_001)
		}, "Monthly usage limit must be between 1 and 1,000,000"},
		{"limit at bounds", func(f *models.APIKeyFormData) {
			f.LimitMonthlyUsage = true
			f.MonthlyUsageLimit = ptr(1_000_000)
		}, ""},
		{"limit ignored when disabled", func(f *models.APIKeyFormData) { f.MonthlyUsageLimit = ptr(-5) }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)

			err := ValidateAPIKeyForm(form)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Equal(t, KindValidation, KindOf(err))
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}
