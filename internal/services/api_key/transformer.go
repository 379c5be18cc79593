package api_key

import (
	"github.com/dandi-labs/dandi-dashboard/internal/models"
)

const createdAtLayout = "2006-01-02"

// FromStorage converts an api_keys row into an APIKey
func FromStorage(row models.APIKeyRow) models.APIKey {
	key := models.APIKey{
		ID:                row.ID,
		Name:              row.Name,
		Key:               row.Key,
		Type:              row.Type,
		MonthlyUsageLimit: row.MonthlyUsageLimit,
		CreatedAt:         row.CreatedAt.UTC().Format(createdAtLayout),
	}
	if row.Usage != nil {
		key.Usage = *row.Usage
	}
	if row.LimitMonthlyUsage != nil {
		key.LimitMonthlyUsage = *row.LimitMonthlyUsage
	}
	if row.PIIRestrictions != nil {
		key.PIIRestrictions = *row.PIIRestrictions
	}
	return key
}

// ToStorage converts the set fields of f into api_keys columns.
// Unset fields are omitted rather than written as NULL.
func ToStorage(f models.APIKeyFields) models.APIKeyColumns {
	columns := models.APIKeyColumns{}
	if f.Name != nil {
		columns["name"] = *f.Name
	}
	if f.Type != nil {
		columns["type"] = string(*f.Type)
	}
	if f.Key != nil {
		columns["key"] = *f.Key
	}
	if f.Usage != nil {
		columns["usage"] = *f.Usage
	}
	if f.MonthlyUsageLimit != nil {
		columns["monthly_usage_limit"] = *f.MonthlyUsageLimit
	}
	if f.LimitMonthlyUsage != nil {
		columns["limit_monthly_usage"] = *f.LimitMonthlyUsage
	}
	if f.PIIRestrictions != nil {
		columns["pii_restrictions"] = *f.PIIRestrictions
	}
	return columns
}

// formFields returns the fields of form that are written on create and update
func formFields(form models.APIKeyFormData) models.APIKeyFields {
	fields := models.APIKeyFields{
		Name:              &form.Name,
		Type:              &form.Type,
		LimitMonthlyUsage: &form.LimitMonthlyUsage,
		PIIRestrictions:   &form.PIIRestrictions,
	}
	if form.LimitMonthlyUsage {
		fields.MonthlyUsageLimit = form.MonthlyUsageLimit
	}
	return fields
}
