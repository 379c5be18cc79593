package excel

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dandi-labs/dandi-dashboard/internal/models"
	"github.com/dandi-labs/dandi-dashboard/internal/services/api_key"
	"github.com/xuri/excelize/v2"
)

const sheetName = "API Keys"

// KeyLister provides the keys to export
type KeyLister interface {
	FetchAll(ctx context.Context) ([]models.APIKey, error)
}

// Service exports API keys to Excel workbooks
type Service struct {
	keys KeyLister
}

// NewExcelService creates a new Excel service instance
func NewExcelService(keys KeyLister) *Service {
	return &Service{keys: keys}
}

// ExportResult describes a finished export
type ExportResult struct {
	Filename     string
	RecordsCount int
}

var columns = []struct {
	header string
	width  float64
}{
	{"id", 38},
	{"name", 30},
	{"key", 40},
	{"type", 10},
	{"usage", 12},
	{"limit_monthly_usage", 20},
	{"monthly_usage_limit", 20},
	{"pii_restrictions", 18},
	{"created_at", 14},
}

// ExportAPIKeys writes every API key to w as an xlsx workbook. Secrets are masked.
func (s *Service) ExportAPIKeys(ctx context.Context, w io.Writer) (*ExportResult, error) {
	keys, err := s.keys.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	if err := writeHeader(f); err != nil {
		return nil, err
	}

	prodStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"FCE4D6"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create row style: %w", err)
	}

	for j, key := range keys {
		if err := writeKeyRow(f, j+2, key, prodStyle); err != nil {
			return nil, err
		}
	}

	if err := f.Write(w); err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}

	return &ExportResult{
		Filename:     fmt.Sprintf("api_keys_%d.xlsx", time.Now().Unix()),
		RecordsCount: len(keys),
	}, nil
}

func writeHeader(f *excelize.File) error {
	for i, col := range columns {
		letter := columnToLetter(i + 1)
		if err := f.SetCellValue(sheetName, letter+"1", col.header); err != nil {
			return fmt.Errorf("failed to write header %s: %w", col.header, err)
		}
		if err := f.SetColWidth(sheetName, letter, letter, col.width); err != nil {
			return fmt.Errorf("failed to set width of column %s: %w", letter, err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"D9D9D9"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	if err := f.SetCellStyle(sheetName, "A1", columnToLetter(len(columns))+"1", headerStyle); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}
	return nil
}

// writeKeyRow fills one sheet row with key. Prod keys get prodStyle.
func writeKeyRow(f *excelize.File, row int, key models.APIKey, prodStyle int) error {
	values := []interface{}{
		key.ID,
		key.Name,
		api_key.MaskAPIKey(key.Key),
		string(key.Type),
		key.Usage,
		key.LimitMonthlyUsage,
		"",
		key.PIIRestrictions,
		key.CreatedAt,
	}
	if key.MonthlyUsageLimit != nil {
		values[6] = *key.MonthlyUsageLimit
	}

	for i, v := range values {
		if err := f.SetCellValue(sheetName, fmt.Sprintf("%s%d", columnToLetter(i+1), row), v); err != nil {
			return fmt.Errorf("failed to write row %d: %w", row, err)
		}
	}

	if key.Type == models.APIKeyTypeProd {
		if err := f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("%s%d", columnToLetter(len(columns)), row), prodStyle); err != nil {
			return fmt.Errorf("failed to style row %d: %w", row, err)
		}
	}
	return nil
}

// Helper function to convert column number to Excel column letter
func columnToLetter(col int) string {
	var result string
	for col > 0 {
		col--
		result = string(rune('A'+col%26)) + result
		col /= 26
	}
	return result
}
