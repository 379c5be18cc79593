package utils

import (
	"math"
	"strconv"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// PaginationResponse represents pagination response metadata
type PaginationResponse struct {
	Total       int  `json:"total"`
	Page        int  `json:"page"`
	PageSize    int  `json:"page_size"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

// CalculatePaginationInfo calculates pagination metadata
func CalculatePaginationInfo(total, page, pageSize int) PaginationResponse {
	totalPages := int(math.Ceil(float64(total) / float64(pageSize)))
	if totalPages == 0 {
		totalPages = 1
	}

	return PaginationResponse{
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}
}

// PageBounds returns the [start, end) slice bounds of page within total items
func PageBounds(total, page, pageSize int) (int, int) {
	if page < 1 || pageSize < 1 {
		return 0, 0
	}
	// Compare before multiplying so huge page numbers cannot overflow
	if page-1 > total/pageSize {
		return total, total
	}
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return start, end
}

// ParsePaginationFromQuery parses pagination parameters from query string.
// ok is false when no page_size was given, meaning every record is wanted.
func ParsePaginationFromQuery(pageStr, pageSizeStr string) (page, pageSize int, ok bool) {
	page = 1
	pageSize = defaultPageSize

	if pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}

	if pageSizeStr == "" {
		return page, pageSize, false
	}
	if ps, err := strconv.Atoi(pageSizeStr); err == nil && ps > 0 && ps <= maxPageSize {
		pageSize = ps
	}
	return page, pageSize, true
}
