// Package utils provides small helpers shared by the HTTP layer that carry
// no domain knowledge.
package utils

import (
	"strconv"
	"strings"
)

// AtoiDefault parses s as a base-10 int, returning def when s is blank or
// not a valid int. Surrounding whitespace is ignored.
//
//	utils.AtoiDefault("42", 0) // 42
//	utils.AtoiDefault("x", 5)  // 5
func AtoiDefault(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}

// Page is pagination metadata for list responses.
type Page struct {
	Page       int   `json:"page"        example:"1"`
	PageSize   int   `json:"page_size"   example:"20"`
	Total      int64 `json:"total"       example:"42"`
	TotalPages int   `json:"total_pages" example:"3"`
	HasNext    bool  `json:"has_next"    example:"true"`
}

// NewPage derives total pages and has-next from a clamped page request.
func NewPage(page, pageSize int, total int64) Page {
	p := Page{Page: page, PageSize: pageSize, Total: total}
	if pageSize > 0 {
		p.TotalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	p.HasNext = page < p.TotalPages
	return p
}

// ClampPage bounds page to >= 1 and pageSize to [1, maxSize], substituting
// def for a non-positive pageSize.
func ClampPage(page, pageSize, def, maxSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = def
	}
	if pageSize > maxSize {
		pageSize = maxSize
	}
	return page, pageSize
}
