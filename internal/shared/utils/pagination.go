package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cbnu/subscribe-service/internal/shared/constants"
)

// Pagination is a 1-based page request.
type Pagination struct {
	Page     int
	PageSize int
}

// ParsePagination reads ?page= and ?page_size=. Anything that is not a
// positive integer means "use the default"; oversized pages are clamped.
func ParsePagination(c *gin.Context) Pagination {
	p := Pagination{
		Page:     positiveOr(c.Query("page"), constants.DefaultPage),
		PageSize: positiveOr(c.Query("page_size"), constants.DefaultPageSize),
	}
	p.PageSize = min(p.PageSize, constants.MaxPageSize)
	return p
}

func positiveOr(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

// TotalPages is never below one so empty listings still report a page.
func TotalPages(total int64, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 1
	}
	return int((total-1)/int64(pageSize)) + 1
}
