package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultLimit  = 100
	MaxLimit      = 100
	DefaultOffset = 0
)

// ClampOffsetLimit normalizes raw offset/limit values for SQL queries.
// Negative offsets become 0; limits outside (0, MaxLimit] are clamped.
func ClampOffsetLimit(offset, limit int) (int, int) {
	if offset < 0 {
		offset = DefaultOffset
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return offset, limit
}

// ParseOffsetLimit extracts and clamps offset/limit query parameters from the request.
func ParseOffsetLimit(c *gin.Context) (offset, limit int) {
	offsetStr := c.DefaultQuery("offset", strconv.Itoa(DefaultOffset))
	offset, err := strconv.Atoi(offsetStr)
	if err != nil {
		offset = DefaultOffset
	}

	limitStr := c.DefaultQuery("limit", strconv.Itoa(DefaultLimit))
	limit, err = strconv.Atoi(limitStr)
	if err != nil {
		limit = DefaultLimit
	}

	return ClampOffsetLimit(offset, limit)
}
