package utils

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// GetLimitParam extracts a ?limit= query parameter, falling back to
// defaultLimit when missing or malformed and capping at maxLimit.
func GetLimitParam(c echo.Context, defaultLimit, maxLimit int) int {
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit <= 0 {
		return defaultLimit
	}

	if limit > maxLimit {
		return maxLimit
	}

	return limit
}
