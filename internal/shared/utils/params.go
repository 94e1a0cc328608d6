package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"stayops/internal/shared/errors"
)

// ParseUintParam parses a numeric primary key from a URL path parameter.
// paramName is the Gin route parameter name (e.g., "id").
// entityName is used in error messages (e.g., "country", "menu item").
func ParseUintParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}

	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || parsed == 0 {
		return 0, errors.NewValidationError(
			fmt.Sprintf("invalid %s ID, expected a positive number", entityName),
		)
	}

	return uint(parsed), nil
}

// ParseUintQuery parses a numeric ID from a query string parameter.
func ParseUintQuery(c *gin.Context, queryName, entityName string) (uint, error) {
	raw := c.Query(queryName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}

	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || parsed == 0 {
		return 0, errors.NewValidationError(
			fmt.Sprintf("invalid %s ID, expected a positive number", entityName),
		)
	}

	return uint(parsed), nil
}
