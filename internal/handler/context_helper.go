package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appErrors "github.com/uenr-dev/uenr-student-api/pkg/errors"
)

// idParam parses a numeric path parameter.
func idParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, appErrors.Clone(appErrors.ErrValidation, "invalid "+name+" parameter")
	}
	return id, nil
}

// intQuery parses an optional integer query parameter, returning fallback when
// absent or malformed.
func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

// int64Query parses an optional int64 query parameter, returning 0 when absent
// or malformed.
func int64Query(c *gin.Context, name string) int64 {
	raw := c.Query(name)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return v
}
