package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uenr-dev/uenr-student-api/internal/models"
	appErrors "github.com/uenr-dev/uenr-student-api/pkg/errors"
)

// JSON sends a success response with an arbitrary payload.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(status, payload)
}

// Paginated sends a paginated listing under the given key, e.g.
// {"students": [...], "total": 25, "pages": 3, "current_page": 1, ...}.
func Paginated(c *gin.Context, key string, rows interface{}, p *models.Pagination) {
	JSON(c, http.StatusOK, gin.H{
		key:            rows,
		"total":        p.Total,
		"pages":        p.Pages,
		"current_page": p.CurrentPage,
		"has_next":     p.HasNext,
		"has_prev":     p.HasPrev,
	})
}

// Created responds with HTTP 201 and a {message, <key>: entity} body.
func Created(c *gin.Context, message, key string, entity interface{}) {
	JSON(c, http.StatusCreated, gin.H{"message": message, key: entity})
}

// Updated responds with HTTP 200 and a {message, <key>: entity} body.
func Updated(c *gin.Context, message, key string, entity interface{}) {
	JSON(c, http.StatusOK, gin.H{"message": message, key: entity})
}

// Message responds with HTTP 200 and a bare {message} body.
func Message(c *gin.Context, message string) {
	JSON(c, http.StatusOK, gin.H{"message": message})
}

// Error sends the structured error envelope {"error": {"kind", "message"}}.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(appErr.Status, gin.H{"error": appErr})
}
