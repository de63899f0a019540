package handler

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/uenr-dev/uenr-student-api/internal/models"
	"github.com/uenr-dev/uenr-student-api/internal/service"
	"github.com/uenr-dev/uenr-student-api/pkg/response"
)

// ExportHandler serves roster and transcript downloads.
type ExportHandler struct {
	exports *service.ExportService
}

// NewExportHandler constructs ExportHandler.
func NewExportHandler(exports *service.ExportService) *ExportHandler {
	return &ExportHandler{exports: exports}
}

// Roster godoc
// @Summary Export the student roster
// @Tags Exports
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv or pdf" default(csv)
// @Param search query string false "Search by name, student ID or email"
// @Param program_id query int false "Filter by program"
// @Success 200 {file} file
// @Router /exports/students [get]
func (h *ExportHandler) Roster(c *gin.Context) {
	filter := models.StudentFilter{
		Search:    strings.TrimSpace(c.Query("search")),
		ProgramID: int64Query(c, "program_id"),
	}
	file, err := h.exports.Roster(c.Request.Context(), filter, c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	serveFile(c, file)
}

// Transcript godoc
// @Summary Export a student transcript
// @Tags Exports
// @Produce text/csv
// @Produce application/pdf
// @Param id path int true "Student ID"
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} file
// @Router /exports/students/{id}/transcript [get]
func (h *ExportHandler) Transcript(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	file, err := h.exports.Transcript(c.Request.Context(), id, c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	serveFile(c, file)
}

func serveFile(c *gin.Context, file *service.ExportFile) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	if file.Truncated {
		c.Header("X-Export-Truncated", "true")
	}
	c.Data(200, file.ContentType, file.Content)
}
