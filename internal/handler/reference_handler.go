package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/uenr-dev/uenr-student-api/internal/service"
	"github.com/uenr-dev/uenr-student-api/pkg/response"
)

// ReferenceHandler exposes the lookup listings.
type ReferenceHandler struct {
	references *service.ReferenceService
}

// NewReferenceHandler constructs ReferenceHandler.
func NewReferenceHandler(references *service.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{references: references}
}

// Departments godoc
// @Summary List departments
// @Tags References
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /departments [get]
func (h *ReferenceHandler) Departments(c *gin.Context) {
	departments, err := h.references.Departments(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, 200, gin.H{"departments": departments})
}

// Programs godoc
// @Summary List programs
// @Tags References
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /programs [get]
func (h *ReferenceHandler) Programs(c *gin.Context) {
	programs, err := h.references.Programs(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, 200, gin.H{"programs": programs})
}

// Instructors godoc
// @Summary List instructors
// @Tags References
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /instructors [get]
func (h *ReferenceHandler) Instructors(c *gin.Context) {
	instructors, err := h.references.Instructors(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, 200, gin.H{"instructors": instructors})
}
