package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/uenr-dev/uenr-student-api/internal/models"
	"github.com/uenr-dev/uenr-student-api/internal/service"
	appErrors "github.com/uenr-dev/uenr-student-api/pkg/errors"
	"github.com/uenr-dev/uenr-student-api/pkg/response"
)

// EnrollmentHandler exposes enrollment endpoints.
type EnrollmentHandler struct {
	enrollments *service.EnrollmentService
}

// NewEnrollmentHandler constructs EnrollmentHandler.
func NewEnrollmentHandler(enrollments *service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollments: enrollments}
}

// List godoc
// @Summary List enrollments
// @Tags Enrollments
// @Produce json
// @Param student_id query int false "Filter by student"
// @Param course_id query int false "Filter by course"
// @Success 200 {object} map[string]interface{}
// @Router /enrollments [get]
func (h *EnrollmentHandler) List(c *gin.Context) {
	filter := models.EnrollmentFilter{
		StudentID: int64Query(c, "student_id"),
		CourseID:  int64Query(c, "course_id"),
	}
	enrollments, err := h.enrollments.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, 200, gin.H{"enrollments": enrollments})
}

// Create godoc
// @Summary Enroll a student in a course
// @Tags Enrollments
// @Accept json
// @Produce json
// @Param payload body service.CreateEnrollmentRequest true "Enrollment payload"
// @Success 201 {object} map[string]interface{}
// @Router /enrollments [post]
func (h *EnrollmentHandler) Create(c *gin.Context) {
	var req service.CreateEnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Kind, appErrors.ErrValidation.Status, "invalid payload"))
		return
	}
	enrollment, err := h.enrollments.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Enrollment created successfully", "enrollment", enrollment)
}
