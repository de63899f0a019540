package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/uenr-dev/uenr-student-api/internal/models"
	"github.com/uenr-dev/uenr-student-api/internal/service"
	appErrors "github.com/uenr-dev/uenr-student-api/pkg/errors"
	"github.com/uenr-dev/uenr-student-api/pkg/response"
)

// CourseHandler exposes course endpoints.
type CourseHandler struct {
	courses *service.CourseService
}

// NewCourseHandler constructs CourseHandler.
func NewCourseHandler(courses *service.CourseService) *CourseHandler {
	return &CourseHandler{courses: courses}
}

// List godoc
// @Summary List courses
// @Tags Courses
// @Produce json
// @Param search query string false "Search by code or title"
// @Param department_id query int false "Filter by department"
// @Param include_inactive query bool false "Include deactivated courses"
// @Param page query int false "Page"
// @Param per_page query int false "Page size"
// @Success 200 {object} map[string]interface{}
// @Router /courses [get]
func (h *CourseHandler) List(c *gin.Context) {
	filter := models.CourseFilter{
		Search:          strings.TrimSpace(c.Query("search")),
		DepartmentID:    int64Query(c, "department_id"),
		IncludeInactive: c.Query("include_inactive") == "true",
		Page:            intQuery(c, "page", 1),
		PageSize:        intQuery(c, "per_page", 0),
	}
	courses, pagination, err := h.courses.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, "courses", courses, pagination)
}

// Get godoc
// @Summary Get course detail with prerequisites
// @Tags Courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} models.CourseWithPrerequisites
// @Router /courses/{id} [get]
func (h *CourseHandler) Get(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	course, err := h.courses.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, 200, course)
}

// Create godoc
// @Summary Add a course
// @Tags Courses
// @Accept json
// @Produce json
// @Param payload body service.CreateCourseRequest true "Course payload"
// @Success 201 {object} map[string]interface{}
// @Router /courses [post]
func (h *CourseHandler) Create(c *gin.Context) {
	var req service.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Kind, appErrors.ErrValidation.Status, "invalid payload"))
		return
	}
	course, err := h.courses.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Course created successfully", "course", course)
}

// Update godoc
// @Summary Update a course
// @Tags Courses
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Param payload body service.UpdateCourseRequest true "Course payload"
// @Success 200 {object} map[string]interface{}
// @Router /courses/{id} [put]
func (h *CourseHandler) Update(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Kind, appErrors.ErrValidation.Status, "invalid payload"))
		return
	}
	course, err := h.courses.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Updated(c, "Course updated successfully", "course", course)
}

// Delete godoc
// @Summary Deactivate a course
// @Tags Courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} map[string]interface{}
// @Router /courses/{id} [delete]
func (h *CourseHandler) Delete(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.courses.Deactivate(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Course deactivated successfully")
}

// AddPrerequisite godoc
// @Summary Link a prerequisite to a course
// @Tags Courses
// @Produce json
// @Param id path int true "Course ID"
// @Param prerequisite_id path int true "Prerequisite course ID"
// @Success 200 {object} map[string]interface{}
// @Router /courses/{id}/prerequisites/{prerequisite_id} [post]
func (h *CourseHandler) AddPrerequisite(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	prereqID, err := idParam(c, "prerequisite_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.courses.AddPrerequisite(c.Request.Context(), id, prereqID); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Prerequisite added successfully")
}

// RemovePrerequisite godoc
// @Summary Unlink a prerequisite from a course
// @Tags Courses
// @Produce json
// @Param id path int true "Course ID"
// @Param prerequisite_id path int true "Prerequisite course ID"
// @Success 200 {object} map[string]interface{}
// @Router /courses/{id}/prerequisites/{prerequisite_id} [delete]
func (h *CourseHandler) RemovePrerequisite(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	prereqID, err := idParam(c, "prerequisite_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.courses.RemovePrerequisite(c.Request.Context(), id, prereqID); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Prerequisite removed successfully")
}
