package router

import (
	"github.com/gin-gonic/gin"

	"github.com/uenr-dev/uenr-student-api/internal/handler"
)

// Handlers groups the API handlers wired by Register.
type Handlers struct {
	Students    *handler.StudentHandler
	Courses     *handler.CourseHandler
	Enrollments *handler.EnrollmentHandler
	Grades      *handler.GradeHandler
	References  *handler.ReferenceHandler
	Dashboard   *handler.DashboardHandler
	Exports     *handler.ExportHandler
}

// Register mounts all API routes under the given prefix.
func Register(r *gin.Engine, prefix string, h Handlers) {
	api := r.Group(prefix)

	api.GET("/students", h.Students.List)
	api.POST("/students", h.Students.Create)
	api.GET("/students/:id", h.Students.Get)
	api.PUT("/students/:id", h.Students.Update)
	api.DELETE("/students/:id", h.Students.Delete)

	api.GET("/courses", h.Courses.List)
	api.POST("/courses", h.Courses.Create)
	api.GET("/courses/:id", h.Courses.Get)
	api.PUT("/courses/:id", h.Courses.Update)
	api.DELETE("/courses/:id", h.Courses.Delete)
	api.POST("/courses/:id/prerequisites/:prerequisite_id", h.Courses.AddPrerequisite)
	api.DELETE("/courses/:id/prerequisites/:prerequisite_id", h.Courses.RemovePrerequisite)

	api.GET("/enrollments", h.Enrollments.List)
	api.POST("/enrollments", h.Enrollments.Create)

	api.GET("/grades", h.Grades.List)
	api.POST("/grades", h.Grades.Create)

	api.GET("/departments", h.References.Departments)
	api.GET("/programs", h.References.Programs)
	api.GET("/instructors", h.References.Instructors)

	api.GET("/dashboard", h.Dashboard.Stats)

	api.GET("/exports/students", h.Exports.Roster)
	api.GET("/exports/students/:id/transcript", h.Exports.Transcript)
}
