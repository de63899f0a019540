package service

import (
	"context"
	"database/sql"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/uenr-dev/uenr-student-api/internal/models"
	"github.com/uenr-dev/uenr-student-api/internal/repository"
	appErrors "github.com/uenr-dev/uenr-student-api/pkg/errors"
)

type courseRepository interface {
	List(ctx context.Context, filter models.CourseFilter) ([]models.CourseDetail, int, error)
	FindByID(ctx context.Context, id int64) (*models.CourseDetail, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	Create(ctx context.Context, course *models.Course) error
	Update(ctx context.Context, course *models.Course) error
	SoftDelete(ctx context.Context, id int64) error
	Prerequisites(ctx context.Context, courseID int64) ([]models.CourseRef, error)
	AddPrerequisite(ctx context.Context, courseID, prerequisiteID int64) error
	RemovePrerequisite(ctx context.Context, courseID, prerequisiteID int64) (bool, error)
}

// CreateCourseRequest holds the payload for adding courses.
type CreateCourseRequest struct {
	CourseCode   string  `json:"course_code" validate:"required"`
	Title        string  `json:"title" validate:"required"`
	Description  *string `json:"description"`
	Credits      int     `json:"credits"`
	DepartmentID int64   `json:"department_id" validate:"required"`
	InstructorID *int64  `json:"instructor_id"`
	Level        int     `json:"level" validate:"required"`
	Semester     string  `json:"semester"`
}

// UpdateCourseRequest holds a partial course update. The course code is
// immutable after creation.
type UpdateCourseRequest struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Credits      *int    `json:"credits"`
	DepartmentID *int64  `json:"department_id"`
	InstructorID *int64  `json:"instructor_id"`
	Level        *int    `json:"level"`
	Semester     *string `json:"semester"`
}

// CourseService handles course use-cases, including the prerequisite graph.
type CourseService struct {
	repo      courseRepository
	validator *validator.Validate
	cache     *CacheService
	limits    ListingLimits
	logger    *zap.Logger
}

// NewCourseService constructs the course service.
func NewCourseService(repo courseRepository, validate *validator.Validate, cache *CacheService, limits ListingLimits, logger *zap.Logger) *CourseService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{repo: repo, validator: validate, cache: cache, limits: limits, logger: logger}
}

// List returns courses and pagination metadata. Inactive courses stay hidden
// unless the filter opts in.
func (s *CourseService) List(ctx context.Context, filter models.CourseFilter) ([]models.CourseDetail, *models.Pagination, error) {
	filter.Page, filter.PageSize = s.limits.normalize(filter.Page, filter.PageSize)
	courses, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Kind, appErrors.ErrInternal.Status, "failed to list courses")
	}
	if courses == nil {
		courses = []models.CourseDetail{}
	}
	return courses, models.NewPagination(filter.Page, filter.PageSize, total), nil
}

// Get returns a single course with its prerequisites resolved.
func (s *CourseService) Get(ctx context.Context, id int64) (*models.CourseWithPrerequisites, error) {
	detail, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Kind, appErrors.ErrInternal.Status, "failed to load course")
	}
	prereqs, err := s.repo.Prerequisites(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Kind, appErrors.ErrInternal.Status, "failed to load prerequisites")
	}
	if prereqs == nil {
		prereqs = []models.CourseRef{}
	}
	return &models.CourseWithPrerequisites{CourseDetail: *detail, Prerequisites: prereqs}, nil
}

// Create adds a new course.
func (s *CourseService) Create(ctx context.Context, req CreateCourseRequest) (*models.CourseDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Kind, appErrors.ErrValidation.Status, "invalid course payload")
	}
	if exists, err := s.repo.ExistsByCode(ctx, req.CourseCode); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Kind, appErrors.ErrInternal.Status, "failed to validate course code")
	} else if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "Course code already exists")
	}

	credits := req.Credits
	if credits <= 0 {
		credits = 3
	}
	semester := req.Semester
	if semester == "" {
		semester = "First"
	}
	course := &models.Course{
		CourseCode:   req.CourseCode,
		Title:        req.Title,
		Description:  req.Description,
		Credits:      credits,
		DepartmentID: req.DepartmentID,
		InstructorID: req.InstructorID,
		Level:        req.Level,
		Semester:     semester,
		IsActive:     true,
	}
	if err := s.repo.Create(ctx, course); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "Course code already exists")
		}
		if repository.IsForeignKeyViolation(err) {
			return nil, appErrors.Clone(appErrors.ErrValidation, "unknown department or instructor")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Kind, appErrors.ErrInternal.Status, "failed to create course")
	}
	s.invalidateDashboard(ctx)
	detail, err := s.repo.FindByID(ctx, course.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Kind, appErrors.ErrInternal.Status, "failed to load course")
	}
	return detail, nil
}

// Update applies a partial update to the course.
func (s *CourseService) Update(ctx context.Context, id int64, req UpdateCourseRequest) (*models.CourseDetail, error) {
	detail, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Kind, appErrors.ErrInternal.Status, "failed to load course")
	}

	course := detail.Course
	if req.Title != nil {
		course.Title = *req.Title
	}
	if req.Description != nil {
		course.Description = req.Description
	}
	if req.Credits != nil {
		course.Credits = *req.Credits
	}
	if req.DepartmentID != nil {
		course.DepartmentID = *req.DepartmentID
	}
	if req.InstructorID != nil {
		course.InstructorID = req.InstructorID
	}
	if req.Level != nil {
		course.Level = *req.Level
	}
	if req.Semester != nil {
		course.Semester = *req.Semester
	}

	if err := s.repo.Update(ctx, &course); err != nil {
		if repository.IsForeignKeyViolation(err) {
			return nil, appErrors.Clone(appErrors.ErrValidation, "unknown department or instructor")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Kind, appErrors.ErrInternal.Status, "failed to update course")
	}
	s.invalidateDashboard(ctx)
	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Kind, appErrors.ErrInternal.Status, "failed to load course")
	}
	return updated, nil
}

// Deactivate soft deletes the course so history stays queryable.
func (s *CourseService) Deactivate(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "course not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Kind, appErrors.ErrInternal.Status, "failed to load course")
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Kind, appErrors.ErrInternal.Status, "failed to deactivate course")
	}
	s.invalidateDashboard(ctx)
	return nil
}

// AddPrerequisite links an existing course as a prerequisite of another.
func (s *CourseService) AddPrerequisite(ctx context.Context, courseID, prerequisiteID int64) error {
	if courseID == prerequisiteID {
		return appErrors.Clone(appErrors.ErrValidation, "a course cannot be its own prerequisite")
	}
	for _, id := range []int64{courseID, prerequisiteID} {
		if _, err := s.repo.FindByID(ctx, id); err != nil {
			if err == sql.ErrNoRows {
				return appErrors.Clone(appErrors.ErrNotFound, "course not found")
			}
			return appErrors.Wrap(err, appErrors.ErrInternal.Kind, appErrors.ErrInternal.Status, "failed to load course")
		}
	}
	if err := s.repo.AddPrerequisite(ctx, courseID, prerequisiteID); err != nil {
		if repository.IsUniqueViolation(err) {
			return appErrors.Clone(appErrors.ErrConflict, "prerequisite already linked")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Kind, appErrors.ErrInternal.Status, "failed to add prerequisite")
	}
	return nil
}

// RemovePrerequisite unlinks a prerequisite from a course.
func (s *CourseService) RemovePrerequisite(ctx context.Context, courseID, prerequisiteID int64) error {
	removed, err := s.repo.RemovePrerequisite(ctx, courseID, prerequisiteID)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Kind, appErrors.ErrInternal.Status, "failed to remove prerequisite")
	}
	if !removed {
		return appErrors.Clone(appErrors.ErrNotFound, "prerequisite link not found")
	}
	return nil
}

func (s *CourseService) invalidateDashboard(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, dashboardCachePattern); err != nil {
		s.logger.Warn("dashboard cache invalidation failed", zap.Error(err))
	}
}
