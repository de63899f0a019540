package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/uenr-dev/uenr-student-api/internal/models"
	"github.com/uenr-dev/uenr-student-api/internal/repository"
	appErrors "github.com/uenr-dev/uenr-student-api/pkg/errors"
)

const duplicateEnrollmentMessage = "Student already enrolled in this course for this semester"

type enrollmentRepository interface {
	List(ctx context.Context, filter models.EnrollmentFilter) ([]models.EnrollmentDetail, error)
	FindByID(ctx context.Context, id int64) (*models.EnrollmentDetail, error)
	Exists(ctx context.Context, studentID, courseID int64, semester, academicYear string) (bool, error)
	Create(ctx context.Context, enrollment *models.Enrollment) error
}

// CreateEnrollmentRequest holds the payload for enrolling a student.
type CreateEnrollmentRequest struct {
	StudentID    int64  `json:"student_id" validate:"required"`
	CourseID     int64  `json:"course_id" validate:"required"`
	Semester     string `json:"semester" validate:"required"`
	AcademicYear string `json:"academic_year" validate:"required"`
	Status       string `json:"status"`
}

// EnrollmentService handles enrollment use-cases.
type EnrollmentService struct {
	repo      enrollmentRepository
	validator *validator.Validate
	cache     *CacheService
	logger    *zap.Logger
}

// NewEnrollmentService constructs the enrollment service.
func NewEnrollmentService(repo enrollmentRepository, validate *validator.Validate, cache *CacheService, logger *zap.Logger) *EnrollmentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnrollmentService{repo: repo, validator: validate, cache: cache, logger: logger}
}

// List returns enrollments newest first, optionally filtered by student or
// course.
func (s *EnrollmentService) List(ctx context.Context, filter models.EnrollmentFilter) ([]models.EnrollmentDetail, error) {
	enrollments, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Kind, appErrors.ErrInternal.Status, "failed to list enrollments")
	}
	if enrollments == nil {
		enrollments = []models.EnrollmentDetail{}
	}
	return enrollments, nil
}

// Create enrolls a student in a course offering. The duplicate pre-check gives
// the friendly message on the fast path; the unique constraint backs it up
// under concurrency.
func (s *EnrollmentService) Create(ctx context.Context, req CreateEnrollmentRequest) (*models.EnrollmentDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Kind, appErrors.ErrValidation.Status, "invalid enrollment payload")
	}
	if exists, err := s.repo.Exists(ctx, req.StudentID, req.CourseID, req.Semester, req.AcademicYear); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Kind, appErrors.ErrInternal.Status, "failed to validate enrollment")
	} else if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, duplicateEnrollmentMessage)
	}

	status := req.Status
	if status == "" {
		status = models.EnrollmentStatusEnrolled
	}
	enrollment := &models.Enrollment{
		StudentID:    req.StudentID,
		CourseID:     req.CourseID,
		Semester:     req.Semester,
		AcademicYear: req.AcademicYear,
		Status:       status,
	}
	if err := s.repo.Create(ctx, enrollment); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, appErrors.Clone(appErrors.ErrConflict, duplicateEnrollmentMessage)
		}
		if repository.IsForeignKeyViolation(err) {
			return nil, appErrors.Clone(appErrors.ErrValidation, "unknown student or course")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Kind, appErrors.ErrInternal.Status, "failed to create enrollment")
	}
	s.invalidateDashboard(ctx)

	detail, err := s.repo.FindByID(ctx, enrollment.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Kind, appErrors.ErrInternal.Status, "failed to load enrollment")
	}
	return detail, nil
}

func (s *EnrollmentService) invalidateDashboard(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, dashboardCachePattern); err != nil {
		s.logger.Warn("dashboard cache invalidation failed", zap.Error(err))
	}
}
