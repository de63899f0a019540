package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/uenr-dev/uenr-student-api/internal/models"
	"github.com/uenr-dev/uenr-student-api/internal/repository"
	appErrors "github.com/uenr-dev/uenr-student-api/pkg/errors"
)

const duplicateGradeMessage = "Grade already recorded for this course and semester"

type gradeRepository interface {
	List(ctx context.Context, filter models.GradeFilter) ([]models.GradeDetail, error)
	FindByID(ctx context.Context, id int64) (*models.GradeDetail, error)
	Exists(ctx context.Context, studentID, courseID int64, semester, academicYear string) (bool, error)
	Create(ctx context.Context, grade *models.Grade) error
}

// CreateGradeRequest holds the payload for recording a grade. Score and grade
// points are pointers so a zero value still passes the required check.
type CreateGradeRequest struct {
	StudentID    int64    `json:"student_id" validate:"required"`
	CourseID     int64    `json:"course_id" validate:"required"`
	Semester     string   `json:"semester" validate:"required"`
	AcademicYear string   `json:"academic_year" validate:"required"`
	Score        *float64 `json:"score" validate:"required"`
	Letter       string   `json:"grade" validate:"required"`
	GradePoints  *float64 `json:"grade_points" validate:"required"`
}

// GradeService handles grade use-cases.
type GradeService struct {
	repo      gradeRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewGradeService constructs the grade service.
func NewGradeService(repo gradeRepository, validate *validator.Validate, logger *zap.Logger) *GradeService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GradeService{repo: repo, validator: validate, logger: logger}
}

// List returns grades newest first, optionally filtered by student or course.
func (s *GradeService) List(ctx context.Context, filter models.GradeFilter) ([]models.GradeDetail, error) {
	grades, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Kind, appErrors.ErrInternal.Status, "failed to list grades")
	}
	if grades == nil {
		grades = []models.GradeDetail{}
	}
	return grades, nil
}

// Create records a grade for a course offering. Duplicate detection mirrors
// enrollments: a pre-check for the friendly message, with the unique
// constraint authoritative under concurrency.
func (s *GradeService) Create(ctx context.Context, req CreateGradeRequest) (*models.GradeDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Kind, appErrors.ErrValidation.Status, "invalid grade payload")
	}
	if exists, err := s.repo.Exists(ctx, req.StudentID, req.CourseID, req.Semester, req.AcademicYear); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Kind, appErrors.ErrInternal.Status, "failed to validate grade")
	} else if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, duplicateGradeMessage)
	}

	grade := &models.Grade{
		StudentID:    req.StudentID,
		CourseID:     req.CourseID,
		Semester:     req.Semester,
		AcademicYear: req.AcademicYear,
		Score:        *req.Score,
		Letter:       req.Letter,
		GradePoints:  *req.GradePoints,
	}
	if err := s.repo.Create(ctx, grade); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, appErrors.Clone(appErrors.ErrConflict, duplicateGradeMessage)
		}
		if repository.IsForeignKeyViolation(err) {
			return nil, appErrors.Clone(appErrors.ErrValidation, "unknown student or course")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Kind, appErrors.ErrInternal.Status, "failed to create grade")
	}

	detail, err := s.repo.FindByID(ctx, grade.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Kind, appErrors.ErrInternal.Status, "failed to load grade")
	}
	return detail, nil
}
