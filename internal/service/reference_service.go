package service

import (
	"context"

	"github.com/uenr-dev/uenr-student-api/internal/models"
	appErrors "github.com/uenr-dev/uenr-student-api/pkg/errors"
)

type referenceRepository interface {
	Departments(ctx context.Context) ([]models.Department, error)
	Programs(ctx context.Context) ([]models.ProgramDetail, error)
	Instructors(ctx context.Context) ([]models.InstructorDetail, error)
}

// ReferenceService serves the lookup listings behind entity selection.
type ReferenceService struct {
	repo referenceRepository
}

// NewReferenceService constructs the reference service.
func NewReferenceService(repo referenceRepository) *ReferenceService {
	return &ReferenceService{repo: repo}
}

// Departments lists all departments ordered by name.
func (s *ReferenceService) Departments(ctx context.Context) ([]models.Department, error) {
	departments, err := s.repo.Departments(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Kind, appErrors.ErrInternal.Status, "failed to list departments")
	}
	if departments == nil {
		departments = []models.Department{}
	}
	return departments, nil
}

// Programs lists all programs ordered by name.
func (s *ReferenceService) Programs(ctx context.Context) ([]models.ProgramDetail, error) {
	programs, err := s.repo.Programs(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Kind, appErrors.ErrInternal.Status, "failed to list programs")
	}
	if programs == nil {
		programs = []models.ProgramDetail{}
	}
	return programs, nil
}

// Instructors lists all instructors ordered by last name.
func (s *ReferenceService) Instructors(ctx context.Context) ([]models.InstructorDetail, error) {
	instructors, err := s.repo.Instructors(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Kind, appErrors.ErrInternal.Status, "failed to list instructors")
	}
	if instructors == nil {
		instructors = []models.InstructorDetail{}
	}
	return instructors, nil
}
