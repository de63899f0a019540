package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/uenr-dev/uenr-student-api/internal/models"
)

// ReferenceRepository serves the unpaginated lookup listings used to populate
// dropdowns: departments, programs and instructors.
type ReferenceRepository struct {
	db *sqlx.DB
}

// NewReferenceRepository constructs a ReferenceRepository.
func NewReferenceRepository(db *sqlx.DB) *ReferenceRepository {
	return &ReferenceRepository{db: db}
}

// Departments returns all departments ordered by name.
func (r *ReferenceRepository) Departments(ctx context.Context) ([]models.Department, error) {
	const query = `SELECT id, name, code, created_at FROM departments ORDER BY name ASC`
	var departments []models.Department
	if err := r.db.SelectContext(ctx, &departments, query); err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	return departments, nil
}

// Programs returns all programs with department names, ordered by name.
func (r *ReferenceRepository) Programs(ctx context.Context) ([]models.ProgramDetail, error) {
	const query = `SELECT p.id, p.name, p.code, p.degree_type, p.duration_years, p.department_id,
        p.created_at, d.name AS department_name
        FROM programs p
        JOIN departments d ON d.id = p.department_id
        ORDER BY p.name ASC`
	var programs []models.ProgramDetail
	if err := r.db.SelectContext(ctx, &programs, query); err != nil {
		return nil, fmt.Errorf("list programs: %w", err)
	}
	return programs, nil
}

// Instructors returns all instructors with department names, ordered by last
// name.
func (r *ReferenceRepository) Instructors(ctx context.Context) ([]models.InstructorDetail, error) {
	const query = `SELECT i.id, i.title, i.first_name, i.last_name, i.email, i.phone, i.department_id,
        i.created_at,
        i.title || ' ' || i.first_name || ' ' || i.last_name AS full_name,
        d.name AS department_name
        FROM instructors i
        LEFT JOIN departments d ON d.id = i.department_id
        ORDER BY i.last_name ASC`
	var instructors []models.InstructorDetail
	if err := r.db.SelectContext(ctx, &instructors, query); err != nil {
		return nil, fmt.Errorf("list instructors: %w", err)
	}
	return instructors, nil
}
