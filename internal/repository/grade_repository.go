package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/uenr-dev/uenr-student-api/internal/models"
)

// GradeRepository manages persistence for grade records.
type GradeRepository struct {
	db *sqlx.DB
}

// NewGradeRepository constructs a GradeRepository.
func NewGradeRepository(db *sqlx.DB) *GradeRepository {
	return &GradeRepository{db: db}
}

// List returns grades matching the filters, newest first, unpaginated.
func (r *GradeRepository) List(ctx context.Context, filter models.GradeFilter) ([]models.GradeDetail, error) {
	base := `SELECT g.id, g.student_id, g.course_id, g.semester, g.academic_year, g.score,
        g.grade, g.grade_points, g.created_at, g.updated_at,
        s.first_name || ' ' || s.last_name AS student_name,
        c.course_code, c.title AS course_title
        FROM grades g
        JOIN students s ON s.id = g.student_id
        JOIN courses c ON c.id = g.course_id`
	args := []interface{}{}
	conditions := []string{}

	if filter.StudentID > 0 {
		conditions = append(conditions, fmt.Sprintf("g.student_id = $%d", len(args)+1))
		args = append(args, filter.StudentID)
	}
	if filter.CourseID > 0 {
		conditions = append(conditions, fmt.Sprintf("g.course_id = $%d", len(args)+1))
		args = append(args, filter.CourseID)
	}
	if len(conditions) > 0 {
		base = fmt.Sprintf("%s WHERE %s", base, strings.Join(conditions, " AND "))
	}
	base += " ORDER BY g.created_at DESC"

	var grades []models.GradeDetail
	if err := r.db.SelectContext(ctx, &grades, base, args...); err != nil {
		return nil, fmt.Errorf("list grades: %w", err)
	}
	return grades, nil
}

// FindByID fetches a grade detail by ID.
func (r *GradeRepository) FindByID(ctx context.Context, id int64) (*models.GradeDetail, error) {
	const query = `SELECT g.id, g.student_id, g.course_id, g.semester, g.academic_year, g.score,
        g.grade, g.grade_points, g.created_at, g.updated_at,
        s.first_name || ' ' || s.last_name AS student_name,
        c.course_code, c.title AS course_title
        FROM grades g
        JOIN students s ON s.id = g.student_id
        JOIN courses c ON c.id = g.course_id
        WHERE g.id = $1`
	var detail models.GradeDetail
	if err := r.db.GetContext(ctx, &detail, query, id); err != nil {
		return nil, err
	}
	return &detail, nil
}

// Exists checks for a grade covering the same course offering.
func (r *GradeRepository) Exists(ctx context.Context, studentID, courseID int64, semester, academicYear string) (bool, error) {
	const query = `SELECT 1 FROM grades
        WHERE student_id = $1 AND course_id = $2 AND semester = $3 AND academic_year = $4 LIMIT 1`
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, studentID, courseID, semester, academicYear); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check grade: %w", err)
	}
	return true, nil
}

// Create inserts a new grade record.
func (r *GradeRepository) Create(ctx context.Context, grade *models.Grade) error {
	now := time.Now().UTC()
	grade.CreatedAt = now
	grade.UpdatedAt = now
	const query = `INSERT INTO grades (student_id, course_id, semester, academic_year, score, grade, grade_points, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := tx.QueryRowxContext(ctx, query,
			grade.StudentID, grade.CourseID, grade.Semester, grade.AcademicYear,
			grade.Score, grade.Letter, grade.GradePoints, grade.CreatedAt, grade.UpdatedAt,
		).Scan(&grade.ID); err != nil {
			return fmt.Errorf("create grade: %w", err)
		}
		return nil
	})
}
