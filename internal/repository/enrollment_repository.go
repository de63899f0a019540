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

// EnrollmentRepository manages persistence for enrollment records.
type EnrollmentRepository struct {
	db *sqlx.DB
}

// NewEnrollmentRepository constructs an EnrollmentRepository.
func NewEnrollmentRepository(db *sqlx.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// List returns enrollments matching the filters, newest first, unpaginated.
func (r *EnrollmentRepository) List(ctx context.Context, filter models.EnrollmentFilter) ([]models.EnrollmentDetail, error) {
	base := `SELECT e.id, e.student_id, e.course_id, e.semester, e.academic_year, e.enrollment_date,
        e.status, e.created_at,
        s.first_name || ' ' || s.last_name AS student_name,
        c.course_code, c.title AS course_title
        FROM enrollments e
        JOIN students s ON s.id = e.student_id
        JOIN courses c ON c.id = e.course_id`
	args := []interface{}{}
	conditions := []string{}

	if filter.StudentID > 0 {
		conditions = append(conditions, fmt.Sprintf("e.student_id = $%d", len(args)+1))
		args = append(args, filter.StudentID)
	}
	if filter.CourseID > 0 {
		conditions = append(conditions, fmt.Sprintf("e.course_id = $%d", len(args)+1))
		args = append(args, filter.CourseID)
	}
	if len(conditions) > 0 {
		base = fmt.Sprintf("%s WHERE %s", base, strings.Join(conditions, " AND "))
	}
	base += " ORDER BY e.created_at DESC"

	var enrollments []models.EnrollmentDetail
	if err := r.db.SelectContext(ctx, &enrollments, base, args...); err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	return enrollments, nil
}

// FindByID fetches an enrollment detail by ID.
func (r *EnrollmentRepository) FindByID(ctx context.Context, id int64) (*models.EnrollmentDetail, error) {
	const query = `SELECT e.id, e.student_id, e.course_id, e.semester, e.academic_year, e.enrollment_date,
        e.status, e.created_at,
        s.first_name || ' ' || s.last_name AS student_name,
        c.course_code, c.title AS course_title
        FROM enrollments e
        JOIN students s ON s.id = e.student_id
        JOIN courses c ON c.id = e.course_id
        WHERE e.id = $1`
	var detail models.EnrollmentDetail
	if err := r.db.GetContext(ctx, &detail, query, id); err != nil {
		return nil, err
	}
	return &detail, nil
}

// Exists checks for an enrollment covering the same course offering.
func (r *EnrollmentRepository) Exists(ctx context.Context, studentID, courseID int64, semester, academicYear string) (bool, error) {
	const query = `SELECT 1 FROM enrollments
        WHERE student_id = $1 AND course_id = $2 AND semester = $3 AND academic_year = $4 LIMIT 1`
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, studentID, courseID, semester, academicYear); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check enrollment: %w", err)
	}
	return true, nil
}

// Create inserts a new enrollment record.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	now := time.Now().UTC()
	if enrollment.EnrollmentDate.IsZero() {
		enrollment.EnrollmentDate = now
	}
	enrollment.CreatedAt = now
	const query = `INSERT INTO enrollments (student_id, course_id, semester, academic_year, enrollment_date, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := tx.QueryRowxContext(ctx, query,
			enrollment.StudentID, enrollment.CourseID, enrollment.Semester, enrollment.AcademicYear,
			enrollment.EnrollmentDate, enrollment.Status, enrollment.CreatedAt,
		).Scan(&enrollment.ID); err != nil {
			return fmt.Errorf("create enrollment: %w", err)
		}
		return nil
	})
}
