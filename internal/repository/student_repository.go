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

const studentDetailColumns = `s.id, s.student_id, s.first_name, s.last_name, s.email, s.phone,
        s.program_id, s.level, s.status, s.admission_date, s.created_at, s.updated_at,
        s.first_name || ' ' || s.last_name AS full_name, p.name AS program_name`

// StudentRepository manages persistence for student records.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// List returns students matching the provided filters, newest first.
func (r *StudentRepository) List(ctx context.Context, filter models.StudentFilter) ([]models.StudentDetail, int, error) {
	base := "FROM students s JOIN programs p ON p.id = s.program_id"
	args := []interface{}{}
	conditions := []string{"1=1"}

	if filter.Search != "" {
		n := len(args) + 1
		conditions = append(conditions, fmt.Sprintf(
			"(LOWER(s.first_name) LIKE $%d OR LOWER(s.last_name) LIKE $%d OR LOWER(s.student_id) LIKE $%d OR LOWER(s.email) LIKE $%d)",
			n, n, n, n))
		args = append(args, "%"+strings.ToLower(filter.Search)+"%")
	}
	if filter.ProgramID > 0 {
		conditions = append(conditions, fmt.Sprintf("s.program_id = $%d", len(args)+1))
		args = append(args, filter.ProgramID)
	}

	base = fmt.Sprintf("%s WHERE %s", base, strings.Join(conditions, " AND "))

	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 {
		size = 10
	}
	offset := (page - 1) * size

	query := fmt.Sprintf("SELECT %s %s ORDER BY s.created_at DESC LIMIT %d OFFSET %d",
		studentDetailColumns, base, size, offset)

	var students []models.StudentDetail
	if err := r.db.SelectContext(ctx, &students, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list students: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s", base)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count students: %w", err)
	}
	return students, total, nil
}

// Recent returns the most recently created students.
func (r *StudentRepository) Recent(ctx context.Context, limit int) ([]models.StudentDetail, error) {
	query := fmt.Sprintf(`SELECT %s FROM students s JOIN programs p ON p.id = s.program_id
        ORDER BY s.created_at DESC LIMIT %d`, studentDetailColumns, limit)
	var students []models.StudentDetail
	if err := r.db.SelectContext(ctx, &students, query); err != nil {
		return nil, fmt.Errorf("recent students: %w", err)
	}
	return students, nil
}

// FindByID fetches a student detail by surrogate ID.
func (r *StudentRepository) FindByID(ctx context.Context, id int64) (*models.StudentDetail, error) {
	query := fmt.Sprintf(`SELECT %s FROM students s JOIN programs p ON p.id = s.program_id
        WHERE s.id = $1`, studentDetailColumns)
	var detail models.StudentDetail
	if err := r.db.GetContext(ctx, &detail, query, id); err != nil {
		return nil, err
	}
	return &detail, nil
}

// ExistsByStudentID checks whether the external student identifier is taken.
func (r *StudentRepository) ExistsByStudentID(ctx context.Context, studentID string) (bool, error) {
	var exists int
	err := r.db.GetContext(ctx, &exists, "SELECT 1 FROM students WHERE student_id = $1 LIMIT 1", studentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check student_id: %w", err)
	}
	return true, nil
}

// ExistsByEmail checks whether the email is taken, optionally excluding an ID.
func (r *StudentRepository) ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error) {
	query := "SELECT 1 FROM students WHERE email = $1"
	args := []interface{}{email}
	if excludeID > 0 {
		query += " AND id <> $2"
		args = append(args, excludeID)
	}
	var exists int
	if err := r.db.GetContext(ctx, &exists, query+" LIMIT 1", args...); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check email: %w", err)
	}
	return true, nil
}

// Create inserts a new student record.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	now := time.Now().UTC()
	if student.AdmissionDate.IsZero() {
		student.AdmissionDate = now
	}
	student.CreatedAt = now
	student.UpdatedAt = now
	const query = `INSERT INTO students (student_id, first_name, last_name, email, phone, program_id, level, status, admission_date, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := tx.QueryRowxContext(ctx, query,
			student.StudentID, student.FirstName, student.LastName, student.Email, student.Phone,
			student.ProgramID, student.Level, student.Status, student.AdmissionDate,
			student.CreatedAt, student.UpdatedAt,
		).Scan(&student.ID); err != nil {
			return fmt.Errorf("create student: %w", err)
		}
		return nil
	})
}

// Update persists the full student row and refreshes the update timestamp.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	student.UpdatedAt = time.Now().UTC()
	const query = `UPDATE students SET student_id = :student_id, first_name = :first_name, last_name = :last_name,
        email = :email, phone = :phone, program_id = :program_id, level = :level, status = :status,
        updated_at = :updated_at WHERE id = :id`
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.NamedExecContext(ctx, query, student); err != nil {
			return fmt.Errorf("update student: %w", err)
		}
		return nil
	})
}

// Delete removes the student and all dependent enrollment and grade rows in a
// single transaction; a partial cascade never survives.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM enrollments WHERE student_id = $1", id); err != nil {
			return fmt.Errorf("delete enrollments: %w", err)
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM grades WHERE student_id = $1", id); err != nil {
			return fmt.Errorf("delete grades: %w", err)
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM students WHERE id = $1", id); err != nil {
			return fmt.Errorf("delete student: %w", err)
		}
		return nil
	})
}
