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

const courseDetailColumns = `c.id, c.course_code, c.title, c.description, c.credits, c.department_id,
        c.instructor_id, c.level, c.semester, c.is_active, c.created_at, c.updated_at,
        d.name AS department_name,
        i.title || ' ' || i.first_name || ' ' || i.last_name AS instructor_name,
        (SELECT COUNT(*) FROM enrollments e WHERE e.course_id = c.id) AS enrolled_count`

const courseDetailJoins = `FROM courses c
        JOIN departments d ON d.id = c.department_id
        LEFT JOIN instructors i ON i.id = c.instructor_id`

// CourseRepository manages persistence for course records.
type CourseRepository struct {
	db *sqlx.DB
}

// NewCourseRepository constructs a CourseRepository.
func NewCourseRepository(db *sqlx.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// List returns courses matching the provided filters ordered by course code.
// Inactive courses are excluded unless the filter opts in.
func (r *CourseRepository) List(ctx context.Context, filter models.CourseFilter) ([]models.CourseDetail, int, error) {
	base := courseDetailJoins
	args := []interface{}{}
	conditions := []string{"1=1"}

	if !filter.IncludeInactive {
		conditions = append(conditions, "c.is_active = TRUE")
	}
	if filter.Search != "" {
		n := len(args) + 1
		conditions = append(conditions, fmt.Sprintf(
			"(LOWER(c.course_code) LIKE $%d OR LOWER(c.title) LIKE $%d)", n, n))
		args = append(args, "%"+strings.ToLower(filter.Search)+"%")
	}
	if filter.DepartmentID > 0 {
		conditions = append(conditions, fmt.Sprintf("c.department_id = $%d", len(args)+1))
		args = append(args, filter.DepartmentID)
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

	query := fmt.Sprintf("SELECT %s %s ORDER BY c.course_code ASC LIMIT %d OFFSET %d",
		courseDetailColumns, base, size, offset)

	var courses []models.CourseDetail
	if err := r.db.SelectContext(ctx, &courses, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list courses: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s", base)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count courses: %w", err)
	}
	return courses, total, nil
}

// Recent returns the most recently created active courses.
func (r *CourseRepository) Recent(ctx context.Context, limit int) ([]models.CourseDetail, error) {
	query := fmt.Sprintf(`SELECT %s %s WHERE c.is_active = TRUE
        ORDER BY c.created_at DESC LIMIT %d`, courseDetailColumns, courseDetailJoins, limit)
	var courses []models.CourseDetail
	if err := r.db.SelectContext(ctx, &courses, query); err != nil {
		return nil, fmt.Errorf("recent courses: %w", err)
	}
	return courses, nil
}

// FindByID fetches a course by ID, including soft-deleted rows.
func (r *CourseRepository) FindByID(ctx context.Context, id int64) (*models.CourseDetail, error) {
	query := fmt.Sprintf("SELECT %s %s WHERE c.id = $1", courseDetailColumns, courseDetailJoins)
	var detail models.CourseDetail
	if err := r.db.GetContext(ctx, &detail, query, id); err != nil {
		return nil, err
	}
	return &detail, nil
}

// ExistsByCode checks whether the course code is taken.
func (r *CourseRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var exists int
	err := r.db.GetContext(ctx, &exists, "SELECT 1 FROM courses WHERE course_code = $1 LIMIT 1", code)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check course_code: %w", err)
	}
	return true, nil
}

// Create inserts a new course record.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	now := time.Now().UTC()
	course.CreatedAt = now
	course.UpdatedAt = now
	const query = `INSERT INTO courses (course_code, title, description, credits, department_id, instructor_id, level, semester, is_active, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := tx.QueryRowxContext(ctx, query,
			course.CourseCode, course.Title, course.Description, course.Credits,
			course.DepartmentID, course.InstructorID, course.Level, course.Semester,
			course.IsActive, course.CreatedAt, course.UpdatedAt,
		).Scan(&course.ID); err != nil {
			return fmt.Errorf("create course: %w", err)
		}
		return nil
	})
}

// Update persists the full course row and refreshes the update timestamp.
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	course.UpdatedAt = time.Now().UTC()
	const query = `UPDATE courses SET title = :title, description = :description, credits = :credits,
        department_id = :department_id, instructor_id = :instructor_id, level = :level,
        semester = :semester, updated_at = :updated_at WHERE id = :id`
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.NamedExecContext(ctx, query, course); err != nil {
			return fmt.Errorf("update course: %w", err)
		}
		return nil
	})
}

// SoftDelete flips the active flag, keeping historical enrollments and grades
// intact.
func (r *CourseRepository) SoftDelete(ctx context.Context, id int64) error {
	const query = `UPDATE courses SET is_active = FALSE, updated_at = $2 WHERE id = $1`
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, query, id, time.Now().UTC()); err != nil {
			return fmt.Errorf("soft delete course: %w", err)
		}
		return nil
	})
}

// Prerequisites lists the courses required before taking the given course.
func (r *CourseRepository) Prerequisites(ctx context.Context, courseID int64) ([]models.CourseRef, error) {
	const query = `SELECT c.id, c.course_code, c.title FROM course_prerequisites cp
        JOIN courses c ON c.id = cp.prerequisite_id
        WHERE cp.course_id = $1 ORDER BY c.course_code ASC`
	var refs []models.CourseRef
	if err := r.db.SelectContext(ctx, &refs, query, courseID); err != nil {
		return nil, fmt.Errorf("list prerequisites: %w", err)
	}
	return refs, nil
}

// AddPrerequisite links a prerequisite to a course.
func (r *CourseRepository) AddPrerequisite(ctx context.Context, courseID, prerequisiteID int64) error {
	const query = `INSERT INTO course_prerequisites (course_id, prerequisite_id) VALUES ($1, $2)`
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, query, courseID, prerequisiteID); err != nil {
			return fmt.Errorf("add prerequisite: %w", err)
		}
		return nil
	})
}

// RemovePrerequisite unlinks a prerequisite; it reports whether a link existed.
func (r *CourseRepository) RemovePrerequisite(ctx context.Context, courseID, prerequisiteID int64) (bool, error) {
	const query = `DELETE FROM course_prerequisites WHERE course_id = $1 AND prerequisite_id = $2`
	removed := false
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, query, courseID, prerequisiteID)
		if err != nil {
			return fmt.Errorf("remove prerequisite: %w", err)
		}
		if n, err := res.RowsAffected(); err == nil && n > 0 {
			removed = true
		}
		return nil
	})
	return removed, err
}
