package repository

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uenr-dev/uenr-student-api/internal/models"
)

func courseRows() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "course_code", "title", "description", "credits", "department_id",
		"instructor_id", "level", "semester", "is_active", "created_at", "updated_at",
		"department_name", "instructor_name", "enrolled_count",
	}).AddRow(
		1, "ENE 402", "Renewable Energy Systems", nil, 3, 1,
		1, 400, "First", true, now, now,
		"Energy Engineering", "Dr. Akosua Bonsu", 4,
	)
}

func TestCourseRepositoryListExcludesInactive(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewCourseRepository(db)

	mock.ExpectQuery(`WHERE 1=1 AND c\.is_active = TRUE ORDER BY c\.course_code ASC LIMIT 10 OFFSET 0`).
		WillReturnRows(courseRows())
	mock.ExpectQuery(`SELECT COUNT\(\*\)`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	courses, total, err := repo.List(context.Background(), models.CourseFilter{})
	require.NoError(t, err)
	assert.Len(t, courses, 1)
	assert.Equal(t, 1, total)
	assert.Equal(t, 4, courses[0].EnrolledCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepositoryListIncludeInactive(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewCourseRepository(db)

	mock.ExpectQuery(`WHERE 1=1 ORDER BY c\.course_code ASC`).
		WillReturnRows(courseRows())
	mock.ExpectQuery(`SELECT COUNT\(\*\)`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	_, _, err := repo.List(context.Background(), models.CourseFilter{IncludeInactive: true})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepositoryExistsByCode(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewCourseRepository(db)

	mock.ExpectQuery(`SELECT 1 FROM courses WHERE course_code = \$1 LIMIT 1`).
		WithArgs("ENE 402").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(1))

	exists, err := repo.ExistsByCode(context.Background(), "ENE 402")
	require.NoError(t, err)
	assert.True(t, exists)

	mock.ExpectQuery(`SELECT 1 FROM courses WHERE course_code = \$1 LIMIT 1`).
		WithArgs("ENE 999").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}))

	exists, err = repo.ExistsByCode(context.Background(), "ENE 999")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepositoryCreateUniqueViolation(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewCourseRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO courses`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "courses_course_code_key"})
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &models.Course{CourseCode: "ENE 402"})
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepositorySoftDelete(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewCourseRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE courses SET is_active = FALSE, updated_at = \$2 WHERE id = \$1`).
		WithArgs(int64(1), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.SoftDelete(context.Background(), 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepositoryRemovePrerequisite(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewCourseRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM course_prerequisites WHERE course_id = \$1 AND prerequisite_id = \$2`).
		WithArgs(int64(1), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	removed, err := repo.RemovePrerequisite(context.Background(), 1, 5)
	require.NoError(t, err)
	assert.True(t, removed)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM course_prerequisites`).
		WithArgs(int64(1), int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	removed, err = repo.RemovePrerequisite(context.Background(), 1, 9)
	require.NoError(t, err)
	assert.False(t, removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
