package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uenr-dev/uenr-student-api/internal/models"
	appErrors "github.com/uenr-dev/uenr-student-api/pkg/errors"
)

type mockExportStudents struct {
	rows       []models.StudentDetail
	total      int
	byID       map[int64]models.StudentDetail
	lastFilter models.StudentFilter
}

func (m *mockExportStudents) List(ctx context.Context, filter models.StudentFilter) ([]models.StudentDetail, int, error) {
	m.lastFilter = filter
	total := m.total
	if total == 0 {
		total = len(m.rows)
	}
	return m.rows, total, nil
}

func (m *mockExportStudents) FindByID(ctx context.Context, id int64) (*models.StudentDetail, error) {
	if s, ok := m.byID[id]; ok {
		return &s, nil
	}
	return nil, sql.ErrNoRows
}

type mockExportGrades struct {
	rows []models.GradeDetail
}

func (m *mockExportGrades) List(ctx context.Context, filter models.GradeFilter) ([]models.GradeDetail, error) {
	return m.rows, nil
}

func TestExportServiceRosterCSV(t *testing.T) {
	students := &mockExportStudents{rows: []models.StudentDetail{{
		Student:     models.Student{StudentID: "UENR2023001", Email: "kwame.addo@student.uenr.edu.gh", Level: 300, Status: "Active"},
		FullName:    "Kwame Addo",
		ProgramName: "BSc Environmental Science",
	}}}
	svc := NewExportService(students, &mockExportGrades{})

	file, err := svc.Roster(context.Background(), models.StudentFilter{}, "csv")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", file.ContentType)
	assert.True(t, strings.HasPrefix(file.Filename, "student_roster_"))

	content := string(file.Content)
	assert.Contains(t, content, "Student ID,Name,Email,Program,Level,Status")
	assert.Contains(t, content, "UENR2023001,Kwame Addo")
	assert.False(t, file.Truncated)
}

func TestExportServiceRosterTruncated(t *testing.T) {
	students := &mockExportStudents{
		rows: []models.StudentDetail{{
			Student:     models.Student{StudentID: "UENR2023001", Level: 300, Status: "Active"},
			FullName:    "Kwame Addo",
			ProgramName: "BSc Environmental Science",
		}},
		total: 10001,
	}
	svc := NewExportService(students, &mockExportGrades{})

	file, err := svc.Roster(context.Background(), models.StudentFilter{}, "csv")
	require.NoError(t, err)
	assert.True(t, file.Truncated)
}

func TestExportServiceRosterDefaultsToCSV(t *testing.T) {
	svc := NewExportService(&mockExportStudents{}, &mockExportGrades{})

	file, err := svc.Roster(context.Background(), models.StudentFilter{}, "")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", file.ContentType)
}

func TestExportServiceRosterPDF(t *testing.T) {
	svc := NewExportService(&mockExportStudents{}, &mockExportGrades{})

	file, err := svc.Roster(context.Background(), models.StudentFilter{}, "pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.NotEmpty(t, file.Content)
}

func TestExportServiceRosterUnsupportedFormat(t *testing.T) {
	svc := NewExportService(&mockExportStudents{}, &mockExportGrades{})

	_, err := svc.Roster(context.Background(), models.StudentFilter{}, "xlsx")
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
}

func TestExportServiceTranscript(t *testing.T) {
	students := &mockExportStudents{byID: map[int64]models.StudentDetail{1: {
		Student:  models.Student{ID: 1, StudentID: "UENR2023001"},
		FullName: "Kwame Addo",
	}}}
	grades := &mockExportGrades{rows: []models.GradeDetail{{
		Grade:       models.Grade{Score: 78.5, Letter: "B+", GradePoints: 3.5, Semester: "First", AcademicYear: "2024/2025"},
		CourseCode:  "ENE 402",
		CourseTitle: "Renewable Energy Systems",
	}}}
	svc := NewExportService(students, grades)

	file, err := svc.Transcript(context.Background(), 1, "csv")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(file.Filename, "transcript_uenr2023001"))

	content := string(file.Content)
	assert.Contains(t, content, "ENE 402,Renewable Energy Systems,First,2024/2025,78.5,B+,3.5")
}

func TestExportServiceTranscriptStudentNotFound(t *testing.T) {
	svc := NewExportService(&mockExportStudents{}, &mockExportGrades{})

	_, err := svc.Transcript(context.Background(), 99, "csv")
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
}
