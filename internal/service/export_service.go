package service

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/uenr-dev/uenr-student-api/internal/models"
	appErrors "github.com/uenr-dev/uenr-student-api/pkg/errors"
	"github.com/uenr-dev/uenr-student-api/pkg/export"
)

// Export formats accepted by the roster and transcript endpoints.
const (
	ExportFormatCSV = "csv"
	ExportFormatPDF = "pdf"
)

// rosterPageSize caps a single export; rosters beyond this are truncated.
const rosterPageSize = 10000

type exportStudentRepository interface {
	List(ctx context.Context, filter models.StudentFilter) ([]models.StudentDetail, int, error)
	FindByID(ctx context.Context, id int64) (*models.StudentDetail, error)
}

type exportGradeRepository interface {
	List(ctx context.Context, filter models.GradeFilter) ([]models.GradeDetail, error)
}

// ExportFile is a rendered download. Truncated marks a roster cut off at the
// export row cap.
type ExportFile struct {
	Content     []byte
	ContentType string
	Filename    string
	Truncated   bool
}

// ExportService renders student rosters and per-student transcripts as CSV or
// PDF downloads.
type ExportService struct {
	students exportStudentRepository
	grades   exportGradeRepository
	csv      *export.CSVExporter
	pdf      *export.PDFExporter
}

// NewExportService constructs the export service.
func NewExportService(students exportStudentRepository, grades exportGradeRepository) *ExportService {
	return &ExportService{
		students: students,
		grades:   grades,
		csv:      export.NewCSVExporter(),
		pdf:      export.NewPDFExporter(),
	}
}

// Roster exports the students matching the filter.
func (s *ExportService) Roster(ctx context.Context, filter models.StudentFilter, format string) (*ExportFile, error) {
	format, err := normalizeFormat(format)
	if err != nil {
		return nil, err
	}
	filter.Page = 1
	filter.PageSize = rosterPageSize
	students, total, err := s.students.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Kind, appErrors.ErrInternal.Status, "failed to list students")
	}

	table := export.Table{
		Columns: []string{"Student ID", "Name", "Email", "Program", "Level", "Status"},
	}
	for _, st := range students {
		table.Rows = append(table.Rows, []string{
			st.StudentID,
			st.FullName,
			st.Email,
			st.ProgramName,
			strconv.Itoa(st.Level),
			st.Status,
		})
	}
	file, err := s.render(table, "Student Roster", "student_roster", format)
	if err != nil {
		return nil, err
	}
	file.Truncated = total > len(students)
	return file, nil
}

// Transcript exports the grade history for one student.
func (s *ExportService) Transcript(ctx context.Context, studentID int64, format string) (*ExportFile, error) {
	format, err := normalizeFormat(format)
	if err != nil {
		return nil, err
	}
	student, err := s.students.FindByID(ctx, studentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Kind, appErrors.ErrInternal.Status, "failed to load student")
	}
	grades, err := s.grades.List(ctx, models.GradeFilter{StudentID: studentID})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Kind, appErrors.ErrInternal.Status, "failed to list grades")
	}

	table := export.Table{
		Columns: []string{"Course Code", "Course Title", "Semester", "Academic Year", "Score", "Grade", "Grade Points"},
	}
	for _, g := range grades {
		table.Rows = append(table.Rows, []string{
			g.CourseCode,
			g.CourseTitle,
			g.Semester,
			g.AcademicYear,
			strconv.FormatFloat(g.Score, 'f', 1, 64),
			g.Letter,
			strconv.FormatFloat(g.GradePoints, 'f', 1, 64),
		})
	}
	title := fmt.Sprintf("Transcript for %s (%s)", student.FullName, student.StudentID)
	base := fmt.Sprintf("transcript_%s", strings.ToLower(student.StudentID))
	return s.render(table, title, base, format)
}

func (s *ExportService) render(table export.Table, title, basename, format string) (*ExportFile, error) {
	stamp := time.Now().UTC().Format("20060102")
	switch format {
	case ExportFormatCSV:
		content, err := s.csv.Render(table)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Kind, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return &ExportFile{
			Content:     content,
			ContentType: "text/csv",
			Filename:    fmt.Sprintf("%s_%s.csv", basename, stamp),
		}, nil
	case ExportFormatPDF:
		content, err := s.pdf.Render(table, title)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Kind, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return &ExportFile{
			Content:     content,
			ContentType: "application/pdf",
			Filename:    fmt.Sprintf("%s_%s.pdf", basename, stamp),
		}, nil
	}
	return nil, appErrors.Clone(appErrors.ErrValidation, "unsupported export format")
}

func normalizeFormat(format string) (string, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = ExportFormatCSV
	}
	if format != ExportFormatCSV && format != ExportFormatPDF {
		return "", appErrors.Clone(appErrors.ErrValidation, "unsupported export format")
	}
	return format, nil
}
