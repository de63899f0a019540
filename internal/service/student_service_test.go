package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/uenr-dev/uenr-student-api/internal/models"
	appErrors "github.com/uenr-dev/uenr-student-api/pkg/errors"
)

type mockStudentRepo struct {
	students       map[int64]models.StudentDetail
	takenIDs       map[string]bool
	takenEmails    map[string]int64
	nextID         int64
	deleted        []int64
	lastFilter     models.StudentFilter
	listTotal      int
	listRows       []models.StudentDetail
	createErr      error
	emailChecked   bool
	updatedStudent *models.Student
}

func (m *mockStudentRepo) List(ctx context.Context, filter models.StudentFilter) ([]models.StudentDetail, int, error) {
	m.lastFilter = filter
	return m.listRows, m.listTotal, nil
}

func (m *mockStudentRepo) FindByID(ctx context.Context, id int64) (*models.StudentDetail, error) {
	if s, ok := m.students[id]; ok {
		return &s, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockStudentRepo) ExistsByStudentID(ctx context.Context, studentID string) (bool, error) {
	return m.takenIDs[studentID], nil
}

func (m *mockStudentRepo) ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error) {
	m.emailChecked = true
	id, ok := m.takenEmails[email]
	if !ok {
		return false, nil
	}
	return excludeID == 0 || id != excludeID, nil
}

func (m *mockStudentRepo) Create(ctx context.Context, student *models.Student) error {
	if m.createErr != nil {
		return m.createErr
	}
	if m.students == nil {
		m.students = make(map[int64]models.StudentDetail)
	}
	m.nextID++
	student.ID = m.nextID
	m.students[student.ID] = models.StudentDetail{
		Student:  *student,
		FullName: student.FirstName + " " + student.LastName,
	}
	return nil
}

func (m *mockStudentRepo) Update(ctx context.Context, student *models.Student) error {
	m.updatedStudent = student
	m.students[student.ID] = models.StudentDetail{
		Student:  *student,
		FullName: student.FirstName + " " + student.LastName,
	}
	return nil
}

func (m *mockStudentRepo) Delete(ctx context.Context, id int64) error {
	m.deleted = append(m.deleted, id)
	delete(m.students, id)
	return nil
}

func newStudentService(repo *mockStudentRepo) *StudentService {
	cache := NewCacheService(nil, nil, 0, zap.NewNop())
	return NewStudentService(repo, validator.New(), cache, ListingLimits{DefaultPageSize: 10, MaxPageSize: 100}, zap.NewNop())
}

func TestStudentServiceCreate(t *testing.T) {
	repo := &mockStudentRepo{takenIDs: map[string]bool{}, takenEmails: map[string]int64{}}
	svc := newStudentService(repo)

	student, err := svc.Create(context.Background(), CreateStudentRequest{
		StudentID: "UENR2024001",
		FirstName: "Esi",
		LastName:  "Danso",
		Email:     "esi.danso@student.uenr.edu.gh",
		ProgramID: 1,
		Level:     100,
	})
	require.NoError(t, err)
	assert.Equal(t, "Esi Danso", student.FullName)
	assert.Equal(t, models.StudentStatusActive, student.Status)
}

func TestStudentServiceCreateDuplicateStudentID(t *testing.T) {
	repo := &mockStudentRepo{takenIDs: map[string]bool{"UENR2023001": true}, takenEmails: map[string]int64{}}
	svc := newStudentService(repo)

	_, err := svc.Create(context.Background(), CreateStudentRequest{
		StudentID: "UENR2023001",
		FirstName: "Esi",
		LastName:  "Danso",
		Email:     "esi.danso@student.uenr.edu.gh",
		ProgramID: 1,
		Level:     100,
	})
	require.Error(t, err)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Student ID already exists", appErr.Message)
	assert.Equal(t, 400, appErr.Status)
}

func TestStudentServiceCreateDuplicateEmail(t *testing.T) {
	repo := &mockStudentRepo{takenIDs: map[string]bool{}, takenEmails: map[string]int64{"taken@student.uenr.edu.gh": 7}}
	svc := newStudentService(repo)

	_, err := svc.Create(context.Background(), CreateStudentRequest{
		StudentID: "UENR2024002",
		FirstName: "Esi",
		LastName:  "Danso",
		Email:     "taken@student.uenr.edu.gh",
		ProgramID: 1,
		Level:     100,
	})
	require.Error(t, err)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Email already exists", appErr.Message)
}

func TestStudentServiceCreateUniqueViolationFallback(t *testing.T) {
	repo := &mockStudentRepo{
		takenIDs:    map[string]bool{},
		takenEmails: map[string]int64{},
		createErr:   &pq.Error{Code: "23505"},
	}
	svc := newStudentService(repo)

	_, err := svc.Create(context.Background(), CreateStudentRequest{
		StudentID: "UENR2024003",
		FirstName: "Esi",
		LastName:  "Danso",
		Email:     "esi@student.uenr.edu.gh",
		ProgramID: 1,
		Level:     100,
	})
	require.Error(t, err)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "conflict", appErr.Kind)
	assert.Equal(t, 400, appErr.Status)
}

func TestStudentServiceCreateInvalidEmail(t *testing.T) {
	repo := &mockStudentRepo{takenIDs: map[string]bool{}, takenEmails: map[string]int64{}}
	svc := newStudentService(repo)

	_, err := svc.Create(context.Background(), CreateStudentRequest{
		StudentID: "UENR2024004",
		FirstName: "Esi",
		LastName:  "Danso",
		Email:     "not-an-email",
		ProgramID: 1,
		Level:     100,
	})
	require.Error(t, err)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "validation", appErr.Kind)
}

func TestStudentServiceListNormalizesPaging(t *testing.T) {
	repo := &mockStudentRepo{listTotal: 25}
	svc := newStudentService(repo)

	_, pagination, err := svc.List(context.Background(), models.StudentFilter{Page: 3, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, 3, repo.lastFilter.Page)
	assert.Equal(t, 10, repo.lastFilter.PageSize)
	assert.Equal(t, 25, pagination.Total)
	assert.Equal(t, 3, pagination.Pages)
	assert.Equal(t, 3, pagination.CurrentPage)
	assert.False(t, pagination.HasNext)
	assert.True(t, pagination.HasPrev)
}

func TestStudentServiceListClampsPageSize(t *testing.T) {
	repo := &mockStudentRepo{}
	svc := newStudentService(repo)

	_, _, err := svc.List(context.Background(), models.StudentFilter{Page: 0, PageSize: 5000})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.lastFilter.Page)
	assert.Equal(t, 100, repo.lastFilter.PageSize)
}

func TestStudentServiceUpdateSkipsEmailCheckWhenUnchanged(t *testing.T) {
	repo := &mockStudentRepo{
		students: map[int64]models.StudentDetail{1: {
			Student: models.Student{ID: 1, StudentID: "UENR2023001", FirstName: "Kwame", LastName: "Addo",
				Email: "kwame.addo@student.uenr.edu.gh", ProgramID: 1, Level: 300, Status: "Active"},
			FullName: "Kwame Addo",
		}},
		takenEmails: map[string]int64{"kwame.addo@student.uenr.edu.gh": 1},
	}
	svc := newStudentService(repo)

	email := "kwame.addo@student.uenr.edu.gh"
	level := 400
	updated, err := svc.Update(context.Background(), 1, UpdateStudentRequest{Email: &email, Level: &level})
	require.NoError(t, err)
	assert.False(t, repo.emailChecked)
	assert.Equal(t, 400, updated.Level)
	assert.Equal(t, "UENR2023001", updated.StudentID)
}

func TestStudentServiceUpdatePhoneOnly(t *testing.T) {
	repo := &mockStudentRepo{
		students: map[int64]models.StudentDetail{1: {
			Student: models.Student{ID: 1, StudentID: "UENR2023001", FirstName: "Kwame", LastName: "Addo",
				Email: "kwame.addo@student.uenr.edu.gh", ProgramID: 1, Level: 300, Status: "Active"},
			FullName: "Kwame Addo",
		}},
		takenEmails: map[string]int64{"kwame.addo@student.uenr.edu.gh": 1},
	}
	svc := newStudentService(repo)

	phone := "+233209876543"
	updated, err := svc.Update(context.Background(), 1, UpdateStudentRequest{Phone: &phone})
	require.NoError(t, err)

	require.NotNil(t, repo.updatedStudent)
	require.NotNil(t, repo.updatedStudent.Phone)
	assert.Equal(t, phone, *repo.updatedStudent.Phone)
	assert.Equal(t, "Kwame", repo.updatedStudent.FirstName)
	assert.Equal(t, "kwame.addo@student.uenr.edu.gh", repo.updatedStudent.Email)
	assert.Equal(t, 300, repo.updatedStudent.Level)
	assert.Equal(t, "Active", repo.updatedStudent.Status)
	assert.False(t, repo.emailChecked)

	require.NotNil(t, updated.Phone)
	assert.Equal(t, phone, *updated.Phone)
}

func TestStudentServiceUpdateNotFound(t *testing.T) {
	svc := newStudentService(&mockStudentRepo{})

	name := "New"
	_, err := svc.Update(context.Background(), 99, UpdateStudentRequest{FirstName: &name})
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
}

func TestStudentServiceDelete(t *testing.T) {
	repo := &mockStudentRepo{
		students: map[int64]models.StudentDetail{1: {Student: models.Student{ID: 1}}},
	}
	svc := newStudentService(repo)

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.Contains(t, repo.deleted, int64(1))

	err := svc.Delete(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
}
