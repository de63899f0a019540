package handler

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/uenr-dev/uenr-student-api/internal/models"
	"github.com/uenr-dev/uenr-student-api/internal/service"
)

type fakeEnrollmentRepo struct {
	duplicate   bool
	enrollments map[int64]models.EnrollmentDetail
	nextID      int64
	listRows    []models.EnrollmentDetail
	lastFilter  models.EnrollmentFilter
}

func (f *fakeEnrollmentRepo) List(ctx context.Context, filter models.EnrollmentFilter) ([]models.EnrollmentDetail, error) {
	f.lastFilter = filter
	return f.listRows, nil
}

func (f *fakeEnrollmentRepo) FindByID(ctx context.Context, id int64) (*models.EnrollmentDetail, error) {
	if e, ok := f.enrollments[id]; ok {
		return &e, nil
	}
	return nil, sql.ErrNoRows
}

func (f *fakeEnrollmentRepo) Exists(ctx context.Context, studentID, courseID int64, semester, academicYear string) (bool, error) {
	return f.duplicate, nil
}

func (f *fakeEnrollmentRepo) Create(ctx context.Context, enrollment *models.Enrollment) error {
	if f.enrollments == nil {
		f.enrollments = make(map[int64]models.EnrollmentDetail)
	}
	f.nextID++
	enrollment.ID = f.nextID
	f.enrollments[enrollment.ID] = models.EnrollmentDetail{
		Enrollment:  *enrollment,
		StudentName: "Kwame Addo",
		CourseCode:  "ENE 402",
	}
	return nil
}

func newEnrollmentRouter(repo *fakeEnrollmentRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cache := service.NewCacheService(nil, nil, 0, zap.NewNop())
	svc := service.NewEnrollmentService(repo, nil, cache, zap.NewNop())
	h := NewEnrollmentHandler(svc)

	r := gin.New()
	r.GET("/api/enrollments", h.List)
	r.POST("/api/enrollments", h.Create)
	return r
}

func TestEnrollmentHandlerCreate(t *testing.T) {
	r := newEnrollmentRouter(&fakeEnrollmentRepo{})

	payload := `{"student_id":1,"course_id":2,"semester":"First","academic_year":"2024/2025"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/enrollments", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var body struct {
		Message    string                  `json:"message"`
		Enrollment models.EnrollmentDetail `json:"enrollment"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Enrollment created successfully", body.Message)
	assert.Equal(t, "Enrolled", body.Enrollment.Status)
	assert.Equal(t, "ENE 402", body.Enrollment.CourseCode)
}

func TestEnrollmentHandlerCreateDuplicate(t *testing.T) {
	r := newEnrollmentRouter(&fakeEnrollmentRepo{duplicate: true})

	payload := `{"student_id":1,"course_id":2,"semester":"First","academic_year":"2024/2025"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/enrollments", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body struct {
		Error struct {
			Kind    string `json:"kind"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "conflict", body.Error.Kind)
	assert.Equal(t, "Student already enrolled in this course for this semester", body.Error.Message)
}

func TestEnrollmentHandlerListFiltersByStudent(t *testing.T) {
	repo := &fakeEnrollmentRepo{}
	r := newEnrollmentRouter(repo)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/enrollments?student_id=7", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), repo.lastFilter.StudentID)
	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.JSONEq(t, "[]", string(body["enrollments"]))
}
