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

type fakeCourseRepo struct {
	courses    map[int64]models.CourseDetail
	takenCodes map[string]bool
	prereqs    map[int64][]models.CourseRef
	nextID     int64
	listRows   []models.CourseDetail
	listTotal  int
	lastFilter models.CourseFilter
}

func (f *fakeCourseRepo) List(ctx context.Context, filter models.CourseFilter) ([]models.CourseDetail, int, error) {
	f.lastFilter = filter
	return f.listRows, f.listTotal, nil
}

func (f *fakeCourseRepo) FindByID(ctx context.Context, id int64) (*models.CourseDetail, error) {
	if c, ok := f.courses[id]; ok {
		return &c, nil
	}
	return nil, sql.ErrNoRows
}

func (f *fakeCourseRepo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	return f.takenCodes[code], nil
}

func (f *fakeCourseRepo) Create(ctx context.Context, course *models.Course) error {
	if f.courses == nil {
		f.courses = make(map[int64]models.CourseDetail)
	}
	f.nextID++
	course.ID = f.nextID
	f.courses[course.ID] = models.CourseDetail{Course: *course, DepartmentName: "Energy Engineering"}
	return nil
}

func (f *fakeCourseRepo) Update(ctx context.Context, course *models.Course) error {
	f.courses[course.ID] = models.CourseDetail{Course: *course}
	return nil
}

func (f *fakeCourseRepo) SoftDelete(ctx context.Context, id int64) error {
	if c, ok := f.courses[id]; ok {
		c.IsActive = false
		f.courses[id] = c
	}
	return nil
}

func (f *fakeCourseRepo) Prerequisites(ctx context.Context, courseID int64) ([]models.CourseRef, error) {
	return f.prereqs[courseID], nil
}

func (f *fakeCourseRepo) AddPrerequisite(ctx context.Context, courseID, prerequisiteID int64) error {
	if f.prereqs == nil {
		f.prereqs = make(map[int64][]models.CourseRef)
	}
	f.prereqs[courseID] = append(f.prereqs[courseID], models.CourseRef{ID: prerequisiteID})
	return nil
}

func (f *fakeCourseRepo) RemovePrerequisite(ctx context.Context, courseID, prerequisiteID int64) (bool, error) {
	refs := f.prereqs[courseID]
	for i, ref := range refs {
		if ref.ID == prerequisiteID {
			f.prereqs[courseID] = append(refs[:i], refs[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func newCourseRouter(repo *fakeCourseRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cache := service.NewCacheService(nil, nil, 0, zap.NewNop())
	svc := service.NewCourseService(repo, nil, cache, service.ListingLimits{DefaultPageSize: 10, MaxPageSize: 100}, zap.NewNop())
	h := NewCourseHandler(svc)

	r := gin.New()
	r.GET("/api/courses", h.List)
	r.POST("/api/courses", h.Create)
	r.GET("/api/courses/:id", h.Get)
	r.DELETE("/api/courses/:id", h.Delete)
	r.POST("/api/courses/:id/prerequisites/:prerequisite_id", h.AddPrerequisite)
	r.DELETE("/api/courses/:id/prerequisites/:prerequisite_id", h.RemovePrerequisite)
	return r
}

func TestCourseHandlerCreateDuplicate(t *testing.T) {
	r := newCourseRouter(&fakeCourseRepo{takenCodes: map[string]bool{"ENE 402": true}})

	payload := `{"course_code":"ENE 402","title":"Renewable Energy Systems","department_id":1,"level":400}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/courses", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Course code already exists", body.Error.Message)
}

func TestCourseHandlerGetWithPrerequisites(t *testing.T) {
	repo := &fakeCourseRepo{
		courses: map[int64]models.CourseDetail{1: {Course: models.Course{ID: 1, CourseCode: "ENE 402"}}},
		prereqs: map[int64][]models.CourseRef{1: {{ID: 5, CourseCode: "ENE 201", Title: "Introduction to Energy Systems"}}},
	}
	r := newCourseRouter(repo)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/courses/1", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var course models.CourseWithPrerequisites
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &course))
	assert.Equal(t, "ENE 402", course.CourseCode)
	require.Len(t, course.Prerequisites, 1)
	assert.Equal(t, "ENE 201", course.Prerequisites[0].CourseCode)
}

func TestCourseHandlerAddPrerequisiteSelf(t *testing.T) {
	r := newCourseRouter(&fakeCourseRepo{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/courses/3/prerequisites/3", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCourseHandlerDelete(t *testing.T) {
	repo := &fakeCourseRepo{
		courses: map[int64]models.CourseDetail{1: {Course: models.Course{ID: 1, IsActive: true}}},
	}
	r := newCourseRouter(repo)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/courses/1", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, repo.courses[1].IsActive)
}
