package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/uenr-dev/uenr-student-api/internal/models"
	"github.com/uenr-dev/uenr-student-api/internal/service"
	appErrors "github.com/uenr-dev/uenr-student-api/pkg/errors"
)

type fakeDashboardRepo struct {
	counts models.DashboardCounts
}

func (f *fakeDashboardRepo) Counts(ctx context.Context) (*models.DashboardCounts, error) {
	counts := f.counts
	return &counts, nil
}

type fakeRecentStudents struct{}

func (fakeRecentStudents) Recent(ctx context.Context, limit int) ([]models.StudentDetail, error) {
	return []models.StudentDetail{{FullName: "Kwame Addo"}}, nil
}

type fakeRecentCourses struct{}

func (fakeRecentCourses) Recent(ctx context.Context, limit int) ([]models.CourseDetail, error) {
	return nil, nil
}

type fakeCacheRepo struct {
	entries map[string][]byte
}

func (f *fakeCacheRepo) Get(ctx context.Context, key string, dest interface{}) error {
	raw, ok := f.entries[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (f *fakeCacheRepo) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if f.entries == nil {
		f.entries = make(map[string][]byte)
	}
	f.entries[key] = raw
	return nil
}

func (f *fakeCacheRepo) DeleteByPattern(ctx context.Context, pattern string) error {
	f.entries = make(map[string][]byte)
	return nil
}

func TestDashboardHandlerStats(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cache := service.NewCacheService(&fakeCacheRepo{}, nil, time.Minute, zap.NewNop())
	svc := service.NewDashboardService(&fakeDashboardRepo{counts: models.DashboardCounts{
		Students:          5,
		ActiveCourses:     8,
		Instructors:       6,
		ActiveEnrollments: 12,
	}}, fakeRecentStudents{}, fakeRecentCourses{}, cache, zap.NewNop())
	h := NewDashboardHandler(svc)

	r := gin.New()
	r.GET("/api/dashboard", h.Stats)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "MISS", rec.Header().Get("X-Cache"))

	var stats models.DashboardStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 5, stats.Students)
	assert.Equal(t, 8, stats.Courses)
	assert.Equal(t, 6, stats.Faculty)
	assert.Equal(t, 12, stats.Enrollments)
	require.Len(t, stats.RecentStudents, 1)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "HIT", rec.Header().Get("X-Cache"))
}
