package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/uenr-dev/uenr-student-api/internal/models"
	appErrors "github.com/uenr-dev/uenr-student-api/pkg/errors"
)

const (
	dashboardCacheKey     = "dashboard:summary"
	dashboardCachePattern = "dashboard:*"
	dashboardRecentLimit  = 5
)

type dashboardRepository interface {
	Counts(ctx context.Context) (*models.DashboardCounts, error)
}

type recentStudentLister interface {
	Recent(ctx context.Context, limit int) ([]models.StudentDetail, error)
}

type recentCourseLister interface {
	Recent(ctx context.Context, limit int) ([]models.CourseDetail, error)
}

// DashboardService assembles the dashboard summary, caching the result so
// repeated loads skip the aggregate queries.
type DashboardService struct {
	repo     dashboardRepository
	students recentStudentLister
	courses  recentCourseLister
	cache    *CacheService
	logger   *zap.Logger
}

// NewDashboardService constructs the dashboard service.
func NewDashboardService(repo dashboardRepository, students recentStudentLister, courses recentCourseLister, cache *CacheService, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{repo: repo, students: students, courses: courses, cache: cache, logger: logger}
}

// Stats returns the dashboard summary and whether it came from cache.
func (s *DashboardService) Stats(ctx context.Context) (*models.DashboardStats, bool, error) {
	var cached models.DashboardStats
	if hit, err := s.cache.Get(ctx, dashboardCacheKey, &cached); err == nil && hit {
		return &cached, true, nil
	}

	counts, err := s.repo.Counts(ctx)
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Kind, appErrors.ErrInternal.Status, "failed to load dashboard counts")
	}
	recentStudents, err := s.students.Recent(ctx, dashboardRecentLimit)
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Kind, appErrors.ErrInternal.Status, "failed to load recent students")
	}
	recentCourses, err := s.courses.Recent(ctx, dashboardRecentLimit)
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Kind, appErrors.ErrInternal.Status, "failed to load recent courses")
	}
	if recentStudents == nil {
		recentStudents = []models.StudentDetail{}
	}
	if recentCourses == nil {
		recentCourses = []models.CourseDetail{}
	}

	stats := &models.DashboardStats{
		Students:       counts.Students,
		Courses:        counts.ActiveCourses,
		Faculty:        counts.Instructors,
		Enrollments:    counts.ActiveEnrollments,
		RecentStudents: recentStudents,
		RecentCourses:  recentCourses,
	}
	if err := s.cache.Set(ctx, dashboardCacheKey, stats, 0); err != nil {
		s.logger.Warn("dashboard cache write failed", zap.Error(err))
	}
	return stats, false, nil
}
