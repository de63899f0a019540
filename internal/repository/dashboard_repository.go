package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/uenr-dev/uenr-student-api/internal/models"
)

// DashboardRepository computes the aggregate counts behind the dashboard.
type DashboardRepository struct {
	db *sqlx.DB
}

// NewDashboardRepository constructs a DashboardRepository.
func NewDashboardRepository(db *sqlx.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

// Counts aggregates headline totals in a single round trip.
func (r *DashboardRepository) Counts(ctx context.Context) (*models.DashboardCounts, error) {
	const query = `SELECT
        (SELECT COUNT(*) FROM students) AS students,
        (SELECT COUNT(*) FROM courses WHERE is_active = TRUE) AS active_courses,
        (SELECT COUNT(*) FROM instructors) AS instructors,
        (SELECT COUNT(*) FROM enrollments WHERE status = $1) AS active_enrollments`
	var counts models.DashboardCounts
	if err := r.db.GetContext(ctx, &counts, query, models.EnrollmentStatusEnrolled); err != nil {
		return nil, fmt.Errorf("dashboard counts: %w", err)
	}
	return &counts, nil
}
