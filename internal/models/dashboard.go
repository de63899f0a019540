package models

// DashboardCounts aggregates headline totals for the dashboard.
type DashboardCounts struct {
	Students          int `db:"students"`
	ActiveCourses     int `db:"active_courses"`
	Instructors       int `db:"instructors"`
	ActiveEnrollments int `db:"active_enrollments"`
}

// DashboardStats is the dashboard summary payload.
type DashboardStats struct {
	Students       int             `json:"students"`
	Courses        int             `json:"courses"`
	Faculty        int             `json:"faculty"`
	Enrollments    int             `json:"enrollments"`
	RecentStudents []StudentDetail `json:"recent_students"`
	RecentCourses  []CourseDetail  `json:"recent_courses"`
}
