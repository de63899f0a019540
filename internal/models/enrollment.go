package models

import "time"

// Enrollment statuses are an open set; these cover the common values.
const (
	EnrollmentStatusEnrolled  = "Enrolled"
	EnrollmentStatusCompleted = "Completed"
	EnrollmentStatusDropped   = "Dropped"
)

// Enrollment registers a student to a course offering. The tuple
// (student, course, semester, academic year) is unique.
type Enrollment struct {
	ID             int64     `db:"id" json:"id"`
	StudentID      int64     `db:"student_id" json:"student_id"`
	CourseID       int64     `db:"course_id" json:"course_id"`
	Semester       string    `db:"semester" json:"semester"`
	AcademicYear   string    `db:"academic_year" json:"academic_year"`
	EnrollmentDate time.Time `db:"enrollment_date" json:"enrollment_date"`
	Status         string    `db:"status" json:"status"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// EnrollmentDetail adds display fields resolved by joins.
type EnrollmentDetail struct {
	Enrollment
	StudentName string `db:"student_name" json:"student_name"`
	CourseCode  string `db:"course_code" json:"course_code"`
	CourseTitle string `db:"course_title" json:"course_title"`
}

// EnrollmentFilter provides exact filters for listing enrollments.
type EnrollmentFilter struct {
	StudentID int64
	CourseID  int64
}
