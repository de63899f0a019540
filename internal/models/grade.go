package models

import "time"

// Grade records a student's result for a course offering. The tuple
// (student, course, semester, academic year) is unique.
type Grade struct {
	ID           int64     `db:"id" json:"id"`
	StudentID    int64     `db:"student_id" json:"student_id"`
	CourseID     int64     `db:"course_id" json:"course_id"`
	Semester     string    `db:"semester" json:"semester"`
	AcademicYear string    `db:"academic_year" json:"academic_year"`
	Score        float64   `db:"score" json:"score"`
	Letter       string    `db:"grade" json:"grade"`
	GradePoints  float64   `db:"grade_points" json:"grade_points"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// GradeDetail adds display fields resolved by joins.
type GradeDetail struct {
	Grade
	StudentName string `db:"student_name" json:"student_name"`
	CourseCode  string `db:"course_code" json:"course_code"`
	CourseTitle string `db:"course_title" json:"course_title"`
}

// GradeFilter provides exact filters for listing grades.
type GradeFilter struct {
	StudentID int64
	CourseID  int64
}
