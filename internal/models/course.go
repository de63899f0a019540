package models

import "time"

// Course is a teachable unit owned by a department. Courses are never hard
// deleted; IsActive false hides them from default listings.
type Course struct {
	ID           int64     `db:"id" json:"id"`
	CourseCode   string    `db:"course_code" json:"course_code"`
	Title        string    `db:"title" json:"title"`
	Description  *string   `db:"description" json:"description"`
	Credits      int       `db:"credits" json:"credits"`
	DepartmentID int64     `db:"department_id" json:"department_id"`
	InstructorID *int64    `db:"instructor_id" json:"instructor_id"`
	Level        int       `db:"level" json:"level"`
	Semester     string    `db:"semester" json:"semester"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// CourseDetail is a course row with display fields resolved by joins.
type CourseDetail struct {
	Course
	DepartmentName string  `db:"department_name" json:"department_name"`
	InstructorName *string `db:"instructor_name" json:"instructor_name"`
	EnrolledCount  int     `db:"enrolled_count" json:"enrolled_count"`
}

// CourseRef is a light reference used for prerequisite listings.
type CourseRef struct {
	ID         int64  `db:"id" json:"id"`
	CourseCode string `db:"course_code" json:"course_code"`
	Title      string `db:"title" json:"title"`
}

// CourseWithPrerequisites is the single-course payload including the
// prerequisite association.
type CourseWithPrerequisites struct {
	CourseDetail
	Prerequisites []CourseRef `json:"prerequisites"`
}

// CourseFilter encapsulates search parameters for listing courses.
type CourseFilter struct {
	Search          string
	DepartmentID    int64
	IncludeInactive bool
	Page            int
	PageSize        int
}
