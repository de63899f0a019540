package models

import "time"

// Instructor is a member of teaching staff, optionally attached to a
// department.
type Instructor struct {
	ID           int64     `db:"id" json:"id"`
	Title        string    `db:"title" json:"title"`
	FirstName    string    `db:"first_name" json:"first_name"`
	LastName     string    `db:"last_name" json:"last_name"`
	Email        string    `db:"email" json:"email"`
	Phone        *string   `db:"phone" json:"phone"`
	DepartmentID *int64    `db:"department_id" json:"department_id"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// InstructorDetail adds display fields resolved by joins. FullName includes
// the title, e.g. "Dr. Akosua Bonsu".
type InstructorDetail struct {
	Instructor
	FullName       string  `db:"full_name" json:"full_name"`
	DepartmentName *string `db:"department_name" json:"department_name"`
}
