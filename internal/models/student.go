package models

import "time"

// Student statuses are an open set; these cover the seeded values.
const (
	StudentStatusActive   = "Active"
	StudentStatusThesis   = "Thesis"
	StudentStatusResearch = "Research"
)

// Student represents a learner admitted to a program.
type Student struct {
	ID            int64     `db:"id" json:"id"`
	StudentID     string    `db:"student_id" json:"student_id"`
	FirstName     string    `db:"first_name" json:"first_name"`
	LastName      string    `db:"last_name" json:"last_name"`
	Email         string    `db:"email" json:"email"`
	Phone         *string   `db:"phone" json:"phone"`
	ProgramID     int64     `db:"program_id" json:"program_id"`
	Level         int       `db:"level" json:"level"`
	Status        string    `db:"status" json:"status"`
	AdmissionDate time.Time `db:"admission_date" json:"admission_date"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// FullName joins the student's first and last names.
func (s Student) FullName() string {
	return s.FirstName + " " + s.LastName
}

// StudentDetail is a student row with display fields resolved by joins.
type StudentDetail struct {
	Student
	FullName    string `db:"full_name" json:"full_name"`
	ProgramName string `db:"program_name" json:"program_name"`
}

// StudentFilter encapsulates search parameters for listing students.
type StudentFilter struct {
	Search    string
	ProgramID int64
	Page      int
	PageSize  int
}
