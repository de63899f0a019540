package models

import "time"

// Program is a degree program offered by a department.
type Program struct {
	ID            int64     `db:"id" json:"id"`
	Name          string    `db:"name" json:"name"`
	Code          string    `db:"code" json:"code"`
	DegreeType    string    `db:"degree_type" json:"degree_type"`
	DurationYears int       `db:"duration_years" json:"duration_years"`
	DepartmentID  int64     `db:"department_id" json:"department_id"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// ProgramDetail enriches Program with its department's name.
type ProgramDetail struct {
	Program
	DepartmentName string `db:"department_name" json:"department_name"`
}
