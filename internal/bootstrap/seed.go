package bootstrap

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type seedDepartment struct {
	name string
	code string
}

type seedProgram struct {
	name          string
	code          string
	degreeType    string
	durationYears int
	departmentID  int64
}

type seedInstructor struct {
	title        string
	firstName    string
	lastName     string
	email        string
	phone        string
	departmentID int64
}

type seedCourse struct {
	code         string
	title        string
	credits      int
	departmentID int64
	instructorID int64
	level        int
	semester     string
}

type seedStudent struct {
	studentID     string
	firstName     string
	lastName      string
	email         string
	phone         string
	programID     int64
	level         int
	status        string
	admissionDate string
}

var seedDepartments = []seedDepartment{
	{"Energy Engineering", "ENE"},
	{"Environmental Science", "ENS"},
	{"Natural Resources", "NRE"},
	{"Agricultural Biotechnology", "ABT"},
}

var seedPrograms = []seedProgram{
	{"BSc Environmental Science", "BSC-ENS", "BSc", 4, 2},
	{"BSc Renewable Energy Engineering", "BSC-ENE", "BSc", 4, 1},
	{"BSc Natural Resource Management", "BSC-NRM", "BSc", 4, 3},
	{"BSc Agricultural Biotechnology", "BSC-ABT", "BSc", 4, 4},
	{"MSc Sustainable Energy Management", "MSC-SEM", "MSc", 2, 1},
	{"MSc Climate Change and Sustainable Development", "MSC-CCS", "MSc", 2, 2},
	{"PhD Energy and Sustainability", "PHD-ES", "PhD", 4, 1},
	{"PhD Natural Resource Management", "PHD-NRM", "PhD", 4, 3},
}

var seedInstructors = []seedInstructor{
	{"Dr.", "Akosua", "Bonsu", "a.bonsu@uenr.edu.gh", "+233244123456", 1},
	{"Dr.", "Samuel", "Owusu", "s.owusu@uenr.edu.gh", "+233244123457", 2},
	{"Dr.", "Abena", "Asare", "a.asare@uenr.edu.gh", "+233244123458", 3},
	{"Dr.", "Kwaku", "Mensah", "k.mensah@uenr.edu.gh", "+233244123459", 4},
	{"Dr.", "Francis", "Ampong", "f.ampong@uenr.edu.gh", "+233244123460", 1},
	{"Prof.", "Yaa", "Pokua", "y.pokua@uenr.edu.gh", "+233244123461", 2},
}

var seedCourses = []seedCourse{
	{"ENE 402", "Renewable Energy Systems", 3, 1, 1, 400, "First"},
	{"ENS 301", "Environmental Impact Assessment", 3, 2, 2, 300, "First"},
	{"NRE 401", "Natural Resource Economics", 3, 3, 3, 400, "First"},
	{"ABT 302", "Agricultural Biotechnology Applications", 4, 4, 4, 300, "Second"},
	{"ENE 201", "Introduction to Energy Systems", 2, 1, 5, 200, "First"},
	{"ENS 101", "Fundamentals of Environmental Science", 3, 2, 6, 100, "First"},
	{"NRE 201", "Principles of Natural Resources", 3, 3, 3, 200, "First"},
	{"ABT 101", "Introduction to Biotechnology", 3, 4, 4, 100, "First"},
}

var seedStudents = []seedStudent{
	{"UENR2023001", "Kwame", "Addo", "kwame.addo@student.uenr.edu.gh", "+233201234567", 1, 300, "Active", "2023-08-15"},
	{"UENR2023002", "Ama", "Mensah", "ama.mensah@student.uenr.edu.gh", "+233201234568", 2, 200, "Active", "2023-08-15"},
	{"UENR2022005", "Kofi", "Asante", "kofi.asante@student.uenr.edu.gh", "+233201234569", 6, 600, "Thesis", "2022-08-15"},
	{"UENR2021008", "Abena", "Sarpong", "abena.sarpong@student.uenr.edu.gh", "+233201234570", 3, 400, "Active", "2021-08-15"},
	{"UENR2022012", "Yaw", "Boateng", "yaw.boateng@student.uenr.edu.gh", "+233201234571", 7, 700, "Research", "2022-08-15"},
}

// Seed loads the initial UENR reference data. The whole load is skipped when
// any department already exists, so reruns are safe.
func Seed(ctx context.Context, db *sqlx.DB, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	var departments int
	if err := db.GetContext(ctx, &departments, "SELECT COUNT(*) FROM departments"); err != nil {
		return fmt.Errorf("count departments: %w", err)
	}
	if departments > 0 {
		logger.Info("seed skipped, departments already present", zap.Int("departments", departments))
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	for _, d := range seedDepartments {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO departments (name, code) VALUES ($1, $2)", d.name, d.code); err != nil {
			return fmt.Errorf("seed department %s: %w", d.code, err)
		}
	}
	for _, p := range seedPrograms {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO programs (name, code, degree_type, duration_years, department_id)
            VALUES ($1, $2, $3, $4, $5)`,
			p.name, p.code, p.degreeType, p.durationYears, p.departmentID); err != nil {
			return fmt.Errorf("seed program %s: %w", p.code, err)
		}
	}
	for _, i := range seedInstructors {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO instructors (title, first_name, last_name, email, phone, department_id)
            VALUES ($1, $2, $3, $4, $5, $6)`,
			i.title, i.firstName, i.lastName, i.email, i.phone, i.departmentID); err != nil {
			return fmt.Errorf("seed instructor %s: %w", i.email, err)
		}
	}
	for _, c := range seedCourses {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO courses (course_code, title, credits, department_id, instructor_id, level, semester)
            VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			c.code, c.title, c.credits, c.departmentID, c.instructorID, c.level, c.semester); err != nil {
			return fmt.Errorf("seed course %s: %w", c.code, err)
		}
	}
	for _, s := range seedStudents {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO students (student_id, first_name, last_name, email, phone, program_id, level, status, admission_date)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			s.studentID, s.firstName, s.lastName, s.email, s.phone, s.programID, s.level, s.status, s.admissionDate); err != nil {
			return fmt.Errorf("seed student %s: %w", s.studentID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	logger.Info("seed data loaded",
		zap.Int("departments", len(seedDepartments)),
		zap.Int("programs", len(seedPrograms)),
		zap.Int("instructors", len(seedInstructors)),
		zap.Int("courses", len(seedCourses)),
		zap.Int("students", len(seedStudents)))
	return nil
}
