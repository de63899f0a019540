package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/uenr-dev/uenr-student-api/internal/models"
	"github.com/uenr-dev/uenr-student-api/internal/repository"
	appErrors "github.com/uenr-dev/uenr-student-api/pkg/errors"
)

// ListingLimits clamps requested page sizes for paginated listings.
type ListingLimits struct {
	DefaultPageSize int
	MaxPageSize     int
}

func (l ListingLimits) normalize(page, size int) (int, int) {
	def := l.DefaultPageSize
	if def <= 0 {
		def = 10
	}
	max := l.MaxPageSize
	if max <= 0 {
		max = 100
	}
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		size = def
	}
	if size > max {
		size = max
	}
	return page, size
}

type studentRepository interface {
	List(ctx context.Context, filter models.StudentFilter) ([]models.StudentDetail, int, error)
	FindByID(ctx context.Context, id int64) (*models.StudentDetail, error)
	ExistsByStudentID(ctx context.Context, studentID string) (bool, error)
	ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
}

// CreateStudentRequest holds the payload for registering students.
type CreateStudentRequest struct {
	StudentID     string     `json:"student_id" validate:"required"`
	FirstName     string     `json:"first_name" validate:"required"`
	LastName      string     `json:"last_name" validate:"required"`
	Email         string     `json:"email" validate:"required,email"`
	Phone         *string    `json:"phone"`
	ProgramID     int64      `json:"program_id" validate:"required"`
	Level         int        `json:"level" validate:"required"`
	Status        string     `json:"status"`
	AdmissionDate *time.Time `json:"admission_date"`
}

// UpdateStudentRequest holds a partial update; absent fields are left
// untouched.
type UpdateStudentRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Phone     *string `json:"phone"`
	ProgramID *int64  `json:"program_id"`
	Level     *int    `json:"level"`
	Status    *string `json:"status"`
}

// StudentService handles student use-cases.
type StudentService struct {
	repo      studentRepository
	validator *validator.Validate
	cache     *CacheService
	limits    ListingLimits
	logger    *zap.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(repo studentRepository, validate *validator.Validate, cache *CacheService, limits ListingLimits, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repo, validator: validate, cache: cache, limits: limits, logger: logger}
}

// List returns students and pagination metadata.
func (s *StudentService) List(ctx context.Context, filter models.StudentFilter) ([]models.StudentDetail, *models.Pagination, error) {
	filter.Page, filter.PageSize = s.limits.normalize(filter.Page, filter.PageSize)
	students, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Kind, appErrors.ErrInternal.Status, "failed to list students")
	}
	if students == nil {
		students = []models.StudentDetail{}
	}
	return students, models.NewPagination(filter.Page, filter.PageSize, total), nil
}

// Get returns detailed student information.
func (s *StudentService) Get(ctx context.Context, id int64) (*models.StudentDetail, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Kind, appErrors.ErrInternal.Status, "failed to load student")
	}
	return student, nil
}

// Create registers a new student. The uniqueness pre-checks provide friendly
// messages on the fast path; the storage constraints remain authoritative.
func (s *StudentService) Create(ctx context.Context, req CreateStudentRequest) (*models.StudentDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Kind, appErrors.ErrValidation.Status, "invalid student payload")
	}
	if exists, err := s.repo.ExistsByStudentID(ctx, req.StudentID); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Kind, appErrors.ErrInternal.Status, "failed to validate student ID")
	} else if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "Student ID already exists")
	}
	if exists, err := s.repo.ExistsByEmail(ctx, req.Email, 0); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Kind, appErrors.ErrInternal.Status, "failed to validate email")
	} else if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "Email already exists")
	}

	status := req.Status
	if status == "" {
		status = models.StudentStatusActive
	}
	student := &models.Student{
		StudentID: req.StudentID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		ProgramID: req.ProgramID,
		Level:     req.Level,
		Status:    status,
	}
	if req.AdmissionDate != nil {
		student.AdmissionDate = *req.AdmissionDate
	}
	if err := s.repo.Create(ctx, student); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "student ID or email already exists")
		}
		if repository.IsForeignKeyViolation(err) {
			return nil, appErrors.Clone(appErrors.ErrValidation, "unknown program")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Kind, appErrors.ErrInternal.Status, "failed to create student")
	}
	s.invalidateDashboard(ctx)
	return s.Get(ctx, student.ID)
}

// Update applies a partial update, re-checking email uniqueness only when the
// email changes. The update timestamp advances on every write.
func (s *StudentService) Update(ctx context.Context, id int64, req UpdateStudentRequest) (*models.StudentDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Kind, appErrors.ErrValidation.Status, "invalid student payload")
	}
	detail, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Kind, appErrors.ErrInternal.Status, "failed to load student")
	}

	if req.Email != nil && *req.Email != detail.Email {
		if exists, err := s.repo.ExistsByEmail(ctx, *req.Email, id); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Kind, appErrors.ErrInternal.Status, "failed to validate email")
		} else if exists {
			return nil, appErrors.Clone(appErrors.ErrConflict, "Email already exists")
		}
	}

	student := detail.Student
	if req.FirstName != nil {
		student.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		student.LastName = *req.LastName
	}
	if req.Email != nil {
		student.Email = *req.Email
	}
	if req.Phone != nil {
		student.Phone = req.Phone
	}
	if req.ProgramID != nil {
		student.ProgramID = *req.ProgramID
	}
	if req.Level != nil {
		student.Level = *req.Level
	}
	if req.Status != nil {
		student.Status = *req.Status
	}

	if err := s.repo.Update(ctx, &student); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "Email already exists")
		}
		if repository.IsForeignKeyViolation(err) {
			return nil, appErrors.Clone(appErrors.ErrValidation, "unknown program")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Kind, appErrors.ErrInternal.Status, "failed to update student")
	}
	s.invalidateDashboard(ctx)
	return s.Get(ctx, id)
}

// Delete removes the student and cascades to enrollments and grades.
func (s *StudentService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Kind, appErrors.ErrInternal.Status, "failed to load student")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Kind, appErrors.ErrInternal.Status, "failed to delete student")
	}
	s.invalidateDashboard(ctx)
	return nil
}

func (s *StudentService) invalidateDashboard(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, dashboardCachePattern); err != nil {
		s.logger.Warn("dashboard cache invalidation failed", zap.Error(err))
	}
}
