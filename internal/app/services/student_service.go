package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sudo-disha/digital-library/internal/app/models"
	"github.com/sudo-disha/digital-library/internal/app/models/dto"
	"github.com/sudo-disha/digital-library/internal/pkg/apperrors"
	"github.com/sudo-disha/digital-library/internal/pkg/auth"
	"github.com/sudo-disha/digital-library/internal/pkg/helpers"
	"github.com/sudo-disha/digital-library/internal/pkg/logger"
	"github.com/sudo-disha/digital-library/internal/pkg/spreadsheet"
)

// studentStore is the persistence surface the student service depends on.
type studentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
	UpdateFields(ctx context.Context, id int64, set *helpers.UpdateSet) error
	Delete(ctx context.Context, id int64) error
}

// StudentService defines the interface for student-related operations
type StudentService interface {
	AddStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error)
	ImportStudents(ctx context.Context, workbook io.Reader) (*dto.ImportResult, error)
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	GetAllStudents(ctx context.Context) ([]*models.Student, error)
	UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) error
	DeleteStudent(ctx context.Context, id int64) error
}

type studentServiceImpl struct {
	studentRepo studentStore
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo studentStore) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
	}
}

// AddStudent hashes the password and inserts a single student.
func (s *studentServiceImpl) AddStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	if strings.TrimSpace(req.StudentID) == "" {
		return nil, apperrors.NewValidationError("student_id cannot be empty")
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	student := &models.Student{
		StudentID: req.StudentID,
		Name:      req.Name,
		ClassName: req.ClassName,
		Password:  hashed,
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// ImportStudents reads an xlsx workbook and inserts each row
// independently. Failed rows are skipped and counted; earlier rows are
// never rolled back.
func (s *studentServiceImpl) ImportStudents(ctx context.Context, workbook io.Reader) (*dto.ImportResult, error) {
	rows, err := spreadsheet.ParseStudents(workbook)
	if err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, err.Error())
	}

	result := &dto.ImportResult{}
	for _, row := range rows {
		if row.StudentID == "" || row.Password == "" {
			result.Skipped++
			continue
		}

		hashed, err := auth.HashPassword(row.Password)
		if err != nil {
			return nil, fmt.Errorf("error hashing password: %w", err)
		}

		student := &models.Student{
			StudentID: row.StudentID,
			Name:      row.Name,
			ClassName: row.ClassName,
			Password:  hashed,
		}

		if err := s.studentRepo.Create(ctx, student); err != nil {
			logger.Warn().Err(err).Str("student_id", row.StudentID).Msg("Skipping student import row")
			result.Skipped++
			continue
		}
		result.Imported++
	}

	return result, nil
}

// GetStudentByID retrieves a student by row ID
func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid student ID")
	}
	return s.studentRepo.GetByID(ctx, id)
}

// GetAllStudents retrieves all students
func (s *studentServiceImpl) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	return s.studentRepo.GetAll(ctx)
}

// UpdateStudent applies a partial update; only supplied fields change. A
// supplied password is re-hashed before storage.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid student ID")
	}
	if req.Empty() {
		return apperrors.ErrNoFieldsToUpdate
	}

	set := &helpers.UpdateSet{}
	if req.StudentID != nil {
		set.Add("student_id", *req.StudentID)
	}
	if req.Name != nil {
		set.Add("name", *req.Name)
	}
	if req.ClassName != nil {
		set.Add("class_name", *req.ClassName)
	}
	if req.Password != nil {
		hashed, err := auth.HashPassword(*req.Password)
		if err != nil {
			return fmt.Errorf("error hashing password: %w", err)
		}
		set.Add("password", hashed)
	}

	return s.studentRepo.UpdateFields(ctx, id, set)
}

// DeleteStudent removes a student by row ID
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid student ID")
	}
	return s.studentRepo.Delete(ctx, id)
}
