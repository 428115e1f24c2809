package services

import (
	"context"
	"fmt"
	"io"

	"github.com/sudo-disha/digital-library/internal/app/models"
	"github.com/sudo-disha/digital-library/internal/app/models/dto"
	"github.com/sudo-disha/digital-library/internal/pkg/apperrors"
	"github.com/sudo-disha/digital-library/internal/pkg/auth"
	"github.com/sudo-disha/digital-library/internal/pkg/helpers"
	"github.com/sudo-disha/digital-library/internal/pkg/logger"
	"github.com/sudo-disha/digital-library/internal/pkg/spreadsheet"
)

// teacherStore is the persistence surface the teacher service depends on.
type teacherStore interface {
	Create(ctx context.Context, teacher *models.Teacher) error
	GetByID(ctx context.Context, id int64) (*models.Teacher, error)
	GetAll(ctx context.Context) ([]*models.Teacher, error)
	GetNames(ctx context.Context) ([]*models.TeacherName, error)
	GetDistinctDepartments(ctx context.Context) ([]string, error)
	UpdateFields(ctx context.Context, id int64, set *helpers.UpdateSet) error
	Delete(ctx context.Context, id int64) error
}

// TeacherService defines the interface for teacher-related operations
type TeacherService interface {
	AddTeacher(ctx context.Context, req *dto.CreateTeacherRequest, profilePhoto *string) (*models.Teacher, error)
	ImportTeachers(ctx context.Context, workbook io.Reader) (*dto.ImportResult, error)
	GetAllTeachers(ctx context.Context) ([]*models.Teacher, error)
	GetTeacherByID(ctx context.Context, id int64) (*models.Teacher, error)
	GetTeacherNames(ctx context.Context) ([]*models.TeacherName, error)
	GetDepartments(ctx context.Context) ([]string, error)
	UpdateTeacher(ctx context.Context, id int64, req *dto.UpdateTeacherRequest) error
	DeleteTeacher(ctx context.Context, id int64) error
}

type teacherServiceImpl struct {
	teacherRepo teacherStore
}

// NewTeacherService creates a new teacher service instance
func NewTeacherService(teacherRepo teacherStore) TeacherService {
	return &teacherServiceImpl{
		teacherRepo: teacherRepo,
	}
}

// AddTeacher hashes the password and inserts a single teacher.
// profilePhoto carries the stored upload name when a photo was attached.
func (s *teacherServiceImpl) AddTeacher(ctx context.Context, req *dto.CreateTeacherRequest, profilePhoto *string) (*models.Teacher, error) {
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	teacher := &models.Teacher{
		Name:          req.Name,
		ContactNumber: req.ContactNumber,
		Department:    req.Department,
		Username:      req.Username,
		Password:      hashed,
		ProfilePhoto:  profilePhoto,
	}

	if err := s.teacherRepo.Create(ctx, teacher); err != nil {
		return nil, err
	}

	return teacher, nil
}

// ImportTeachers reads an xlsx workbook and inserts each row
// independently, hashing the plaintext password column. Failed rows are
// skipped and counted.
func (s *teacherServiceImpl) ImportTeachers(ctx context.Context, workbook io.Reader) (*dto.ImportResult, error) {
	rows, err := spreadsheet.ParseTeachers(workbook)
	if err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, err.Error())
	}

	result := &dto.ImportResult{}
	for _, row := range rows {
		if row.Username == "" || row.Password == "" {
			result.Skipped++
			continue
		}

		hashed, err := auth.HashPassword(row.Password)
		if err != nil {
			return nil, fmt.Errorf("error hashing password: %w", err)
		}

		teacher := &models.Teacher{
			Name:          row.Name,
			ContactNumber: row.ContactNumber,
			Department:    row.Department,
			Username:      row.Username,
			Password:      hashed,
		}
		if row.ProfilePhoto != "" {
			teacher.ProfilePhoto = &row.ProfilePhoto
		}

		if err := s.teacherRepo.Create(ctx, teacher); err != nil {
			logger.Warn().Err(err).Str("username", row.Username).Msg("Skipping teacher import row")
			result.Skipped++
			continue
		}
		result.Imported++
	}

	return result, nil
}

// GetAllTeachers retrieves all teachers
func (s *teacherServiceImpl) GetAllTeachers(ctx context.Context) ([]*models.Teacher, error) {
	return s.teacherRepo.GetAll(ctx)
}

// GetTeacherByID retrieves a teacher by ID
func (s *teacherServiceImpl) GetTeacherByID(ctx context.Context, id int64) (*models.Teacher, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid teacher ID")
	}
	return s.teacherRepo.GetByID(ctx, id)
}

// GetTeacherNames retrieves the id and name of every teacher.
func (s *teacherServiceImpl) GetTeacherNames(ctx context.Context) ([]*models.TeacherName, error) {
	return s.teacherRepo.GetNames(ctx)
}

// GetDepartments retrieves the distinct department names.
func (s *teacherServiceImpl) GetDepartments(ctx context.Context) ([]string, error) {
	return s.teacherRepo.GetDistinctDepartments(ctx)
}

// UpdateTeacher applies a partial update; only supplied fields change.
func (s *teacherServiceImpl) UpdateTeacher(ctx context.Context, id int64, req *dto.UpdateTeacherRequest) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid teacher ID")
	}
	if req.Empty() {
		return apperrors.ErrNoFieldsToUpdate
	}

	set := &helpers.UpdateSet{}
	if req.Name != nil {
		set.Add("name", *req.Name)
	}
	if req.ContactNumber != nil {
		set.Add("contact_number", *req.ContactNumber)
	}
	if req.Department != nil {
		set.Add("department", *req.Department)
	}
	if req.Username != nil {
		set.Add("username", *req.Username)
	}
	if req.Password != nil {
		hashed, err := auth.HashPassword(*req.Password)
		if err != nil {
			return fmt.Errorf("error hashing password: %w", err)
		}
		set.Add("password", hashed)
	}
	if req.ProfilePhoto != nil {
		set.Add("profile_photo", *req.ProfilePhoto)
	}

	return s.teacherRepo.UpdateFields(ctx, id, set)
}

// DeleteTeacher removes a teacher by ID
func (s *teacherServiceImpl) DeleteTeacher(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid teacher ID")
	}
	return s.teacherRepo.Delete(ctx, id)
}
