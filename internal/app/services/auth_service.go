package services

import (
	"context"
	"errors"

	"github.com/sudo-disha/digital-library/internal/app/models"
	"github.com/sudo-disha/digital-library/internal/app/models/dto"
	"github.com/sudo-disha/digital-library/internal/pkg/apperrors"
	"github.com/sudo-disha/digital-library/internal/pkg/auth"
	"github.com/sudo-disha/digital-library/internal/pkg/helpers"
)

// studentCredentials is the student lookup surface the auth service uses.
type studentCredentials interface {
	GetByStudentID(ctx context.Context, studentID string) (*models.Student, error)
}

// teacherCredentials is the teacher lookup surface the auth service uses.
type teacherCredentials interface {
	GetByUsername(ctx context.Context, username string) (*models.Teacher, error)
}

// adminStore is the admin persistence surface the auth service uses.
type adminStore interface {
	Create(ctx context.Context, admin *models.Admin) error
	GetByUsername(ctx context.Context, username string) (*models.Admin, error)
	GetByID(ctx context.Context, id int64) (*models.Admin, error)
	UpdateFields(ctx context.Context, id int64, set *helpers.UpdateSet) error
}

// AuthService defines the interface for login and admin account operations
type AuthService interface {
	StudentLogin(ctx context.Context, req *dto.StudentLoginRequest) (*dto.LoginResponse, error)
	TeacherLogin(ctx context.Context, req *dto.TeacherLoginRequest) (*dto.LoginResponse, error)
	AdminLogin(ctx context.Context, req *dto.AdminLoginRequest) (*dto.LoginResponse, error)
	RegisterAdmin(ctx context.Context, req *dto.RegisterAdminRequest) (*models.Admin, error)
	GetAdminProfile(ctx context.Context, adminID int64) (*dto.AdminProfileResponse, error)
	UpdateAdminProfile(ctx context.Context, adminID int64, req *dto.UpdateAdminProfileRequest, profileImage *string) error
}

type authServiceImpl struct {
	studentRepo studentCredentials
	teacherRepo teacherCredentials
	adminRepo   adminStore
	jwtService  *auth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(studentRepo studentCredentials, teacherRepo teacherCredentials, adminRepo adminStore, jwtService *auth.JWTService) AuthService {
	return &authServiceImpl{
		studentRepo: studentRepo,
		teacherRepo: teacherRepo,
		adminRepo:   adminRepo,
		jwtService:  jwtService,
	}
}

// StudentLogin verifies a student code and password pair. An unknown code
// and a wrong password produce the same error.
func (s *authServiceImpl) StudentLogin(ctx context.Context, req *dto.StudentLoginRequest) (*dto.LoginResponse, error) {
	student, err := s.studentRepo.GetByStudentID(ctx, req.StudentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(student.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(student.ID, student.StudentID, auth.RoleStudent)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Message:   "Login successful",
		Token:     token,
		ExpiresIn: expiresIn,
		Role:      auth.RoleStudent,
		ID:        student.ID,
		Name:      student.Name,
	}, nil
}

// TeacherLogin verifies a teacher username and password pair.
func (s *authServiceImpl) TeacherLogin(ctx context.Context, req *dto.TeacherLoginRequest) (*dto.LoginResponse, error) {
	teacher, err := s.teacherRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrTeacherNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(teacher.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(teacher.ID, teacher.Username, auth.RoleTeacher)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Message:    "Login successful",
		Token:      token,
		ExpiresIn:  expiresIn,
		Role:       auth.RoleTeacher,
		ID:         teacher.ID,
		Name:       teacher.Name,
		Username:   teacher.Username,
		Department: teacher.Department,
	}, nil
}

// AdminLogin verifies an admin username and password pair.
func (s *authServiceImpl) AdminLogin(ctx context.Context, req *dto.AdminLoginRequest) (*dto.LoginResponse, error) {
	admin, err := s.adminRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrAdminNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(admin.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(admin.ID, admin.Username, auth.RoleAdmin)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Message:   "Login successful",
		Token:     token,
		ExpiresIn: expiresIn,
		Role:      auth.RoleAdmin,
		ID:        admin.ID,
		Username:  admin.Username,
	}, nil
}

// RegisterAdmin creates a new admin account with a hashed password.
func (s *authServiceImpl) RegisterAdmin(ctx context.Context, req *dto.RegisterAdminRequest) (*models.Admin, error) {
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	admin := &models.Admin{
		Username: req.Username,
		Email:    req.Email,
		Password: hashed,
		Role:     auth.RoleAdmin,
	}

	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}

	return admin, nil
}

// GetAdminProfile returns the profile of the authenticated admin.
func (s *authServiceImpl) GetAdminProfile(ctx context.Context, adminID int64) (*dto.AdminProfileResponse, error) {
	admin, err := s.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		return nil, err
	}

	return &dto.AdminProfileResponse{
		Username:     admin.Username,
		Email:        admin.Email,
		Role:         admin.Role,
		ProfileImage: admin.ProfileImage,
	}, nil
}

// UpdateAdminProfile applies a partial update to the authenticated admin's
// profile. profileImage carries the stored name of a freshly uploaded
// image, or nil when the image is unchanged.
func (s *authServiceImpl) UpdateAdminProfile(ctx context.Context, adminID int64, req *dto.UpdateAdminProfileRequest, profileImage *string) error {
	set := &helpers.UpdateSet{}
	if req.Username != nil {
		set.Add("username", *req.Username)
	}
	if req.Email != nil {
		set.Add("email", *req.Email)
	}
	if profileImage != nil {
		set.Add("profile_image", *profileImage)
	}

	if set.Empty() {
		return apperrors.ErrNoFieldsToUpdate
	}

	return s.adminRepo.UpdateFields(ctx, adminID, set)
}
