package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sudo-disha/digital-library/internal/app/models"
	"github.com/sudo-disha/digital-library/internal/app/models/dto"
	"github.com/sudo-disha/digital-library/internal/pkg/apperrors"
)

type mockAuthService struct {
	studentResp *dto.LoginResponse
	studentErr  error
}

func (m *mockAuthService) StudentLogin(_ context.Context, _ *dto.StudentLoginRequest) (*dto.LoginResponse, error) {
	return m.studentResp, m.studentErr
}

func (m *mockAuthService) TeacherLogin(_ context.Context, _ *dto.TeacherLoginRequest) (*dto.LoginResponse, error) {
	return nil, apperrors.ErrInvalidCredentials
}

func (m *mockAuthService) AdminLogin(_ context.Context, _ *dto.AdminLoginRequest) (*dto.LoginResponse, error) {
	return nil, apperrors.ErrInvalidCredentials
}

func (m *mockAuthService) RegisterAdmin(_ context.Context, req *dto.RegisterAdminRequest) (*models.Admin, error) {
	return &models.Admin{ID: 1, Username: req.Username, Email: req.Email}, nil
}

func (m *mockAuthService) GetAdminProfile(_ context.Context, _ int64) (*dto.AdminProfileResponse, error) {
	return nil, apperrors.ErrAdminNotFound
}

func (m *mockAuthService) UpdateAdminProfile(_ context.Context, _ int64, _ *dto.UpdateAdminProfileRequest, _ *string) error {
	return nil
}

func authRouter(svc *mockAuthService) *gin.Engine {
	router := gin.New()
	controller := NewAuthController(svc, nil, testLimits)
	router.POST("/auth/students/login", controller.StudentLogin)
	router.POST("/auth/admins/register", controller.RegisterAdmin)
	return router
}

func TestStudentLoginOK(t *testing.T) {
	svc := &mockAuthService{studentResp: &dto.LoginResponse{
		Message:   "Login successful",
		Token:     "signed.jwt.token",
		ExpiresIn: 3600,
		Role:      "student",
		ID:        1,
		Name:      "Asha Rao",
	}}
	router := authRouter(svc)

	body := `{"student_id":"S-1001","password":"pass1"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/students/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "signed.jwt.token", resp.Token)
	assert.Equal(t, "student", resp.Role)
}

func TestStudentLoginBadCredentials(t *testing.T) {
	svc := &mockAuthService{studentErr: apperrors.ErrInvalidCredentials}
	router := authRouter(svc)

	body := `{"student_id":"S-1001","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/students/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	resp := decodeErrorResponse(t, rec.Body)
	assert.Equal(t, dto.ErrorCodeInvalidCredentials, resp.Error.Code)
}

func TestStudentLoginMissingBody(t *testing.T) {
	svc := &mockAuthService{}
	router := authRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/auth/students/login", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterAdminCreated(t *testing.T) {
	router := authRouter(&mockAuthService{})

	body := `{"username":"root","email":"root@library.local","password":"secret"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/admins/register", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRegisterAdminBadEmail(t *testing.T) {
	router := authRouter(&mockAuthService{})

	body := `{"username":"root","email":"not-an-email","password":"secret"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/admins/register", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
