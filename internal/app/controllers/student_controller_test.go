package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sudo-disha/digital-library/internal/app/models"
	"github.com/sudo-disha/digital-library/internal/app/models/dto"
	"github.com/sudo-disha/digital-library/internal/middleware"
	"github.com/sudo-disha/digital-library/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testLimits = UploadLimits{
	MaxImageBytes:       1 << 20,
	MaxDocumentBytes:    32 << 20,
	MaxVideoBytes:       512 << 20,
	MaxSpreadsheetBytes: 8 << 20,
}

type mockStudentService struct {
	addCalls    int
	updateCalls int
	updateErr   error
	getErr      error
	student     *models.Student
	lastCtx     context.Context
}

func (m *mockStudentService) AddStudent(_ context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	m.addCalls++
	return &models.Student{ID: 1, StudentID: req.StudentID, Name: req.Name, ClassName: req.ClassName}, nil
}

func (m *mockStudentService) ImportStudents(_ context.Context, _ io.Reader) (*dto.ImportResult, error) {
	return &dto.ImportResult{Imported: 2, Skipped: 1}, nil
}

func (m *mockStudentService) GetStudentByID(_ context.Context, _ int64) (*models.Student, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.student, nil
}

func (m *mockStudentService) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	m.lastCtx = ctx
	return []*models.Student{m.student}, nil
}

func (m *mockStudentService) UpdateStudent(_ context.Context, _ int64, _ *dto.UpdateStudentRequest) error {
	m.updateCalls++
	return m.updateErr
}

func (m *mockStudentService) DeleteStudent(_ context.Context, _ int64) error {
	return nil
}

func studentRouter(svc *mockStudentService) *gin.Engine {
	router := gin.New()
	controller := NewStudentController(svc, testLimits)
	router.POST("/students", controller.AddStudent)
	router.GET("/students/:id", controller.GetStudentByID)
	router.PUT("/students/:id", controller.UpdateStudent)
	return router
}

func decodeErrorResponse(t *testing.T, body *bytes.Buffer) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	return resp
}

func TestAddStudentCreated(t *testing.T) {
	svc := &mockStudentService{}
	router := studentRouter(svc)

	body := `{"student_id":"S-1001","name":"Asha Rao","class_name":"CSE-A","password":"pass1"}`
	req := httptest.NewRequest(http.MethodPost, "/students", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 1, svc.addCalls)
}

func TestAddStudentMissingFields(t *testing.T) {
	svc := &mockStudentService{}
	router := studentRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/students", bytes.NewBufferString(`{"name":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, svc.addCalls, "binding failure must not reach the service")

	resp := decodeErrorResponse(t, rec.Body)
	assert.Equal(t, dto.ErrorCodeValidationFailed, resp.Error.Code)
}

func TestUpdateStudentNoFieldsGets400(t *testing.T) {
	svc := &mockStudentService{updateErr: apperrors.ErrNoFieldsToUpdate}
	router := studentRouter(svc)

	req := httptest.NewRequest(http.MethodPut, "/students/5", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeErrorResponse(t, rec.Body)
	assert.Equal(t, dto.ErrorCodeNoFieldsToUpdate, resp.Error.Code)
}

func TestGetStudentByIDNotFound(t *testing.T) {
	svc := &mockStudentService{getErr: apperrors.ErrStudentNotFound}
	router := studentRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/students/99", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetStudentByIDBadParam(t *testing.T) {
	svc := &mockStudentService{}
	router := studentRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/students/abc", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServiceContextCarriesRequestDeadline(t *testing.T) {
	svc := &mockStudentService{student: &models.Student{ID: 1}}
	router := gin.New()
	controller := NewStudentController(svc, testLimits)
	api := router.Group("", middleware.RequestTimeout(50*time.Millisecond))
	api.GET("/students", controller.GetAllStudents)

	req := httptest.NewRequest(http.MethodGet, "/students", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.lastCtx)
	_, ok := svc.lastCtx.Deadline()
	assert.True(t, ok, "the timeout middleware deadline must reach the service")
	assert.NotNil(t, svc.lastCtx.Done())
}
