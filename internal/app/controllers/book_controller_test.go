package controllers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/sudo-disha/digital-library/internal/app/models"
	"github.com/sudo-disha/digital-library/internal/app/models/dto"
	"github.com/sudo-disha/digital-library/internal/pkg/apperrors"
)

type mockBookService struct {
	updateFieldErr   error
	updateFieldCalls int
	departments      []string
}

func (m *mockBookService) AddBook(_ context.Context, _ *dto.CreateBookRequest, _, _ string) (*models.Book, error) {
	return nil, nil
}

func (m *mockBookService) GetBookByID(_ context.Context, _ int64) (*models.Book, error) {
	return nil, apperrors.ErrBookNotFound
}

func (m *mockBookService) GetAllBooks(_ context.Context) ([]*models.Book, error) {
	return nil, nil
}

func (m *mockBookService) GetBooksByDepartment(_ context.Context, _ string) ([]*models.Book, error) {
	return nil, nil
}

func (m *mockBookService) GetBooksByCategory(_ context.Context, _ string) ([]*models.Book, error) {
	return nil, nil
}

func (m *mockBookService) GetDepartments(_ context.Context) ([]string, error) {
	return m.departments, nil
}

func (m *mockBookService) GetCategories(_ context.Context) ([]string, error) {
	return nil, nil
}

func (m *mockBookService) UpdateBook(_ context.Context, _ int64, _ *dto.UpdateBookRequest, _, _ *string) error {
	return nil
}

func (m *mockBookService) UpdateBookField(_ context.Context, _ int64, _ *dto.UpdateFieldRequest) error {
	m.updateFieldCalls++
	return m.updateFieldErr
}

func (m *mockBookService) DeleteBook(_ context.Context, _ int64) error {
	return nil
}

func bookRouter(svc *mockBookService) *gin.Engine {
	router := gin.New()
	controller := NewBookController(svc, nil, testLimits)
	router.GET("/books/departments", controller.GetDepartments)
	router.GET("/books/:id", controller.GetBookByID)
	router.PATCH("/books/:id/field", controller.UpdateBookField)
	return router
}

func TestUpdateBookFieldRejected(t *testing.T) {
	svc := &mockBookService{updateFieldErr: apperrors.ErrInvalidField}
	router := bookRouter(svc)

	body := `{"field":"password","value":"oops"}`
	req := httptest.NewRequest(http.MethodPatch, "/books/3/field", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeErrorResponse(t, rec.Body)
	assert.Equal(t, dto.ErrorCodeInvalidField, resp.Error.Code)
}

func TestUpdateBookFieldMissingValue(t *testing.T) {
	svc := &mockBookService{}
	router := bookRouter(svc)

	req := httptest.NewRequest(http.MethodPatch, "/books/3/field", bytes.NewBufferString(`{"field":"title"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, svc.updateFieldCalls, "binding failure must not reach the service")
}

func TestGetBookDepartments(t *testing.T) {
	svc := &mockBookService{departments: []string{"CSE", "ECE"}}
	router := bookRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/books/departments", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "CSE")
	assert.Contains(t, rec.Body.String(), "ECE")
}

func TestGetBookByIDNotFound(t *testing.T) {
	router := bookRouter(&mockBookService{})

	req := httptest.NewRequest(http.MethodGet, "/books/42", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
