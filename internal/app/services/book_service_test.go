package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sudo-disha/digital-library/internal/app/models"
	"github.com/sudo-disha/digital-library/internal/app/models/dto"
	"github.com/sudo-disha/digital-library/internal/pkg/apperrors"
	"github.com/sudo-disha/digital-library/internal/pkg/helpers"
)

type mockBookStore struct {
	created          []*models.Book
	updateSets       []*helpers.UpdateSet
	singleFieldCalls []string
	departments      []string
}

func (m *mockBookStore) Create(_ context.Context, book *models.Book) error {
	m.created = append(m.created, book)
	return nil
}

func (m *mockBookStore) GetByID(_ context.Context, _ int64) (*models.Book, error) {
	return nil, apperrors.ErrBookNotFound
}

func (m *mockBookStore) GetAll(_ context.Context) ([]*models.Book, error) {
	return m.created, nil
}

func (m *mockBookStore) GetByDepartment(_ context.Context, _ string) ([]*models.Book, error) {
	return nil, nil
}

func (m *mockBookStore) GetByCategory(_ context.Context, _ string) ([]*models.Book, error) {
	return nil, nil
}

func (m *mockBookStore) GetDistinctDepartments(_ context.Context) ([]string, error) {
	return m.departments, nil
}

func (m *mockBookStore) GetDistinctCategories(_ context.Context) ([]string, error) {
	return nil, nil
}

func (m *mockBookStore) UpdateFields(_ context.Context, _ int64, set *helpers.UpdateSet) error {
	m.updateSets = append(m.updateSets, set)
	return nil
}

func (m *mockBookStore) UpdateSingleField(_ context.Context, _ int64, column, _ string) error {
	m.singleFieldCalls = append(m.singleFieldCalls, column)
	return nil
}

func (m *mockBookStore) Delete(_ context.Context, _ int64) error {
	return nil
}

func TestAddBookRequiresFiles(t *testing.T) {
	store := &mockBookStore{}
	svc := NewBookService(store)

	req := &dto.CreateBookRequest{
		ISBN:       "978-1",
		Title:      "Practical Databases",
		Author:     "L. Iyer",
		Category:   "Databases",
		Department: "CSE",
	}

	_, err := svc.AddBook(context.Background(), req, "", "stored.pdf")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.AddBook(context.Background(), req, "poster.png", "")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	assert.Empty(t, store.created)
}

func TestUpdateBookFieldAllowList(t *testing.T) {
	store := &mockBookStore{}
	svc := NewBookService(store)

	err := svc.UpdateBookField(context.Background(), 3, &dto.UpdateFieldRequest{
		Field: "password",
		Value: "oops",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidField)
	assert.Empty(t, store.singleFieldCalls, "rejected field must not reach the repository")

	err = svc.UpdateBookField(context.Background(), 3, &dto.UpdateFieldRequest{
		Field: "title",
		Value: "New Title",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"title"}, store.singleFieldCalls)
}

func TestUpdateBookNoFields(t *testing.T) {
	store := &mockBookStore{}
	svc := NewBookService(store)

	err := svc.UpdateBook(context.Background(), 3, &dto.UpdateBookRequest{}, nil, nil)
	assert.ErrorIs(t, err, apperrors.ErrNoFieldsToUpdate)
	assert.Empty(t, store.updateSets)
}

func TestUpdateBookFileOnly(t *testing.T) {
	store := &mockBookStore{}
	svc := NewBookService(store)

	poster := "new-poster.png"
	err := svc.UpdateBook(context.Background(), 3, &dto.UpdateBookRequest{}, &poster, nil)
	require.NoError(t, err)

	require.Len(t, store.updateSets, 1)
	clause, values := store.updateSets[0].Clause(1)
	assert.Equal(t, "poster = $1", clause)
	assert.Equal(t, []interface{}{"new-poster.png"}, values)
}

func TestGetDepartmentsPassesThrough(t *testing.T) {
	store := &mockBookStore{departments: []string{"CSE", "ECE"}}
	svc := NewBookService(store)

	departments, err := svc.GetDepartments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"CSE", "ECE"}, departments)
}
