package services

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/sudo-disha/digital-library/internal/app/models"
	"github.com/sudo-disha/digital-library/internal/app/models/dto"
	"github.com/sudo-disha/digital-library/internal/pkg/apperrors"
	"github.com/sudo-disha/digital-library/internal/pkg/auth"
	"github.com/sudo-disha/digital-library/internal/pkg/helpers"
)

type mockStudentStore struct {
	created    []*models.Student
	createErr  map[string]error
	updateSets []*helpers.UpdateSet
	updateErr  error
}

func (m *mockStudentStore) Create(_ context.Context, student *models.Student) error {
	if err, ok := m.createErr[student.StudentID]; ok {
		return err
	}
	m.created = append(m.created, student)
	return nil
}

func (m *mockStudentStore) GetByID(_ context.Context, id int64) (*models.Student, error) {
	return nil, apperrors.ErrStudentNotFound
}

func (m *mockStudentStore) GetAll(_ context.Context) ([]*models.Student, error) {
	return m.created, nil
}

func (m *mockStudentStore) UpdateFields(_ context.Context, _ int64, set *helpers.UpdateSet) error {
	m.updateSets = append(m.updateSets, set)
	return m.updateErr
}

func (m *mockStudentStore) Delete(_ context.Context, _ int64) error {
	return nil
}

func studentWorkbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestAddStudentHashesPassword(t *testing.T) {
	store := &mockStudentStore{}
	svc := NewStudentService(store)

	student, err := svc.AddStudent(context.Background(), &dto.CreateStudentRequest{
		StudentID: "S-1001",
		Name:      "Asha Rao",
		ClassName: "CSE-A",
		Password:  "plain-pass",
	})
	require.NoError(t, err)

	assert.NotEqual(t, "plain-pass", student.Password)
	assert.True(t, auth.CheckPassword(student.Password, "plain-pass"))
	require.Len(t, store.created, 1)
}

func TestAddStudentRejectsBlankID(t *testing.T) {
	store := &mockStudentStore{}
	svc := NewStudentService(store)

	_, err := svc.AddStudent(context.Background(), &dto.CreateStudentRequest{
		StudentID: "   ",
		Name:      "Asha Rao",
		ClassName: "CSE-A",
		Password:  "pass",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Empty(t, store.created)
}

func TestImportStudentsSkipsFailedRows(t *testing.T) {
	store := &mockStudentStore{
		createErr: map[string]error{
			"S-1002": apperrors.ErrStudentIDAlreadyExists,
		},
	}
	svc := NewStudentService(store)

	buf := studentWorkbook(t, [][]interface{}{
		{"student_id", "name", "class_name", "password"},
		{"S-1001", "Asha Rao", "CSE-A", "pass1"},
		{"S-1002", "Duplicate Kid", "CSE-A", "pass2"},
		{"", "No ID", "CSE-B", "pass3"},
		{"S-1004", "Meera Nair", "ECE-A", "pass4"},
	})

	result, err := svc.ImportStudents(context.Background(), buf)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 2, result.Skipped)
	require.Len(t, store.created, 2)
	assert.Equal(t, "S-1001", store.created[0].StudentID)
	assert.Equal(t, "S-1004", store.created[1].StudentID)
}

func TestImportStudentsEmptySheet(t *testing.T) {
	store := &mockStudentStore{}
	svc := NewStudentService(store)

	buf := studentWorkbook(t, [][]interface{}{
		{"student_id", "name", "class_name", "password"},
	})

	_, err := svc.ImportStudents(context.Background(), buf)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdateStudentNoFields(t *testing.T) {
	store := &mockStudentStore{}
	svc := NewStudentService(store)

	err := svc.UpdateStudent(context.Background(), 7, &dto.UpdateStudentRequest{})
	assert.ErrorIs(t, err, apperrors.ErrNoFieldsToUpdate)
	assert.Empty(t, store.updateSets)
}

func TestUpdateStudentOnlySuppliedFields(t *testing.T) {
	store := &mockStudentStore{}
	svc := NewStudentService(store)

	name := "New Name"
	err := svc.UpdateStudent(context.Background(), 7, &dto.UpdateStudentRequest{Name: &name})
	require.NoError(t, err)

	require.Len(t, store.updateSets, 1)
	clause, values := store.updateSets[0].Clause(1)
	assert.Equal(t, "name = $1", clause)
	assert.Equal(t, []interface{}{"New Name"}, values)
}

func TestUpdateStudentRehashesPassword(t *testing.T) {
	store := &mockStudentStore{}
	svc := NewStudentService(store)

	password := "new-pass"
	err := svc.UpdateStudent(context.Background(), 7, &dto.UpdateStudentRequest{Password: &password})
	require.NoError(t, err)

	require.Len(t, store.updateSets, 1)
	_, values := store.updateSets[0].Clause(1)
	require.Len(t, values, 1)
	hashed, ok := values[0].(string)
	require.True(t, ok)
	assert.NotEqual(t, "new-pass", hashed)
	assert.True(t, auth.CheckPassword(hashed, "new-pass"))
}

func TestUpdateStudentPropagatesNotFound(t *testing.T) {
	store := &mockStudentStore{updateErr: apperrors.ErrStudentNotFound}
	svc := NewStudentService(store)

	name := "x"
	err := svc.UpdateStudent(context.Background(), 404, &dto.UpdateStudentRequest{Name: &name})
	assert.True(t, errors.Is(err, apperrors.ErrStudentNotFound))
}
