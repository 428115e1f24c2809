package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sudo-disha/digital-library/internal/app/models"
	"github.com/sudo-disha/digital-library/internal/app/models/dto"
	"github.com/sudo-disha/digital-library/internal/pkg/apperrors"
)

type mockContentStore struct {
	created          []*models.Content
	singleFieldCalls []string
}

func (m *mockContentStore) Create(_ context.Context, content *models.Content) error {
	m.created = append(m.created, content)
	return nil
}

func (m *mockContentStore) GetByID(_ context.Context, _ int64) (*models.Content, error) {
	return nil, apperrors.ErrContentNotFound
}

func (m *mockContentStore) GetAll(_ context.Context) ([]*models.Content, error) {
	return m.created, nil
}

func (m *mockContentStore) GetAllWithTeacherNames(_ context.Context) ([]*models.ContentWithTeacher, error) {
	return nil, nil
}

func (m *mockContentStore) GetDistinctMaterialTypes(_ context.Context) ([]string, error) {
	return nil, nil
}

func (m *mockContentStore) UpdateSingleField(_ context.Context, _ int64, column, _ string) error {
	m.singleFieldCalls = append(m.singleFieldCalls, column)
	return nil
}

func (m *mockContentStore) Delete(_ context.Context, _ int64) error {
	return nil
}

type mockTeacherChecker struct {
	existing map[int64]bool
}

func (m *mockTeacherChecker) Exists(_ context.Context, id int64) (bool, error) {
	return m.existing[id], nil
}

func validContentRequest() *dto.CreateContentRequest {
	return &dto.CreateContentRequest{
		TeacherID:    42,
		ClassName:    "CSE-A",
		Subject:      "Operating Systems",
		Category:     "Lecture",
		MaterialType: "video",
		UploadedAt:   "2026-08-30 10:15:00",
	}
}

func TestAddContentMissingTeacher(t *testing.T) {
	store := &mockContentStore{}
	svc := NewContentService(store, &mockTeacherChecker{existing: map[int64]bool{}})

	_, err := svc.AddContent(context.Background(), validContentRequest(), "stored.mp4")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Empty(t, store.created, "nothing may be written when the teacher is missing")
}

func TestAddContentParsesUploadedAt(t *testing.T) {
	store := &mockContentStore{}
	svc := NewContentService(store, &mockTeacherChecker{existing: map[int64]bool{42: true}})

	content, err := svc.AddContent(context.Background(), validContentRequest(), "stored.mp4")
	require.NoError(t, err)

	want := time.Date(2026, 8, 30, 10, 15, 0, 0, time.UTC)
	assert.True(t, content.UploadedAt.Equal(want))
	assert.Equal(t, "stored.mp4", content.StudyMaterial)
	require.Len(t, store.created, 1)
}

func TestAddContentAcceptsRFC3339(t *testing.T) {
	store := &mockContentStore{}
	svc := NewContentService(store, &mockTeacherChecker{existing: map[int64]bool{42: true}})

	req := validContentRequest()
	req.UploadedAt = "2026-08-30T10:15:00Z"

	content, err := svc.AddContent(context.Background(), req, "stored.mp4")
	require.NoError(t, err)
	assert.Equal(t, 2026, content.UploadedAt.Year())
}

func TestAddContentBadTimestamp(t *testing.T) {
	store := &mockContentStore{}
	svc := NewContentService(store, &mockTeacherChecker{existing: map[int64]bool{42: true}})

	req := validContentRequest()
	req.UploadedAt = "yesterday"

	_, err := svc.AddContent(context.Background(), req, "stored.mp4")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Empty(t, store.created)
}

func TestAddContentRequiresFile(t *testing.T) {
	store := &mockContentStore{}
	svc := NewContentService(store, &mockTeacherChecker{existing: map[int64]bool{42: true}})

	_, err := svc.AddContent(context.Background(), validContentRequest(), "")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdateContentFieldAllowList(t *testing.T) {
	store := &mockContentStore{}
	svc := NewContentService(store, &mockTeacherChecker{})

	err := svc.UpdateContentField(context.Background(), 5, &dto.UpdateFieldRequest{
		Field: "study_material",
		Value: "sneaky.mp4",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidField)
	assert.Empty(t, store.singleFieldCalls)

	err = svc.UpdateContentField(context.Background(), 5, &dto.UpdateFieldRequest{
		Field: "subject",
		Value: "Compilers",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"subject"}, store.singleFieldCalls)
}
