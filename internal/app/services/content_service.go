package services

import (
	"context"
	"time"

	"github.com/sudo-disha/digital-library/internal/app/models"
	"github.com/sudo-disha/digital-library/internal/app/models/dto"
	"github.com/sudo-disha/digital-library/internal/pkg/apperrors"
)

// contentStore is the persistence surface the content service depends on.
type contentStore interface {
	Create(ctx context.Context, content *models.Content) error
	GetByID(ctx context.Context, id int64) (*models.Content, error)
	GetAll(ctx context.Context) ([]*models.Content, error)
	GetAllWithTeacherNames(ctx context.Context) ([]*models.ContentWithTeacher, error)
	GetDistinctMaterialTypes(ctx context.Context) ([]string, error)
	UpdateSingleField(ctx context.Context, id int64, column, value string) error
	Delete(ctx context.Context, id int64) error
}

// teacherChecker guards the teacher reference on content inserts. The
// check is a query, not a database constraint.
type teacherChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// ContentService defines the interface for course content operations
type ContentService interface {
	AddContent(ctx context.Context, req *dto.CreateContentRequest, studyMaterial string) (*models.Content, error)
	GetContentByID(ctx context.Context, id int64) (*models.Content, error)
	GetAllContent(ctx context.Context) ([]*models.Content, error)
	GetContentWithTeacherNames(ctx context.Context) ([]*models.ContentWithTeacher, error)
	GetMaterialTypes(ctx context.Context) ([]string, error)
	UpdateContentField(ctx context.Context, id int64, req *dto.UpdateFieldRequest) error
	DeleteContent(ctx context.Context, id int64) error
}

type contentServiceImpl struct {
	contentRepo contentStore
	teacherRepo teacherChecker
}

// NewContentService creates a new content service instance
func NewContentService(contentRepo contentStore, teacherRepo teacherChecker) ContentService {
	return &contentServiceImpl{
		contentRepo: contentRepo,
		teacherRepo: teacherRepo,
	}
}

// Accepted layouts for the caller-supplied upload timestamp.
var uploadedAtLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseUploadedAt(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range uploadedAtLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// AddContent inserts a content row after checking that the referenced
// teacher exists. A missing teacher rejects the request; nothing is
// written.
func (s *contentServiceImpl) AddContent(ctx context.Context, req *dto.CreateContentRequest, studyMaterial string) (*models.Content, error) {
	if studyMaterial == "" {
		return nil, apperrors.NewValidationError("studyMaterial file is required")
	}

	uploadedAt, err := parseUploadedAt(req.UploadedAt)
	if err != nil {
		return nil, apperrors.NewValidationError("uploadedAt is not a recognized timestamp")
	}

	exists, err := s.teacherRepo.Exists(ctx, req.TeacherID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NewValidationError("teacher not found")
	}

	content := &models.Content{
		TeacherID:     req.TeacherID,
		ClassName:     req.ClassName,
		Subject:       req.Subject,
		Category:      req.Category,
		StudyMaterial: studyMaterial,
		MaterialType:  req.MaterialType,
		UploadedAt:    uploadedAt,
	}

	if err := s.contentRepo.Create(ctx, content); err != nil {
		return nil, err
	}

	return content, nil
}

// GetContentByID retrieves a content row by ID
func (s *contentServiceImpl) GetContentByID(ctx context.Context, id int64) (*models.Content, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid content ID")
	}
	return s.contentRepo.GetByID(ctx, id)
}

// GetAllContent retrieves all content rows
func (s *contentServiceImpl) GetAllContent(ctx context.Context) ([]*models.Content, error) {
	return s.contentRepo.GetAll(ctx)
}

// GetContentWithTeacherNames retrieves all content joined with teacher names
func (s *contentServiceImpl) GetContentWithTeacherNames(ctx context.Context) ([]*models.ContentWithTeacher, error) {
	return s.contentRepo.GetAllWithTeacherNames(ctx)
}

// GetMaterialTypes retrieves the distinct material type tags.
func (s *contentServiceImpl) GetMaterialTypes(ctx context.Context) ([]string, error) {
	return s.contentRepo.GetDistinctMaterialTypes(ctx)
}

// UpdateContentField updates one column chosen by name. The name must be
// in the fixed allow-list; anything else is rejected before any SQL runs.
func (s *contentServiceImpl) UpdateContentField(ctx context.Context, id int64, req *dto.UpdateFieldRequest) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid content ID")
	}
	if !models.ContentUpdatableColumns[req.Field] {
		return apperrors.ErrInvalidField
	}

	return s.contentRepo.UpdateSingleField(ctx, id, req.Field, req.Value)
}

// DeleteContent removes a content row by ID
func (s *contentServiceImpl) DeleteContent(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid content ID")
	}
	return s.contentRepo.Delete(ctx, id)
}
